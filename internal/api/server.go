// Package api serves the local catalog over HTTP in the same shape as the
// hosted backend, so other devroad clients can use a machine as their
// remote.
package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/devroad/devroad/internal/catalog"
	"github.com/devroad/devroad/internal/exercise"
	"github.com/devroad/devroad/internal/logger"
)

// Catalog is the read side of the local catalog.
type Catalog interface {
	ListCourses(ctx context.Context) ([]catalog.Course, error)
	ListLessons(ctx context.Context, courseID string) ([]catalog.Lesson, error)
	ListFlashcards(ctx context.Context, lessonID string) ([]catalog.Flashcard, error)
	ExerciseRecords(ctx context.Context, lessonID string) ([]exercise.Record, error)
}

type Options struct {
	// APIKey, when set, must be sent in the apikey header.
	APIKey string
	Logger *logger.Logger
}

type handler struct {
	cat Catalog
	log *logger.Logger
}

// NewRouter builds the HTTP handler.
func NewRouter(cat Catalog, opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	h := &handler{cat: cat, log: log.With("service", "CatalogAPI")}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/rest/v1", func(sub chi.Router) {
		if opts.APIKey != "" {
			sub.Use(requireAPIKey(opts.APIKey))
		}
		sub.Get("/courses", h.listCourses)
		sub.Get("/lessons", h.listLessons)
		sub.Get("/flashcards", h.listFlashcards)
		sub.Get("/exercises", h.listExercises)
	})
	return r
}

func (h *handler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.cat.ListCourses(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(courses))
}

func (h *handler) listLessons(w http.ResponseWriter, r *http.Request) {
	courseID, ok := eqFilter(r, "course_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "course_id must be an eq. filter")
		return
	}
	lessons, err := h.cat.ListLessons(r.Context(), courseID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(lessons))
}

func (h *handler) listFlashcards(w http.ResponseWriter, r *http.Request) {
	lessonID, ok := eqFilter(r, "lesson_id")
	if !ok || lessonID == "" {
		writeError(w, http.StatusBadRequest, "lesson_id=eq.<id> is required")
		return
	}
	cards, err := h.cat.ListFlashcards(r.Context(), lessonID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(cards))
}

func (h *handler) listExercises(w http.ResponseWriter, r *http.Request) {
	lessonID, ok := eqFilter(r, "lesson_id")
	if !ok || lessonID == "" {
		writeError(w, http.StatusBadRequest, "lesson_id=eq.<id> is required")
		return
	}
	recs, err := h.cat.ExerciseRecords(r.Context(), lessonID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(recs))
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("catalog query failed", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "error", err)
	writeError(w, http.StatusInternalServerError, "catalog unavailable")
}

// eqFilter reads a PostgREST equality filter (col=eq.value). A missing
// parameter yields "" and true.
func eqFilter(r *http.Request, col string) (string, bool) {
	v := r.URL.Query().Get(col)
	if v == "" {
		return "", true
	}
	val, ok := strings.CutPrefix(v, "eq.")
	return val, ok
}

func requireAPIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("apikey")
			if got == "" {
				got = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				writeError(w, http.StatusUnauthorized, "invalid api key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
