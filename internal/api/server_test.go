package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devroad/devroad/internal/catalog"
	"github.com/devroad/devroad/internal/exercise"
)

type fakeCatalog struct {
	courses   []catalog.Course
	lessons   map[string][]catalog.Lesson
	cards     map[string][]catalog.Flashcard
	exercises map[string][]exercise.Record
	err       error
}

func (f *fakeCatalog) ListCourses(context.Context) ([]catalog.Course, error) {
	return f.courses, f.err
}

func (f *fakeCatalog) ListLessons(_ context.Context, courseID string) ([]catalog.Lesson, error) {
	return f.lessons[courseID], f.err
}

func (f *fakeCatalog) ListFlashcards(_ context.Context, lessonID string) ([]catalog.Flashcard, error) {
	return f.cards[lessonID], f.err
}

func (f *fakeCatalog) ExerciseRecords(_ context.Context, lessonID string) ([]exercise.Record, error) {
	return f.exercises[lessonID], f.err
}

func newFake() *fakeCatalog {
	return &fakeCatalog{
		courses: []catalog.Course{{ID: "java", Title: "Java"}},
		lessons: map[string][]catalog.Lesson{
			"java": {{ID: "vars", CourseID: "java", Title: "Variables", Premium: true, RequiredScore: 40}},
		},
		cards: map[string][]catalog.Flashcard{
			"vars": {
				{ID: "c1", LessonID: "vars", Front: "int", Back: "32-bit integer", OrderIndex: 1},
				{ID: "c2", LessonID: "vars", Front: "long", Back: "64-bit integer", OrderIndex: 2},
			},
		},
		exercises: map[string][]exercise.Record{
			"vars": {{
				ID: "e1", LessonID: "vars", Type: "multiple_choice", Question: "Pick",
				Data: json.RawMessage(`{"options":["int","String"]}`), Answer: "int", Points: 10,
			}},
		},
	}
}

func do(t *testing.T, h http.Handler, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	h := NewRouter(newFake(), Options{})

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantLen    int
	}{
		{"courses", "/rest/v1/courses?select=*&order=order_index.asc", http.StatusOK, 1},
		{"lessons by course", "/rest/v1/lessons?course_id=eq.java", http.StatusOK, 1},
		{"lessons unknown course", "/rest/v1/lessons?course_id=eq.rust", http.StatusOK, 0},
		{"flashcards", "/rest/v1/flashcards?lesson_id=eq.vars&select=*&order=order_index.asc", http.StatusOK, 2},
		{"flashcards empty", "/rest/v1/flashcards?lesson_id=eq.none", http.StatusOK, 0},
		{"flashcards no filter", "/rest/v1/flashcards", http.StatusBadRequest, -1},
		{"exercises", "/rest/v1/exercises?lesson_id=eq.vars&select=*&order=order_index.asc", http.StatusOK, 1},
		{"exercises empty", "/rest/v1/exercises?lesson_id=eq.none", http.StatusOK, 0},
		{"exercises no filter", "/rest/v1/exercises", http.StatusBadRequest, -1},
		{"exercises bad operator", "/rest/v1/exercises?lesson_id=gt.vars", http.StatusBadRequest, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.target, nil)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantLen < 0 {
				return
			}
			var rows []map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
			assert.Len(t, rows, tt.wantLen)
		})
	}
}

func TestExercisePayloadShape(t *testing.T) {
	h := NewRouter(newFake(), Options{})
	rec := do(t, h, "/rest/v1/exercises?lesson_id=eq.vars", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var recs []exercise.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recs))
	require.Len(t, recs, 1)
	spec, err := exercise.Parse(recs[0])
	require.NoError(t, err)
	assert.Equal(t, exercise.KindMultipleChoice, spec.Kind)
}

func TestFlashcardPayloadShape(t *testing.T) {
	h := NewRouter(newFake(), Options{})
	rec := do(t, h, "/rest/v1/flashcards?lesson_id=eq.vars", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"front_content":"int"`)
	assert.Contains(t, rec.Body.String(), `"back_content":"32-bit integer"`)

	var cards []catalog.Flashcard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	require.Len(t, cards, 2)
	assert.Equal(t, "c2", cards[1].ID)
}

func TestLessonFlags(t *testing.T) {
	h := NewRouter(newFake(), Options{})
	rec := do(t, h, "/rest/v1/lessons?course_id=eq.java", nil)
	assert.Contains(t, rec.Body.String(), `"is_premium":true`)
	assert.Contains(t, rec.Body.String(), `"required_score":40`)
}

func TestAPIKey(t *testing.T) {
	h := NewRouter(newFake(), Options{APIKey: "secret"})

	rec := do(t, h, "/rest/v1/courses", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, "/rest/v1/courses", map[string]string{"apikey": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, "/rest/v1/courses", map[string]string{"apikey": "secret"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, "/rest/v1/courses", map[string]string{"Authorization": "Bearer secret"})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Health stays open.
	rec = do(t, h, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogError(t *testing.T) {
	f := newFake()
	f.err = errors.New("disk gone")
	h := NewRouter(f, Options{})

	rec := do(t, h, "/rest/v1/courses", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk gone")
}
