package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devroad/devroad/internal/exercise"
)

// backend records the last request and replies with body/status.
type backend struct {
	status int
	body   string
	last   *http.Request
}

func (b *backend) server(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/rest/v1/{table}", func(w http.ResponseWriter, req *http.Request) {
		b.last = req
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(b.status)
		_, _ = w.Write([]byte(b.body))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := New(Options{BaseURL: url + "/", APIKey: "anon-key", Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

const exercisesBody = `[
  {"id":"e2","lesson_id":"vars","type":"arrange_code","question":"Order","data":{"lines":["a","b"]},"answer":"","points":20,"order_index":1},
  {"id":"e1","lesson_id":"vars","type":"multiple_choice","question":"Pick","data":"{\"options\":[\"int\",\"String\"]}","answer":"int","points":10,"order_index":0}
]`

func TestLoadExercises(t *testing.T) {
	b := &backend{status: http.StatusOK, body: exercisesBody}
	c := newClient(t, b.server(t).URL)

	specs, err := c.LoadExercises(context.Background(), "vars")
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "e1", specs[0].ID)
	assert.Equal(t, exercise.KindArrangeCode, specs[1].Kind)

	require.NotNil(t, b.last)
	assert.Equal(t, "/rest/v1/exercises", b.last.URL.Path)
	q := b.last.URL.Query()
	assert.Equal(t, "eq.vars", q.Get("lesson_id"))
	assert.Equal(t, "*", q.Get("select"))
	assert.Equal(t, "order_index.asc", q.Get("order"))
	assert.Equal(t, "anon-key", b.last.Header.Get("apikey"))
	assert.Equal(t, "Bearer anon-key", b.last.Header.Get("Authorization"))
}

func TestLoadExercisesEmpty(t *testing.T) {
	b := &backend{status: http.StatusOK, body: `[]`}
	c := newClient(t, b.server(t).URL)

	specs, err := c.LoadExercises(context.Background(), "vars")
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestLoadExercisesErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		transport bool
	}{
		{"server error", http.StatusInternalServerError, `{"message":"boom"}`, true},
		{"unauthorized", http.StatusUnauthorized, `{}`, true},
		{"not json", http.StatusOK, `<html>`, true},
		{"unknown kind", http.StatusOK, `[{"id":"x","lesson_id":"vars","type":"flashcard","data":{}}]`, false},
		{"answer not an option", http.StatusOK, `[{"id":"x","lesson_id":"vars","type":"multiple_choice","data":{"options":["a"]},"answer":"b"}]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &backend{status: tt.status, body: tt.body}
			c := newClient(t, b.server(t).URL)

			_, err := c.LoadExercises(context.Background(), "vars")
			require.Error(t, err)
			if tt.transport {
				assert.ErrorIs(t, err, exercise.ErrTransport)
				var te *exercise.TransportError
				assert.True(t, errors.As(err, &te))
			} else {
				assert.ErrorIs(t, err, exercise.ErrMalformedExerciseData)
			}
		})
	}
}

func TestLoadExercisesUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newClient(t, url)
	_, err := c.LoadExercises(context.Background(), "vars")
	assert.ErrorIs(t, err, exercise.ErrTransport)
}

func TestLoadExercisesCancelled(t *testing.T) {
	b := &backend{status: http.StatusOK, body: `[]`}
	c := newClient(t, b.server(t).URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.LoadExercises(ctx, "vars")
	assert.ErrorIs(t, err, exercise.ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCoursesAndLessons(t *testing.T) {
	b := &backend{status: http.StatusOK, body: `[{"id":"java","title":"Java","order_index":0,"is_premium":true,"required_score":30}]`}
	c := newClient(t, b.server(t).URL)

	courses, err := c.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.True(t, courses[0].Premium)
	assert.Equal(t, 30, courses[0].RequiredScore)

	b.body = `[{"id":"vars","course_id":"java","title":"Variables","order_index":0}]`
	lessons, err := c.ListLessons(context.Background(), "java")
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, "eq.java", b.last.URL.Query().Get("course_id"))
	assert.Equal(t, "/rest/v1/lessons", b.last.URL.Path)
}

func TestListFlashcards(t *testing.T) {
	b := &backend{status: http.StatusOK, body: `[
  {"id":"c1","lesson_id":"vars","front_content":"int","back_content":"32-bit integer","order_index":0},
  {"id":"c2","lesson_id":"vars","front_content":"long","back_content":"64-bit integer","order_index":1}
]`}
	c := newClient(t, b.server(t).URL)

	cards, err := c.ListFlashcards(context.Background(), "vars")
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "int", cards[0].Front)
	assert.Equal(t, "64-bit integer", cards[1].Back)
	assert.Equal(t, "/rest/v1/flashcards", b.last.URL.Path)
	assert.Equal(t, "eq.vars", b.last.URL.Query().Get("lesson_id"))
	assert.Equal(t, "order_index.asc", b.last.URL.Query().Get("order"))

	b.status = http.StatusBadGateway
	_, err = c.ListFlashcards(context.Background(), "vars")
	assert.ErrorIs(t, err, exercise.ErrTransport)
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestNoAPIKeyHeaders(t *testing.T) {
	b := &backend{status: http.StatusOK, body: `[]`}
	srv := b.server(t)
	c, err := New(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.ListCourses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, b.last.Header.Get("apikey"))
	assert.Empty(t, b.last.Header.Get("Authorization"))
}
