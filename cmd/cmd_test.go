package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devroad/devroad/internal/catalog"
)

const testCatalog = `{
  "schema_version": "v1.0.0",
  "courses": [{"id": "java", "title": "Java Basics", "order_index": 0}],
  "lessons": [
    {"id": "vars", "course_id": "java", "title": "Variables", "order_index": 0},
    {"id": "loops", "course_id": "java", "title": "Loops", "order_index": 1, "is_premium": true, "required_score": 50}
  ],
  "exercises": [
    {"id": "v1", "lesson_id": "vars", "type": "multiple_choice", "question": "Pick int", "data": {"options": ["int", "String"]}, "answer": "int", "points": 10, "order_index": 0}
  ]
}`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands_ImportListScore(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "devroad.db")
	file := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(file, []byte(testCatalog), 0o644))

	out, err := execute(t, "import", file, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 courses, 2 lessons, 0 flashcards, 1 exercises")

	out, err = execute(t, "course", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "java")
	assert.Contains(t, out, "free")

	out, err = execute(t, "lesson", "list", "--course", "java", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Variables")
	assert.Contains(t, out, "locked (50 points)")

	out, err = execute(t, "score", "show", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Score:             0 (sqlite)")

	out, err = execute(t, "score", "reset", "--all", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Score reset.")
}

func TestCommands_ImportRejectsNewerSchema(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"schema_version": "v2.0.0"}`), 0o644))

	_, err := execute(t, "import", file, "--db", filepath.Join(dir, "devroad.db"))
	assert.Error(t, err)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "devroad "))
}

type stubCatalog struct {
	courses []catalog.Course
	lessons map[string][]catalog.Lesson
}

func (s stubCatalog) ListCourses(context.Context) ([]catalog.Course, error) {
	return s.courses, nil
}

func (s stubCatalog) ListLessons(_ context.Context, courseID string) ([]catalog.Lesson, error) {
	return s.lessons[courseID], nil
}

func (s stubCatalog) ListFlashcards(context.Context, string) ([]catalog.Flashcard, error) {
	return nil, nil
}

func TestPlayableLesson(t *testing.T) {
	cat := stubCatalog{
		courses: []catalog.Course{
			{ID: "java", Title: "Java"},
			{ID: "android", Title: "Android", Premium: true, RequiredScore: 200},
		},
		lessons: map[string][]catalog.Lesson{
			"java":    {{ID: "vars", CourseID: "java"}, {ID: "generics", CourseID: "java", Premium: true, RequiredScore: 80}},
			"android": {{ID: "views", CourseID: "android"}},
		},
	}
	ctx := context.Background()

	l, err := playableLesson(ctx, cat, "vars", 0)
	require.NoError(t, err)
	assert.Equal(t, "vars", l.ID)

	_, err = playableLesson(ctx, cat, "views", 150)
	var lErr *catalog.LockedError
	require.ErrorAs(t, err, &lErr)
	assert.Equal(t, "android", lErr.ID)

	_, err = playableLesson(ctx, cat, "views", 200)
	assert.NoError(t, err)

	_, err = playableLesson(ctx, cat, "generics", 50)
	assert.ErrorIs(t, err, catalog.ErrLocked)

	_, err = playableLesson(ctx, cat, "missing", 1000)
	assert.ErrorContains(t, err, "not found")
}
