package store

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devroad/devroad/ent"
	"github.com/devroad/devroad/ent/attemptevent"
	"github.com/devroad/devroad/ent/course"
	entexercise "github.com/devroad/devroad/ent/exercise"
	"github.com/devroad/devroad/ent/flashcard"
	"github.com/devroad/devroad/ent/lesson"
	"github.com/devroad/devroad/ent/sequence"
	"github.com/devroad/devroad/ent/userprogress"
	"github.com/devroad/devroad/ent/userscore"
	"github.com/devroad/devroad/internal/catalog"
	"github.com/devroad/devroad/internal/exercise"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWithPragmas(t *testing.T) {
	got := withPragmas("a.db?_pragma=busy_timeout(100)")
	if strings.Count(got, "busy_timeout") != 1 {
		t.Errorf("busy_timeout duplicated: %s", got)
	}
	if !strings.Contains(got, "&_pragma=foreign_keys(1)") {
		t.Errorf("missing foreign_keys: %s", got)
	}
	if got := withPragmas("b.db"); !strings.HasPrefix(got, "b.db?_pragma=") {
		t.Errorf("withPragmas(b.db) = %s", got)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	tables := []string{
		course.Table, lesson.Table, flashcard.Table, entexercise.Table,
		userscore.Table, userprogress.Table, attemptevent.Table, sequence.Table,
	}
	for _, table := range tables {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.ScoreRepo("u").SetScore(context.Background(), 12))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	score, err := s.ScoreRepo("u").GetScore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, score)
}

func mcRecord(id, lessonID string, order int) exercise.Record {
	return exercise.Record{
		ID:         id,
		LessonID:   lessonID,
		Type:       "multiple_choice",
		Question:   "Which type holds whole numbers?",
		Data:       json.RawMessage(`{"options":["int","String"]}`),
		Answer:     "int",
		Points:     10,
		OrderIndex: order,
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.CatalogRepo()
	ctx := context.Background()

	require.NoError(t, repo.UpsertCourse(ctx, catalog.Course{ID: "java", Title: "Java", OrderIndex: 1}))
	require.NoError(t, repo.UpsertCourse(ctx, catalog.Course{ID: "go", Title: "Go", OrderIndex: 0, Premium: true, RequiredScore: 100}))
	require.NoError(t, repo.UpsertLesson(ctx, catalog.Lesson{ID: "vars", CourseID: "java", Title: "Variables", OrderIndex: 1}))
	require.NoError(t, repo.UpsertLesson(ctx, catalog.Lesson{ID: "intro", CourseID: "java", Title: "Intro", OrderIndex: 0}))

	courses, err := repo.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "go", courses[0].ID)
	assert.True(t, courses[0].Premium)
	assert.Equal(t, 100, courses[0].RequiredScore)

	lessons, err := repo.ListLessons(ctx, "java")
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, "intro", lessons[0].ID)

	// Upsert replaces.
	require.NoError(t, repo.UpsertLesson(ctx, catalog.Lesson{ID: "intro", CourseID: "java", Title: "Hello", OrderIndex: 0}))
	l, err := repo.GetLesson(ctx, "intro")
	require.NoError(t, err)
	assert.Equal(t, "Hello", l.Title)

	_, err = repo.GetLesson(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetCourse(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadExercises(t *testing.T) {
	s := openTestStore(t)
	repo := s.CatalogRepo()
	ctx := context.Background()

	require.NoError(t, repo.UpsertExercise(ctx, mcRecord("e3", "vars", 2)))
	require.NoError(t, repo.UpsertExercise(ctx, mcRecord("e1", "vars", 0)))
	require.NoError(t, repo.UpsertExercise(ctx, mcRecord("e2", "vars", 1)))
	require.NoError(t, repo.UpsertExercise(ctx, mcRecord("x1", "other", 0)))

	specs, err := repo.LoadExercises(ctx, "vars")
	require.NoError(t, err)
	require.Len(t, specs, 3)
	assert.Equal(t, []string{"e1", "e2", "e3"}, []string{specs[0].ID, specs[1].ID, specs[2].ID})
	assert.Equal(t, exercise.KindMultipleChoice, specs[0].Kind)

	empty, err := repo.LoadExercises(ctx, "nothing-here")
	require.NoError(t, err)
	assert.Empty(t, empty)

	counts, err := repo.CountExercises(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, counts["vars"])
	assert.Equal(t, 1, counts["other"])
}

func TestUpsertExerciseRejectsMalformed(t *testing.T) {
	s := openTestStore(t)
	rec := mcRecord("bad", "vars", 0)
	rec.Answer = "float"
	err := s.CatalogRepo().UpsertExercise(context.Background(), rec)
	assert.ErrorIs(t, err, exercise.ErrMalformedExerciseData)
}

func TestLoadExercisesMalformedRow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	// Bypass the parse check to simulate content written by another tool.
	_, err := s.Client().Exercise.Create().
		SetExerciseID("broken").
		SetLessonID("vars").
		SetKind("drag_drop").
		SetQuestion("q").
		SetData(`{"items":["a"]}`).
		SetPoints(5).
		Save(ctx)
	require.NoError(t, err)

	_, err = s.CatalogRepo().LoadExercises(ctx, "vars")
	var mErr *exercise.MalformedError
	require.True(t, errors.As(err, &mErr), "got %v", err)
	assert.Equal(t, "broken", mErr.ExerciseID)
}

func TestExerciseIDsAreScopedToLesson(t *testing.T) {
	s := openTestStore(t)
	repo := s.CatalogRepo()
	ctx := context.Background()

	require.NoError(t, repo.UpsertExercise(ctx, mcRecord("ex1", "L1", 0)))
	require.NoError(t, repo.UpsertExercise(ctx, mcRecord("ex1", "L2", 0)))

	for _, lessonID := range []string{"L1", "L2"} {
		specs, err := repo.LoadExercises(ctx, lessonID)
		require.NoError(t, err)
		require.Len(t, specs, 1, "lesson %s", lessonID)
		assert.Equal(t, "ex1", specs[0].ID)
	}

	// Re-upserting within a lesson still replaces.
	rec := mcRecord("ex1", "L1", 0)
	rec.Points = 25
	require.NoError(t, repo.UpsertExercise(ctx, rec))
	specs, err := repo.LoadExercises(ctx, "L1")
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, 25, specs[0].Points)

	counts, err := repo.CountExercises(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"L1": 1, "L2": 1}, counts)
}

func TestSchemaValidatorsApplied(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.CatalogRepo().UpsertCourse(ctx, catalog.Course{ID: "java"})
	require.Error(t, err)
	assert.True(t, ent.IsValidationError(err), "got %v", err)

	err = s.CatalogRepo().UpsertLesson(ctx, catalog.Lesson{ID: "vars", CourseID: "java", Title: "Variables", Premium: true, RequiredScore: -1})
	assert.True(t, ent.IsValidationError(err), "got %v", err)

	err = s.AttemptRepo("alice").Append(ctx, Attempt{LessonID: "vars", ExerciseID: "e1", Kind: "multiple_choice"})
	assert.True(t, ent.IsValidationError(err), "got %v", err)
}

func TestFlashcards(t *testing.T) {
	s := openTestStore(t)
	repo := s.CatalogRepo()
	ctx := context.Background()

	cards := []catalog.Flashcard{
		{ID: "c2", LessonID: "vars", Front: "final", Back: "Cannot be reassigned", OrderIndex: 1},
		{ID: "c1", LessonID: "vars", Front: "int", Back: "32-bit integer", OrderIndex: 0},
		{ID: "c1", LessonID: "loops", Front: "for", Back: "Counted loop", OrderIndex: 0},
	}
	for _, fc := range cards {
		require.NoError(t, repo.UpsertFlashcard(ctx, fc))
	}

	got, err := repo.ListFlashcards(ctx, "vars")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "int", got[0].Front)
	assert.Equal(t, "Cannot be reassigned", got[1].Back)

	loops, err := repo.ListFlashcards(ctx, "loops")
	require.NoError(t, err)
	require.Len(t, loops, 1)
	assert.Equal(t, "for", loops[0].Front)

	none, err := repo.ListFlashcards(ctx, "nothing")
	require.NoError(t, err)
	assert.Empty(t, none)

	err = repo.UpsertFlashcard(ctx, catalog.Flashcard{ID: "blank", LessonID: "vars"})
	assert.True(t, ent.IsValidationError(err), "got %v", err)
}

func TestScoreRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	alice := s.ScoreRepo("alice")
	bob := s.ScoreRepo("bob")

	score, err := alice.GetScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	require.NoError(t, alice.SetScore(ctx, 100))
	require.NoError(t, alice.SetScore(ctx, 130))
	require.NoError(t, bob.SetScore(ctx, 7))

	score, _ = alice.GetScore(ctx)
	assert.Equal(t, 130, score)
	score, _ = bob.GetScore(ctx)
	assert.Equal(t, 7, score)

	require.NoError(t, alice.Reset(ctx))
	score, _ = alice.GetScore(ctx)
	assert.Equal(t, 0, score)
}

func TestProgressKeepsBestScore(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProgressRepo("alice")

	_, err := repo.Get(ctx, "vars")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.RecordCompletion(ctx, "vars", 30))
	require.NoError(t, repo.RecordCompletion(ctx, "vars", 10))
	p, err := repo.Get(ctx, "vars")
	require.NoError(t, err)
	assert.True(t, p.Completed)
	assert.Equal(t, 30, p.Score)

	require.NoError(t, repo.RecordCompletion(ctx, "vars", 45))
	require.NoError(t, repo.RecordCompletion(ctx, "loops", 0))
	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 45, all["vars"].Score)

	require.NoError(t, repo.Reset(ctx))
	all, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAttemptRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.AttemptRepo("alice")

	base := time.Now().UTC().Truncate(time.Second)
	for i, correct := range []bool{true, false, true, true} {
		require.NoError(t, repo.Append(ctx, Attempt{
			Timestamp:  base.Add(time.Duration(i) * time.Second),
			SessionID:  "s1",
			LessonID:   "vars",
			ExerciseID: "e1",
			Kind:       "multiple_choice",
			Correct:    correct,
			Points:     10,
		}))
	}

	recent, err := repo.Recent(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Greater(t, recent[0].Sequence, recent[1].Sequence)

	acc, n, err := repo.Accuracy(ctx, "vars")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.InDelta(t, 0.75, acc, 1e-9)

	require.NoError(t, repo.Reset(ctx))
	recent, err = repo.Recent(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestCheckSchemaVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"v1.0.0", false},
		{"v1.1.0", false},
		{"v1.2.0", false},
		{"v1.3.0", true},
		{"v2.0.0", true},
		{"1.0.0", true},
		{"", true},
	}
	for _, tt := range tests {
		err := CheckSchemaVersion(tt.version)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckSchemaVersion(%q) error = %v, wantErr %v", tt.version, err, tt.wantErr)
		}
	}
}

const catalogJSON = `{
  "schema_version": "v1.0.0",
  "courses": [{"id": "java", "title": "Java Basics", "order_index": 0}],
  "lessons": [
    {"id": "vars", "course_id": "java", "title": "Variables", "order_index": 0},
    {"id": "loops", "course_id": "java", "title": "Loops", "order_index": 1, "is_premium": true, "required_score": 50}
  ],
  "flashcards": [
    {"id": "f1", "lesson_id": "vars", "front_content": "int", "back_content": "Whole numbers", "order_index": 0}
  ],
  "exercises": [
    {"id": "v1", "lesson_id": "vars", "type": "multiple_choice", "question": "Pick int", "data": {"options": ["int", "String"]}, "answer": "int", "points": 10, "order_index": 0},
    {"id": "v2", "lesson_id": "vars", "type": "arrange_code", "question": "Order", "data": {"lines": ["int x = 1;", "x++;"]}, "points": 20, "order_index": 1}
  ]
}`

func TestImport(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.CatalogRepo()

	f, err := ReadCatalogFile(strings.NewReader(catalogJSON))
	require.NoError(t, err)
	res, err := repo.Import(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Courses: 1, Lessons: 2, Flashcards: 1, Exercises: 2}, res)

	cards, err := repo.ListFlashcards(ctx, "vars")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Whole numbers", cards[0].Back)

	specs, err := repo.LoadExercises(ctx, "vars")
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, exercise.KindArrangeCode, specs[1].Kind)

	loops, err := repo.GetLesson(ctx, "loops")
	require.NoError(t, err)
	assert.False(t, loops.Unlocked(49))
}

func TestImportRollsBackOnMalformed(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.CatalogRepo()

	f, err := ReadCatalogFile(strings.NewReader(catalogJSON))
	require.NoError(t, err)
	f.Exercises = append(f.Exercises, exercise.Record{ID: "bad", LessonID: "vars", Type: "flashcard", Data: json.RawMessage(`{}`)})

	_, err = repo.Import(ctx, f)
	require.ErrorIs(t, err, exercise.ErrMalformedExerciseData)

	courses, err := repo.ListCourses(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestReadCatalogFileRejectsVersion(t *testing.T) {
	_, err := ReadCatalogFile(strings.NewReader(`{"schema_version":"v9.0.0"}`))
	assert.Error(t, err)
}
