package catalog

import (
	"errors"
	"testing"
)

func TestLessonUnlocked(t *testing.T) {
	tests := []struct {
		name   string
		lesson Lesson
		score  int
		want   bool
	}{
		{"free lesson", Lesson{ID: "l1"}, 0, true},
		{"free lesson ignores threshold", Lesson{ID: "l1", RequiredScore: 500}, 0, true},
		{"premium below threshold", Lesson{ID: "l2", Premium: true, RequiredScore: 100}, 99, false},
		{"premium at threshold", Lesson{ID: "l2", Premium: true, RequiredScore: 100}, 100, true},
		{"premium above threshold", Lesson{ID: "l2", Premium: true, RequiredScore: 100}, 250, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lesson.Unlocked(tt.score); got != tt.want {
				t.Errorf("Unlocked(%d) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestCheckUnlocked(t *testing.T) {
	l := Lesson{ID: "loops", Premium: true, RequiredScore: 100}
	err := l.CheckUnlocked(40)
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	var lErr *LockedError
	if !errors.As(err, &lErr) || lErr.RequiredScore != 100 || lErr.Score != 40 {
		t.Errorf("unexpected error detail: %+v", lErr)
	}
	if got := l.PointsToUnlock(40); got != 60 {
		t.Errorf("PointsToUnlock = %d, want 60", got)
	}
	if err := l.CheckUnlocked(100); err != nil {
		t.Errorf("CheckUnlocked(100) = %v", err)
	}
}

func TestCourseUnlocked(t *testing.T) {
	c := Course{ID: "java", Premium: true, RequiredScore: 10}
	if c.Unlocked(9) {
		t.Error("expected locked at 9")
	}
	if !c.Unlocked(10) {
		t.Error("expected unlocked at 10")
	}
}

func TestSortLessons(t *testing.T) {
	ls := []Lesson{{ID: "c", OrderIndex: 2}, {ID: "b", OrderIndex: 1}, {ID: "a", OrderIndex: 2}}
	SortLessons(ls)
	want := []string{"b", "a", "c"}
	for i, id := range want {
		if ls[i].ID != id {
			t.Errorf("ls[%d] = %q, want %q", i, ls[i].ID, id)
		}
	}
}

func TestCheckPlayable(t *testing.T) {
	premium := Course{ID: "android", Premium: true, RequiredScore: 200}
	free := Lesson{ID: "views", CourseID: "android"}

	err := CheckPlayable(premium, free, 150)
	var lErr *LockedError
	if !errors.As(err, &lErr) || lErr.ID != "android" || lErr.RequiredScore != 200 {
		t.Fatalf("free lesson in locked course: got %v", err)
	}
	if err := CheckPlayable(premium, free, 200); err != nil {
		t.Errorf("unlocked course: %v", err)
	}

	locked := Lesson{ID: "intents", Premium: true, RequiredScore: 300}
	err = CheckPlayable(premium, locked, 250)
	if !errors.As(err, &lErr) || lErr.ID != "intents" {
		t.Errorf("locked lesson in open course: got %v", err)
	}
	if err := CheckPlayable(Course{ID: "java"}, Lesson{ID: "vars"}, 0); err != nil {
		t.Errorf("free content: %v", err)
	}
}

func TestSortFlashcards(t *testing.T) {
	fs := []Flashcard{{ID: "c", OrderIndex: 1}, {ID: "a", OrderIndex: 0}, {ID: "b", OrderIndex: 1}}
	SortFlashcards(fs)
	got := []string{fs[0].ID, fs[1].ID, fs[2].ID}
	want := []string{"a", "c", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
