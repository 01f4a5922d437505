package summary

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/devroad/devroad/internal/exercise"
	"github.com/devroad/devroad/internal/i18n"
	"github.com/devroad/devroad/internal/router"
	"github.com/devroad/devroad/internal/session"
)

func testSummary() *session.SessionSummary {
	return &session.SessionSummary{
		LessonID:       "l1",
		TotalExercises: 3,
		TotalCorrect:   2,
		Score:          20,
		MaxScore:       30,
		Accuracy:       2.0 / 3.0,
		Results: []session.ExerciseResult{
			{ExerciseID: "e1", Kind: exercise.KindMultipleChoice, Correct: true, Awarded: 10},
			{ExerciseID: "e2", Kind: exercise.KindDragDrop, Correct: false},
			{ExerciseID: "e3", Kind: exercise.KindArrangeCode, Correct: true, Awarded: 10},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), nil, i18n.English())
	if s.Title() != "Lesson complete" {
		t.Errorf("Title = %q, want %q", s.Title(), "Lesson complete")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), nil, i18n.English())
	view := s.View(80, 24)
	for _, want := range []string{"You earned 20 of 30 points", "2 correct answers", "67%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "could not be saved") {
		t.Error("unexpected commit failure notice")
	}
}

func TestSummaryScreen_CommitFailure(t *testing.T) {
	s := New(testSummary(), errors.New("disk full"), i18n.English())
	view := s.View(80, 24)
	if !strings.Contains(view, "Your score could not be saved.") {
		t.Error("expected commit failure notice")
	}
}

func TestSummaryScreen_NilSummary(t *testing.T) {
	s := New(nil, nil, i18n.English())
	if view := s.View(80, 24); view != "" {
		t.Errorf("View = %q, want empty", view)
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, code := range []rune{tea.KeyEnter, tea.KeyEscape} {
		s := New(testSummary(), nil, i18n.English())
		_, cmd := s.Update(tea.KeyPressMsg{Code: code})
		if cmd == nil {
			t.Fatalf("expected a command on key %q", code)
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("key %q: expected PopScreenMsg", code)
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), nil, i18n.English())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
