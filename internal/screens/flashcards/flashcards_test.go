package flashcards

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/devroad/devroad/internal/catalog"
	"github.com/devroad/devroad/internal/i18n"
	"github.com/devroad/devroad/internal/logger"
	"github.com/devroad/devroad/internal/router"
	"github.com/devroad/devroad/internal/screen"
	sessionscreen "github.com/devroad/devroad/internal/screens/session"
	"github.com/devroad/devroad/internal/session"
)

type stubCatalog struct {
	cards []catalog.Flashcard
	err   error
	asked string
}

func (s *stubCatalog) ListCourses(context.Context) ([]catalog.Course, error) { return nil, nil }

func (s *stubCatalog) ListLessons(context.Context, string) ([]catalog.Lesson, error) {
	return nil, nil
}

func (s *stubCatalog) ListFlashcards(_ context.Context, lessonID string) ([]catalog.Flashcard, error) {
	s.asked = lessonID
	return s.cards, s.err
}

var testLesson = catalog.Lesson{ID: "l1", CourseID: "c1", Title: "Variables"}

func testDeck(cat *stubCatalog) *FlashcardsScreen {
	scores := session.NewMemoryScoreStore(0)
	return New(&screen.Env{
		Catalog: cat,
		Scores:  scores,
		Tr:      i18n.English(),
		Log:     logger.Nop(),
		NewSession: func(l session.Listener) *session.Controller {
			return session.New(session.Options{Scores: scores, Listener: l})
		},
	}, testLesson)
}

func twoCards() *stubCatalog {
	return &stubCatalog{cards: []catalog.Flashcard{
		{ID: "c2", LessonID: "l1", Front: "final", Back: "cannot be reassigned", OrderIndex: 2},
		{ID: "c1", LessonID: "l1", Front: "int", Back: "a 32-bit integer", OrderIndex: 1},
	}}
}

func press(s *FlashcardsScreen, keys ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = s.Update(k)
	}
	return cmd
}

func wantExercises(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("msg = %#v, want ReplaceScreenMsg", msg)
	}
	if _, ok := msg.Screen.(*sessionscreen.SessionScreen); !ok {
		t.Errorf("replaced with %T, want *session.SessionScreen", msg.Screen)
	}
}

func TestFlashcardsScreen_Title(t *testing.T) {
	s := testDeck(twoCards())
	if s.Title() != "Variables" {
		t.Errorf("Title = %q, want Variables", s.Title())
	}
}

func TestFlashcardsScreen_FlipAndNavigate(t *testing.T) {
	cat := twoCards()
	s := testDeck(cat)
	if _, cmd := s.Update(s.Init()()); cmd != nil {
		t.Fatal("a non-empty deck must not skip to the exercises")
	}
	if cat.asked != "l1" {
		t.Errorf("asked for %q, want l1", cat.asked)
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "int") || !strings.Contains(view, "1 / 2") {
		t.Errorf("expected first card front, got:\n%s", view)
	}

	press(s, tea.KeyPressMsg{Code: tea.KeySpace})
	if !s.flipped || !strings.Contains(s.View(80, 24), "a 32-bit integer") {
		t.Error("space should flip to the back")
	}

	press(s, tea.KeyPressMsg{Code: tea.KeyRight})
	if s.index != 1 || s.flipped {
		t.Errorf("index = %d flipped = %v, want second card front", s.index, s.flipped)
	}
	if !strings.Contains(s.View(80, 24), "final") {
		t.Error("expected second card front")
	}

	press(s, tea.KeyPressMsg{Code: tea.KeySpace}, tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.index != 0 || s.flipped {
		t.Errorf("index = %d flipped = %v, want first card front", s.index, s.flipped)
	}

	// Left on the first card stays put.
	press(s, tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.index != 0 {
		t.Errorf("index = %d, want 0", s.index)
	}
}

func TestFlashcardsScreen_PastLastCardStartsExercises(t *testing.T) {
	s := testDeck(twoCards())
	s.Update(s.Init()())

	if cmd := press(s, tea.KeyPressMsg{Code: tea.KeyRight}); cmd != nil {
		t.Fatal("moving to the second card must not leave the deck")
	}
	wantExercises(t, press(s, tea.KeyPressMsg{Code: tea.KeyRight}))
}

func TestFlashcardsScreen_EnterStartsExercises(t *testing.T) {
	s := testDeck(twoCards())
	s.Update(s.Init()())
	wantExercises(t, press(s, tea.KeyPressMsg{Code: tea.KeyEnter}))
}

func TestFlashcardsScreen_EmptyDeckSkipsToExercises(t *testing.T) {
	s := testDeck(&stubCatalog{})
	_, cmd := s.Update(s.Init()())
	wantExercises(t, cmd)
}

func TestFlashcardsScreen_LoadFailure(t *testing.T) {
	s := testDeck(&stubCatalog{err: errors.New("offline")})
	if _, cmd := s.Update(s.Init()()); cmd != nil {
		t.Error("a failed load should wait for the learner")
	}
	if !strings.Contains(s.View(80, 24), "could not be loaded") {
		t.Error("expected load failure notice")
	}
	press(s, tea.KeyPressMsg{Code: tea.KeySpace})
	if s.flipped {
		t.Error("nothing to flip without cards")
	}
	wantExercises(t, press(s, tea.KeyPressMsg{Code: tea.KeyEnter}))
}

func TestFlashcardsScreen_KeysIgnoredWhileLoading(t *testing.T) {
	s := testDeck(twoCards())
	if cmd := press(s, tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("keys before load must be ignored")
	}
	if !strings.Contains(s.View(80, 24), "Loading flashcards") {
		t.Error("expected loading notice")
	}
}
