package home

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
	"github.com/devroad/devroad/internal/session"
)

type stubCatalog struct {
	courses []catalog.Course
	err     error
}

func (s *stubCatalog) ListCourses(context.Context) ([]catalog.Course, error) {
	return s.courses, s.err
}

func (s *stubCatalog) ListLessons(context.Context, string) ([]catalog.Lesson, error) {
	return nil, nil
}

func (s *stubCatalog) ListFlashcards(context.Context, string) ([]catalog.Flashcard, error) {
	return nil, nil
}

func testHome(cat *stubCatalog, score int) *HomeScreen {
	return New(&screen.Env{
		Catalog: cat,
		Scores:  session.NewMemoryScoreStore(score),
		Tr:      i18n.English(),
		Log:     logger.Nop(),
	})
}

func load(h *HomeScreen) tea.Cmd {
	_, cmd := h.Update(h.Init()())
	return cmd
}

func TestHomeScreen_ListsCoursesInOrder(t *testing.T) {
	h := testHome(&stubCatalog{courses: []catalog.Course{
		{ID: "b", Title: "Concurrency", OrderIndex: 2},
		{ID: "a", Title: "Basics", OrderIndex: 1},
	}}, 7)
	cmd := load(h)

	if len(h.menu.Items) != 2 || h.menu.Items[0].Label != "Basics" {
		t.Fatalf("menu = %+v, want Basics first", h.menu.Items)
	}
	if cmd == nil {
		t.Fatal("expected a score command")
	}
	if msg, ok := cmd().(screen.ScoreMsg); !ok || msg.Score != 7 {
		t.Errorf("msg = %#v, want ScoreMsg{7}", msg)
	}
}

func TestHomeScreen_LockedCourse(t *testing.T) {
	h := testHome(&stubCatalog{courses: []catalog.Course{
		{ID: "pro", Title: "Generics", Premium: true, RequiredScore: 100},
	}}, 40)
	load(h)

	item := h.menu.Items[0]
	if !item.Dimmed || !strings.Contains(item.Detail, "60 to go") {
		t.Errorf("item = %+v, want dimmed with 60 to go", item)
	}

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("locked course must not open")
	}
	if !strings.Contains(h.View(80, 24), "100 points required") {
		t.Error("expected lock notice in view")
	}
}

func TestHomeScreen_OpenCourse(t *testing.T) {
	h := testHome(&stubCatalog{courses: []catalog.Course{{ID: "a", Title: "Basics"}}}, 0)
	load(h)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want PushScreenMsg", msg)
	}
	if msg.Screen.Title() != "Basics" {
		t.Errorf("pushed %q, want Basics", msg.Screen.Title())
	}
}

func TestHomeScreen_Empty(t *testing.T) {
	h := testHome(&stubCatalog{}, 0)
	load(h)
	if !strings.Contains(h.View(80, 24), "No courses yet") {
		t.Error("expected empty catalog message")
	}
}

func TestHomeScreen_LoadError(t *testing.T) {
	h := testHome(&stubCatalog{err: errors.New("offline")}, 0)
	if cmd := load(h); cmd != nil {
		t.Error("expected no command on error")
	}
	if h.err == nil {
		t.Error("expected error to be kept")
	}
}
