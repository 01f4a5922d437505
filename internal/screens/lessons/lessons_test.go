package lessons

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/devroad/devroad/internal/catalog"
	"github.com/devroad/devroad/internal/i18n"
	"github.com/devroad/devroad/internal/logger"
	"github.com/devroad/devroad/internal/router"
	"github.com/devroad/devroad/internal/screen"
	"github.com/devroad/devroad/internal/screens/flashcards"
	"github.com/devroad/devroad/internal/session"
	"github.com/devroad/devroad/internal/store"
)

type stubCatalog struct {
	lessons []catalog.Lesson
}

func (s *stubCatalog) ListCourses(context.Context) ([]catalog.Course, error) { return nil, nil }

func (s *stubCatalog) ListLessons(_ context.Context, courseID string) ([]catalog.Lesson, error) {
	var out []catalog.Lesson
	for _, l := range s.lessons {
		if l.CourseID == courseID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *stubCatalog) ListFlashcards(context.Context, string) ([]catalog.Flashcard, error) {
	return nil, nil
}

type stubProgress map[string]store.LessonProgress

func (p stubProgress) All(context.Context) (map[string]store.LessonProgress, error) {
	return p, nil
}

var course = catalog.Course{ID: "c1", Title: "Basics"}

func testLessons(score int, progress stubProgress) *LessonsScreen {
	cat := &stubCatalog{lessons: []catalog.Lesson{
		{ID: "l2", CourseID: "c1", Title: "Functions", OrderIndex: 2, Premium: true, RequiredScore: 50},
		{ID: "l1", CourseID: "c1", Title: "Variables", OrderIndex: 1},
		{ID: "x", CourseID: "c2", Title: "Other course"},
	}}
	scores := session.NewMemoryScoreStore(score)
	return New(&screen.Env{
		Catalog:  cat,
		Scores:   scores,
		Progress: progress,
		Tr:       i18n.English(),
		Log:      logger.Nop(),
		NewSession: func(l session.Listener) *session.Controller {
			return session.New(session.Options{Scores: scores, Listener: l})
		},
	}, course)
}

func load(s *LessonsScreen) {
	s.Update(s.Init()())
}

func TestLessonsScreen_Title(t *testing.T) {
	s := testLessons(0, nil)
	if s.Title() != "Basics" {
		t.Errorf("Title = %q, want Basics", s.Title())
	}
}

func TestLessonsScreen_ListsCourseLessons(t *testing.T) {
	s := testLessons(0, stubProgress{"l1": {LessonID: "l1", Completed: true}})
	load(s)

	if len(s.menu.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(s.menu.Items))
	}
	first, second := s.menu.Items[0], s.menu.Items[1]
	if first.Label != "Variables" || !strings.Contains(first.Detail, "done") {
		t.Errorf("first = %+v, want completed Variables", first)
	}
	if !second.Dimmed || !strings.Contains(second.Detail, "50 to go") {
		t.Errorf("second = %+v, want locked with 50 to go", second)
	}
}

func TestLessonsScreen_LockedLessonDoesNotStart(t *testing.T) {
	s := testLessons(10, nil)
	load(s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("locked lesson must not start")
	}
	if !strings.Contains(s.View(80, 24), "40 to go") {
		t.Error("expected lock notice")
	}
}

func TestLessonsScreen_UnlockedByScore(t *testing.T) {
	s := testLessons(50, nil)
	load(s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok || msg.Screen.Title() != "Functions" {
		t.Errorf("msg = %#v, want push of Functions", msg)
	}
	if _, ok := msg.Screen.(*flashcards.FlashcardsScreen); !ok {
		t.Errorf("pushed %T, want the lesson's flashcards first", msg.Screen)
	}
}
