// Package lessons is the lesson list of one course.
package lessons

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devroad/devroad/internal/catalog"
	"github.com/devroad/devroad/internal/router"
	"github.com/devroad/devroad/internal/screen"
	"github.com/devroad/devroad/internal/screens/flashcards"
	"github.com/devroad/devroad/internal/store"
	"github.com/devroad/devroad/internal/ui/components"
	"github.com/devroad/devroad/internal/ui/layout"
	"github.com/devroad/devroad/internal/ui/theme"
)

type lessonsLoadedMsg struct {
	lessons  []catalog.Lesson
	score    int
	progress map[string]store.LessonProgress
	err      error
}

// LessonsScreen lists the lessons of a course. Locked lessons cannot be
// started.
type LessonsScreen struct {
	env      *screen.Env
	course   catalog.Course
	lessons  []catalog.Lesson
	progress map[string]store.LessonProgress
	score    int
	menu     components.Menu
	loaded   bool
	err      error
	notice   string
}

var _ screen.Screen = (*LessonsScreen)(nil)
var _ screen.Resumer = (*LessonsScreen)(nil)

func New(env *screen.Env, course catalog.Course) *LessonsScreen {
	return &LessonsScreen{env: env, course: course}
}

func (s *LessonsScreen) Init() tea.Cmd   { return s.load() }
func (s *LessonsScreen) Resume() tea.Cmd { return s.load() }

func (s *LessonsScreen) Title() string { return s.course.Title }

func (s *LessonsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LessonsScreen) load() tea.Cmd {
	env, courseID := s.env, s.course.ID
	return func() tea.Msg {
		ctx := context.Background()
		lessons, err := env.Catalog.ListLessons(ctx, courseID)
		if err != nil {
			return lessonsLoadedMsg{err: err}
		}
		catalog.SortLessons(lessons)
		msg := lessonsLoadedMsg{lessons: lessons, score: env.LoadScore(ctx)}
		if env.Progress != nil {
			p, err := env.Progress.All(ctx)
			if err != nil {
				env.Logger().Warn("read progress failed", "error", err)
			}
			msg.progress = p
		}
		return msg
	}
}

func (s *LessonsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonsLoadedMsg:
		s.loaded = true
		s.err = msg.err
		if msg.err != nil {
			s.env.Logger().Error("list lessons failed", "course_id", s.course.ID, "error", msg.err)
			return s, nil
		}
		s.lessons = msg.lessons
		s.score = msg.score
		s.progress = msg.progress
		s.rebuildMenu()
		score := msg.score
		return s, func() tea.Msg { return screen.ScoreMsg{Score: score} }

	case tea.KeyMsg:
		s.notice = ""
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *LessonsScreen) rebuildMenu() {
	tr := s.env.Tr
	items := make([]components.MenuItem, 0, len(s.lessons))
	for _, l := range s.lessons {
		item := components.MenuItem{Label: l.Title, Action: s.start(l)}
		switch {
		case !l.Unlocked(s.score):
			item.Dimmed = true
			item.Detail = "🔒 " + tr.Td("LessonLocked", map[string]any{
				"Required": l.RequiredScore,
				"Missing":  l.PointsToUnlock(s.score),
			})
		case s.progress[l.ID].Completed:
			item.Detail = "✓ " + tr.T("Completed")
		}
		items = append(items, item)
	}
	sel := s.menu.Selected
	s.menu = components.NewMenu(items)
	if sel < len(items) {
		s.menu.Selected = sel
	}
}

func (s *LessonsScreen) start(l catalog.Lesson) func() tea.Cmd {
	return func() tea.Cmd {
		if err := l.CheckUnlocked(s.score); err != nil {
			s.notice = s.env.Tr.Td("LessonLocked", map[string]any{
				"Required": l.RequiredScore,
				"Missing":  l.PointsToUnlock(s.score),
			})
			return nil
		}
		env := s.env
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: flashcards.New(env, l)}
		}
	}
}

func (s *LessonsScreen) View(width, height int) string {
	tr := s.env.Tr
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Render("  " + s.course.Title))
	b.WriteString("\n")
	if s.course.Description != "" {
		b.WriteString(theme.Subtitle.Render("  " + s.course.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case !s.loaded:
		b.WriteString(theme.Hint.Render("  " + tr.T("Loading")))
	case s.err != nil:
		b.WriteString(theme.Incorrect.Render("  " + tr.T("LoadTransport")))
	case len(s.lessons) == 0:
		b.WriteString(theme.Hint.Render("  " + tr.T("NoLessons")))
	default:
		b.WriteString(s.menu.View())
	}

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("  " + s.notice))
	}
	return b.String()
}
