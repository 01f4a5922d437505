package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devroad/devroad/internal/catalog"
	"github.com/devroad/devroad/internal/router"
	"github.com/devroad/devroad/internal/screen"
	"github.com/devroad/devroad/internal/screens/lessons"
	"github.com/devroad/devroad/internal/ui/components"
	"github.com/devroad/devroad/internal/ui/layout"
	"github.com/devroad/devroad/internal/ui/theme"
)

type coursesLoadedMsg struct {
	courses []catalog.Course
	score   int
	err     error
}

// HomeScreen lists the courses with their lock state.
type HomeScreen struct {
	env     *screen.Env
	courses []catalog.Course
	score   int
	menu    components.Menu
	loaded  bool
	err     error
	notice  string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	return &HomeScreen{env: env}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.load()
}

// Resume reloads the score, which may have grown during a lesson.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.load()
}

func (h *HomeScreen) Title() string {
	return h.env.Tr.T("CoursesTitle")
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) load() tea.Cmd {
	env := h.env
	return func() tea.Msg {
		ctx := context.Background()
		courses, err := env.Catalog.ListCourses(ctx)
		if err != nil {
			return coursesLoadedMsg{err: err}
		}
		catalog.SortCourses(courses)
		return coursesLoadedMsg{courses: courses, score: env.LoadScore(ctx)}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case coursesLoadedMsg:
		h.loaded = true
		h.err = msg.err
		if msg.err != nil {
			h.env.Logger().Error("list courses failed", "error", msg.err)
			return h, nil
		}
		h.courses = msg.courses
		h.score = msg.score
		h.rebuildMenu()
		score := msg.score
		return h, func() tea.Msg { return screen.ScoreMsg{Score: score} }

	case tea.KeyMsg:
		h.notice = ""
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd
	}
	return h, nil
}

func (h *HomeScreen) rebuildMenu() {
	tr := h.env.Tr
	items := make([]components.MenuItem, 0, len(h.courses))
	for _, c := range h.courses {
		item := components.MenuItem{Label: c.Title, Action: h.open(c)}
		if c.Premium {
			item.Detail = tr.T("Premium")
			if !c.Unlocked(h.score) {
				item.Dimmed = true
				item.Detail = "🔒 " + tr.Td("LessonLocked", map[string]any{
					"Required": c.RequiredScore,
					"Missing":  c.RequiredScore - h.score,
				})
			}
		}
		items = append(items, item)
	}
	sel := h.menu.Selected
	h.menu = components.NewMenu(items)
	if sel < len(items) {
		h.menu.Selected = sel
	}
}

func (h *HomeScreen) open(c catalog.Course) func() tea.Cmd {
	return func() tea.Cmd {
		if !c.Unlocked(h.score) {
			h.notice = h.env.Tr.Td("LessonLocked", map[string]any{
				"Required": c.RequiredScore,
				"Missing":  c.RequiredScore - h.score,
			})
			return nil
		}
		env := h.env
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: lessons.New(env, c)}
		}
	}
}

func (h *HomeScreen) View(width, height int) string {
	tr := h.env.Tr
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Render("  " + tr.T("CoursesTitle")))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("  " + tr.Td("TotalScore", map[string]any{"Score": h.score})))
	b.WriteString("\n\n")

	switch {
	case !h.loaded:
		b.WriteString(theme.Hint.Render("  " + tr.T("Loading")))
	case h.err != nil:
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("  %s", tr.T("LoadTransport"))))
	case len(h.courses) == 0:
		b.WriteString(theme.Hint.Render("  " + tr.T("NoCourses")))
	default:
		b.WriteString(h.menu.View())
	}

	if h.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("  " + h.notice))
	}
	return b.String()
}
