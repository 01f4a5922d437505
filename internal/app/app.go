// Package app is the root Bubble Tea model.
package app

import (
	"fmt"
	"os"
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/devroad/devroad/internal/catalog"
	"github.com/devroad/devroad/internal/router"
	"github.com/devroad/devroad/internal/screen"
	"github.com/devroad/devroad/internal/screens/flashcards"
	"github.com/devroad/devroad/internal/screens/home"
	"github.com/devroad/devroad/internal/ui/layout"
)

// Options tune the initial screen stack.
type Options struct {
	// StartLesson, when set, opens the lesson's flashcards directly above
	// the course list.
	StartLesson *catalog.Lesson
	// Ringer, when set, is connected to the program for its lifetime.
	Ringer *Ringer
}

// bellMsg carries a bell sequence into the update loop, so the renderer
// writes it instead of a second writer racing it on stdout.
type bellMsg string

// Ringer forwards bell sequences to the running program. Sequences rung
// while no program is attached are dropped.
type Ringer struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

// Ring is the sink of an audio.Bell.
func (r *Ringer) Ring(seq string) {
	r.mu.RLock()
	send := r.send
	r.mu.RUnlock()
	if send != nil {
		send(bellMsg(seq))
	}
}

func (r *Ringer) attach(send func(tea.Msg)) {
	r.mu.Lock()
	r.send = send
	r.mu.Unlock()
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	env    *screen.Env
	start  *catalog.Lesson
	score  int
	width  int
	height int
}

// newAppModel creates a new AppModel with the course list at the bottom of
// the stack.
func newAppModel(env *screen.Env, opts Options) AppModel {
	return AppModel{
		router: router.New(home.New(env)),
		env:    env,
		start:  opts.StartLesson,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmd := m.router.Active().Init()
	if m.start == nil {
		return cmd
	}
	next := flashcards.New(m.env, *m.start)
	return tea.Batch(cmd, func() tea.Msg { return router.PushScreenMsg{Screen: next} })
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case bellMsg:
		return m, tea.Raw(string(msg))

	case screen.ScoreMsg:
		m.score = msg.Score
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.Close()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.TooSmall(m.width, m.height))
		return v
	}

	header := layout.Header{
		App:   "devroad",
		Trail: m.router.Breadcrumb(),
		Score: m.score,
	}.Render(m.width)
	footer := layout.Footer(m.footerHints(m.router.Active()), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	v.SetContent(layout.Frame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(env *screen.Env, opts Options) error {
	m := newAppModel(env, opts)
	defer m.router.Close()

	p := tea.NewProgram(m)
	if opts.Ringer != nil {
		opts.Ringer.attach(p.Send)
		defer opts.Ringer.attach(nil)
	}
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
