// Package router keeps the stack of screens: course list, lesson list,
// exercise session and summary.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/devroad/devroad/internal/screen"
)

// PushScreenMsg opens Screen above the active one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the active screen and returns to the one below.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the active screen for Screen, e.g. a finished
// session for its summary.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router owns the screens on the stack. Screens that leave the stack are
// closed; a screen uncovered by a pop is resumed.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the active screen. The root screen is never popped.
func (r *Router) Pop() tea.Cmd {
	n := len(r.stack)
	if n <= 1 {
		return nil
	}
	leaving := r.stack[n-1]
	r.stack[n-1] = nil
	r.stack = r.stack[:n-1]
	closeScreen(leaving)

	if res, ok := r.Active().(screen.Resumer); ok {
		return res.Resume()
	}
	return nil
}

// Replace closes the active screen and puts s in its place.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	top := len(r.stack) - 1
	if leaving := r.stack[top]; leaving != s {
		closeScreen(leaving)
	}
	r.stack[top] = s
	return s.Init()
}

// Active returns the top screen.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Breadcrumb returns the titles from the root to the active screen.
func (r *Router) Breadcrumb() []string {
	out := make([]string, 0, len(r.stack))
	for _, s := range r.stack {
		out = append(out, s.Title())
	}
	return out
}

// Close closes every screen, top first, and empties the stack.
func (r *Router) Close() {
	for i := len(r.stack) - 1; i >= 0; i-- {
		closeScreen(r.stack[i])
	}
	r.stack = nil
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	top := len(r.stack) - 1
	if top < 0 {
		return nil
	}
	next, cmd := r.stack[top].Update(msg)
	r.stack[top] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}

func closeScreen(s screen.Screen) {
	if c, ok := s.(screen.Closer); ok {
		c.Close()
	}
}
