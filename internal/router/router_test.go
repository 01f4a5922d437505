package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devroad/devroad/internal/screen"
)

// fakeScreen records the lifecycle calls the router makes.
type fakeScreen struct {
	title   string
	inits   int
	resumes int
	closed  int
	got     []tea.Msg
}

func (s *fakeScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}

func (s *fakeScreen) View(int, int) string { return "view:" + s.title }
func (s *fakeScreen) Title() string        { return s.title }
func (s *fakeScreen) Close()               { s.closed++ }

func (s *fakeScreen) Resume() tea.Cmd {
	s.resumes++
	return nil
}

// plainScreen implements neither Closer nor Resumer.
type plainScreen struct{ title string }

func (p plainScreen) Init() tea.Cmd                            { return nil }
func (p plainScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return p, nil }
func (p plainScreen) View(int, int) string                     { return p.title }
func (p plainScreen) Title() string                            { return p.title }

func TestRouter_PushInitsAndActivates(t *testing.T) {
	courses := &fakeScreen{title: "Courses"}
	r := New(courses)

	lessons := &fakeScreen{title: "Basics"}
	r.Update(PushScreenMsg{Screen: lessons})

	assert.Equal(t, 2, r.Depth())
	assert.Same(t, lessons, r.Active())
	assert.Equal(t, 1, lessons.inits)
	assert.Equal(t, []string{"Courses", "Basics"}, r.Breadcrumb())
}

func TestRouter_PopClosesAndResumes(t *testing.T) {
	courses := &fakeScreen{title: "Courses"}
	lessons := &fakeScreen{title: "Basics"}
	r := New(courses)
	r.Push(lessons)

	r.Update(PopScreenMsg{})

	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, 1, lessons.closed)
	assert.Equal(t, 1, courses.resumes)
	assert.Zero(t, courses.closed)
}

func TestRouter_PopKeepsRoot(t *testing.T) {
	root := &fakeScreen{title: "Courses"}
	r := New(root)

	assert.Nil(t, r.Pop())
	assert.Equal(t, 1, r.Depth())
	assert.Zero(t, root.closed)
}

func TestRouter_PopWithoutResumer(t *testing.T) {
	r := New(plainScreen{title: "root"})
	r.Push(plainScreen{title: "top"})
	assert.Nil(t, r.Pop())
	assert.Equal(t, "root", r.Active().Title())
}

func TestRouter_ReplaceClosesPrevious(t *testing.T) {
	courses := &fakeScreen{title: "Courses"}
	session := &fakeScreen{title: "Variables"}
	r := New(courses)
	r.Push(session)

	summary := &fakeScreen{title: "Summary"}
	r.Update(ReplaceScreenMsg{Screen: summary})

	assert.Equal(t, 2, r.Depth())
	assert.Same(t, summary, r.Active())
	assert.Equal(t, 1, session.closed)
	assert.Equal(t, 1, summary.inits)
}

func TestRouter_ReplaceWithSameScreen(t *testing.T) {
	s := &fakeScreen{title: "Courses"}
	r := New(s)
	r.Replace(s)
	assert.Zero(t, s.closed)
	assert.Equal(t, 1, s.inits)
}

func TestRouter_ForwardsToActiveOnly(t *testing.T) {
	courses := &fakeScreen{title: "Courses"}
	lessons := &fakeScreen{title: "Basics"}
	r := New(courses)
	r.Push(lessons)

	r.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	assert.Empty(t, courses.got)
	require.Len(t, lessons.got, 1)
	assert.Equal(t, "view:Basics", r.View(80, 24))
}

func TestRouter_CloseClosesEverything(t *testing.T) {
	a := &fakeScreen{title: "a"}
	b := &fakeScreen{title: "b"}
	r := New(a)
	r.Push(b)

	r.Close()

	assert.Equal(t, 1, a.closed)
	assert.Equal(t, 1, b.closed)
	assert.Zero(t, r.Depth())
	assert.Nil(t, r.Active())
	assert.Empty(t, r.View(80, 24))
	assert.Nil(t, r.Update(tea.KeyPressMsg{Code: tea.KeyEnter}))
}
