// Package session is the exercise screen. It forwards learner input to a
// session.Controller and renders the controller's state.
package session

import (
	"context"
	"errors"
	"sync"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/devroad/devroad/internal/catalog"
	"github.com/devroad/devroad/internal/exercise"
	"github.com/devroad/devroad/internal/interaction"
	"github.com/devroad/devroad/internal/router"
	"github.com/devroad/devroad/internal/screen"
	"github.com/devroad/devroad/internal/screens/summary"
	sess "github.com/devroad/devroad/internal/session"
	"github.com/devroad/devroad/internal/ui/components"
	"github.com/devroad/devroad/internal/ui/layout"
)

const eventBuffer = 32

// verdict is the feedback shown after a submission.
type verdict struct {
	correct bool
	points  int
}

// SessionScreen plays one lesson.
type SessionScreen struct {
	env    *screen.Env
	lesson catalog.Lesson
	ctrl   *sess.Controller

	events    chan sess.Event
	done      chan struct{}
	closeOnce sync.Once

	state     sess.SessionState
	holder    *interaction.Holder
	loadErr   error
	retryable bool
	feedback  *verdict
	empty     bool
	finished  bool

	// Per-exercise input state, reset on every presentation.
	options      components.OptionList   // multiple choice
	blanks       []components.OptionList // fill the blanks
	blank        int
	onTargets    bool // drag-drop: targets column focused
	itemCursor   int
	targetCursor int
	picked       string
	lineCursor   int
	grabbed      bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.Closer = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen for lesson. The controller is built by
// env.NewSession and owned by the screen.
func New(env *screen.Env, lesson catalog.Lesson) *SessionScreen {
	s := &SessionScreen{
		env:    env,
		lesson: lesson,
		events: make(chan sess.Event, eventBuffer),
		done:   make(chan struct{}),
		state:  sess.SessionState{Phase: sess.PhaseLoading},
	}
	s.ctrl = env.NewSession(bridge{events: s.events, done: s.done})
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(s.load(), s.waitEvent())
}

func (s *SessionScreen) Title() string {
	return s.lesson.Title
}

// Close stops the controller. It is called when the screen leaves the
// stack.
func (s *SessionScreen) Close() {
	s.closeOnce.Do(func() { close(s.done) })
	s.ctrl.Close()
}

func (s *SessionScreen) load() tea.Cmd {
	ctrl, lessonID := s.ctrl, s.lesson.ID
	return func() tea.Msg {
		return loadDoneMsg{Err: ctrl.Load(context.Background(), lessonID)}
	}
}

func (s *SessionScreen) waitEvent() tea.Cmd {
	events, done := s.events, s.done
	return func() tea.Msg {
		select {
		case e := <-events:
			return eventMsg(e)
		case <-done:
			return nil
		}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDoneMsg:
		return s, s.handleLoadDone(msg.Err)

	case continueDoneMsg:
		if msg.Err != nil && !errors.Is(msg.Err, sess.ErrNotValidating) && !errors.Is(msg.Err, sess.ErrClosed) {
			s.env.Logger().Warn("continue failed", "lesson_id", s.lesson.ID, "error", msg.Err)
		}
		return s, nil

	case eventMsg:
		cmd := s.handleEvent(sess.Event(msg))
		if s.finished {
			return s, cmd
		}
		return s, tea.Batch(cmd, s.waitEvent())

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleLoadDone(err error) tea.Cmd {
	switch {
	case err == nil:
		s.loadErr = nil
		return nil
	case errors.Is(err, sess.ErrSuperseded), errors.Is(err, sess.ErrClosed):
		return nil
	}
	s.loadErr = err
	s.retryable = errors.Is(err, exercise.ErrTransport)
	s.state = s.ctrl.State()
	return nil
}

func (s *SessionScreen) handleEvent(e sess.Event) tea.Cmd {
	s.state = s.ctrl.State()
	s.holder = s.ctrl.Holder()

	switch e.Type {
	case sess.EventPresented:
		s.feedback = nil
		s.resetInput()

	case sess.EventCorrect, sess.EventWrong:
		s.feedback = &verdict{correct: e.Type == sess.EventCorrect, points: e.Points}

	case sess.EventCompleted:
		return s.complete()

	case sess.EventCommitFailed:
		s.env.Logger().Error("score commit failed", "lesson_id", e.LessonID, "error", e.Err)
	}
	return nil
}

// complete hands a finished lesson over to the summary screen.
func (s *SessionScreen) complete() tea.Cmd {
	s.finished = true
	s.closeOnce.Do(func() { close(s.done) })

	sum, commitErr := s.ctrl.Result()
	if sum == nil || sum.TotalExercises == 0 {
		s.empty = true
		return nil
	}

	env := s.env
	next := summary.New(sum, commitErr, env.Tr)
	return tea.Batch(
		func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} },
		func() tea.Msg { return screen.ScoreMsg{Score: env.LoadScore(context.Background())} },
	)
}

func (s *SessionScreen) resetInput() {
	s.options = components.OptionList{}
	s.blanks = nil
	s.blank = 0
	s.onTargets = false
	s.itemCursor, s.targetCursor = 0, 0
	s.picked = ""
	s.lineCursor = 0
	s.grabbed = false

	if s.holder == nil {
		return
	}
	switch p := s.holder.Spec().Payload.(type) {
	case *exercise.MultipleChoicePayload:
		s.options = components.NewOptionList(p.Options)
	case *exercise.FillBlanksPayload:
		s.blanks = make([]components.OptionList, len(p.Blanks))
		for i, b := range p.Blanks {
			s.blanks[i] = components.NewOptionList(b.Options)
		}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if s.loadErr != nil {
		if key.Matches(msg, keys.Retry) && s.retryable {
			s.loadErr = nil
			s.retryable = false
			s.state = sess.SessionState{Phase: sess.PhaseLoading}
			return s.load()
		}
		return nil
	}

	switch s.state.Phase {
	case sess.PhaseValidating:
		if key.Matches(msg, keys.Submit, keys.Pick) {
			ctrl := s.ctrl
			return func() tea.Msg { return continueDoneMsg{Err: ctrl.Continue()} }
		}
		return nil
	case sess.PhasePresenting:
	default:
		return nil
	}

	if s.holder == nil {
		return nil
	}
	var err error
	switch s.holder.Spec().Kind {
	case exercise.KindMultipleChoice:
		err = s.keyMultipleChoice(msg)
	case exercise.KindFillBlanks:
		err = s.keyFillBlanks(msg)
	case exercise.KindDragDrop:
		err = s.keyDragDrop(msg)
	case exercise.KindArrangeCode:
		err = s.keyArrangeCode(msg)
	}
	if err != nil {
		s.env.Logger().Debug("interaction rejected", "key", msg.String(), "error", err)
	}

	if key.Matches(msg, keys.Submit) {
		s.submit()
	}
	return nil
}

func (s *SessionScreen) submit() {
	res, err := s.ctrl.Submit()
	if err != nil {
		if !errors.Is(err, sess.ErrNotPresenting) {
			s.env.Logger().Warn("submit failed", "lesson_id", s.lesson.ID, "error", err)
		}
		return
	}
	s.feedback = &verdict{correct: res.Correct, points: res.Awarded}
	s.state = s.ctrl.State()
}

func (s *SessionScreen) keyMultipleChoice(msg tea.KeyMsg) error {
	if key.Matches(msg, keys.Submit, keys.Pick) {
		cur, ok := s.options.Current()
		if !ok {
			return nil
		}
		s.options.Chosen = cur
		return s.holder.Select(0, cur)
	}
	s.options = s.options.Update(msg)
	return nil
}

func (s *SessionScreen) keyFillBlanks(msg tea.KeyMsg) error {
	if len(s.blanks) == 0 {
		return nil
	}
	switch {
	case key.Matches(msg, keys.Prev):
		s.blank = (s.blank + len(s.blanks) - 1) % len(s.blanks)
		return nil
	case key.Matches(msg, keys.Next):
		s.blank = (s.blank + 1) % len(s.blanks)
		return nil
	case key.Matches(msg, keys.Submit):
		return nil
	}

	list := s.blanks[s.blank]
	before := list.Cursor
	list = list.Update(msg)
	if key.Matches(msg, keys.Pick) || list.Cursor != before || isDigit(msg.String()) {
		if cur, ok := list.Current(); ok {
			list.Chosen = cur
			s.blanks[s.blank] = list
			return s.holder.Select(s.blank, cur)
		}
	}
	s.blanks[s.blank] = list
	return nil
}

func (s *SessionScreen) keyDragDrop(msg tea.KeyMsg) error {
	p, ok := s.holder.Spec().Payload.(*exercise.DragDropPayload)
	if !ok {
		return nil
	}
	unplaced := s.holder.Unplaced()

	switch {
	case key.Matches(msg, keys.Column):
		s.onTargets = !s.onTargets
	case key.Matches(msg, keys.Up):
		if s.onTargets {
			s.targetCursor = max(s.targetCursor-1, 0)
		} else {
			s.itemCursor = max(s.itemCursor-1, 0)
		}
	case key.Matches(msg, keys.Down):
		if s.onTargets {
			s.targetCursor = min(s.targetCursor+1, len(p.Targets)-1)
		} else {
			s.itemCursor = min(s.itemCursor+1, max(len(unplaced)-1, 0))
		}
	case key.Matches(msg, keys.Pick):
		if !s.onTargets {
			if s.itemCursor < len(unplaced) {
				s.picked = unplaced[s.itemCursor]
				s.onTargets = true
			}
			return nil
		}
		if s.targetCursor >= len(p.Targets) {
			return nil
		}
		target := p.Targets[s.targetCursor]
		if s.picked == "" {
			return s.holder.Unassign(target)
		}
		item := s.picked
		s.picked = ""
		if err := s.holder.AssignToTarget(target, item); err != nil {
			return err
		}
		if left := s.holder.Unplaced(); len(left) > 0 {
			s.onTargets = false
			s.itemCursor = min(s.itemCursor, len(left)-1)
		}
	}
	return nil
}

func (s *SessionScreen) keyArrangeCode(msg tea.KeyMsg) error {
	n := len(s.holder.Order())
	if n == 0 {
		return nil
	}
	switch {
	case key.Matches(msg, keys.Pick):
		s.grabbed = !s.grabbed
	case key.Matches(msg, keys.Up):
		if s.lineCursor == 0 {
			return nil
		}
		if s.grabbed {
			if err := s.holder.Move(s.lineCursor, s.lineCursor-1); err != nil {
				return err
			}
		}
		s.lineCursor--
	case key.Matches(msg, keys.Down):
		if s.lineCursor >= n-1 {
			return nil
		}
		if s.grabbed {
			if err := s.holder.Move(s.lineCursor, s.lineCursor+1); err != nil {
				return err
			}
		}
		s.lineCursor++
	}
	return nil
}

func isDigit(key string) bool {
	return len(key) == 1 && key[0] >= '1' && key[0] <= '9'
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.loadErr != nil && s.retryable:
		return []layout.KeyHint{hint(keys.Retry), hint(keys.Back)}
	case s.state.Phase == sess.PhaseValidating:
		return []layout.KeyHint{hint(keys.Submit, "Continue")}
	case s.state.Phase != sess.PhasePresenting || s.holder == nil:
		return []layout.KeyHint{hint(keys.Back)}
	}

	hints := []layout.KeyHint{hint(keys.Up)}
	switch s.holder.Spec().Kind {
	case exercise.KindFillBlanks:
		hints = append(hints, hint(keys.Next))
	case exercise.KindDragDrop:
		hints = append(hints, hint(keys.Column), hint(keys.Pick))
	case exercise.KindArrangeCode:
		hints = append(hints, hint(keys.Pick, "Grab"))
	}
	return append(hints, hint(keys.Submit), hint(keys.Back))
}
