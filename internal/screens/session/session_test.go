package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/devroad/devroad/internal/catalog"
	"github.com/devroad/devroad/internal/exercise"
	"github.com/devroad/devroad/internal/i18n"
	"github.com/devroad/devroad/internal/logger"
	"github.com/devroad/devroad/internal/router"
	"github.com/devroad/devroad/internal/screen"
	"github.com/devroad/devroad/internal/screens/summary"
	sess "github.com/devroad/devroad/internal/session"
)

// fakeLoader implements sess.Loader for testing.
type fakeLoader struct {
	specs []exercise.Spec
	err   error
}

func (f *fakeLoader) LoadExercises(_ context.Context, _ string) ([]exercise.Spec, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.specs, nil
}

// idleScheduler never fires; tests advance with Enter.
type idleScheduler struct{}

func (idleScheduler) AfterFunc(time.Duration, func()) sess.Task { return idleTask{} }

type idleTask struct{}

func (idleTask) Cancel() bool { return true }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

var testLesson = catalog.Lesson{ID: "l1", CourseID: "c1", Title: "Variables"}

func multipleChoice(id, answer string, points int) exercise.Spec {
	return exercise.Spec{
		ID:      id,
		Kind:    exercise.KindMultipleChoice,
		Prompt:  "Which keyword declares a constant?",
		Payload: &exercise.MultipleChoicePayload{Options: []string{"var", "const", "let"}},
		Answer:  answer,
		Points:  points,
	}
}

func testSessionScreen(loader *fakeLoader) (*SessionScreen, *sess.MemoryScoreStore) {
	scores := sess.NewMemoryScoreStore(0)
	env := &screen.Env{
		Scores: scores,
		Tr:     i18n.English(),
		Log:    logger.Nop(),
		NewSession: func(l sess.Listener) *sess.Controller {
			return sess.New(sess.Options{
				Loader:    loader,
				Scores:    scores,
				Listener:  l,
				Scheduler: idleScheduler{},
				Shuffler:  exercise.NewShuffler(rand.NewPCG(1, 2)),
			})
		},
	}
	return New(env, testLesson), scores
}

// start runs the load command and feeds the resulting events.
func start(s *SessionScreen) tea.Cmd {
	s.Update(s.load()())
	return pump(s)
}

// pump feeds queued controller events to the screen. It returns the
// command produced when the lesson finished, if it did.
func pump(s *SessionScreen) tea.Cmd {
	for {
		select {
		case e := <-s.events:
			_, cmd := s.Update(eventMsg(e))
			if s.finished {
				return cmd
			}
		default:
			return nil
		}
	}
}

// runCmd executes cmd and flattens batches.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func press(s *SessionScreen, keys ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = s.Update(k)
	}
	return cmd
}

// advance presses Enter on a verdict and feeds the resulting events.
func advance(t *testing.T, s *SessionScreen) tea.Cmd {
	t.Helper()
	cmd := press(s, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a continue command")
	}
	for _, msg := range runCmd(cmd) {
		s.Update(msg)
	}
	return pump(s)
}

func TestSessionScreen_Title(t *testing.T) {
	s, _ := testSessionScreen(&fakeLoader{})
	if s.Title() != "Variables" {
		t.Errorf("Title = %q, want %q", s.Title(), "Variables")
	}
}

func TestSessionScreen_View_Loading(t *testing.T) {
	s, _ := testSessionScreen(&fakeLoader{})
	view := s.View(80, 24)
	if !strings.Contains(view, "Loading exercises...") {
		t.Errorf("expected loading view, got %q", view)
	}
}

func TestSessionScreen_MultipleChoiceCorrect(t *testing.T) {
	s, scores := testSessionScreen(&fakeLoader{specs: []exercise.Spec{multipleChoice("e1", "const", 10)}})
	start(s)

	if s.state.Phase != sess.PhasePresenting {
		t.Fatalf("phase = %v, want presenting", s.state.Phase)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Which keyword declares a constant?") {
		t.Error("expected prompt in view")
	}

	press(s, specialKey(tea.KeyDown), specialKey(tea.KeyEnter))
	if s.feedback == nil || !s.feedback.correct {
		t.Fatal("expected correct feedback")
	}
	if s.state.Phase != sess.PhaseValidating {
		t.Fatalf("phase = %v, want validating", s.state.Phase)
	}
	if view := s.View(80, 24); !strings.Contains(view, "Correct! +10 points") {
		t.Error("expected correct feedback in view")
	}

	done := advance(t, s)
	if done == nil {
		t.Fatal("expected completion command")
	}
	var replaced, scored bool
	for _, msg := range runCmd(done) {
		switch msg := msg.(type) {
		case router.ReplaceScreenMsg:
			if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
				t.Errorf("replaced with %T, want *summary.SummaryScreen", msg.Screen)
			}
			replaced = true
		case screen.ScoreMsg:
			if msg.Score != 10 {
				t.Errorf("ScoreMsg = %d, want 10", msg.Score)
			}
			scored = true
		}
	}
	if !replaced || !scored {
		t.Errorf("replaced = %v, scored = %v, want both", replaced, scored)
	}
	if got, _ := scores.GetScore(context.Background()); got != 10 {
		t.Errorf("stored score = %d, want 10", got)
	}
}

func TestSessionScreen_MultipleChoiceWrong(t *testing.T) {
	s, scores := testSessionScreen(&fakeLoader{specs: []exercise.Spec{
		multipleChoice("e1", "const", 10),
		multipleChoice("e2", "const", 10),
	}})
	start(s)

	press(s, specialKey(tea.KeyEnter))
	if s.feedback == nil || s.feedback.correct {
		t.Fatal("expected wrong feedback")
	}
	if view := s.View(80, 24); !strings.Contains(view, "Not quite.") {
		t.Error("expected wrong feedback in view")
	}

	if cmd := advance(t, s); cmd != nil {
		t.Fatal("lesson should not be finished after the first exercise")
	}
	if s.state.CurrentIndex != 1 || s.feedback != nil {
		t.Errorf("index = %d, feedback = %v; want 1, nil", s.state.CurrentIndex, s.feedback)
	}
	if got, _ := scores.GetScore(context.Background()); got != 0 {
		t.Errorf("stored score = %d, want 0", got)
	}
}

func TestSessionScreen_FillBlanks(t *testing.T) {
	spec := exercise.Spec{
		ID:     "fb",
		Kind:   exercise.KindFillBlanks,
		Prompt: "Complete the loop",
		Payload: &exercise.FillBlanksPayload{
			Blanks: []exercise.Blank{
				{Text: "keyword", Options: []string{"while", "for"}},
				{Text: "operator", Options: []string{":=", "="}},
			},
			Expected: []string{"for", ":="},
		},
		Points: 5,
	}
	s, _ := testSessionScreen(&fakeLoader{specs: []exercise.Spec{spec}})
	start(s)

	press(s,
		specialKey(tea.KeyDown), // blank 0 -> "for"
		specialKey(tea.KeyTab),
		keyPress('1'), // blank 1 -> ":="
	)
	if got, _ := s.holder.Selection(0); got != "for" {
		t.Errorf("blank 0 = %q, want for", got)
	}
	if got, _ := s.holder.Selection(1); got != ":=" {
		t.Errorf("blank 1 = %q, want :=", got)
	}

	press(s, specialKey(tea.KeyEnter))
	if s.feedback == nil || !s.feedback.correct {
		t.Error("expected correct feedback")
	}
}

func TestSessionScreen_DragDrop(t *testing.T) {
	spec := exercise.Spec{
		ID:     "dd",
		Kind:   exercise.KindDragDrop,
		Prompt: "Match the types",
		Payload: &exercise.DragDropPayload{
			Items:   []string{"int", "string"},
			Targets: []string{"42", `"hi"`},
		},
		Points: 10,
	}
	s, _ := testSessionScreen(&fakeLoader{specs: []exercise.Spec{spec}})
	start(s)

	first := s.holder.Unplaced()[0]
	press(s, keyPress(' '))
	if s.picked != first || !s.onTargets {
		t.Fatalf("picked = %q onTargets = %v, want %q true", s.picked, s.onTargets, first)
	}
	press(s, keyPress(' '))
	if got, _ := s.holder.Assignment("42"); got != first {
		t.Errorf("target 42 holds %q, want %q", got, first)
	}

	press(s, keyPress(' '), specialKey(tea.KeyDown), keyPress(' '))
	if left := s.holder.Unplaced(); len(left) != 0 {
		t.Fatalf("unplaced = %v, want none", left)
	}

	press(s, specialKey(tea.KeyEnter))
	if s.feedback == nil || !s.feedback.correct {
		t.Error("expected correct feedback")
	}
}

func TestSessionScreen_DragDropUnassign(t *testing.T) {
	spec := exercise.Spec{
		ID:      "dd",
		Kind:    exercise.KindDragDrop,
		Payload: &exercise.DragDropPayload{Items: []string{"a", "b"}, Targets: []string{"x", "y"}},
	}
	s, _ := testSessionScreen(&fakeLoader{specs: []exercise.Spec{spec}})
	start(s)

	press(s, keyPress(' '), keyPress(' '))
	if _, ok := s.holder.Assignment("x"); !ok {
		t.Fatal("expected an item on x")
	}
	press(s, specialKey(tea.KeyTab), keyPress(' '))
	if _, ok := s.holder.Assignment("x"); ok {
		t.Error("expected x to be emptied")
	}
}

func TestSessionScreen_ArrangeCode(t *testing.T) {
	lines := []string{"package main", "func main() {", "}"}
	spec := exercise.Spec{
		ID:      "ac",
		Kind:    exercise.KindArrangeCode,
		Payload: &exercise.ArrangeCodePayload{Lines: lines},
		Points:  10,
	}
	s, _ := testSessionScreen(&fakeLoader{specs: []exercise.Spec{spec}})
	start(s)

	before := s.holder.Order()
	press(s, keyPress(' '), specialKey(tea.KeyDown))

	want := slices.Clone(before)
	want[0], want[1] = want[1], want[0]
	if got := s.holder.Order(); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if s.lineCursor != 1 {
		t.Errorf("lineCursor = %d, want 1", s.lineCursor)
	}

	// Moving without a grabbed line only moves the cursor.
	press(s, keyPress(' '), specialKey(tea.KeyUp))
	if got := s.holder.Order(); !slices.Equal(got, want) {
		t.Errorf("order changed to %v", got)
	}
}

func TestSessionScreen_TransportErrorRetry(t *testing.T) {
	loader := &fakeLoader{err: &exercise.TransportError{Op: "load exercises", Err: errors.New("connection refused")}}
	s, _ := testSessionScreen(loader)
	start(s)

	if s.loadErr == nil || !s.retryable {
		t.Fatalf("loadErr = %v retryable = %v, want transport failure", s.loadErr, s.retryable)
	}
	if view := s.View(80, 24); !strings.Contains(view, "Press r to retry") {
		t.Error("expected retry prompt")
	}

	loader.err = nil
	loader.specs = []exercise.Spec{multipleChoice("e1", "const", 10)}
	cmd := press(s, keyPress('r'))
	if cmd == nil {
		t.Fatal("expected a reload command")
	}
	s.Update(cmd())
	pump(s)
	if s.loadErr != nil || s.state.Phase != sess.PhasePresenting {
		t.Errorf("loadErr = %v phase = %v, want presenting", s.loadErr, s.state.Phase)
	}
}

func TestSessionScreen_MalformedNotRetryable(t *testing.T) {
	loader := &fakeLoader{err: malformedErr()}
	s, _ := testSessionScreen(loader)
	start(s)

	if s.loadErr == nil || s.retryable {
		t.Fatalf("loadErr = %v retryable = %v, want permanent failure", s.loadErr, s.retryable)
	}
	if cmd := press(s, keyPress('r')); cmd != nil {
		t.Error("expected no retry for malformed content")
	}
	if view := s.View(80, 24); !strings.Contains(view, "unavailable") {
		t.Error("expected unavailable message")
	}
}

func malformedErr() error {
	_, err := exercise.Parse(exercise.Record{ID: "bad", Type: "drag_drop", Data: []byte(`{"items":["a"]}`)})
	return err
}

func TestSessionScreen_EmptyLesson(t *testing.T) {
	s, scores := testSessionScreen(&fakeLoader{})
	if cmd := start(s); cmd != nil {
		t.Error("empty lesson should not open a summary")
	}
	if !s.empty {
		t.Fatal("expected empty lesson state")
	}
	if view := s.View(80, 24); !strings.Contains(view, "no exercises") {
		t.Errorf("expected empty lesson message, got %q", view)
	}
	if got, _ := scores.GetScore(context.Background()); got != 0 {
		t.Errorf("stored score = %d, want 0", got)
	}
}

func TestSessionScreen_Close(t *testing.T) {
	s, _ := testSessionScreen(&fakeLoader{specs: []exercise.Spec{multipleChoice("e1", "const", 10)}})
	start(s)

	s.Close()
	s.Close()
	if _, err := s.ctrl.Submit(); !errors.Is(err, sess.ErrClosed) {
		t.Errorf("Submit after Close = %v, want ErrClosed", err)
	}
	if msg := s.waitEvent()(); msg != nil {
		t.Errorf("waitEvent after Close = %v, want nil", msg)
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _ := testSessionScreen(&fakeLoader{specs: []exercise.Spec{multipleChoice("e1", "const", 10)}})
	start(s)

	hints := s.KeyHints()
	if len(hints) == 0 {
		t.Error("expected non-empty key hints")
	}
}
