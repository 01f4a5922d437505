package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devroad/devroad/internal/exercise"
	"github.com/devroad/devroad/internal/interaction"
	"github.com/devroad/devroad/internal/validate"
)

// manualScheduler holds scheduled calls until the test fires them.
type manualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	delay     time.Duration
	fn        func()
	cancelled bool
	ran       bool
}

func (t *manualTask) Cancel() bool {
	if t.ran || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

func (s *manualScheduler) AfterFunc(d time.Duration, fn func()) Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTask{delay: d, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// fire runs every pending task, including cancelled ones, to mimic a timer
// that fired before Cancel could stop it.
func (s *manualScheduler) fire(includeCancelled bool) int {
	s.mu.Lock()
	tasks := s.tasks
	s.tasks = nil
	s.mu.Unlock()
	n := 0
	for _, t := range tasks {
		if t.cancelled && !includeCancelled {
			continue
		}
		t.ran = true
		t.fn()
		n++
	}
	return n
}

type recordingListener struct {
	mu     sync.Mutex
	events []Event
}

func (l *recordingListener) OnEvent(e Event) {
	l.mu.Lock()
	l.events = append(l.events, e)
	l.mu.Unlock()
}

func (l *recordingListener) types() []EventType {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]EventType, len(l.events))
	for i, e := range l.events {
		out[i] = e.Type
	}
	return out
}

type countingAudio struct {
	mu             sync.Mutex
	correct, wrong int
}

func (a *countingAudio) PlayCorrect() { a.mu.Lock(); a.correct++; a.mu.Unlock() }
func (a *countingAudio) PlayWrong()   { a.mu.Lock(); a.wrong++; a.mu.Unlock() }

type panickyAudio struct{}

func (panickyAudio) PlayCorrect() { panic("no sound device") }
func (panickyAudio) PlayWrong()   { panic("no sound device") }

type staticLoader struct {
	specs []exercise.Spec
	err   error
	calls int
}

func (l *staticLoader) LoadExercises(_ context.Context, _ string) ([]exercise.Spec, error) {
	l.calls++
	return l.specs, l.err
}

type spyScores struct {
	MemoryScoreStore
	gets, sets int
	setErr     error
}

func (s *spyScores) GetScore(ctx context.Context) (int, error) {
	s.gets++
	return s.MemoryScoreStore.GetScore(ctx)
}

func (s *spyScores) SetScore(ctx context.Context, v int) error {
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	return s.MemoryScoreStore.SetScore(ctx, v)
}

type recordingProgress struct {
	lessonID string
	score    int
	calls    int
}

func (p *recordingProgress) RecordCompletion(_ context.Context, lessonID string, score int) error {
	p.calls++
	p.lessonID, p.score = lessonID, score
	return nil
}

func mc(id string, order, points int, answer string) exercise.Spec {
	return exercise.Spec{
		ID:         id,
		Kind:       exercise.KindMultipleChoice,
		Payload:    &exercise.MultipleChoicePayload{Options: []string{"int", "String", "char"}},
		Answer:     answer,
		Points:     points,
		OrderIndex: order,
	}
}

func ac(id string, order, points int) exercise.Spec {
	return exercise.Spec{
		ID:         id,
		Kind:       exercise.KindArrangeCode,
		Payload:    &exercise.ArrangeCodePayload{Lines: []string{"L1", "L2", "L3"}},
		Points:     points,
		OrderIndex: order,
	}
}

type harness struct {
	c        *Controller
	sched    *manualScheduler
	listener *recordingListener
	audio    *countingAudio
	scores   *spyScores
	loader   *staticLoader
	progress *recordingProgress
}

func newHarness(t *testing.T, specs []exercise.Spec, initial int) *harness {
	t.Helper()
	h := &harness{
		sched:    &manualScheduler{},
		listener: &recordingListener{},
		audio:    &countingAudio{},
		scores:   &spyScores{MemoryScoreStore: MemoryScoreStore{score: initial}},
		loader:   &staticLoader{specs: specs},
		progress: &recordingProgress{},
	}
	h.c = New(Options{
		Config:    DefaultConfig(),
		Loader:    h.loader,
		Scores:    h.scores,
		Audio:     h.audio,
		Listener:  h.listener,
		Scheduler: h.sched,
		Shuffler:  exercise.NewShuffler(rand.NewPCG(9, 9)),
		Progress:  h.progress,
	})
	t.Cleanup(h.c.Close)
	return h
}

func answerCorrectly(t *testing.T, h *interaction.Holder) {
	t.Helper()
	spec := h.Spec()
	switch p := spec.Payload.(type) {
	case *exercise.MultipleChoicePayload:
		require.NoError(t, h.Select(0, spec.Answer))
	case *exercise.ArrangeCodePayload:
		require.NoError(t, h.Reorder(p.Lines))
	default:
		t.Fatalf("unsupported kind %s", spec.Kind)
	}
}

func TestLoad_SortsAndPresentsFirst(t *testing.T) {
	h := newHarness(t, []exercise.Spec{mc("b", 2, 10, "int"), mc("a", 1, 10, "int"), mc("c", 2, 10, "int")}, 0)
	require.NoError(t, h.c.Load(context.Background(), "lesson-1"))

	st := h.c.State()
	assert.Equal(t, PhasePresenting, st.Phase)
	assert.Equal(t, 0, st.CurrentIndex)
	assert.NotEmpty(t, st.SessionID)
	ids := []string{st.Exercises[0].ID, st.Exercises[1].ID, st.Exercises[2].ID}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
	assert.Equal(t, []EventType{EventLoaded, EventPresented}, h.listener.types())
	require.NotNil(t, h.c.Holder())
	assert.Equal(t, "a", h.c.Holder().Spec().ID)
}

func TestSession_VisitsEveryExerciseOnce(t *testing.T) {
	specs := []exercise.Spec{mc("m1", 0, 10, "int"), ac("a1", 1, 20), mc("m2", 2, 5, "char")}
	h := newHarness(t, specs, 0)
	require.NoError(t, h.c.Load(context.Background(), "lesson-1"))

	var visited []string
	for range specs {
		holder := h.c.Holder()
		require.NotNil(t, holder)
		visited = append(visited, holder.Spec().ID)
		answerCorrectly(t, holder)
		_, err := h.c.Submit()
		require.NoError(t, err)
		assert.Equal(t, PhaseValidating, h.c.State().Phase)
		require.Equal(t, 1, h.sched.fire(false))
	}

	assert.Equal(t, []string{"m1", "a1", "m2"}, visited)
	st := h.c.State()
	assert.Equal(t, PhaseCompleted, st.Phase)
	assert.Equal(t, len(specs), st.CurrentIndex)
	assert.Equal(t, 35, st.AccumulatedScore)
	assert.Nil(t, h.c.Holder())
}

func TestSession_ScoreIsSumOfCorrect(t *testing.T) {
	specs := []exercise.Spec{mc("m1", 0, 10, "int"), mc("m2", 1, 20, "int"), mc("m3", 2, 30, "int")}
	h := newHarness(t, specs, 0)
	require.NoError(t, h.c.Load(context.Background(), "l"))

	answers := []string{"int", "String", "int"}
	for _, a := range answers {
		require.NoError(t, h.c.Holder().Select(0, a))
		_, err := h.c.Submit()
		require.NoError(t, err)
		h.sched.fire(false)
	}

	st := h.c.State()
	assert.Equal(t, 40, st.AccumulatedScore)
	assert.Equal(t, 2, h.audio.correct)
	assert.Equal(t, 1, h.audio.wrong)
	require.Len(t, st.Results, 3)
	assert.False(t, st.Results[1].Correct)
	assert.Equal(t, 0, st.Results[1].Awarded)
}

func TestSession_WrongAnswerStillAdvances(t *testing.T) {
	h := newHarness(t, []exercise.Spec{mc("m1", 0, 10, "int"), mc("m2", 1, 10, "int")}, 0)
	require.NoError(t, h.c.Load(context.Background(), "l"))

	res, err := h.c.Submit() // nothing selected
	require.NoError(t, err)
	assert.False(t, res.Correct)
	h.sched.fire(false)

	st := h.c.State()
	assert.Equal(t, PhasePresenting, st.Phase)
	assert.Equal(t, 1, st.CurrentIndex)
}

func TestSession_AdditiveCommit(t *testing.T) {
	h := newHarness(t, []exercise.Spec{mc("m1", 0, 10, "int"), mc("m2", 1, 20, "int")}, 100)
	require.NoError(t, h.c.Load(context.Background(), "lesson-9"))

	for range 2 {
		answerCorrectly(t, h.c.Holder())
		_, err := h.c.Submit()
		require.NoError(t, err)
		h.sched.fire(false)
	}

	score, _ := h.scores.GetScore(context.Background())
	assert.Equal(t, 130, score)
	assert.Equal(t, 1, h.scores.sets)
	assert.Equal(t, 1, h.progress.calls)
	assert.Equal(t, "lesson-9", h.progress.lessonID)
	assert.Equal(t, 30, h.progress.score)

	sum, err := h.c.Result()
	require.NoError(t, err)
	assert.Equal(t, 30, sum.Score)
	assert.Equal(t, 30, sum.MaxScore)
	assert.Equal(t, 2, sum.TotalCorrect)

	types := h.listener.types()
	assert.Equal(t, EventCompleted, types[len(types)-1])
}

func TestSession_EmptyLesson(t *testing.T) {
	h := newHarness(t, nil, 55)
	require.NoError(t, h.c.Load(context.Background(), "empty"))

	st := h.c.State()
	assert.Equal(t, PhaseCompleted, st.Phase)
	assert.Equal(t, 0, st.AccumulatedScore)
	assert.Equal(t, 0, h.scores.gets)
	assert.Equal(t, 0, h.scores.sets)
	assert.Equal(t, 0, h.progress.calls)
	score, _ := h.scores.GetScore(context.Background())
	assert.Equal(t, 55, score)
	assert.Equal(t, []EventType{EventLoaded, EventCompleted}, h.listener.types())

	_, err := h.c.Submit()
	assert.ErrorIs(t, err, ErrNotPresenting)
}

func TestSession_LoadFailure(t *testing.T) {
	h := newHarness(t, nil, 0)
	cause := &exercise.TransportError{Op: "fetch exercises", Err: errors.New("timeout")}
	h.loader.err = cause

	err := h.c.Load(context.Background(), "l")
	require.Error(t, err)
	assert.ErrorIs(t, err, exercise.ErrTransport)

	st := h.c.State()
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.ErrorIs(t, st.Err, exercise.ErrTransport)
	assert.Equal(t, []EventType{EventFailed}, h.listener.types())

	_, err = h.c.Submit()
	assert.ErrorIs(t, err, ErrNotPresenting)

	// A new Load is the retry.
	h.loader.err = nil
	h.loader.specs = []exercise.Spec{mc("m1", 0, 1, "int")}
	require.NoError(t, h.c.Load(context.Background(), "l"))
	assert.Equal(t, PhasePresenting, h.c.State().Phase)
}

func TestSession_SubmitOnlyWhilePresenting(t *testing.T) {
	h := newHarness(t, []exercise.Spec{mc("m1", 0, 10, "int")}, 0)

	_, err := h.c.Submit()
	assert.ErrorIs(t, err, ErrNotPresenting, "before load")

	require.NoError(t, h.c.Load(context.Background(), "l"))
	_, err = h.c.Submit()
	require.NoError(t, err)

	_, err = h.c.Submit()
	assert.ErrorIs(t, err, ErrNotPresenting, "while validating")
	assert.Len(t, h.c.State().Results, 1)
}

func TestSession_StaleHolderAfterAdvance(t *testing.T) {
	h := newHarness(t, []exercise.Spec{mc("m1", 0, 10, "int"), mc("m2", 1, 10, "int")}, 0)
	require.NoError(t, h.c.Load(context.Background(), "l"))

	first := h.c.Holder()
	require.NoError(t, first.Select(0, "int"))
	_, err := h.c.Submit()
	require.NoError(t, err)
	h.sched.fire(false)

	err = first.Select(0, "String")
	assert.ErrorIs(t, err, interaction.ErrStaleInteraction)
	assert.NotSame(t, first, h.c.Holder())
}

func TestSession_FreshHolderReshuffles(t *testing.T) {
	h := newHarness(t, []exercise.Spec{ac("a1", 0, 10)}, 0)

	var orders [][]string
	for range 10 {
		require.NoError(t, h.c.Load(context.Background(), "l"))
		orders = append(orders, h.c.Holder().Presented())
	}
	distinct := false
	for _, o := range orders[1:] {
		sorted := slices.Clone(o)
		slices.Sort(sorted)
		require.Equal(t, []string{"L1", "L2", "L3"}, sorted)
		if !slices.Equal(o, orders[0]) {
			distinct = true
		}
	}
	assert.True(t, distinct, "expected a new permutation on some presentation")
}

func TestSession_FeedbackDelayScheduled(t *testing.T) {
	h := newHarness(t, []exercise.Spec{mc("m1", 0, 10, "int")}, 0)
	require.NoError(t, h.c.Load(context.Background(), "l"))
	_, err := h.c.Submit()
	require.NoError(t, err)

	h.sched.mu.Lock()
	require.Len(t, h.sched.tasks, 1)
	assert.Equal(t, DefaultFeedbackDelay, h.sched.tasks[0].delay)
	h.sched.mu.Unlock()
}

// immediateScheduler runs the task before AfterFunc returns, like a timer
// that fires before the caller gets the lock back.
type immediateScheduler struct{}

func (immediateScheduler) AfterFunc(_ time.Duration, fn func()) Task {
	fn()
	return &manualTask{ran: true}
}

func TestSession_VerdictPrecedesNextExerciseWithTinyDelay(t *testing.T) {
	listener := &recordingListener{}
	cfg := DefaultConfig()
	cfg.FeedbackDelay = time.Nanosecond
	c := New(Options{
		Config:    cfg,
		Loader:    &staticLoader{specs: []exercise.Spec{mc("m1", 0, 10, "int"), mc("m2", 1, 10, "int")}},
		Scores:    &MemoryScoreStore{},
		Listener:  listener,
		Scheduler: immediateScheduler{},
		Shuffler:  exercise.NewShuffler(rand.NewPCG(1, 1)),
	})
	t.Cleanup(c.Close)

	require.NoError(t, c.Load(context.Background(), "l"))
	answerCorrectly(t, c.Holder())
	_, err := c.Submit()
	require.NoError(t, err)

	assert.Equal(t, []EventType{EventLoaded, EventPresented, EventCorrect, EventPresented}, listener.types())
	st := c.State()
	assert.Equal(t, PhasePresenting, st.Phase)
	assert.Equal(t, 1, st.CurrentIndex)
	assert.ErrorIs(t, c.Continue(), ErrNotValidating)
}

// continuingListener calls Continue from inside the verdict callback.
type continuingListener struct {
	recordingListener
	c *Controller
}

func (l *continuingListener) OnEvent(e Event) {
	l.recordingListener.OnEvent(e)
	if e.Type == EventCorrect || e.Type == EventWrong {
		_ = l.c.Continue()
	}
}

func TestSession_ContinueDuringVerdictDropsTimer(t *testing.T) {
	sched := &manualScheduler{}
	listener := &continuingListener{}
	c := New(Options{
		Config:    DefaultConfig(),
		Loader:    &staticLoader{specs: []exercise.Spec{mc("m1", 0, 10, "int"), mc("m2", 1, 10, "int")}},
		Scores:    &MemoryScoreStore{},
		Listener:  listener,
		Scheduler: sched,
		Shuffler:  exercise.NewShuffler(rand.NewPCG(1, 1)),
	})
	listener.c = c
	t.Cleanup(c.Close)

	require.NoError(t, c.Load(context.Background(), "l"))
	_, err := c.Submit()
	require.NoError(t, err)
	assert.Equal(t, 1, c.State().CurrentIndex)

	sched.mu.Lock()
	require.Len(t, sched.tasks, 1)
	assert.True(t, sched.tasks[0].cancelled)
	sched.mu.Unlock()
}

func TestSession_CloseCancelsPendingAdvance(t *testing.T) {
	h := newHarness(t, []exercise.Spec{mc("m1", 0, 10, "int")}, 0)
	require.NoError(t, h.c.Load(context.Background(), "l"))
	answerCorrectly(t, h.c.Holder())
	_, err := h.c.Submit()
	require.NoError(t, err)

	h.c.Close()
	// A timer that fires anyway must not touch the closed session.
	h.sched.fire(true)

	assert.Equal(t, PhaseValidating, h.c.State().Phase)
	assert.Equal(t, 0, h.scores.sets)
	assert.ErrorIs(t, h.c.Load(context.Background(), "l"), ErrClosed)
}

func TestSession_ReloadIgnoresOldTimer(t *testing.T) {
	h := newHarness(t, []exercise.Spec{mc("m1", 0, 10, "int"), mc("m2", 1, 10, "int")}, 0)
	require.NoError(t, h.c.Load(context.Background(), "l"))
	_, err := h.c.Submit()
	require.NoError(t, err)

	require.NoError(t, h.c.Load(context.Background(), "l"))
	h.sched.fire(true)

	st := h.c.State()
	assert.Equal(t, PhasePresenting, st.Phase)
	assert.Equal(t, 0, st.CurrentIndex)
	assert.Empty(t, st.Results)
}

func TestSession_Continue(t *testing.T) {
	h := newHarness(t, []exercise.Spec{mc("m1", 0, 10, "int"), mc("m2", 1, 10, "int")}, 0)
	require.NoError(t, h.c.Load(context.Background(), "l"))
	assert.ErrorIs(t, h.c.Continue(), ErrNotValidating)

	_, err := h.c.Submit()
	require.NoError(t, err)
	require.NoError(t, h.c.Continue())
	assert.Equal(t, 1, h.c.State().CurrentIndex)

	// The cancelled timer is a no-op even if it fires.
	h.sched.fire(true)
	assert.Equal(t, 1, h.c.State().CurrentIndex)
	assert.Equal(t, PhasePresenting, h.c.State().Phase)
}

func TestSession_CommitFailure(t *testing.T) {
	h := newHarness(t, []exercise.Spec{mc("m1", 0, 10, "int")}, 0)
	h.scores.setErr = errors.New("disk full")
	require.NoError(t, h.c.Load(context.Background(), "l"))
	answerCorrectly(t, h.c.Holder())
	_, err := h.c.Submit()
	require.NoError(t, err)
	h.sched.fire(false)

	assert.Equal(t, PhaseCompleted, h.c.State().Phase)
	sum, err := h.c.Result()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 10, sum.Score)
	types := h.listener.types()
	assert.Equal(t, []EventType{EventCompleted, EventCommitFailed}, types[len(types)-2:])
}

func TestSession_AudioPanicDoesNotFail(t *testing.T) {
	c := New(Options{
		Loader:    &staticLoader{specs: []exercise.Spec{mc("m1", 0, 10, "int")}},
		Scores:    NewMemoryScoreStore(0),
		Audio:     panickyAudio{},
		Scheduler: &manualScheduler{},
	})
	defer c.Close()
	require.NoError(t, c.Load(context.Background(), "l"))
	_, err := c.Submit()
	assert.NoError(t, err)
}

func TestSession_StrictPolicy(t *testing.T) {
	dd := exercise.Spec{
		ID:   "dd",
		Kind: exercise.KindDragDrop,
		Payload: &exercise.DragDropPayload{
			Items:    []string{"a", "b"},
			Targets:  []string{"T1", "T2"},
			Expected: map[string]string{"T1": "a", "T2": "b"},
		},
		Points: 10,
	}
	c := New(Options{
		Config:    Config{Policy: validate.Policy{StrictDragDrop: true}},
		Loader:    &staticLoader{specs: []exercise.Spec{dd}},
		Scores:    NewMemoryScoreStore(0),
		Scheduler: &manualScheduler{},
	})
	defer c.Close()
	require.NoError(t, c.Load(context.Background(), "l"))
	require.NoError(t, c.Holder().AssignToTarget("T1", "b"))
	require.NoError(t, c.Holder().AssignToTarget("T2", "a"))
	res, err := c.Submit()
	require.NoError(t, err)
	assert.False(t, res.Correct)
}

func TestResult_NotCompleted(t *testing.T) {
	h := newHarness(t, []exercise.Spec{mc("m1", 0, 10, "int")}, 0)
	_, err := h.c.Result()
	assert.ErrorIs(t, err, ErrNotCompleted)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "presenting", PhasePresenting.String())
	assert.Equal(t, "completed", PhaseCompleted.String())
	assert.Equal(t, "commit_failed", EventCommitFailed.String())
}

func TestEvent_CarriesLessonAndKind(t *testing.T) {
	h := newHarness(t, []exercise.Spec{mc("m1", 0, 10, "int")}, 0)
	require.NoError(t, h.c.Load(context.Background(), "lesson-7"))
	require.NoError(t, h.c.Holder().Select(0, "int"))
	_, err := h.c.Submit()
	require.NoError(t, err)

	h.listener.mu.Lock()
	defer h.listener.mu.Unlock()
	last := h.listener.events[len(h.listener.events)-1]
	assert.Equal(t, EventCorrect, last.Type)
	assert.Equal(t, "lesson-7", last.LessonID)
	assert.Equal(t, "m1", last.ExerciseID)
	assert.Equal(t, exercise.KindMultipleChoice, last.Kind)
	assert.Equal(t, 10, last.Points)
}

func TestListeners_FanOut(t *testing.T) {
	a, b := &recordingListener{}, &recordingListener{}
	var calls int
	l := Listeners(a, nil, b, ListenerFunc(func(Event) { calls++ }))
	l.OnEvent(Event{Type: EventLoaded})
	l.OnEvent(Event{Type: EventFailed})

	assert.Equal(t, []EventType{EventLoaded, EventFailed}, a.types())
	assert.Equal(t, []EventType{EventLoaded, EventFailed}, b.types())
	assert.Equal(t, 2, calls)
}
