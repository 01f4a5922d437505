package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/devroad/devroad/internal/exercise"
	"github.com/devroad/devroad/internal/interaction"
	"github.com/devroad/devroad/internal/logger"
	"github.com/devroad/devroad/internal/validate"
)

// DefaultFeedbackDelay is how long a verdict stays on screen before the
// session advances.
const DefaultFeedbackDelay = 1500 * time.Millisecond

var (
	// ErrNotPresenting is returned by Submit outside PhasePresenting.
	ErrNotPresenting = errors.New("no exercise is awaiting a submission")

	// ErrNotValidating is returned by Continue outside PhaseValidating.
	ErrNotValidating = errors.New("no verdict is being shown")

	// ErrNotCompleted is returned by Result before the last exercise.
	ErrNotCompleted = errors.New("session not completed")

	// ErrSuperseded is returned by a Load overtaken by a newer Load.
	ErrSuperseded = errors.New("load superseded by a newer load")

	// ErrClosed is returned by every call after Close.
	ErrClosed = errors.New("session closed")
)

// Config tunes the controller.
type Config struct {
	FeedbackDelay time.Duration
	Policy        validate.Policy
}

// DefaultConfig returns the lenient policy with the standard feedback delay.
func DefaultConfig() Config {
	return Config{FeedbackDelay: DefaultFeedbackDelay}
}

// Options holds the collaborators of a Controller. Loader and Scores are
// required; the rest default to no-ops, the wall clock and the global
// random source.
type Options struct {
	Config    Config
	Loader    Loader
	Scores    ScoreStore
	Audio     AudioCue
	Listener  Listener
	Scheduler Scheduler
	Shuffler  *exercise.Shuffler
	Progress  ProgressRecorder
	Logger    *logger.Logger
}

// Controller drives one lesson visit at a time. All methods are safe for
// concurrent use; the deferred advance runs on the scheduler's goroutine.
type Controller struct {
	mu       sync.Mutex
	cfg      Config
	loader   Loader
	scores   ScoreStore
	audio    AudioCue
	listener Listener
	sched    Scheduler
	shuffler *exercise.Shuffler
	progress ProgressRecorder
	log      *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc

	state   *SessionState
	holder  *interaction.Holder
	pending Task
	gen     uint64
	closed  bool
}

// New creates a controller. Call Load to start a lesson.
func New(opts Options) *Controller {
	c := &Controller{
		cfg:      opts.Config,
		loader:   opts.Loader,
		scores:   opts.Scores,
		audio:    opts.Audio,
		listener: opts.Listener,
		sched:    opts.Scheduler,
		shuffler: opts.Shuffler,
		progress: opts.Progress,
		log:      opts.Logger,
	}
	if c.cfg.FeedbackDelay <= 0 {
		c.cfg.FeedbackDelay = DefaultFeedbackDelay
	}
	if c.audio == nil {
		c.audio = nopAudio{}
	}
	if c.listener == nil {
		c.listener = nopListener{}
	}
	if c.sched == nil {
		c.sched = TimerScheduler()
	}
	if c.log == nil {
		c.log = logger.Nop()
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())
	return c
}

// Load starts lessonID, discarding any session in progress. A lesson with no
// exercises completes immediately with a zero score and leaves the score
// store untouched.
func (c *Controller) Load(ctx context.Context, lessonID string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.resetLocked()
	c.gen++
	gen := c.gen
	c.state = NewSessionState(uuid.NewString(), lessonID)
	log := c.log.With("session_id", c.state.SessionID, "lesson_id", lessonID)
	c.mu.Unlock()

	specs, err := c.loader.LoadExercises(ctx, lessonID)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if gen != c.gen {
		c.mu.Unlock()
		return ErrSuperseded
	}

	if err != nil {
		c.state.Phase = PhaseFailed
		c.state.Err = err
		events := []Event{c.eventLocked(EventFailed, 0, err)}
		c.mu.Unlock()
		log.Error("load exercises failed", "error", err)
		c.dispatch(events)
		return fmt.Errorf("load lesson %s: %w", lessonID, err)
	}

	specs = slices.Clone(specs)
	exercise.SortByOrder(specs)
	c.state.Exercises = specs
	events := []Event{c.eventLocked(EventLoaded, 0, nil)}
	if len(specs) == 0 {
		c.state.Phase = PhaseCompleted
		events = append(events, c.eventLocked(EventCompleted, 0, nil))
	} else {
		events = append(events, c.presentLocked(0))
	}
	c.mu.Unlock()

	log.Info("lesson loaded", "exercises", len(specs))
	c.dispatch(events)
	return nil
}

// Submit validates the current response, updates the score and schedules the
// advance to the next exercise. Wrong answers advance too.
func (c *Controller) Submit() (ExerciseResult, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ExerciseResult{}, ErrClosed
	}
	if c.state == nil || c.state.Phase != PhasePresenting {
		c.mu.Unlock()
		return ExerciseResult{}, ErrNotPresenting
	}

	idx := c.state.CurrentIndex
	spec := c.state.Exercises[idx]
	correct := c.cfg.Policy.Check(spec, c.holder.Response())

	res := ExerciseResult{ExerciseID: spec.ID, Kind: spec.Kind, Correct: correct}
	evType := EventWrong
	if correct {
		res.Awarded = spec.Points
		c.state.AccumulatedScore += spec.Points
		evType = EventCorrect
	}
	c.state.Results = append(c.state.Results, res)
	c.state.Phase = PhaseValidating
	events := []Event{c.eventLocked(evType, res.Awarded, nil)}

	gen := c.gen
	c.mu.Unlock()

	c.log.Debug("exercise submitted", "exercise_id", spec.ID, "kind", spec.Kind, "correct", correct)
	c.dispatch(events)
	c.armAdvance(gen, idx)
	return res, nil
}

// armAdvance schedules the move past exercise idx. It runs after the
// verdict has been dispatched so listeners never see the next exercise
// first, whatever the delay.
func (c *Controller) armAdvance(gen uint64, idx int) {
	task := c.sched.AfterFunc(c.cfg.FeedbackDelay, func() { c.advance(gen, idx) })

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen || c.state == nil ||
		c.state.Phase != PhaseValidating || c.state.CurrentIndex != idx {
		// Already advanced (a fast timer or Continue) or abandoned.
		task.Cancel()
		return
	}
	c.pending = task
}

// Continue advances immediately instead of waiting for the feedback delay.
func (c *Controller) Continue() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state == nil || c.state.Phase != PhaseValidating {
		c.mu.Unlock()
		return ErrNotValidating
	}
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
	}
	gen, idx := c.gen, c.state.CurrentIndex
	c.mu.Unlock()

	c.advance(gen, idx)
	return nil
}

// advance moves past exercise idx. It is a no-op when the session it was
// scheduled for has since moved on, been reloaded or been closed.
func (c *Controller) advance(gen uint64, idx int) {
	c.mu.Lock()
	if c.closed || gen != c.gen || c.state == nil ||
		c.state.Phase != PhaseValidating || c.state.CurrentIndex != idx {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	c.holder.Expire()

	if next := idx + 1; next < len(c.state.Exercises) {
		events := []Event{c.presentLocked(next)}
		c.mu.Unlock()
		c.dispatch(events)
		return
	}

	c.holder = nil
	c.state.CurrentIndex = len(c.state.Exercises)
	c.state.Phase = PhaseCompleted
	lessonID, total := c.state.LessonID, c.state.AccumulatedScore
	log := c.log.With("session_id", c.state.SessionID, "lesson_id", lessonID)
	c.mu.Unlock()

	err := c.commit(c.ctx, lessonID, total)

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.state.CommitErr = err
	events := []Event{c.eventLocked(EventCompleted, 0, nil)}
	if err != nil {
		events = append(events, c.eventLocked(EventCommitFailed, 0, err))
	}
	c.mu.Unlock()

	if err != nil {
		log.Error("commit score failed", "total", total, "error", err)
	} else {
		log.Info("lesson completed", "total", total)
	}
	c.dispatch(events)
}

// commit adds total to the stored score and records lesson progress.
func (c *Controller) commit(ctx context.Context, lessonID string, total int) error {
	if total > 0 {
		current, err := c.scores.GetScore(ctx)
		if err != nil {
			return fmt.Errorf("read score: %w", err)
		}
		if err := c.scores.SetScore(ctx, current+total); err != nil {
			return fmt.Errorf("write score: %w", err)
		}
	}
	if c.progress != nil {
		if err := c.progress.RecordCompletion(ctx, lessonID, total); err != nil {
			c.log.Warn("record lesson progress failed", "lesson_id", lessonID, "error", err)
		}
	}
	return nil
}

// Close cancels any pending advance and rejects further calls.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.gen++
	c.resetLocked()
	c.cancel()
}

// State returns a copy of the current session state.
func (c *Controller) State() SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == nil {
		return SessionState{Phase: PhaseIdle}
	}
	return c.state.clone()
}

// Holder returns the interaction holder of the exercise on screen, or nil.
func (c *Controller) Holder() *interaction.Holder {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.holder
}

// Result returns the summary of a completed session together with the score
// commit error, if any.
func (c *Controller) Result() (*SessionSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == nil || c.state.Phase != PhaseCompleted {
		return nil, ErrNotCompleted
	}
	return BuildSummary(c.state.clone()), c.state.CommitErr
}

func (c *Controller) presentLocked(idx int) Event {
	c.state.CurrentIndex = idx
	c.state.Phase = PhasePresenting
	c.holder = interaction.New(c.state.Exercises[idx], c.shuffler)
	return c.eventLocked(EventPresented, 0, nil)
}

func (c *Controller) resetLocked() {
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
	}
	if c.holder != nil {
		c.holder.Expire()
		c.holder = nil
	}
}

func (c *Controller) eventLocked(t EventType, points int, err error) Event {
	e := Event{
		Type:      t,
		SessionID: c.state.SessionID,
		LessonID:  c.state.LessonID,
		Index:     c.state.CurrentIndex,
		Points:    points,
		Total:     c.state.AccumulatedScore,
		Err:       err,
	}
	if spec, ok := c.state.Current(); ok {
		e.ExerciseID = spec.ID
		e.Kind = spec.Kind
	}
	return e
}

// dispatch delivers events outside the lock. Audio failures never reach
// the session.
func (c *Controller) dispatch(events []Event) {
	for _, e := range events {
		switch e.Type {
		case EventCorrect:
			c.cue(c.audio.PlayCorrect)
		case EventWrong:
			c.cue(c.audio.PlayWrong)
		}
		c.listener.OnEvent(e)
	}
}

func (c *Controller) cue(play func()) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Warn("audio cue panicked", "panic", r)
		}
	}()
	play()
}
