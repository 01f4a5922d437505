// Package session runs a lesson's exercises in order, validates each
// submission and commits the lesson score when the last exercise is done.
package session

import (
	"context"
	"slices"

	"github.com/devroad/devroad/internal/exercise"
)

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseIdle       SessionPhase = iota // No lesson loaded yet
	PhaseLoading                        // Waiting for the exercise list
	PhasePresenting                     // Current exercise accepts input
	PhaseValidating                     // Showing feedback before advancing
	PhaseCompleted                      // Every exercise visited, score committed
	PhaseFailed                         // Load failed; a new Load is the only retry
)

func (p SessionPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhasePresenting:
		return "presenting"
	case PhaseValidating:
		return "validating"
	case PhaseCompleted:
		return "completed"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// Loader fetches the exercises of a lesson sorted by OrderIndex.
type Loader interface {
	LoadExercises(ctx context.Context, lessonID string) ([]exercise.Spec, error)
}

// ScoreStore holds the learner's durable total score. Writes are
// last-write-wins.
type ScoreStore interface {
	GetScore(ctx context.Context) (int, error)
	SetScore(ctx context.Context, score int) error
}

// AudioCue plays short feedback sounds. Implementations must return
// immediately.
type AudioCue interface {
	PlayCorrect()
	PlayWrong()
}

// ProgressRecorder stores per-lesson completion. Optional.
type ProgressRecorder interface {
	RecordCompletion(ctx context.Context, lessonID string, score int) error
}

// ExerciseResult is the verdict for one visited exercise.
type ExerciseResult struct {
	ExerciseID string
	Kind       exercise.Kind
	Correct    bool
	Awarded    int
}

// SessionState tracks the runtime state of a lesson visit.
type SessionState struct {
	// SessionID is the UUID for this visit.
	SessionID string

	// LessonID is the lesson being played.
	LessonID string

	// Exercises is fixed once loading succeeds.
	Exercises []exercise.Spec

	// CurrentIndex points at the exercise on screen; len(Exercises) once
	// completed.
	CurrentIndex int

	// AccumulatedScore only grows, by the points of correct answers.
	AccumulatedScore int

	// Phase is the current session phase.
	Phase SessionPhase

	// Results holds one verdict per submitted exercise, in order.
	Results []ExerciseResult

	// Err is the load failure when Phase is PhaseFailed.
	Err error

	// CommitErr is set when the final score could not be stored.
	CommitErr error
}

// NewSessionState creates an empty state for lessonID.
func NewSessionState(sessionID, lessonID string) *SessionState {
	return &SessionState{
		SessionID: sessionID,
		LessonID:  lessonID,
		Phase:     PhaseLoading,
	}
}

// Current returns the exercise on screen.
func (s *SessionState) Current() (exercise.Spec, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Exercises) {
		return exercise.Spec{}, false
	}
	return s.Exercises[s.CurrentIndex], true
}

// LastResult returns the most recent verdict.
func (s *SessionState) LastResult() (ExerciseResult, bool) {
	if len(s.Results) == 0 {
		return ExerciseResult{}, false
	}
	return s.Results[len(s.Results)-1], true
}

func (s *SessionState) clone() SessionState {
	c := *s
	c.Results = slices.Clone(s.Results)
	return c
}
