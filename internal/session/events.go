package session

import (
	"time"

	"github.com/devroad/devroad/internal/exercise"
)

// EventType identifies a session notification.
type EventType int

const (
	EventLoaded       EventType = iota // Exercise list received
	EventPresented                     // An exercise is ready for input
	EventCorrect                       // Submission judged correct
	EventWrong                         // Submission judged wrong
	EventCompleted                     // Last exercise passed, score committed
	EventCommitFailed                  // Score commit failed after completion
	EventFailed                        // Load failed
)

func (t EventType) String() string {
	switch t {
	case EventLoaded:
		return "loaded"
	case EventPresented:
		return "presented"
	case EventCorrect:
		return "correct"
	case EventWrong:
		return "wrong"
	case EventCompleted:
		return "completed"
	case EventCommitFailed:
		return "commit_failed"
	case EventFailed:
		return "failed"
	}
	return "unknown"
}

// Event is delivered to the Listener after every state change.
type Event struct {
	Type       EventType
	SessionID  string
	LessonID   string
	Index      int
	ExerciseID string
	Kind       exercise.Kind
	Points     int // points awarded by this event
	Total      int // accumulated score after this event
	Err        error
}

// Listener receives session events. OnEvent is called without the
// controller lock held, so it may call back into the controller.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Listeners fans events out to every non-nil listener in order.
func Listeners(ls ...Listener) Listener {
	var out multiListener
	for _, l := range ls {
		if l != nil {
			out = append(out, l)
		}
	}
	return out
}

type multiListener []Listener

func (m multiListener) OnEvent(e Event) {
	for _, l := range m {
		l.OnEvent(e)
	}
}

// Task is a deferred call that can be cancelled before it runs.
type Task interface {
	// Cancel stops the task. It reports false if the task already ran.
	Cancel() bool
}

// Scheduler runs fn after d.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Task
}

type timerScheduler struct{}

// TimerScheduler returns a Scheduler backed by time.AfterFunc.
func TimerScheduler() Scheduler { return timerScheduler{} }

func (timerScheduler) AfterFunc(d time.Duration, fn func()) Task {
	return timerTask{t: time.AfterFunc(d, fn)}
}

type timerTask struct{ t *time.Timer }

func (t timerTask) Cancel() bool { return t.t.Stop() }

type nopListener struct{}

func (nopListener) OnEvent(Event) {}

type nopAudio struct{}

func (nopAudio) PlayCorrect() {}
func (nopAudio) PlayWrong()   {}
