package app

import (
	"context"
	"time"

	"github.com/devroad/devroad/internal/logger"
	"github.com/devroad/devroad/internal/session"
	"github.com/devroad/devroad/internal/store"
)

const attemptWriteTimeout = 2 * time.Second

// AttemptRecorder appends submitted exercises to a log. *store.AttemptRepo
// implements it.
type AttemptRecorder interface {
	Append(ctx context.Context, a store.Attempt) error
}

// AttemptListener returns a session listener that logs every verdict to
// rec. Write failures are logged and otherwise ignored.
func AttemptListener(rec AttemptRecorder, log *logger.Logger) session.Listener {
	if log == nil {
		log = logger.Nop()
	}
	return session.ListenerFunc(func(e session.Event) {
		if e.Type != session.EventCorrect && e.Type != session.EventWrong {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), attemptWriteTimeout)
		defer cancel()
		err := rec.Append(ctx, store.Attempt{
			SessionID:  e.SessionID,
			LessonID:   e.LessonID,
			ExerciseID: e.ExerciseID,
			Kind:       string(e.Kind),
			Correct:    e.Type == session.EventCorrect,
			Points:     e.Points,
		})
		if err != nil {
			log.Warn("record attempt failed", "exercise_id", e.ExerciseID, "error", err)
		}
	})
}
