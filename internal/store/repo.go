package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/devroad/devroad/ent"
)

// ErrNotFound is returned when a looked-up row does not exist.
var ErrNotFound = errors.New("not found")

// QueryOpts configures list queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LessonProgress is the stored completion record of one lesson.
type LessonProgress struct {
	LessonID  string
	Completed bool
	Score     int
	UpdatedAt time.Time
}

// Attempt is one submitted exercise as stored in the attempt log.
type Attempt struct {
	Sequence   int64
	Timestamp  time.Time
	SessionID  string
	LessonID   string
	ExerciseID string
	Kind       string
	Correct    bool
	Points     int
}

// withTx runs fn inside a transaction, rolling back on error.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rollback: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
