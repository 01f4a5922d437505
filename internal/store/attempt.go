package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/devroad/devroad/ent"
	"github.com/devroad/devroad/ent/attemptevent"
	"github.com/devroad/devroad/ent/sequence"
)

const attemptSequence = "events"

// sequenceCounter hands out the global sequence numbers stored in event
// tables, so events keep one order across tables and restarts. The mutex
// serializes within the process; the transaction makes the increment
// atomic at the database level.
type sequenceCounter struct {
	mu     sync.Mutex
	client *ent.Client
}

func newSequenceCounter(ctx context.Context, client *ent.Client) (*sequenceCounter, error) {
	err := client.Sequence.Create().
		SetID(attemptSequence).
		SetNextVal(1).
		OnConflictColumns(sequence.FieldID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{client: client}, nil
}

// Next returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var next int64
	err := withTx(ctx, sc.client, func(tx *ent.Tx) error {
		s, err := tx.Sequence.UpdateOneID(attemptSequence).
			AddNextVal(1).
			Save(ctx)
		if err != nil {
			return err
		}
		next = s.NextVal - 1
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return next, nil
}

// AttemptRepo is the append-only log of submitted exercises for one
// learner.
type AttemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
	userID string
}

// Append stores a.
func (r *AttemptRepo) Append(ctx context.Context, a Attempt) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	ts := a.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err = r.client.AttemptEvent.Create().
		SetSequence(seq).
		SetTimestamp(ts.UTC()).
		SetUserID(r.userID).
		SetSessionID(a.SessionID).
		SetLessonID(a.LessonID).
		SetExerciseID(a.ExerciseID).
		SetKind(a.Kind).
		SetCorrect(a.Correct).
		SetPoints(a.Points).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

// Recent returns the newest attempts first.
func (r *AttemptRepo) Recent(ctx context.Context, opts QueryOpts) ([]Attempt, error) {
	q := r.client.AttemptEvent.Query().
		Where(attemptevent.UserID(r.userID)).
		Order(ent.Desc(attemptevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	out := make([]Attempt, 0, len(rows))
	for _, ev := range rows {
		out = append(out, Attempt{
			Sequence:   ev.Sequence,
			Timestamp:  ev.Timestamp,
			SessionID:  ev.SessionID,
			LessonID:   ev.LessonID,
			ExerciseID: ev.ExerciseID,
			Kind:       ev.Kind,
			Correct:    ev.Correct,
			Points:     ev.Points,
		})
	}
	return out, nil
}

// Accuracy returns the share of correct attempts on lessonID and the number
// of attempts.
func (r *AttemptRepo) Accuracy(ctx context.Context, lessonID string) (float64, int, error) {
	q := r.client.AttemptEvent.Query().
		Where(attemptevent.UserID(r.userID), attemptevent.LessonID(lessonID))
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count attempts: %w", err)
	}
	if total == 0 {
		return 0, 0, nil
	}
	correct, err := q.Where(attemptevent.Correct(true)).Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct attempts: %w", err)
	}
	return float64(correct) / float64(total), total, nil
}

// Reset deletes every attempt of the learner.
func (r *AttemptRepo) Reset(ctx context.Context) error {
	_, err := r.client.AttemptEvent.Delete().
		Where(attemptevent.UserID(r.userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset attempts: %w", err)
	}
	return nil
}
