package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/devroad/devroad/ent"
	"github.com/devroad/devroad/ent/userprogress"
)

// ProgressRepo stores lesson completion for one learner. It implements
// session.ProgressRecorder.
type ProgressRepo struct {
	client *ent.Client
	userID string
}

// RecordCompletion marks lessonID completed, keeping the best score seen.
func (r *ProgressRepo) RecordCompletion(ctx context.Context, lessonID string, score int) error {
	err := r.client.UserProgress.Create().
		SetUserID(r.userID).
		SetLessonID(lessonID).
		SetCompleted(true).
		SetScore(score).
		SetUpdatedAt(time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns(userprogress.FieldUserID, userprogress.FieldLessonID),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				u.SetExcluded(userprogress.FieldCompleted)
				u.SetExcluded(userprogress.FieldUpdatedAt)
				u.Set(userprogress.FieldScore, entsql.Expr("MAX(`score`, excluded.`score`)"))
			}),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("record progress for %s: %w", lessonID, err)
	}
	return nil
}

// Get returns the progress of lessonID, or ErrNotFound.
func (r *ProgressRepo) Get(ctx context.Context, lessonID string) (LessonProgress, error) {
	p, err := r.client.UserProgress.Query().
		Where(userprogress.UserID(r.userID), userprogress.LessonID(lessonID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return LessonProgress{}, fmt.Errorf("progress for %s: %w", lessonID, ErrNotFound)
		}
		return LessonProgress{}, fmt.Errorf("query progress: %w", err)
	}
	return entProgressToProgress(p), nil
}

// All returns the progress of every lesson the learner has completed,
// keyed by lesson id.
func (r *ProgressRepo) All(ctx context.Context) (map[string]LessonProgress, error) {
	rows, err := r.client.UserProgress.Query().
		Where(userprogress.UserID(r.userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	out := make(map[string]LessonProgress, len(rows))
	for _, p := range rows {
		out[p.LessonID] = entProgressToProgress(p)
	}
	return out, nil
}

// Reset deletes every progress record of the learner.
func (r *ProgressRepo) Reset(ctx context.Context) error {
	_, err := r.client.UserProgress.Delete().
		Where(userprogress.UserID(r.userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}

func entProgressToProgress(p *ent.UserProgress) LessonProgress {
	return LessonProgress{
		LessonID:  p.LessonID,
		Completed: p.Completed,
		Score:     p.Score,
		UpdatedAt: p.UpdatedAt,
	}
}
