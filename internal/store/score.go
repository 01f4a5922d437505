package store

import (
	"context"
	"fmt"
	"time"

	"github.com/devroad/devroad/ent"
	"github.com/devroad/devroad/ent/userscore"
)

// ScoreRepo is the durable score of one learner. It implements
// session.ScoreStore.
type ScoreRepo struct {
	client *ent.Client
	userID string
}

// GetScore returns the stored score, or 0 for a learner without one.
func (r *ScoreRepo) GetScore(ctx context.Context) (int, error) {
	us, err := r.client.UserScore.Query().
		Where(userscore.UserID(r.userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query score: %w", err)
	}
	return us.Score, nil
}

// SetScore replaces the stored score.
func (r *ScoreRepo) SetScore(ctx context.Context, score int) error {
	err := r.client.UserScore.Create().
		SetUserID(r.userID).
		SetScore(score).
		SetUpdatedAt(time.Now().UTC()).
		OnConflictColumns(userscore.FieldUserID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save score: %w", err)
	}
	return nil
}

// Reset sets the score back to zero.
func (r *ScoreRepo) Reset(ctx context.Context) error {
	return r.SetScore(ctx, 0)
}
