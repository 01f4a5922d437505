package scorecache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devroad/devroad/internal/logger"
)

func newTestStore(t *testing.T, key string) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s, err := New(context.Background(), Options{Addr: mr.Addr(), Key: key}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, mr
}

func TestGetScoreMissingKey(t *testing.T) {
	s, _ := newTestStore(t, "")
	score, err := s.GetScore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestSetThenGet(t *testing.T) {
	s, mr := newTestStore(t, "learner:1:score")
	ctx := context.Background()

	require.NoError(t, s.SetScore(ctx, 100))
	require.NoError(t, s.SetScore(ctx, 130))

	score, err := s.GetScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 130, score)

	raw, err := mr.Get("learner:1:score")
	require.NoError(t, err)
	assert.Equal(t, "130", raw)
}

func TestDefaultKey(t *testing.T) {
	s, mr := newTestStore(t, "")
	require.NoError(t, s.SetScore(context.Background(), 5))
	assert.True(t, mr.Exists(DefaultKey))
}

func TestReset(t *testing.T) {
	s, mr := newTestStore(t, "k")
	ctx := context.Background()
	require.NoError(t, s.SetScore(ctx, 9))
	require.NoError(t, s.Reset(ctx))
	assert.False(t, mr.Exists("k"))

	score, err := s.GetScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestGetScoreRejectsGarbage(t *testing.T) {
	s, mr := newTestStore(t, "k")
	require.NoError(t, mr.Set("k", "lots"))
	_, err := s.GetScore(context.Background())
	assert.Error(t, err)
}

func TestServerDown(t *testing.T) {
	s, mr := newTestStore(t, "k")
	mr.Close()
	ctx := context.Background()
	_, err := s.GetScore(ctx)
	assert.Error(t, err)
	assert.Error(t, s.SetScore(ctx, 1))
}

func TestNewRequiresAddr(t *testing.T) {
	_, err := New(context.Background(), Options{}, nil)
	assert.Error(t, err)
}
