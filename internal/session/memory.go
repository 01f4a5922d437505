package session

import (
	"context"
	"sync"
)

// MemoryScoreStore is a ScoreStore that keeps the score in memory. It backs
// dry runs and tests.
type MemoryScoreStore struct {
	mu    sync.Mutex
	score int
}

// NewMemoryScoreStore returns a store holding initial.
func NewMemoryScoreStore(initial int) *MemoryScoreStore {
	return &MemoryScoreStore{score: initial}
}

func (m *MemoryScoreStore) GetScore(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

func (m *MemoryScoreStore) SetScore(_ context.Context, score int) error {
	m.mu.Lock()
	m.score = score
	m.mu.Unlock()
	return nil
}
