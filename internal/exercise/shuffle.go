package exercise

import (
	"math/rand/v2"
	"sync"
)

// Shuffler produces presentation orders for drag-drop items and code lines.
// A nil *Shuffler uses the global generator.
type Shuffler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewShuffler returns a Shuffler drawing from src. Tests pass a seeded
// source for reproducible orders.
func NewShuffler(src rand.Source) *Shuffler {
	return &Shuffler{rng: rand.New(src)}
}

// Shuffle returns a new slice holding a permutation of values. The input is
// not modified.
func (s *Shuffler) Shuffle(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }

	if s == nil || s.rng == nil {
		rand.Shuffle(len(out), swap)
		return out
	}
	s.mu.Lock()
	s.rng.Shuffle(len(out), swap)
	s.mu.Unlock()
	return out
}

// Presentation returns the values a learner rearranges for spec, in a fresh
// order. Kinds without rearrangeable content return nil.
func (s *Shuffler) Presentation(spec Spec) []string {
	switch p := spec.Payload.(type) {
	case *DragDropPayload:
		return s.Shuffle(p.Items)
	case *ArrangeCodePayload:
		return s.Shuffle(p.Lines)
	}
	return nil
}
