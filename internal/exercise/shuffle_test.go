package exercise

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestShuffle_SameMultiset(t *testing.T) {
	s := NewShuffler(rand.NewPCG(1, 2))
	in := []string{"a", "b", "c", "d", "e"}
	orig := slices.Clone(in)

	out := s.Shuffle(in)
	if !slices.Equal(in, orig) {
		t.Fatalf("input modified: %v", in)
	}
	sorted := slices.Clone(out)
	slices.Sort(sorted)
	if !slices.Equal(sorted, orig) {
		t.Errorf("Shuffle(%v) = %v, not a permutation", in, out)
	}
}

func TestShuffle_FreshPermutationPerCall(t *testing.T) {
	s := NewShuffler(rand.NewPCG(7, 7))
	in := []string{"1", "2", "3", "4", "5", "6", "7", "8"}

	first := s.Shuffle(in)
	differs := false
	for range 20 {
		if !slices.Equal(s.Shuffle(in), first) {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("expected a different permutation on a later presentation")
	}
}

func TestShuffle_Reproducible(t *testing.T) {
	in := []string{"a", "b", "c", "d"}
	a := NewShuffler(rand.NewPCG(42, 0)).Shuffle(in)
	b := NewShuffler(rand.NewPCG(42, 0)).Shuffle(in)
	if !slices.Equal(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestShuffle_NilShuffler(t *testing.T) {
	var s *Shuffler
	out := s.Shuffle([]string{"x", "y"})
	if len(out) != 2 {
		t.Errorf("len = %d, want 2", len(out))
	}
}

func TestPresentation(t *testing.T) {
	s := NewShuffler(rand.NewPCG(3, 4))
	tests := []struct {
		name string
		spec Spec
		want int
	}{
		{"drag_drop", Spec{Kind: KindDragDrop, Payload: &DragDropPayload{Items: []string{"a", "b"}, Targets: []string{"A", "B"}}}, 2},
		{"arrange_code", Spec{Kind: KindArrangeCode, Payload: &ArrangeCodePayload{Lines: []string{"a", "b", "c"}}}, 3},
		{"multiple_choice", Spec{Kind: KindMultipleChoice, Payload: &MultipleChoicePayload{Options: []string{"a"}}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(s.Presentation(tt.spec)); got != tt.want {
				t.Errorf("len(Presentation) = %d, want %d", got, tt.want)
			}
		})
	}
}
