package interaction

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/devroad/devroad/internal/exercise"
)

func shuffler() *exercise.Shuffler {
	return exercise.NewShuffler(rand.NewPCG(1, 1))
}

func mcSpec() exercise.Spec {
	return exercise.Spec{
		ID:      "mc",
		Kind:    exercise.KindMultipleChoice,
		Payload: &exercise.MultipleChoicePayload{Options: []string{"int", "String", "char"}},
		Answer:  "int",
	}
}

func ddSpec() exercise.Spec {
	return exercise.Spec{
		ID:   "dd",
		Kind: exercise.KindDragDrop,
		Payload: &exercise.DragDropPayload{
			Items:   []string{"a", "b"},
			Targets: []string{"T1", "T2"},
		},
	}
}

func fbSpec() exercise.Spec {
	return exercise.Spec{
		ID:   "fb",
		Kind: exercise.KindFillBlanks,
		Payload: &exercise.FillBlanksPayload{Blanks: []exercise.Blank{
			{Text: "int x = _", Options: []string{"1", "\"1\""}},
			{Text: "x _ 1", Options: []string{"+", "-"}},
		}},
	}
}

func acSpec() exercise.Spec {
	return exercise.Spec{
		ID:      "ac",
		Kind:    exercise.KindArrangeCode,
		Payload: &exercise.ArrangeCodePayload{Lines: []string{"L1", "L2", "L3"}},
	}
}

func TestSelect_ReplacesPrevious(t *testing.T) {
	h := New(mcSpec(), shuffler())
	if err := h.Select(0, "String"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := h.Select(0, "int"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	got, ok := h.Selection(0)
	if !ok || got != "int" {
		t.Errorf("Selection(0) = %q, %v; want int, true", got, ok)
	}
	if n := len(h.Response().Selections); n != 1 {
		t.Errorf("len(Selections) = %d, want 1", n)
	}
}

func TestSelect_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		spec  exercise.Spec
		group int
		value string
	}{
		{"unknown option", mcSpec(), 0, "float"},
		{"mc group 1", mcSpec(), 1, "int"},
		{"blank out of range", fbSpec(), 2, "+"},
		{"option of another blank", fbSpec(), 0, "+"},
		{"drag drop", ddSpec(), 0, "a"},
		{"arrange code", acSpec(), 0, "L1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(tt.spec, shuffler())
			err := h.Select(tt.group, tt.value)
			if !errors.Is(err, ErrInvalidInteraction) {
				t.Errorf("Select() error = %v, want ErrInvalidInteraction", err)
			}
		})
	}
}

func TestSelect_PerBlank(t *testing.T) {
	h := New(fbSpec(), shuffler())
	if err := h.Select(0, "1"); err != nil {
		t.Fatal(err)
	}
	if err := h.Select(1, "+"); err != nil {
		t.Fatal(err)
	}
	if err := h.Clear(0); err != nil {
		t.Fatal(err)
	}
	if _, ok := h.Selection(0); ok {
		t.Error("blank 0 still selected after Clear")
	}
	if v, _ := h.Selection(1); v != "+" {
		t.Errorf("Selection(1) = %q, want +", v)
	}
}

func TestAssignToTarget(t *testing.T) {
	h := New(ddSpec(), shuffler())

	if err := h.AssignToTarget("T1", "a"); err != nil {
		t.Fatal(err)
	}
	// Same item dropped on another target moves it.
	if err := h.AssignToTarget("T2", "a"); err != nil {
		t.Fatal(err)
	}
	if _, ok := h.Assignment("T1"); ok {
		t.Error("T1 should be empty after the item moved")
	}
	if v, _ := h.Assignment("T2"); v != "a" {
		t.Errorf("T2 = %q, want a", v)
	}

	// Replacing returns the old item to the pool.
	if err := h.AssignToTarget("T2", "b"); err != nil {
		t.Fatal(err)
	}
	if got := h.Unplaced(); !slices.Equal(got, []string{"a"}) {
		t.Errorf("Unplaced() = %v, want [a]", got)
	}

	if err := h.Unassign("T2"); err != nil {
		t.Fatal(err)
	}
	if n := len(h.Assignments()); n != 0 {
		t.Errorf("len(Assignments) = %d, want 0", n)
	}
}

func TestAssignToTarget_Invalid(t *testing.T) {
	h := New(ddSpec(), shuffler())
	if err := h.AssignToTarget("T9", "a"); !errors.Is(err, ErrInvalidInteraction) {
		t.Errorf("unknown target: %v", err)
	}
	if err := h.AssignToTarget("T1", "z"); !errors.Is(err, ErrInvalidInteraction) {
		t.Errorf("unknown item: %v", err)
	}
	mc := New(mcSpec(), shuffler())
	if err := mc.AssignToTarget("T1", "a"); !errors.Is(err, ErrInvalidInteraction) {
		t.Errorf("wrong kind: %v", err)
	}
}

func TestArrangeCode_StartsShuffled(t *testing.T) {
	h := New(acSpec(), shuffler())
	order := h.Order()
	if !slices.Equal(order, h.Presented()) {
		t.Errorf("Order() = %v, want presented order %v", order, h.Presented())
	}
	sorted := slices.Clone(order)
	slices.Sort(sorted)
	if !slices.Equal(sorted, []string{"L1", "L2", "L3"}) {
		t.Errorf("Order() = %v is not a permutation", order)
	}
}

func TestReorder(t *testing.T) {
	h := New(acSpec(), shuffler())
	if err := h.Reorder([]string{"L1", "L2", "L3"}); err != nil {
		t.Fatal(err)
	}
	if err := h.Move(0, 2); err != nil {
		t.Fatal(err)
	}
	if got := h.Order(); !slices.Equal(got, []string{"L2", "L3", "L1"}) {
		t.Errorf("Order() = %v", got)
	}

	bad := [][]string{
		{"L1", "L2"},
		{"L1", "L2", "L3", "L4"},
		{"L1", "L1", "L2"},
		{"L1", "L2", "X"},
	}
	for _, lines := range bad {
		if err := h.Reorder(lines); !errors.Is(err, ErrInvalidInteraction) {
			t.Errorf("Reorder(%v) error = %v, want ErrInvalidInteraction", lines, err)
		}
	}
	if err := h.Move(0, 3); !errors.Is(err, ErrInvalidInteraction) {
		t.Errorf("Move out of range: %v", err)
	}
}

func TestExpire_RejectsMutations(t *testing.T) {
	h := New(mcSpec(), shuffler())
	if err := h.Select(0, "int"); err != nil {
		t.Fatal(err)
	}
	h.Expire()

	err := h.Select(0, "String")
	if !errors.Is(err, ErrStaleInteraction) {
		t.Fatalf("Select after Expire = %v, want ErrStaleInteraction", err)
	}
	var sErr *StaleError
	if !errors.As(err, &sErr) || sErr.ExerciseID != "mc" {
		t.Errorf("expected *StaleError for mc, got %v", err)
	}
	if v, _ := h.Selection(0); v != "int" {
		t.Errorf("selection changed after Expire: %q", v)
	}

	dd := New(ddSpec(), shuffler())
	dd.Expire()
	if err := dd.AssignToTarget("T1", "a"); !errors.Is(err, ErrStaleInteraction) {
		t.Errorf("AssignToTarget after Expire = %v", err)
	}
	ac := New(acSpec(), shuffler())
	ac.Expire()
	if err := ac.Reorder([]string{"L1", "L2", "L3"}); !errors.Is(err, ErrStaleInteraction) {
		t.Errorf("Reorder after Expire = %v", err)
	}
}

func TestResponse_IsSnapshot(t *testing.T) {
	h := New(ddSpec(), shuffler())
	_ = h.AssignToTarget("T1", "a")
	resp := h.Response()
	_ = h.AssignToTarget("T2", "b")
	if len(resp.Assignments) != 1 {
		t.Errorf("snapshot changed: %v", resp.Assignments)
	}
	if resp.Kind != exercise.KindDragDrop {
		t.Errorf("Kind = %q", resp.Kind)
	}
}
