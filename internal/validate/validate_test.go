package validate

import (
	"testing"

	"github.com/devroad/devroad/internal/exercise"
	"github.com/devroad/devroad/internal/interaction"
)

func TestMultipleChoice(t *testing.T) {
	spec := exercise.Spec{
		ID:      "mc",
		Kind:    exercise.KindMultipleChoice,
		Payload: &exercise.MultipleChoicePayload{Options: []string{"int", "String", "char", "Int"}},
		Answer:  "int",
	}
	tests := []struct {
		name       string
		selections map[int]string
		want       bool
	}{
		{"correct", map[int]string{0: "int"}, true},
		{"wrong", map[int]string{0: "String"}, false},
		{"case differs", map[int]string{0: "Int"}, false},
		{"no selection", map[int]string{}, false},
		{"nil selections", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := interaction.Response{Kind: exercise.KindMultipleChoice, Selections: tt.selections}
			if got := Check(spec, resp); got != tt.want {
				t.Errorf("Check() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArrangeCode(t *testing.T) {
	spec := exercise.Spec{
		ID:      "ac",
		Kind:    exercise.KindArrangeCode,
		Payload: &exercise.ArrangeCodePayload{Lines: []string{"L1", "L2", "L3"}},
	}
	tests := []struct {
		name  string
		order []string
		want  bool
	}{
		{"exact", []string{"L1", "L2", "L3"}, true},
		{"swapped", []string{"L2", "L1", "L3"}, false},
		{"shorter", []string{"L1", "L2"}, false},
		{"longer", []string{"L1", "L2", "L3", "L3"}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := interaction.Response{Kind: exercise.KindArrangeCode, Order: tt.order}
			if got := Check(spec, resp); got != tt.want {
				t.Errorf("Check() = %v, want %v", got, tt.want)
			}
		})
	}
}

func ddSpec() exercise.Spec {
	return exercise.Spec{
		ID:   "dd",
		Kind: exercise.KindDragDrop,
		Payload: &exercise.DragDropPayload{
			Items:    []string{"a", "b"},
			Targets:  []string{"T1", "T2"},
			Expected: map[string]string{"T1": "a", "T2": "b"},
		},
	}
}

func TestDragDrop_CompletionOnly(t *testing.T) {
	tests := []struct {
		name        string
		assignments map[string]string
		want        bool
	}{
		{"both placed", map[string]string{"T1": "a", "T2": "b"}, true},
		{"swapped still passes", map[string]string{"T1": "b", "T2": "a"}, true},
		{"T2 empty", map[string]string{"T1": "a"}, false},
		{"nothing placed", nil, false},
		{"unknown item", map[string]string{"T1": "a", "T2": "z"}, false},
		{"same item twice", map[string]string{"T1": "a", "T2": "a"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := interaction.Response{Kind: exercise.KindDragDrop, Assignments: tt.assignments}
			if got := Check(ddSpec(), resp); got != tt.want {
				t.Errorf("Check() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDragDrop_Strict(t *testing.T) {
	strict := Policy{StrictDragDrop: true}
	right := interaction.Response{Kind: exercise.KindDragDrop, Assignments: map[string]string{"T1": "a", "T2": "b"}}
	swapped := interaction.Response{Kind: exercise.KindDragDrop, Assignments: map[string]string{"T1": "b", "T2": "a"}}

	if !strict.Check(ddSpec(), right) {
		t.Error("strict: expected matching placement to pass")
	}
	if strict.Check(ddSpec(), swapped) {
		t.Error("strict: expected swapped placement to fail")
	}
}

func TestFillBlanks(t *testing.T) {
	blanks := []exercise.Blank{
		{Text: "int x = _", Options: []string{"1", "\"1\""}},
		{Text: "x _ 1", Options: []string{"+", "-"}},
	}
	legacy := exercise.Spec{Kind: exercise.KindFillBlanks, Payload: &exercise.FillBlanksPayload{Blanks: blanks}, Answer: "correct"}
	legacyOther := exercise.Spec{Kind: exercise.KindFillBlanks, Payload: &exercise.FillBlanksPayload{Blanks: blanks}, Answer: "1,+"}
	strict := exercise.Spec{Kind: exercise.KindFillBlanks, Payload: &exercise.FillBlanksPayload{Blanks: blanks, Expected: []string{"1", "+"}}}

	tests := []struct {
		name       string
		spec       exercise.Spec
		selections map[int]string
		want       bool
	}{
		{"legacy all selected", legacy, map[int]string{0: "\"1\"", 1: "-"}, true},
		{"legacy missing blank", legacy, map[int]string{0: "1"}, false},
		{"legacy non-sentinel answer", legacyOther, map[int]string{0: "1", 1: "+"}, false},
		{"strict right", strict, map[int]string{0: "1", 1: "+"}, true},
		{"strict wrong", strict, map[int]string{0: "1", 1: "-"}, false},
		{"strict missing", strict, map[int]string{1: "+"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := interaction.Response{Kind: exercise.KindFillBlanks, Selections: tt.selections}
			if got := Check(tt.spec, resp); got != tt.want {
				t.Errorf("Check() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheck_KindMismatch(t *testing.T) {
	resp := interaction.Response{Kind: exercise.KindArrangeCode, Order: []string{"a"}}
	if Check(ddSpec(), resp) {
		t.Error("expected false for a response of another kind")
	}
	if Check(exercise.Spec{Kind: exercise.KindDragDrop}, interaction.Response{Kind: exercise.KindDragDrop}) {
		t.Error("expected false for a spec without payload")
	}
}

func TestCheck_WithHolder(t *testing.T) {
	spec := ddSpec()
	h := interaction.New(spec, nil)
	if Check(spec, h.Response()) {
		t.Error("expected false before any placement")
	}
	_ = h.AssignToTarget("T1", "b")
	_ = h.AssignToTarget("T2", "a")
	if !Check(spec, h.Response()) {
		t.Error("expected true once every target holds an item")
	}
}
