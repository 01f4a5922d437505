// Package validate decides whether a learner's response to an exercise is
// correct. Every function here is pure and never fails: anything it cannot
// make sense of is simply wrong.
package validate

import (
	"slices"

	"github.com/devroad/devroad/internal/exercise"
	"github.com/devroad/devroad/internal/interaction"
)

// Policy selects between the lenient and strict rules where content allows
// both.
type Policy struct {
	// StrictDragDrop requires each target to hold its expected item instead
	// of accepting any complete placement.
	StrictDragDrop bool
}

// Check validates resp against spec with the default policy.
func Check(spec exercise.Spec, resp interaction.Response) bool {
	return Policy{}.Check(spec, resp)
}

// Check validates resp against spec.
func (p Policy) Check(spec exercise.Spec, resp interaction.Response) bool {
	if resp.Kind != spec.Kind {
		return false
	}
	switch pl := spec.Payload.(type) {
	case *exercise.DragDropPayload:
		if p.StrictDragDrop {
			return DragDropStrict(pl, resp.Assignments)
		}
		return DragDrop(pl, resp.Assignments)
	case *exercise.MultipleChoicePayload:
		return MultipleChoice(spec.Answer, resp.Selections)
	case *exercise.FillBlanksPayload:
		return FillBlanks(pl, spec.Answer, resp.Selections)
	case *exercise.ArrangeCodePayload:
		return ArrangeCode(pl, resp.Order)
	}
	return false
}

// MultipleChoice is correct when the single selected option equals answer
// exactly.
func MultipleChoice(answer string, selections map[int]string) bool {
	selected, ok := selections[0]
	return ok && selected == answer
}

// DragDrop is correct when every target holds one of the exercise's items.
// Which item sits on which target is not checked.
func DragDrop(p *exercise.DragDropPayload, assignments map[string]string) bool {
	used := make(map[string]bool, len(p.Targets))
	for _, target := range p.Targets {
		item, ok := assignments[target]
		if !ok || !slices.Contains(p.Items, item) || used[item] {
			return false
		}
		used[item] = true
	}
	return true
}

// DragDropStrict is correct when every target holds its expected item.
func DragDropStrict(p *exercise.DragDropPayload, assignments map[string]string) bool {
	if !DragDrop(p, assignments) {
		return false
	}
	for _, target := range p.Targets {
		if assignments[target] != p.Expected[target] {
			return false
		}
	}
	return true
}

// FillBlanks is correct when every blank has a selection and the
// selections match the expected list. Content without an expected list
// falls back to the legacy rule, which only checks that the answer is the
// sentinel value.
func FillBlanks(p *exercise.FillBlanksPayload, answer string, selections map[int]string) bool {
	for i := range p.Blanks {
		if _, ok := selections[i]; !ok {
			return false
		}
	}
	if p.Expected == nil {
		return answer == exercise.LegacyFillBlanksAnswer
	}
	for i, want := range p.Expected {
		if selections[i] != want {
			return false
		}
	}
	return true
}

// ArrangeCode is correct when order equals the canonical lines exactly.
func ArrangeCode(p *exercise.ArrangeCodePayload, order []string) bool {
	return slices.Equal(order, p.Lines)
}
