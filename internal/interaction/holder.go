// Package interaction captures a learner's in-progress response to the
// exercise on screen.
package interaction

import (
	"maps"
	"slices"
	"sync"

	"github.com/devroad/devroad/internal/exercise"
)

// Response is an immutable snapshot of a holder, handed to validators.
type Response struct {
	Kind        exercise.Kind
	Selections  map[int]string
	Assignments map[string]string
	Order       []string
}

// Holder records the learner's choices for one presented exercise. It is
// created fresh for every presentation and becomes stale once the session
// moves on. Methods are safe for concurrent use.
type Holder struct {
	mu          sync.Mutex
	spec        exercise.Spec
	presented   []string
	selections  map[int]string
	assignments map[string]string
	order       []string
	stale       bool
}

// New creates a holder for spec. Drag-drop items and code lines are
// presented in a fresh order drawn from shuf; a code exercise starts with
// that order as its current arrangement.
func New(spec exercise.Spec, shuf *exercise.Shuffler) *Holder {
	h := &Holder{
		spec:        spec,
		selections:  make(map[int]string),
		assignments: make(map[string]string),
	}
	h.presented = shuf.Presentation(spec)
	if spec.Kind == exercise.KindArrangeCode {
		h.order = slices.Clone(h.presented)
	}
	return h
}

// Spec returns the exercise this holder belongs to.
func (h *Holder) Spec() exercise.Spec { return h.spec }

// Select records value as the choice for group, replacing any previous
// choice. Multiple choice uses group 0; fill-the-blanks uses the blank index.
func (h *Holder) Select(group int, value string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkLive("select"); err != nil {
		return err
	}

	options, err := h.optionsFor(group)
	if err != nil {
		return err
	}
	if !slices.Contains(options, value) {
		return invalid("%q is not an option of group %d", value, group)
	}
	h.selections[group] = value
	return nil
}

// Clear removes the choice for group.
func (h *Holder) Clear(group int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkLive("clear"); err != nil {
		return err
	}
	if _, err := h.optionsFor(group); err != nil {
		return err
	}
	delete(h.selections, group)
	return nil
}

// AssignToTarget drops item on target. A previous item on target returns to
// the pool, and an item already placed elsewhere is moved.
func (h *Holder) AssignToTarget(target, item string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkLive("assign"); err != nil {
		return err
	}

	p, ok := h.spec.Payload.(*exercise.DragDropPayload)
	if !ok {
		return invalid("assign is not supported by %s", h.spec.Kind)
	}
	if !slices.Contains(p.Targets, target) {
		return invalid("unknown target %q", target)
	}
	if !slices.Contains(p.Items, item) {
		return invalid("unknown item %q", item)
	}

	for t, placed := range h.assignments {
		if placed == item {
			delete(h.assignments, t)
		}
	}
	h.assignments[target] = item
	return nil
}

// Unassign returns the item on target to the pool.
func (h *Holder) Unassign(target string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkLive("unassign"); err != nil {
		return err
	}
	p, ok := h.spec.Payload.(*exercise.DragDropPayload)
	if !ok {
		return invalid("unassign is not supported by %s", h.spec.Kind)
	}
	if !slices.Contains(p.Targets, target) {
		return invalid("unknown target %q", target)
	}
	delete(h.assignments, target)
	return nil
}

// Reorder replaces the current arrangement of code lines. lines must be a
// permutation of the exercise's lines.
func (h *Holder) Reorder(lines []string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkLive("reorder"); err != nil {
		return err
	}
	p, ok := h.spec.Payload.(*exercise.ArrangeCodePayload)
	if !ok {
		return invalid("reorder is not supported by %s", h.spec.Kind)
	}
	if !isPermutation(lines, p.Lines) {
		return invalid("reorder is not a permutation of the exercise lines")
	}
	h.order = slices.Clone(lines)
	return nil
}

// Move shifts the line at position from to position to, sliding the lines
// in between.
func (h *Holder) Move(from, to int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkLive("move"); err != nil {
		return err
	}
	if h.spec.Kind != exercise.KindArrangeCode {
		return invalid("move is not supported by %s", h.spec.Kind)
	}
	n := len(h.order)
	if from < 0 || from >= n || to < 0 || to >= n {
		return invalid("move %d -> %d out of range [0,%d)", from, to, n)
	}
	line := h.order[from]
	h.order = slices.Delete(h.order, from, from+1)
	h.order = slices.Insert(h.order, to, line)
	return nil
}

// Selection returns the choice recorded for group.
func (h *Holder) Selection(group int) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, ok := h.selections[group]
	return v, ok
}

// Assignment returns the item dropped on target.
func (h *Holder) Assignment(target string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, ok := h.assignments[target]
	return v, ok
}

// Assignments returns a copy of all target assignments.
func (h *Holder) Assignments() map[string]string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return maps.Clone(h.assignments)
}

// Order returns the current arrangement of code lines.
func (h *Holder) Order() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.order)
}

// Presented returns the shuffled items or lines as first shown.
func (h *Holder) Presented() []string {
	return slices.Clone(h.presented)
}

// Unplaced returns the drag-drop items not yet on a target, in presentation
// order.
func (h *Holder) Unplaced() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	placed := make(map[string]bool, len(h.assignments))
	for _, item := range h.assignments {
		placed[item] = true
	}
	var out []string
	for _, item := range h.presented {
		if !placed[item] {
			out = append(out, item)
		}
	}
	return out
}

// Response snapshots the holder for validation.
func (h *Holder) Response() Response {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Response{
		Kind:        h.spec.Kind,
		Selections:  maps.Clone(h.selections),
		Assignments: maps.Clone(h.assignments),
		Order:       slices.Clone(h.order),
	}
}

// Expire marks the holder stale. Later mutations fail with a *StaleError.
func (h *Holder) Expire() {
	h.mu.Lock()
	h.stale = true
	h.mu.Unlock()
}

// Stale reports whether the holder has expired.
func (h *Holder) Stale() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stale
}

func (h *Holder) checkLive(op string) error {
	if h.stale {
		return &StaleError{ExerciseID: h.spec.ID, Op: op}
	}
	return nil
}

func (h *Holder) optionsFor(group int) ([]string, error) {
	switch p := h.spec.Payload.(type) {
	case *exercise.MultipleChoicePayload:
		if group != 0 {
			return nil, invalid("multiple choice has a single group, got %d", group)
		}
		return p.Options, nil
	case *exercise.FillBlanksPayload:
		if group < 0 || group >= len(p.Blanks) {
			return nil, invalid("blank %d out of range [0,%d)", group, len(p.Blanks))
		}
		return p.Blanks[group].Options, nil
	}
	return nil, invalid("select is not supported by %s", h.spec.Kind)
}

func isPermutation(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(b))
	for _, s := range b {
		counts[s]++
	}
	for _, s := range a {
		counts[s]--
		if counts[s] < 0 {
			return false
		}
	}
	return true
}
