// Package exercise defines the exercise model shared by the loaders, the
// validators and the session controller.
package exercise

import "encoding/json"

// Kind identifies the interaction model of an exercise.
type Kind string

const (
	KindDragDrop       Kind = "drag_drop"
	KindMultipleChoice Kind = "multiple_choice"
	KindFillBlanks     Kind = "fill_blanks"
	KindArrangeCode    Kind = "arrange_code"
)

// AllKinds lists every supported kind in display order.
var AllKinds = []Kind{KindDragDrop, KindMultipleChoice, KindFillBlanks, KindArrangeCode}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindDragDrop, KindMultipleChoice, KindFillBlanks, KindArrangeCode:
		return true
	}
	return false
}

// Label returns a short human-readable name.
func (k Kind) Label() string {
	switch k {
	case KindDragDrop:
		return "Drag & Drop"
	case KindMultipleChoice:
		return "Multiple Choice"
	case KindFillBlanks:
		return "Fill the Blanks"
	case KindArrangeCode:
		return "Arrange the Code"
	}
	return string(k)
}

// Spec is a single parsed exercise. It is immutable once returned by Parse.
type Spec struct {
	ID         string
	LessonID   string
	Kind       Kind
	Prompt     string
	Payload    Payload
	Answer     string
	Points     int
	OrderIndex int
}

// Payload is the kind-specific content of an exercise. The set of
// implementations is closed.
type Payload interface {
	Kind() Kind
	isPayload()
}

// DragDropPayload holds draggable items and the targets they are dropped on.
// Expected maps each target to its item; it comes from a JSON object answer
// when one is given and from positional pairing of items and targets
// otherwise.
type DragDropPayload struct {
	Items    []string          `json:"items"`
	Targets  []string          `json:"targets"`
	Expected map[string]string `json:"-"`
}

// MultipleChoicePayload holds the options of a single-answer question.
type MultipleChoicePayload struct {
	Options []string `json:"options"`
}

// Blank is one gap in a fill-the-blanks exercise.
type Blank struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// FillBlanksPayload holds the blanks of a fill-the-blanks exercise.
// Expected is nil when the answer uses the legacy sentinel encoding.
type FillBlanksPayload struct {
	Blanks   []Blank  `json:"blanks"`
	Expected []string `json:"-"`
}

// ArrangeCodePayload holds code lines in their canonical order.
type ArrangeCodePayload struct {
	Lines []string `json:"lines"`
}

func (*DragDropPayload) Kind() Kind       { return KindDragDrop }
func (*MultipleChoicePayload) Kind() Kind { return KindMultipleChoice }
func (*FillBlanksPayload) Kind() Kind     { return KindFillBlanks }
func (*ArrangeCodePayload) Kind() Kind    { return KindArrangeCode }

func (*DragDropPayload) isPayload()       {}
func (*MultipleChoicePayload) isPayload() {}
func (*FillBlanksPayload) isPayload()     {}
func (*ArrangeCodePayload) isPayload()    {}

// Record is the wire shape of an exercise row, as served by the remote
// backend and stored in the local catalog.
type Record struct {
	ID         string          `json:"id"`
	LessonID   string          `json:"lesson_id"`
	Type       string          `json:"type"`
	Question   string          `json:"question"`
	Data       json.RawMessage `json:"data"`
	Answer     string          `json:"answer"`
	Points     int             `json:"points"`
	OrderIndex int             `json:"order_index"`
}
