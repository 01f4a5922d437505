package exercise

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// LegacyFillBlanksAnswer is the fixed answer value older content uses for
// fill-the-blanks exercises instead of listing the expected selections.
const LegacyFillBlanksAnswer = "correct"

// Parse converts a wire record into a Spec, rejecting any payload that is
// inconsistent with the record's kind.
func Parse(r Record) (Spec, error) {
	if strings.TrimSpace(r.ID) == "" {
		return Spec{}, malformed(r.ID, "missing id", nil)
	}
	kind := Kind(r.Type)
	if !kind.Valid() {
		return Spec{}, malformed(r.ID, fmt.Sprintf("unknown kind %q", r.Type), nil)
	}
	if r.Points < 0 {
		return Spec{}, malformed(r.ID, fmt.Sprintf("negative points %d", r.Points), nil)
	}

	raw, err := payloadBytes(r.Data)
	if err != nil {
		return Spec{}, malformed(r.ID, "unreadable data", err)
	}
	if err := validatePayload(kind, raw); err != nil {
		return Spec{}, malformed(r.ID, "payload does not match kind", err)
	}

	payload, err := decodePayload(kind, raw, r.Answer)
	if err != nil {
		return Spec{}, malformed(r.ID, err.Error(), nil)
	}

	return Spec{
		ID:         r.ID,
		LessonID:   r.LessonID,
		Kind:       kind,
		Prompt:     r.Question,
		Payload:    payload,
		Answer:     r.Answer,
		Points:     r.Points,
		OrderIndex: r.OrderIndex,
	}, nil
}

// ParseAll parses every record and returns the specs sorted by OrderIndex.
// It stops at the first malformed record.
func ParseAll(records []Record) ([]Spec, error) {
	specs := make([]Spec, 0, len(records))
	for _, r := range records {
		s, err := Parse(r)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	SortByOrder(specs)
	return specs, nil
}

// SortByOrder sorts specs ascending by OrderIndex. Equal indexes keep their
// input order.
func SortByOrder(specs []Spec) {
	slices.SortStableFunc(specs, func(a, b Spec) int {
		return cmp.Compare(a.OrderIndex, b.OrderIndex)
	})
}

// payloadBytes returns the data object. Some backends store the object as a
// JSON-encoded string, which is unwrapped here.
func payloadBytes(data json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("data is empty")
	}
	if trimmed[0] != '"' {
		return trimmed, nil
	}
	var inner string
	if err := json.Unmarshal(trimmed, &inner); err != nil {
		return nil, err
	}
	return json.RawMessage(inner), nil
}

func decodePayload(kind Kind, raw json.RawMessage, answer string) (Payload, error) {
	switch kind {
	case KindDragDrop:
		var p DragDropPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return &p, checkDragDrop(&p, answer)
	case KindMultipleChoice:
		var p MultipleChoicePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return &p, checkMultipleChoice(&p, answer)
	case KindFillBlanks:
		var p FillBlanksPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return &p, checkFillBlanks(&p, answer)
	case KindArrangeCode:
		var p ArrangeCodePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return &p, nil
	}
	return nil, fmt.Errorf("unknown kind %q", kind)
}

func checkDragDrop(p *DragDropPayload, answer string) error {
	if len(p.Items) != len(p.Targets) {
		return fmt.Errorf("%d items for %d targets", len(p.Items), len(p.Targets))
	}
	if dup, ok := firstDuplicate(p.Targets); ok {
		return fmt.Errorf("duplicate target %q", dup)
	}
	if dup, ok := firstDuplicate(p.Items); ok {
		return fmt.Errorf("duplicate item %q", dup)
	}

	trimmed := strings.TrimSpace(answer)
	if strings.HasPrefix(trimmed, "{") {
		var expected map[string]string
		if err := json.Unmarshal([]byte(trimmed), &expected); err != nil {
			return fmt.Errorf("answer mapping: %w", err)
		}
		for _, t := range p.Targets {
			item, ok := expected[t]
			if !ok {
				return fmt.Errorf("answer has no item for target %q", t)
			}
			if !slices.Contains(p.Items, item) {
				return fmt.Errorf("answer item %q is not an item", item)
			}
		}
		p.Expected = expected
		return nil
	}

	p.Expected = make(map[string]string, len(p.Targets))
	for i, t := range p.Targets {
		p.Expected[t] = p.Items[i]
	}
	return nil
}

func checkMultipleChoice(p *MultipleChoicePayload, answer string) error {
	if dup, ok := firstDuplicate(p.Options); ok {
		return fmt.Errorf("duplicate option %q", dup)
	}
	if !slices.Contains(p.Options, answer) {
		return fmt.Errorf("answer %q is not an option", answer)
	}
	return nil
}

func checkFillBlanks(p *FillBlanksPayload, answer string) error {
	trimmed := strings.TrimSpace(answer)
	if !strings.HasPrefix(trimmed, "[") {
		return nil
	}
	var expected []string
	if err := json.Unmarshal([]byte(trimmed), &expected); err != nil {
		return fmt.Errorf("answer list: %w", err)
	}
	if len(expected) != len(p.Blanks) {
		return fmt.Errorf("answer has %d entries for %d blanks", len(expected), len(p.Blanks))
	}
	for i, want := range expected {
		if !slices.Contains(p.Blanks[i].Options, want) {
			return fmt.Errorf("answer %q is not an option of blank %d", want, i)
		}
	}
	p.Expected = expected
	return nil
}

func firstDuplicate(values []string) (string, bool) {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return v, true
		}
		seen[v] = struct{}{}
	}
	return "", false
}
