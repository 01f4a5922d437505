package exercise

import (
	"encoding/json"
	"errors"
	"testing"
)

func record(id, kind, data, answer string) Record {
	return Record{
		ID:       id,
		LessonID: "lesson-1",
		Type:     kind,
		Question: "q",
		Data:     json.RawMessage(data),
		Answer:   answer,
		Points:   10,
	}
}

func TestParse_ValidKinds(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		kind Kind
	}{
		{"drag_drop", record("e1", "drag_drop", `{"items":["a","b"],"targets":["A","B"]}`, ""), KindDragDrop},
		{"multiple_choice", record("e2", "multiple_choice", `{"options":["x","y"]}`, "y"), KindMultipleChoice},
		{"fill_blanks legacy", record("e3", "fill_blanks", `{"blanks":[{"text":"int x = _","options":["1","a"]}]}`, "correct"), KindFillBlanks},
		{"fill_blanks strict", record("e4", "fill_blanks", `{"blanks":[{"text":"_","options":["1","a"]}]}`, `["1"]`), KindFillBlanks},
		{"arrange_code", record("e5", "arrange_code", `{"lines":["a","b","c"]}`, ""), KindArrangeCode},
		{"string encoded data", record("e6", "multiple_choice", `"{\"options\":[\"x\"]}"`, "x"), KindMultipleChoice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Parse(tt.rec)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if spec.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", spec.Kind, tt.kind)
			}
			if spec.Payload.Kind() != spec.Kind {
				t.Errorf("Payload.Kind() = %q, want %q", spec.Payload.Kind(), spec.Kind)
			}
			if spec.ID != tt.rec.ID || spec.Prompt != tt.rec.Question || spec.Points != tt.rec.Points {
				t.Errorf("fields not copied: %+v", spec)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{"unknown kind", record("e1", "flashcard", `{}`, "")},
		{"missing id", record("", "arrange_code", `{"lines":["a"]}`, "")},
		{"negative points", Record{ID: "e1", Type: "arrange_code", Data: json.RawMessage(`{"lines":["a"]}`), Points: -1}},
		{"empty data", record("e1", "arrange_code", ``, "")},
		{"null data", record("e1", "arrange_code", `null`, "")},
		{"wrong payload for kind", record("e1", "drag_drop", `{"options":["a"]}`, "")},
		{"empty items", record("e1", "drag_drop", `{"items":[],"targets":["A"]}`, "")},
		{"length mismatch", record("e1", "drag_drop", `{"items":["a"],"targets":["A","B"]}`, "")},
		{"duplicate targets", record("e1", "drag_drop", `{"items":["a","b"],"targets":["A","A"]}`, "")},
		{"mapping misses target", record("e1", "drag_drop", `{"items":["a","b"],"targets":["A","B"]}`, `{"A":"a"}`)},
		{"answer not an option", record("e1", "multiple_choice", `{"options":["x","y"]}`, "z")},
		{"duplicate options", record("e1", "multiple_choice", `{"options":["x","x"]}`, "x")},
		{"blank without options", record("e1", "fill_blanks", `{"blanks":[{"text":"_","options":[]}]}`, "correct")},
		{"answer list too short", record("e1", "fill_blanks", `{"blanks":[{"text":"_","options":["1"]},{"text":"_","options":["2"]}]}`, `["1"]`)},
		{"answer list wrong option", record("e1", "fill_blanks", `{"blanks":[{"text":"_","options":["1"]}]}`, `["2"]`)},
		{"empty lines", record("e1", "arrange_code", `{"lines":[]}`, "")},
		{"lines not strings", record("e1", "arrange_code", `{"lines":[1,2]}`, "")},
		{"not json", record("e1", "arrange_code", `{lines`, "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.rec)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrMalformedExerciseData) {
				t.Errorf("expected ErrMalformedExerciseData, got: %v", err)
			}
			var mErr *MalformedError
			if !errors.As(err, &mErr) {
				t.Fatalf("expected *MalformedError, got %T", err)
			}
			if mErr.ExerciseID != tt.rec.ID {
				t.Errorf("ExerciseID = %q, want %q", mErr.ExerciseID, tt.rec.ID)
			}
		})
	}
}

func TestParse_DragDropExpected(t *testing.T) {
	positional, err := Parse(record("e1", "drag_drop", `{"items":["a","b"],"targets":["A","B"]}`, ""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p := positional.Payload.(*DragDropPayload)
	if p.Expected["A"] != "a" || p.Expected["B"] != "b" {
		t.Errorf("positional Expected = %v", p.Expected)
	}

	mapped, err := Parse(record("e2", "drag_drop", `{"items":["a","b"],"targets":["A","B"]}`, `{"A":"b","B":"a"}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p = mapped.Payload.(*DragDropPayload)
	if p.Expected["A"] != "b" || p.Expected["B"] != "a" {
		t.Errorf("mapped Expected = %v", p.Expected)
	}
}

func TestParse_FillBlanksEncoding(t *testing.T) {
	legacy, err := Parse(record("e1", "fill_blanks", `{"blanks":[{"text":"_","options":["1"]}]}`, "correct"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := legacy.Payload.(*FillBlanksPayload).Expected; got != nil {
		t.Errorf("legacy Expected = %v, want nil", got)
	}

	strict, err := Parse(record("e2", "fill_blanks", `{"blanks":[{"text":"_","options":["1","2"]}]}`, ` ["2"] `))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := strict.Payload.(*FillBlanksPayload).Expected; len(got) != 1 || got[0] != "2" {
		t.Errorf("strict Expected = %v, want [2]", got)
	}
}

func TestParseAll_SortsStable(t *testing.T) {
	recs := []Record{
		record("c", "arrange_code", `{"lines":["x"]}`, ""),
		record("a", "arrange_code", `{"lines":["x"]}`, ""),
		record("b", "arrange_code", `{"lines":["x"]}`, ""),
		record("d", "arrange_code", `{"lines":["x"]}`, ""),
	}
	recs[0].OrderIndex = 2
	recs[1].OrderIndex = 0
	recs[2].OrderIndex = 1
	recs[3].OrderIndex = 1

	specs, err := ParseAll(recs)
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	want := []string{"a", "b", "d", "c"}
	for i, id := range want {
		if specs[i].ID != id {
			t.Errorf("specs[%d].ID = %q, want %q", i, specs[i].ID, id)
		}
	}
}

func TestParseAll_FailFast(t *testing.T) {
	recs := []Record{
		record("ok", "arrange_code", `{"lines":["x"]}`, ""),
		record("bad-1", "drag_drop", `{"items":["a"]}`, ""),
		record("bad-2", "nope", `{}`, ""),
	}
	_, err := ParseAll(recs)
	var mErr *MalformedError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected *MalformedError, got %v", err)
	}
	if mErr.ExerciseID != "bad-1" {
		t.Errorf("ExerciseID = %q, want bad-1", mErr.ExerciseID)
	}
}

func TestParseAll_Empty(t *testing.T) {
	specs, err := ParseAll(nil)
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	if len(specs) != 0 {
		t.Errorf("len = %d, want 0", len(specs))
	}
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(&TransportError{Op: "fetch exercises", Err: cause})
	if !errors.Is(err, ErrTransport) {
		t.Error("expected errors.Is(err, ErrTransport)")
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable")
	}
	if got := err.Error(); got != "fetch exercises: connection refused" {
		t.Errorf("Error() = %q", got)
	}
}
