// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/devroad/devroad/ent/flashcard"
)

// Flashcard is the model entity for the Flashcard schema.
type Flashcard struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Catalog id, unique per lesson
	CardID string `json:"card_id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// FrontContent holds the value of the "front_content" field.
	FrontContent string `json:"front_content,omitempty"`
	// BackContent holds the value of the "back_content" field.
	BackContent string `json:"back_content,omitempty"`
	// OrderIndex holds the value of the "order_index" field.
	OrderIndex   int `json:"order_index,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Flashcard) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case flashcard.FieldID, flashcard.FieldOrderIndex:
			values[i] = new(sql.NullInt64)
		case flashcard.FieldCardID, flashcard.FieldLessonID, flashcard.FieldFrontContent, flashcard.FieldBackContent:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Flashcard fields.
func (_m *Flashcard) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case flashcard.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case flashcard.FieldCardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_id", values[i])
			} else if value.Valid {
				_m.CardID = value.String
			}
		case flashcard.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case flashcard.FieldFrontContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field front_content", values[i])
			} else if value.Valid {
				_m.FrontContent = value.String
			}
		case flashcard.FieldBackContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field back_content", values[i])
			} else if value.Valid {
				_m.BackContent = value.String
			}
		case flashcard.FieldOrderIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order_index", values[i])
			} else if value.Valid {
				_m.OrderIndex = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Flashcard.
// This includes values selected through modifiers, order, etc.
func (_m *Flashcard) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Flashcard.
// Note that you need to call Flashcard.Unwrap() before calling this method if this Flashcard
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Flashcard) Update() *FlashcardUpdateOne {
	return NewFlashcardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Flashcard entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Flashcard) Unwrap() *Flashcard {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Flashcard is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Flashcard) String() string {
	var builder strings.Builder
	builder.WriteString("Flashcard(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("card_id=")
	builder.WriteString(_m.CardID)
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("front_content=")
	builder.WriteString(_m.FrontContent)
	builder.WriteString(", ")
	builder.WriteString("back_content=")
	builder.WriteString(_m.BackContent)
	builder.WriteString(", ")
	builder.WriteString("order_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderIndex))
	builder.WriteByte(')')
	return builder.String()
}

// Flashcards is a parsable slice of Flashcard.
type Flashcards []*Flashcard
