// Code generated by ent, DO NOT EDIT.

package flashcard

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the flashcard type in the database.
	Label = "flashcard"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCardID holds the string denoting the card_id field in the database.
	FieldCardID = "card_id"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldFrontContent holds the string denoting the front_content field in the database.
	FieldFrontContent = "front_content"
	// FieldBackContent holds the string denoting the back_content field in the database.
	FieldBackContent = "back_content"
	// FieldOrderIndex holds the string denoting the order_index field in the database.
	FieldOrderIndex = "order_index"
	// Table holds the table name of the flashcard in the database.
	Table = "flashcards"
)

// Columns holds all SQL columns for flashcard fields.
var Columns = []string{
	FieldID,
	FieldCardID,
	FieldLessonID,
	FieldFrontContent,
	FieldBackContent,
	FieldOrderIndex,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	CardIDValidator func(string) error
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// FrontContentValidator is a validator for the "front_content" field. It is called by the builders before save.
	FrontContentValidator func(string) error
	// DefaultBackContent holds the default value on creation for the "back_content" field.
	DefaultBackContent string
	// DefaultOrderIndex holds the default value on creation for the "order_index" field.
	DefaultOrderIndex int
)

// OrderOption defines the ordering options for the Flashcard queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCardID orders the results by the card_id field.
func ByCardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardID, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByFrontContent orders the results by the front_content field.
func ByFrontContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrontContent, opts...).ToFunc()
}

// ByBackContent orders the results by the back_content field.
func ByBackContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackContent, opts...).ToFunc()
}

// ByOrderIndex orders the results by the order_index field.
func ByOrderIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderIndex, opts...).ToFunc()
}
