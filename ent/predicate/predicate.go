// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// Course is the predicate function for course builders.
type Course func(*sql.Selector)

// Exercise is the predicate function for exercise builders.
type Exercise func(*sql.Selector)

// Flashcard is the predicate function for flashcard builders.
type Flashcard func(*sql.Selector)

// Lesson is the predicate function for lesson builders.
type Lesson func(*sql.Selector)

// Sequence is the predicate function for sequence builders.
type Sequence func(*sql.Selector)

// UserProgress is the predicate function for userprogress builders.
type UserProgress func(*sql.Selector)

// UserScore is the predicate function for userscore builders.
type UserScore func(*sql.Selector)
