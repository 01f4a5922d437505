// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "exercise_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "points", Type: field.TypeInt, Default: 0},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_user_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3], AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_user_id_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3], AttemptEventsColumns[5]},
			},
		},
	}
	// CoursesColumns holds the columns for the "courses" table.
	CoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "is_premium", Type: field.TypeBool, Default: false},
		{Name: "required_score", Type: field.TypeInt, Default: 0},
	}
	// CoursesTable holds the schema information for the "courses" table.
	CoursesTable = &schema.Table{
		Name:       "courses",
		Columns:    CoursesColumns,
		PrimaryKey: []*schema.Column{CoursesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "course_order_index",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[3]},
			},
		},
	}
	// ExercisesColumns holds the columns for the "exercises" table.
	ExercisesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "exercise_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "question", Type: field.TypeString, Default: ""},
		{Name: "data", Type: field.TypeString, Size: 2147483647},
		{Name: "answer", Type: field.TypeString, Default: ""},
		{Name: "points", Type: field.TypeInt, Default: 0},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
	}
	// ExercisesTable holds the schema information for the "exercises" table.
	ExercisesTable = &schema.Table{
		Name:       "exercises",
		Columns:    ExercisesColumns,
		PrimaryKey: []*schema.Column{ExercisesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exercise_lesson_id_exercise_id",
				Unique:  true,
				Columns: []*schema.Column{ExercisesColumns[2], ExercisesColumns[1]},
			},
			{
				Name:    "exercise_lesson_id_order_index",
				Unique:  false,
				Columns: []*schema.Column{ExercisesColumns[2], ExercisesColumns[8]},
			},
		},
	}
	// FlashcardsColumns holds the columns for the "flashcards" table.
	FlashcardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "card_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "front_content", Type: field.TypeString, Size: 2147483647},
		{Name: "back_content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
	}
	// FlashcardsTable holds the schema information for the "flashcards" table.
	FlashcardsTable = &schema.Table{
		Name:       "flashcards",
		Columns:    FlashcardsColumns,
		PrimaryKey: []*schema.Column{FlashcardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "flashcard_lesson_id_card_id",
				Unique:  true,
				Columns: []*schema.Column{FlashcardsColumns[2], FlashcardsColumns[1]},
			},
			{
				Name:    "flashcard_lesson_id_order_index",
				Unique:  false,
				Columns: []*schema.Column{FlashcardsColumns[2], FlashcardsColumns[5]},
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "course_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "is_premium", Type: field.TypeBool, Default: false},
		{Name: "required_score", Type: field.TypeInt, Default: 0},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_course_id_order_index",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[1], LessonsColumns[3]},
			},
		},
	}
	// SequencesColumns holds the columns for the "sequences" table.
	SequencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "next_val", Type: field.TypeInt64, Default: 1},
	}
	// SequencesTable holds the schema information for the "sequences" table.
	SequencesTable = &schema.Table{
		Name:       "sequences",
		Columns:    SequencesColumns,
		PrimaryKey: []*schema.Column{SequencesColumns[0]},
	}
	// UserProgressesColumns holds the columns for the "user_progresses" table.
	UserProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserProgressesTable holds the schema information for the "user_progresses" table.
	UserProgressesTable = &schema.Table{
		Name:       "user_progresses",
		Columns:    UserProgressesColumns,
		PrimaryKey: []*schema.Column{UserProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userprogress_user_id_lesson_id",
				Unique:  true,
				Columns: []*schema.Column{UserProgressesColumns[1], UserProgressesColumns[2]},
			},
		},
	}
	// UserScoresColumns holds the columns for the "user_scores" table.
	UserScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserScoresTable holds the schema information for the "user_scores" table.
	UserScoresTable = &schema.Table{
		Name:       "user_scores",
		Columns:    UserScoresColumns,
		PrimaryKey: []*schema.Column{UserScoresColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		CoursesTable,
		ExercisesTable,
		FlashcardsTable,
		LessonsTable,
		SequencesTable,
		UserProgressesTable,
		UserScoresTable,
	}
)

func init() {
}
