package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lesson is an ordered sequence of exercises inside a course.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("course_id").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.Int("order_index").
			Default(0),
		field.Bool("is_premium").
			Default(false),
		field.Int("required_score").
			Default(0).
			NonNegative(),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "order_index"),
	}
}
