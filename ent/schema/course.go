package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Course groups lessons. Premium courses open once the learner's score
// reaches required_score.
type Course struct {
	ent.Schema
}

func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("title").
			NotEmpty(),
		field.String("description").
			Default(""),
		field.Int("order_index").
			Default(0),
		field.Bool("is_premium").
			Default(false),
		field.Int("required_score").
			Default(0).
			NonNegative(),
	}
}

func (Course) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_index"),
	}
}
