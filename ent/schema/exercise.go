package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Exercise stores one exercise row in its wire shape. The data column keeps
// the kind-specific payload as JSON text; it is decoded and checked on load.
// Exercise ids are only unique within their lesson.
type Exercise struct {
	ent.Schema
}

func (Exercise) Fields() []ent.Field {
	return []ent.Field{
		field.String("exercise_id").
			NotEmpty().
			Immutable().
			Comment("Catalog id, unique per lesson"),
		field.String("lesson_id").
			NotEmpty().
			Immutable(),
		field.String("kind").
			NotEmpty().
			Comment("drag_drop, multiple_choice, fill_blanks or arrange_code"),
		field.String("question").
			Default(""),
		field.Text("data").
			NotEmpty().
			Comment("Kind-specific payload JSON"),
		field.String("answer").
			Default(""),
		field.Int("points").
			Default(0).
			NonNegative(),
		field.Int("order_index").
			Default(0),
	}
}

func (Exercise) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id", "exercise_id").
			Unique(),
		index.Fields("lesson_id", "order_index"),
	}
}
