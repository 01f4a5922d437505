package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Flashcard is a study card shown before a lesson's exercises.
type Flashcard struct {
	ent.Schema
}

func (Flashcard) Fields() []ent.Field {
	return []ent.Field{
		field.String("card_id").
			NotEmpty().
			Immutable().
			Comment("Catalog id, unique per lesson"),
		field.String("lesson_id").
			NotEmpty().
			Immutable(),
		field.Text("front_content").
			NotEmpty(),
		field.Text("back_content").
			Default(""),
		field.Int("order_index").
			Default(0),
	}
}

func (Flashcard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id", "card_id").
			Unique(),
		index.Fields("lesson_id", "order_index"),
	}
}
