package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one submitted exercise.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{LogMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_id").
			NotEmpty(),
		field.String("exercise_id").
			NotEmpty(),
		field.String("kind").
			NotEmpty(),
		field.Bool("correct"),
		field.Int("points").
			Default(0).
			Comment("Points awarded, zero when wrong"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "lesson_id"),
	}
}
