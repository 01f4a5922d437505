package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserProgress records the best completed score of a learner per lesson.
type UserProgress struct {
	ent.Schema
}

func (UserProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("lesson_id").
			NotEmpty(),
		field.Bool("completed").
			Default(false),
		field.Int("score").
			Default(0).
			Comment("Best session score for the lesson"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (UserProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "lesson_id").
			Unique(),
	}
}
