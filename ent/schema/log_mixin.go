package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// LogMixin gives an append-only learner log its ordering and ownership
// columns.
type LogMixin struct {
	mixin.Schema
}

func (LogMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Position in the log, shared across restarts"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the lesson visit"),
	}
}

func (LogMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "sequence"),
		index.Fields("session_id"),
	}
}
