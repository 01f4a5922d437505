package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Sequence is a named monotonic counter. Event tables draw their global
// sequence numbers from it so events of every type share one order.
type Sequence struct {
	ent.Schema
}

func (Sequence) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Counter name"),
		field.Int64("next_val").
			Default(1),
	}
}
