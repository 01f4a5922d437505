// Code generated by ent, DO NOT EDIT.

package sequence

import (
	"entgo.io/ent/dialect/sql"
	"github.com/devroad/devroad/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Sequence {
	return predicate.Sequence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Sequence {
	return predicate.Sequence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Sequence {
	return predicate.Sequence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Sequence {
	return predicate.Sequence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Sequence {
	return predicate.Sequence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Sequence {
	return predicate.Sequence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Sequence {
	return predicate.Sequence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Sequence {
	return predicate.Sequence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Sequence {
	return predicate.Sequence(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Sequence {
	return predicate.Sequence(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Sequence {
	return predicate.Sequence(sql.FieldContainsFold(FieldID, id))
}

// NextVal applies equality check predicate on the "next_val" field. It's identical to NextValEQ.
func NextVal(v int64) predicate.Sequence {
	return predicate.Sequence(sql.FieldEQ(FieldNextVal, v))
}

// NextValEQ applies the EQ predicate on the "next_val" field.
func NextValEQ(v int64) predicate.Sequence {
	return predicate.Sequence(sql.FieldEQ(FieldNextVal, v))
}

// NextValNEQ applies the NEQ predicate on the "next_val" field.
func NextValNEQ(v int64) predicate.Sequence {
	return predicate.Sequence(sql.FieldNEQ(FieldNextVal, v))
}

// NextValIn applies the In predicate on the "next_val" field.
func NextValIn(vs ...int64) predicate.Sequence {
	return predicate.Sequence(sql.FieldIn(FieldNextVal, vs...))
}

// NextValNotIn applies the NotIn predicate on the "next_val" field.
func NextValNotIn(vs ...int64) predicate.Sequence {
	return predicate.Sequence(sql.FieldNotIn(FieldNextVal, vs...))
}

// NextValGT applies the GT predicate on the "next_val" field.
func NextValGT(v int64) predicate.Sequence {
	return predicate.Sequence(sql.FieldGT(FieldNextVal, v))
}

// NextValGTE applies the GTE predicate on the "next_val" field.
func NextValGTE(v int64) predicate.Sequence {
	return predicate.Sequence(sql.FieldGTE(FieldNextVal, v))
}

// NextValLT applies the LT predicate on the "next_val" field.
func NextValLT(v int64) predicate.Sequence {
	return predicate.Sequence(sql.FieldLT(FieldNextVal, v))
}

// NextValLTE applies the LTE predicate on the "next_val" field.
func NextValLTE(v int64) predicate.Sequence {
	return predicate.Sequence(sql.FieldLTE(FieldNextVal, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Sequence) predicate.Sequence {
	return predicate.Sequence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Sequence) predicate.Sequence {
	return predicate.Sequence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Sequence) predicate.Sequence {
	return predicate.Sequence(sql.NotPredicates(p))
}
