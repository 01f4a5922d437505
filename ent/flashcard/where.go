// Code generated by ent, DO NOT EDIT.

package flashcard

import (
	"entgo.io/ent/dialect/sql"
	"github.com/devroad/devroad/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldID, id))
}

// CardID applies equality check predicate on the "card_id" field. It's identical to CardIDEQ.
func CardID(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldCardID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldLessonID, v))
}

// FrontContent applies equality check predicate on the "front_content" field. It's identical to FrontContentEQ.
func FrontContent(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldFrontContent, v))
}

// BackContent applies equality check predicate on the "back_content" field. It's identical to BackContentEQ.
func BackContent(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldBackContent, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldOrderIndex, v))
}

// CardIDEQ applies the EQ predicate on the "card_id" field.
func CardIDEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldCardID, v))
}

// CardIDNEQ applies the NEQ predicate on the "card_id" field.
func CardIDNEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldCardID, v))
}

// CardIDIn applies the In predicate on the "card_id" field.
func CardIDIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldCardID, vs...))
}

// CardIDNotIn applies the NotIn predicate on the "card_id" field.
func CardIDNotIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldCardID, vs...))
}

// CardIDGT applies the GT predicate on the "card_id" field.
func CardIDGT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldCardID, v))
}

// CardIDGTE applies the GTE predicate on the "card_id" field.
func CardIDGTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldCardID, v))
}

// CardIDLT applies the LT predicate on the "card_id" field.
func CardIDLT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldCardID, v))
}

// CardIDLTE applies the LTE predicate on the "card_id" field.
func CardIDLTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldCardID, v))
}

// CardIDContains applies the Contains predicate on the "card_id" field.
func CardIDContains(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContains(FieldCardID, v))
}

// CardIDHasPrefix applies the HasPrefix predicate on the "card_id" field.
func CardIDHasPrefix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasPrefix(FieldCardID, v))
}

// CardIDHasSuffix applies the HasSuffix predicate on the "card_id" field.
func CardIDHasSuffix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasSuffix(FieldCardID, v))
}

// CardIDEqualFold applies the EqualFold predicate on the "card_id" field.
func CardIDEqualFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEqualFold(FieldCardID, v))
}

// CardIDContainsFold applies the ContainsFold predicate on the "card_id" field.
func CardIDContainsFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContainsFold(FieldCardID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContainsFold(FieldLessonID, v))
}

// FrontContentEQ applies the EQ predicate on the "front_content" field.
func FrontContentEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldFrontContent, v))
}

// FrontContentNEQ applies the NEQ predicate on the "front_content" field.
func FrontContentNEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldFrontContent, v))
}

// FrontContentIn applies the In predicate on the "front_content" field.
func FrontContentIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldFrontContent, vs...))
}

// FrontContentNotIn applies the NotIn predicate on the "front_content" field.
func FrontContentNotIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldFrontContent, vs...))
}

// FrontContentGT applies the GT predicate on the "front_content" field.
func FrontContentGT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldFrontContent, v))
}

// FrontContentGTE applies the GTE predicate on the "front_content" field.
func FrontContentGTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldFrontContent, v))
}

// FrontContentLT applies the LT predicate on the "front_content" field.
func FrontContentLT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldFrontContent, v))
}

// FrontContentLTE applies the LTE predicate on the "front_content" field.
func FrontContentLTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldFrontContent, v))
}

// FrontContentContains applies the Contains predicate on the "front_content" field.
func FrontContentContains(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContains(FieldFrontContent, v))
}

// FrontContentHasPrefix applies the HasPrefix predicate on the "front_content" field.
func FrontContentHasPrefix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasPrefix(FieldFrontContent, v))
}

// FrontContentHasSuffix applies the HasSuffix predicate on the "front_content" field.
func FrontContentHasSuffix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasSuffix(FieldFrontContent, v))
}

// FrontContentEqualFold applies the EqualFold predicate on the "front_content" field.
func FrontContentEqualFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEqualFold(FieldFrontContent, v))
}

// FrontContentContainsFold applies the ContainsFold predicate on the "front_content" field.
func FrontContentContainsFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContainsFold(FieldFrontContent, v))
}

// BackContentEQ applies the EQ predicate on the "back_content" field.
func BackContentEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldBackContent, v))
}

// BackContentNEQ applies the NEQ predicate on the "back_content" field.
func BackContentNEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldBackContent, v))
}

// BackContentIn applies the In predicate on the "back_content" field.
func BackContentIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldBackContent, vs...))
}

// BackContentNotIn applies the NotIn predicate on the "back_content" field.
func BackContentNotIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldBackContent, vs...))
}

// BackContentGT applies the GT predicate on the "back_content" field.
func BackContentGT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldBackContent, v))
}

// BackContentGTE applies the GTE predicate on the "back_content" field.
func BackContentGTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldBackContent, v))
}

// BackContentLT applies the LT predicate on the "back_content" field.
func BackContentLT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldBackContent, v))
}

// BackContentLTE applies the LTE predicate on the "back_content" field.
func BackContentLTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldBackContent, v))
}

// BackContentContains applies the Contains predicate on the "back_content" field.
func BackContentContains(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContains(FieldBackContent, v))
}

// BackContentHasPrefix applies the HasPrefix predicate on the "back_content" field.
func BackContentHasPrefix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasPrefix(FieldBackContent, v))
}

// BackContentHasSuffix applies the HasSuffix predicate on the "back_content" field.
func BackContentHasSuffix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasSuffix(FieldBackContent, v))
}

// BackContentEqualFold applies the EqualFold predicate on the "back_content" field.
func BackContentEqualFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEqualFold(FieldBackContent, v))
}

// BackContentContainsFold applies the ContainsFold predicate on the "back_content" field.
func BackContentContainsFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContainsFold(FieldBackContent, v))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldOrderIndex, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Flashcard) predicate.Flashcard {
	return predicate.Flashcard(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Flashcard) predicate.Flashcard {
	return predicate.Flashcard(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Flashcard) predicate.Flashcard {
	return predicate.Flashcard(sql.NotPredicates(p))
}
