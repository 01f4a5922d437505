// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devroad/devroad/ent/flashcard"
	"github.com/devroad/devroad/ent/predicate"
)

// FlashcardUpdate is the builder for updating Flashcard entities.
type FlashcardUpdate struct {
	config
	hooks    []Hook
	mutation *FlashcardMutation
}

// Where appends a list predicates to the FlashcardUpdate builder.
func (_u *FlashcardUpdate) Where(ps ...predicate.Flashcard) *FlashcardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFrontContent sets the "front_content" field.
func (_u *FlashcardUpdate) SetFrontContent(v string) *FlashcardUpdate {
	_u.mutation.SetFrontContent(v)
	return _u
}

// SetNillableFrontContent sets the "front_content" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableFrontContent(v *string) *FlashcardUpdate {
	if v != nil {
		_u.SetFrontContent(*v)
	}
	return _u
}

// SetBackContent sets the "back_content" field.
func (_u *FlashcardUpdate) SetBackContent(v string) *FlashcardUpdate {
	_u.mutation.SetBackContent(v)
	return _u
}

// SetNillableBackContent sets the "back_content" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableBackContent(v *string) *FlashcardUpdate {
	if v != nil {
		_u.SetBackContent(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *FlashcardUpdate) SetOrderIndex(v int) *FlashcardUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableOrderIndex(v *int) *FlashcardUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *FlashcardUpdate) AddOrderIndex(v int) *FlashcardUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// Mutation returns the FlashcardMutation object of the builder.
func (_u *FlashcardUpdate) Mutation() *FlashcardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FlashcardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlashcardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FlashcardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlashcardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlashcardUpdate) check() error {
	if v, ok := _u.mutation.FrontContent(); ok {
		if err := flashcard.FrontContentValidator(v); err != nil {
			return &ValidationError{Name: "front_content", err: fmt.Errorf(`ent: validator failed for field "Flashcard.front_content": %w`, err)}
		}
	}
	return nil
}

func (_u *FlashcardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flashcard.Table, flashcard.Columns, sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FrontContent(); ok {
		_spec.SetField(flashcard.FieldFrontContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.BackContent(); ok {
		_spec.SetField(flashcard.FieldBackContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(flashcard.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(flashcard.FieldOrderIndex, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flashcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FlashcardUpdateOne is the builder for updating a single Flashcard entity.
type FlashcardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlashcardMutation
}

// SetFrontContent sets the "front_content" field.
func (_u *FlashcardUpdateOne) SetFrontContent(v string) *FlashcardUpdateOne {
	_u.mutation.SetFrontContent(v)
	return _u
}

// SetNillableFrontContent sets the "front_content" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableFrontContent(v *string) *FlashcardUpdateOne {
	if v != nil {
		_u.SetFrontContent(*v)
	}
	return _u
}

// SetBackContent sets the "back_content" field.
func (_u *FlashcardUpdateOne) SetBackContent(v string) *FlashcardUpdateOne {
	_u.mutation.SetBackContent(v)
	return _u
}

// SetNillableBackContent sets the "back_content" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableBackContent(v *string) *FlashcardUpdateOne {
	if v != nil {
		_u.SetBackContent(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *FlashcardUpdateOne) SetOrderIndex(v int) *FlashcardUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableOrderIndex(v *int) *FlashcardUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *FlashcardUpdateOne) AddOrderIndex(v int) *FlashcardUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// Mutation returns the FlashcardMutation object of the builder.
func (_u *FlashcardUpdateOne) Mutation() *FlashcardMutation {
	return _u.mutation
}

// Where appends a list predicates to the FlashcardUpdate builder.
func (_u *FlashcardUpdateOne) Where(ps ...predicate.Flashcard) *FlashcardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FlashcardUpdateOne) Select(field string, fields ...string) *FlashcardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Flashcard entity.
func (_u *FlashcardUpdateOne) Save(ctx context.Context) (*Flashcard, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlashcardUpdateOne) SaveX(ctx context.Context) *Flashcard {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FlashcardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlashcardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlashcardUpdateOne) check() error {
	if v, ok := _u.mutation.FrontContent(); ok {
		if err := flashcard.FrontContentValidator(v); err != nil {
			return &ValidationError{Name: "front_content", err: fmt.Errorf(`ent: validator failed for field "Flashcard.front_content": %w`, err)}
		}
	}
	return nil
}

func (_u *FlashcardUpdateOne) sqlSave(ctx context.Context) (_node *Flashcard, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flashcard.Table, flashcard.Columns, sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Flashcard.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flashcard.FieldID)
		for _, f := range fields {
			if !flashcard.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != flashcard.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FrontContent(); ok {
		_spec.SetField(flashcard.FieldFrontContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.BackContent(); ok {
		_spec.SetField(flashcard.FieldBackContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(flashcard.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(flashcard.FieldOrderIndex, field.TypeInt, value)
	}
	_node = &Flashcard{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flashcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
