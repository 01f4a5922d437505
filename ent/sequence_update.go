// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devroad/devroad/ent/predicate"
	"github.com/devroad/devroad/ent/sequence"
)

// SequenceUpdate is the builder for updating Sequence entities.
type SequenceUpdate struct {
	config
	hooks    []Hook
	mutation *SequenceMutation
}

// Where appends a list predicates to the SequenceUpdate builder.
func (_u *SequenceUpdate) Where(ps ...predicate.Sequence) *SequenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNextVal sets the "next_val" field.
func (_u *SequenceUpdate) SetNextVal(v int64) *SequenceUpdate {
	_u.mutation.ResetNextVal()
	_u.mutation.SetNextVal(v)
	return _u
}

// SetNillableNextVal sets the "next_val" field if the given value is not nil.
func (_u *SequenceUpdate) SetNillableNextVal(v *int64) *SequenceUpdate {
	if v != nil {
		_u.SetNextVal(*v)
	}
	return _u
}

// AddNextVal adds value to the "next_val" field.
func (_u *SequenceUpdate) AddNextVal(v int64) *SequenceUpdate {
	_u.mutation.AddNextVal(v)
	return _u
}

// Mutation returns the SequenceMutation object of the builder.
func (_u *SequenceUpdate) Mutation() *SequenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SequenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SequenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SequenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SequenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SequenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sequence.Table, sequence.Columns, sqlgraph.NewFieldSpec(sequence.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NextVal(); ok {
		_spec.SetField(sequence.FieldNextVal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNextVal(); ok {
		_spec.AddField(sequence.FieldNextVal, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sequence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SequenceUpdateOne is the builder for updating a single Sequence entity.
type SequenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SequenceMutation
}

// SetNextVal sets the "next_val" field.
func (_u *SequenceUpdateOne) SetNextVal(v int64) *SequenceUpdateOne {
	_u.mutation.ResetNextVal()
	_u.mutation.SetNextVal(v)
	return _u
}

// SetNillableNextVal sets the "next_val" field if the given value is not nil.
func (_u *SequenceUpdateOne) SetNillableNextVal(v *int64) *SequenceUpdateOne {
	if v != nil {
		_u.SetNextVal(*v)
	}
	return _u
}

// AddNextVal adds value to the "next_val" field.
func (_u *SequenceUpdateOne) AddNextVal(v int64) *SequenceUpdateOne {
	_u.mutation.AddNextVal(v)
	return _u
}

// Mutation returns the SequenceMutation object of the builder.
func (_u *SequenceUpdateOne) Mutation() *SequenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the SequenceUpdate builder.
func (_u *SequenceUpdateOne) Where(ps ...predicate.Sequence) *SequenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SequenceUpdateOne) Select(field string, fields ...string) *SequenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Sequence entity.
func (_u *SequenceUpdateOne) Save(ctx context.Context) (*Sequence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SequenceUpdateOne) SaveX(ctx context.Context) *Sequence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SequenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SequenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SequenceUpdateOne) sqlSave(ctx context.Context) (_node *Sequence, err error) {
	_spec := sqlgraph.NewUpdateSpec(sequence.Table, sequence.Columns, sqlgraph.NewFieldSpec(sequence.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Sequence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sequence.FieldID)
		for _, f := range fields {
			if !sequence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sequence.FieldID {
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
	if value, ok := _u.mutation.NextVal(); ok {
		_spec.SetField(sequence.FieldNextVal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNextVal(); ok {
		_spec.AddField(sequence.FieldNextVal, field.TypeInt64, value)
	}
	_node = &Sequence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sequence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
