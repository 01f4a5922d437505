// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devroad/devroad/ent/predicate"
	"github.com/devroad/devroad/ent/userscore"
)

// UserScoreUpdate is the builder for updating UserScore entities.
type UserScoreUpdate struct {
	config
	hooks    []Hook
	mutation *UserScoreMutation
}

// Where appends a list predicates to the UserScoreUpdate builder.
func (_u *UserScoreUpdate) Where(ps ...predicate.UserScore) *UserScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScore sets the "score" field.
func (_u *UserScoreUpdate) SetScore(v int) *UserScoreUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *UserScoreUpdate) SetNillableScore(v *int) *UserScoreUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *UserScoreUpdate) AddScore(v int) *UserScoreUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserScoreUpdate) SetUpdatedAt(v time.Time) *UserScoreUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserScoreMutation object of the builder.
func (_u *UserScoreUpdate) Mutation() *UserScoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserScoreUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserScoreUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userscore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userscore.Table, userscore.Columns, sqlgraph.NewFieldSpec(userscore.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(userscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(userscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userscore.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserScoreUpdateOne is the builder for updating a single UserScore entity.
type UserScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserScoreMutation
}

// SetScore sets the "score" field.
func (_u *UserScoreUpdateOne) SetScore(v int) *UserScoreUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *UserScoreUpdateOne) SetNillableScore(v *int) *UserScoreUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *UserScoreUpdateOne) AddScore(v int) *UserScoreUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserScoreUpdateOne) SetUpdatedAt(v time.Time) *UserScoreUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserScoreMutation object of the builder.
func (_u *UserScoreUpdateOne) Mutation() *UserScoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserScoreUpdate builder.
func (_u *UserScoreUpdateOne) Where(ps ...predicate.UserScore) *UserScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserScoreUpdateOne) Select(field string, fields ...string) *UserScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserScore entity.
func (_u *UserScoreUpdateOne) Save(ctx context.Context) (*UserScore, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserScoreUpdateOne) SaveX(ctx context.Context) *UserScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserScoreUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userscore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserScoreUpdateOne) sqlSave(ctx context.Context) (_node *UserScore, err error) {
	_spec := sqlgraph.NewUpdateSpec(userscore.Table, userscore.Columns, sqlgraph.NewFieldSpec(userscore.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userscore.FieldID)
		for _, f := range fields {
			if !userscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userscore.FieldID {
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
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(userscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(userscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userscore.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
