// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devroad/devroad/ent/exercise"
	"github.com/devroad/devroad/ent/predicate"
)

// ExerciseUpdate is the builder for updating Exercise entities.
type ExerciseUpdate struct {
	config
	hooks    []Hook
	mutation *ExerciseMutation
}

// Where appends a list predicates to the ExerciseUpdate builder.
func (_u *ExerciseUpdate) Where(ps ...predicate.Exercise) *ExerciseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ExerciseUpdate) SetKind(v string) *ExerciseUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ExerciseUpdate) SetNillableKind(v *string) *ExerciseUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *ExerciseUpdate) SetQuestion(v string) *ExerciseUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *ExerciseUpdate) SetNillableQuestion(v *string) *ExerciseUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ExerciseUpdate) SetData(v string) *ExerciseUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetNillableData sets the "data" field if the given value is not nil.
func (_u *ExerciseUpdate) SetNillableData(v *string) *ExerciseUpdate {
	if v != nil {
		_u.SetData(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ExerciseUpdate) SetAnswer(v string) *ExerciseUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ExerciseUpdate) SetNillableAnswer(v *string) *ExerciseUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *ExerciseUpdate) SetPoints(v int) *ExerciseUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *ExerciseUpdate) SetNillablePoints(v *int) *ExerciseUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *ExerciseUpdate) AddPoints(v int) *ExerciseUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *ExerciseUpdate) SetOrderIndex(v int) *ExerciseUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *ExerciseUpdate) SetNillableOrderIndex(v *int) *ExerciseUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *ExerciseUpdate) AddOrderIndex(v int) *ExerciseUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// Mutation returns the ExerciseMutation object of the builder.
func (_u *ExerciseUpdate) Mutation() *ExerciseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExerciseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExerciseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExerciseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExerciseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExerciseUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := exercise.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Exercise.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Data(); ok {
		if err := exercise.DataValidator(v); err != nil {
			return &ValidationError{Name: "data", err: fmt.Errorf(`ent: validator failed for field "Exercise.data": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := exercise.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "Exercise.points": %w`, err)}
		}
	}
	return nil
}

func (_u *ExerciseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exercise.Table, exercise.Columns, sqlgraph.NewFieldSpec(exercise.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(exercise.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(exercise.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(exercise.FieldData, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(exercise.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(exercise.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(exercise.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(exercise.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(exercise.FieldOrderIndex, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exercise.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExerciseUpdateOne is the builder for updating a single Exercise entity.
type ExerciseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExerciseMutation
}

// SetKind sets the "kind" field.
func (_u *ExerciseUpdateOne) SetKind(v string) *ExerciseUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ExerciseUpdateOne) SetNillableKind(v *string) *ExerciseUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *ExerciseUpdateOne) SetQuestion(v string) *ExerciseUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *ExerciseUpdateOne) SetNillableQuestion(v *string) *ExerciseUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ExerciseUpdateOne) SetData(v string) *ExerciseUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetNillableData sets the "data" field if the given value is not nil.
func (_u *ExerciseUpdateOne) SetNillableData(v *string) *ExerciseUpdateOne {
	if v != nil {
		_u.SetData(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ExerciseUpdateOne) SetAnswer(v string) *ExerciseUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ExerciseUpdateOne) SetNillableAnswer(v *string) *ExerciseUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *ExerciseUpdateOne) SetPoints(v int) *ExerciseUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *ExerciseUpdateOne) SetNillablePoints(v *int) *ExerciseUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *ExerciseUpdateOne) AddPoints(v int) *ExerciseUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *ExerciseUpdateOne) SetOrderIndex(v int) *ExerciseUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *ExerciseUpdateOne) SetNillableOrderIndex(v *int) *ExerciseUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *ExerciseUpdateOne) AddOrderIndex(v int) *ExerciseUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// Mutation returns the ExerciseMutation object of the builder.
func (_u *ExerciseUpdateOne) Mutation() *ExerciseMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExerciseUpdate builder.
func (_u *ExerciseUpdateOne) Where(ps ...predicate.Exercise) *ExerciseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExerciseUpdateOne) Select(field string, fields ...string) *ExerciseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Exercise entity.
func (_u *ExerciseUpdateOne) Save(ctx context.Context) (*Exercise, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExerciseUpdateOne) SaveX(ctx context.Context) *Exercise {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExerciseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExerciseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExerciseUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := exercise.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Exercise.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Data(); ok {
		if err := exercise.DataValidator(v); err != nil {
			return &ValidationError{Name: "data", err: fmt.Errorf(`ent: validator failed for field "Exercise.data": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := exercise.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "Exercise.points": %w`, err)}
		}
	}
	return nil
}

func (_u *ExerciseUpdateOne) sqlSave(ctx context.Context) (_node *Exercise, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exercise.Table, exercise.Columns, sqlgraph.NewFieldSpec(exercise.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Exercise.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exercise.FieldID)
		for _, f := range fields {
			if !exercise.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exercise.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(exercise.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(exercise.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(exercise.FieldData, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(exercise.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(exercise.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(exercise.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(exercise.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(exercise.FieldOrderIndex, field.TypeInt, value)
	}
	_node = &Exercise{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exercise.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
