// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devroad/devroad/ent/course"
	"github.com/devroad/devroad/ent/predicate"
)

// CourseUpdate is the builder for updating Course entities.
type CourseUpdate struct {
	config
	hooks    []Hook
	mutation *CourseMutation
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdate) Where(ps ...predicate.Course) *CourseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseUpdate) SetTitle(v string) *CourseUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableTitle(v *string) *CourseUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CourseUpdate) SetDescription(v string) *CourseUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableDescription(v *string) *CourseUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *CourseUpdate) SetOrderIndex(v int) *CourseUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableOrderIndex(v *int) *CourseUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *CourseUpdate) AddOrderIndex(v int) *CourseUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetIsPremium sets the "is_premium" field.
func (_u *CourseUpdate) SetIsPremium(v bool) *CourseUpdate {
	_u.mutation.SetIsPremium(v)
	return _u
}

// SetNillableIsPremium sets the "is_premium" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableIsPremium(v *bool) *CourseUpdate {
	if v != nil {
		_u.SetIsPremium(*v)
	}
	return _u
}

// SetRequiredScore sets the "required_score" field.
func (_u *CourseUpdate) SetRequiredScore(v int) *CourseUpdate {
	_u.mutation.ResetRequiredScore()
	_u.mutation.SetRequiredScore(v)
	return _u
}

// SetNillableRequiredScore sets the "required_score" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableRequiredScore(v *int) *CourseUpdate {
	if v != nil {
		_u.SetRequiredScore(*v)
	}
	return _u
}

// AddRequiredScore adds value to the "required_score" field.
func (_u *CourseUpdate) AddRequiredScore(v int) *CourseUpdate {
	_u.mutation.AddRequiredScore(v)
	return _u
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdate) Mutation() *CourseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := course.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Course.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequiredScore(); ok {
		if err := course.RequiredScoreValidator(v); err != nil {
			return &ValidationError{Name: "required_score", err: fmt.Errorf(`ent: validator failed for field "Course.required_score": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(course.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(course.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsPremium(); ok {
		_spec.SetField(course.FieldIsPremium, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequiredScore(); ok {
		_spec.SetField(course.FieldRequiredScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredScore(); ok {
		_spec.AddField(course.FieldRequiredScore, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseUpdateOne is the builder for updating a single Course entity.
type CourseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseMutation
}

// SetTitle sets the "title" field.
func (_u *CourseUpdateOne) SetTitle(v string) *CourseUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableTitle(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CourseUpdateOne) SetDescription(v string) *CourseUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableDescription(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *CourseUpdateOne) SetOrderIndex(v int) *CourseUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableOrderIndex(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *CourseUpdateOne) AddOrderIndex(v int) *CourseUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetIsPremium sets the "is_premium" field.
func (_u *CourseUpdateOne) SetIsPremium(v bool) *CourseUpdateOne {
	_u.mutation.SetIsPremium(v)
	return _u
}

// SetNillableIsPremium sets the "is_premium" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableIsPremium(v *bool) *CourseUpdateOne {
	if v != nil {
		_u.SetIsPremium(*v)
	}
	return _u
}

// SetRequiredScore sets the "required_score" field.
func (_u *CourseUpdateOne) SetRequiredScore(v int) *CourseUpdateOne {
	_u.mutation.ResetRequiredScore()
	_u.mutation.SetRequiredScore(v)
	return _u
}

// SetNillableRequiredScore sets the "required_score" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableRequiredScore(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetRequiredScore(*v)
	}
	return _u
}

// AddRequiredScore adds value to the "required_score" field.
func (_u *CourseUpdateOne) AddRequiredScore(v int) *CourseUpdateOne {
	_u.mutation.AddRequiredScore(v)
	return _u
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdateOne) Mutation() *CourseMutation {
	return _u.mutation
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdateOne) Where(ps ...predicate.Course) *CourseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseUpdateOne) Select(field string, fields ...string) *CourseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Course entity.
func (_u *CourseUpdateOne) Save(ctx context.Context) (*Course, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdateOne) SaveX(ctx context.Context) *Course {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := course.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Course.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequiredScore(); ok {
		if err := course.RequiredScoreValidator(v); err != nil {
			return &ValidationError{Name: "required_score", err: fmt.Errorf(`ent: validator failed for field "Course.required_score": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseUpdateOne) sqlSave(ctx context.Context) (_node *Course, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Course.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, course.FieldID)
		for _, f := range fields {
			if !course.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != course.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(course.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(course.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsPremium(); ok {
		_spec.SetField(course.FieldIsPremium, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequiredScore(); ok {
		_spec.SetField(course.FieldRequiredScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredScore(); ok {
		_spec.AddField(course.FieldRequiredScore, field.TypeInt, value)
	}
	_node = &Course{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
