// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devroad/devroad/ent/lesson"
	"github.com/devroad/devroad/ent/predicate"
)

// LessonUpdate is the builder for updating Lesson entities.
type LessonUpdate struct {
	config
	hooks    []Hook
	mutation *LessonMutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdate) Where(ps ...predicate.Lesson) *LessonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *LessonUpdate) SetCourseID(v string) *LessonUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableCourseID(v *string) *LessonUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdate) SetTitle(v string) *LessonUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableTitle(v *string) *LessonUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *LessonUpdate) SetOrderIndex(v int) *LessonUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableOrderIndex(v *int) *LessonUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *LessonUpdate) AddOrderIndex(v int) *LessonUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetIsPremium sets the "is_premium" field.
func (_u *LessonUpdate) SetIsPremium(v bool) *LessonUpdate {
	_u.mutation.SetIsPremium(v)
	return _u
}

// SetNillableIsPremium sets the "is_premium" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableIsPremium(v *bool) *LessonUpdate {
	if v != nil {
		_u.SetIsPremium(*v)
	}
	return _u
}

// SetRequiredScore sets the "required_score" field.
func (_u *LessonUpdate) SetRequiredScore(v int) *LessonUpdate {
	_u.mutation.ResetRequiredScore()
	_u.mutation.SetRequiredScore(v)
	return _u
}

// SetNillableRequiredScore sets the "required_score" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableRequiredScore(v *int) *LessonUpdate {
	if v != nil {
		_u.SetRequiredScore(*v)
	}
	return _u
}

// AddRequiredScore adds value to the "required_score" field.
func (_u *LessonUpdate) AddRequiredScore(v int) *LessonUpdate {
	_u.mutation.AddRequiredScore(v)
	return _u
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdate) Mutation() *LessonMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdate) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := lesson.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "Lesson.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequiredScore(); ok {
		if err := lesson.RequiredScoreValidator(v); err != nil {
			return &ValidationError{Name: "required_score", err: fmt.Errorf(`ent: validator failed for field "Lesson.required_score": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(lesson.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(lesson.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(lesson.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsPremium(); ok {
		_spec.SetField(lesson.FieldIsPremium, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequiredScore(); ok {
		_spec.SetField(lesson.FieldRequiredScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredScore(); ok {
		_spec.AddField(lesson.FieldRequiredScore, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonUpdateOne is the builder for updating a single Lesson entity.
type LessonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonMutation
}

// SetCourseID sets the "course_id" field.
func (_u *LessonUpdateOne) SetCourseID(v string) *LessonUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableCourseID(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdateOne) SetTitle(v string) *LessonUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableTitle(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *LessonUpdateOne) SetOrderIndex(v int) *LessonUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableOrderIndex(v *int) *LessonUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *LessonUpdateOne) AddOrderIndex(v int) *LessonUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetIsPremium sets the "is_premium" field.
func (_u *LessonUpdateOne) SetIsPremium(v bool) *LessonUpdateOne {
	_u.mutation.SetIsPremium(v)
	return _u
}

// SetNillableIsPremium sets the "is_premium" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableIsPremium(v *bool) *LessonUpdateOne {
	if v != nil {
		_u.SetIsPremium(*v)
	}
	return _u
}

// SetRequiredScore sets the "required_score" field.
func (_u *LessonUpdateOne) SetRequiredScore(v int) *LessonUpdateOne {
	_u.mutation.ResetRequiredScore()
	_u.mutation.SetRequiredScore(v)
	return _u
}

// SetNillableRequiredScore sets the "required_score" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableRequiredScore(v *int) *LessonUpdateOne {
	if v != nil {
		_u.SetRequiredScore(*v)
	}
	return _u
}

// AddRequiredScore adds value to the "required_score" field.
func (_u *LessonUpdateOne) AddRequiredScore(v int) *LessonUpdateOne {
	_u.mutation.AddRequiredScore(v)
	return _u
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdateOne) Mutation() *LessonMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdateOne) Where(ps ...predicate.Lesson) *LessonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonUpdateOne) Select(field string, fields ...string) *LessonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lesson entity.
func (_u *LessonUpdateOne) Save(ctx context.Context) (*Lesson, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdateOne) SaveX(ctx context.Context) *Lesson {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdateOne) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := lesson.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "Lesson.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequiredScore(); ok {
		if err := lesson.RequiredScoreValidator(v); err != nil {
			return &ValidationError{Name: "required_score", err: fmt.Errorf(`ent: validator failed for field "Lesson.required_score": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonUpdateOne) sqlSave(ctx context.Context) (_node *Lesson, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lesson.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lesson.FieldID)
		for _, f := range fields {
			if !lesson.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lesson.FieldID {
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
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(lesson.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(lesson.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(lesson.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsPremium(); ok {
		_spec.SetField(lesson.FieldIsPremium, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequiredScore(); ok {
		_spec.SetField(lesson.FieldRequiredScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredScore(); ok {
		_spec.AddField(lesson.FieldRequiredScore, field.TypeInt, value)
	}
	_node = &Lesson{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
