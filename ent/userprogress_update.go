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
	"github.com/devroad/devroad/ent/userprogress"
)

// UserProgressUpdate is the builder for updating UserProgress entities.
type UserProgressUpdate struct {
	config
	hooks    []Hook
	mutation *UserProgressMutation
}

// Where appends a list predicates to the UserProgressUpdate builder.
func (_u *UserProgressUpdate) Where(ps ...predicate.UserProgress) *UserProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserProgressUpdate) SetUserID(v string) *UserProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableUserID(v *string) *UserProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *UserProgressUpdate) SetLessonID(v string) *UserProgressUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableLessonID(v *string) *UserProgressUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *UserProgressUpdate) SetCompleted(v bool) *UserProgressUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableCompleted(v *bool) *UserProgressUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *UserProgressUpdate) SetScore(v int) *UserProgressUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableScore(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *UserProgressUpdate) AddScore(v int) *UserProgressUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserProgressUpdate) SetUpdatedAt(v time.Time) *UserProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserProgressMutation object of the builder.
func (_u *UserProgressUpdate) Mutation() *UserProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := userprogress.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *UserProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userprogress.Table, userprogress.Columns, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(userprogress.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(userprogress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(userprogress.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(userprogress.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserProgressUpdateOne is the builder for updating a single UserProgress entity.
type UserProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *UserProgressUpdateOne) SetUserID(v string) *UserProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableUserID(v *string) *UserProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *UserProgressUpdateOne) SetLessonID(v string) *UserProgressUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableLessonID(v *string) *UserProgressUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *UserProgressUpdateOne) SetCompleted(v bool) *UserProgressUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableCompleted(v *bool) *UserProgressUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *UserProgressUpdateOne) SetScore(v int) *UserProgressUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableScore(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *UserProgressUpdateOne) AddScore(v int) *UserProgressUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserProgressUpdateOne) SetUpdatedAt(v time.Time) *UserProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserProgressMutation object of the builder.
func (_u *UserProgressUpdateOne) Mutation() *UserProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserProgressUpdate builder.
func (_u *UserProgressUpdateOne) Where(ps ...predicate.UserProgress) *UserProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserProgressUpdateOne) Select(field string, fields ...string) *UserProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserProgress entity.
func (_u *UserProgressUpdateOne) Save(ctx context.Context) (*UserProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProgressUpdateOne) SaveX(ctx context.Context) *UserProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := userprogress.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *UserProgressUpdateOne) sqlSave(ctx context.Context) (_node *UserProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userprogress.Table, userprogress.Columns, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userprogress.FieldID)
		for _, f := range fields {
			if !userprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userprogress.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(userprogress.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(userprogress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(userprogress.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(userprogress.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
