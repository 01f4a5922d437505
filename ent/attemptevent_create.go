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
	"github.com/devroad/devroad/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AttemptEventCreate) SetUserID(v string) *AttemptEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AttemptEventCreate) SetSessionID(v string) *AttemptEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *AttemptEventCreate) SetLessonID(v string) *AttemptEventCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetExerciseID sets the "exercise_id" field.
func (_c *AttemptEventCreate) SetExerciseID(v string) *AttemptEventCreate {
	_c.mutation.SetExerciseID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *AttemptEventCreate) SetKind(v string) *AttemptEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AttemptEventCreate) SetCorrect(v bool) *AttemptEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetPoints sets the "points" field.
func (_c *AttemptEventCreate) SetPoints(v int) *AttemptEventCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillablePoints(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetPoints(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Points(); !ok {
		v := attemptevent.DefaultPoints
		_c.mutation.SetPoints(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AttemptEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := attemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AttemptEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "AttemptEvent.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := attemptevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExerciseID(); !ok {
		return &ValidationError{Name: "exercise_id", err: errors.New(`ent: missing required field "AttemptEvent.exercise_id"`)}
	}
	if v, ok := _c.mutation.ExerciseID(); ok {
		if err := attemptevent.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.exercise_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "AttemptEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := attemptevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AttemptEvent.correct"`)}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "AttemptEvent.points"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(attemptevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(attemptevent.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.ExerciseID(); ok {
		_spec.SetField(attemptevent.FieldExerciseID, field.TypeString, value)
		_node.ExerciseID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(attemptevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(attemptevent.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AttemptEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttemptEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AttemptEventCreate) OnConflict(opts ...sql.ConflictOption) *AttemptEventUpsertOne {
	_c.conflict = opts
	return &AttemptEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttemptEventCreate) OnConflictColumns(columns ...string) *AttemptEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttemptEventUpsertOne{
		create: _c,
	}
}

type (
	// AttemptEventUpsertOne is the builder for "upsert"-ing
	//  one AttemptEvent node.
	AttemptEventUpsertOne struct {
		create *AttemptEventCreate
	}

	// AttemptEventUpsert is the "OnConflict" setter.
	AttemptEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *AttemptEventUpsert) SetUserID(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateUserID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldUserID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *AttemptEventUpsert) SetSessionID(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateSessionID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldSessionID)
	return u
}

// SetLessonID sets the "lesson_id" field.
func (u *AttemptEventUpsert) SetLessonID(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldLessonID, v)
	return u
}

// UpdateLessonID sets the "lesson_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateLessonID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldLessonID)
	return u
}

// SetExerciseID sets the "exercise_id" field.
func (u *AttemptEventUpsert) SetExerciseID(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldExerciseID, v)
	return u
}

// UpdateExerciseID sets the "exercise_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateExerciseID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldExerciseID)
	return u
}

// SetKind sets the "kind" field.
func (u *AttemptEventUpsert) SetKind(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateKind() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldKind)
	return u
}

// SetCorrect sets the "correct" field.
func (u *AttemptEventUpsert) SetCorrect(v bool) *AttemptEventUpsert {
	u.Set(attemptevent.FieldCorrect, v)
	return u
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateCorrect() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldCorrect)
	return u
}

// SetPoints sets the "points" field.
func (u *AttemptEventUpsert) SetPoints(v int) *AttemptEventUpsert {
	u.Set(attemptevent.FieldPoints, v)
	return u
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdatePoints() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldPoints)
	return u
}

// AddPoints adds v to the "points" field.
func (u *AttemptEventUpsert) AddPoints(v int) *AttemptEventUpsert {
	u.Add(attemptevent.FieldPoints, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttemptEventUpsertOne) UpdateNewValues() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(attemptevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(attemptevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AttemptEventUpsertOne) Ignore() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttemptEventUpsertOne) DoNothing() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttemptEventCreate.OnConflict
// documentation for more info.
func (u *AttemptEventUpsertOne) Update(set func(*AttemptEventUpsert)) *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttemptEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AttemptEventUpsertOne) SetUserID(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateUserID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateUserID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *AttemptEventUpsertOne) SetSessionID(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateSessionID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetLessonID sets the "lesson_id" field.
func (u *AttemptEventUpsertOne) SetLessonID(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetLessonID(v)
	})
}

// UpdateLessonID sets the "lesson_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateLessonID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateLessonID()
	})
}

// SetExerciseID sets the "exercise_id" field.
func (u *AttemptEventUpsertOne) SetExerciseID(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetExerciseID(v)
	})
}

// UpdateExerciseID sets the "exercise_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateExerciseID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateExerciseID()
	})
}

// SetKind sets the "kind" field.
func (u *AttemptEventUpsertOne) SetKind(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateKind() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateKind()
	})
}

// SetCorrect sets the "correct" field.
func (u *AttemptEventUpsertOne) SetCorrect(v bool) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateCorrect() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetPoints sets the "points" field.
func (u *AttemptEventUpsertOne) SetPoints(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetPoints(v)
	})
}

// AddPoints adds v to the "points" field.
func (u *AttemptEventUpsertOne) AddPoints(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddPoints(v)
	})
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdatePoints() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdatePoints()
	})
}

// Exec executes the query.
func (u *AttemptEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttemptEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttemptEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AttemptEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AttemptEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
	conflict []sql.ConflictOption
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AttemptEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttemptEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AttemptEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *AttemptEventUpsertBulk {
	_c.conflict = opts
	return &AttemptEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttemptEventCreateBulk) OnConflictColumns(columns ...string) *AttemptEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttemptEventUpsertBulk{
		create: _c,
	}
}

// AttemptEventUpsertBulk is the builder for "upsert"-ing
// a bulk of AttemptEvent nodes.
type AttemptEventUpsertBulk struct {
	create *AttemptEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttemptEventUpsertBulk) UpdateNewValues() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(attemptevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(attemptevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AttemptEventUpsertBulk) Ignore() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttemptEventUpsertBulk) DoNothing() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttemptEventCreateBulk.OnConflict
// documentation for more info.
func (u *AttemptEventUpsertBulk) Update(set func(*AttemptEventUpsert)) *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttemptEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AttemptEventUpsertBulk) SetUserID(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateUserID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateUserID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *AttemptEventUpsertBulk) SetSessionID(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateSessionID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetLessonID sets the "lesson_id" field.
func (u *AttemptEventUpsertBulk) SetLessonID(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetLessonID(v)
	})
}

// UpdateLessonID sets the "lesson_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateLessonID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateLessonID()
	})
}

// SetExerciseID sets the "exercise_id" field.
func (u *AttemptEventUpsertBulk) SetExerciseID(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetExerciseID(v)
	})
}

// UpdateExerciseID sets the "exercise_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateExerciseID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateExerciseID()
	})
}

// SetKind sets the "kind" field.
func (u *AttemptEventUpsertBulk) SetKind(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateKind() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateKind()
	})
}

// SetCorrect sets the "correct" field.
func (u *AttemptEventUpsertBulk) SetCorrect(v bool) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateCorrect() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetPoints sets the "points" field.
func (u *AttemptEventUpsertBulk) SetPoints(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetPoints(v)
	})
}

// AddPoints adds v to the "points" field.
func (u *AttemptEventUpsertBulk) AddPoints(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddPoints(v)
	})
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdatePoints() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdatePoints()
	})
}

// Exec executes the query.
func (u *AttemptEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AttemptEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttemptEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttemptEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
