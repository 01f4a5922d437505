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
	"github.com/devroad/devroad/ent/userprogress"
)

// UserProgressCreate is the builder for creating a UserProgress entity.
type UserProgressCreate struct {
	config
	mutation *UserProgressMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *UserProgressCreate) SetUserID(v string) *UserProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *UserProgressCreate) SetLessonID(v string) *UserProgressCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *UserProgressCreate) SetCompleted(v bool) *UserProgressCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableCompleted(v *bool) *UserProgressCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *UserProgressCreate) SetScore(v int) *UserProgressCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableScore(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserProgressCreate) SetUpdatedAt(v time.Time) *UserProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableUpdatedAt(v *time.Time) *UserProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the UserProgressMutation object of the builder.
func (_c *UserProgressCreate) Mutation() *UserProgressMutation {
	return _c.mutation
}

// Save creates the UserProgress in the database.
func (_c *UserProgressCreate) Save(ctx context.Context) (*UserProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserProgressCreate) SaveX(ctx context.Context) *UserProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserProgressCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := userprogress.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := userprogress.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := userprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "UserProgress.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := userprogress.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "UserProgress.completed"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "UserProgress.score"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserProgress.updated_at"`)}
	}
	return nil
}

func (_c *UserProgressCreate) sqlSave(ctx context.Context) (*UserProgress, error) {
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

func (_c *UserProgressCreate) createSpec() (*UserProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &UserProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userprogress.Table, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(userprogress.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(userprogress.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(userprogress.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(userprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserProgress.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserProgressCreate) OnConflict(opts ...sql.ConflictOption) *UserProgressUpsertOne {
	_c.conflict = opts
	return &UserProgressUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserProgressCreate) OnConflictColumns(columns ...string) *UserProgressUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserProgressUpsertOne{
		create: _c,
	}
}

type (
	// UserProgressUpsertOne is the builder for "upsert"-ing
	//  one UserProgress node.
	UserProgressUpsertOne struct {
		create *UserProgressCreate
	}

	// UserProgressUpsert is the "OnConflict" setter.
	UserProgressUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *UserProgressUpsert) SetUserID(v string) *UserProgressUpsert {
	u.Set(userprogress.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserProgressUpsert) UpdateUserID() *UserProgressUpsert {
	u.SetExcluded(userprogress.FieldUserID)
	return u
}

// SetLessonID sets the "lesson_id" field.
func (u *UserProgressUpsert) SetLessonID(v string) *UserProgressUpsert {
	u.Set(userprogress.FieldLessonID, v)
	return u
}

// UpdateLessonID sets the "lesson_id" field to the value that was provided on create.
func (u *UserProgressUpsert) UpdateLessonID() *UserProgressUpsert {
	u.SetExcluded(userprogress.FieldLessonID)
	return u
}

// SetCompleted sets the "completed" field.
func (u *UserProgressUpsert) SetCompleted(v bool) *UserProgressUpsert {
	u.Set(userprogress.FieldCompleted, v)
	return u
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *UserProgressUpsert) UpdateCompleted() *UserProgressUpsert {
	u.SetExcluded(userprogress.FieldCompleted)
	return u
}

// SetScore sets the "score" field.
func (u *UserProgressUpsert) SetScore(v int) *UserProgressUpsert {
	u.Set(userprogress.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *UserProgressUpsert) UpdateScore() *UserProgressUpsert {
	u.SetExcluded(userprogress.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *UserProgressUpsert) AddScore(v int) *UserProgressUpsert {
	u.Add(userprogress.FieldScore, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserProgressUpsert) SetUpdatedAt(v time.Time) *UserProgressUpsert {
	u.Set(userprogress.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserProgressUpsert) UpdateUpdatedAt() *UserProgressUpsert {
	u.SetExcluded(userprogress.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.UserProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserProgressUpsertOne) UpdateNewValues() *UserProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserProgress.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserProgressUpsertOne) Ignore() *UserProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserProgressUpsertOne) DoNothing() *UserProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserProgressCreate.OnConflict
// documentation for more info.
func (u *UserProgressUpsertOne) Update(set func(*UserProgressUpsert)) *UserProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserProgressUpsertOne) SetUserID(v string) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserProgressUpsertOne) UpdateUserID() *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateUserID()
	})
}

// SetLessonID sets the "lesson_id" field.
func (u *UserProgressUpsertOne) SetLessonID(v string) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetLessonID(v)
	})
}

// UpdateLessonID sets the "lesson_id" field to the value that was provided on create.
func (u *UserProgressUpsertOne) UpdateLessonID() *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateLessonID()
	})
}

// SetCompleted sets the "completed" field.
func (u *UserProgressUpsertOne) SetCompleted(v bool) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetCompleted(v)
	})
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *UserProgressUpsertOne) UpdateCompleted() *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateCompleted()
	})
}

// SetScore sets the "score" field.
func (u *UserProgressUpsertOne) SetScore(v int) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *UserProgressUpsertOne) AddScore(v int) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *UserProgressUpsertOne) UpdateScore() *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateScore()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserProgressUpsertOne) SetUpdatedAt(v time.Time) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserProgressUpsertOne) UpdateUpdatedAt() *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UserProgressUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserProgressCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserProgressUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserProgressUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserProgressUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserProgressCreateBulk is the builder for creating many UserProgress entities in bulk.
type UserProgressCreateBulk struct {
	config
	err      error
	builders []*UserProgressCreate
	conflict []sql.ConflictOption
}

// Save creates the UserProgress entities in the database.
func (_c *UserProgressCreateBulk) Save(ctx context.Context) ([]*UserProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserProgressMutation)
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
func (_c *UserProgressCreateBulk) SaveX(ctx context.Context) []*UserProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserProgress.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserProgressCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserProgressUpsertBulk {
	_c.conflict = opts
	return &UserProgressUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserProgressCreateBulk) OnConflictColumns(columns ...string) *UserProgressUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserProgressUpsertBulk{
		create: _c,
	}
}

// UserProgressUpsertBulk is the builder for "upsert"-ing
// a bulk of UserProgress nodes.
type UserProgressUpsertBulk struct {
	create *UserProgressCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserProgressUpsertBulk) UpdateNewValues() *UserProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserProgress.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserProgressUpsertBulk) Ignore() *UserProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserProgressUpsertBulk) DoNothing() *UserProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserProgressCreateBulk.OnConflict
// documentation for more info.
func (u *UserProgressUpsertBulk) Update(set func(*UserProgressUpsert)) *UserProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserProgressUpsertBulk) SetUserID(v string) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserProgressUpsertBulk) UpdateUserID() *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateUserID()
	})
}

// SetLessonID sets the "lesson_id" field.
func (u *UserProgressUpsertBulk) SetLessonID(v string) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetLessonID(v)
	})
}

// UpdateLessonID sets the "lesson_id" field to the value that was provided on create.
func (u *UserProgressUpsertBulk) UpdateLessonID() *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateLessonID()
	})
}

// SetCompleted sets the "completed" field.
func (u *UserProgressUpsertBulk) SetCompleted(v bool) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetCompleted(v)
	})
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *UserProgressUpsertBulk) UpdateCompleted() *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateCompleted()
	})
}

// SetScore sets the "score" field.
func (u *UserProgressUpsertBulk) SetScore(v int) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *UserProgressUpsertBulk) AddScore(v int) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *UserProgressUpsertBulk) UpdateScore() *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateScore()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserProgressUpsertBulk) SetUpdatedAt(v time.Time) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserProgressUpsertBulk) UpdateUpdatedAt() *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UserProgressUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserProgressCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserProgressCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserProgressUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
