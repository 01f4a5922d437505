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
	"github.com/devroad/devroad/ent/userscore"
)

// UserScoreCreate is the builder for creating a UserScore entity.
type UserScoreCreate struct {
	config
	mutation *UserScoreMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *UserScoreCreate) SetUserID(v string) *UserScoreCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *UserScoreCreate) SetScore(v int) *UserScoreCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *UserScoreCreate) SetNillableScore(v *int) *UserScoreCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserScoreCreate) SetUpdatedAt(v time.Time) *UserScoreCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserScoreCreate) SetNillableUpdatedAt(v *time.Time) *UserScoreCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the UserScoreMutation object of the builder.
func (_c *UserScoreCreate) Mutation() *UserScoreMutation {
	return _c.mutation
}

// Save creates the UserScore in the database.
func (_c *UserScoreCreate) Save(ctx context.Context) (*UserScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserScoreCreate) SaveX(ctx context.Context) *UserScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserScoreCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := userscore.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := userscore.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserScoreCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserScore.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userscore.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserScore.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "UserScore.score"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserScore.updated_at"`)}
	}
	return nil
}

func (_c *UserScoreCreate) sqlSave(ctx context.Context) (*UserScore, error) {
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

func (_c *UserScoreCreate) createSpec() (*UserScore, *sqlgraph.CreateSpec) {
	var (
		_node = &UserScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userscore.Table, sqlgraph.NewFieldSpec(userscore.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userscore.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(userscore.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(userscore.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserScore.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserScoreUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserScoreCreate) OnConflict(opts ...sql.ConflictOption) *UserScoreUpsertOne {
	_c.conflict = opts
	return &UserScoreUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserScore.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserScoreCreate) OnConflictColumns(columns ...string) *UserScoreUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserScoreUpsertOne{
		create: _c,
	}
}

type (
	// UserScoreUpsertOne is the builder for "upsert"-ing
	//  one UserScore node.
	UserScoreUpsertOne struct {
		create *UserScoreCreate
	}

	// UserScoreUpsert is the "OnConflict" setter.
	UserScoreUpsert struct {
		*sql.UpdateSet
	}
)

// SetScore sets the "score" field.
func (u *UserScoreUpsert) SetScore(v int) *UserScoreUpsert {
	u.Set(userscore.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *UserScoreUpsert) UpdateScore() *UserScoreUpsert {
	u.SetExcluded(userscore.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *UserScoreUpsert) AddScore(v int) *UserScoreUpsert {
	u.Add(userscore.FieldScore, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserScoreUpsert) SetUpdatedAt(v time.Time) *UserScoreUpsert {
	u.Set(userscore.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserScoreUpsert) UpdateUpdatedAt() *UserScoreUpsert {
	u.SetExcluded(userscore.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.UserScore.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserScoreUpsertOne) UpdateNewValues() *UserScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(userscore.FieldUserID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserScore.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserScoreUpsertOne) Ignore() *UserScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserScoreUpsertOne) DoNothing() *UserScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserScoreCreate.OnConflict
// documentation for more info.
func (u *UserScoreUpsertOne) Update(set func(*UserScoreUpsert)) *UserScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserScoreUpsert{UpdateSet: update})
	}))
	return u
}

// SetScore sets the "score" field.
func (u *UserScoreUpsertOne) SetScore(v int) *UserScoreUpsertOne {
	return u.Update(func(s *UserScoreUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *UserScoreUpsertOne) AddScore(v int) *UserScoreUpsertOne {
	return u.Update(func(s *UserScoreUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *UserScoreUpsertOne) UpdateScore() *UserScoreUpsertOne {
	return u.Update(func(s *UserScoreUpsert) {
		s.UpdateScore()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserScoreUpsertOne) SetUpdatedAt(v time.Time) *UserScoreUpsertOne {
	return u.Update(func(s *UserScoreUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserScoreUpsertOne) UpdateUpdatedAt() *UserScoreUpsertOne {
	return u.Update(func(s *UserScoreUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UserScoreUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserScoreCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserScoreUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserScoreUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserScoreUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserScoreCreateBulk is the builder for creating many UserScore entities in bulk.
type UserScoreCreateBulk struct {
	config
	err      error
	builders []*UserScoreCreate
	conflict []sql.ConflictOption
}

// Save creates the UserScore entities in the database.
func (_c *UserScoreCreateBulk) Save(ctx context.Context) ([]*UserScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserScoreMutation)
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
func (_c *UserScoreCreateBulk) SaveX(ctx context.Context) []*UserScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserScore.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserScoreUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserScoreCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserScoreUpsertBulk {
	_c.conflict = opts
	return &UserScoreUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserScore.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserScoreCreateBulk) OnConflictColumns(columns ...string) *UserScoreUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserScoreUpsertBulk{
		create: _c,
	}
}

// UserScoreUpsertBulk is the builder for "upsert"-ing
// a bulk of UserScore nodes.
type UserScoreUpsertBulk struct {
	create *UserScoreCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserScore.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserScoreUpsertBulk) UpdateNewValues() *UserScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(userscore.FieldUserID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserScore.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserScoreUpsertBulk) Ignore() *UserScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserScoreUpsertBulk) DoNothing() *UserScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserScoreCreateBulk.OnConflict
// documentation for more info.
func (u *UserScoreUpsertBulk) Update(set func(*UserScoreUpsert)) *UserScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserScoreUpsert{UpdateSet: update})
	}))
	return u
}

// SetScore sets the "score" field.
func (u *UserScoreUpsertBulk) SetScore(v int) *UserScoreUpsertBulk {
	return u.Update(func(s *UserScoreUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *UserScoreUpsertBulk) AddScore(v int) *UserScoreUpsertBulk {
	return u.Update(func(s *UserScoreUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *UserScoreUpsertBulk) UpdateScore() *UserScoreUpsertBulk {
	return u.Update(func(s *UserScoreUpsert) {
		s.UpdateScore()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserScoreUpsertBulk) SetUpdatedAt(v time.Time) *UserScoreUpsertBulk {
	return u.Update(func(s *UserScoreUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserScoreUpsertBulk) UpdateUpdatedAt() *UserScoreUpsertBulk {
	return u.Update(func(s *UserScoreUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UserScoreUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserScoreCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserScoreCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserScoreUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
