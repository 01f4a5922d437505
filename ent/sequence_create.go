// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devroad/devroad/ent/sequence"
)

// SequenceCreate is the builder for creating a Sequence entity.
type SequenceCreate struct {
	config
	mutation *SequenceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetNextVal sets the "next_val" field.
func (_c *SequenceCreate) SetNextVal(v int64) *SequenceCreate {
	_c.mutation.SetNextVal(v)
	return _c
}

// SetNillableNextVal sets the "next_val" field if the given value is not nil.
func (_c *SequenceCreate) SetNillableNextVal(v *int64) *SequenceCreate {
	if v != nil {
		_c.SetNextVal(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SequenceCreate) SetID(v string) *SequenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SequenceMutation object of the builder.
func (_c *SequenceCreate) Mutation() *SequenceMutation {
	return _c.mutation
}

// Save creates the Sequence in the database.
func (_c *SequenceCreate) Save(ctx context.Context) (*Sequence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SequenceCreate) SaveX(ctx context.Context) *Sequence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SequenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SequenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SequenceCreate) defaults() {
	if _, ok := _c.mutation.NextVal(); !ok {
		v := sequence.DefaultNextVal
		_c.mutation.SetNextVal(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SequenceCreate) check() error {
	if _, ok := _c.mutation.NextVal(); !ok {
		return &ValidationError{Name: "next_val", err: errors.New(`ent: missing required field "Sequence.next_val"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := sequence.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Sequence.id": %w`, err)}
		}
	}
	return nil
}

func (_c *SequenceCreate) sqlSave(ctx context.Context) (*Sequence, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Sequence.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SequenceCreate) createSpec() (*Sequence, *sqlgraph.CreateSpec) {
	var (
		_node = &Sequence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sequence.Table, sqlgraph.NewFieldSpec(sequence.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NextVal(); ok {
		_spec.SetField(sequence.FieldNextVal, field.TypeInt64, value)
		_node.NextVal = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Sequence.Create().
//		SetNextVal(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SequenceUpsert) {
//			SetNextVal(v+v).
//		}).
//		Exec(ctx)
func (_c *SequenceCreate) OnConflict(opts ...sql.ConflictOption) *SequenceUpsertOne {
	_c.conflict = opts
	return &SequenceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Sequence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SequenceCreate) OnConflictColumns(columns ...string) *SequenceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SequenceUpsertOne{
		create: _c,
	}
}

type (
	// SequenceUpsertOne is the builder for "upsert"-ing
	//  one Sequence node.
	SequenceUpsertOne struct {
		create *SequenceCreate
	}

	// SequenceUpsert is the "OnConflict" setter.
	SequenceUpsert struct {
		*sql.UpdateSet
	}
)

// SetNextVal sets the "next_val" field.
func (u *SequenceUpsert) SetNextVal(v int64) *SequenceUpsert {
	u.Set(sequence.FieldNextVal, v)
	return u
}

// UpdateNextVal sets the "next_val" field to the value that was provided on create.
func (u *SequenceUpsert) UpdateNextVal() *SequenceUpsert {
	u.SetExcluded(sequence.FieldNextVal)
	return u
}

// AddNextVal adds v to the "next_val" field.
func (u *SequenceUpsert) AddNextVal(v int64) *SequenceUpsert {
	u.Add(sequence.FieldNextVal, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Sequence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sequence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SequenceUpsertOne) UpdateNewValues() *SequenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sequence.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Sequence.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SequenceUpsertOne) Ignore() *SequenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SequenceUpsertOne) DoNothing() *SequenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SequenceCreate.OnConflict
// documentation for more info.
func (u *SequenceUpsertOne) Update(set func(*SequenceUpsert)) *SequenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SequenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetNextVal sets the "next_val" field.
func (u *SequenceUpsertOne) SetNextVal(v int64) *SequenceUpsertOne {
	return u.Update(func(s *SequenceUpsert) {
		s.SetNextVal(v)
	})
}

// AddNextVal adds v to the "next_val" field.
func (u *SequenceUpsertOne) AddNextVal(v int64) *SequenceUpsertOne {
	return u.Update(func(s *SequenceUpsert) {
		s.AddNextVal(v)
	})
}

// UpdateNextVal sets the "next_val" field to the value that was provided on create.
func (u *SequenceUpsertOne) UpdateNextVal() *SequenceUpsertOne {
	return u.Update(func(s *SequenceUpsert) {
		s.UpdateNextVal()
	})
}

// Exec executes the query.
func (u *SequenceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SequenceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SequenceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SequenceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SequenceUpsertOne.ID is not supported by MySQL driver. Use SequenceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SequenceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SequenceCreateBulk is the builder for creating many Sequence entities in bulk.
type SequenceCreateBulk struct {
	config
	err      error
	builders []*SequenceCreate
	conflict []sql.ConflictOption
}

// Save creates the Sequence entities in the database.
func (_c *SequenceCreateBulk) Save(ctx context.Context) ([]*Sequence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Sequence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SequenceMutation)
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
func (_c *SequenceCreateBulk) SaveX(ctx context.Context) []*Sequence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SequenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SequenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Sequence.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SequenceUpsert) {
//			SetNextVal(v+v).
//		}).
//		Exec(ctx)
func (_c *SequenceCreateBulk) OnConflict(opts ...sql.ConflictOption) *SequenceUpsertBulk {
	_c.conflict = opts
	return &SequenceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Sequence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SequenceCreateBulk) OnConflictColumns(columns ...string) *SequenceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SequenceUpsertBulk{
		create: _c,
	}
}

// SequenceUpsertBulk is the builder for "upsert"-ing
// a bulk of Sequence nodes.
type SequenceUpsertBulk struct {
	create *SequenceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Sequence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sequence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SequenceUpsertBulk) UpdateNewValues() *SequenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sequence.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Sequence.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SequenceUpsertBulk) Ignore() *SequenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SequenceUpsertBulk) DoNothing() *SequenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SequenceCreateBulk.OnConflict
// documentation for more info.
func (u *SequenceUpsertBulk) Update(set func(*SequenceUpsert)) *SequenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SequenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetNextVal sets the "next_val" field.
func (u *SequenceUpsertBulk) SetNextVal(v int64) *SequenceUpsertBulk {
	return u.Update(func(s *SequenceUpsert) {
		s.SetNextVal(v)
	})
}

// AddNextVal adds v to the "next_val" field.
func (u *SequenceUpsertBulk) AddNextVal(v int64) *SequenceUpsertBulk {
	return u.Update(func(s *SequenceUpsert) {
		s.AddNextVal(v)
	})
}

// UpdateNextVal sets the "next_val" field to the value that was provided on create.
func (u *SequenceUpsertBulk) UpdateNextVal() *SequenceUpsertBulk {
	return u.Update(func(s *SequenceUpsert) {
		s.UpdateNextVal()
	})
}

// Exec executes the query.
func (u *SequenceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SequenceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SequenceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SequenceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
