// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devroad/devroad/ent/flashcard"
)

// FlashcardCreate is the builder for creating a Flashcard entity.
type FlashcardCreate struct {
	config
	mutation *FlashcardMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCardID sets the "card_id" field.
func (_c *FlashcardCreate) SetCardID(v string) *FlashcardCreate {
	_c.mutation.SetCardID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *FlashcardCreate) SetLessonID(v string) *FlashcardCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetFrontContent sets the "front_content" field.
func (_c *FlashcardCreate) SetFrontContent(v string) *FlashcardCreate {
	_c.mutation.SetFrontContent(v)
	return _c
}

// SetBackContent sets the "back_content" field.
func (_c *FlashcardCreate) SetBackContent(v string) *FlashcardCreate {
	_c.mutation.SetBackContent(v)
	return _c
}

// SetNillableBackContent sets the "back_content" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableBackContent(v *string) *FlashcardCreate {
	if v != nil {
		_c.SetBackContent(*v)
	}
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *FlashcardCreate) SetOrderIndex(v int) *FlashcardCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableOrderIndex(v *int) *FlashcardCreate {
	if v != nil {
		_c.SetOrderIndex(*v)
	}
	return _c
}

// Mutation returns the FlashcardMutation object of the builder.
func (_c *FlashcardCreate) Mutation() *FlashcardMutation {
	return _c.mutation
}

// Save creates the Flashcard in the database.
func (_c *FlashcardCreate) Save(ctx context.Context) (*Flashcard, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlashcardCreate) SaveX(ctx context.Context) *Flashcard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlashcardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlashcardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FlashcardCreate) defaults() {
	if _, ok := _c.mutation.BackContent(); !ok {
		v := flashcard.DefaultBackContent
		_c.mutation.SetBackContent(v)
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		v := flashcard.DefaultOrderIndex
		_c.mutation.SetOrderIndex(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlashcardCreate) check() error {
	if _, ok := _c.mutation.CardID(); !ok {
		return &ValidationError{Name: "card_id", err: errors.New(`ent: missing required field "Flashcard.card_id"`)}
	}
	if v, ok := _c.mutation.CardID(); ok {
		if err := flashcard.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "Flashcard.card_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "Flashcard.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := flashcard.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "Flashcard.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FrontContent(); !ok {
		return &ValidationError{Name: "front_content", err: errors.New(`ent: missing required field "Flashcard.front_content"`)}
	}
	if v, ok := _c.mutation.FrontContent(); ok {
		if err := flashcard.FrontContentValidator(v); err != nil {
			return &ValidationError{Name: "front_content", err: fmt.Errorf(`ent: validator failed for field "Flashcard.front_content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BackContent(); !ok {
		return &ValidationError{Name: "back_content", err: errors.New(`ent: missing required field "Flashcard.back_content"`)}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "Flashcard.order_index"`)}
	}
	return nil
}

func (_c *FlashcardCreate) sqlSave(ctx context.Context) (*Flashcard, error) {
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

func (_c *FlashcardCreate) createSpec() (*Flashcard, *sqlgraph.CreateSpec) {
	var (
		_node = &Flashcard{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flashcard.Table, sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CardID(); ok {
		_spec.SetField(flashcard.FieldCardID, field.TypeString, value)
		_node.CardID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(flashcard.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.FrontContent(); ok {
		_spec.SetField(flashcard.FieldFrontContent, field.TypeString, value)
		_node.FrontContent = value
	}
	if value, ok := _c.mutation.BackContent(); ok {
		_spec.SetField(flashcard.FieldBackContent, field.TypeString, value)
		_node.BackContent = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(flashcard.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Flashcard.Create().
//		SetCardID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FlashcardUpsert) {
//			SetCardID(v+v).
//		}).
//		Exec(ctx)
func (_c *FlashcardCreate) OnConflict(opts ...sql.ConflictOption) *FlashcardUpsertOne {
	_c.conflict = opts
	return &FlashcardUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Flashcard.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FlashcardCreate) OnConflictColumns(columns ...string) *FlashcardUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FlashcardUpsertOne{
		create: _c,
	}
}

type (
	// FlashcardUpsertOne is the builder for "upsert"-ing
	//  one Flashcard node.
	FlashcardUpsertOne struct {
		create *FlashcardCreate
	}

	// FlashcardUpsert is the "OnConflict" setter.
	FlashcardUpsert struct {
		*sql.UpdateSet
	}
)

// SetFrontContent sets the "front_content" field.
func (u *FlashcardUpsert) SetFrontContent(v string) *FlashcardUpsert {
	u.Set(flashcard.FieldFrontContent, v)
	return u
}

// UpdateFrontContent sets the "front_content" field to the value that was provided on create.
func (u *FlashcardUpsert) UpdateFrontContent() *FlashcardUpsert {
	u.SetExcluded(flashcard.FieldFrontContent)
	return u
}

// SetBackContent sets the "back_content" field.
func (u *FlashcardUpsert) SetBackContent(v string) *FlashcardUpsert {
	u.Set(flashcard.FieldBackContent, v)
	return u
}

// UpdateBackContent sets the "back_content" field to the value that was provided on create.
func (u *FlashcardUpsert) UpdateBackContent() *FlashcardUpsert {
	u.SetExcluded(flashcard.FieldBackContent)
	return u
}

// SetOrderIndex sets the "order_index" field.
func (u *FlashcardUpsert) SetOrderIndex(v int) *FlashcardUpsert {
	u.Set(flashcard.FieldOrderIndex, v)
	return u
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *FlashcardUpsert) UpdateOrderIndex() *FlashcardUpsert {
	u.SetExcluded(flashcard.FieldOrderIndex)
	return u
}

// AddOrderIndex adds v to the "order_index" field.
func (u *FlashcardUpsert) AddOrderIndex(v int) *FlashcardUpsert {
	u.Add(flashcard.FieldOrderIndex, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Flashcard.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FlashcardUpsertOne) UpdateNewValues() *FlashcardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CardID(); exists {
			s.SetIgnore(flashcard.FieldCardID)
		}
		if _, exists := u.create.mutation.LessonID(); exists {
			s.SetIgnore(flashcard.FieldLessonID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Flashcard.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FlashcardUpsertOne) Ignore() *FlashcardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FlashcardUpsertOne) DoNothing() *FlashcardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FlashcardCreate.OnConflict
// documentation for more info.
func (u *FlashcardUpsertOne) Update(set func(*FlashcardUpsert)) *FlashcardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FlashcardUpsert{UpdateSet: update})
	}))
	return u
}

// SetFrontContent sets the "front_content" field.
func (u *FlashcardUpsertOne) SetFrontContent(v string) *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetFrontContent(v)
	})
}

// UpdateFrontContent sets the "front_content" field to the value that was provided on create.
func (u *FlashcardUpsertOne) UpdateFrontContent() *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateFrontContent()
	})
}

// SetBackContent sets the "back_content" field.
func (u *FlashcardUpsertOne) SetBackContent(v string) *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetBackContent(v)
	})
}

// UpdateBackContent sets the "back_content" field to the value that was provided on create.
func (u *FlashcardUpsertOne) UpdateBackContent() *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateBackContent()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *FlashcardUpsertOne) SetOrderIndex(v int) *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *FlashcardUpsertOne) AddOrderIndex(v int) *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *FlashcardUpsertOne) UpdateOrderIndex() *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateOrderIndex()
	})
}

// Exec executes the query.
func (u *FlashcardUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FlashcardCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FlashcardUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FlashcardUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FlashcardUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FlashcardCreateBulk is the builder for creating many Flashcard entities in bulk.
type FlashcardCreateBulk struct {
	config
	err      error
	builders []*FlashcardCreate
	conflict []sql.ConflictOption
}

// Save creates the Flashcard entities in the database.
func (_c *FlashcardCreateBulk) Save(ctx context.Context) ([]*Flashcard, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Flashcard, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlashcardMutation)
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
func (_c *FlashcardCreateBulk) SaveX(ctx context.Context) []*Flashcard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlashcardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlashcardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Flashcard.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FlashcardUpsert) {
//			SetCardID(v+v).
//		}).
//		Exec(ctx)
func (_c *FlashcardCreateBulk) OnConflict(opts ...sql.ConflictOption) *FlashcardUpsertBulk {
	_c.conflict = opts
	return &FlashcardUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Flashcard.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FlashcardCreateBulk) OnConflictColumns(columns ...string) *FlashcardUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FlashcardUpsertBulk{
		create: _c,
	}
}

// FlashcardUpsertBulk is the builder for "upsert"-ing
// a bulk of Flashcard nodes.
type FlashcardUpsertBulk struct {
	create *FlashcardCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Flashcard.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FlashcardUpsertBulk) UpdateNewValues() *FlashcardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CardID(); exists {
				s.SetIgnore(flashcard.FieldCardID)
			}
			if _, exists := b.mutation.LessonID(); exists {
				s.SetIgnore(flashcard.FieldLessonID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Flashcard.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FlashcardUpsertBulk) Ignore() *FlashcardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FlashcardUpsertBulk) DoNothing() *FlashcardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FlashcardCreateBulk.OnConflict
// documentation for more info.
func (u *FlashcardUpsertBulk) Update(set func(*FlashcardUpsert)) *FlashcardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FlashcardUpsert{UpdateSet: update})
	}))
	return u
}

// SetFrontContent sets the "front_content" field.
func (u *FlashcardUpsertBulk) SetFrontContent(v string) *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetFrontContent(v)
	})
}

// UpdateFrontContent sets the "front_content" field to the value that was provided on create.
func (u *FlashcardUpsertBulk) UpdateFrontContent() *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateFrontContent()
	})
}

// SetBackContent sets the "back_content" field.
func (u *FlashcardUpsertBulk) SetBackContent(v string) *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetBackContent(v)
	})
}

// UpdateBackContent sets the "back_content" field to the value that was provided on create.
func (u *FlashcardUpsertBulk) UpdateBackContent() *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateBackContent()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *FlashcardUpsertBulk) SetOrderIndex(v int) *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *FlashcardUpsertBulk) AddOrderIndex(v int) *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *FlashcardUpsertBulk) UpdateOrderIndex() *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateOrderIndex()
	})
}

// Exec executes the query.
func (u *FlashcardUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FlashcardCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FlashcardCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FlashcardUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
