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
	"github.com/devroad/devroad/ent/course"
)

// CourseCreate is the builder for creating a Course entity.
type CourseCreate struct {
	config
	mutation *CourseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *CourseCreate) SetTitle(v string) *CourseCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CourseCreate) SetDescription(v string) *CourseCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CourseCreate) SetNillableDescription(v *string) *CourseCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *CourseCreate) SetOrderIndex(v int) *CourseCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_c *CourseCreate) SetNillableOrderIndex(v *int) *CourseCreate {
	if v != nil {
		_c.SetOrderIndex(*v)
	}
	return _c
}

// SetIsPremium sets the "is_premium" field.
func (_c *CourseCreate) SetIsPremium(v bool) *CourseCreate {
	_c.mutation.SetIsPremium(v)
	return _c
}

// SetNillableIsPremium sets the "is_premium" field if the given value is not nil.
func (_c *CourseCreate) SetNillableIsPremium(v *bool) *CourseCreate {
	if v != nil {
		_c.SetIsPremium(*v)
	}
	return _c
}

// SetRequiredScore sets the "required_score" field.
func (_c *CourseCreate) SetRequiredScore(v int) *CourseCreate {
	_c.mutation.SetRequiredScore(v)
	return _c
}

// SetNillableRequiredScore sets the "required_score" field if the given value is not nil.
func (_c *CourseCreate) SetNillableRequiredScore(v *int) *CourseCreate {
	if v != nil {
		_c.SetRequiredScore(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CourseCreate) SetID(v string) *CourseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CourseMutation object of the builder.
func (_c *CourseCreate) Mutation() *CourseMutation {
	return _c.mutation
}

// Save creates the Course in the database.
func (_c *CourseCreate) Save(ctx context.Context) (*Course, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseCreate) SaveX(ctx context.Context) *Course {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := course.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		v := course.DefaultOrderIndex
		_c.mutation.SetOrderIndex(v)
	}
	if _, ok := _c.mutation.IsPremium(); !ok {
		v := course.DefaultIsPremium
		_c.mutation.SetIsPremium(v)
	}
	if _, ok := _c.mutation.RequiredScore(); !ok {
		v := course.DefaultRequiredScore
		_c.mutation.SetRequiredScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Course.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := course.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Course.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Course.description"`)}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "Course.order_index"`)}
	}
	if _, ok := _c.mutation.IsPremium(); !ok {
		return &ValidationError{Name: "is_premium", err: errors.New(`ent: missing required field "Course.is_premium"`)}
	}
	if _, ok := _c.mutation.RequiredScore(); !ok {
		return &ValidationError{Name: "required_score", err: errors.New(`ent: missing required field "Course.required_score"`)}
	}
	if v, ok := _c.mutation.RequiredScore(); ok {
		if err := course.RequiredScoreValidator(v); err != nil {
			return &ValidationError{Name: "required_score", err: fmt.Errorf(`ent: validator failed for field "Course.required_score": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := course.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Course.id": %w`, err)}
		}
	}
	return nil
}

func (_c *CourseCreate) sqlSave(ctx context.Context) (*Course, error) {
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
			return nil, fmt.Errorf("unexpected Course.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CourseCreate) createSpec() (*Course, *sqlgraph.CreateSpec) {
	var (
		_node = &Course{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(course.Table, sqlgraph.NewFieldSpec(course.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(course.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.IsPremium(); ok {
		_spec.SetField(course.FieldIsPremium, field.TypeBool, value)
		_node.IsPremium = value
	}
	if value, ok := _c.mutation.RequiredScore(); ok {
		_spec.SetField(course.FieldRequiredScore, field.TypeInt, value)
		_node.RequiredScore = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Course.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CourseUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *CourseCreate) OnConflict(opts ...sql.ConflictOption) *CourseUpsertOne {
	_c.conflict = opts
	return &CourseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Course.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CourseCreate) OnConflictColumns(columns ...string) *CourseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CourseUpsertOne{
		create: _c,
	}
}

type (
	// CourseUpsertOne is the builder for "upsert"-ing
	//  one Course node.
	CourseUpsertOne struct {
		create *CourseCreate
	}

	// CourseUpsert is the "OnConflict" setter.
	CourseUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *CourseUpsert) SetTitle(v string) *CourseUpsert {
	u.Set(course.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CourseUpsert) UpdateTitle() *CourseUpsert {
	u.SetExcluded(course.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *CourseUpsert) SetDescription(v string) *CourseUpsert {
	u.Set(course.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CourseUpsert) UpdateDescription() *CourseUpsert {
	u.SetExcluded(course.FieldDescription)
	return u
}

// SetOrderIndex sets the "order_index" field.
func (u *CourseUpsert) SetOrderIndex(v int) *CourseUpsert {
	u.Set(course.FieldOrderIndex, v)
	return u
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *CourseUpsert) UpdateOrderIndex() *CourseUpsert {
	u.SetExcluded(course.FieldOrderIndex)
	return u
}

// AddOrderIndex adds v to the "order_index" field.
func (u *CourseUpsert) AddOrderIndex(v int) *CourseUpsert {
	u.Add(course.FieldOrderIndex, v)
	return u
}

// SetIsPremium sets the "is_premium" field.
func (u *CourseUpsert) SetIsPremium(v bool) *CourseUpsert {
	u.Set(course.FieldIsPremium, v)
	return u
}

// UpdateIsPremium sets the "is_premium" field to the value that was provided on create.
func (u *CourseUpsert) UpdateIsPremium() *CourseUpsert {
	u.SetExcluded(course.FieldIsPremium)
	return u
}

// SetRequiredScore sets the "required_score" field.
func (u *CourseUpsert) SetRequiredScore(v int) *CourseUpsert {
	u.Set(course.FieldRequiredScore, v)
	return u
}

// UpdateRequiredScore sets the "required_score" field to the value that was provided on create.
func (u *CourseUpsert) UpdateRequiredScore() *CourseUpsert {
	u.SetExcluded(course.FieldRequiredScore)
	return u
}

// AddRequiredScore adds v to the "required_score" field.
func (u *CourseUpsert) AddRequiredScore(v int) *CourseUpsert {
	u.Add(course.FieldRequiredScore, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Course.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(course.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CourseUpsertOne) UpdateNewValues() *CourseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(course.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Course.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CourseUpsertOne) Ignore() *CourseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CourseUpsertOne) DoNothing() *CourseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CourseCreate.OnConflict
// documentation for more info.
func (u *CourseUpsertOne) Update(set func(*CourseUpsert)) *CourseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CourseUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *CourseUpsertOne) SetTitle(v string) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateTitle() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *CourseUpsertOne) SetDescription(v string) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateDescription() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateDescription()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *CourseUpsertOne) SetOrderIndex(v int) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *CourseUpsertOne) AddOrderIndex(v int) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateOrderIndex() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateOrderIndex()
	})
}

// SetIsPremium sets the "is_premium" field.
func (u *CourseUpsertOne) SetIsPremium(v bool) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetIsPremium(v)
	})
}

// UpdateIsPremium sets the "is_premium" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateIsPremium() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateIsPremium()
	})
}

// SetRequiredScore sets the "required_score" field.
func (u *CourseUpsertOne) SetRequiredScore(v int) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetRequiredScore(v)
	})
}

// AddRequiredScore adds v to the "required_score" field.
func (u *CourseUpsertOne) AddRequiredScore(v int) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.AddRequiredScore(v)
	})
}

// UpdateRequiredScore sets the "required_score" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateRequiredScore() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateRequiredScore()
	})
}

// Exec executes the query.
func (u *CourseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CourseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CourseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CourseUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CourseUpsertOne.ID is not supported by MySQL driver. Use CourseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CourseUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CourseCreateBulk is the builder for creating many Course entities in bulk.
type CourseCreateBulk struct {
	config
	err      error
	builders []*CourseCreate
	conflict []sql.ConflictOption
}

// Save creates the Course entities in the database.
func (_c *CourseCreateBulk) Save(ctx context.Context) ([]*Course, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Course, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseMutation)
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
func (_c *CourseCreateBulk) SaveX(ctx context.Context) []*Course {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Course.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CourseUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *CourseCreateBulk) OnConflict(opts ...sql.ConflictOption) *CourseUpsertBulk {
	_c.conflict = opts
	return &CourseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Course.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CourseCreateBulk) OnConflictColumns(columns ...string) *CourseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CourseUpsertBulk{
		create: _c,
	}
}

// CourseUpsertBulk is the builder for "upsert"-ing
// a bulk of Course nodes.
type CourseUpsertBulk struct {
	create *CourseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Course.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(course.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CourseUpsertBulk) UpdateNewValues() *CourseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(course.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Course.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CourseUpsertBulk) Ignore() *CourseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CourseUpsertBulk) DoNothing() *CourseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CourseCreateBulk.OnConflict
// documentation for more info.
func (u *CourseUpsertBulk) Update(set func(*CourseUpsert)) *CourseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CourseUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *CourseUpsertBulk) SetTitle(v string) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateTitle() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *CourseUpsertBulk) SetDescription(v string) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateDescription() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateDescription()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *CourseUpsertBulk) SetOrderIndex(v int) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *CourseUpsertBulk) AddOrderIndex(v int) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateOrderIndex() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateOrderIndex()
	})
}

// SetIsPremium sets the "is_premium" field.
func (u *CourseUpsertBulk) SetIsPremium(v bool) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetIsPremium(v)
	})
}

// UpdateIsPremium sets the "is_premium" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateIsPremium() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateIsPremium()
	})
}

// SetRequiredScore sets the "required_score" field.
func (u *CourseUpsertBulk) SetRequiredScore(v int) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetRequiredScore(v)
	})
}

// AddRequiredScore adds v to the "required_score" field.
func (u *CourseUpsertBulk) AddRequiredScore(v int) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.AddRequiredScore(v)
	})
}

// UpdateRequiredScore sets the "required_score" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateRequiredScore() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateRequiredScore()
	})
}

// Exec executes the query.
func (u *CourseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CourseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CourseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CourseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
