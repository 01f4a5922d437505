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
	"github.com/devroad/devroad/ent/lesson"
)

// LessonCreate is the builder for creating a Lesson entity.
type LessonCreate struct {
	config
	mutation *LessonMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCourseID sets the "course_id" field.
func (_c *LessonCreate) SetCourseID(v string) *LessonCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LessonCreate) SetTitle(v string) *LessonCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *LessonCreate) SetOrderIndex(v int) *LessonCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_c *LessonCreate) SetNillableOrderIndex(v *int) *LessonCreate {
	if v != nil {
		_c.SetOrderIndex(*v)
	}
	return _c
}

// SetIsPremium sets the "is_premium" field.
func (_c *LessonCreate) SetIsPremium(v bool) *LessonCreate {
	_c.mutation.SetIsPremium(v)
	return _c
}

// SetNillableIsPremium sets the "is_premium" field if the given value is not nil.
func (_c *LessonCreate) SetNillableIsPremium(v *bool) *LessonCreate {
	if v != nil {
		_c.SetIsPremium(*v)
	}
	return _c
}

// SetRequiredScore sets the "required_score" field.
func (_c *LessonCreate) SetRequiredScore(v int) *LessonCreate {
	_c.mutation.SetRequiredScore(v)
	return _c
}

// SetNillableRequiredScore sets the "required_score" field if the given value is not nil.
func (_c *LessonCreate) SetNillableRequiredScore(v *int) *LessonCreate {
	if v != nil {
		_c.SetRequiredScore(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LessonCreate) SetID(v string) *LessonCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LessonMutation object of the builder.
func (_c *LessonCreate) Mutation() *LessonMutation {
	return _c.mutation
}

// Save creates the Lesson in the database.
func (_c *LessonCreate) Save(ctx context.Context) (*Lesson, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonCreate) SaveX(ctx context.Context) *Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonCreate) defaults() {
	if _, ok := _c.mutation.OrderIndex(); !ok {
		v := lesson.DefaultOrderIndex
		_c.mutation.SetOrderIndex(v)
	}
	if _, ok := _c.mutation.IsPremium(); !ok {
		v := lesson.DefaultIsPremium
		_c.mutation.SetIsPremium(v)
	}
	if _, ok := _c.mutation.RequiredScore(); !ok {
		v := lesson.DefaultRequiredScore
		_c.mutation.SetRequiredScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonCreate) check() error {
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "Lesson.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := lesson.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "Lesson.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Lesson.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "Lesson.order_index"`)}
	}
	if _, ok := _c.mutation.IsPremium(); !ok {
		return &ValidationError{Name: "is_premium", err: errors.New(`ent: missing required field "Lesson.is_premium"`)}
	}
	if _, ok := _c.mutation.RequiredScore(); !ok {
		return &ValidationError{Name: "required_score", err: errors.New(`ent: missing required field "Lesson.required_score"`)}
	}
	if v, ok := _c.mutation.RequiredScore(); ok {
		if err := lesson.RequiredScoreValidator(v); err != nil {
			return &ValidationError{Name: "required_score", err: fmt.Errorf(`ent: validator failed for field "Lesson.required_score": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := lesson.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Lesson.id": %w`, err)}
		}
	}
	return nil
}

func (_c *LessonCreate) sqlSave(ctx context.Context) (*Lesson, error) {
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
			return nil, fmt.Errorf("unexpected Lesson.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LessonCreate) createSpec() (*Lesson, *sqlgraph.CreateSpec) {
	var (
		_node = &Lesson{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lesson.Table, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(lesson.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(lesson.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.IsPremium(); ok {
		_spec.SetField(lesson.FieldIsPremium, field.TypeBool, value)
		_node.IsPremium = value
	}
	if value, ok := _c.mutation.RequiredScore(); ok {
		_spec.SetField(lesson.FieldRequiredScore, field.TypeInt, value)
		_node.RequiredScore = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lesson.Create().
//		SetCourseID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonUpsert) {
//			SetCourseID(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonCreate) OnConflict(opts ...sql.ConflictOption) *LessonUpsertOne {
	_c.conflict = opts
	return &LessonUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonCreate) OnConflictColumns(columns ...string) *LessonUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonUpsertOne{
		create: _c,
	}
}

type (
	// LessonUpsertOne is the builder for "upsert"-ing
	//  one Lesson node.
	LessonUpsertOne struct {
		create *LessonCreate
	}

	// LessonUpsert is the "OnConflict" setter.
	LessonUpsert struct {
		*sql.UpdateSet
	}
)

// SetCourseID sets the "course_id" field.
func (u *LessonUpsert) SetCourseID(v string) *LessonUpsert {
	u.Set(lesson.FieldCourseID, v)
	return u
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *LessonUpsert) UpdateCourseID() *LessonUpsert {
	u.SetExcluded(lesson.FieldCourseID)
	return u
}

// SetTitle sets the "title" field.
func (u *LessonUpsert) SetTitle(v string) *LessonUpsert {
	u.Set(lesson.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *LessonUpsert) UpdateTitle() *LessonUpsert {
	u.SetExcluded(lesson.FieldTitle)
	return u
}

// SetOrderIndex sets the "order_index" field.
func (u *LessonUpsert) SetOrderIndex(v int) *LessonUpsert {
	u.Set(lesson.FieldOrderIndex, v)
	return u
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *LessonUpsert) UpdateOrderIndex() *LessonUpsert {
	u.SetExcluded(lesson.FieldOrderIndex)
	return u
}

// AddOrderIndex adds v to the "order_index" field.
func (u *LessonUpsert) AddOrderIndex(v int) *LessonUpsert {
	u.Add(lesson.FieldOrderIndex, v)
	return u
}

// SetIsPremium sets the "is_premium" field.
func (u *LessonUpsert) SetIsPremium(v bool) *LessonUpsert {
	u.Set(lesson.FieldIsPremium, v)
	return u
}

// UpdateIsPremium sets the "is_premium" field to the value that was provided on create.
func (u *LessonUpsert) UpdateIsPremium() *LessonUpsert {
	u.SetExcluded(lesson.FieldIsPremium)
	return u
}

// SetRequiredScore sets the "required_score" field.
func (u *LessonUpsert) SetRequiredScore(v int) *LessonUpsert {
	u.Set(lesson.FieldRequiredScore, v)
	return u
}

// UpdateRequiredScore sets the "required_score" field to the value that was provided on create.
func (u *LessonUpsert) UpdateRequiredScore() *LessonUpsert {
	u.SetExcluded(lesson.FieldRequiredScore)
	return u
}

// AddRequiredScore adds v to the "required_score" field.
func (u *LessonUpsert) AddRequiredScore(v int) *LessonUpsert {
	u.Add(lesson.FieldRequiredScore, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lesson.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LessonUpsertOne) UpdateNewValues() *LessonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(lesson.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lesson.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LessonUpsertOne) Ignore() *LessonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonUpsertOne) DoNothing() *LessonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonCreate.OnConflict
// documentation for more info.
func (u *LessonUpsertOne) Update(set func(*LessonUpsert)) *LessonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonUpsert{UpdateSet: update})
	}))
	return u
}

// SetCourseID sets the "course_id" field.
func (u *LessonUpsertOne) SetCourseID(v string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateCourseID() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateCourseID()
	})
}

// SetTitle sets the "title" field.
func (u *LessonUpsertOne) SetTitle(v string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateTitle() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateTitle()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *LessonUpsertOne) SetOrderIndex(v int) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *LessonUpsertOne) AddOrderIndex(v int) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateOrderIndex() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateOrderIndex()
	})
}

// SetIsPremium sets the "is_premium" field.
func (u *LessonUpsertOne) SetIsPremium(v bool) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetIsPremium(v)
	})
}

// UpdateIsPremium sets the "is_premium" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateIsPremium() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateIsPremium()
	})
}

// SetRequiredScore sets the "required_score" field.
func (u *LessonUpsertOne) SetRequiredScore(v int) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetRequiredScore(v)
	})
}

// AddRequiredScore adds v to the "required_score" field.
func (u *LessonUpsertOne) AddRequiredScore(v int) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.AddRequiredScore(v)
	})
}

// UpdateRequiredScore sets the "required_score" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateRequiredScore() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateRequiredScore()
	})
}

// Exec executes the query.
func (u *LessonUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LessonUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LessonUpsertOne.ID is not supported by MySQL driver. Use LessonUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LessonUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LessonCreateBulk is the builder for creating many Lesson entities in bulk.
type LessonCreateBulk struct {
	config
	err      error
	builders []*LessonCreate
	conflict []sql.ConflictOption
}

// Save creates the Lesson entities in the database.
func (_c *LessonCreateBulk) Save(ctx context.Context) ([]*Lesson, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lesson, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonMutation)
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
func (_c *LessonCreateBulk) SaveX(ctx context.Context) []*Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lesson.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonUpsert) {
//			SetCourseID(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonCreateBulk) OnConflict(opts ...sql.ConflictOption) *LessonUpsertBulk {
	_c.conflict = opts
	return &LessonUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonCreateBulk) OnConflictColumns(columns ...string) *LessonUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonUpsertBulk{
		create: _c,
	}
}

// LessonUpsertBulk is the builder for "upsert"-ing
// a bulk of Lesson nodes.
type LessonUpsertBulk struct {
	create *LessonCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lesson.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LessonUpsertBulk) UpdateNewValues() *LessonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(lesson.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LessonUpsertBulk) Ignore() *LessonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonUpsertBulk) DoNothing() *LessonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonCreateBulk.OnConflict
// documentation for more info.
func (u *LessonUpsertBulk) Update(set func(*LessonUpsert)) *LessonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonUpsert{UpdateSet: update})
	}))
	return u
}

// SetCourseID sets the "course_id" field.
func (u *LessonUpsertBulk) SetCourseID(v string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateCourseID() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateCourseID()
	})
}

// SetTitle sets the "title" field.
func (u *LessonUpsertBulk) SetTitle(v string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateTitle() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateTitle()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *LessonUpsertBulk) SetOrderIndex(v int) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *LessonUpsertBulk) AddOrderIndex(v int) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateOrderIndex() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateOrderIndex()
	})
}

// SetIsPremium sets the "is_premium" field.
func (u *LessonUpsertBulk) SetIsPremium(v bool) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetIsPremium(v)
	})
}

// UpdateIsPremium sets the "is_premium" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateIsPremium() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateIsPremium()
	})
}

// SetRequiredScore sets the "required_score" field.
func (u *LessonUpsertBulk) SetRequiredScore(v int) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetRequiredScore(v)
	})
}

// AddRequiredScore adds v to the "required_score" field.
func (u *LessonUpsertBulk) AddRequiredScore(v int) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.AddRequiredScore(v)
	})
}

// UpdateRequiredScore sets the "required_score" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateRequiredScore() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateRequiredScore()
	})
}

// Exec executes the query.
func (u *LessonUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LessonCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
