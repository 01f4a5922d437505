// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devroad/devroad/ent/exercise"
)

// ExerciseCreate is the builder for creating a Exercise entity.
type ExerciseCreate struct {
	config
	mutation *ExerciseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExerciseID sets the "exercise_id" field.
func (_c *ExerciseCreate) SetExerciseID(v string) *ExerciseCreate {
	_c.mutation.SetExerciseID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *ExerciseCreate) SetLessonID(v string) *ExerciseCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ExerciseCreate) SetKind(v string) *ExerciseCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *ExerciseCreate) SetQuestion(v string) *ExerciseCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_c *ExerciseCreate) SetNillableQuestion(v *string) *ExerciseCreate {
	if v != nil {
		_c.SetQuestion(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *ExerciseCreate) SetData(v string) *ExerciseCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *ExerciseCreate) SetAnswer(v string) *ExerciseCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *ExerciseCreate) SetNillableAnswer(v *string) *ExerciseCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetPoints sets the "points" field.
func (_c *ExerciseCreate) SetPoints(v int) *ExerciseCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_c *ExerciseCreate) SetNillablePoints(v *int) *ExerciseCreate {
	if v != nil {
		_c.SetPoints(*v)
	}
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *ExerciseCreate) SetOrderIndex(v int) *ExerciseCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_c *ExerciseCreate) SetNillableOrderIndex(v *int) *ExerciseCreate {
	if v != nil {
		_c.SetOrderIndex(*v)
	}
	return _c
}

// Mutation returns the ExerciseMutation object of the builder.
func (_c *ExerciseCreate) Mutation() *ExerciseMutation {
	return _c.mutation
}

// Save creates the Exercise in the database.
func (_c *ExerciseCreate) Save(ctx context.Context) (*Exercise, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExerciseCreate) SaveX(ctx context.Context) *Exercise {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExerciseCreate) defaults() {
	if _, ok := _c.mutation.Question(); !ok {
		v := exercise.DefaultQuestion
		_c.mutation.SetQuestion(v)
	}
	if _, ok := _c.mutation.Answer(); !ok {
		v := exercise.DefaultAnswer
		_c.mutation.SetAnswer(v)
	}
	if _, ok := _c.mutation.Points(); !ok {
		v := exercise.DefaultPoints
		_c.mutation.SetPoints(v)
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		v := exercise.DefaultOrderIndex
		_c.mutation.SetOrderIndex(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExerciseCreate) check() error {
	if _, ok := _c.mutation.ExerciseID(); !ok {
		return &ValidationError{Name: "exercise_id", err: errors.New(`ent: missing required field "Exercise.exercise_id"`)}
	}
	if v, ok := _c.mutation.ExerciseID(); ok {
		if err := exercise.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "Exercise.exercise_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "Exercise.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := exercise.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "Exercise.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Exercise.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := exercise.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Exercise.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Exercise.question"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "Exercise.data"`)}
	}
	if v, ok := _c.mutation.Data(); ok {
		if err := exercise.DataValidator(v); err != nil {
			return &ValidationError{Name: "data", err: fmt.Errorf(`ent: validator failed for field "Exercise.data": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "Exercise.answer"`)}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "Exercise.points"`)}
	}
	if v, ok := _c.mutation.Points(); ok {
		if err := exercise.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "Exercise.points": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "Exercise.order_index"`)}
	}
	return nil
}

func (_c *ExerciseCreate) sqlSave(ctx context.Context) (*Exercise, error) {
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

func (_c *ExerciseCreate) createSpec() (*Exercise, *sqlgraph.CreateSpec) {
	var (
		_node = &Exercise{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exercise.Table, sqlgraph.NewFieldSpec(exercise.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ExerciseID(); ok {
		_spec.SetField(exercise.FieldExerciseID, field.TypeString, value)
		_node.ExerciseID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(exercise.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(exercise.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(exercise.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(exercise.FieldData, field.TypeString, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(exercise.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(exercise.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(exercise.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Exercise.Create().
//		SetExerciseID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExerciseUpsert) {
//			SetExerciseID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExerciseCreate) OnConflict(opts ...sql.ConflictOption) *ExerciseUpsertOne {
	_c.conflict = opts
	return &ExerciseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Exercise.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExerciseCreate) OnConflictColumns(columns ...string) *ExerciseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExerciseUpsertOne{
		create: _c,
	}
}

type (
	// ExerciseUpsertOne is the builder for "upsert"-ing
	//  one Exercise node.
	ExerciseUpsertOne struct {
		create *ExerciseCreate
	}

	// ExerciseUpsert is the "OnConflict" setter.
	ExerciseUpsert struct {
		*sql.UpdateSet
	}
)

// SetKind sets the "kind" field.
func (u *ExerciseUpsert) SetKind(v string) *ExerciseUpsert {
	u.Set(exercise.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ExerciseUpsert) UpdateKind() *ExerciseUpsert {
	u.SetExcluded(exercise.FieldKind)
	return u
}

// SetQuestion sets the "question" field.
func (u *ExerciseUpsert) SetQuestion(v string) *ExerciseUpsert {
	u.Set(exercise.FieldQuestion, v)
	return u
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *ExerciseUpsert) UpdateQuestion() *ExerciseUpsert {
	u.SetExcluded(exercise.FieldQuestion)
	return u
}

// SetData sets the "data" field.
func (u *ExerciseUpsert) SetData(v string) *ExerciseUpsert {
	u.Set(exercise.FieldData, v)
	return u
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *ExerciseUpsert) UpdateData() *ExerciseUpsert {
	u.SetExcluded(exercise.FieldData)
	return u
}

// SetAnswer sets the "answer" field.
func (u *ExerciseUpsert) SetAnswer(v string) *ExerciseUpsert {
	u.Set(exercise.FieldAnswer, v)
	return u
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *ExerciseUpsert) UpdateAnswer() *ExerciseUpsert {
	u.SetExcluded(exercise.FieldAnswer)
	return u
}

// SetPoints sets the "points" field.
func (u *ExerciseUpsert) SetPoints(v int) *ExerciseUpsert {
	u.Set(exercise.FieldPoints, v)
	return u
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *ExerciseUpsert) UpdatePoints() *ExerciseUpsert {
	u.SetExcluded(exercise.FieldPoints)
	return u
}

// AddPoints adds v to the "points" field.
func (u *ExerciseUpsert) AddPoints(v int) *ExerciseUpsert {
	u.Add(exercise.FieldPoints, v)
	return u
}

// SetOrderIndex sets the "order_index" field.
func (u *ExerciseUpsert) SetOrderIndex(v int) *ExerciseUpsert {
	u.Set(exercise.FieldOrderIndex, v)
	return u
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ExerciseUpsert) UpdateOrderIndex() *ExerciseUpsert {
	u.SetExcluded(exercise.FieldOrderIndex)
	return u
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ExerciseUpsert) AddOrderIndex(v int) *ExerciseUpsert {
	u.Add(exercise.FieldOrderIndex, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Exercise.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExerciseUpsertOne) UpdateNewValues() *ExerciseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ExerciseID(); exists {
			s.SetIgnore(exercise.FieldExerciseID)
		}
		if _, exists := u.create.mutation.LessonID(); exists {
			s.SetIgnore(exercise.FieldLessonID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Exercise.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExerciseUpsertOne) Ignore() *ExerciseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExerciseUpsertOne) DoNothing() *ExerciseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExerciseCreate.OnConflict
// documentation for more info.
func (u *ExerciseUpsertOne) Update(set func(*ExerciseUpsert)) *ExerciseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExerciseUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *ExerciseUpsertOne) SetKind(v string) *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ExerciseUpsertOne) UpdateKind() *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateKind()
	})
}

// SetQuestion sets the "question" field.
func (u *ExerciseUpsertOne) SetQuestion(v string) *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *ExerciseUpsertOne) UpdateQuestion() *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateQuestion()
	})
}

// SetData sets the "data" field.
func (u *ExerciseUpsertOne) SetData(v string) *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *ExerciseUpsertOne) UpdateData() *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateData()
	})
}

// SetAnswer sets the "answer" field.
func (u *ExerciseUpsertOne) SetAnswer(v string) *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *ExerciseUpsertOne) UpdateAnswer() *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateAnswer()
	})
}

// SetPoints sets the "points" field.
func (u *ExerciseUpsertOne) SetPoints(v int) *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetPoints(v)
	})
}

// AddPoints adds v to the "points" field.
func (u *ExerciseUpsertOne) AddPoints(v int) *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.AddPoints(v)
	})
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *ExerciseUpsertOne) UpdatePoints() *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdatePoints()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *ExerciseUpsertOne) SetOrderIndex(v int) *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ExerciseUpsertOne) AddOrderIndex(v int) *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ExerciseUpsertOne) UpdateOrderIndex() *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateOrderIndex()
	})
}

// Exec executes the query.
func (u *ExerciseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExerciseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExerciseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExerciseUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExerciseUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExerciseCreateBulk is the builder for creating many Exercise entities in bulk.
type ExerciseCreateBulk struct {
	config
	err      error
	builders []*ExerciseCreate
	conflict []sql.ConflictOption
}

// Save creates the Exercise entities in the database.
func (_c *ExerciseCreateBulk) Save(ctx context.Context) ([]*Exercise, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Exercise, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExerciseMutation)
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
func (_c *ExerciseCreateBulk) SaveX(ctx context.Context) []*Exercise {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Exercise.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExerciseUpsert) {
//			SetExerciseID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExerciseCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExerciseUpsertBulk {
	_c.conflict = opts
	return &ExerciseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Exercise.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExerciseCreateBulk) OnConflictColumns(columns ...string) *ExerciseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExerciseUpsertBulk{
		create: _c,
	}
}

// ExerciseUpsertBulk is the builder for "upsert"-ing
// a bulk of Exercise nodes.
type ExerciseUpsertBulk struct {
	create *ExerciseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Exercise.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExerciseUpsertBulk) UpdateNewValues() *ExerciseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ExerciseID(); exists {
				s.SetIgnore(exercise.FieldExerciseID)
			}
			if _, exists := b.mutation.LessonID(); exists {
				s.SetIgnore(exercise.FieldLessonID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Exercise.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExerciseUpsertBulk) Ignore() *ExerciseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExerciseUpsertBulk) DoNothing() *ExerciseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExerciseCreateBulk.OnConflict
// documentation for more info.
func (u *ExerciseUpsertBulk) Update(set func(*ExerciseUpsert)) *ExerciseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExerciseUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *ExerciseUpsertBulk) SetKind(v string) *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ExerciseUpsertBulk) UpdateKind() *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateKind()
	})
}

// SetQuestion sets the "question" field.
func (u *ExerciseUpsertBulk) SetQuestion(v string) *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *ExerciseUpsertBulk) UpdateQuestion() *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateQuestion()
	})
}

// SetData sets the "data" field.
func (u *ExerciseUpsertBulk) SetData(v string) *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *ExerciseUpsertBulk) UpdateData() *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateData()
	})
}

// SetAnswer sets the "answer" field.
func (u *ExerciseUpsertBulk) SetAnswer(v string) *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *ExerciseUpsertBulk) UpdateAnswer() *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateAnswer()
	})
}

// SetPoints sets the "points" field.
func (u *ExerciseUpsertBulk) SetPoints(v int) *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetPoints(v)
	})
}

// AddPoints adds v to the "points" field.
func (u *ExerciseUpsertBulk) AddPoints(v int) *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.AddPoints(v)
	})
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *ExerciseUpsertBulk) UpdatePoints() *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdatePoints()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *ExerciseUpsertBulk) SetOrderIndex(v int) *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ExerciseUpsertBulk) AddOrderIndex(v int) *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ExerciseUpsertBulk) UpdateOrderIndex() *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateOrderIndex()
	})
}

// Exec executes the query.
func (u *ExerciseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExerciseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExerciseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExerciseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
