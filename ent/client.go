// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/devroad/devroad/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/devroad/devroad/ent/attemptevent"
	"github.com/devroad/devroad/ent/course"
	"github.com/devroad/devroad/ent/exercise"
	"github.com/devroad/devroad/ent/flashcard"
	"github.com/devroad/devroad/ent/lesson"
	"github.com/devroad/devroad/ent/sequence"
	"github.com/devroad/devroad/ent/userprogress"
	"github.com/devroad/devroad/ent/userscore"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AttemptEvent is the client for interacting with the AttemptEvent builders.
	AttemptEvent *AttemptEventClient
	// Course is the client for interacting with the Course builders.
	Course *CourseClient
	// Exercise is the client for interacting with the Exercise builders.
	Exercise *ExerciseClient
	// Flashcard is the client for interacting with the Flashcard builders.
	Flashcard *FlashcardClient
	// Lesson is the client for interacting with the Lesson builders.
	Lesson *LessonClient
	// Sequence is the client for interacting with the Sequence builders.
	Sequence *SequenceClient
	// UserProgress is the client for interacting with the UserProgress builders.
	UserProgress *UserProgressClient
	// UserScore is the client for interacting with the UserScore builders.
	UserScore *UserScoreClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AttemptEvent = NewAttemptEventClient(c.config)
	c.Course = NewCourseClient(c.config)
	c.Exercise = NewExerciseClient(c.config)
	c.Flashcard = NewFlashcardClient(c.config)
	c.Lesson = NewLessonClient(c.config)
	c.Sequence = NewSequenceClient(c.config)
	c.UserProgress = NewUserProgressClient(c.config)
	c.UserScore = NewUserScoreClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		AttemptEvent: NewAttemptEventClient(cfg),
		Course:       NewCourseClient(cfg),
		Exercise:     NewExerciseClient(cfg),
		Flashcard:    NewFlashcardClient(cfg),
		Lesson:       NewLessonClient(cfg),
		Sequence:     NewSequenceClient(cfg),
		UserProgress: NewUserProgressClient(cfg),
		UserScore:    NewUserScoreClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		AttemptEvent: NewAttemptEventClient(cfg),
		Course:       NewCourseClient(cfg),
		Exercise:     NewExerciseClient(cfg),
		Flashcard:    NewFlashcardClient(cfg),
		Lesson:       NewLessonClient(cfg),
		Sequence:     NewSequenceClient(cfg),
		UserProgress: NewUserProgressClient(cfg),
		UserScore:    NewUserScoreClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AttemptEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AttemptEvent, c.Course, c.Exercise, c.Flashcard, c.Lesson, c.Sequence,
		c.UserProgress, c.UserScore,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AttemptEvent, c.Course, c.Exercise, c.Flashcard, c.Lesson, c.Sequence,
		c.UserProgress, c.UserScore,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptEventMutation:
		return c.AttemptEvent.mutate(ctx, m)
	case *CourseMutation:
		return c.Course.mutate(ctx, m)
	case *ExerciseMutation:
		return c.Exercise.mutate(ctx, m)
	case *FlashcardMutation:
		return c.Flashcard.mutate(ctx, m)
	case *LessonMutation:
		return c.Lesson.mutate(ctx, m)
	case *SequenceMutation:
		return c.Sequence.mutate(ctx, m)
	case *UserProgressMutation:
		return c.UserProgress.mutate(ctx, m)
	case *UserScoreMutation:
		return c.UserScore.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptEventClient is a client for the AttemptEvent schema.
type AttemptEventClient struct {
	config
}

// NewAttemptEventClient returns a client for the AttemptEvent from the given config.
func NewAttemptEventClient(c config) *AttemptEventClient {
	return &AttemptEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptevent.Hooks(f(g(h())))`.
func (c *AttemptEventClient) Use(hooks ...Hook) {
	c.hooks.AttemptEvent = append(c.hooks.AttemptEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptevent.Intercept(f(g(h())))`.
func (c *AttemptEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptEvent = append(c.inters.AttemptEvent, interceptors...)
}

// Create returns a builder for creating a AttemptEvent entity.
func (c *AttemptEventClient) Create() *AttemptEventCreate {
	mutation := newAttemptEventMutation(c.config, OpCreate)
	return &AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptEvent entities.
func (c *AttemptEventClient) CreateBulk(builders ...*AttemptEventCreate) *AttemptEventCreateBulk {
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptEventClient) MapCreateBulk(slice any, setFunc func(*AttemptEventCreate, int)) *AttemptEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptEventCreateBulk{err: fmt.Errorf("calling to AttemptEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptEvent.
func (c *AttemptEventClient) Update() *AttemptEventUpdate {
	mutation := newAttemptEventMutation(c.config, OpUpdate)
	return &AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptEventClient) UpdateOne(_m *AttemptEvent) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEvent(_m))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptEventClient) UpdateOneID(id int) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEventID(id))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptEvent.
func (c *AttemptEventClient) Delete() *AttemptEventDelete {
	mutation := newAttemptEventMutation(c.config, OpDelete)
	return &AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptEventClient) DeleteOne(_m *AttemptEvent) *AttemptEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptEventClient) DeleteOneID(id int) *AttemptEventDeleteOne {
	builder := c.Delete().Where(attemptevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptEventDeleteOne{builder}
}

// Query returns a query builder for AttemptEvent.
func (c *AttemptEventClient) Query() *AttemptEventQuery {
	return &AttemptEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptEvent entity by its id.
func (c *AttemptEventClient) Get(ctx context.Context, id int) (*AttemptEvent, error) {
	return c.Query().Where(attemptevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptEventClient) GetX(ctx context.Context, id int) *AttemptEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptEventClient) Hooks() []Hook {
	return c.hooks.AttemptEvent
}

// Interceptors returns the client interceptors.
func (c *AttemptEventClient) Interceptors() []Interceptor {
	return c.inters.AttemptEvent
}

func (c *AttemptEventClient) mutate(ctx context.Context, m *AttemptEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptEvent mutation op: %q", m.Op())
	}
}

// CourseClient is a client for the Course schema.
type CourseClient struct {
	config
}

// NewCourseClient returns a client for the Course from the given config.
func NewCourseClient(c config) *CourseClient {
	return &CourseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `course.Hooks(f(g(h())))`.
func (c *CourseClient) Use(hooks ...Hook) {
	c.hooks.Course = append(c.hooks.Course, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `course.Intercept(f(g(h())))`.
func (c *CourseClient) Intercept(interceptors ...Interceptor) {
	c.inters.Course = append(c.inters.Course, interceptors...)
}

// Create returns a builder for creating a Course entity.
func (c *CourseClient) Create() *CourseCreate {
	mutation := newCourseMutation(c.config, OpCreate)
	return &CourseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Course entities.
func (c *CourseClient) CreateBulk(builders ...*CourseCreate) *CourseCreateBulk {
	return &CourseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CourseClient) MapCreateBulk(slice any, setFunc func(*CourseCreate, int)) *CourseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CourseCreateBulk{err: fmt.Errorf("calling to CourseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CourseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CourseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Course.
func (c *CourseClient) Update() *CourseUpdate {
	mutation := newCourseMutation(c.config, OpUpdate)
	return &CourseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CourseClient) UpdateOne(_m *Course) *CourseUpdateOne {
	mutation := newCourseMutation(c.config, OpUpdateOne, withCourse(_m))
	return &CourseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CourseClient) UpdateOneID(id string) *CourseUpdateOne {
	mutation := newCourseMutation(c.config, OpUpdateOne, withCourseID(id))
	return &CourseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Course.
func (c *CourseClient) Delete() *CourseDelete {
	mutation := newCourseMutation(c.config, OpDelete)
	return &CourseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CourseClient) DeleteOne(_m *Course) *CourseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CourseClient) DeleteOneID(id string) *CourseDeleteOne {
	builder := c.Delete().Where(course.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CourseDeleteOne{builder}
}

// Query returns a query builder for Course.
func (c *CourseClient) Query() *CourseQuery {
	return &CourseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCourse},
		inters: c.Interceptors(),
	}
}

// Get returns a Course entity by its id.
func (c *CourseClient) Get(ctx context.Context, id string) (*Course, error) {
	return c.Query().Where(course.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CourseClient) GetX(ctx context.Context, id string) *Course {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CourseClient) Hooks() []Hook {
	return c.hooks.Course
}

// Interceptors returns the client interceptors.
func (c *CourseClient) Interceptors() []Interceptor {
	return c.inters.Course
}

func (c *CourseClient) mutate(ctx context.Context, m *CourseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CourseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CourseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CourseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CourseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Course mutation op: %q", m.Op())
	}
}

// ExerciseClient is a client for the Exercise schema.
type ExerciseClient struct {
	config
}

// NewExerciseClient returns a client for the Exercise from the given config.
func NewExerciseClient(c config) *ExerciseClient {
	return &ExerciseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exercise.Hooks(f(g(h())))`.
func (c *ExerciseClient) Use(hooks ...Hook) {
	c.hooks.Exercise = append(c.hooks.Exercise, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exercise.Intercept(f(g(h())))`.
func (c *ExerciseClient) Intercept(interceptors ...Interceptor) {
	c.inters.Exercise = append(c.inters.Exercise, interceptors...)
}

// Create returns a builder for creating a Exercise entity.
func (c *ExerciseClient) Create() *ExerciseCreate {
	mutation := newExerciseMutation(c.config, OpCreate)
	return &ExerciseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Exercise entities.
func (c *ExerciseClient) CreateBulk(builders ...*ExerciseCreate) *ExerciseCreateBulk {
	return &ExerciseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExerciseClient) MapCreateBulk(slice any, setFunc func(*ExerciseCreate, int)) *ExerciseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExerciseCreateBulk{err: fmt.Errorf("calling to ExerciseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExerciseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExerciseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Exercise.
func (c *ExerciseClient) Update() *ExerciseUpdate {
	mutation := newExerciseMutation(c.config, OpUpdate)
	return &ExerciseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExerciseClient) UpdateOne(_m *Exercise) *ExerciseUpdateOne {
	mutation := newExerciseMutation(c.config, OpUpdateOne, withExercise(_m))
	return &ExerciseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExerciseClient) UpdateOneID(id int) *ExerciseUpdateOne {
	mutation := newExerciseMutation(c.config, OpUpdateOne, withExerciseID(id))
	return &ExerciseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Exercise.
func (c *ExerciseClient) Delete() *ExerciseDelete {
	mutation := newExerciseMutation(c.config, OpDelete)
	return &ExerciseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExerciseClient) DeleteOne(_m *Exercise) *ExerciseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExerciseClient) DeleteOneID(id int) *ExerciseDeleteOne {
	builder := c.Delete().Where(exercise.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExerciseDeleteOne{builder}
}

// Query returns a query builder for Exercise.
func (c *ExerciseClient) Query() *ExerciseQuery {
	return &ExerciseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExercise},
		inters: c.Interceptors(),
	}
}

// Get returns a Exercise entity by its id.
func (c *ExerciseClient) Get(ctx context.Context, id int) (*Exercise, error) {
	return c.Query().Where(exercise.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExerciseClient) GetX(ctx context.Context, id int) *Exercise {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExerciseClient) Hooks() []Hook {
	return c.hooks.Exercise
}

// Interceptors returns the client interceptors.
func (c *ExerciseClient) Interceptors() []Interceptor {
	return c.inters.Exercise
}

func (c *ExerciseClient) mutate(ctx context.Context, m *ExerciseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExerciseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExerciseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExerciseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExerciseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Exercise mutation op: %q", m.Op())
	}
}

// FlashcardClient is a client for the Flashcard schema.
type FlashcardClient struct {
	config
}

// NewFlashcardClient returns a client for the Flashcard from the given config.
func NewFlashcardClient(c config) *FlashcardClient {
	return &FlashcardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `flashcard.Hooks(f(g(h())))`.
func (c *FlashcardClient) Use(hooks ...Hook) {
	c.hooks.Flashcard = append(c.hooks.Flashcard, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `flashcard.Intercept(f(g(h())))`.
func (c *FlashcardClient) Intercept(interceptors ...Interceptor) {
	c.inters.Flashcard = append(c.inters.Flashcard, interceptors...)
}

// Create returns a builder for creating a Flashcard entity.
func (c *FlashcardClient) Create() *FlashcardCreate {
	mutation := newFlashcardMutation(c.config, OpCreate)
	return &FlashcardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Flashcard entities.
func (c *FlashcardClient) CreateBulk(builders ...*FlashcardCreate) *FlashcardCreateBulk {
	return &FlashcardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FlashcardClient) MapCreateBulk(slice any, setFunc func(*FlashcardCreate, int)) *FlashcardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FlashcardCreateBulk{err: fmt.Errorf("calling to FlashcardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FlashcardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FlashcardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Flashcard.
func (c *FlashcardClient) Update() *FlashcardUpdate {
	mutation := newFlashcardMutation(c.config, OpUpdate)
	return &FlashcardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FlashcardClient) UpdateOne(_m *Flashcard) *FlashcardUpdateOne {
	mutation := newFlashcardMutation(c.config, OpUpdateOne, withFlashcard(_m))
	return &FlashcardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FlashcardClient) UpdateOneID(id int) *FlashcardUpdateOne {
	mutation := newFlashcardMutation(c.config, OpUpdateOne, withFlashcardID(id))
	return &FlashcardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Flashcard.
func (c *FlashcardClient) Delete() *FlashcardDelete {
	mutation := newFlashcardMutation(c.config, OpDelete)
	return &FlashcardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FlashcardClient) DeleteOne(_m *Flashcard) *FlashcardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FlashcardClient) DeleteOneID(id int) *FlashcardDeleteOne {
	builder := c.Delete().Where(flashcard.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FlashcardDeleteOne{builder}
}

// Query returns a query builder for Flashcard.
func (c *FlashcardClient) Query() *FlashcardQuery {
	return &FlashcardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFlashcard},
		inters: c.Interceptors(),
	}
}

// Get returns a Flashcard entity by its id.
func (c *FlashcardClient) Get(ctx context.Context, id int) (*Flashcard, error) {
	return c.Query().Where(flashcard.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FlashcardClient) GetX(ctx context.Context, id int) *Flashcard {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FlashcardClient) Hooks() []Hook {
	return c.hooks.Flashcard
}

// Interceptors returns the client interceptors.
func (c *FlashcardClient) Interceptors() []Interceptor {
	return c.inters.Flashcard
}

func (c *FlashcardClient) mutate(ctx context.Context, m *FlashcardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FlashcardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FlashcardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FlashcardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FlashcardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Flashcard mutation op: %q", m.Op())
	}
}

// LessonClient is a client for the Lesson schema.
type LessonClient struct {
	config
}

// NewLessonClient returns a client for the Lesson from the given config.
func NewLessonClient(c config) *LessonClient {
	return &LessonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lesson.Hooks(f(g(h())))`.
func (c *LessonClient) Use(hooks ...Hook) {
	c.hooks.Lesson = append(c.hooks.Lesson, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lesson.Intercept(f(g(h())))`.
func (c *LessonClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lesson = append(c.inters.Lesson, interceptors...)
}

// Create returns a builder for creating a Lesson entity.
func (c *LessonClient) Create() *LessonCreate {
	mutation := newLessonMutation(c.config, OpCreate)
	return &LessonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lesson entities.
func (c *LessonClient) CreateBulk(builders ...*LessonCreate) *LessonCreateBulk {
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonClient) MapCreateBulk(slice any, setFunc func(*LessonCreate, int)) *LessonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonCreateBulk{err: fmt.Errorf("calling to LessonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lesson.
func (c *LessonClient) Update() *LessonUpdate {
	mutation := newLessonMutation(c.config, OpUpdate)
	return &LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonClient) UpdateOne(_m *Lesson) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLesson(_m))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonClient) UpdateOneID(id string) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLessonID(id))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lesson.
func (c *LessonClient) Delete() *LessonDelete {
	mutation := newLessonMutation(c.config, OpDelete)
	return &LessonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonClient) DeleteOne(_m *Lesson) *LessonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonClient) DeleteOneID(id string) *LessonDeleteOne {
	builder := c.Delete().Where(lesson.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonDeleteOne{builder}
}

// Query returns a query builder for Lesson.
func (c *LessonClient) Query() *LessonQuery {
	return &LessonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLesson},
		inters: c.Interceptors(),
	}
}

// Get returns a Lesson entity by its id.
func (c *LessonClient) Get(ctx context.Context, id string) (*Lesson, error) {
	return c.Query().Where(lesson.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonClient) GetX(ctx context.Context, id string) *Lesson {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonClient) Hooks() []Hook {
	return c.hooks.Lesson
}

// Interceptors returns the client interceptors.
func (c *LessonClient) Interceptors() []Interceptor {
	return c.inters.Lesson
}

func (c *LessonClient) mutate(ctx context.Context, m *LessonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lesson mutation op: %q", m.Op())
	}
}

// SequenceClient is a client for the Sequence schema.
type SequenceClient struct {
	config
}

// NewSequenceClient returns a client for the Sequence from the given config.
func NewSequenceClient(c config) *SequenceClient {
	return &SequenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sequence.Hooks(f(g(h())))`.
func (c *SequenceClient) Use(hooks ...Hook) {
	c.hooks.Sequence = append(c.hooks.Sequence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sequence.Intercept(f(g(h())))`.
func (c *SequenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Sequence = append(c.inters.Sequence, interceptors...)
}

// Create returns a builder for creating a Sequence entity.
func (c *SequenceClient) Create() *SequenceCreate {
	mutation := newSequenceMutation(c.config, OpCreate)
	return &SequenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Sequence entities.
func (c *SequenceClient) CreateBulk(builders ...*SequenceCreate) *SequenceCreateBulk {
	return &SequenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SequenceClient) MapCreateBulk(slice any, setFunc func(*SequenceCreate, int)) *SequenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SequenceCreateBulk{err: fmt.Errorf("calling to SequenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SequenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SequenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Sequence.
func (c *SequenceClient) Update() *SequenceUpdate {
	mutation := newSequenceMutation(c.config, OpUpdate)
	return &SequenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SequenceClient) UpdateOne(_m *Sequence) *SequenceUpdateOne {
	mutation := newSequenceMutation(c.config, OpUpdateOne, withSequence(_m))
	return &SequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SequenceClient) UpdateOneID(id string) *SequenceUpdateOne {
	mutation := newSequenceMutation(c.config, OpUpdateOne, withSequenceID(id))
	return &SequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Sequence.
func (c *SequenceClient) Delete() *SequenceDelete {
	mutation := newSequenceMutation(c.config, OpDelete)
	return &SequenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SequenceClient) DeleteOne(_m *Sequence) *SequenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SequenceClient) DeleteOneID(id string) *SequenceDeleteOne {
	builder := c.Delete().Where(sequence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SequenceDeleteOne{builder}
}

// Query returns a query builder for Sequence.
func (c *SequenceClient) Query() *SequenceQuery {
	return &SequenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSequence},
		inters: c.Interceptors(),
	}
}

// Get returns a Sequence entity by its id.
func (c *SequenceClient) Get(ctx context.Context, id string) (*Sequence, error) {
	return c.Query().Where(sequence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SequenceClient) GetX(ctx context.Context, id string) *Sequence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SequenceClient) Hooks() []Hook {
	return c.hooks.Sequence
}

// Interceptors returns the client interceptors.
func (c *SequenceClient) Interceptors() []Interceptor {
	return c.inters.Sequence
}

func (c *SequenceClient) mutate(ctx context.Context, m *SequenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SequenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SequenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SequenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Sequence mutation op: %q", m.Op())
	}
}

// UserProgressClient is a client for the UserProgress schema.
type UserProgressClient struct {
	config
}

// NewUserProgressClient returns a client for the UserProgress from the given config.
func NewUserProgressClient(c config) *UserProgressClient {
	return &UserProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userprogress.Hooks(f(g(h())))`.
func (c *UserProgressClient) Use(hooks ...Hook) {
	c.hooks.UserProgress = append(c.hooks.UserProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userprogress.Intercept(f(g(h())))`.
func (c *UserProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserProgress = append(c.inters.UserProgress, interceptors...)
}

// Create returns a builder for creating a UserProgress entity.
func (c *UserProgressClient) Create() *UserProgressCreate {
	mutation := newUserProgressMutation(c.config, OpCreate)
	return &UserProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserProgress entities.
func (c *UserProgressClient) CreateBulk(builders ...*UserProgressCreate) *UserProgressCreateBulk {
	return &UserProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserProgressClient) MapCreateBulk(slice any, setFunc func(*UserProgressCreate, int)) *UserProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserProgressCreateBulk{err: fmt.Errorf("calling to UserProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserProgress.
func (c *UserProgressClient) Update() *UserProgressUpdate {
	mutation := newUserProgressMutation(c.config, OpUpdate)
	return &UserProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserProgressClient) UpdateOne(_m *UserProgress) *UserProgressUpdateOne {
	mutation := newUserProgressMutation(c.config, OpUpdateOne, withUserProgress(_m))
	return &UserProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserProgressClient) UpdateOneID(id int) *UserProgressUpdateOne {
	mutation := newUserProgressMutation(c.config, OpUpdateOne, withUserProgressID(id))
	return &UserProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserProgress.
func (c *UserProgressClient) Delete() *UserProgressDelete {
	mutation := newUserProgressMutation(c.config, OpDelete)
	return &UserProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserProgressClient) DeleteOne(_m *UserProgress) *UserProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserProgressClient) DeleteOneID(id int) *UserProgressDeleteOne {
	builder := c.Delete().Where(userprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserProgressDeleteOne{builder}
}

// Query returns a query builder for UserProgress.
func (c *UserProgressClient) Query() *UserProgressQuery {
	return &UserProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a UserProgress entity by its id.
func (c *UserProgressClient) Get(ctx context.Context, id int) (*UserProgress, error) {
	return c.Query().Where(userprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserProgressClient) GetX(ctx context.Context, id int) *UserProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserProgressClient) Hooks() []Hook {
	return c.hooks.UserProgress
}

// Interceptors returns the client interceptors.
func (c *UserProgressClient) Interceptors() []Interceptor {
	return c.inters.UserProgress
}

func (c *UserProgressClient) mutate(ctx context.Context, m *UserProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserProgress mutation op: %q", m.Op())
	}
}

// UserScoreClient is a client for the UserScore schema.
type UserScoreClient struct {
	config
}

// NewUserScoreClient returns a client for the UserScore from the given config.
func NewUserScoreClient(c config) *UserScoreClient {
	return &UserScoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userscore.Hooks(f(g(h())))`.
func (c *UserScoreClient) Use(hooks ...Hook) {
	c.hooks.UserScore = append(c.hooks.UserScore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userscore.Intercept(f(g(h())))`.
func (c *UserScoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserScore = append(c.inters.UserScore, interceptors...)
}

// Create returns a builder for creating a UserScore entity.
func (c *UserScoreClient) Create() *UserScoreCreate {
	mutation := newUserScoreMutation(c.config, OpCreate)
	return &UserScoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserScore entities.
func (c *UserScoreClient) CreateBulk(builders ...*UserScoreCreate) *UserScoreCreateBulk {
	return &UserScoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserScoreClient) MapCreateBulk(slice any, setFunc func(*UserScoreCreate, int)) *UserScoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserScoreCreateBulk{err: fmt.Errorf("calling to UserScoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserScoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserScoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserScore.
func (c *UserScoreClient) Update() *UserScoreUpdate {
	mutation := newUserScoreMutation(c.config, OpUpdate)
	return &UserScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserScoreClient) UpdateOne(_m *UserScore) *UserScoreUpdateOne {
	mutation := newUserScoreMutation(c.config, OpUpdateOne, withUserScore(_m))
	return &UserScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserScoreClient) UpdateOneID(id int) *UserScoreUpdateOne {
	mutation := newUserScoreMutation(c.config, OpUpdateOne, withUserScoreID(id))
	return &UserScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserScore.
func (c *UserScoreClient) Delete() *UserScoreDelete {
	mutation := newUserScoreMutation(c.config, OpDelete)
	return &UserScoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserScoreClient) DeleteOne(_m *UserScore) *UserScoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserScoreClient) DeleteOneID(id int) *UserScoreDeleteOne {
	builder := c.Delete().Where(userscore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserScoreDeleteOne{builder}
}

// Query returns a query builder for UserScore.
func (c *UserScoreClient) Query() *UserScoreQuery {
	return &UserScoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserScore},
		inters: c.Interceptors(),
	}
}

// Get returns a UserScore entity by its id.
func (c *UserScoreClient) Get(ctx context.Context, id int) (*UserScore, error) {
	return c.Query().Where(userscore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserScoreClient) GetX(ctx context.Context, id int) *UserScore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserScoreClient) Hooks() []Hook {
	return c.hooks.UserScore
}

// Interceptors returns the client interceptors.
func (c *UserScoreClient) Interceptors() []Interceptor {
	return c.inters.UserScore
}

func (c *UserScoreClient) mutate(ctx context.Context, m *UserScoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserScoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserScoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserScore mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AttemptEvent, Course, Exercise, Flashcard, Lesson, Sequence, UserProgress,
		UserScore []ent.Hook
	}
	inters struct {
		AttemptEvent, Course, Exercise, Flashcard, Lesson, Sequence, UserProgress,
		UserScore []ent.Interceptor
	}
)
