// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/coursegen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursegen/ent/course"
	"github.com/abhisek/coursegen/ent/coursemodule"
	"github.com/abhisek/coursegen/ent/lessoncontent"
	"github.com/abhisek/coursegen/ent/llmrequestevent"
	"github.com/abhisek/coursegen/ent/subtopic"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Course is the client for interacting with the Course builders.
	Course *CourseClient
	// CourseModule is the client for interacting with the CourseModule builders.
	CourseModule *CourseModuleClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// LessonContent is the client for interacting with the LessonContent builders.
	LessonContent *LessonContentClient
	// Subtopic is the client for interacting with the Subtopic builders.
	Subtopic *SubtopicClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Course = NewCourseClient(c.config)
	c.CourseModule = NewCourseModuleClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.LessonContent = NewLessonContentClient(c.config)
	c.Subtopic = NewSubtopicClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		Course:          NewCourseClient(cfg),
		CourseModule:    NewCourseModuleClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		LessonContent:   NewLessonContentClient(cfg),
		Subtopic:        NewSubtopicClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		Course:          NewCourseClient(cfg),
		CourseModule:    NewCourseModuleClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		LessonContent:   NewLessonContentClient(cfg),
		Subtopic:        NewSubtopicClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Course.
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
	c.Course.Use(hooks...)
	c.CourseModule.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.LessonContent.Use(hooks...)
	c.Subtopic.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Course.Intercept(interceptors...)
	c.CourseModule.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.LessonContent.Intercept(interceptors...)
	c.Subtopic.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CourseMutation:
		return c.Course.mutate(ctx, m)
	case *CourseModuleMutation:
		return c.CourseModule.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LessonContentMutation:
		return c.LessonContent.mutate(ctx, m)
	case *SubtopicMutation:
		return c.Subtopic.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
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
func (c *CourseClient) UpdateOneID(id int) *CourseUpdateOne {
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
func (c *CourseClient) DeleteOneID(id int) *CourseDeleteOne {
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
func (c *CourseClient) Get(ctx context.Context, id int) (*Course, error) {
	return c.Query().Where(course.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CourseClient) GetX(ctx context.Context, id int) *Course {
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

// CourseModuleClient is a client for the CourseModule schema.
type CourseModuleClient struct {
	config
}

// NewCourseModuleClient returns a client for the CourseModule from the given config.
func NewCourseModuleClient(c config) *CourseModuleClient {
	return &CourseModuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `coursemodule.Hooks(f(g(h())))`.
func (c *CourseModuleClient) Use(hooks ...Hook) {
	c.hooks.CourseModule = append(c.hooks.CourseModule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `coursemodule.Intercept(f(g(h())))`.
func (c *CourseModuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.CourseModule = append(c.inters.CourseModule, interceptors...)
}

// Create returns a builder for creating a CourseModule entity.
func (c *CourseModuleClient) Create() *CourseModuleCreate {
	mutation := newCourseModuleMutation(c.config, OpCreate)
	return &CourseModuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CourseModule entities.
func (c *CourseModuleClient) CreateBulk(builders ...*CourseModuleCreate) *CourseModuleCreateBulk {
	return &CourseModuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CourseModuleClient) MapCreateBulk(slice any, setFunc func(*CourseModuleCreate, int)) *CourseModuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CourseModuleCreateBulk{err: fmt.Errorf("calling to CourseModuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CourseModuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CourseModuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CourseModule.
func (c *CourseModuleClient) Update() *CourseModuleUpdate {
	mutation := newCourseModuleMutation(c.config, OpUpdate)
	return &CourseModuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CourseModuleClient) UpdateOne(_m *CourseModule) *CourseModuleUpdateOne {
	mutation := newCourseModuleMutation(c.config, OpUpdateOne, withCourseModule(_m))
	return &CourseModuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CourseModuleClient) UpdateOneID(id int) *CourseModuleUpdateOne {
	mutation := newCourseModuleMutation(c.config, OpUpdateOne, withCourseModuleID(id))
	return &CourseModuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CourseModule.
func (c *CourseModuleClient) Delete() *CourseModuleDelete {
	mutation := newCourseModuleMutation(c.config, OpDelete)
	return &CourseModuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CourseModuleClient) DeleteOne(_m *CourseModule) *CourseModuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CourseModuleClient) DeleteOneID(id int) *CourseModuleDeleteOne {
	builder := c.Delete().Where(coursemodule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CourseModuleDeleteOne{builder}
}

// Query returns a query builder for CourseModule.
func (c *CourseModuleClient) Query() *CourseModuleQuery {
	return &CourseModuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCourseModule},
		inters: c.Interceptors(),
	}
}

// Get returns a CourseModule entity by its id.
func (c *CourseModuleClient) Get(ctx context.Context, id int) (*CourseModule, error) {
	return c.Query().Where(coursemodule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CourseModuleClient) GetX(ctx context.Context, id int) *CourseModule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CourseModuleClient) Hooks() []Hook {
	return c.hooks.CourseModule
}

// Interceptors returns the client interceptors.
func (c *CourseModuleClient) Interceptors() []Interceptor {
	return c.inters.CourseModule
}

func (c *CourseModuleClient) mutate(ctx context.Context, m *CourseModuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CourseModuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CourseModuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CourseModuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CourseModuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CourseModule mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// LessonContentClient is a client for the LessonContent schema.
type LessonContentClient struct {
	config
}

// NewLessonContentClient returns a client for the LessonContent from the given config.
func NewLessonContentClient(c config) *LessonContentClient {
	return &LessonContentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessoncontent.Hooks(f(g(h())))`.
func (c *LessonContentClient) Use(hooks ...Hook) {
	c.hooks.LessonContent = append(c.hooks.LessonContent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessoncontent.Intercept(f(g(h())))`.
func (c *LessonContentClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonContent = append(c.inters.LessonContent, interceptors...)
}

// Create returns a builder for creating a LessonContent entity.
func (c *LessonContentClient) Create() *LessonContentCreate {
	mutation := newLessonContentMutation(c.config, OpCreate)
	return &LessonContentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonContent entities.
func (c *LessonContentClient) CreateBulk(builders ...*LessonContentCreate) *LessonContentCreateBulk {
	return &LessonContentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonContentClient) MapCreateBulk(slice any, setFunc func(*LessonContentCreate, int)) *LessonContentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonContentCreateBulk{err: fmt.Errorf("calling to LessonContentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonContentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonContentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonContent.
func (c *LessonContentClient) Update() *LessonContentUpdate {
	mutation := newLessonContentMutation(c.config, OpUpdate)
	return &LessonContentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonContentClient) UpdateOne(_m *LessonContent) *LessonContentUpdateOne {
	mutation := newLessonContentMutation(c.config, OpUpdateOne, withLessonContent(_m))
	return &LessonContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonContentClient) UpdateOneID(id int) *LessonContentUpdateOne {
	mutation := newLessonContentMutation(c.config, OpUpdateOne, withLessonContentID(id))
	return &LessonContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonContent.
func (c *LessonContentClient) Delete() *LessonContentDelete {
	mutation := newLessonContentMutation(c.config, OpDelete)
	return &LessonContentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonContentClient) DeleteOne(_m *LessonContent) *LessonContentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonContentClient) DeleteOneID(id int) *LessonContentDeleteOne {
	builder := c.Delete().Where(lessoncontent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonContentDeleteOne{builder}
}

// Query returns a query builder for LessonContent.
func (c *LessonContentClient) Query() *LessonContentQuery {
	return &LessonContentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonContent},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonContent entity by its id.
func (c *LessonContentClient) Get(ctx context.Context, id int) (*LessonContent, error) {
	return c.Query().Where(lessoncontent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonContentClient) GetX(ctx context.Context, id int) *LessonContent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonContentClient) Hooks() []Hook {
	return c.hooks.LessonContent
}

// Interceptors returns the client interceptors.
func (c *LessonContentClient) Interceptors() []Interceptor {
	return c.inters.LessonContent
}

func (c *LessonContentClient) mutate(ctx context.Context, m *LessonContentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonContentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonContentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonContentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonContent mutation op: %q", m.Op())
	}
}

// SubtopicClient is a client for the Subtopic schema.
type SubtopicClient struct {
	config
}

// NewSubtopicClient returns a client for the Subtopic from the given config.
func NewSubtopicClient(c config) *SubtopicClient {
	return &SubtopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subtopic.Hooks(f(g(h())))`.
func (c *SubtopicClient) Use(hooks ...Hook) {
	c.hooks.Subtopic = append(c.hooks.Subtopic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subtopic.Intercept(f(g(h())))`.
func (c *SubtopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subtopic = append(c.inters.Subtopic, interceptors...)
}

// Create returns a builder for creating a Subtopic entity.
func (c *SubtopicClient) Create() *SubtopicCreate {
	mutation := newSubtopicMutation(c.config, OpCreate)
	return &SubtopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subtopic entities.
func (c *SubtopicClient) CreateBulk(builders ...*SubtopicCreate) *SubtopicCreateBulk {
	return &SubtopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubtopicClient) MapCreateBulk(slice any, setFunc func(*SubtopicCreate, int)) *SubtopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubtopicCreateBulk{err: fmt.Errorf("calling to SubtopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubtopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubtopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subtopic.
func (c *SubtopicClient) Update() *SubtopicUpdate {
	mutation := newSubtopicMutation(c.config, OpUpdate)
	return &SubtopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubtopicClient) UpdateOne(_m *Subtopic) *SubtopicUpdateOne {
	mutation := newSubtopicMutation(c.config, OpUpdateOne, withSubtopic(_m))
	return &SubtopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubtopicClient) UpdateOneID(id int) *SubtopicUpdateOne {
	mutation := newSubtopicMutation(c.config, OpUpdateOne, withSubtopicID(id))
	return &SubtopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subtopic.
func (c *SubtopicClient) Delete() *SubtopicDelete {
	mutation := newSubtopicMutation(c.config, OpDelete)
	return &SubtopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubtopicClient) DeleteOne(_m *Subtopic) *SubtopicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubtopicClient) DeleteOneID(id int) *SubtopicDeleteOne {
	builder := c.Delete().Where(subtopic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubtopicDeleteOne{builder}
}

// Query returns a query builder for Subtopic.
func (c *SubtopicClient) Query() *SubtopicQuery {
	return &SubtopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubtopic},
		inters: c.Interceptors(),
	}
}

// Get returns a Subtopic entity by its id.
func (c *SubtopicClient) Get(ctx context.Context, id int) (*Subtopic, error) {
	return c.Query().Where(subtopic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubtopicClient) GetX(ctx context.Context, id int) *Subtopic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubtopicClient) Hooks() []Hook {
	return c.hooks.Subtopic
}

// Interceptors returns the client interceptors.
func (c *SubtopicClient) Interceptors() []Interceptor {
	return c.inters.Subtopic
}

func (c *SubtopicClient) mutate(ctx context.Context, m *SubtopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubtopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubtopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubtopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubtopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subtopic mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Course, CourseModule, LLMRequestEvent, LessonContent, Subtopic []ent.Hook
	}
	inters struct {
		Course, CourseModule, LLMRequestEvent, LessonContent, Subtopic []ent.Interceptor
	}
)
