// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/vivwell/api/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vivwell/api/ent/lead"
	"github.com/vivwell/api/ent/leadstatushistory"
	"github.com/vivwell/api/ent/notificationendpoint"
	"github.com/vivwell/api/ent/proposal"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Lead is the client for interacting with the Lead builders.
	Lead *LeadClient
	// LeadStatusHistory is the client for interacting with the LeadStatusHistory builders.
	LeadStatusHistory *LeadStatusHistoryClient
	// NotificationEndpoint is the client for interacting with the NotificationEndpoint builders.
	NotificationEndpoint *NotificationEndpointClient
	// Proposal is the client for interacting with the Proposal builders.
	Proposal *ProposalClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Lead = NewLeadClient(c.config)
	c.LeadStatusHistory = NewLeadStatusHistoryClient(c.config)
	c.NotificationEndpoint = NewNotificationEndpointClient(c.config)
	c.Proposal = NewProposalClient(c.config)
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
		ctx:                  ctx,
		config:               cfg,
		Lead:                 NewLeadClient(cfg),
		LeadStatusHistory:    NewLeadStatusHistoryClient(cfg),
		NotificationEndpoint: NewNotificationEndpointClient(cfg),
		Proposal:             NewProposalClient(cfg),
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
		ctx:                  ctx,
		config:               cfg,
		Lead:                 NewLeadClient(cfg),
		LeadStatusHistory:    NewLeadStatusHistoryClient(cfg),
		NotificationEndpoint: NewNotificationEndpointClient(cfg),
		Proposal:             NewProposalClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Lead.
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
	c.Lead.Use(hooks...)
	c.LeadStatusHistory.Use(hooks...)
	c.NotificationEndpoint.Use(hooks...)
	c.Proposal.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Lead.Intercept(interceptors...)
	c.LeadStatusHistory.Intercept(interceptors...)
	c.NotificationEndpoint.Intercept(interceptors...)
	c.Proposal.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LeadMutation:
		return c.Lead.mutate(ctx, m)
	case *LeadStatusHistoryMutation:
		return c.LeadStatusHistory.mutate(ctx, m)
	case *NotificationEndpointMutation:
		return c.NotificationEndpoint.mutate(ctx, m)
	case *ProposalMutation:
		return c.Proposal.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LeadClient is a client for the Lead schema.
type LeadClient struct {
	config
}

// NewLeadClient returns a client for the Lead from the given config.
func NewLeadClient(c config) *LeadClient {
	return &LeadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lead.Hooks(f(g(h())))`.
func (c *LeadClient) Use(hooks ...Hook) {
	c.hooks.Lead = append(c.hooks.Lead, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lead.Intercept(f(g(h())))`.
func (c *LeadClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lead = append(c.inters.Lead, interceptors...)
}

// Create returns a builder for creating a Lead entity.
func (c *LeadClient) Create() *LeadCreate {
	mutation := newLeadMutation(c.config, OpCreate)
	return &LeadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lead entities.
func (c *LeadClient) CreateBulk(builders ...*LeadCreate) *LeadCreateBulk {
	return &LeadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LeadClient) MapCreateBulk(slice any, setFunc func(*LeadCreate, int)) *LeadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LeadCreateBulk{err: fmt.Errorf("calling to LeadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LeadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LeadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lead.
func (c *LeadClient) Update() *LeadUpdate {
	mutation := newLeadMutation(c.config, OpUpdate)
	return &LeadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LeadClient) UpdateOne(_m *Lead) *LeadUpdateOne {
	mutation := newLeadMutation(c.config, OpUpdateOne, withLead(_m))
	return &LeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LeadClient) UpdateOneID(id int) *LeadUpdateOne {
	mutation := newLeadMutation(c.config, OpUpdateOne, withLeadID(id))
	return &LeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lead.
func (c *LeadClient) Delete() *LeadDelete {
	mutation := newLeadMutation(c.config, OpDelete)
	return &LeadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LeadClient) DeleteOne(_m *Lead) *LeadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LeadClient) DeleteOneID(id int) *LeadDeleteOne {
	builder := c.Delete().Where(lead.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LeadDeleteOne{builder}
}

// Query returns a query builder for Lead.
func (c *LeadClient) Query() *LeadQuery {
	return &LeadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLead},
		inters: c.Interceptors(),
	}
}

// Get returns a Lead entity by its id.
func (c *LeadClient) Get(ctx context.Context, id int) (*Lead, error) {
	return c.Query().Where(lead.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LeadClient) GetX(ctx context.Context, id int) *Lead {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStatusHistory queries the status_history edge of a Lead.
func (c *LeadClient) QueryStatusHistory(_m *Lead) *LeadStatusHistoryQuery {
	query := (&LeadStatusHistoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lead.Table, lead.FieldID, id),
			sqlgraph.To(leadstatushistory.Table, leadstatushistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, lead.StatusHistoryTable, lead.StatusHistoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LeadClient) Hooks() []Hook {
	return c.hooks.Lead
}

// Interceptors returns the client interceptors.
func (c *LeadClient) Interceptors() []Interceptor {
	return c.inters.Lead
}

func (c *LeadClient) mutate(ctx context.Context, m *LeadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LeadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LeadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LeadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lead mutation op: %q", m.Op())
	}
}

// LeadStatusHistoryClient is a client for the LeadStatusHistory schema.
type LeadStatusHistoryClient struct {
	config
}

// NewLeadStatusHistoryClient returns a client for the LeadStatusHistory from the given config.
func NewLeadStatusHistoryClient(c config) *LeadStatusHistoryClient {
	return &LeadStatusHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `leadstatushistory.Hooks(f(g(h())))`.
func (c *LeadStatusHistoryClient) Use(hooks ...Hook) {
	c.hooks.LeadStatusHistory = append(c.hooks.LeadStatusHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `leadstatushistory.Intercept(f(g(h())))`.
func (c *LeadStatusHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.LeadStatusHistory = append(c.inters.LeadStatusHistory, interceptors...)
}

// Create returns a builder for creating a LeadStatusHistory entity.
func (c *LeadStatusHistoryClient) Create() *LeadStatusHistoryCreate {
	mutation := newLeadStatusHistoryMutation(c.config, OpCreate)
	return &LeadStatusHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LeadStatusHistory entities.
func (c *LeadStatusHistoryClient) CreateBulk(builders ...*LeadStatusHistoryCreate) *LeadStatusHistoryCreateBulk {
	return &LeadStatusHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LeadStatusHistoryClient) MapCreateBulk(slice any, setFunc func(*LeadStatusHistoryCreate, int)) *LeadStatusHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LeadStatusHistoryCreateBulk{err: fmt.Errorf("calling to LeadStatusHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LeadStatusHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LeadStatusHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LeadStatusHistory.
func (c *LeadStatusHistoryClient) Update() *LeadStatusHistoryUpdate {
	mutation := newLeadStatusHistoryMutation(c.config, OpUpdate)
	return &LeadStatusHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LeadStatusHistoryClient) UpdateOne(_m *LeadStatusHistory) *LeadStatusHistoryUpdateOne {
	mutation := newLeadStatusHistoryMutation(c.config, OpUpdateOne, withLeadStatusHistory(_m))
	return &LeadStatusHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LeadStatusHistoryClient) UpdateOneID(id int) *LeadStatusHistoryUpdateOne {
	mutation := newLeadStatusHistoryMutation(c.config, OpUpdateOne, withLeadStatusHistoryID(id))
	return &LeadStatusHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LeadStatusHistory.
func (c *LeadStatusHistoryClient) Delete() *LeadStatusHistoryDelete {
	mutation := newLeadStatusHistoryMutation(c.config, OpDelete)
	return &LeadStatusHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LeadStatusHistoryClient) DeleteOne(_m *LeadStatusHistory) *LeadStatusHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LeadStatusHistoryClient) DeleteOneID(id int) *LeadStatusHistoryDeleteOne {
	builder := c.Delete().Where(leadstatushistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LeadStatusHistoryDeleteOne{builder}
}

// Query returns a query builder for LeadStatusHistory.
func (c *LeadStatusHistoryClient) Query() *LeadStatusHistoryQuery {
	return &LeadStatusHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLeadStatusHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a LeadStatusHistory entity by its id.
func (c *LeadStatusHistoryClient) Get(ctx context.Context, id int) (*LeadStatusHistory, error) {
	return c.Query().Where(leadstatushistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LeadStatusHistoryClient) GetX(ctx context.Context, id int) *LeadStatusHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLead queries the lead edge of a LeadStatusHistory.
func (c *LeadStatusHistoryClient) QueryLead(_m *LeadStatusHistory) *LeadQuery {
	query := (&LeadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(leadstatushistory.Table, leadstatushistory.FieldID, id),
			sqlgraph.To(lead.Table, lead.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, leadstatushistory.LeadTable, leadstatushistory.LeadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LeadStatusHistoryClient) Hooks() []Hook {
	return c.hooks.LeadStatusHistory
}

// Interceptors returns the client interceptors.
func (c *LeadStatusHistoryClient) Interceptors() []Interceptor {
	return c.inters.LeadStatusHistory
}

func (c *LeadStatusHistoryClient) mutate(ctx context.Context, m *LeadStatusHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LeadStatusHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LeadStatusHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LeadStatusHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LeadStatusHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LeadStatusHistory mutation op: %q", m.Op())
	}
}

// NotificationEndpointClient is a client for the NotificationEndpoint schema.
type NotificationEndpointClient struct {
	config
}

// NewNotificationEndpointClient returns a client for the NotificationEndpoint from the given config.
func NewNotificationEndpointClient(c config) *NotificationEndpointClient {
	return &NotificationEndpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notificationendpoint.Hooks(f(g(h())))`.
func (c *NotificationEndpointClient) Use(hooks ...Hook) {
	c.hooks.NotificationEndpoint = append(c.hooks.NotificationEndpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notificationendpoint.Intercept(f(g(h())))`.
func (c *NotificationEndpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.NotificationEndpoint = append(c.inters.NotificationEndpoint, interceptors...)
}

// Create returns a builder for creating a NotificationEndpoint entity.
func (c *NotificationEndpointClient) Create() *NotificationEndpointCreate {
	mutation := newNotificationEndpointMutation(c.config, OpCreate)
	return &NotificationEndpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NotificationEndpoint entities.
func (c *NotificationEndpointClient) CreateBulk(builders ...*NotificationEndpointCreate) *NotificationEndpointCreateBulk {
	return &NotificationEndpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationEndpointClient) MapCreateBulk(slice any, setFunc func(*NotificationEndpointCreate, int)) *NotificationEndpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationEndpointCreateBulk{err: fmt.Errorf("calling to NotificationEndpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationEndpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationEndpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NotificationEndpoint.
func (c *NotificationEndpointClient) Update() *NotificationEndpointUpdate {
	mutation := newNotificationEndpointMutation(c.config, OpUpdate)
	return &NotificationEndpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationEndpointClient) UpdateOne(_m *NotificationEndpoint) *NotificationEndpointUpdateOne {
	mutation := newNotificationEndpointMutation(c.config, OpUpdateOne, withNotificationEndpoint(_m))
	return &NotificationEndpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationEndpointClient) UpdateOneID(id int) *NotificationEndpointUpdateOne {
	mutation := newNotificationEndpointMutation(c.config, OpUpdateOne, withNotificationEndpointID(id))
	return &NotificationEndpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NotificationEndpoint.
func (c *NotificationEndpointClient) Delete() *NotificationEndpointDelete {
	mutation := newNotificationEndpointMutation(c.config, OpDelete)
	return &NotificationEndpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationEndpointClient) DeleteOne(_m *NotificationEndpoint) *NotificationEndpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationEndpointClient) DeleteOneID(id int) *NotificationEndpointDeleteOne {
	builder := c.Delete().Where(notificationendpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationEndpointDeleteOne{builder}
}

// Query returns a query builder for NotificationEndpoint.
func (c *NotificationEndpointClient) Query() *NotificationEndpointQuery {
	return &NotificationEndpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotificationEndpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a NotificationEndpoint entity by its id.
func (c *NotificationEndpointClient) Get(ctx context.Context, id int) (*NotificationEndpoint, error) {
	return c.Query().Where(notificationendpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationEndpointClient) GetX(ctx context.Context, id int) *NotificationEndpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationEndpointClient) Hooks() []Hook {
	return c.hooks.NotificationEndpoint
}

// Interceptors returns the client interceptors.
func (c *NotificationEndpointClient) Interceptors() []Interceptor {
	return c.inters.NotificationEndpoint
}

func (c *NotificationEndpointClient) mutate(ctx context.Context, m *NotificationEndpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationEndpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationEndpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationEndpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationEndpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NotificationEndpoint mutation op: %q", m.Op())
	}
}

// ProposalClient is a client for the Proposal schema.
type ProposalClient struct {
	config
}

// NewProposalClient returns a client for the Proposal from the given config.
func NewProposalClient(c config) *ProposalClient {
	return &ProposalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `proposal.Hooks(f(g(h())))`.
func (c *ProposalClient) Use(hooks ...Hook) {
	c.hooks.Proposal = append(c.hooks.Proposal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `proposal.Intercept(f(g(h())))`.
func (c *ProposalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Proposal = append(c.inters.Proposal, interceptors...)
}

// Create returns a builder for creating a Proposal entity.
func (c *ProposalClient) Create() *ProposalCreate {
	mutation := newProposalMutation(c.config, OpCreate)
	return &ProposalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Proposal entities.
func (c *ProposalClient) CreateBulk(builders ...*ProposalCreate) *ProposalCreateBulk {
	return &ProposalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProposalClient) MapCreateBulk(slice any, setFunc func(*ProposalCreate, int)) *ProposalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProposalCreateBulk{err: fmt.Errorf("calling to ProposalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProposalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProposalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Proposal.
func (c *ProposalClient) Update() *ProposalUpdate {
	mutation := newProposalMutation(c.config, OpUpdate)
	return &ProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProposalClient) UpdateOne(_m *Proposal) *ProposalUpdateOne {
	mutation := newProposalMutation(c.config, OpUpdateOne, withProposal(_m))
	return &ProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProposalClient) UpdateOneID(id int) *ProposalUpdateOne {
	mutation := newProposalMutation(c.config, OpUpdateOne, withProposalID(id))
	return &ProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Proposal.
func (c *ProposalClient) Delete() *ProposalDelete {
	mutation := newProposalMutation(c.config, OpDelete)
	return &ProposalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProposalClient) DeleteOne(_m *Proposal) *ProposalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProposalClient) DeleteOneID(id int) *ProposalDeleteOne {
	builder := c.Delete().Where(proposal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProposalDeleteOne{builder}
}

// Query returns a query builder for Proposal.
func (c *ProposalClient) Query() *ProposalQuery {
	return &ProposalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProposal},
		inters: c.Interceptors(),
	}
}

// Get returns a Proposal entity by its id.
func (c *ProposalClient) Get(ctx context.Context, id int) (*Proposal, error) {
	return c.Query().Where(proposal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProposalClient) GetX(ctx context.Context, id int) *Proposal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProposalClient) Hooks() []Hook {
	return c.hooks.Proposal
}

// Interceptors returns the client interceptors.
func (c *ProposalClient) Interceptors() []Interceptor {
	return c.inters.Proposal
}

func (c *ProposalClient) mutate(ctx context.Context, m *ProposalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProposalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProposalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Proposal mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Lead, LeadStatusHistory, NotificationEndpoint, Proposal []ent.Hook
	}
	inters struct {
		Lead, LeadStatusHistory, NotificationEndpoint, Proposal []ent.Interceptor
	}
)
