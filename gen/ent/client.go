// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Akash-sopho/email-extractor-agent/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/attachment"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/email"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/emailbody"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quote"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteitem"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteversion"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/thread"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/vendor"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Attachment is the client for interacting with the Attachment builders.
	Attachment *AttachmentClient
	// Email is the client for interacting with the Email builders.
	Email *EmailClient
	// EmailBody is the client for interacting with the EmailBody builders.
	EmailBody *EmailBodyClient
	// Quote is the client for interacting with the Quote builders.
	Quote *QuoteClient
	// QuoteItem is the client for interacting with the QuoteItem builders.
	QuoteItem *QuoteItemClient
	// QuoteVersion is the client for interacting with the QuoteVersion builders.
	QuoteVersion *QuoteVersionClient
	// Thread is the client for interacting with the Thread builders.
	Thread *ThreadClient
	// Vendor is the client for interacting with the Vendor builders.
	Vendor *VendorClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Attachment = NewAttachmentClient(c.config)
	c.Email = NewEmailClient(c.config)
	c.EmailBody = NewEmailBodyClient(c.config)
	c.Quote = NewQuoteClient(c.config)
	c.QuoteItem = NewQuoteItemClient(c.config)
	c.QuoteVersion = NewQuoteVersionClient(c.config)
	c.Thread = NewThreadClient(c.config)
	c.Vendor = NewVendorClient(c.config)
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
		Attachment:   NewAttachmentClient(cfg),
		Email:        NewEmailClient(cfg),
		EmailBody:    NewEmailBodyClient(cfg),
		Quote:        NewQuoteClient(cfg),
		QuoteItem:    NewQuoteItemClient(cfg),
		QuoteVersion: NewQuoteVersionClient(cfg),
		Thread:       NewThreadClient(cfg),
		Vendor:       NewVendorClient(cfg),
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
		Attachment:   NewAttachmentClient(cfg),
		Email:        NewEmailClient(cfg),
		EmailBody:    NewEmailBodyClient(cfg),
		Quote:        NewQuoteClient(cfg),
		QuoteItem:    NewQuoteItemClient(cfg),
		QuoteVersion: NewQuoteVersionClient(cfg),
		Thread:       NewThreadClient(cfg),
		Vendor:       NewVendorClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Attachment.
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
		c.Attachment, c.Email, c.EmailBody, c.Quote, c.QuoteItem, c.QuoteVersion,
		c.Thread, c.Vendor,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Attachment, c.Email, c.EmailBody, c.Quote, c.QuoteItem, c.QuoteVersion,
		c.Thread, c.Vendor,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttachmentMutation:
		return c.Attachment.mutate(ctx, m)
	case *EmailMutation:
		return c.Email.mutate(ctx, m)
	case *EmailBodyMutation:
		return c.EmailBody.mutate(ctx, m)
	case *QuoteMutation:
		return c.Quote.mutate(ctx, m)
	case *QuoteItemMutation:
		return c.QuoteItem.mutate(ctx, m)
	case *QuoteVersionMutation:
		return c.QuoteVersion.mutate(ctx, m)
	case *ThreadMutation:
		return c.Thread.mutate(ctx, m)
	case *VendorMutation:
		return c.Vendor.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttachmentClient is a client for the Attachment schema.
type AttachmentClient struct {
	config
}

// NewAttachmentClient returns a client for the Attachment from the given config.
func NewAttachmentClient(c config) *AttachmentClient {
	return &AttachmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attachment.Hooks(f(g(h())))`.
func (c *AttachmentClient) Use(hooks ...Hook) {
	c.hooks.Attachment = append(c.hooks.Attachment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attachment.Intercept(f(g(h())))`.
func (c *AttachmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Attachment = append(c.inters.Attachment, interceptors...)
}

// Create returns a builder for creating a Attachment entity.
func (c *AttachmentClient) Create() *AttachmentCreate {
	mutation := newAttachmentMutation(c.config, OpCreate)
	return &AttachmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Attachment entities.
func (c *AttachmentClient) CreateBulk(builders ...*AttachmentCreate) *AttachmentCreateBulk {
	return &AttachmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttachmentClient) MapCreateBulk(slice any, setFunc func(*AttachmentCreate, int)) *AttachmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttachmentCreateBulk{err: fmt.Errorf("calling to AttachmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttachmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttachmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Attachment.
func (c *AttachmentClient) Update() *AttachmentUpdate {
	mutation := newAttachmentMutation(c.config, OpUpdate)
	return &AttachmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttachmentClient) UpdateOne(_m *Attachment) *AttachmentUpdateOne {
	mutation := newAttachmentMutation(c.config, OpUpdateOne, withAttachment(_m))
	return &AttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttachmentClient) UpdateOneID(id uuid.UUID) *AttachmentUpdateOne {
	mutation := newAttachmentMutation(c.config, OpUpdateOne, withAttachmentID(id))
	return &AttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Attachment.
func (c *AttachmentClient) Delete() *AttachmentDelete {
	mutation := newAttachmentMutation(c.config, OpDelete)
	return &AttachmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttachmentClient) DeleteOne(_m *Attachment) *AttachmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttachmentClient) DeleteOneID(id uuid.UUID) *AttachmentDeleteOne {
	builder := c.Delete().Where(attachment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttachmentDeleteOne{builder}
}

// Query returns a query builder for Attachment.
func (c *AttachmentClient) Query() *AttachmentQuery {
	return &AttachmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttachment},
		inters: c.Interceptors(),
	}
}

// Get returns a Attachment entity by its id.
func (c *AttachmentClient) Get(ctx context.Context, id uuid.UUID) (*Attachment, error) {
	return c.Query().Where(attachment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttachmentClient) GetX(ctx context.Context, id uuid.UUID) *Attachment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEmail queries the email edge of a Attachment.
func (c *AttachmentClient) QueryEmail(_m *Attachment) *EmailQuery {
	query := (&EmailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attachment.Table, attachment.FieldID, id),
			sqlgraph.To(email.Table, email.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, attachment.EmailTable, attachment.EmailColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AttachmentClient) Hooks() []Hook {
	return c.hooks.Attachment
}

// Interceptors returns the client interceptors.
func (c *AttachmentClient) Interceptors() []Interceptor {
	return c.inters.Attachment
}

func (c *AttachmentClient) mutate(ctx context.Context, m *AttachmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttachmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttachmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttachmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Attachment mutation op: %q", m.Op())
	}
}

// EmailClient is a client for the Email schema.
type EmailClient struct {
	config
}

// NewEmailClient returns a client for the Email from the given config.
func NewEmailClient(c config) *EmailClient {
	return &EmailClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `email.Hooks(f(g(h())))`.
func (c *EmailClient) Use(hooks ...Hook) {
	c.hooks.Email = append(c.hooks.Email, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `email.Intercept(f(g(h())))`.
func (c *EmailClient) Intercept(interceptors ...Interceptor) {
	c.inters.Email = append(c.inters.Email, interceptors...)
}

// Create returns a builder for creating a Email entity.
func (c *EmailClient) Create() *EmailCreate {
	mutation := newEmailMutation(c.config, OpCreate)
	return &EmailCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Email entities.
func (c *EmailClient) CreateBulk(builders ...*EmailCreate) *EmailCreateBulk {
	return &EmailCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmailClient) MapCreateBulk(slice any, setFunc func(*EmailCreate, int)) *EmailCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmailCreateBulk{err: fmt.Errorf("calling to EmailClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmailCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmailCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Email.
func (c *EmailClient) Update() *EmailUpdate {
	mutation := newEmailMutation(c.config, OpUpdate)
	return &EmailUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmailClient) UpdateOne(_m *Email) *EmailUpdateOne {
	mutation := newEmailMutation(c.config, OpUpdateOne, withEmail(_m))
	return &EmailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmailClient) UpdateOneID(id uuid.UUID) *EmailUpdateOne {
	mutation := newEmailMutation(c.config, OpUpdateOne, withEmailID(id))
	return &EmailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Email.
func (c *EmailClient) Delete() *EmailDelete {
	mutation := newEmailMutation(c.config, OpDelete)
	return &EmailDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmailClient) DeleteOne(_m *Email) *EmailDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmailClient) DeleteOneID(id uuid.UUID) *EmailDeleteOne {
	builder := c.Delete().Where(email.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmailDeleteOne{builder}
}

// Query returns a query builder for Email.
func (c *EmailClient) Query() *EmailQuery {
	return &EmailQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmail},
		inters: c.Interceptors(),
	}
}

// Get returns a Email entity by its id.
func (c *EmailClient) Get(ctx context.Context, id uuid.UUID) (*Email, error) {
	return c.Query().Where(email.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmailClient) GetX(ctx context.Context, id uuid.UUID) *Email {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryThread queries the thread edge of a Email.
func (c *EmailClient) QueryThread(_m *Email) *ThreadQuery {
	query := (&ThreadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(email.Table, email.FieldID, id),
			sqlgraph.To(thread.Table, thread.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, email.ThreadTable, email.ThreadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBodies queries the bodies edge of a Email.
func (c *EmailClient) QueryBodies(_m *Email) *EmailBodyQuery {
	query := (&EmailBodyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(email.Table, email.FieldID, id),
			sqlgraph.To(emailbody.Table, emailbody.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, email.BodiesTable, email.BodiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttachments queries the attachments edge of a Email.
func (c *EmailClient) QueryAttachments(_m *Email) *AttachmentQuery {
	query := (&AttachmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(email.Table, email.FieldID, id),
			sqlgraph.To(attachment.Table, attachment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, email.AttachmentsTable, email.AttachmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuoteVersions queries the quote_versions edge of a Email.
func (c *EmailClient) QueryQuoteVersions(_m *Email) *QuoteVersionQuery {
	query := (&QuoteVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(email.Table, email.FieldID, id),
			sqlgraph.To(quoteversion.Table, quoteversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, email.QuoteVersionsTable, email.QuoteVersionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnchoredQuotes queries the anchored_quotes edge of a Email.
func (c *EmailClient) QueryAnchoredQuotes(_m *Email) *QuoteQuery {
	query := (&QuoteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(email.Table, email.FieldID, id),
			sqlgraph.To(quote.Table, quote.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, email.AnchoredQuotesTable, email.AnchoredQuotesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EmailClient) Hooks() []Hook {
	return c.hooks.Email
}

// Interceptors returns the client interceptors.
func (c *EmailClient) Interceptors() []Interceptor {
	return c.inters.Email
}

func (c *EmailClient) mutate(ctx context.Context, m *EmailMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmailCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmailUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmailDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Email mutation op: %q", m.Op())
	}
}

// EmailBodyClient is a client for the EmailBody schema.
type EmailBodyClient struct {
	config
}

// NewEmailBodyClient returns a client for the EmailBody from the given config.
func NewEmailBodyClient(c config) *EmailBodyClient {
	return &EmailBodyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `emailbody.Hooks(f(g(h())))`.
func (c *EmailBodyClient) Use(hooks ...Hook) {
	c.hooks.EmailBody = append(c.hooks.EmailBody, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `emailbody.Intercept(f(g(h())))`.
func (c *EmailBodyClient) Intercept(interceptors ...Interceptor) {
	c.inters.EmailBody = append(c.inters.EmailBody, interceptors...)
}

// Create returns a builder for creating a EmailBody entity.
func (c *EmailBodyClient) Create() *EmailBodyCreate {
	mutation := newEmailBodyMutation(c.config, OpCreate)
	return &EmailBodyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EmailBody entities.
func (c *EmailBodyClient) CreateBulk(builders ...*EmailBodyCreate) *EmailBodyCreateBulk {
	return &EmailBodyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmailBodyClient) MapCreateBulk(slice any, setFunc func(*EmailBodyCreate, int)) *EmailBodyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmailBodyCreateBulk{err: fmt.Errorf("calling to EmailBodyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmailBodyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmailBodyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EmailBody.
func (c *EmailBodyClient) Update() *EmailBodyUpdate {
	mutation := newEmailBodyMutation(c.config, OpUpdate)
	return &EmailBodyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmailBodyClient) UpdateOne(_m *EmailBody) *EmailBodyUpdateOne {
	mutation := newEmailBodyMutation(c.config, OpUpdateOne, withEmailBody(_m))
	return &EmailBodyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmailBodyClient) UpdateOneID(id uuid.UUID) *EmailBodyUpdateOne {
	mutation := newEmailBodyMutation(c.config, OpUpdateOne, withEmailBodyID(id))
	return &EmailBodyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EmailBody.
func (c *EmailBodyClient) Delete() *EmailBodyDelete {
	mutation := newEmailBodyMutation(c.config, OpDelete)
	return &EmailBodyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmailBodyClient) DeleteOne(_m *EmailBody) *EmailBodyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmailBodyClient) DeleteOneID(id uuid.UUID) *EmailBodyDeleteOne {
	builder := c.Delete().Where(emailbody.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmailBodyDeleteOne{builder}
}

// Query returns a query builder for EmailBody.
func (c *EmailBodyClient) Query() *EmailBodyQuery {
	return &EmailBodyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmailBody},
		inters: c.Interceptors(),
	}
}

// Get returns a EmailBody entity by its id.
func (c *EmailBodyClient) Get(ctx context.Context, id uuid.UUID) (*EmailBody, error) {
	return c.Query().Where(emailbody.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmailBodyClient) GetX(ctx context.Context, id uuid.UUID) *EmailBody {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEmail queries the email edge of a EmailBody.
func (c *EmailBodyClient) QueryEmail(_m *EmailBody) *EmailQuery {
	query := (&EmailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(emailbody.Table, emailbody.FieldID, id),
			sqlgraph.To(email.Table, email.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, emailbody.EmailTable, emailbody.EmailColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EmailBodyClient) Hooks() []Hook {
	return c.hooks.EmailBody
}

// Interceptors returns the client interceptors.
func (c *EmailBodyClient) Interceptors() []Interceptor {
	return c.inters.EmailBody
}

func (c *EmailBodyClient) mutate(ctx context.Context, m *EmailBodyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmailBodyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmailBodyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmailBodyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmailBodyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EmailBody mutation op: %q", m.Op())
	}
}

// QuoteClient is a client for the Quote schema.
type QuoteClient struct {
	config
}

// NewQuoteClient returns a client for the Quote from the given config.
func NewQuoteClient(c config) *QuoteClient {
	return &QuoteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quote.Hooks(f(g(h())))`.
func (c *QuoteClient) Use(hooks ...Hook) {
	c.hooks.Quote = append(c.hooks.Quote, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quote.Intercept(f(g(h())))`.
func (c *QuoteClient) Intercept(interceptors ...Interceptor) {
	c.inters.Quote = append(c.inters.Quote, interceptors...)
}

// Create returns a builder for creating a Quote entity.
func (c *QuoteClient) Create() *QuoteCreate {
	mutation := newQuoteMutation(c.config, OpCreate)
	return &QuoteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Quote entities.
func (c *QuoteClient) CreateBulk(builders ...*QuoteCreate) *QuoteCreateBulk {
	return &QuoteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuoteClient) MapCreateBulk(slice any, setFunc func(*QuoteCreate, int)) *QuoteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuoteCreateBulk{err: fmt.Errorf("calling to QuoteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuoteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuoteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Quote.
func (c *QuoteClient) Update() *QuoteUpdate {
	mutation := newQuoteMutation(c.config, OpUpdate)
	return &QuoteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuoteClient) UpdateOne(_m *Quote) *QuoteUpdateOne {
	mutation := newQuoteMutation(c.config, OpUpdateOne, withQuote(_m))
	return &QuoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuoteClient) UpdateOneID(id uuid.UUID) *QuoteUpdateOne {
	mutation := newQuoteMutation(c.config, OpUpdateOne, withQuoteID(id))
	return &QuoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Quote.
func (c *QuoteClient) Delete() *QuoteDelete {
	mutation := newQuoteMutation(c.config, OpDelete)
	return &QuoteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuoteClient) DeleteOne(_m *Quote) *QuoteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuoteClient) DeleteOneID(id uuid.UUID) *QuoteDeleteOne {
	builder := c.Delete().Where(quote.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuoteDeleteOne{builder}
}

// Query returns a query builder for Quote.
func (c *QuoteClient) Query() *QuoteQuery {
	return &QuoteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuote},
		inters: c.Interceptors(),
	}
}

// Get returns a Quote entity by its id.
func (c *QuoteClient) Get(ctx context.Context, id uuid.UUID) (*Quote, error) {
	return c.Query().Where(quote.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuoteClient) GetX(ctx context.Context, id uuid.UUID) *Quote {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryThread queries the thread edge of a Quote.
func (c *QuoteClient) QueryThread(_m *Quote) *ThreadQuery {
	query := (&ThreadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(quote.Table, quote.FieldID, id),
			sqlgraph.To(thread.Table, thread.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quote.ThreadTable, quote.ThreadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVendor queries the vendor edge of a Quote.
func (c *QuoteClient) QueryVendor(_m *Quote) *VendorQuery {
	query := (&VendorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(quote.Table, quote.FieldID, id),
			sqlgraph.To(vendor.Table, vendor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quote.VendorTable, quote.VendorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnchorEmail queries the anchor_email edge of a Quote.
func (c *QuoteClient) QueryAnchorEmail(_m *Quote) *EmailQuery {
	query := (&EmailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(quote.Table, quote.FieldID, id),
			sqlgraph.To(email.Table, email.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quote.AnchorEmailTable, quote.AnchorEmailColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVersions queries the versions edge of a Quote.
func (c *QuoteClient) QueryVersions(_m *Quote) *QuoteVersionQuery {
	query := (&QuoteVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(quote.Table, quote.FieldID, id),
			sqlgraph.To(quoteversion.Table, quoteversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, quote.VersionsTable, quote.VersionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuoteClient) Hooks() []Hook {
	return c.hooks.Quote
}

// Interceptors returns the client interceptors.
func (c *QuoteClient) Interceptors() []Interceptor {
	return c.inters.Quote
}

func (c *QuoteClient) mutate(ctx context.Context, m *QuoteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuoteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuoteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuoteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Quote mutation op: %q", m.Op())
	}
}

// QuoteItemClient is a client for the QuoteItem schema.
type QuoteItemClient struct {
	config
}

// NewQuoteItemClient returns a client for the QuoteItem from the given config.
func NewQuoteItemClient(c config) *QuoteItemClient {
	return &QuoteItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quoteitem.Hooks(f(g(h())))`.
func (c *QuoteItemClient) Use(hooks ...Hook) {
	c.hooks.QuoteItem = append(c.hooks.QuoteItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quoteitem.Intercept(f(g(h())))`.
func (c *QuoteItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuoteItem = append(c.inters.QuoteItem, interceptors...)
}

// Create returns a builder for creating a QuoteItem entity.
func (c *QuoteItemClient) Create() *QuoteItemCreate {
	mutation := newQuoteItemMutation(c.config, OpCreate)
	return &QuoteItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuoteItem entities.
func (c *QuoteItemClient) CreateBulk(builders ...*QuoteItemCreate) *QuoteItemCreateBulk {
	return &QuoteItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuoteItemClient) MapCreateBulk(slice any, setFunc func(*QuoteItemCreate, int)) *QuoteItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuoteItemCreateBulk{err: fmt.Errorf("calling to QuoteItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuoteItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuoteItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuoteItem.
func (c *QuoteItemClient) Update() *QuoteItemUpdate {
	mutation := newQuoteItemMutation(c.config, OpUpdate)
	return &QuoteItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuoteItemClient) UpdateOne(_m *QuoteItem) *QuoteItemUpdateOne {
	mutation := newQuoteItemMutation(c.config, OpUpdateOne, withQuoteItem(_m))
	return &QuoteItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuoteItemClient) UpdateOneID(id uuid.UUID) *QuoteItemUpdateOne {
	mutation := newQuoteItemMutation(c.config, OpUpdateOne, withQuoteItemID(id))
	return &QuoteItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuoteItem.
func (c *QuoteItemClient) Delete() *QuoteItemDelete {
	mutation := newQuoteItemMutation(c.config, OpDelete)
	return &QuoteItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuoteItemClient) DeleteOne(_m *QuoteItem) *QuoteItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuoteItemClient) DeleteOneID(id uuid.UUID) *QuoteItemDeleteOne {
	builder := c.Delete().Where(quoteitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuoteItemDeleteOne{builder}
}

// Query returns a query builder for QuoteItem.
func (c *QuoteItemClient) Query() *QuoteItemQuery {
	return &QuoteItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuoteItem},
		inters: c.Interceptors(),
	}
}

// Get returns a QuoteItem entity by its id.
func (c *QuoteItemClient) Get(ctx context.Context, id uuid.UUID) (*QuoteItem, error) {
	return c.Query().Where(quoteitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuoteItemClient) GetX(ctx context.Context, id uuid.UUID) *QuoteItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVersion queries the version edge of a QuoteItem.
func (c *QuoteItemClient) QueryVersion(_m *QuoteItem) *QuoteVersionQuery {
	query := (&QuoteVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(quoteitem.Table, quoteitem.FieldID, id),
			sqlgraph.To(quoteversion.Table, quoteversion.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quoteitem.VersionTable, quoteitem.VersionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuoteItemClient) Hooks() []Hook {
	return c.hooks.QuoteItem
}

// Interceptors returns the client interceptors.
func (c *QuoteItemClient) Interceptors() []Interceptor {
	return c.inters.QuoteItem
}

func (c *QuoteItemClient) mutate(ctx context.Context, m *QuoteItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuoteItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuoteItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuoteItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuoteItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuoteItem mutation op: %q", m.Op())
	}
}

// QuoteVersionClient is a client for the QuoteVersion schema.
type QuoteVersionClient struct {
	config
}

// NewQuoteVersionClient returns a client for the QuoteVersion from the given config.
func NewQuoteVersionClient(c config) *QuoteVersionClient {
	return &QuoteVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quoteversion.Hooks(f(g(h())))`.
func (c *QuoteVersionClient) Use(hooks ...Hook) {
	c.hooks.QuoteVersion = append(c.hooks.QuoteVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quoteversion.Intercept(f(g(h())))`.
func (c *QuoteVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuoteVersion = append(c.inters.QuoteVersion, interceptors...)
}

// Create returns a builder for creating a QuoteVersion entity.
func (c *QuoteVersionClient) Create() *QuoteVersionCreate {
	mutation := newQuoteVersionMutation(c.config, OpCreate)
	return &QuoteVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuoteVersion entities.
func (c *QuoteVersionClient) CreateBulk(builders ...*QuoteVersionCreate) *QuoteVersionCreateBulk {
	return &QuoteVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuoteVersionClient) MapCreateBulk(slice any, setFunc func(*QuoteVersionCreate, int)) *QuoteVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuoteVersionCreateBulk{err: fmt.Errorf("calling to QuoteVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuoteVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuoteVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuoteVersion.
func (c *QuoteVersionClient) Update() *QuoteVersionUpdate {
	mutation := newQuoteVersionMutation(c.config, OpUpdate)
	return &QuoteVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuoteVersionClient) UpdateOne(_m *QuoteVersion) *QuoteVersionUpdateOne {
	mutation := newQuoteVersionMutation(c.config, OpUpdateOne, withQuoteVersion(_m))
	return &QuoteVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuoteVersionClient) UpdateOneID(id uuid.UUID) *QuoteVersionUpdateOne {
	mutation := newQuoteVersionMutation(c.config, OpUpdateOne, withQuoteVersionID(id))
	return &QuoteVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuoteVersion.
func (c *QuoteVersionClient) Delete() *QuoteVersionDelete {
	mutation := newQuoteVersionMutation(c.config, OpDelete)
	return &QuoteVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuoteVersionClient) DeleteOne(_m *QuoteVersion) *QuoteVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuoteVersionClient) DeleteOneID(id uuid.UUID) *QuoteVersionDeleteOne {
	builder := c.Delete().Where(quoteversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuoteVersionDeleteOne{builder}
}

// Query returns a query builder for QuoteVersion.
func (c *QuoteVersionClient) Query() *QuoteVersionQuery {
	return &QuoteVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuoteVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a QuoteVersion entity by its id.
func (c *QuoteVersionClient) Get(ctx context.Context, id uuid.UUID) (*QuoteVersion, error) {
	return c.Query().Where(quoteversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuoteVersionClient) GetX(ctx context.Context, id uuid.UUID) *QuoteVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuote queries the quote edge of a QuoteVersion.
func (c *QuoteVersionClient) QueryQuote(_m *QuoteVersion) *QuoteQuery {
	query := (&QuoteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(quoteversion.Table, quoteversion.FieldID, id),
			sqlgraph.To(quote.Table, quote.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quoteversion.QuoteTable, quoteversion.QuoteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySourceEmail queries the source_email edge of a QuoteVersion.
func (c *QuoteVersionClient) QuerySourceEmail(_m *QuoteVersion) *EmailQuery {
	query := (&EmailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(quoteversion.Table, quoteversion.FieldID, id),
			sqlgraph.To(email.Table, email.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quoteversion.SourceEmailTable, quoteversion.SourceEmailColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItems queries the items edge of a QuoteVersion.
func (c *QuoteVersionClient) QueryItems(_m *QuoteVersion) *QuoteItemQuery {
	query := (&QuoteItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(quoteversion.Table, quoteversion.FieldID, id),
			sqlgraph.To(quoteitem.Table, quoteitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, quoteversion.ItemsTable, quoteversion.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuoteVersionClient) Hooks() []Hook {
	return c.hooks.QuoteVersion
}

// Interceptors returns the client interceptors.
func (c *QuoteVersionClient) Interceptors() []Interceptor {
	return c.inters.QuoteVersion
}

func (c *QuoteVersionClient) mutate(ctx context.Context, m *QuoteVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuoteVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuoteVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuoteVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuoteVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuoteVersion mutation op: %q", m.Op())
	}
}

// ThreadClient is a client for the Thread schema.
type ThreadClient struct {
	config
}

// NewThreadClient returns a client for the Thread from the given config.
func NewThreadClient(c config) *ThreadClient {
	return &ThreadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `thread.Hooks(f(g(h())))`.
func (c *ThreadClient) Use(hooks ...Hook) {
	c.hooks.Thread = append(c.hooks.Thread, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `thread.Intercept(f(g(h())))`.
func (c *ThreadClient) Intercept(interceptors ...Interceptor) {
	c.inters.Thread = append(c.inters.Thread, interceptors...)
}

// Create returns a builder for creating a Thread entity.
func (c *ThreadClient) Create() *ThreadCreate {
	mutation := newThreadMutation(c.config, OpCreate)
	return &ThreadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Thread entities.
func (c *ThreadClient) CreateBulk(builders ...*ThreadCreate) *ThreadCreateBulk {
	return &ThreadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ThreadClient) MapCreateBulk(slice any, setFunc func(*ThreadCreate, int)) *ThreadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ThreadCreateBulk{err: fmt.Errorf("calling to ThreadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ThreadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ThreadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Thread.
func (c *ThreadClient) Update() *ThreadUpdate {
	mutation := newThreadMutation(c.config, OpUpdate)
	return &ThreadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ThreadClient) UpdateOne(_m *Thread) *ThreadUpdateOne {
	mutation := newThreadMutation(c.config, OpUpdateOne, withThread(_m))
	return &ThreadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ThreadClient) UpdateOneID(id uuid.UUID) *ThreadUpdateOne {
	mutation := newThreadMutation(c.config, OpUpdateOne, withThreadID(id))
	return &ThreadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Thread.
func (c *ThreadClient) Delete() *ThreadDelete {
	mutation := newThreadMutation(c.config, OpDelete)
	return &ThreadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ThreadClient) DeleteOne(_m *Thread) *ThreadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ThreadClient) DeleteOneID(id uuid.UUID) *ThreadDeleteOne {
	builder := c.Delete().Where(thread.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ThreadDeleteOne{builder}
}

// Query returns a query builder for Thread.
func (c *ThreadClient) Query() *ThreadQuery {
	return &ThreadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeThread},
		inters: c.Interceptors(),
	}
}

// Get returns a Thread entity by its id.
func (c *ThreadClient) Get(ctx context.Context, id uuid.UUID) (*Thread, error) {
	return c.Query().Where(thread.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ThreadClient) GetX(ctx context.Context, id uuid.UUID) *Thread {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEmails queries the emails edge of a Thread.
func (c *ThreadClient) QueryEmails(_m *Thread) *EmailQuery {
	query := (&EmailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(thread.Table, thread.FieldID, id),
			sqlgraph.To(email.Table, email.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, thread.EmailsTable, thread.EmailsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuotes queries the quotes edge of a Thread.
func (c *ThreadClient) QueryQuotes(_m *Thread) *QuoteQuery {
	query := (&QuoteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(thread.Table, thread.FieldID, id),
			sqlgraph.To(quote.Table, quote.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, thread.QuotesTable, thread.QuotesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ThreadClient) Hooks() []Hook {
	return c.hooks.Thread
}

// Interceptors returns the client interceptors.
func (c *ThreadClient) Interceptors() []Interceptor {
	return c.inters.Thread
}

func (c *ThreadClient) mutate(ctx context.Context, m *ThreadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ThreadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ThreadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ThreadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ThreadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Thread mutation op: %q", m.Op())
	}
}

// VendorClient is a client for the Vendor schema.
type VendorClient struct {
	config
}

// NewVendorClient returns a client for the Vendor from the given config.
func NewVendorClient(c config) *VendorClient {
	return &VendorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vendor.Hooks(f(g(h())))`.
func (c *VendorClient) Use(hooks ...Hook) {
	c.hooks.Vendor = append(c.hooks.Vendor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vendor.Intercept(f(g(h())))`.
func (c *VendorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Vendor = append(c.inters.Vendor, interceptors...)
}

// Create returns a builder for creating a Vendor entity.
func (c *VendorClient) Create() *VendorCreate {
	mutation := newVendorMutation(c.config, OpCreate)
	return &VendorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Vendor entities.
func (c *VendorClient) CreateBulk(builders ...*VendorCreate) *VendorCreateBulk {
	return &VendorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VendorClient) MapCreateBulk(slice any, setFunc func(*VendorCreate, int)) *VendorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VendorCreateBulk{err: fmt.Errorf("calling to VendorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VendorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VendorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Vendor.
func (c *VendorClient) Update() *VendorUpdate {
	mutation := newVendorMutation(c.config, OpUpdate)
	return &VendorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VendorClient) UpdateOne(_m *Vendor) *VendorUpdateOne {
	mutation := newVendorMutation(c.config, OpUpdateOne, withVendor(_m))
	return &VendorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VendorClient) UpdateOneID(id uuid.UUID) *VendorUpdateOne {
	mutation := newVendorMutation(c.config, OpUpdateOne, withVendorID(id))
	return &VendorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Vendor.
func (c *VendorClient) Delete() *VendorDelete {
	mutation := newVendorMutation(c.config, OpDelete)
	return &VendorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VendorClient) DeleteOne(_m *Vendor) *VendorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VendorClient) DeleteOneID(id uuid.UUID) *VendorDeleteOne {
	builder := c.Delete().Where(vendor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VendorDeleteOne{builder}
}

// Query returns a query builder for Vendor.
func (c *VendorClient) Query() *VendorQuery {
	return &VendorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVendor},
		inters: c.Interceptors(),
	}
}

// Get returns a Vendor entity by its id.
func (c *VendorClient) Get(ctx context.Context, id uuid.UUID) (*Vendor, error) {
	return c.Query().Where(vendor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VendorClient) GetX(ctx context.Context, id uuid.UUID) *Vendor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuotes queries the quotes edge of a Vendor.
func (c *VendorClient) QueryQuotes(_m *Vendor) *QuoteQuery {
	query := (&QuoteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(vendor.Table, vendor.FieldID, id),
			sqlgraph.To(quote.Table, quote.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, vendor.QuotesTable, vendor.QuotesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VendorClient) Hooks() []Hook {
	return c.hooks.Vendor
}

// Interceptors returns the client interceptors.
func (c *VendorClient) Interceptors() []Interceptor {
	return c.inters.Vendor
}

func (c *VendorClient) mutate(ctx context.Context, m *VendorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VendorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VendorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VendorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VendorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Vendor mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Attachment, Email, EmailBody, Quote, QuoteItem, QuoteVersion, Thread,
		Vendor []ent.Hook
	}
	inters struct {
		Attachment, Email, EmailBody, Quote, QuoteItem, QuoteVersion, Thread,
		Vendor []ent.Interceptor
	}
)
