// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/attachment"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/email"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/emailbody"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/predicate"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quote"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteversion"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/thread"
	"github.com/google/uuid"
)

// EmailQuery is the builder for querying Email entities.
type EmailQuery struct {
	config
	ctx                *QueryContext
	order              []email.OrderOption
	inters             []Interceptor
	predicates         []predicate.Email
	withThread         *ThreadQuery
	withBodies         *EmailBodyQuery
	withAttachments    *AttachmentQuery
	withQuoteVersions  *QuoteVersionQuery
	withAnchoredQuotes *QuoteQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the EmailQuery builder.
func (_q *EmailQuery) Where(ps ...predicate.Email) *EmailQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *EmailQuery) Limit(limit int) *EmailQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *EmailQuery) Offset(offset int) *EmailQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *EmailQuery) Unique(unique bool) *EmailQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *EmailQuery) Order(o ...email.OrderOption) *EmailQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryThread chains the current query on the "thread" edge.
func (_q *EmailQuery) QueryThread() *ThreadQuery {
	query := (&ThreadClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(email.Table, email.FieldID, selector),
			sqlgraph.To(thread.Table, thread.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, email.ThreadTable, email.ThreadColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBodies chains the current query on the "bodies" edge.
func (_q *EmailQuery) QueryBodies() *EmailBodyQuery {
	query := (&EmailBodyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(email.Table, email.FieldID, selector),
			sqlgraph.To(emailbody.Table, emailbody.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, email.BodiesTable, email.BodiesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAttachments chains the current query on the "attachments" edge.
func (_q *EmailQuery) QueryAttachments() *AttachmentQuery {
	query := (&AttachmentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(email.Table, email.FieldID, selector),
			sqlgraph.To(attachment.Table, attachment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, email.AttachmentsTable, email.AttachmentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryQuoteVersions chains the current query on the "quote_versions" edge.
func (_q *EmailQuery) QueryQuoteVersions() *QuoteVersionQuery {
	query := (&QuoteVersionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(email.Table, email.FieldID, selector),
			sqlgraph.To(quoteversion.Table, quoteversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, email.QuoteVersionsTable, email.QuoteVersionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAnchoredQuotes chains the current query on the "anchored_quotes" edge.
func (_q *EmailQuery) QueryAnchoredQuotes() *QuoteQuery {
	query := (&QuoteClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(email.Table, email.FieldID, selector),
			sqlgraph.To(quote.Table, quote.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, email.AnchoredQuotesTable, email.AnchoredQuotesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Email entity from the query.
// Returns a *NotFoundError when no Email was found.
func (_q *EmailQuery) First(ctx context.Context) (*Email, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{email.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *EmailQuery) FirstX(ctx context.Context) *Email {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Email ID from the query.
// Returns a *NotFoundError when no Email ID was found.
func (_q *EmailQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{email.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *EmailQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Email entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Email entity is found.
// Returns a *NotFoundError when no Email entities are found.
func (_q *EmailQuery) Only(ctx context.Context) (*Email, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{email.Label}
	default:
		return nil, &NotSingularError{email.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *EmailQuery) OnlyX(ctx context.Context) *Email {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Email ID in the query.
// Returns a *NotSingularError when more than one Email ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *EmailQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{email.Label}
	default:
		err = &NotSingularError{email.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *EmailQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Emails.
func (_q *EmailQuery) All(ctx context.Context) ([]*Email, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Email, *EmailQuery]()
	return withInterceptors[[]*Email](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *EmailQuery) AllX(ctx context.Context) []*Email {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Email IDs.
func (_q *EmailQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(email.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *EmailQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *EmailQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*EmailQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *EmailQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *EmailQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *EmailQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the EmailQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *EmailQuery) Clone() *EmailQuery {
	if _q == nil {
		return nil
	}
	return &EmailQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]email.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.Email{}, _q.predicates...),
		withThread:         _q.withThread.Clone(),
		withBodies:         _q.withBodies.Clone(),
		withAttachments:    _q.withAttachments.Clone(),
		withQuoteVersions:  _q.withQuoteVersions.Clone(),
		withAnchoredQuotes: _q.withAnchoredQuotes.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithThread tells the query-builder to eager-load the nodes that are connected to
// the "thread" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EmailQuery) WithThread(opts ...func(*ThreadQuery)) *EmailQuery {
	query := (&ThreadClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withThread = query
	return _q
}

// WithBodies tells the query-builder to eager-load the nodes that are connected to
// the "bodies" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EmailQuery) WithBodies(opts ...func(*EmailBodyQuery)) *EmailQuery {
	query := (&EmailBodyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBodies = query
	return _q
}

// WithAttachments tells the query-builder to eager-load the nodes that are connected to
// the "attachments" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EmailQuery) WithAttachments(opts ...func(*AttachmentQuery)) *EmailQuery {
	query := (&AttachmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAttachments = query
	return _q
}

// WithQuoteVersions tells the query-builder to eager-load the nodes that are connected to
// the "quote_versions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EmailQuery) WithQuoteVersions(opts ...func(*QuoteVersionQuery)) *EmailQuery {
	query := (&QuoteVersionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQuoteVersions = query
	return _q
}

// WithAnchoredQuotes tells the query-builder to eager-load the nodes that are connected to
// the "anchored_quotes" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EmailQuery) WithAnchoredQuotes(opts ...func(*QuoteQuery)) *EmailQuery {
	query := (&QuoteClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAnchoredQuotes = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ThreadID uuid.UUID `json:"thread_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Email.Query().
//		GroupBy(email.FieldThreadID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *EmailQuery) GroupBy(field string, fields ...string) *EmailGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &EmailGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = email.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ThreadID uuid.UUID `json:"thread_id,omitempty"`
//	}
//
//	client.Email.Query().
//		Select(email.FieldThreadID).
//		Scan(ctx, &v)
func (_q *EmailQuery) Select(fields ...string) *EmailSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &EmailSelect{EmailQuery: _q}
	sbuild.label = email.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a EmailSelect configured with the given aggregations.
func (_q *EmailQuery) Aggregate(fns ...AggregateFunc) *EmailSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *EmailQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !email.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *EmailQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Email, error) {
	var (
		nodes       = []*Email{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withThread != nil,
			_q.withBodies != nil,
			_q.withAttachments != nil,
			_q.withQuoteVersions != nil,
			_q.withAnchoredQuotes != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Email).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Email{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withThread; query != nil {
		if err := _q.loadThread(ctx, query, nodes, nil,
			func(n *Email, e *Thread) { n.Edges.Thread = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBodies; query != nil {
		if err := _q.loadBodies(ctx, query, nodes,
			func(n *Email) { n.Edges.Bodies = []*EmailBody{} },
			func(n *Email, e *EmailBody) { n.Edges.Bodies = append(n.Edges.Bodies, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAttachments; query != nil {
		if err := _q.loadAttachments(ctx, query, nodes,
			func(n *Email) { n.Edges.Attachments = []*Attachment{} },
			func(n *Email, e *Attachment) { n.Edges.Attachments = append(n.Edges.Attachments, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withQuoteVersions; query != nil {
		if err := _q.loadQuoteVersions(ctx, query, nodes,
			func(n *Email) { n.Edges.QuoteVersions = []*QuoteVersion{} },
			func(n *Email, e *QuoteVersion) { n.Edges.QuoteVersions = append(n.Edges.QuoteVersions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAnchoredQuotes; query != nil {
		if err := _q.loadAnchoredQuotes(ctx, query, nodes,
			func(n *Email) { n.Edges.AnchoredQuotes = []*Quote{} },
			func(n *Email, e *Quote) { n.Edges.AnchoredQuotes = append(n.Edges.AnchoredQuotes, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *EmailQuery) loadThread(ctx context.Context, query *ThreadQuery, nodes []*Email, init func(*Email), assign func(*Email, *Thread)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Email)
	for i := range nodes {
		fk := nodes[i].ThreadID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(thread.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "thread_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *EmailQuery) loadBodies(ctx context.Context, query *EmailBodyQuery, nodes []*Email, init func(*Email), assign func(*Email, *EmailBody)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Email)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(emailbody.FieldEmailID)
	}
	query.Where(predicate.EmailBody(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(email.BodiesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.EmailID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "email_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *EmailQuery) loadAttachments(ctx context.Context, query *AttachmentQuery, nodes []*Email, init func(*Email), assign func(*Email, *Attachment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Email)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(attachment.FieldEmailID)
	}
	query.Where(predicate.Attachment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(email.AttachmentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.EmailID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "email_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *EmailQuery) loadQuoteVersions(ctx context.Context, query *QuoteVersionQuery, nodes []*Email, init func(*Email), assign func(*Email, *QuoteVersion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Email)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(quoteversion.FieldSourceEmailID)
	}
	query.Where(predicate.QuoteVersion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(email.QuoteVersionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SourceEmailID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "source_email_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *EmailQuery) loadAnchoredQuotes(ctx context.Context, query *QuoteQuery, nodes []*Email, init func(*Email), assign func(*Email, *Quote)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Email)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(quote.FieldAnchorEmailID)
	}
	query.Where(predicate.Quote(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(email.AnchoredQuotesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AnchorEmailID
		if fk == nil {
			return fmt.Errorf(`foreign-key "anchor_email_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "anchor_email_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *EmailQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *EmailQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(email.Table, email.Columns, sqlgraph.NewFieldSpec(email.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, email.FieldID)
		for i := range fields {
			if fields[i] != email.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withThread != nil {
			_spec.Node.AddColumnOnce(email.FieldThreadID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *EmailQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(email.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = email.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// EmailGroupBy is the group-by builder for Email entities.
type EmailGroupBy struct {
	selector
	build *EmailQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *EmailGroupBy) Aggregate(fns ...AggregateFunc) *EmailGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *EmailGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EmailQuery, *EmailGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *EmailGroupBy) sqlScan(ctx context.Context, root *EmailQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// EmailSelect is the builder for selecting fields of Email entities.
type EmailSelect struct {
	*EmailQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *EmailSelect) Aggregate(fns ...AggregateFunc) *EmailSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *EmailSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EmailQuery, *EmailSelect](ctx, _s.EmailQuery, _s, _s.inters, v)
}

func (_s *EmailSelect) sqlScan(ctx context.Context, root *EmailQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
