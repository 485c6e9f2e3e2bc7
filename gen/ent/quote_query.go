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
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/email"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/predicate"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quote"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteversion"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/thread"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/vendor"
	"github.com/google/uuid"
)

// QuoteQuery is the builder for querying Quote entities.
type QuoteQuery struct {
	config
	ctx             *QueryContext
	order           []quote.OrderOption
	inters          []Interceptor
	predicates      []predicate.Quote
	withThread      *ThreadQuery
	withVendor      *VendorQuery
	withAnchorEmail *EmailQuery
	withVersions    *QuoteVersionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the QuoteQuery builder.
func (_q *QuoteQuery) Where(ps ...predicate.Quote) *QuoteQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *QuoteQuery) Limit(limit int) *QuoteQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *QuoteQuery) Offset(offset int) *QuoteQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *QuoteQuery) Unique(unique bool) *QuoteQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *QuoteQuery) Order(o ...quote.OrderOption) *QuoteQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryThread chains the current query on the "thread" edge.
func (_q *QuoteQuery) QueryThread() *ThreadQuery {
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
			sqlgraph.From(quote.Table, quote.FieldID, selector),
			sqlgraph.To(thread.Table, thread.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quote.ThreadTable, quote.ThreadColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryVendor chains the current query on the "vendor" edge.
func (_q *QuoteQuery) QueryVendor() *VendorQuery {
	query := (&VendorClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(quote.Table, quote.FieldID, selector),
			sqlgraph.To(vendor.Table, vendor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quote.VendorTable, quote.VendorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAnchorEmail chains the current query on the "anchor_email" edge.
func (_q *QuoteQuery) QueryAnchorEmail() *EmailQuery {
	query := (&EmailClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(quote.Table, quote.FieldID, selector),
			sqlgraph.To(email.Table, email.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quote.AnchorEmailTable, quote.AnchorEmailColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryVersions chains the current query on the "versions" edge.
func (_q *QuoteQuery) QueryVersions() *QuoteVersionQuery {
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
			sqlgraph.From(quote.Table, quote.FieldID, selector),
			sqlgraph.To(quoteversion.Table, quoteversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, quote.VersionsTable, quote.VersionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Quote entity from the query.
// Returns a *NotFoundError when no Quote was found.
func (_q *QuoteQuery) First(ctx context.Context) (*Quote, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{quote.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *QuoteQuery) FirstX(ctx context.Context) *Quote {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Quote ID from the query.
// Returns a *NotFoundError when no Quote ID was found.
func (_q *QuoteQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{quote.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *QuoteQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Quote entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Quote entity is found.
// Returns a *NotFoundError when no Quote entities are found.
func (_q *QuoteQuery) Only(ctx context.Context) (*Quote, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{quote.Label}
	default:
		return nil, &NotSingularError{quote.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *QuoteQuery) OnlyX(ctx context.Context) *Quote {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Quote ID in the query.
// Returns a *NotSingularError when more than one Quote ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *QuoteQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{quote.Label}
	default:
		err = &NotSingularError{quote.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *QuoteQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Quotes.
func (_q *QuoteQuery) All(ctx context.Context) ([]*Quote, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Quote, *QuoteQuery]()
	return withInterceptors[[]*Quote](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *QuoteQuery) AllX(ctx context.Context) []*Quote {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Quote IDs.
func (_q *QuoteQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(quote.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *QuoteQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *QuoteQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*QuoteQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *QuoteQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *QuoteQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *QuoteQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the QuoteQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *QuoteQuery) Clone() *QuoteQuery {
	if _q == nil {
		return nil
	}
	return &QuoteQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]quote.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.Quote{}, _q.predicates...),
		withThread:      _q.withThread.Clone(),
		withVendor:      _q.withVendor.Clone(),
		withAnchorEmail: _q.withAnchorEmail.Clone(),
		withVersions:    _q.withVersions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithThread tells the query-builder to eager-load the nodes that are connected to
// the "thread" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuoteQuery) WithThread(opts ...func(*ThreadQuery)) *QuoteQuery {
	query := (&ThreadClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withThread = query
	return _q
}

// WithVendor tells the query-builder to eager-load the nodes that are connected to
// the "vendor" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuoteQuery) WithVendor(opts ...func(*VendorQuery)) *QuoteQuery {
	query := (&VendorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVendor = query
	return _q
}

// WithAnchorEmail tells the query-builder to eager-load the nodes that are connected to
// the "anchor_email" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuoteQuery) WithAnchorEmail(opts ...func(*EmailQuery)) *QuoteQuery {
	query := (&EmailClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAnchorEmail = query
	return _q
}

// WithVersions tells the query-builder to eager-load the nodes that are connected to
// the "versions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuoteQuery) WithVersions(opts ...func(*QuoteVersionQuery)) *QuoteQuery {
	query := (&QuoteVersionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVersions = query
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
//	client.Quote.Query().
//		GroupBy(quote.FieldThreadID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *QuoteQuery) GroupBy(field string, fields ...string) *QuoteGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &QuoteGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = quote.Label
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
//	client.Quote.Query().
//		Select(quote.FieldThreadID).
//		Scan(ctx, &v)
func (_q *QuoteQuery) Select(fields ...string) *QuoteSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &QuoteSelect{QuoteQuery: _q}
	sbuild.label = quote.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a QuoteSelect configured with the given aggregations.
func (_q *QuoteQuery) Aggregate(fns ...AggregateFunc) *QuoteSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *QuoteQuery) prepareQuery(ctx context.Context) error {
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
		if !quote.ValidColumn(f) {
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

func (_q *QuoteQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Quote, error) {
	var (
		nodes       = []*Quote{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withThread != nil,
			_q.withVendor != nil,
			_q.withAnchorEmail != nil,
			_q.withVersions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Quote).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Quote{config: _q.config}
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
			func(n *Quote, e *Thread) { n.Edges.Thread = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withVendor; query != nil {
		if err := _q.loadVendor(ctx, query, nodes, nil,
			func(n *Quote, e *Vendor) { n.Edges.Vendor = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAnchorEmail; query != nil {
		if err := _q.loadAnchorEmail(ctx, query, nodes, nil,
			func(n *Quote, e *Email) { n.Edges.AnchorEmail = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withVersions; query != nil {
		if err := _q.loadVersions(ctx, query, nodes,
			func(n *Quote) { n.Edges.Versions = []*QuoteVersion{} },
			func(n *Quote, e *QuoteVersion) { n.Edges.Versions = append(n.Edges.Versions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *QuoteQuery) loadThread(ctx context.Context, query *ThreadQuery, nodes []*Quote, init func(*Quote), assign func(*Quote, *Thread)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Quote)
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
func (_q *QuoteQuery) loadVendor(ctx context.Context, query *VendorQuery, nodes []*Quote, init func(*Quote), assign func(*Quote, *Vendor)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Quote)
	for i := range nodes {
		fk := nodes[i].VendorID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(vendor.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "vendor_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *QuoteQuery) loadAnchorEmail(ctx context.Context, query *EmailQuery, nodes []*Quote, init func(*Quote), assign func(*Quote, *Email)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Quote)
	for i := range nodes {
		if nodes[i].AnchorEmailID == nil {
			continue
		}
		fk := *nodes[i].AnchorEmailID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(email.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "anchor_email_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *QuoteQuery) loadVersions(ctx context.Context, query *QuoteVersionQuery, nodes []*Quote, init func(*Quote), assign func(*Quote, *QuoteVersion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Quote)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(quoteversion.FieldQuoteID)
	}
	query.Where(predicate.QuoteVersion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(quote.VersionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.QuoteID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "quote_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *QuoteQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *QuoteQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(quote.Table, quote.Columns, sqlgraph.NewFieldSpec(quote.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quote.FieldID)
		for i := range fields {
			if fields[i] != quote.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withThread != nil {
			_spec.Node.AddColumnOnce(quote.FieldThreadID)
		}
		if _q.withVendor != nil {
			_spec.Node.AddColumnOnce(quote.FieldVendorID)
		}
		if _q.withAnchorEmail != nil {
			_spec.Node.AddColumnOnce(quote.FieldAnchorEmailID)
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

func (_q *QuoteQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(quote.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = quote.Columns
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

// QuoteGroupBy is the group-by builder for Quote entities.
type QuoteGroupBy struct {
	selector
	build *QuoteQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *QuoteGroupBy) Aggregate(fns ...AggregateFunc) *QuoteGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *QuoteGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuoteQuery, *QuoteGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *QuoteGroupBy) sqlScan(ctx context.Context, root *QuoteQuery, v any) error {
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

// QuoteSelect is the builder for selecting fields of Quote entities.
type QuoteSelect struct {
	*QuoteQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *QuoteSelect) Aggregate(fns ...AggregateFunc) *QuoteSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *QuoteSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuoteQuery, *QuoteSelect](ctx, _s.QuoteQuery, _s, _s.inters, v)
}

func (_s *QuoteSelect) sqlScan(ctx context.Context, root *QuoteQuery, v any) error {
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
