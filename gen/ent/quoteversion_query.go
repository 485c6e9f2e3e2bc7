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
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteitem"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteversion"
	"github.com/google/uuid"
)

// QuoteVersionQuery is the builder for querying QuoteVersion entities.
type QuoteVersionQuery struct {
	config
	ctx             *QueryContext
	order           []quoteversion.OrderOption
	inters          []Interceptor
	predicates      []predicate.QuoteVersion
	withQuote       *QuoteQuery
	withSourceEmail *EmailQuery
	withItems       *QuoteItemQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the QuoteVersionQuery builder.
func (_q *QuoteVersionQuery) Where(ps ...predicate.QuoteVersion) *QuoteVersionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *QuoteVersionQuery) Limit(limit int) *QuoteVersionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *QuoteVersionQuery) Offset(offset int) *QuoteVersionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *QuoteVersionQuery) Unique(unique bool) *QuoteVersionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *QuoteVersionQuery) Order(o ...quoteversion.OrderOption) *QuoteVersionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryQuote chains the current query on the "quote" edge.
func (_q *QuoteVersionQuery) QueryQuote() *QuoteQuery {
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
			sqlgraph.From(quoteversion.Table, quoteversion.FieldID, selector),
			sqlgraph.To(quote.Table, quote.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quoteversion.QuoteTable, quoteversion.QuoteColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySourceEmail chains the current query on the "source_email" edge.
func (_q *QuoteVersionQuery) QuerySourceEmail() *EmailQuery {
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
			sqlgraph.From(quoteversion.Table, quoteversion.FieldID, selector),
			sqlgraph.To(email.Table, email.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quoteversion.SourceEmailTable, quoteversion.SourceEmailColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryItems chains the current query on the "items" edge.
func (_q *QuoteVersionQuery) QueryItems() *QuoteItemQuery {
	query := (&QuoteItemClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(quoteversion.Table, quoteversion.FieldID, selector),
			sqlgraph.To(quoteitem.Table, quoteitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, quoteversion.ItemsTable, quoteversion.ItemsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first QuoteVersion entity from the query.
// Returns a *NotFoundError when no QuoteVersion was found.
func (_q *QuoteVersionQuery) First(ctx context.Context) (*QuoteVersion, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{quoteversion.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *QuoteVersionQuery) FirstX(ctx context.Context) *QuoteVersion {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first QuoteVersion ID from the query.
// Returns a *NotFoundError when no QuoteVersion ID was found.
func (_q *QuoteVersionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{quoteversion.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *QuoteVersionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single QuoteVersion entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one QuoteVersion entity is found.
// Returns a *NotFoundError when no QuoteVersion entities are found.
func (_q *QuoteVersionQuery) Only(ctx context.Context) (*QuoteVersion, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{quoteversion.Label}
	default:
		return nil, &NotSingularError{quoteversion.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *QuoteVersionQuery) OnlyX(ctx context.Context) *QuoteVersion {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only QuoteVersion ID in the query.
// Returns a *NotSingularError when more than one QuoteVersion ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *QuoteVersionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{quoteversion.Label}
	default:
		err = &NotSingularError{quoteversion.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *QuoteVersionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of QuoteVersions.
func (_q *QuoteVersionQuery) All(ctx context.Context) ([]*QuoteVersion, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*QuoteVersion, *QuoteVersionQuery]()
	return withInterceptors[[]*QuoteVersion](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *QuoteVersionQuery) AllX(ctx context.Context) []*QuoteVersion {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of QuoteVersion IDs.
func (_q *QuoteVersionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(quoteversion.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *QuoteVersionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *QuoteVersionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*QuoteVersionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *QuoteVersionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *QuoteVersionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *QuoteVersionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the QuoteVersionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *QuoteVersionQuery) Clone() *QuoteVersionQuery {
	if _q == nil {
		return nil
	}
	return &QuoteVersionQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]quoteversion.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.QuoteVersion{}, _q.predicates...),
		withQuote:       _q.withQuote.Clone(),
		withSourceEmail: _q.withSourceEmail.Clone(),
		withItems:       _q.withItems.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithQuote tells the query-builder to eager-load the nodes that are connected to
// the "quote" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuoteVersionQuery) WithQuote(opts ...func(*QuoteQuery)) *QuoteVersionQuery {
	query := (&QuoteClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQuote = query
	return _q
}

// WithSourceEmail tells the query-builder to eager-load the nodes that are connected to
// the "source_email" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuoteVersionQuery) WithSourceEmail(opts ...func(*EmailQuery)) *QuoteVersionQuery {
	query := (&EmailClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSourceEmail = query
	return _q
}

// WithItems tells the query-builder to eager-load the nodes that are connected to
// the "items" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuoteVersionQuery) WithItems(opts ...func(*QuoteItemQuery)) *QuoteVersionQuery {
	query := (&QuoteItemClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withItems = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		QuoteID uuid.UUID `json:"quote_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.QuoteVersion.Query().
//		GroupBy(quoteversion.FieldQuoteID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *QuoteVersionQuery) GroupBy(field string, fields ...string) *QuoteVersionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &QuoteVersionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = quoteversion.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		QuoteID uuid.UUID `json:"quote_id,omitempty"`
//	}
//
//	client.QuoteVersion.Query().
//		Select(quoteversion.FieldQuoteID).
//		Scan(ctx, &v)
func (_q *QuoteVersionQuery) Select(fields ...string) *QuoteVersionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &QuoteVersionSelect{QuoteVersionQuery: _q}
	sbuild.label = quoteversion.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a QuoteVersionSelect configured with the given aggregations.
func (_q *QuoteVersionQuery) Aggregate(fns ...AggregateFunc) *QuoteVersionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *QuoteVersionQuery) prepareQuery(ctx context.Context) error {
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
		if !quoteversion.ValidColumn(f) {
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

func (_q *QuoteVersionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*QuoteVersion, error) {
	var (
		nodes       = []*QuoteVersion{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withQuote != nil,
			_q.withSourceEmail != nil,
			_q.withItems != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*QuoteVersion).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &QuoteVersion{config: _q.config}
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
	if query := _q.withQuote; query != nil {
		if err := _q.loadQuote(ctx, query, nodes, nil,
			func(n *QuoteVersion, e *Quote) { n.Edges.Quote = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSourceEmail; query != nil {
		if err := _q.loadSourceEmail(ctx, query, nodes, nil,
			func(n *QuoteVersion, e *Email) { n.Edges.SourceEmail = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withItems; query != nil {
		if err := _q.loadItems(ctx, query, nodes,
			func(n *QuoteVersion) { n.Edges.Items = []*QuoteItem{} },
			func(n *QuoteVersion, e *QuoteItem) { n.Edges.Items = append(n.Edges.Items, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *QuoteVersionQuery) loadQuote(ctx context.Context, query *QuoteQuery, nodes []*QuoteVersion, init func(*QuoteVersion), assign func(*QuoteVersion, *Quote)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*QuoteVersion)
	for i := range nodes {
		fk := nodes[i].QuoteID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(quote.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "quote_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *QuoteVersionQuery) loadSourceEmail(ctx context.Context, query *EmailQuery, nodes []*QuoteVersion, init func(*QuoteVersion), assign func(*QuoteVersion, *Email)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*QuoteVersion)
	for i := range nodes {
		fk := nodes[i].SourceEmailID
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
			return fmt.Errorf(`unexpected foreign-key "source_email_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *QuoteVersionQuery) loadItems(ctx context.Context, query *QuoteItemQuery, nodes []*QuoteVersion, init func(*QuoteVersion), assign func(*QuoteVersion, *QuoteItem)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*QuoteVersion)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(quoteitem.FieldVersionID)
	}
	query.Where(predicate.QuoteItem(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(quoteversion.ItemsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.VersionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "version_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *QuoteVersionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *QuoteVersionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(quoteversion.Table, quoteversion.Columns, sqlgraph.NewFieldSpec(quoteversion.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quoteversion.FieldID)
		for i := range fields {
			if fields[i] != quoteversion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withQuote != nil {
			_spec.Node.AddColumnOnce(quoteversion.FieldQuoteID)
		}
		if _q.withSourceEmail != nil {
			_spec.Node.AddColumnOnce(quoteversion.FieldSourceEmailID)
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

func (_q *QuoteVersionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(quoteversion.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = quoteversion.Columns
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

// QuoteVersionGroupBy is the group-by builder for QuoteVersion entities.
type QuoteVersionGroupBy struct {
	selector
	build *QuoteVersionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *QuoteVersionGroupBy) Aggregate(fns ...AggregateFunc) *QuoteVersionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *QuoteVersionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuoteVersionQuery, *QuoteVersionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *QuoteVersionGroupBy) sqlScan(ctx context.Context, root *QuoteVersionQuery, v any) error {
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

// QuoteVersionSelect is the builder for selecting fields of QuoteVersion entities.
type QuoteVersionSelect struct {
	*QuoteVersionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *QuoteVersionSelect) Aggregate(fns ...AggregateFunc) *QuoteVersionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *QuoteVersionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuoteVersionQuery, *QuoteVersionSelect](ctx, _s.QuoteVersionQuery, _s, _s.inters, v)
}

func (_s *QuoteVersionSelect) sqlScan(ctx context.Context, root *QuoteVersionQuery, v any) error {
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
