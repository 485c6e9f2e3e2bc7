// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/email"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/predicate"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quote"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/thread"
	"github.com/google/uuid"
)

// ThreadUpdate is the builder for updating Thread entities.
type ThreadUpdate struct {
	config
	hooks    []Hook
	mutation *ThreadMutation
}

// Where appends a list predicates to the ThreadUpdate builder.
func (_u *ThreadUpdate) Where(ps ...predicate.Thread) *ThreadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProviderThreadID sets the "provider_thread_id" field.
func (_u *ThreadUpdate) SetProviderThreadID(v string) *ThreadUpdate {
	_u.mutation.SetProviderThreadID(v)
	return _u
}

// SetNillableProviderThreadID sets the "provider_thread_id" field if the given value is not nil.
func (_u *ThreadUpdate) SetNillableProviderThreadID(v *string) *ThreadUpdate {
	if v != nil {
		_u.SetProviderThreadID(*v)
	}
	return _u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_u *ThreadUpdate) SetFirstSeenAt(v time.Time) *ThreadUpdate {
	_u.mutation.SetFirstSeenAt(v)
	return _u
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_u *ThreadUpdate) SetNillableFirstSeenAt(v *time.Time) *ThreadUpdate {
	if v != nil {
		_u.SetFirstSeenAt(*v)
	}
	return _u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_u *ThreadUpdate) SetLastSyncedAt(v time.Time) *ThreadUpdate {
	_u.mutation.SetLastSyncedAt(v)
	return _u
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_u *ThreadUpdate) SetNillableLastSyncedAt(v *time.Time) *ThreadUpdate {
	if v != nil {
		_u.SetLastSyncedAt(*v)
	}
	return _u
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (_u *ThreadUpdate) ClearLastSyncedAt() *ThreadUpdate {
	_u.mutation.ClearLastSyncedAt()
	return _u
}

// AddEmailIDs adds the "emails" edge to the Email entity by IDs.
func (_u *ThreadUpdate) AddEmailIDs(ids ...uuid.UUID) *ThreadUpdate {
	_u.mutation.AddEmailIDs(ids...)
	return _u
}

// AddEmails adds the "emails" edges to the Email entity.
func (_u *ThreadUpdate) AddEmails(v ...*Email) *ThreadUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEmailIDs(ids...)
}

// AddQuoteIDs adds the "quotes" edge to the Quote entity by IDs.
func (_u *ThreadUpdate) AddQuoteIDs(ids ...uuid.UUID) *ThreadUpdate {
	_u.mutation.AddQuoteIDs(ids...)
	return _u
}

// AddQuotes adds the "quotes" edges to the Quote entity.
func (_u *ThreadUpdate) AddQuotes(v ...*Quote) *ThreadUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuoteIDs(ids...)
}

// Mutation returns the ThreadMutation object of the builder.
func (_u *ThreadUpdate) Mutation() *ThreadMutation {
	return _u.mutation
}

// ClearEmails clears all "emails" edges to the Email entity.
func (_u *ThreadUpdate) ClearEmails() *ThreadUpdate {
	_u.mutation.ClearEmails()
	return _u
}

// RemoveEmailIDs removes the "emails" edge to Email entities by IDs.
func (_u *ThreadUpdate) RemoveEmailIDs(ids ...uuid.UUID) *ThreadUpdate {
	_u.mutation.RemoveEmailIDs(ids...)
	return _u
}

// RemoveEmails removes "emails" edges to Email entities.
func (_u *ThreadUpdate) RemoveEmails(v ...*Email) *ThreadUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEmailIDs(ids...)
}

// ClearQuotes clears all "quotes" edges to the Quote entity.
func (_u *ThreadUpdate) ClearQuotes() *ThreadUpdate {
	_u.mutation.ClearQuotes()
	return _u
}

// RemoveQuoteIDs removes the "quotes" edge to Quote entities by IDs.
func (_u *ThreadUpdate) RemoveQuoteIDs(ids ...uuid.UUID) *ThreadUpdate {
	_u.mutation.RemoveQuoteIDs(ids...)
	return _u
}

// RemoveQuotes removes "quotes" edges to Quote entities.
func (_u *ThreadUpdate) RemoveQuotes(v ...*Quote) *ThreadUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuoteIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ThreadUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThreadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ThreadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThreadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThreadUpdate) check() error {
	if v, ok := _u.mutation.ProviderThreadID(); ok {
		if err := thread.ProviderThreadIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_thread_id", err: fmt.Errorf(`ent: validator failed for field "Thread.provider_thread_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ThreadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(thread.Table, thread.Columns, sqlgraph.NewFieldSpec(thread.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProviderThreadID(); ok {
		_spec.SetField(thread.FieldProviderThreadID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstSeenAt(); ok {
		_spec.SetField(thread.FieldFirstSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSyncedAt(); ok {
		_spec.SetField(thread.FieldLastSyncedAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncedAtCleared() {
		_spec.ClearField(thread.FieldLastSyncedAt, field.TypeTime)
	}
	if _u.mutation.EmailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.EmailsTable,
			Columns: []string{thread.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(email.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEmailsIDs(); len(nodes) > 0 && !_u.mutation.EmailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.EmailsTable,
			Columns: []string{thread.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(email.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmailsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.EmailsTable,
			Columns: []string{thread.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(email.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.QuotesTable,
			Columns: []string{thread.QuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quote.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuotesIDs(); len(nodes) > 0 && !_u.mutation.QuotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.QuotesTable,
			Columns: []string{thread.QuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quote.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.QuotesTable,
			Columns: []string{thread.QuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quote.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{thread.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ThreadUpdateOne is the builder for updating a single Thread entity.
type ThreadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ThreadMutation
}

// SetProviderThreadID sets the "provider_thread_id" field.
func (_u *ThreadUpdateOne) SetProviderThreadID(v string) *ThreadUpdateOne {
	_u.mutation.SetProviderThreadID(v)
	return _u
}

// SetNillableProviderThreadID sets the "provider_thread_id" field if the given value is not nil.
func (_u *ThreadUpdateOne) SetNillableProviderThreadID(v *string) *ThreadUpdateOne {
	if v != nil {
		_u.SetProviderThreadID(*v)
	}
	return _u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_u *ThreadUpdateOne) SetFirstSeenAt(v time.Time) *ThreadUpdateOne {
	_u.mutation.SetFirstSeenAt(v)
	return _u
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_u *ThreadUpdateOne) SetNillableFirstSeenAt(v *time.Time) *ThreadUpdateOne {
	if v != nil {
		_u.SetFirstSeenAt(*v)
	}
	return _u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_u *ThreadUpdateOne) SetLastSyncedAt(v time.Time) *ThreadUpdateOne {
	_u.mutation.SetLastSyncedAt(v)
	return _u
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_u *ThreadUpdateOne) SetNillableLastSyncedAt(v *time.Time) *ThreadUpdateOne {
	if v != nil {
		_u.SetLastSyncedAt(*v)
	}
	return _u
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (_u *ThreadUpdateOne) ClearLastSyncedAt() *ThreadUpdateOne {
	_u.mutation.ClearLastSyncedAt()
	return _u
}

// AddEmailIDs adds the "emails" edge to the Email entity by IDs.
func (_u *ThreadUpdateOne) AddEmailIDs(ids ...uuid.UUID) *ThreadUpdateOne {
	_u.mutation.AddEmailIDs(ids...)
	return _u
}

// AddEmails adds the "emails" edges to the Email entity.
func (_u *ThreadUpdateOne) AddEmails(v ...*Email) *ThreadUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEmailIDs(ids...)
}

// AddQuoteIDs adds the "quotes" edge to the Quote entity by IDs.
func (_u *ThreadUpdateOne) AddQuoteIDs(ids ...uuid.UUID) *ThreadUpdateOne {
	_u.mutation.AddQuoteIDs(ids...)
	return _u
}

// AddQuotes adds the "quotes" edges to the Quote entity.
func (_u *ThreadUpdateOne) AddQuotes(v ...*Quote) *ThreadUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuoteIDs(ids...)
}

// Mutation returns the ThreadMutation object of the builder.
func (_u *ThreadUpdateOne) Mutation() *ThreadMutation {
	return _u.mutation
}

// ClearEmails clears all "emails" edges to the Email entity.
func (_u *ThreadUpdateOne) ClearEmails() *ThreadUpdateOne {
	_u.mutation.ClearEmails()
	return _u
}

// RemoveEmailIDs removes the "emails" edge to Email entities by IDs.
func (_u *ThreadUpdateOne) RemoveEmailIDs(ids ...uuid.UUID) *ThreadUpdateOne {
	_u.mutation.RemoveEmailIDs(ids...)
	return _u
}

// RemoveEmails removes "emails" edges to Email entities.
func (_u *ThreadUpdateOne) RemoveEmails(v ...*Email) *ThreadUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEmailIDs(ids...)
}

// ClearQuotes clears all "quotes" edges to the Quote entity.
func (_u *ThreadUpdateOne) ClearQuotes() *ThreadUpdateOne {
	_u.mutation.ClearQuotes()
	return _u
}

// RemoveQuoteIDs removes the "quotes" edge to Quote entities by IDs.
func (_u *ThreadUpdateOne) RemoveQuoteIDs(ids ...uuid.UUID) *ThreadUpdateOne {
	_u.mutation.RemoveQuoteIDs(ids...)
	return _u
}

// RemoveQuotes removes "quotes" edges to Quote entities.
func (_u *ThreadUpdateOne) RemoveQuotes(v ...*Quote) *ThreadUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuoteIDs(ids...)
}

// Where appends a list predicates to the ThreadUpdate builder.
func (_u *ThreadUpdateOne) Where(ps ...predicate.Thread) *ThreadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ThreadUpdateOne) Select(field string, fields ...string) *ThreadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Thread entity.
func (_u *ThreadUpdateOne) Save(ctx context.Context) (*Thread, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThreadUpdateOne) SaveX(ctx context.Context) *Thread {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ThreadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThreadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThreadUpdateOne) check() error {
	if v, ok := _u.mutation.ProviderThreadID(); ok {
		if err := thread.ProviderThreadIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_thread_id", err: fmt.Errorf(`ent: validator failed for field "Thread.provider_thread_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ThreadUpdateOne) sqlSave(ctx context.Context) (_node *Thread, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(thread.Table, thread.Columns, sqlgraph.NewFieldSpec(thread.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Thread.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, thread.FieldID)
		for _, f := range fields {
			if !thread.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != thread.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProviderThreadID(); ok {
		_spec.SetField(thread.FieldProviderThreadID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstSeenAt(); ok {
		_spec.SetField(thread.FieldFirstSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSyncedAt(); ok {
		_spec.SetField(thread.FieldLastSyncedAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncedAtCleared() {
		_spec.ClearField(thread.FieldLastSyncedAt, field.TypeTime)
	}
	if _u.mutation.EmailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.EmailsTable,
			Columns: []string{thread.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(email.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEmailsIDs(); len(nodes) > 0 && !_u.mutation.EmailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.EmailsTable,
			Columns: []string{thread.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(email.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmailsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.EmailsTable,
			Columns: []string{thread.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(email.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.QuotesTable,
			Columns: []string{thread.QuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quote.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuotesIDs(); len(nodes) > 0 && !_u.mutation.QuotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.QuotesTable,
			Columns: []string{thread.QuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quote.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.QuotesTable,
			Columns: []string{thread.QuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quote.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Thread{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{thread.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
