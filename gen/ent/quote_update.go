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
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteversion"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/thread"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/vendor"
	"github.com/google/uuid"
)

// QuoteUpdate is the builder for updating Quote entities.
type QuoteUpdate struct {
	config
	hooks    []Hook
	mutation *QuoteMutation
}

// Where appends a list predicates to the QuoteUpdate builder.
func (_u *QuoteUpdate) Where(ps ...predicate.Quote) *QuoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *QuoteUpdate) SetThreadID(v uuid.UUID) *QuoteUpdate {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableThreadID(v *uuid.UUID) *QuoteUpdate {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *QuoteUpdate) SetVendorID(v uuid.UUID) *QuoteUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableVendorID(v *uuid.UUID) *QuoteUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetAnchorEmailID sets the "anchor_email_id" field.
func (_u *QuoteUpdate) SetAnchorEmailID(v uuid.UUID) *QuoteUpdate {
	_u.mutation.SetAnchorEmailID(v)
	return _u
}

// SetNillableAnchorEmailID sets the "anchor_email_id" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableAnchorEmailID(v *uuid.UUID) *QuoteUpdate {
	if v != nil {
		_u.SetAnchorEmailID(*v)
	}
	return _u
}

// ClearAnchorEmailID clears the value of the "anchor_email_id" field.
func (_u *QuoteUpdate) ClearAnchorEmailID() *QuoteUpdate {
	_u.mutation.ClearAnchorEmailID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuoteUpdate) SetStatus(v string) *QuoteUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableStatus(v *string) *QuoteUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QuoteUpdate) SetCreatedAt(v time.Time) *QuoteUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableCreatedAt(v *time.Time) *QuoteUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetThread sets the "thread" edge to the Thread entity.
func (_u *QuoteUpdate) SetThread(v *Thread) *QuoteUpdate {
	return _u.SetThreadID(v.ID)
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *QuoteUpdate) SetVendor(v *Vendor) *QuoteUpdate {
	return _u.SetVendorID(v.ID)
}

// SetAnchorEmail sets the "anchor_email" edge to the Email entity.
func (_u *QuoteUpdate) SetAnchorEmail(v *Email) *QuoteUpdate {
	return _u.SetAnchorEmailID(v.ID)
}

// AddVersionIDs adds the "versions" edge to the QuoteVersion entity by IDs.
func (_u *QuoteUpdate) AddVersionIDs(ids ...uuid.UUID) *QuoteUpdate {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the QuoteVersion entity.
func (_u *QuoteUpdate) AddVersions(v ...*QuoteVersion) *QuoteUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// Mutation returns the QuoteMutation object of the builder.
func (_u *QuoteUpdate) Mutation() *QuoteMutation {
	return _u.mutation
}

// ClearThread clears the "thread" edge to the Thread entity.
func (_u *QuoteUpdate) ClearThread() *QuoteUpdate {
	_u.mutation.ClearThread()
	return _u
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *QuoteUpdate) ClearVendor() *QuoteUpdate {
	_u.mutation.ClearVendor()
	return _u
}

// ClearAnchorEmail clears the "anchor_email" edge to the Email entity.
func (_u *QuoteUpdate) ClearAnchorEmail() *QuoteUpdate {
	_u.mutation.ClearAnchorEmail()
	return _u
}

// ClearVersions clears all "versions" edges to the QuoteVersion entity.
func (_u *QuoteUpdate) ClearVersions() *QuoteUpdate {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to QuoteVersion entities by IDs.
func (_u *QuoteUpdate) RemoveVersionIDs(ids ...uuid.UUID) *QuoteUpdate {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to QuoteVersion entities.
func (_u *QuoteUpdate) RemoveVersions(v ...*QuoteVersion) *QuoteUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuoteUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteUpdate) check() error {
	if _u.mutation.ThreadCleared() && len(_u.mutation.ThreadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Quote.thread"`)
	}
	if _u.mutation.VendorCleared() && len(_u.mutation.VendorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Quote.vendor"`)
	}
	return nil
}

func (_u *QuoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quote.Table, quote.Columns, sqlgraph.NewFieldSpec(quote.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(quote.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(quote.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ThreadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.ThreadTable,
			Columns: []string{quote.ThreadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thread.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThreadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.ThreadTable,
			Columns: []string{quote.ThreadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thread.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VendorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.VendorTable,
			Columns: []string{quote.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.VendorTable,
			Columns: []string{quote.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnchorEmailCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.AnchorEmailTable,
			Columns: []string{quote.AnchorEmailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(email.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnchorEmailIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.AnchorEmailTable,
			Columns: []string{quote.AnchorEmailColumn},
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
	if _u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quote.VersionsTable,
			Columns: []string{quote.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quoteversion.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quote.VersionsTable,
			Columns: []string{quote.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quoteversion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quote.VersionsTable,
			Columns: []string{quote.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quoteversion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuoteUpdateOne is the builder for updating a single Quote entity.
type QuoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuoteMutation
}

// SetThreadID sets the "thread_id" field.
func (_u *QuoteUpdateOne) SetThreadID(v uuid.UUID) *QuoteUpdateOne {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableThreadID(v *uuid.UUID) *QuoteUpdateOne {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *QuoteUpdateOne) SetVendorID(v uuid.UUID) *QuoteUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableVendorID(v *uuid.UUID) *QuoteUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetAnchorEmailID sets the "anchor_email_id" field.
func (_u *QuoteUpdateOne) SetAnchorEmailID(v uuid.UUID) *QuoteUpdateOne {
	_u.mutation.SetAnchorEmailID(v)
	return _u
}

// SetNillableAnchorEmailID sets the "anchor_email_id" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableAnchorEmailID(v *uuid.UUID) *QuoteUpdateOne {
	if v != nil {
		_u.SetAnchorEmailID(*v)
	}
	return _u
}

// ClearAnchorEmailID clears the value of the "anchor_email_id" field.
func (_u *QuoteUpdateOne) ClearAnchorEmailID() *QuoteUpdateOne {
	_u.mutation.ClearAnchorEmailID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuoteUpdateOne) SetStatus(v string) *QuoteUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableStatus(v *string) *QuoteUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QuoteUpdateOne) SetCreatedAt(v time.Time) *QuoteUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableCreatedAt(v *time.Time) *QuoteUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetThread sets the "thread" edge to the Thread entity.
func (_u *QuoteUpdateOne) SetThread(v *Thread) *QuoteUpdateOne {
	return _u.SetThreadID(v.ID)
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *QuoteUpdateOne) SetVendor(v *Vendor) *QuoteUpdateOne {
	return _u.SetVendorID(v.ID)
}

// SetAnchorEmail sets the "anchor_email" edge to the Email entity.
func (_u *QuoteUpdateOne) SetAnchorEmail(v *Email) *QuoteUpdateOne {
	return _u.SetAnchorEmailID(v.ID)
}

// AddVersionIDs adds the "versions" edge to the QuoteVersion entity by IDs.
func (_u *QuoteUpdateOne) AddVersionIDs(ids ...uuid.UUID) *QuoteUpdateOne {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the QuoteVersion entity.
func (_u *QuoteUpdateOne) AddVersions(v ...*QuoteVersion) *QuoteUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// Mutation returns the QuoteMutation object of the builder.
func (_u *QuoteUpdateOne) Mutation() *QuoteMutation {
	return _u.mutation
}

// ClearThread clears the "thread" edge to the Thread entity.
func (_u *QuoteUpdateOne) ClearThread() *QuoteUpdateOne {
	_u.mutation.ClearThread()
	return _u
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *QuoteUpdateOne) ClearVendor() *QuoteUpdateOne {
	_u.mutation.ClearVendor()
	return _u
}

// ClearAnchorEmail clears the "anchor_email" edge to the Email entity.
func (_u *QuoteUpdateOne) ClearAnchorEmail() *QuoteUpdateOne {
	_u.mutation.ClearAnchorEmail()
	return _u
}

// ClearVersions clears all "versions" edges to the QuoteVersion entity.
func (_u *QuoteUpdateOne) ClearVersions() *QuoteUpdateOne {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to QuoteVersion entities by IDs.
func (_u *QuoteUpdateOne) RemoveVersionIDs(ids ...uuid.UUID) *QuoteUpdateOne {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to QuoteVersion entities.
func (_u *QuoteUpdateOne) RemoveVersions(v ...*QuoteVersion) *QuoteUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// Where appends a list predicates to the QuoteUpdate builder.
func (_u *QuoteUpdateOne) Where(ps ...predicate.Quote) *QuoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuoteUpdateOne) Select(field string, fields ...string) *QuoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Quote entity.
func (_u *QuoteUpdateOne) Save(ctx context.Context) (*Quote, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteUpdateOne) SaveX(ctx context.Context) *Quote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteUpdateOne) check() error {
	if _u.mutation.ThreadCleared() && len(_u.mutation.ThreadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Quote.thread"`)
	}
	if _u.mutation.VendorCleared() && len(_u.mutation.VendorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Quote.vendor"`)
	}
	return nil
}

func (_u *QuoteUpdateOne) sqlSave(ctx context.Context) (_node *Quote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quote.Table, quote.Columns, sqlgraph.NewFieldSpec(quote.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Quote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quote.FieldID)
		for _, f := range fields {
			if !quote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quote.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(quote.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(quote.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ThreadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.ThreadTable,
			Columns: []string{quote.ThreadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thread.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThreadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.ThreadTable,
			Columns: []string{quote.ThreadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thread.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VendorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.VendorTable,
			Columns: []string{quote.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.VendorTable,
			Columns: []string{quote.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnchorEmailCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.AnchorEmailTable,
			Columns: []string{quote.AnchorEmailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(email.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnchorEmailIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.AnchorEmailTable,
			Columns: []string{quote.AnchorEmailColumn},
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
	if _u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quote.VersionsTable,
			Columns: []string{quote.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quoteversion.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quote.VersionsTable,
			Columns: []string{quote.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quoteversion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quote.VersionsTable,
			Columns: []string{quote.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quoteversion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Quote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
