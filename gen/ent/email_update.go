// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
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

// EmailUpdate is the builder for updating Email entities.
type EmailUpdate struct {
	config
	hooks    []Hook
	mutation *EmailMutation
}

// Where appends a list predicates to the EmailUpdate builder.
func (_u *EmailUpdate) Where(ps ...predicate.Email) *EmailUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *EmailUpdate) SetThreadID(v uuid.UUID) *EmailUpdate {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *EmailUpdate) SetNillableThreadID(v *uuid.UUID) *EmailUpdate {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetProviderMessageID sets the "provider_message_id" field.
func (_u *EmailUpdate) SetProviderMessageID(v string) *EmailUpdate {
	_u.mutation.SetProviderMessageID(v)
	return _u
}

// SetNillableProviderMessageID sets the "provider_message_id" field if the given value is not nil.
func (_u *EmailUpdate) SetNillableProviderMessageID(v *string) *EmailUpdate {
	if v != nil {
		_u.SetProviderMessageID(*v)
	}
	return _u
}

// SetFromAddr sets the "from_addr" field.
func (_u *EmailUpdate) SetFromAddr(v string) *EmailUpdate {
	_u.mutation.SetFromAddr(v)
	return _u
}

// SetNillableFromAddr sets the "from_addr" field if the given value is not nil.
func (_u *EmailUpdate) SetNillableFromAddr(v *string) *EmailUpdate {
	if v != nil {
		_u.SetFromAddr(*v)
	}
	return _u
}

// ClearFromAddr clears the value of the "from_addr" field.
func (_u *EmailUpdate) ClearFromAddr() *EmailUpdate {
	_u.mutation.ClearFromAddr()
	return _u
}

// SetToAddrs sets the "to_addrs" field.
func (_u *EmailUpdate) SetToAddrs(v []string) *EmailUpdate {
	_u.mutation.SetToAddrs(v)
	return _u
}

// AppendToAddrs appends value to the "to_addrs" field.
func (_u *EmailUpdate) AppendToAddrs(v []string) *EmailUpdate {
	_u.mutation.AppendToAddrs(v)
	return _u
}

// ClearToAddrs clears the value of the "to_addrs" field.
func (_u *EmailUpdate) ClearToAddrs() *EmailUpdate {
	_u.mutation.ClearToAddrs()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailUpdate) SetSubject(v string) *EmailUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailUpdate) SetNillableSubject(v *string) *EmailUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *EmailUpdate) ClearSubject() *EmailUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *EmailUpdate) SetSentAt(v time.Time) *EmailUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *EmailUpdate) SetNillableSentAt(v *time.Time) *EmailUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *EmailUpdate) ClearSentAt() *EmailUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetSnippet sets the "snippet" field.
func (_u *EmailUpdate) SetSnippet(v string) *EmailUpdate {
	_u.mutation.SetSnippet(v)
	return _u
}

// SetNillableSnippet sets the "snippet" field if the given value is not nil.
func (_u *EmailUpdate) SetNillableSnippet(v *string) *EmailUpdate {
	if v != nil {
		_u.SetSnippet(*v)
	}
	return _u
}

// ClearSnippet clears the value of the "snippet" field.
func (_u *EmailUpdate) ClearSnippet() *EmailUpdate {
	_u.mutation.ClearSnippet()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EmailUpdate) SetCreatedAt(v time.Time) *EmailUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EmailUpdate) SetNillableCreatedAt(v *time.Time) *EmailUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetThread sets the "thread" edge to the Thread entity.
func (_u *EmailUpdate) SetThread(v *Thread) *EmailUpdate {
	return _u.SetThreadID(v.ID)
}

// AddBodyIDs adds the "bodies" edge to the EmailBody entity by IDs.
func (_u *EmailUpdate) AddBodyIDs(ids ...uuid.UUID) *EmailUpdate {
	_u.mutation.AddBodyIDs(ids...)
	return _u
}

// AddBodies adds the "bodies" edges to the EmailBody entity.
func (_u *EmailUpdate) AddBodies(v ...*EmailBody) *EmailUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBodyIDs(ids...)
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by IDs.
func (_u *EmailUpdate) AddAttachmentIDs(ids ...uuid.UUID) *EmailUpdate {
	_u.mutation.AddAttachmentIDs(ids...)
	return _u
}

// AddAttachments adds the "attachments" edges to the Attachment entity.
func (_u *EmailUpdate) AddAttachments(v ...*Attachment) *EmailUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttachmentIDs(ids...)
}

// AddQuoteVersionIDs adds the "quote_versions" edge to the QuoteVersion entity by IDs.
func (_u *EmailUpdate) AddQuoteVersionIDs(ids ...uuid.UUID) *EmailUpdate {
	_u.mutation.AddQuoteVersionIDs(ids...)
	return _u
}

// AddQuoteVersions adds the "quote_versions" edges to the QuoteVersion entity.
func (_u *EmailUpdate) AddQuoteVersions(v ...*QuoteVersion) *EmailUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuoteVersionIDs(ids...)
}

// AddAnchoredQuoteIDs adds the "anchored_quotes" edge to the Quote entity by IDs.
func (_u *EmailUpdate) AddAnchoredQuoteIDs(ids ...uuid.UUID) *EmailUpdate {
	_u.mutation.AddAnchoredQuoteIDs(ids...)
	return _u
}

// AddAnchoredQuotes adds the "anchored_quotes" edges to the Quote entity.
func (_u *EmailUpdate) AddAnchoredQuotes(v ...*Quote) *EmailUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnchoredQuoteIDs(ids...)
}

// Mutation returns the EmailMutation object of the builder.
func (_u *EmailUpdate) Mutation() *EmailMutation {
	return _u.mutation
}

// ClearThread clears the "thread" edge to the Thread entity.
func (_u *EmailUpdate) ClearThread() *EmailUpdate {
	_u.mutation.ClearThread()
	return _u
}

// ClearBodies clears all "bodies" edges to the EmailBody entity.
func (_u *EmailUpdate) ClearBodies() *EmailUpdate {
	_u.mutation.ClearBodies()
	return _u
}

// RemoveBodyIDs removes the "bodies" edge to EmailBody entities by IDs.
func (_u *EmailUpdate) RemoveBodyIDs(ids ...uuid.UUID) *EmailUpdate {
	_u.mutation.RemoveBodyIDs(ids...)
	return _u
}

// RemoveBodies removes "bodies" edges to EmailBody entities.
func (_u *EmailUpdate) RemoveBodies(v ...*EmailBody) *EmailUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBodyIDs(ids...)
}

// ClearAttachments clears all "attachments" edges to the Attachment entity.
func (_u *EmailUpdate) ClearAttachments() *EmailUpdate {
	_u.mutation.ClearAttachments()
	return _u
}

// RemoveAttachmentIDs removes the "attachments" edge to Attachment entities by IDs.
func (_u *EmailUpdate) RemoveAttachmentIDs(ids ...uuid.UUID) *EmailUpdate {
	_u.mutation.RemoveAttachmentIDs(ids...)
	return _u
}

// RemoveAttachments removes "attachments" edges to Attachment entities.
func (_u *EmailUpdate) RemoveAttachments(v ...*Attachment) *EmailUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttachmentIDs(ids...)
}

// ClearQuoteVersions clears all "quote_versions" edges to the QuoteVersion entity.
func (_u *EmailUpdate) ClearQuoteVersions() *EmailUpdate {
	_u.mutation.ClearQuoteVersions()
	return _u
}

// RemoveQuoteVersionIDs removes the "quote_versions" edge to QuoteVersion entities by IDs.
func (_u *EmailUpdate) RemoveQuoteVersionIDs(ids ...uuid.UUID) *EmailUpdate {
	_u.mutation.RemoveQuoteVersionIDs(ids...)
	return _u
}

// RemoveQuoteVersions removes "quote_versions" edges to QuoteVersion entities.
func (_u *EmailUpdate) RemoveQuoteVersions(v ...*QuoteVersion) *EmailUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuoteVersionIDs(ids...)
}

// ClearAnchoredQuotes clears all "anchored_quotes" edges to the Quote entity.
func (_u *EmailUpdate) ClearAnchoredQuotes() *EmailUpdate {
	_u.mutation.ClearAnchoredQuotes()
	return _u
}

// RemoveAnchoredQuoteIDs removes the "anchored_quotes" edge to Quote entities by IDs.
func (_u *EmailUpdate) RemoveAnchoredQuoteIDs(ids ...uuid.UUID) *EmailUpdate {
	_u.mutation.RemoveAnchoredQuoteIDs(ids...)
	return _u
}

// RemoveAnchoredQuotes removes "anchored_quotes" edges to Quote entities.
func (_u *EmailUpdate) RemoveAnchoredQuotes(v ...*Quote) *EmailUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnchoredQuoteIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmailUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmailUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailUpdate) check() error {
	if v, ok := _u.mutation.ProviderMessageID(); ok {
		if err := email.ProviderMessageIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_message_id", err: fmt.Errorf(`ent: validator failed for field "Email.provider_message_id": %w`, err)}
		}
	}
	if _u.mutation.ThreadCleared() && len(_u.mutation.ThreadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Email.thread"`)
	}
	return nil
}

func (_u *EmailUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(email.Table, email.Columns, sqlgraph.NewFieldSpec(email.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProviderMessageID(); ok {
		_spec.SetField(email.FieldProviderMessageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromAddr(); ok {
		_spec.SetField(email.FieldFromAddr, field.TypeString, value)
	}
	if _u.mutation.FromAddrCleared() {
		_spec.ClearField(email.FieldFromAddr, field.TypeString)
	}
	if value, ok := _u.mutation.ToAddrs(); ok {
		_spec.SetField(email.FieldToAddrs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToAddrs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, email.FieldToAddrs, value)
		})
	}
	if _u.mutation.ToAddrsCleared() {
		_spec.ClearField(email.FieldToAddrs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(email.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(email.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(email.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(email.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Snippet(); ok {
		_spec.SetField(email.FieldSnippet, field.TypeString, value)
	}
	if _u.mutation.SnippetCleared() {
		_spec.ClearField(email.FieldSnippet, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(email.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ThreadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   email.ThreadTable,
			Columns: []string{email.ThreadColumn},
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
			Table:   email.ThreadTable,
			Columns: []string{email.ThreadColumn},
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
	if _u.mutation.BodiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.BodiesTable,
			Columns: []string{email.BodiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailbody.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBodiesIDs(); len(nodes) > 0 && !_u.mutation.BodiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.BodiesTable,
			Columns: []string{email.BodiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailbody.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BodiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.BodiesTable,
			Columns: []string{email.BodiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailbody.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttachmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.AttachmentsTable,
			Columns: []string{email.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !_u.mutation.AttachmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.AttachmentsTable,
			Columns: []string{email.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttachmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.AttachmentsTable,
			Columns: []string{email.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuoteVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.QuoteVersionsTable,
			Columns: []string{email.QuoteVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quoteversion.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuoteVersionsIDs(); len(nodes) > 0 && !_u.mutation.QuoteVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.QuoteVersionsTable,
			Columns: []string{email.QuoteVersionsColumn},
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
	if nodes := _u.mutation.QuoteVersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.QuoteVersionsTable,
			Columns: []string{email.QuoteVersionsColumn},
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
	if _u.mutation.AnchoredQuotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.AnchoredQuotesTable,
			Columns: []string{email.AnchoredQuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quote.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnchoredQuotesIDs(); len(nodes) > 0 && !_u.mutation.AnchoredQuotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.AnchoredQuotesTable,
			Columns: []string{email.AnchoredQuotesColumn},
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
	if nodes := _u.mutation.AnchoredQuotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.AnchoredQuotesTable,
			Columns: []string{email.AnchoredQuotesColumn},
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
			err = &NotFoundError{email.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmailUpdateOne is the builder for updating a single Email entity.
type EmailUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmailMutation
}

// SetThreadID sets the "thread_id" field.
func (_u *EmailUpdateOne) SetThreadID(v uuid.UUID) *EmailUpdateOne {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *EmailUpdateOne) SetNillableThreadID(v *uuid.UUID) *EmailUpdateOne {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetProviderMessageID sets the "provider_message_id" field.
func (_u *EmailUpdateOne) SetProviderMessageID(v string) *EmailUpdateOne {
	_u.mutation.SetProviderMessageID(v)
	return _u
}

// SetNillableProviderMessageID sets the "provider_message_id" field if the given value is not nil.
func (_u *EmailUpdateOne) SetNillableProviderMessageID(v *string) *EmailUpdateOne {
	if v != nil {
		_u.SetProviderMessageID(*v)
	}
	return _u
}

// SetFromAddr sets the "from_addr" field.
func (_u *EmailUpdateOne) SetFromAddr(v string) *EmailUpdateOne {
	_u.mutation.SetFromAddr(v)
	return _u
}

// SetNillableFromAddr sets the "from_addr" field if the given value is not nil.
func (_u *EmailUpdateOne) SetNillableFromAddr(v *string) *EmailUpdateOne {
	if v != nil {
		_u.SetFromAddr(*v)
	}
	return _u
}

// ClearFromAddr clears the value of the "from_addr" field.
func (_u *EmailUpdateOne) ClearFromAddr() *EmailUpdateOne {
	_u.mutation.ClearFromAddr()
	return _u
}

// SetToAddrs sets the "to_addrs" field.
func (_u *EmailUpdateOne) SetToAddrs(v []string) *EmailUpdateOne {
	_u.mutation.SetToAddrs(v)
	return _u
}

// AppendToAddrs appends value to the "to_addrs" field.
func (_u *EmailUpdateOne) AppendToAddrs(v []string) *EmailUpdateOne {
	_u.mutation.AppendToAddrs(v)
	return _u
}

// ClearToAddrs clears the value of the "to_addrs" field.
func (_u *EmailUpdateOne) ClearToAddrs() *EmailUpdateOne {
	_u.mutation.ClearToAddrs()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailUpdateOne) SetSubject(v string) *EmailUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailUpdateOne) SetNillableSubject(v *string) *EmailUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *EmailUpdateOne) ClearSubject() *EmailUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *EmailUpdateOne) SetSentAt(v time.Time) *EmailUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *EmailUpdateOne) SetNillableSentAt(v *time.Time) *EmailUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *EmailUpdateOne) ClearSentAt() *EmailUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetSnippet sets the "snippet" field.
func (_u *EmailUpdateOne) SetSnippet(v string) *EmailUpdateOne {
	_u.mutation.SetSnippet(v)
	return _u
}

// SetNillableSnippet sets the "snippet" field if the given value is not nil.
func (_u *EmailUpdateOne) SetNillableSnippet(v *string) *EmailUpdateOne {
	if v != nil {
		_u.SetSnippet(*v)
	}
	return _u
}

// ClearSnippet clears the value of the "snippet" field.
func (_u *EmailUpdateOne) ClearSnippet() *EmailUpdateOne {
	_u.mutation.ClearSnippet()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EmailUpdateOne) SetCreatedAt(v time.Time) *EmailUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EmailUpdateOne) SetNillableCreatedAt(v *time.Time) *EmailUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetThread sets the "thread" edge to the Thread entity.
func (_u *EmailUpdateOne) SetThread(v *Thread) *EmailUpdateOne {
	return _u.SetThreadID(v.ID)
}

// AddBodyIDs adds the "bodies" edge to the EmailBody entity by IDs.
func (_u *EmailUpdateOne) AddBodyIDs(ids ...uuid.UUID) *EmailUpdateOne {
	_u.mutation.AddBodyIDs(ids...)
	return _u
}

// AddBodies adds the "bodies" edges to the EmailBody entity.
func (_u *EmailUpdateOne) AddBodies(v ...*EmailBody) *EmailUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBodyIDs(ids...)
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by IDs.
func (_u *EmailUpdateOne) AddAttachmentIDs(ids ...uuid.UUID) *EmailUpdateOne {
	_u.mutation.AddAttachmentIDs(ids...)
	return _u
}

// AddAttachments adds the "attachments" edges to the Attachment entity.
func (_u *EmailUpdateOne) AddAttachments(v ...*Attachment) *EmailUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttachmentIDs(ids...)
}

// AddQuoteVersionIDs adds the "quote_versions" edge to the QuoteVersion entity by IDs.
func (_u *EmailUpdateOne) AddQuoteVersionIDs(ids ...uuid.UUID) *EmailUpdateOne {
	_u.mutation.AddQuoteVersionIDs(ids...)
	return _u
}

// AddQuoteVersions adds the "quote_versions" edges to the QuoteVersion entity.
func (_u *EmailUpdateOne) AddQuoteVersions(v ...*QuoteVersion) *EmailUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuoteVersionIDs(ids...)
}

// AddAnchoredQuoteIDs adds the "anchored_quotes" edge to the Quote entity by IDs.
func (_u *EmailUpdateOne) AddAnchoredQuoteIDs(ids ...uuid.UUID) *EmailUpdateOne {
	_u.mutation.AddAnchoredQuoteIDs(ids...)
	return _u
}

// AddAnchoredQuotes adds the "anchored_quotes" edges to the Quote entity.
func (_u *EmailUpdateOne) AddAnchoredQuotes(v ...*Quote) *EmailUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnchoredQuoteIDs(ids...)
}

// Mutation returns the EmailMutation object of the builder.
func (_u *EmailUpdateOne) Mutation() *EmailMutation {
	return _u.mutation
}

// ClearThread clears the "thread" edge to the Thread entity.
func (_u *EmailUpdateOne) ClearThread() *EmailUpdateOne {
	_u.mutation.ClearThread()
	return _u
}

// ClearBodies clears all "bodies" edges to the EmailBody entity.
func (_u *EmailUpdateOne) ClearBodies() *EmailUpdateOne {
	_u.mutation.ClearBodies()
	return _u
}

// RemoveBodyIDs removes the "bodies" edge to EmailBody entities by IDs.
func (_u *EmailUpdateOne) RemoveBodyIDs(ids ...uuid.UUID) *EmailUpdateOne {
	_u.mutation.RemoveBodyIDs(ids...)
	return _u
}

// RemoveBodies removes "bodies" edges to EmailBody entities.
func (_u *EmailUpdateOne) RemoveBodies(v ...*EmailBody) *EmailUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBodyIDs(ids...)
}

// ClearAttachments clears all "attachments" edges to the Attachment entity.
func (_u *EmailUpdateOne) ClearAttachments() *EmailUpdateOne {
	_u.mutation.ClearAttachments()
	return _u
}

// RemoveAttachmentIDs removes the "attachments" edge to Attachment entities by IDs.
func (_u *EmailUpdateOne) RemoveAttachmentIDs(ids ...uuid.UUID) *EmailUpdateOne {
	_u.mutation.RemoveAttachmentIDs(ids...)
	return _u
}

// RemoveAttachments removes "attachments" edges to Attachment entities.
func (_u *EmailUpdateOne) RemoveAttachments(v ...*Attachment) *EmailUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttachmentIDs(ids...)
}

// ClearQuoteVersions clears all "quote_versions" edges to the QuoteVersion entity.
func (_u *EmailUpdateOne) ClearQuoteVersions() *EmailUpdateOne {
	_u.mutation.ClearQuoteVersions()
	return _u
}

// RemoveQuoteVersionIDs removes the "quote_versions" edge to QuoteVersion entities by IDs.
func (_u *EmailUpdateOne) RemoveQuoteVersionIDs(ids ...uuid.UUID) *EmailUpdateOne {
	_u.mutation.RemoveQuoteVersionIDs(ids...)
	return _u
}

// RemoveQuoteVersions removes "quote_versions" edges to QuoteVersion entities.
func (_u *EmailUpdateOne) RemoveQuoteVersions(v ...*QuoteVersion) *EmailUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuoteVersionIDs(ids...)
}

// ClearAnchoredQuotes clears all "anchored_quotes" edges to the Quote entity.
func (_u *EmailUpdateOne) ClearAnchoredQuotes() *EmailUpdateOne {
	_u.mutation.ClearAnchoredQuotes()
	return _u
}

// RemoveAnchoredQuoteIDs removes the "anchored_quotes" edge to Quote entities by IDs.
func (_u *EmailUpdateOne) RemoveAnchoredQuoteIDs(ids ...uuid.UUID) *EmailUpdateOne {
	_u.mutation.RemoveAnchoredQuoteIDs(ids...)
	return _u
}

// RemoveAnchoredQuotes removes "anchored_quotes" edges to Quote entities.
func (_u *EmailUpdateOne) RemoveAnchoredQuotes(v ...*Quote) *EmailUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnchoredQuoteIDs(ids...)
}

// Where appends a list predicates to the EmailUpdate builder.
func (_u *EmailUpdateOne) Where(ps ...predicate.Email) *EmailUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmailUpdateOne) Select(field string, fields ...string) *EmailUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Email entity.
func (_u *EmailUpdateOne) Save(ctx context.Context) (*Email, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailUpdateOne) SaveX(ctx context.Context) *Email {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmailUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailUpdateOne) check() error {
	if v, ok := _u.mutation.ProviderMessageID(); ok {
		if err := email.ProviderMessageIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_message_id", err: fmt.Errorf(`ent: validator failed for field "Email.provider_message_id": %w`, err)}
		}
	}
	if _u.mutation.ThreadCleared() && len(_u.mutation.ThreadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Email.thread"`)
	}
	return nil
}

func (_u *EmailUpdateOne) sqlSave(ctx context.Context) (_node *Email, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(email.Table, email.Columns, sqlgraph.NewFieldSpec(email.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Email.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, email.FieldID)
		for _, f := range fields {
			if !email.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != email.FieldID {
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
	if value, ok := _u.mutation.ProviderMessageID(); ok {
		_spec.SetField(email.FieldProviderMessageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromAddr(); ok {
		_spec.SetField(email.FieldFromAddr, field.TypeString, value)
	}
	if _u.mutation.FromAddrCleared() {
		_spec.ClearField(email.FieldFromAddr, field.TypeString)
	}
	if value, ok := _u.mutation.ToAddrs(); ok {
		_spec.SetField(email.FieldToAddrs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToAddrs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, email.FieldToAddrs, value)
		})
	}
	if _u.mutation.ToAddrsCleared() {
		_spec.ClearField(email.FieldToAddrs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(email.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(email.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(email.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(email.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Snippet(); ok {
		_spec.SetField(email.FieldSnippet, field.TypeString, value)
	}
	if _u.mutation.SnippetCleared() {
		_spec.ClearField(email.FieldSnippet, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(email.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ThreadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   email.ThreadTable,
			Columns: []string{email.ThreadColumn},
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
			Table:   email.ThreadTable,
			Columns: []string{email.ThreadColumn},
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
	if _u.mutation.BodiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.BodiesTable,
			Columns: []string{email.BodiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailbody.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBodiesIDs(); len(nodes) > 0 && !_u.mutation.BodiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.BodiesTable,
			Columns: []string{email.BodiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailbody.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BodiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.BodiesTable,
			Columns: []string{email.BodiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailbody.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttachmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.AttachmentsTable,
			Columns: []string{email.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !_u.mutation.AttachmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.AttachmentsTable,
			Columns: []string{email.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttachmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.AttachmentsTable,
			Columns: []string{email.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuoteVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.QuoteVersionsTable,
			Columns: []string{email.QuoteVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quoteversion.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuoteVersionsIDs(); len(nodes) > 0 && !_u.mutation.QuoteVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.QuoteVersionsTable,
			Columns: []string{email.QuoteVersionsColumn},
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
	if nodes := _u.mutation.QuoteVersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.QuoteVersionsTable,
			Columns: []string{email.QuoteVersionsColumn},
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
	if _u.mutation.AnchoredQuotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.AnchoredQuotesTable,
			Columns: []string{email.AnchoredQuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quote.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnchoredQuotesIDs(); len(nodes) > 0 && !_u.mutation.AnchoredQuotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.AnchoredQuotesTable,
			Columns: []string{email.AnchoredQuotesColumn},
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
	if nodes := _u.mutation.AnchoredQuotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   email.AnchoredQuotesTable,
			Columns: []string{email.AnchoredQuotesColumn},
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
	_node = &Email{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{email.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
