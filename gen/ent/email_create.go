// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/attachment"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/email"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/emailbody"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quote"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteversion"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/thread"
	"github.com/google/uuid"
)

// EmailCreate is the builder for creating a Email entity.
type EmailCreate struct {
	config
	mutation *EmailMutation
	hooks    []Hook
}

// SetThreadID sets the "thread_id" field.
func (_c *EmailCreate) SetThreadID(v uuid.UUID) *EmailCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetProviderMessageID sets the "provider_message_id" field.
func (_c *EmailCreate) SetProviderMessageID(v string) *EmailCreate {
	_c.mutation.SetProviderMessageID(v)
	return _c
}

// SetFromAddr sets the "from_addr" field.
func (_c *EmailCreate) SetFromAddr(v string) *EmailCreate {
	_c.mutation.SetFromAddr(v)
	return _c
}

// SetNillableFromAddr sets the "from_addr" field if the given value is not nil.
func (_c *EmailCreate) SetNillableFromAddr(v *string) *EmailCreate {
	if v != nil {
		_c.SetFromAddr(*v)
	}
	return _c
}

// SetToAddrs sets the "to_addrs" field.
func (_c *EmailCreate) SetToAddrs(v []string) *EmailCreate {
	_c.mutation.SetToAddrs(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *EmailCreate) SetSubject(v string) *EmailCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *EmailCreate) SetNillableSubject(v *string) *EmailCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *EmailCreate) SetSentAt(v time.Time) *EmailCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *EmailCreate) SetNillableSentAt(v *time.Time) *EmailCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetSnippet sets the "snippet" field.
func (_c *EmailCreate) SetSnippet(v string) *EmailCreate {
	_c.mutation.SetSnippet(v)
	return _c
}

// SetNillableSnippet sets the "snippet" field if the given value is not nil.
func (_c *EmailCreate) SetNillableSnippet(v *string) *EmailCreate {
	if v != nil {
		_c.SetSnippet(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmailCreate) SetCreatedAt(v time.Time) *EmailCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmailCreate) SetNillableCreatedAt(v *time.Time) *EmailCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmailCreate) SetID(v uuid.UUID) *EmailCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EmailCreate) SetNillableID(v *uuid.UUID) *EmailCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetThread sets the "thread" edge to the Thread entity.
func (_c *EmailCreate) SetThread(v *Thread) *EmailCreate {
	return _c.SetThreadID(v.ID)
}

// AddBodyIDs adds the "bodies" edge to the EmailBody entity by IDs.
func (_c *EmailCreate) AddBodyIDs(ids ...uuid.UUID) *EmailCreate {
	_c.mutation.AddBodyIDs(ids...)
	return _c
}

// AddBodies adds the "bodies" edges to the EmailBody entity.
func (_c *EmailCreate) AddBodies(v ...*EmailBody) *EmailCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBodyIDs(ids...)
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by IDs.
func (_c *EmailCreate) AddAttachmentIDs(ids ...uuid.UUID) *EmailCreate {
	_c.mutation.AddAttachmentIDs(ids...)
	return _c
}

// AddAttachments adds the "attachments" edges to the Attachment entity.
func (_c *EmailCreate) AddAttachments(v ...*Attachment) *EmailCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttachmentIDs(ids...)
}

// AddQuoteVersionIDs adds the "quote_versions" edge to the QuoteVersion entity by IDs.
func (_c *EmailCreate) AddQuoteVersionIDs(ids ...uuid.UUID) *EmailCreate {
	_c.mutation.AddQuoteVersionIDs(ids...)
	return _c
}

// AddQuoteVersions adds the "quote_versions" edges to the QuoteVersion entity.
func (_c *EmailCreate) AddQuoteVersions(v ...*QuoteVersion) *EmailCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuoteVersionIDs(ids...)
}

// AddAnchoredQuoteIDs adds the "anchored_quotes" edge to the Quote entity by IDs.
func (_c *EmailCreate) AddAnchoredQuoteIDs(ids ...uuid.UUID) *EmailCreate {
	_c.mutation.AddAnchoredQuoteIDs(ids...)
	return _c
}

// AddAnchoredQuotes adds the "anchored_quotes" edges to the Quote entity.
func (_c *EmailCreate) AddAnchoredQuotes(v ...*Quote) *EmailCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnchoredQuoteIDs(ids...)
}

// Mutation returns the EmailMutation object of the builder.
func (_c *EmailCreate) Mutation() *EmailMutation {
	return _c.mutation
}

// Save creates the Email in the database.
func (_c *EmailCreate) Save(ctx context.Context) (*Email, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmailCreate) SaveX(ctx context.Context) *Email {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmailCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := email.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := email.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmailCreate) check() error {
	if _, ok := _c.mutation.ThreadID(); !ok {
		return &ValidationError{Name: "thread_id", err: errors.New(`ent: missing required field "Email.thread_id"`)}
	}
	if _, ok := _c.mutation.ProviderMessageID(); !ok {
		return &ValidationError{Name: "provider_message_id", err: errors.New(`ent: missing required field "Email.provider_message_id"`)}
	}
	if v, ok := _c.mutation.ProviderMessageID(); ok {
		if err := email.ProviderMessageIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_message_id", err: fmt.Errorf(`ent: validator failed for field "Email.provider_message_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Email.created_at"`)}
	}
	if len(_c.mutation.ThreadIDs()) == 0 {
		return &ValidationError{Name: "thread", err: errors.New(`ent: missing required edge "Email.thread"`)}
	}
	return nil
}

func (_c *EmailCreate) sqlSave(ctx context.Context) (*Email, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EmailCreate) createSpec() (*Email, *sqlgraph.CreateSpec) {
	var (
		_node = &Email{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(email.Table, sqlgraph.NewFieldSpec(email.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ProviderMessageID(); ok {
		_spec.SetField(email.FieldProviderMessageID, field.TypeString, value)
		_node.ProviderMessageID = value
	}
	if value, ok := _c.mutation.FromAddr(); ok {
		_spec.SetField(email.FieldFromAddr, field.TypeString, value)
		_node.FromAddr = &value
	}
	if value, ok := _c.mutation.ToAddrs(); ok {
		_spec.SetField(email.FieldToAddrs, field.TypeJSON, value)
		_node.ToAddrs = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(email.FieldSubject, field.TypeString, value)
		_node.Subject = &value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(email.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.Snippet(); ok {
		_spec.SetField(email.FieldSnippet, field.TypeString, value)
		_node.Snippet = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(email.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ThreadIDs(); len(nodes) > 0 {
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
		_node.ThreadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BodiesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttachmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuoteVersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnchoredQuotesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EmailCreateBulk is the builder for creating many Email entities in bulk.
type EmailCreateBulk struct {
	config
	err      error
	builders []*EmailCreate
}

// Save creates the Email entities in the database.
func (_c *EmailCreateBulk) Save(ctx context.Context) ([]*Email, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Email, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmailMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EmailCreateBulk) SaveX(ctx context.Context) []*Email {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
