// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/email"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quote"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteitem"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteversion"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteVersionCreate is the builder for creating a QuoteVersion entity.
type QuoteVersionCreate struct {
	config
	mutation *QuoteVersionMutation
	hooks    []Hook
}

// SetQuoteID sets the "quote_id" field.
func (_c *QuoteVersionCreate) SetQuoteID(v uuid.UUID) *QuoteVersionCreate {
	_c.mutation.SetQuoteID(v)
	return _c
}

// SetSourceEmailID sets the "source_email_id" field.
func (_c *QuoteVersionCreate) SetSourceEmailID(v uuid.UUID) *QuoteVersionCreate {
	_c.mutation.SetSourceEmailID(v)
	return _c
}

// SetVersionLabel sets the "version_label" field.
func (_c *QuoteVersionCreate) SetVersionLabel(v string) *QuoteVersionCreate {
	_c.mutation.SetVersionLabel(v)
	return _c
}

// SetNillableVersionLabel sets the "version_label" field if the given value is not nil.
func (_c *QuoteVersionCreate) SetNillableVersionLabel(v *string) *QuoteVersionCreate {
	if v != nil {
		_c.SetVersionLabel(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *QuoteVersionCreate) SetCurrency(v string) *QuoteVersionCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetSubtotal sets the "subtotal" field.
func (_c *QuoteVersionCreate) SetSubtotal(v decimal.Decimal) *QuoteVersionCreate {
	_c.mutation.SetSubtotal(v)
	return _c
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_c *QuoteVersionCreate) SetNillableSubtotal(v *decimal.Decimal) *QuoteVersionCreate {
	if v != nil {
		_c.SetSubtotal(*v)
	}
	return _c
}

// SetTax sets the "tax" field.
func (_c *QuoteVersionCreate) SetTax(v decimal.Decimal) *QuoteVersionCreate {
	_c.mutation.SetTax(v)
	return _c
}

// SetNillableTax sets the "tax" field if the given value is not nil.
func (_c *QuoteVersionCreate) SetNillableTax(v *decimal.Decimal) *QuoteVersionCreate {
	if v != nil {
		_c.SetTax(*v)
	}
	return _c
}

// SetShipping sets the "shipping" field.
func (_c *QuoteVersionCreate) SetShipping(v decimal.Decimal) *QuoteVersionCreate {
	_c.mutation.SetShipping(v)
	return _c
}

// SetNillableShipping sets the "shipping" field if the given value is not nil.
func (_c *QuoteVersionCreate) SetNillableShipping(v *decimal.Decimal) *QuoteVersionCreate {
	if v != nil {
		_c.SetShipping(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *QuoteVersionCreate) SetTotal(v decimal.Decimal) *QuoteVersionCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetValidTill sets the "valid_till" field.
func (_c *QuoteVersionCreate) SetValidTill(v time.Time) *QuoteVersionCreate {
	_c.mutation.SetValidTill(v)
	return _c
}

// SetNillableValidTill sets the "valid_till" field if the given value is not nil.
func (_c *QuoteVersionCreate) SetNillableValidTill(v *time.Time) *QuoteVersionCreate {
	if v != nil {
		_c.SetValidTill(*v)
	}
	return _c
}

// SetTerms sets the "terms" field.
func (_c *QuoteVersionCreate) SetTerms(v string) *QuoteVersionCreate {
	_c.mutation.SetTerms(v)
	return _c
}

// SetNillableTerms sets the "terms" field if the given value is not nil.
func (_c *QuoteVersionCreate) SetNillableTerms(v *string) *QuoteVersionCreate {
	if v != nil {
		_c.SetTerms(*v)
	}
	return _c
}

// SetExtractedJSON sets the "extracted_json" field.
func (_c *QuoteVersionCreate) SetExtractedJSON(v map[string]interface{}) *QuoteVersionCreate {
	_c.mutation.SetExtractedJSON(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuoteVersionCreate) SetCreatedAt(v time.Time) *QuoteVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuoteVersionCreate) SetNillableCreatedAt(v *time.Time) *QuoteVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuoteVersionCreate) SetID(v uuid.UUID) *QuoteVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuoteVersionCreate) SetNillableID(v *uuid.UUID) *QuoteVersionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetQuote sets the "quote" edge to the Quote entity.
func (_c *QuoteVersionCreate) SetQuote(v *Quote) *QuoteVersionCreate {
	return _c.SetQuoteID(v.ID)
}

// SetSourceEmail sets the "source_email" edge to the Email entity.
func (_c *QuoteVersionCreate) SetSourceEmail(v *Email) *QuoteVersionCreate {
	return _c.SetSourceEmailID(v.ID)
}

// AddItemIDs adds the "items" edge to the QuoteItem entity by IDs.
func (_c *QuoteVersionCreate) AddItemIDs(ids ...uuid.UUID) *QuoteVersionCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the QuoteItem entity.
func (_c *QuoteVersionCreate) AddItems(v ...*QuoteItem) *QuoteVersionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the QuoteVersionMutation object of the builder.
func (_c *QuoteVersionCreate) Mutation() *QuoteVersionMutation {
	return _c.mutation
}

// Save creates the QuoteVersion in the database.
func (_c *QuoteVersionCreate) Save(ctx context.Context) (*QuoteVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuoteVersionCreate) SaveX(ctx context.Context) *QuoteVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuoteVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuoteVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuoteVersionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quoteversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := quoteversion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuoteVersionCreate) check() error {
	if _, ok := _c.mutation.QuoteID(); !ok {
		return &ValidationError{Name: "quote_id", err: errors.New(`ent: missing required field "QuoteVersion.quote_id"`)}
	}
	if _, ok := _c.mutation.SourceEmailID(); !ok {
		return &ValidationError{Name: "source_email_id", err: errors.New(`ent: missing required field "QuoteVersion.source_email_id"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "QuoteVersion.currency"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "QuoteVersion.total"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuoteVersion.created_at"`)}
	}
	if len(_c.mutation.QuoteIDs()) == 0 {
		return &ValidationError{Name: "quote", err: errors.New(`ent: missing required edge "QuoteVersion.quote"`)}
	}
	if len(_c.mutation.SourceEmailIDs()) == 0 {
		return &ValidationError{Name: "source_email", err: errors.New(`ent: missing required edge "QuoteVersion.source_email"`)}
	}
	return nil
}

func (_c *QuoteVersionCreate) sqlSave(ctx context.Context) (*QuoteVersion, error) {
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

func (_c *QuoteVersionCreate) createSpec() (*QuoteVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &QuoteVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quoteversion.Table, sqlgraph.NewFieldSpec(quoteversion.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VersionLabel(); ok {
		_spec.SetField(quoteversion.FieldVersionLabel, field.TypeString, value)
		_node.VersionLabel = &value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(quoteversion.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.Subtotal(); ok {
		_spec.SetField(quoteversion.FieldSubtotal, field.TypeFloat64, value)
		_node.Subtotal = &value
	}
	if value, ok := _c.mutation.Tax(); ok {
		_spec.SetField(quoteversion.FieldTax, field.TypeFloat64, value)
		_node.Tax = &value
	}
	if value, ok := _c.mutation.Shipping(); ok {
		_spec.SetField(quoteversion.FieldShipping, field.TypeFloat64, value)
		_node.Shipping = &value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(quoteversion.FieldTotal, field.TypeFloat64, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.ValidTill(); ok {
		_spec.SetField(quoteversion.FieldValidTill, field.TypeTime, value)
		_node.ValidTill = &value
	}
	if value, ok := _c.mutation.Terms(); ok {
		_spec.SetField(quoteversion.FieldTerms, field.TypeString, value)
		_node.Terms = &value
	}
	if value, ok := _c.mutation.ExtractedJSON(); ok {
		_spec.SetField(quoteversion.FieldExtractedJSON, field.TypeJSON, value)
		_node.ExtractedJSON = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quoteversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.QuoteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quoteversion.QuoteTable,
			Columns: []string{quoteversion.QuoteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quote.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.QuoteID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SourceEmailIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quoteversion.SourceEmailTable,
			Columns: []string{quoteversion.SourceEmailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(email.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SourceEmailID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quoteversion.ItemsTable,
			Columns: []string{quoteversion.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quoteitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuoteVersionCreateBulk is the builder for creating many QuoteVersion entities in bulk.
type QuoteVersionCreateBulk struct {
	config
	err      error
	builders []*QuoteVersionCreate
}

// Save creates the QuoteVersion entities in the database.
func (_c *QuoteVersionCreateBulk) Save(ctx context.Context) ([]*QuoteVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuoteVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuoteVersionMutation)
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
func (_c *QuoteVersionCreateBulk) SaveX(ctx context.Context) []*QuoteVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuoteVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuoteVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
