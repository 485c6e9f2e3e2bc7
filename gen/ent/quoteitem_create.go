// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteitem"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteversion"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteItemCreate is the builder for creating a QuoteItem entity.
type QuoteItemCreate struct {
	config
	mutation *QuoteItemMutation
	hooks    []Hook
}

// SetVersionID sets the "version_id" field.
func (_c *QuoteItemCreate) SetVersionID(v uuid.UUID) *QuoteItemCreate {
	_c.mutation.SetVersionID(v)
	return _c
}

// SetSku sets the "sku" field.
func (_c *QuoteItemCreate) SetSku(v string) *QuoteItemCreate {
	_c.mutation.SetSku(v)
	return _c
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_c *QuoteItemCreate) SetNillableSku(v *string) *QuoteItemCreate {
	if v != nil {
		_c.SetSku(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *QuoteItemCreate) SetDescription(v string) *QuoteItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *QuoteItemCreate) SetQuantity(v decimal.Decimal) *QuoteItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *QuoteItemCreate) SetUnitPrice(v decimal.Decimal) *QuoteItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetDiscount sets the "discount" field.
func (_c *QuoteItemCreate) SetDiscount(v decimal.Decimal) *QuoteItemCreate {
	_c.mutation.SetDiscount(v)
	return _c
}

// SetNillableDiscount sets the "discount" field if the given value is not nil.
func (_c *QuoteItemCreate) SetNillableDiscount(v *decimal.Decimal) *QuoteItemCreate {
	if v != nil {
		_c.SetDiscount(*v)
	}
	return _c
}

// SetLineTotal sets the "line_total" field.
func (_c *QuoteItemCreate) SetLineTotal(v decimal.Decimal) *QuoteItemCreate {
	_c.mutation.SetLineTotal(v)
	return _c
}

// SetNillableLineTotal sets the "line_total" field if the given value is not nil.
func (_c *QuoteItemCreate) SetNillableLineTotal(v *decimal.Decimal) *QuoteItemCreate {
	if v != nil {
		_c.SetLineTotal(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuoteItemCreate) SetID(v uuid.UUID) *QuoteItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuoteItemCreate) SetNillableID(v *uuid.UUID) *QuoteItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetVersion sets the "version" edge to the QuoteVersion entity.
func (_c *QuoteItemCreate) SetVersion(v *QuoteVersion) *QuoteItemCreate {
	return _c.SetVersionID(v.ID)
}

// Mutation returns the QuoteItemMutation object of the builder.
func (_c *QuoteItemCreate) Mutation() *QuoteItemMutation {
	return _c.mutation
}

// Save creates the QuoteItem in the database.
func (_c *QuoteItemCreate) Save(ctx context.Context) (*QuoteItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuoteItemCreate) SaveX(ctx context.Context) *QuoteItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuoteItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuoteItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuoteItemCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := quoteitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuoteItemCreate) check() error {
	if _, ok := _c.mutation.VersionID(); !ok {
		return &ValidationError{Name: "version_id", err: errors.New(`ent: missing required field "QuoteItem.version_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "QuoteItem.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := quoteitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "QuoteItem.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "QuoteItem.quantity"`)}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`ent: missing required field "QuoteItem.unit_price"`)}
	}
	if len(_c.mutation.VersionIDs()) == 0 {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required edge "QuoteItem.version"`)}
	}
	return nil
}

func (_c *QuoteItemCreate) sqlSave(ctx context.Context) (*QuoteItem, error) {
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

func (_c *QuoteItemCreate) createSpec() (*QuoteItem, *sqlgraph.CreateSpec) {
	var (
		_node = &QuoteItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quoteitem.Table, sqlgraph.NewFieldSpec(quoteitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Sku(); ok {
		_spec.SetField(quoteitem.FieldSku, field.TypeString, value)
		_node.Sku = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(quoteitem.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(quoteitem.FieldQuantity, field.TypeFloat64, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(quoteitem.FieldUnitPrice, field.TypeFloat64, value)
		_node.UnitPrice = value
	}
	if value, ok := _c.mutation.Discount(); ok {
		_spec.SetField(quoteitem.FieldDiscount, field.TypeFloat64, value)
		_node.Discount = &value
	}
	if value, ok := _c.mutation.LineTotal(); ok {
		_spec.SetField(quoteitem.FieldLineTotal, field.TypeFloat64, value)
		_node.LineTotal = &value
	}
	if nodes := _c.mutation.VersionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quoteitem.VersionTable,
			Columns: []string{quoteitem.VersionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quoteversion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.VersionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuoteItemCreateBulk is the builder for creating many QuoteItem entities in bulk.
type QuoteItemCreateBulk struct {
	config
	err      error
	builders []*QuoteItemCreate
}

// Save creates the QuoteItem entities in the database.
func (_c *QuoteItemCreateBulk) Save(ctx context.Context) ([]*QuoteItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuoteItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuoteItemMutation)
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
func (_c *QuoteItemCreateBulk) SaveX(ctx context.Context) []*QuoteItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuoteItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuoteItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
