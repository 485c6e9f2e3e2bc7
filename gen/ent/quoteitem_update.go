// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/predicate"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteitem"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteversion"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteItemUpdate is the builder for updating QuoteItem entities.
type QuoteItemUpdate struct {
	config
	hooks    []Hook
	mutation *QuoteItemMutation
}

// Where appends a list predicates to the QuoteItemUpdate builder.
func (_u *QuoteItemUpdate) Where(ps ...predicate.QuoteItem) *QuoteItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersionID sets the "version_id" field.
func (_u *QuoteItemUpdate) SetVersionID(v uuid.UUID) *QuoteItemUpdate {
	_u.mutation.SetVersionID(v)
	return _u
}

// SetNillableVersionID sets the "version_id" field if the given value is not nil.
func (_u *QuoteItemUpdate) SetNillableVersionID(v *uuid.UUID) *QuoteItemUpdate {
	if v != nil {
		_u.SetVersionID(*v)
	}
	return _u
}

// SetSku sets the "sku" field.
func (_u *QuoteItemUpdate) SetSku(v string) *QuoteItemUpdate {
	_u.mutation.SetSku(v)
	return _u
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_u *QuoteItemUpdate) SetNillableSku(v *string) *QuoteItemUpdate {
	if v != nil {
		_u.SetSku(*v)
	}
	return _u
}

// ClearSku clears the value of the "sku" field.
func (_u *QuoteItemUpdate) ClearSku() *QuoteItemUpdate {
	_u.mutation.ClearSku()
	return _u
}

// SetDescription sets the "description" field.
func (_u *QuoteItemUpdate) SetDescription(v string) *QuoteItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *QuoteItemUpdate) SetNillableDescription(v *string) *QuoteItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *QuoteItemUpdate) SetQuantity(v decimal.Decimal) *QuoteItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *QuoteItemUpdate) SetNillableQuantity(v *decimal.Decimal) *QuoteItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *QuoteItemUpdate) AddQuantity(v decimal.Decimal) *QuoteItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *QuoteItemUpdate) SetUnitPrice(v decimal.Decimal) *QuoteItemUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *QuoteItemUpdate) SetNillableUnitPrice(v *decimal.Decimal) *QuoteItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *QuoteItemUpdate) AddUnitPrice(v decimal.Decimal) *QuoteItemUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetDiscount sets the "discount" field.
func (_u *QuoteItemUpdate) SetDiscount(v decimal.Decimal) *QuoteItemUpdate {
	_u.mutation.ResetDiscount()
	_u.mutation.SetDiscount(v)
	return _u
}

// SetNillableDiscount sets the "discount" field if the given value is not nil.
func (_u *QuoteItemUpdate) SetNillableDiscount(v *decimal.Decimal) *QuoteItemUpdate {
	if v != nil {
		_u.SetDiscount(*v)
	}
	return _u
}

// AddDiscount adds value to the "discount" field.
func (_u *QuoteItemUpdate) AddDiscount(v decimal.Decimal) *QuoteItemUpdate {
	_u.mutation.AddDiscount(v)
	return _u
}

// ClearDiscount clears the value of the "discount" field.
func (_u *QuoteItemUpdate) ClearDiscount() *QuoteItemUpdate {
	_u.mutation.ClearDiscount()
	return _u
}

// SetLineTotal sets the "line_total" field.
func (_u *QuoteItemUpdate) SetLineTotal(v decimal.Decimal) *QuoteItemUpdate {
	_u.mutation.ResetLineTotal()
	_u.mutation.SetLineTotal(v)
	return _u
}

// SetNillableLineTotal sets the "line_total" field if the given value is not nil.
func (_u *QuoteItemUpdate) SetNillableLineTotal(v *decimal.Decimal) *QuoteItemUpdate {
	if v != nil {
		_u.SetLineTotal(*v)
	}
	return _u
}

// AddLineTotal adds value to the "line_total" field.
func (_u *QuoteItemUpdate) AddLineTotal(v decimal.Decimal) *QuoteItemUpdate {
	_u.mutation.AddLineTotal(v)
	return _u
}

// ClearLineTotal clears the value of the "line_total" field.
func (_u *QuoteItemUpdate) ClearLineTotal() *QuoteItemUpdate {
	_u.mutation.ClearLineTotal()
	return _u
}

// SetVersion sets the "version" edge to the QuoteVersion entity.
func (_u *QuoteItemUpdate) SetVersion(v *QuoteVersion) *QuoteItemUpdate {
	return _u.SetVersionID(v.ID)
}

// Mutation returns the QuoteItemMutation object of the builder.
func (_u *QuoteItemUpdate) Mutation() *QuoteItemMutation {
	return _u.mutation
}

// ClearVersion clears the "version" edge to the QuoteVersion entity.
func (_u *QuoteItemUpdate) ClearVersion() *QuoteItemUpdate {
	_u.mutation.ClearVersion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuoteItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuoteItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteItemUpdate) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := quoteitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "QuoteItem.description": %w`, err)}
		}
	}
	if _u.mutation.VersionCleared() && len(_u.mutation.VersionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuoteItem.version"`)
	}
	return nil
}

func (_u *QuoteItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quoteitem.Table, quoteitem.Columns, sqlgraph.NewFieldSpec(quoteitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sku(); ok {
		_spec.SetField(quoteitem.FieldSku, field.TypeString, value)
	}
	if _u.mutation.SkuCleared() {
		_spec.ClearField(quoteitem.FieldSku, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(quoteitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(quoteitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(quoteitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(quoteitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(quoteitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Discount(); ok {
		_spec.SetField(quoteitem.FieldDiscount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscount(); ok {
		_spec.AddField(quoteitem.FieldDiscount, field.TypeFloat64, value)
	}
	if _u.mutation.DiscountCleared() {
		_spec.ClearField(quoteitem.FieldDiscount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LineTotal(); ok {
		_spec.SetField(quoteitem.FieldLineTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLineTotal(); ok {
		_spec.AddField(quoteitem.FieldLineTotal, field.TypeFloat64, value)
	}
	if _u.mutation.LineTotalCleared() {
		_spec.ClearField(quoteitem.FieldLineTotal, field.TypeFloat64)
	}
	if _u.mutation.VersionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quoteitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuoteItemUpdateOne is the builder for updating a single QuoteItem entity.
type QuoteItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuoteItemMutation
}

// SetVersionID sets the "version_id" field.
func (_u *QuoteItemUpdateOne) SetVersionID(v uuid.UUID) *QuoteItemUpdateOne {
	_u.mutation.SetVersionID(v)
	return _u
}

// SetNillableVersionID sets the "version_id" field if the given value is not nil.
func (_u *QuoteItemUpdateOne) SetNillableVersionID(v *uuid.UUID) *QuoteItemUpdateOne {
	if v != nil {
		_u.SetVersionID(*v)
	}
	return _u
}

// SetSku sets the "sku" field.
func (_u *QuoteItemUpdateOne) SetSku(v string) *QuoteItemUpdateOne {
	_u.mutation.SetSku(v)
	return _u
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_u *QuoteItemUpdateOne) SetNillableSku(v *string) *QuoteItemUpdateOne {
	if v != nil {
		_u.SetSku(*v)
	}
	return _u
}

// ClearSku clears the value of the "sku" field.
func (_u *QuoteItemUpdateOne) ClearSku() *QuoteItemUpdateOne {
	_u.mutation.ClearSku()
	return _u
}

// SetDescription sets the "description" field.
func (_u *QuoteItemUpdateOne) SetDescription(v string) *QuoteItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *QuoteItemUpdateOne) SetNillableDescription(v *string) *QuoteItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *QuoteItemUpdateOne) SetQuantity(v decimal.Decimal) *QuoteItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *QuoteItemUpdateOne) SetNillableQuantity(v *decimal.Decimal) *QuoteItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *QuoteItemUpdateOne) AddQuantity(v decimal.Decimal) *QuoteItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *QuoteItemUpdateOne) SetUnitPrice(v decimal.Decimal) *QuoteItemUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *QuoteItemUpdateOne) SetNillableUnitPrice(v *decimal.Decimal) *QuoteItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *QuoteItemUpdateOne) AddUnitPrice(v decimal.Decimal) *QuoteItemUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetDiscount sets the "discount" field.
func (_u *QuoteItemUpdateOne) SetDiscount(v decimal.Decimal) *QuoteItemUpdateOne {
	_u.mutation.ResetDiscount()
	_u.mutation.SetDiscount(v)
	return _u
}

// SetNillableDiscount sets the "discount" field if the given value is not nil.
func (_u *QuoteItemUpdateOne) SetNillableDiscount(v *decimal.Decimal) *QuoteItemUpdateOne {
	if v != nil {
		_u.SetDiscount(*v)
	}
	return _u
}

// AddDiscount adds value to the "discount" field.
func (_u *QuoteItemUpdateOne) AddDiscount(v decimal.Decimal) *QuoteItemUpdateOne {
	_u.mutation.AddDiscount(v)
	return _u
}

// ClearDiscount clears the value of the "discount" field.
func (_u *QuoteItemUpdateOne) ClearDiscount() *QuoteItemUpdateOne {
	_u.mutation.ClearDiscount()
	return _u
}

// SetLineTotal sets the "line_total" field.
func (_u *QuoteItemUpdateOne) SetLineTotal(v decimal.Decimal) *QuoteItemUpdateOne {
	_u.mutation.ResetLineTotal()
	_u.mutation.SetLineTotal(v)
	return _u
}

// SetNillableLineTotal sets the "line_total" field if the given value is not nil.
func (_u *QuoteItemUpdateOne) SetNillableLineTotal(v *decimal.Decimal) *QuoteItemUpdateOne {
	if v != nil {
		_u.SetLineTotal(*v)
	}
	return _u
}

// AddLineTotal adds value to the "line_total" field.
func (_u *QuoteItemUpdateOne) AddLineTotal(v decimal.Decimal) *QuoteItemUpdateOne {
	_u.mutation.AddLineTotal(v)
	return _u
}

// ClearLineTotal clears the value of the "line_total" field.
func (_u *QuoteItemUpdateOne) ClearLineTotal() *QuoteItemUpdateOne {
	_u.mutation.ClearLineTotal()
	return _u
}

// SetVersion sets the "version" edge to the QuoteVersion entity.
func (_u *QuoteItemUpdateOne) SetVersion(v *QuoteVersion) *QuoteItemUpdateOne {
	return _u.SetVersionID(v.ID)
}

// Mutation returns the QuoteItemMutation object of the builder.
func (_u *QuoteItemUpdateOne) Mutation() *QuoteItemMutation {
	return _u.mutation
}

// ClearVersion clears the "version" edge to the QuoteVersion entity.
func (_u *QuoteItemUpdateOne) ClearVersion() *QuoteItemUpdateOne {
	_u.mutation.ClearVersion()
	return _u
}

// Where appends a list predicates to the QuoteItemUpdate builder.
func (_u *QuoteItemUpdateOne) Where(ps ...predicate.QuoteItem) *QuoteItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuoteItemUpdateOne) Select(field string, fields ...string) *QuoteItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuoteItem entity.
func (_u *QuoteItemUpdateOne) Save(ctx context.Context) (*QuoteItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteItemUpdateOne) SaveX(ctx context.Context) *QuoteItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuoteItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteItemUpdateOne) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := quoteitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "QuoteItem.description": %w`, err)}
		}
	}
	if _u.mutation.VersionCleared() && len(_u.mutation.VersionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuoteItem.version"`)
	}
	return nil
}

func (_u *QuoteItemUpdateOne) sqlSave(ctx context.Context) (_node *QuoteItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quoteitem.Table, quoteitem.Columns, sqlgraph.NewFieldSpec(quoteitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuoteItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quoteitem.FieldID)
		for _, f := range fields {
			if !quoteitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quoteitem.FieldID {
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
	if value, ok := _u.mutation.Sku(); ok {
		_spec.SetField(quoteitem.FieldSku, field.TypeString, value)
	}
	if _u.mutation.SkuCleared() {
		_spec.ClearField(quoteitem.FieldSku, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(quoteitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(quoteitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(quoteitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(quoteitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(quoteitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Discount(); ok {
		_spec.SetField(quoteitem.FieldDiscount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscount(); ok {
		_spec.AddField(quoteitem.FieldDiscount, field.TypeFloat64, value)
	}
	if _u.mutation.DiscountCleared() {
		_spec.ClearField(quoteitem.FieldDiscount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LineTotal(); ok {
		_spec.SetField(quoteitem.FieldLineTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLineTotal(); ok {
		_spec.AddField(quoteitem.FieldLineTotal, field.TypeFloat64, value)
	}
	if _u.mutation.LineTotalCleared() {
		_spec.ClearField(quoteitem.FieldLineTotal, field.TypeFloat64)
	}
	if _u.mutation.VersionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuoteItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quoteitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
