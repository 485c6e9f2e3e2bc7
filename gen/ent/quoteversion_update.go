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
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteitem"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteversion"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteVersionUpdate is the builder for updating QuoteVersion entities.
type QuoteVersionUpdate struct {
	config
	hooks    []Hook
	mutation *QuoteVersionMutation
}

// Where appends a list predicates to the QuoteVersionUpdate builder.
func (_u *QuoteVersionUpdate) Where(ps ...predicate.QuoteVersion) *QuoteVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuoteID sets the "quote_id" field.
func (_u *QuoteVersionUpdate) SetQuoteID(v uuid.UUID) *QuoteVersionUpdate {
	_u.mutation.SetQuoteID(v)
	return _u
}

// SetNillableQuoteID sets the "quote_id" field if the given value is not nil.
func (_u *QuoteVersionUpdate) SetNillableQuoteID(v *uuid.UUID) *QuoteVersionUpdate {
	if v != nil {
		_u.SetQuoteID(*v)
	}
	return _u
}

// SetSourceEmailID sets the "source_email_id" field.
func (_u *QuoteVersionUpdate) SetSourceEmailID(v uuid.UUID) *QuoteVersionUpdate {
	_u.mutation.SetSourceEmailID(v)
	return _u
}

// SetNillableSourceEmailID sets the "source_email_id" field if the given value is not nil.
func (_u *QuoteVersionUpdate) SetNillableSourceEmailID(v *uuid.UUID) *QuoteVersionUpdate {
	if v != nil {
		_u.SetSourceEmailID(*v)
	}
	return _u
}

// SetVersionLabel sets the "version_label" field.
func (_u *QuoteVersionUpdate) SetVersionLabel(v string) *QuoteVersionUpdate {
	_u.mutation.SetVersionLabel(v)
	return _u
}

// SetNillableVersionLabel sets the "version_label" field if the given value is not nil.
func (_u *QuoteVersionUpdate) SetNillableVersionLabel(v *string) *QuoteVersionUpdate {
	if v != nil {
		_u.SetVersionLabel(*v)
	}
	return _u
}

// ClearVersionLabel clears the value of the "version_label" field.
func (_u *QuoteVersionUpdate) ClearVersionLabel() *QuoteVersionUpdate {
	_u.mutation.ClearVersionLabel()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *QuoteVersionUpdate) SetCurrency(v string) *QuoteVersionUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *QuoteVersionUpdate) SetNillableCurrency(v *string) *QuoteVersionUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *QuoteVersionUpdate) SetSubtotal(v decimal.Decimal) *QuoteVersionUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *QuoteVersionUpdate) SetNillableSubtotal(v *decimal.Decimal) *QuoteVersionUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *QuoteVersionUpdate) AddSubtotal(v decimal.Decimal) *QuoteVersionUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *QuoteVersionUpdate) ClearSubtotal() *QuoteVersionUpdate {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTax sets the "tax" field.
func (_u *QuoteVersionUpdate) SetTax(v decimal.Decimal) *QuoteVersionUpdate {
	_u.mutation.ResetTax()
	_u.mutation.SetTax(v)
	return _u
}

// SetNillableTax sets the "tax" field if the given value is not nil.
func (_u *QuoteVersionUpdate) SetNillableTax(v *decimal.Decimal) *QuoteVersionUpdate {
	if v != nil {
		_u.SetTax(*v)
	}
	return _u
}

// AddTax adds value to the "tax" field.
func (_u *QuoteVersionUpdate) AddTax(v decimal.Decimal) *QuoteVersionUpdate {
	_u.mutation.AddTax(v)
	return _u
}

// ClearTax clears the value of the "tax" field.
func (_u *QuoteVersionUpdate) ClearTax() *QuoteVersionUpdate {
	_u.mutation.ClearTax()
	return _u
}

// SetShipping sets the "shipping" field.
func (_u *QuoteVersionUpdate) SetShipping(v decimal.Decimal) *QuoteVersionUpdate {
	_u.mutation.ResetShipping()
	_u.mutation.SetShipping(v)
	return _u
}

// SetNillableShipping sets the "shipping" field if the given value is not nil.
func (_u *QuoteVersionUpdate) SetNillableShipping(v *decimal.Decimal) *QuoteVersionUpdate {
	if v != nil {
		_u.SetShipping(*v)
	}
	return _u
}

// AddShipping adds value to the "shipping" field.
func (_u *QuoteVersionUpdate) AddShipping(v decimal.Decimal) *QuoteVersionUpdate {
	_u.mutation.AddShipping(v)
	return _u
}

// ClearShipping clears the value of the "shipping" field.
func (_u *QuoteVersionUpdate) ClearShipping() *QuoteVersionUpdate {
	_u.mutation.ClearShipping()
	return _u
}

// SetTotal sets the "total" field.
func (_u *QuoteVersionUpdate) SetTotal(v decimal.Decimal) *QuoteVersionUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *QuoteVersionUpdate) SetNillableTotal(v *decimal.Decimal) *QuoteVersionUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *QuoteVersionUpdate) AddTotal(v decimal.Decimal) *QuoteVersionUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetValidTill sets the "valid_till" field.
func (_u *QuoteVersionUpdate) SetValidTill(v time.Time) *QuoteVersionUpdate {
	_u.mutation.SetValidTill(v)
	return _u
}

// SetNillableValidTill sets the "valid_till" field if the given value is not nil.
func (_u *QuoteVersionUpdate) SetNillableValidTill(v *time.Time) *QuoteVersionUpdate {
	if v != nil {
		_u.SetValidTill(*v)
	}
	return _u
}

// ClearValidTill clears the value of the "valid_till" field.
func (_u *QuoteVersionUpdate) ClearValidTill() *QuoteVersionUpdate {
	_u.mutation.ClearValidTill()
	return _u
}

// SetTerms sets the "terms" field.
func (_u *QuoteVersionUpdate) SetTerms(v string) *QuoteVersionUpdate {
	_u.mutation.SetTerms(v)
	return _u
}

// SetNillableTerms sets the "terms" field if the given value is not nil.
func (_u *QuoteVersionUpdate) SetNillableTerms(v *string) *QuoteVersionUpdate {
	if v != nil {
		_u.SetTerms(*v)
	}
	return _u
}

// ClearTerms clears the value of the "terms" field.
func (_u *QuoteVersionUpdate) ClearTerms() *QuoteVersionUpdate {
	_u.mutation.ClearTerms()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *QuoteVersionUpdate) SetExtractedJSON(v map[string]interface{}) *QuoteVersionUpdate {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *QuoteVersionUpdate) ClearExtractedJSON() *QuoteVersionUpdate {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QuoteVersionUpdate) SetCreatedAt(v time.Time) *QuoteVersionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QuoteVersionUpdate) SetNillableCreatedAt(v *time.Time) *QuoteVersionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetQuote sets the "quote" edge to the Quote entity.
func (_u *QuoteVersionUpdate) SetQuote(v *Quote) *QuoteVersionUpdate {
	return _u.SetQuoteID(v.ID)
}

// SetSourceEmail sets the "source_email" edge to the Email entity.
func (_u *QuoteVersionUpdate) SetSourceEmail(v *Email) *QuoteVersionUpdate {
	return _u.SetSourceEmailID(v.ID)
}

// AddItemIDs adds the "items" edge to the QuoteItem entity by IDs.
func (_u *QuoteVersionUpdate) AddItemIDs(ids ...uuid.UUID) *QuoteVersionUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the QuoteItem entity.
func (_u *QuoteVersionUpdate) AddItems(v ...*QuoteItem) *QuoteVersionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the QuoteVersionMutation object of the builder.
func (_u *QuoteVersionUpdate) Mutation() *QuoteVersionMutation {
	return _u.mutation
}

// ClearQuote clears the "quote" edge to the Quote entity.
func (_u *QuoteVersionUpdate) ClearQuote() *QuoteVersionUpdate {
	_u.mutation.ClearQuote()
	return _u
}

// ClearSourceEmail clears the "source_email" edge to the Email entity.
func (_u *QuoteVersionUpdate) ClearSourceEmail() *QuoteVersionUpdate {
	_u.mutation.ClearSourceEmail()
	return _u
}

// ClearItems clears all "items" edges to the QuoteItem entity.
func (_u *QuoteVersionUpdate) ClearItems() *QuoteVersionUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to QuoteItem entities by IDs.
func (_u *QuoteVersionUpdate) RemoveItemIDs(ids ...uuid.UUID) *QuoteVersionUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to QuoteItem entities.
func (_u *QuoteVersionUpdate) RemoveItems(v ...*QuoteItem) *QuoteVersionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuoteVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuoteVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteVersionUpdate) check() error {
	if _u.mutation.QuoteCleared() && len(_u.mutation.QuoteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuoteVersion.quote"`)
	}
	if _u.mutation.SourceEmailCleared() && len(_u.mutation.SourceEmailIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuoteVersion.source_email"`)
	}
	return nil
}

func (_u *QuoteVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quoteversion.Table, quoteversion.Columns, sqlgraph.NewFieldSpec(quoteversion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VersionLabel(); ok {
		_spec.SetField(quoteversion.FieldVersionLabel, field.TypeString, value)
	}
	if _u.mutation.VersionLabelCleared() {
		_spec.ClearField(quoteversion.FieldVersionLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(quoteversion.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(quoteversion.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(quoteversion.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(quoteversion.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Tax(); ok {
		_spec.SetField(quoteversion.FieldTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTax(); ok {
		_spec.AddField(quoteversion.FieldTax, field.TypeFloat64, value)
	}
	if _u.mutation.TaxCleared() {
		_spec.ClearField(quoteversion.FieldTax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Shipping(); ok {
		_spec.SetField(quoteversion.FieldShipping, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedShipping(); ok {
		_spec.AddField(quoteversion.FieldShipping, field.TypeFloat64, value)
	}
	if _u.mutation.ShippingCleared() {
		_spec.ClearField(quoteversion.FieldShipping, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(quoteversion.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(quoteversion.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ValidTill(); ok {
		_spec.SetField(quoteversion.FieldValidTill, field.TypeTime, value)
	}
	if _u.mutation.ValidTillCleared() {
		_spec.ClearField(quoteversion.FieldValidTill, field.TypeTime)
	}
	if value, ok := _u.mutation.Terms(); ok {
		_spec.SetField(quoteversion.FieldTerms, field.TypeString, value)
	}
	if _u.mutation.TermsCleared() {
		_spec.ClearField(quoteversion.FieldTerms, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(quoteversion.FieldExtractedJSON, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(quoteversion.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(quoteversion.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.QuoteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuoteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SourceEmailCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceEmailIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quoteversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuoteVersionUpdateOne is the builder for updating a single QuoteVersion entity.
type QuoteVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuoteVersionMutation
}

// SetQuoteID sets the "quote_id" field.
func (_u *QuoteVersionUpdateOne) SetQuoteID(v uuid.UUID) *QuoteVersionUpdateOne {
	_u.mutation.SetQuoteID(v)
	return _u
}

// SetNillableQuoteID sets the "quote_id" field if the given value is not nil.
func (_u *QuoteVersionUpdateOne) SetNillableQuoteID(v *uuid.UUID) *QuoteVersionUpdateOne {
	if v != nil {
		_u.SetQuoteID(*v)
	}
	return _u
}

// SetSourceEmailID sets the "source_email_id" field.
func (_u *QuoteVersionUpdateOne) SetSourceEmailID(v uuid.UUID) *QuoteVersionUpdateOne {
	_u.mutation.SetSourceEmailID(v)
	return _u
}

// SetNillableSourceEmailID sets the "source_email_id" field if the given value is not nil.
func (_u *QuoteVersionUpdateOne) SetNillableSourceEmailID(v *uuid.UUID) *QuoteVersionUpdateOne {
	if v != nil {
		_u.SetSourceEmailID(*v)
	}
	return _u
}

// SetVersionLabel sets the "version_label" field.
func (_u *QuoteVersionUpdateOne) SetVersionLabel(v string) *QuoteVersionUpdateOne {
	_u.mutation.SetVersionLabel(v)
	return _u
}

// SetNillableVersionLabel sets the "version_label" field if the given value is not nil.
func (_u *QuoteVersionUpdateOne) SetNillableVersionLabel(v *string) *QuoteVersionUpdateOne {
	if v != nil {
		_u.SetVersionLabel(*v)
	}
	return _u
}

// ClearVersionLabel clears the value of the "version_label" field.
func (_u *QuoteVersionUpdateOne) ClearVersionLabel() *QuoteVersionUpdateOne {
	_u.mutation.ClearVersionLabel()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *QuoteVersionUpdateOne) SetCurrency(v string) *QuoteVersionUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *QuoteVersionUpdateOne) SetNillableCurrency(v *string) *QuoteVersionUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *QuoteVersionUpdateOne) SetSubtotal(v decimal.Decimal) *QuoteVersionUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *QuoteVersionUpdateOne) SetNillableSubtotal(v *decimal.Decimal) *QuoteVersionUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *QuoteVersionUpdateOne) AddSubtotal(v decimal.Decimal) *QuoteVersionUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *QuoteVersionUpdateOne) ClearSubtotal() *QuoteVersionUpdateOne {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTax sets the "tax" field.
func (_u *QuoteVersionUpdateOne) SetTax(v decimal.Decimal) *QuoteVersionUpdateOne {
	_u.mutation.ResetTax()
	_u.mutation.SetTax(v)
	return _u
}

// SetNillableTax sets the "tax" field if the given value is not nil.
func (_u *QuoteVersionUpdateOne) SetNillableTax(v *decimal.Decimal) *QuoteVersionUpdateOne {
	if v != nil {
		_u.SetTax(*v)
	}
	return _u
}

// AddTax adds value to the "tax" field.
func (_u *QuoteVersionUpdateOne) AddTax(v decimal.Decimal) *QuoteVersionUpdateOne {
	_u.mutation.AddTax(v)
	return _u
}

// ClearTax clears the value of the "tax" field.
func (_u *QuoteVersionUpdateOne) ClearTax() *QuoteVersionUpdateOne {
	_u.mutation.ClearTax()
	return _u
}

// SetShipping sets the "shipping" field.
func (_u *QuoteVersionUpdateOne) SetShipping(v decimal.Decimal) *QuoteVersionUpdateOne {
	_u.mutation.ResetShipping()
	_u.mutation.SetShipping(v)
	return _u
}

// SetNillableShipping sets the "shipping" field if the given value is not nil.
func (_u *QuoteVersionUpdateOne) SetNillableShipping(v *decimal.Decimal) *QuoteVersionUpdateOne {
	if v != nil {
		_u.SetShipping(*v)
	}
	return _u
}

// AddShipping adds value to the "shipping" field.
func (_u *QuoteVersionUpdateOne) AddShipping(v decimal.Decimal) *QuoteVersionUpdateOne {
	_u.mutation.AddShipping(v)
	return _u
}

// ClearShipping clears the value of the "shipping" field.
func (_u *QuoteVersionUpdateOne) ClearShipping() *QuoteVersionUpdateOne {
	_u.mutation.ClearShipping()
	return _u
}

// SetTotal sets the "total" field.
func (_u *QuoteVersionUpdateOne) SetTotal(v decimal.Decimal) *QuoteVersionUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *QuoteVersionUpdateOne) SetNillableTotal(v *decimal.Decimal) *QuoteVersionUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *QuoteVersionUpdateOne) AddTotal(v decimal.Decimal) *QuoteVersionUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetValidTill sets the "valid_till" field.
func (_u *QuoteVersionUpdateOne) SetValidTill(v time.Time) *QuoteVersionUpdateOne {
	_u.mutation.SetValidTill(v)
	return _u
}

// SetNillableValidTill sets the "valid_till" field if the given value is not nil.
func (_u *QuoteVersionUpdateOne) SetNillableValidTill(v *time.Time) *QuoteVersionUpdateOne {
	if v != nil {
		_u.SetValidTill(*v)
	}
	return _u
}

// ClearValidTill clears the value of the "valid_till" field.
func (_u *QuoteVersionUpdateOne) ClearValidTill() *QuoteVersionUpdateOne {
	_u.mutation.ClearValidTill()
	return _u
}

// SetTerms sets the "terms" field.
func (_u *QuoteVersionUpdateOne) SetTerms(v string) *QuoteVersionUpdateOne {
	_u.mutation.SetTerms(v)
	return _u
}

// SetNillableTerms sets the "terms" field if the given value is not nil.
func (_u *QuoteVersionUpdateOne) SetNillableTerms(v *string) *QuoteVersionUpdateOne {
	if v != nil {
		_u.SetTerms(*v)
	}
	return _u
}

// ClearTerms clears the value of the "terms" field.
func (_u *QuoteVersionUpdateOne) ClearTerms() *QuoteVersionUpdateOne {
	_u.mutation.ClearTerms()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *QuoteVersionUpdateOne) SetExtractedJSON(v map[string]interface{}) *QuoteVersionUpdateOne {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *QuoteVersionUpdateOne) ClearExtractedJSON() *QuoteVersionUpdateOne {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QuoteVersionUpdateOne) SetCreatedAt(v time.Time) *QuoteVersionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QuoteVersionUpdateOne) SetNillableCreatedAt(v *time.Time) *QuoteVersionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetQuote sets the "quote" edge to the Quote entity.
func (_u *QuoteVersionUpdateOne) SetQuote(v *Quote) *QuoteVersionUpdateOne {
	return _u.SetQuoteID(v.ID)
}

// SetSourceEmail sets the "source_email" edge to the Email entity.
func (_u *QuoteVersionUpdateOne) SetSourceEmail(v *Email) *QuoteVersionUpdateOne {
	return _u.SetSourceEmailID(v.ID)
}

// AddItemIDs adds the "items" edge to the QuoteItem entity by IDs.
func (_u *QuoteVersionUpdateOne) AddItemIDs(ids ...uuid.UUID) *QuoteVersionUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the QuoteItem entity.
func (_u *QuoteVersionUpdateOne) AddItems(v ...*QuoteItem) *QuoteVersionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the QuoteVersionMutation object of the builder.
func (_u *QuoteVersionUpdateOne) Mutation() *QuoteVersionMutation {
	return _u.mutation
}

// ClearQuote clears the "quote" edge to the Quote entity.
func (_u *QuoteVersionUpdateOne) ClearQuote() *QuoteVersionUpdateOne {
	_u.mutation.ClearQuote()
	return _u
}

// ClearSourceEmail clears the "source_email" edge to the Email entity.
func (_u *QuoteVersionUpdateOne) ClearSourceEmail() *QuoteVersionUpdateOne {
	_u.mutation.ClearSourceEmail()
	return _u
}

// ClearItems clears all "items" edges to the QuoteItem entity.
func (_u *QuoteVersionUpdateOne) ClearItems() *QuoteVersionUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to QuoteItem entities by IDs.
func (_u *QuoteVersionUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *QuoteVersionUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to QuoteItem entities.
func (_u *QuoteVersionUpdateOne) RemoveItems(v ...*QuoteItem) *QuoteVersionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the QuoteVersionUpdate builder.
func (_u *QuoteVersionUpdateOne) Where(ps ...predicate.QuoteVersion) *QuoteVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuoteVersionUpdateOne) Select(field string, fields ...string) *QuoteVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuoteVersion entity.
func (_u *QuoteVersionUpdateOne) Save(ctx context.Context) (*QuoteVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteVersionUpdateOne) SaveX(ctx context.Context) *QuoteVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuoteVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteVersionUpdateOne) check() error {
	if _u.mutation.QuoteCleared() && len(_u.mutation.QuoteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuoteVersion.quote"`)
	}
	if _u.mutation.SourceEmailCleared() && len(_u.mutation.SourceEmailIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuoteVersion.source_email"`)
	}
	return nil
}

func (_u *QuoteVersionUpdateOne) sqlSave(ctx context.Context) (_node *QuoteVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quoteversion.Table, quoteversion.Columns, sqlgraph.NewFieldSpec(quoteversion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuoteVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quoteversion.FieldID)
		for _, f := range fields {
			if !quoteversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quoteversion.FieldID {
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
	if value, ok := _u.mutation.VersionLabel(); ok {
		_spec.SetField(quoteversion.FieldVersionLabel, field.TypeString, value)
	}
	if _u.mutation.VersionLabelCleared() {
		_spec.ClearField(quoteversion.FieldVersionLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(quoteversion.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(quoteversion.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(quoteversion.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(quoteversion.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Tax(); ok {
		_spec.SetField(quoteversion.FieldTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTax(); ok {
		_spec.AddField(quoteversion.FieldTax, field.TypeFloat64, value)
	}
	if _u.mutation.TaxCleared() {
		_spec.ClearField(quoteversion.FieldTax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Shipping(); ok {
		_spec.SetField(quoteversion.FieldShipping, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedShipping(); ok {
		_spec.AddField(quoteversion.FieldShipping, field.TypeFloat64, value)
	}
	if _u.mutation.ShippingCleared() {
		_spec.ClearField(quoteversion.FieldShipping, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(quoteversion.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(quoteversion.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ValidTill(); ok {
		_spec.SetField(quoteversion.FieldValidTill, field.TypeTime, value)
	}
	if _u.mutation.ValidTillCleared() {
		_spec.ClearField(quoteversion.FieldValidTill, field.TypeTime)
	}
	if value, ok := _u.mutation.Terms(); ok {
		_spec.SetField(quoteversion.FieldTerms, field.TypeString, value)
	}
	if _u.mutation.TermsCleared() {
		_spec.ClearField(quoteversion.FieldTerms, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(quoteversion.FieldExtractedJSON, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(quoteversion.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(quoteversion.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.QuoteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuoteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SourceEmailCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceEmailIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuoteVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quoteversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
