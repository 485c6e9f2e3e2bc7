// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteitem"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteversion"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteItem is the model entity for the QuoteItem schema.
type QuoteItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// VersionID holds the value of the "version_id" field.
	VersionID uuid.UUID `json:"version_id,omitempty"`
	// Sku holds the value of the "sku" field.
	Sku *string `json:"sku,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity decimal.Decimal `json:"quantity,omitempty"`
	// UnitPrice holds the value of the "unit_price" field.
	UnitPrice decimal.Decimal `json:"unit_price,omitempty"`
	// Discount holds the value of the "discount" field.
	Discount *decimal.Decimal `json:"discount,omitempty"`
	// LineTotal holds the value of the "line_total" field.
	LineTotal *decimal.Decimal `json:"line_total,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuoteItemQuery when eager-loading is set.
	Edges        QuoteItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuoteItemEdges holds the relations/edges for other nodes in the graph.
type QuoteItemEdges struct {
	// Version holds the value of the version edge.
	Version *QuoteVersion `json:"version,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// VersionOrErr returns the Version value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuoteItemEdges) VersionOrErr() (*QuoteVersion, error) {
	if e.Version != nil {
		return e.Version, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: quoteversion.Label}
	}
	return nil, &NotLoadedError{edge: "version"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuoteItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quoteitem.FieldDiscount, quoteitem.FieldLineTotal:
			values[i] = &sql.NullScanner{S: new(decimal.Decimal)}
		case quoteitem.FieldQuantity, quoteitem.FieldUnitPrice:
			values[i] = new(decimal.Decimal)
		case quoteitem.FieldSku, quoteitem.FieldDescription:
			values[i] = new(sql.NullString)
		case quoteitem.FieldID, quoteitem.FieldVersionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuoteItem fields.
func (_m *QuoteItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quoteitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case quoteitem.FieldVersionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field version_id", values[i])
			} else if value != nil {
				_m.VersionID = *value
			}
		case quoteitem.FieldSku:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sku", values[i])
			} else if value.Valid {
				_m.Sku = new(string)
				*_m.Sku = value.String
			}
		case quoteitem.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case quoteitem.FieldQuantity:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value != nil {
				_m.Quantity = *value
			}
		case quoteitem.FieldUnitPrice:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field unit_price", values[i])
			} else if value != nil {
				_m.UnitPrice = *value
			}
		case quoteitem.FieldDiscount:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field discount", values[i])
			} else if value.Valid {
				_m.Discount = new(decimal.Decimal)
				*_m.Discount = *value.S.(*decimal.Decimal)
			}
		case quoteitem.FieldLineTotal:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field line_total", values[i])
			} else if value.Valid {
				_m.LineTotal = new(decimal.Decimal)
				*_m.LineTotal = *value.S.(*decimal.Decimal)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuoteItem.
// This includes values selected through modifiers, order, etc.
func (_m *QuoteItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVersion queries the "version" edge of the QuoteItem entity.
func (_m *QuoteItem) QueryVersion() *QuoteVersionQuery {
	return NewQuoteItemClient(_m.config).QueryVersion(_m)
}

// Update returns a builder for updating this QuoteItem.
// Note that you need to call QuoteItem.Unwrap() before calling this method if this QuoteItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuoteItem) Update() *QuoteItemUpdateOne {
	return NewQuoteItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuoteItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuoteItem) Unwrap() *QuoteItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuoteItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuoteItem) String() string {
	var builder strings.Builder
	builder.WriteString("QuoteItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("version_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.VersionID))
	builder.WriteString(", ")
	if v := _m.Sku; v != nil {
		builder.WriteString("sku=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("unit_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitPrice))
	builder.WriteString(", ")
	if v := _m.Discount; v != nil {
		builder.WriteString("discount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LineTotal; v != nil {
		builder.WriteString("line_total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// QuoteItems is a parsable slice of QuoteItem.
type QuoteItems []*QuoteItem
