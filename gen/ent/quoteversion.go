// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/email"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quote"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteversion"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteVersion is the model entity for the QuoteVersion schema.
type QuoteVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// QuoteID holds the value of the "quote_id" field.
	QuoteID uuid.UUID `json:"quote_id,omitempty"`
	// SourceEmailID holds the value of the "source_email_id" field.
	SourceEmailID uuid.UUID `json:"source_email_id,omitempty"`
	// VersionLabel holds the value of the "version_label" field.
	VersionLabel *string `json:"version_label,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// Subtotal holds the value of the "subtotal" field.
	Subtotal *decimal.Decimal `json:"subtotal,omitempty"`
	// Tax holds the value of the "tax" field.
	Tax *decimal.Decimal `json:"tax,omitempty"`
	// Shipping holds the value of the "shipping" field.
	Shipping *decimal.Decimal `json:"shipping,omitempty"`
	// Total holds the value of the "total" field.
	Total decimal.Decimal `json:"total,omitempty"`
	// ValidTill holds the value of the "valid_till" field.
	ValidTill *time.Time `json:"valid_till,omitempty"`
	// Terms holds the value of the "terms" field.
	Terms *string `json:"terms,omitempty"`
	// ExtractedJSON holds the value of the "extracted_json" field.
	ExtractedJSON map[string]interface{} `json:"extracted_json,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuoteVersionQuery when eager-loading is set.
	Edges        QuoteVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuoteVersionEdges holds the relations/edges for other nodes in the graph.
type QuoteVersionEdges struct {
	// Quote holds the value of the quote edge.
	Quote *Quote `json:"quote,omitempty"`
	// SourceEmail holds the value of the source_email edge.
	SourceEmail *Email `json:"source_email,omitempty"`
	// Items holds the value of the items edge.
	Items []*QuoteItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// QuoteOrErr returns the Quote value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuoteVersionEdges) QuoteOrErr() (*Quote, error) {
	if e.Quote != nil {
		return e.Quote, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: quote.Label}
	}
	return nil, &NotLoadedError{edge: "quote"}
}

// SourceEmailOrErr returns the SourceEmail value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuoteVersionEdges) SourceEmailOrErr() (*Email, error) {
	if e.SourceEmail != nil {
		return e.SourceEmail, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: email.Label}
	}
	return nil, &NotLoadedError{edge: "source_email"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e QuoteVersionEdges) ItemsOrErr() ([]*QuoteItem, error) {
	if e.loadedTypes[2] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuoteVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quoteversion.FieldSubtotal, quoteversion.FieldTax, quoteversion.FieldShipping:
			values[i] = &sql.NullScanner{S: new(decimal.Decimal)}
		case quoteversion.FieldExtractedJSON:
			values[i] = new([]byte)
		case quoteversion.FieldTotal:
			values[i] = new(decimal.Decimal)
		case quoteversion.FieldVersionLabel, quoteversion.FieldCurrency, quoteversion.FieldTerms:
			values[i] = new(sql.NullString)
		case quoteversion.FieldValidTill, quoteversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case quoteversion.FieldID, quoteversion.FieldQuoteID, quoteversion.FieldSourceEmailID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuoteVersion fields.
func (_m *QuoteVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quoteversion.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case quoteversion.FieldQuoteID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field quote_id", values[i])
			} else if value != nil {
				_m.QuoteID = *value
			}
		case quoteversion.FieldSourceEmailID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field source_email_id", values[i])
			} else if value != nil {
				_m.SourceEmailID = *value
			}
		case quoteversion.FieldVersionLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version_label", values[i])
			} else if value.Valid {
				_m.VersionLabel = new(string)
				*_m.VersionLabel = value.String
			}
		case quoteversion.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case quoteversion.FieldSubtotal:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field subtotal", values[i])
			} else if value.Valid {
				_m.Subtotal = new(decimal.Decimal)
				*_m.Subtotal = *value.S.(*decimal.Decimal)
			}
		case quoteversion.FieldTax:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field tax", values[i])
			} else if value.Valid {
				_m.Tax = new(decimal.Decimal)
				*_m.Tax = *value.S.(*decimal.Decimal)
			}
		case quoteversion.FieldShipping:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field shipping", values[i])
			} else if value.Valid {
				_m.Shipping = new(decimal.Decimal)
				*_m.Shipping = *value.S.(*decimal.Decimal)
			}
		case quoteversion.FieldTotal:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value != nil {
				_m.Total = *value
			}
		case quoteversion.FieldValidTill:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_till", values[i])
			} else if value.Valid {
				_m.ValidTill = new(time.Time)
				*_m.ValidTill = value.Time
			}
		case quoteversion.FieldTerms:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field terms", values[i])
			} else if value.Valid {
				_m.Terms = new(string)
				*_m.Terms = value.String
			}
		case quoteversion.FieldExtractedJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedJSON); err != nil {
					return fmt.Errorf("unmarshal field extracted_json: %w", err)
				}
			}
		case quoteversion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuoteVersion.
// This includes values selected through modifiers, order, etc.
func (_m *QuoteVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuote queries the "quote" edge of the QuoteVersion entity.
func (_m *QuoteVersion) QueryQuote() *QuoteQuery {
	return NewQuoteVersionClient(_m.config).QueryQuote(_m)
}

// QuerySourceEmail queries the "source_email" edge of the QuoteVersion entity.
func (_m *QuoteVersion) QuerySourceEmail() *EmailQuery {
	return NewQuoteVersionClient(_m.config).QuerySourceEmail(_m)
}

// QueryItems queries the "items" edge of the QuoteVersion entity.
func (_m *QuoteVersion) QueryItems() *QuoteItemQuery {
	return NewQuoteVersionClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this QuoteVersion.
// Note that you need to call QuoteVersion.Unwrap() before calling this method if this QuoteVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuoteVersion) Update() *QuoteVersionUpdateOne {
	return NewQuoteVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuoteVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuoteVersion) Unwrap() *QuoteVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuoteVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuoteVersion) String() string {
	var builder strings.Builder
	builder.WriteString("QuoteVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("quote_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuoteID))
	builder.WriteString(", ")
	builder.WriteString("source_email_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceEmailID))
	builder.WriteString(", ")
	if v := _m.VersionLabel; v != nil {
		builder.WriteString("version_label=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	if v := _m.Subtotal; v != nil {
		builder.WriteString("subtotal=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Tax; v != nil {
		builder.WriteString("tax=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Shipping; v != nil {
		builder.WriteString("shipping=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	if v := _m.ValidTill; v != nil {
		builder.WriteString("valid_till=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Terms; v != nil {
		builder.WriteString("terms=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("extracted_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedJSON))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuoteVersions is a parsable slice of QuoteVersion.
type QuoteVersions []*QuoteVersion
