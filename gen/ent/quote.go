// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/email"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quote"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/thread"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/vendor"
	"github.com/google/uuid"
)

// Quote is the model entity for the Quote schema.
type Quote struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ThreadID holds the value of the "thread_id" field.
	ThreadID uuid.UUID `json:"thread_id,omitempty"`
	// VendorID holds the value of the "vendor_id" field.
	VendorID uuid.UUID `json:"vendor_id,omitempty"`
	// AnchorEmailID holds the value of the "anchor_email_id" field.
	AnchorEmailID *uuid.UUID `json:"anchor_email_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuoteQuery when eager-loading is set.
	Edges        QuoteEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuoteEdges holds the relations/edges for other nodes in the graph.
type QuoteEdges struct {
	// Thread holds the value of the thread edge.
	Thread *Thread `json:"thread,omitempty"`
	// Vendor holds the value of the vendor edge.
	Vendor *Vendor `json:"vendor,omitempty"`
	// AnchorEmail holds the value of the anchor_email edge.
	AnchorEmail *Email `json:"anchor_email,omitempty"`
	// Versions holds the value of the versions edge.
	Versions []*QuoteVersion `json:"versions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ThreadOrErr returns the Thread value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuoteEdges) ThreadOrErr() (*Thread, error) {
	if e.Thread != nil {
		return e.Thread, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: thread.Label}
	}
	return nil, &NotLoadedError{edge: "thread"}
}

// VendorOrErr returns the Vendor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuoteEdges) VendorOrErr() (*Vendor, error) {
	if e.Vendor != nil {
		return e.Vendor, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: vendor.Label}
	}
	return nil, &NotLoadedError{edge: "vendor"}
}

// AnchorEmailOrErr returns the AnchorEmail value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuoteEdges) AnchorEmailOrErr() (*Email, error) {
	if e.AnchorEmail != nil {
		return e.AnchorEmail, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: email.Label}
	}
	return nil, &NotLoadedError{edge: "anchor_email"}
}

// VersionsOrErr returns the Versions value or an error if the edge
// was not loaded in eager-loading.
func (e QuoteEdges) VersionsOrErr() ([]*QuoteVersion, error) {
	if e.loadedTypes[3] {
		return e.Versions, nil
	}
	return nil, &NotLoadedError{edge: "versions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Quote) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quote.FieldAnchorEmailID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case quote.FieldStatus:
			values[i] = new(sql.NullString)
		case quote.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case quote.FieldID, quote.FieldThreadID, quote.FieldVendorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Quote fields.
func (_m *Quote) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quote.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case quote.FieldThreadID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value != nil {
				_m.ThreadID = *value
			}
		case quote.FieldVendorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_id", values[i])
			} else if value != nil {
				_m.VendorID = *value
			}
		case quote.FieldAnchorEmailID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field anchor_email_id", values[i])
			} else if value.Valid {
				_m.AnchorEmailID = new(uuid.UUID)
				*_m.AnchorEmailID = *value.S.(*uuid.UUID)
			}
		case quote.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case quote.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Quote.
// This includes values selected through modifiers, order, etc.
func (_m *Quote) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryThread queries the "thread" edge of the Quote entity.
func (_m *Quote) QueryThread() *ThreadQuery {
	return NewQuoteClient(_m.config).QueryThread(_m)
}

// QueryVendor queries the "vendor" edge of the Quote entity.
func (_m *Quote) QueryVendor() *VendorQuery {
	return NewQuoteClient(_m.config).QueryVendor(_m)
}

// QueryAnchorEmail queries the "anchor_email" edge of the Quote entity.
func (_m *Quote) QueryAnchorEmail() *EmailQuery {
	return NewQuoteClient(_m.config).QueryAnchorEmail(_m)
}

// QueryVersions queries the "versions" edge of the Quote entity.
func (_m *Quote) QueryVersions() *QuoteVersionQuery {
	return NewQuoteClient(_m.config).QueryVersions(_m)
}

// Update returns a builder for updating this Quote.
// Note that you need to call Quote.Unwrap() before calling this method if this Quote
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Quote) Update() *QuoteUpdateOne {
	return NewQuoteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Quote entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Quote) Unwrap() *Quote {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Quote is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Quote) String() string {
	var builder strings.Builder
	builder.WriteString("Quote(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("thread_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ThreadID))
	builder.WriteString(", ")
	builder.WriteString("vendor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.VendorID))
	builder.WriteString(", ")
	if v := _m.AnchorEmailID; v != nil {
		builder.WriteString("anchor_email_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Quotes is a parsable slice of Quote.
type Quotes []*Quote
