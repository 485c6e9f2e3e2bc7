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
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/thread"
	"github.com/google/uuid"
)

// Email is the model entity for the Email schema.
type Email struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ThreadID holds the value of the "thread_id" field.
	ThreadID uuid.UUID `json:"thread_id,omitempty"`
	// ProviderMessageID holds the value of the "provider_message_id" field.
	ProviderMessageID string `json:"provider_message_id,omitempty"`
	// FromAddr holds the value of the "from_addr" field.
	FromAddr *string `json:"from_addr,omitempty"`
	// ToAddrs holds the value of the "to_addrs" field.
	ToAddrs []string `json:"to_addrs,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject *string `json:"subject,omitempty"`
	// SentAt holds the value of the "sent_at" field.
	SentAt *time.Time `json:"sent_at,omitempty"`
	// Snippet holds the value of the "snippet" field.
	Snippet *string `json:"snippet,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EmailQuery when eager-loading is set.
	Edges        EmailEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EmailEdges holds the relations/edges for other nodes in the graph.
type EmailEdges struct {
	// Thread holds the value of the thread edge.
	Thread *Thread `json:"thread,omitempty"`
	// Bodies holds the value of the bodies edge.
	Bodies []*EmailBody `json:"bodies,omitempty"`
	// Attachments holds the value of the attachments edge.
	Attachments []*Attachment `json:"attachments,omitempty"`
	// QuoteVersions holds the value of the quote_versions edge.
	QuoteVersions []*QuoteVersion `json:"quote_versions,omitempty"`
	// AnchoredQuotes holds the value of the anchored_quotes edge.
	AnchoredQuotes []*Quote `json:"anchored_quotes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// ThreadOrErr returns the Thread value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EmailEdges) ThreadOrErr() (*Thread, error) {
	if e.Thread != nil {
		return e.Thread, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: thread.Label}
	}
	return nil, &NotLoadedError{edge: "thread"}
}

// BodiesOrErr returns the Bodies value or an error if the edge
// was not loaded in eager-loading.
func (e EmailEdges) BodiesOrErr() ([]*EmailBody, error) {
	if e.loadedTypes[1] {
		return e.Bodies, nil
	}
	return nil, &NotLoadedError{edge: "bodies"}
}

// AttachmentsOrErr returns the Attachments value or an error if the edge
// was not loaded in eager-loading.
func (e EmailEdges) AttachmentsOrErr() ([]*Attachment, error) {
	if e.loadedTypes[2] {
		return e.Attachments, nil
	}
	return nil, &NotLoadedError{edge: "attachments"}
}

// QuoteVersionsOrErr returns the QuoteVersions value or an error if the edge
// was not loaded in eager-loading.
func (e EmailEdges) QuoteVersionsOrErr() ([]*QuoteVersion, error) {
	if e.loadedTypes[3] {
		return e.QuoteVersions, nil
	}
	return nil, &NotLoadedError{edge: "quote_versions"}
}

// AnchoredQuotesOrErr returns the AnchoredQuotes value or an error if the edge
// was not loaded in eager-loading.
func (e EmailEdges) AnchoredQuotesOrErr() ([]*Quote, error) {
	if e.loadedTypes[4] {
		return e.AnchoredQuotes, nil
	}
	return nil, &NotLoadedError{edge: "anchored_quotes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Email) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case email.FieldToAddrs:
			values[i] = new([]byte)
		case email.FieldProviderMessageID, email.FieldFromAddr, email.FieldSubject, email.FieldSnippet:
			values[i] = new(sql.NullString)
		case email.FieldSentAt, email.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case email.FieldID, email.FieldThreadID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Email fields.
func (_m *Email) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case email.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case email.FieldThreadID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value != nil {
				_m.ThreadID = *value
			}
		case email.FieldProviderMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_message_id", values[i])
			} else if value.Valid {
				_m.ProviderMessageID = value.String
			}
		case email.FieldFromAddr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_addr", values[i])
			} else if value.Valid {
				_m.FromAddr = new(string)
				*_m.FromAddr = value.String
			}
		case email.FieldToAddrs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field to_addrs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToAddrs); err != nil {
					return fmt.Errorf("unmarshal field to_addrs: %w", err)
				}
			}
		case email.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = new(string)
				*_m.Subject = value.String
			}
		case email.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = new(time.Time)
				*_m.SentAt = value.Time
			}
		case email.FieldSnippet:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field snippet", values[i])
			} else if value.Valid {
				_m.Snippet = new(string)
				*_m.Snippet = value.String
			}
		case email.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Email.
// This includes values selected through modifiers, order, etc.
func (_m *Email) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryThread queries the "thread" edge of the Email entity.
func (_m *Email) QueryThread() *ThreadQuery {
	return NewEmailClient(_m.config).QueryThread(_m)
}

// QueryBodies queries the "bodies" edge of the Email entity.
func (_m *Email) QueryBodies() *EmailBodyQuery {
	return NewEmailClient(_m.config).QueryBodies(_m)
}

// QueryAttachments queries the "attachments" edge of the Email entity.
func (_m *Email) QueryAttachments() *AttachmentQuery {
	return NewEmailClient(_m.config).QueryAttachments(_m)
}

// QueryQuoteVersions queries the "quote_versions" edge of the Email entity.
func (_m *Email) QueryQuoteVersions() *QuoteVersionQuery {
	return NewEmailClient(_m.config).QueryQuoteVersions(_m)
}

// QueryAnchoredQuotes queries the "anchored_quotes" edge of the Email entity.
func (_m *Email) QueryAnchoredQuotes() *QuoteQuery {
	return NewEmailClient(_m.config).QueryAnchoredQuotes(_m)
}

// Update returns a builder for updating this Email.
// Note that you need to call Email.Unwrap() before calling this method if this Email
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Email) Update() *EmailUpdateOne {
	return NewEmailClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Email entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Email) Unwrap() *Email {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Email is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Email) String() string {
	var builder strings.Builder
	builder.WriteString("Email(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("thread_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ThreadID))
	builder.WriteString(", ")
	builder.WriteString("provider_message_id=")
	builder.WriteString(_m.ProviderMessageID)
	builder.WriteString(", ")
	if v := _m.FromAddr; v != nil {
		builder.WriteString("from_addr=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("to_addrs=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToAddrs))
	builder.WriteString(", ")
	if v := _m.Subject; v != nil {
		builder.WriteString("subject=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SentAt; v != nil {
		builder.WriteString("sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Snippet; v != nil {
		builder.WriteString("snippet=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Emails is a parsable slice of Email.
type Emails []*Email
