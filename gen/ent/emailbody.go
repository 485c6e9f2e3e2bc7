// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/email"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/emailbody"
	"github.com/google/uuid"
)

// EmailBody is the model entity for the EmailBody schema.
type EmailBody struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EmailID holds the value of the "email_id" field.
	EmailID uuid.UUID `json:"email_id,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType *string `json:"mime_type,omitempty"`
	// BodyText holds the value of the "body_text" field.
	BodyText *string `json:"body_text,omitempty"`
	// BodyHTML holds the value of the "body_html" field.
	BodyHTML *string `json:"body_html,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EmailBodyQuery when eager-loading is set.
	Edges        EmailBodyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EmailBodyEdges holds the relations/edges for other nodes in the graph.
type EmailBodyEdges struct {
	// Email holds the value of the email edge.
	Email *Email `json:"email,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EmailOrErr returns the Email value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EmailBodyEdges) EmailOrErr() (*Email, error) {
	if e.Email != nil {
		return e.Email, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: email.Label}
	}
	return nil, &NotLoadedError{edge: "email"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EmailBody) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case emailbody.FieldMimeType, emailbody.FieldBodyText, emailbody.FieldBodyHTML:
			values[i] = new(sql.NullString)
		case emailbody.FieldID, emailbody.FieldEmailID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EmailBody fields.
func (_m *EmailBody) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case emailbody.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case emailbody.FieldEmailID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field email_id", values[i])
			} else if value != nil {
				_m.EmailID = *value
			}
		case emailbody.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				_m.MimeType = new(string)
				*_m.MimeType = value.String
			}
		case emailbody.FieldBodyText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body_text", values[i])
			} else if value.Valid {
				_m.BodyText = new(string)
				*_m.BodyText = value.String
			}
		case emailbody.FieldBodyHTML:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body_html", values[i])
			} else if value.Valid {
				_m.BodyHTML = new(string)
				*_m.BodyHTML = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EmailBody.
// This includes values selected through modifiers, order, etc.
func (_m *EmailBody) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEmail queries the "email" edge of the EmailBody entity.
func (_m *EmailBody) QueryEmail() *EmailQuery {
	return NewEmailBodyClient(_m.config).QueryEmail(_m)
}

// Update returns a builder for updating this EmailBody.
// Note that you need to call EmailBody.Unwrap() before calling this method if this EmailBody
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EmailBody) Update() *EmailBodyUpdateOne {
	return NewEmailBodyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EmailBody entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EmailBody) Unwrap() *EmailBody {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EmailBody is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EmailBody) String() string {
	var builder strings.Builder
	builder.WriteString("EmailBody(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("email_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailID))
	builder.WriteString(", ")
	if v := _m.MimeType; v != nil {
		builder.WriteString("mime_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BodyText; v != nil {
		builder.WriteString("body_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BodyHTML; v != nil {
		builder.WriteString("body_html=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// EmailBodies is a parsable slice of EmailBody.
type EmailBodies []*EmailBody
