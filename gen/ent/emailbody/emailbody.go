// Code generated by ent, DO NOT EDIT.

package emailbody

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the emailbody type in the database.
	Label = "email_body"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmailID holds the string denoting the email_id field in the database.
	FieldEmailID = "email_id"
	// FieldMimeType holds the string denoting the mime_type field in the database.
	FieldMimeType = "mime_type"
	// FieldBodyText holds the string denoting the body_text field in the database.
	FieldBodyText = "body_text"
	// FieldBodyHTML holds the string denoting the body_html field in the database.
	FieldBodyHTML = "body_html"
	// EdgeEmail holds the string denoting the email edge name in mutations.
	EdgeEmail = "email"
	// Table holds the table name of the emailbody in the database.
	Table = "email_bodies"
	// EmailTable is the table that holds the email relation/edge.
	EmailTable = "email_bodies"
	// EmailInverseTable is the table name for the Email entity.
	// It exists in this package in order to avoid circular dependency with the "email" package.
	EmailInverseTable = "emails"
	// EmailColumn is the table column denoting the email relation/edge.
	EmailColumn = "email_id"
)

// Columns holds all SQL columns for emailbody fields.
var Columns = []string{
	FieldID,
	FieldEmailID,
	FieldMimeType,
	FieldBodyText,
	FieldBodyHTML,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the EmailBody queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmailID orders the results by the email_id field.
func ByEmailID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailID, opts...).ToFunc()
}

// ByMimeType orders the results by the mime_type field.
func ByMimeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimeType, opts...).ToFunc()
}

// ByBodyText orders the results by the body_text field.
func ByBodyText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBodyText, opts...).ToFunc()
}

// ByBodyHTML orders the results by the body_html field.
func ByBodyHTML(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBodyHTML, opts...).ToFunc()
}

// ByEmailField orders the results by email field.
func ByEmailField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEmailStep(), sql.OrderByField(field, opts...))
	}
}
func newEmailStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EmailInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EmailTable, EmailColumn),
	)
}
