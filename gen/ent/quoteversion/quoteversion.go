// Code generated by ent, DO NOT EDIT.

package quoteversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the quoteversion type in the database.
	Label = "quote_version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuoteID holds the string denoting the quote_id field in the database.
	FieldQuoteID = "quote_id"
	// FieldSourceEmailID holds the string denoting the source_email_id field in the database.
	FieldSourceEmailID = "source_email_id"
	// FieldVersionLabel holds the string denoting the version_label field in the database.
	FieldVersionLabel = "version_label"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldSubtotal holds the string denoting the subtotal field in the database.
	FieldSubtotal = "subtotal"
	// FieldTax holds the string denoting the tax field in the database.
	FieldTax = "tax"
	// FieldShipping holds the string denoting the shipping field in the database.
	FieldShipping = "shipping"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldValidTill holds the string denoting the valid_till field in the database.
	FieldValidTill = "valid_till"
	// FieldTerms holds the string denoting the terms field in the database.
	FieldTerms = "terms"
	// FieldExtractedJSON holds the string denoting the extracted_json field in the database.
	FieldExtractedJSON = "extracted_json"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeQuote holds the string denoting the quote edge name in mutations.
	EdgeQuote = "quote"
	// EdgeSourceEmail holds the string denoting the source_email edge name in mutations.
	EdgeSourceEmail = "source_email"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// Table holds the table name of the quoteversion in the database.
	Table = "quote_versions"
	// QuoteTable is the table that holds the quote relation/edge.
	QuoteTable = "quote_versions"
	// QuoteInverseTable is the table name for the Quote entity.
	// It exists in this package in order to avoid circular dependency with the "quote" package.
	QuoteInverseTable = "quotes"
	// QuoteColumn is the table column denoting the quote relation/edge.
	QuoteColumn = "quote_id"
	// SourceEmailTable is the table that holds the source_email relation/edge.
	SourceEmailTable = "quote_versions"
	// SourceEmailInverseTable is the table name for the Email entity.
	// It exists in this package in order to avoid circular dependency with the "email" package.
	SourceEmailInverseTable = "emails"
	// SourceEmailColumn is the table column denoting the source_email relation/edge.
	SourceEmailColumn = "source_email_id"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "quote_items"
	// ItemsInverseTable is the table name for the QuoteItem entity.
	// It exists in this package in order to avoid circular dependency with the "quoteitem" package.
	ItemsInverseTable = "quote_items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "version_id"
)

// Columns holds all SQL columns for quoteversion fields.
var Columns = []string{
	FieldID,
	FieldQuoteID,
	FieldSourceEmailID,
	FieldVersionLabel,
	FieldCurrency,
	FieldSubtotal,
	FieldTax,
	FieldShipping,
	FieldTotal,
	FieldValidTill,
	FieldTerms,
	FieldExtractedJSON,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the QuoteVersion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuoteID orders the results by the quote_id field.
func ByQuoteID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuoteID, opts...).ToFunc()
}

// BySourceEmailID orders the results by the source_email_id field.
func BySourceEmailID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceEmailID, opts...).ToFunc()
}

// ByVersionLabel orders the results by the version_label field.
func ByVersionLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersionLabel, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// BySubtotal orders the results by the subtotal field.
func BySubtotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtotal, opts...).ToFunc()
}

// ByTax orders the results by the tax field.
func ByTax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTax, opts...).ToFunc()
}

// ByShipping orders the results by the shipping field.
func ByShipping(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShipping, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByValidTill orders the results by the valid_till field.
func ByValidTill(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidTill, opts...).ToFunc()
}

// ByTerms orders the results by the terms field.
func ByTerms(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerms, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByQuoteField orders the results by quote field.
func ByQuoteField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuoteStep(), sql.OrderByField(field, opts...))
	}
}

// BySourceEmailField orders the results by source_email field.
func BySourceEmailField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSourceEmailStep(), sql.OrderByField(field, opts...))
	}
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newQuoteStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuoteInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, QuoteTable, QuoteColumn),
	)
}
func newSourceEmailStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SourceEmailInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SourceEmailTable, SourceEmailColumn),
	)
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
