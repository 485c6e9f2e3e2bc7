// Code generated by ent, DO NOT EDIT.

package email

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the email type in the database.
	Label = "email"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldThreadID holds the string denoting the thread_id field in the database.
	FieldThreadID = "thread_id"
	// FieldProviderMessageID holds the string denoting the provider_message_id field in the database.
	FieldProviderMessageID = "provider_message_id"
	// FieldFromAddr holds the string denoting the from_addr field in the database.
	FieldFromAddr = "from_addr"
	// FieldToAddrs holds the string denoting the to_addrs field in the database.
	FieldToAddrs = "to_addrs"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldSentAt holds the string denoting the sent_at field in the database.
	FieldSentAt = "sent_at"
	// FieldSnippet holds the string denoting the snippet field in the database.
	FieldSnippet = "snippet"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeThread holds the string denoting the thread edge name in mutations.
	EdgeThread = "thread"
	// EdgeBodies holds the string denoting the bodies edge name in mutations.
	EdgeBodies = "bodies"
	// EdgeAttachments holds the string denoting the attachments edge name in mutations.
	EdgeAttachments = "attachments"
	// EdgeQuoteVersions holds the string denoting the quote_versions edge name in mutations.
	EdgeQuoteVersions = "quote_versions"
	// EdgeAnchoredQuotes holds the string denoting the anchored_quotes edge name in mutations.
	EdgeAnchoredQuotes = "anchored_quotes"
	// Table holds the table name of the email in the database.
	Table = "emails"
	// ThreadTable is the table that holds the thread relation/edge.
	ThreadTable = "emails"
	// ThreadInverseTable is the table name for the Thread entity.
	// It exists in this package in order to avoid circular dependency with the "thread" package.
	ThreadInverseTable = "threads"
	// ThreadColumn is the table column denoting the thread relation/edge.
	ThreadColumn = "thread_id"
	// BodiesTable is the table that holds the bodies relation/edge.
	BodiesTable = "email_bodies"
	// BodiesInverseTable is the table name for the EmailBody entity.
	// It exists in this package in order to avoid circular dependency with the "emailbody" package.
	BodiesInverseTable = "email_bodies"
	// BodiesColumn is the table column denoting the bodies relation/edge.
	BodiesColumn = "email_id"
	// AttachmentsTable is the table that holds the attachments relation/edge.
	AttachmentsTable = "attachments"
	// AttachmentsInverseTable is the table name for the Attachment entity.
	// It exists in this package in order to avoid circular dependency with the "attachment" package.
	AttachmentsInverseTable = "attachments"
	// AttachmentsColumn is the table column denoting the attachments relation/edge.
	AttachmentsColumn = "email_id"
	// QuoteVersionsTable is the table that holds the quote_versions relation/edge.
	QuoteVersionsTable = "quote_versions"
	// QuoteVersionsInverseTable is the table name for the QuoteVersion entity.
	// It exists in this package in order to avoid circular dependency with the "quoteversion" package.
	QuoteVersionsInverseTable = "quote_versions"
	// QuoteVersionsColumn is the table column denoting the quote_versions relation/edge.
	QuoteVersionsColumn = "source_email_id"
	// AnchoredQuotesTable is the table that holds the anchored_quotes relation/edge.
	AnchoredQuotesTable = "quotes"
	// AnchoredQuotesInverseTable is the table name for the Quote entity.
	// It exists in this package in order to avoid circular dependency with the "quote" package.
	AnchoredQuotesInverseTable = "quotes"
	// AnchoredQuotesColumn is the table column denoting the anchored_quotes relation/edge.
	AnchoredQuotesColumn = "anchor_email_id"
)

// Columns holds all SQL columns for email fields.
var Columns = []string{
	FieldID,
	FieldThreadID,
	FieldProviderMessageID,
	FieldFromAddr,
	FieldToAddrs,
	FieldSubject,
	FieldSentAt,
	FieldSnippet,
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
	// ProviderMessageIDValidator is a validator for the "provider_message_id" field. It is called by the builders before save.
	ProviderMessageIDValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Email queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByThreadID orders the results by the thread_id field.
func ByThreadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreadID, opts...).ToFunc()
}

// ByProviderMessageID orders the results by the provider_message_id field.
func ByProviderMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderMessageID, opts...).ToFunc()
}

// ByFromAddr orders the results by the from_addr field.
func ByFromAddr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromAddr, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// BySentAt orders the results by the sent_at field.
func BySentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentAt, opts...).ToFunc()
}

// BySnippet orders the results by the snippet field.
func BySnippet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnippet, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByThreadField orders the results by thread field.
func ByThreadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newThreadStep(), sql.OrderByField(field, opts...))
	}
}

// ByBodiesCount orders the results by bodies count.
func ByBodiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBodiesStep(), opts...)
	}
}

// ByBodies orders the results by bodies terms.
func ByBodies(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBodiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAttachmentsCount orders the results by attachments count.
func ByAttachmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttachmentsStep(), opts...)
	}
}

// ByAttachments orders the results by attachments terms.
func ByAttachments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttachmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByQuoteVersionsCount orders the results by quote_versions count.
func ByQuoteVersionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuoteVersionsStep(), opts...)
	}
}

// ByQuoteVersions orders the results by quote_versions terms.
func ByQuoteVersions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuoteVersionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAnchoredQuotesCount orders the results by anchored_quotes count.
func ByAnchoredQuotesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnchoredQuotesStep(), opts...)
	}
}

// ByAnchoredQuotes orders the results by anchored_quotes terms.
func ByAnchoredQuotes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnchoredQuotesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newThreadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ThreadInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ThreadTable, ThreadColumn),
	)
}
func newBodiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BodiesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BodiesTable, BodiesColumn),
	)
}
func newAttachmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttachmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttachmentsTable, AttachmentsColumn),
	)
}
func newQuoteVersionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuoteVersionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuoteVersionsTable, QuoteVersionsColumn),
	)
}
func newAnchoredQuotesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnchoredQuotesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnchoredQuotesTable, AnchoredQuotesColumn),
	)
}
