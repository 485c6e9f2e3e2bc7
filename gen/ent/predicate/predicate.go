// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attachment is the predicate function for attachment builders.
type Attachment func(*sql.Selector)

// Email is the predicate function for email builders.
type Email func(*sql.Selector)

// EmailBody is the predicate function for emailbody builders.
type EmailBody func(*sql.Selector)

// Quote is the predicate function for quote builders.
type Quote func(*sql.Selector)

// QuoteItem is the predicate function for quoteitem builders.
type QuoteItem func(*sql.Selector)

// QuoteVersion is the predicate function for quoteversion builders.
type QuoteVersion func(*sql.Selector)

// Thread is the predicate function for thread builders.
type Thread func(*sql.Selector)

// Vendor is the predicate function for vendor builders.
type Vendor func(*sql.Selector)
