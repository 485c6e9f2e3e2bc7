// Code generated by ent, DO NOT EDIT.

package email

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Email {
	return predicate.Email(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Email {
	return predicate.Email(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Email {
	return predicate.Email(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Email {
	return predicate.Email(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Email {
	return predicate.Email(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Email {
	return predicate.Email(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Email {
	return predicate.Email(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Email {
	return predicate.Email(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Email {
	return predicate.Email(sql.FieldLTE(FieldID, id))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v uuid.UUID) predicate.Email {
	return predicate.Email(sql.FieldEQ(FieldThreadID, v))
}

// ProviderMessageID applies equality check predicate on the "provider_message_id" field. It's identical to ProviderMessageIDEQ.
func ProviderMessageID(v string) predicate.Email {
	return predicate.Email(sql.FieldEQ(FieldProviderMessageID, v))
}

// FromAddr applies equality check predicate on the "from_addr" field. It's identical to FromAddrEQ.
func FromAddr(v string) predicate.Email {
	return predicate.Email(sql.FieldEQ(FieldFromAddr, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Email {
	return predicate.Email(sql.FieldEQ(FieldSubject, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.Email {
	return predicate.Email(sql.FieldEQ(FieldSentAt, v))
}

// Snippet applies equality check predicate on the "snippet" field. It's identical to SnippetEQ.
func Snippet(v string) predicate.Email {
	return predicate.Email(sql.FieldEQ(FieldSnippet, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Email {
	return predicate.Email(sql.FieldEQ(FieldCreatedAt, v))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v uuid.UUID) predicate.Email {
	return predicate.Email(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v uuid.UUID) predicate.Email {
	return predicate.Email(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...uuid.UUID) predicate.Email {
	return predicate.Email(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...uuid.UUID) predicate.Email {
	return predicate.Email(sql.FieldNotIn(FieldThreadID, vs...))
}

// ProviderMessageIDEQ applies the EQ predicate on the "provider_message_id" field.
func ProviderMessageIDEQ(v string) predicate.Email {
	return predicate.Email(sql.FieldEQ(FieldProviderMessageID, v))
}

// ProviderMessageIDNEQ applies the NEQ predicate on the "provider_message_id" field.
func ProviderMessageIDNEQ(v string) predicate.Email {
	return predicate.Email(sql.FieldNEQ(FieldProviderMessageID, v))
}

// ProviderMessageIDIn applies the In predicate on the "provider_message_id" field.
func ProviderMessageIDIn(vs ...string) predicate.Email {
	return predicate.Email(sql.FieldIn(FieldProviderMessageID, vs...))
}

// ProviderMessageIDNotIn applies the NotIn predicate on the "provider_message_id" field.
func ProviderMessageIDNotIn(vs ...string) predicate.Email {
	return predicate.Email(sql.FieldNotIn(FieldProviderMessageID, vs...))
}

// ProviderMessageIDGT applies the GT predicate on the "provider_message_id" field.
func ProviderMessageIDGT(v string) predicate.Email {
	return predicate.Email(sql.FieldGT(FieldProviderMessageID, v))
}

// ProviderMessageIDGTE applies the GTE predicate on the "provider_message_id" field.
func ProviderMessageIDGTE(v string) predicate.Email {
	return predicate.Email(sql.FieldGTE(FieldProviderMessageID, v))
}

// ProviderMessageIDLT applies the LT predicate on the "provider_message_id" field.
func ProviderMessageIDLT(v string) predicate.Email {
	return predicate.Email(sql.FieldLT(FieldProviderMessageID, v))
}

// ProviderMessageIDLTE applies the LTE predicate on the "provider_message_id" field.
func ProviderMessageIDLTE(v string) predicate.Email {
	return predicate.Email(sql.FieldLTE(FieldProviderMessageID, v))
}

// ProviderMessageIDContains applies the Contains predicate on the "provider_message_id" field.
func ProviderMessageIDContains(v string) predicate.Email {
	return predicate.Email(sql.FieldContains(FieldProviderMessageID, v))
}

// ProviderMessageIDHasPrefix applies the HasPrefix predicate on the "provider_message_id" field.
func ProviderMessageIDHasPrefix(v string) predicate.Email {
	return predicate.Email(sql.FieldHasPrefix(FieldProviderMessageID, v))
}

// ProviderMessageIDHasSuffix applies the HasSuffix predicate on the "provider_message_id" field.
func ProviderMessageIDHasSuffix(v string) predicate.Email {
	return predicate.Email(sql.FieldHasSuffix(FieldProviderMessageID, v))
}

// ProviderMessageIDEqualFold applies the EqualFold predicate on the "provider_message_id" field.
func ProviderMessageIDEqualFold(v string) predicate.Email {
	return predicate.Email(sql.FieldEqualFold(FieldProviderMessageID, v))
}

// ProviderMessageIDContainsFold applies the ContainsFold predicate on the "provider_message_id" field.
func ProviderMessageIDContainsFold(v string) predicate.Email {
	return predicate.Email(sql.FieldContainsFold(FieldProviderMessageID, v))
}

// FromAddrEQ applies the EQ predicate on the "from_addr" field.
func FromAddrEQ(v string) predicate.Email {
	return predicate.Email(sql.FieldEQ(FieldFromAddr, v))
}

// FromAddrNEQ applies the NEQ predicate on the "from_addr" field.
func FromAddrNEQ(v string) predicate.Email {
	return predicate.Email(sql.FieldNEQ(FieldFromAddr, v))
}

// FromAddrIn applies the In predicate on the "from_addr" field.
func FromAddrIn(vs ...string) predicate.Email {
	return predicate.Email(sql.FieldIn(FieldFromAddr, vs...))
}

// FromAddrNotIn applies the NotIn predicate on the "from_addr" field.
func FromAddrNotIn(vs ...string) predicate.Email {
	return predicate.Email(sql.FieldNotIn(FieldFromAddr, vs...))
}

// FromAddrGT applies the GT predicate on the "from_addr" field.
func FromAddrGT(v string) predicate.Email {
	return predicate.Email(sql.FieldGT(FieldFromAddr, v))
}

// FromAddrGTE applies the GTE predicate on the "from_addr" field.
func FromAddrGTE(v string) predicate.Email {
	return predicate.Email(sql.FieldGTE(FieldFromAddr, v))
}

// FromAddrLT applies the LT predicate on the "from_addr" field.
func FromAddrLT(v string) predicate.Email {
	return predicate.Email(sql.FieldLT(FieldFromAddr, v))
}

// FromAddrLTE applies the LTE predicate on the "from_addr" field.
func FromAddrLTE(v string) predicate.Email {
	return predicate.Email(sql.FieldLTE(FieldFromAddr, v))
}

// FromAddrContains applies the Contains predicate on the "from_addr" field.
func FromAddrContains(v string) predicate.Email {
	return predicate.Email(sql.FieldContains(FieldFromAddr, v))
}

// FromAddrHasPrefix applies the HasPrefix predicate on the "from_addr" field.
func FromAddrHasPrefix(v string) predicate.Email {
	return predicate.Email(sql.FieldHasPrefix(FieldFromAddr, v))
}

// FromAddrHasSuffix applies the HasSuffix predicate on the "from_addr" field.
func FromAddrHasSuffix(v string) predicate.Email {
	return predicate.Email(sql.FieldHasSuffix(FieldFromAddr, v))
}

// FromAddrIsNil applies the IsNil predicate on the "from_addr" field.
func FromAddrIsNil() predicate.Email {
	return predicate.Email(sql.FieldIsNull(FieldFromAddr))
}

// FromAddrNotNil applies the NotNil predicate on the "from_addr" field.
func FromAddrNotNil() predicate.Email {
	return predicate.Email(sql.FieldNotNull(FieldFromAddr))
}

// FromAddrEqualFold applies the EqualFold predicate on the "from_addr" field.
func FromAddrEqualFold(v string) predicate.Email {
	return predicate.Email(sql.FieldEqualFold(FieldFromAddr, v))
}

// FromAddrContainsFold applies the ContainsFold predicate on the "from_addr" field.
func FromAddrContainsFold(v string) predicate.Email {
	return predicate.Email(sql.FieldContainsFold(FieldFromAddr, v))
}

// ToAddrsIsNil applies the IsNil predicate on the "to_addrs" field.
func ToAddrsIsNil() predicate.Email {
	return predicate.Email(sql.FieldIsNull(FieldToAddrs))
}

// ToAddrsNotNil applies the NotNil predicate on the "to_addrs" field.
func ToAddrsNotNil() predicate.Email {
	return predicate.Email(sql.FieldNotNull(FieldToAddrs))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Email {
	return predicate.Email(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Email {
	return predicate.Email(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Email {
	return predicate.Email(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Email {
	return predicate.Email(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Email {
	return predicate.Email(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Email {
	return predicate.Email(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Email {
	return predicate.Email(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Email {
	return predicate.Email(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Email {
	return predicate.Email(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Email {
	return predicate.Email(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Email {
	return predicate.Email(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.Email {
	return predicate.Email(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.Email {
	return predicate.Email(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Email {
	return predicate.Email(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Email {
	return predicate.Email(sql.FieldContainsFold(FieldSubject, v))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.Email {
	return predicate.Email(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.Email {
	return predicate.Email(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.Email {
	return predicate.Email(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.Email {
	return predicate.Email(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.Email {
	return predicate.Email(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.Email {
	return predicate.Email(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.Email {
	return predicate.Email(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.Email {
	return predicate.Email(sql.FieldLTE(FieldSentAt, v))
}

// SentAtIsNil applies the IsNil predicate on the "sent_at" field.
func SentAtIsNil() predicate.Email {
	return predicate.Email(sql.FieldIsNull(FieldSentAt))
}

// SentAtNotNil applies the NotNil predicate on the "sent_at" field.
func SentAtNotNil() predicate.Email {
	return predicate.Email(sql.FieldNotNull(FieldSentAt))
}

// SnippetEQ applies the EQ predicate on the "snippet" field.
func SnippetEQ(v string) predicate.Email {
	return predicate.Email(sql.FieldEQ(FieldSnippet, v))
}

// SnippetNEQ applies the NEQ predicate on the "snippet" field.
func SnippetNEQ(v string) predicate.Email {
	return predicate.Email(sql.FieldNEQ(FieldSnippet, v))
}

// SnippetIn applies the In predicate on the "snippet" field.
func SnippetIn(vs ...string) predicate.Email {
	return predicate.Email(sql.FieldIn(FieldSnippet, vs...))
}

// SnippetNotIn applies the NotIn predicate on the "snippet" field.
func SnippetNotIn(vs ...string) predicate.Email {
	return predicate.Email(sql.FieldNotIn(FieldSnippet, vs...))
}

// SnippetGT applies the GT predicate on the "snippet" field.
func SnippetGT(v string) predicate.Email {
	return predicate.Email(sql.FieldGT(FieldSnippet, v))
}

// SnippetGTE applies the GTE predicate on the "snippet" field.
func SnippetGTE(v string) predicate.Email {
	return predicate.Email(sql.FieldGTE(FieldSnippet, v))
}

// SnippetLT applies the LT predicate on the "snippet" field.
func SnippetLT(v string) predicate.Email {
	return predicate.Email(sql.FieldLT(FieldSnippet, v))
}

// SnippetLTE applies the LTE predicate on the "snippet" field.
func SnippetLTE(v string) predicate.Email {
	return predicate.Email(sql.FieldLTE(FieldSnippet, v))
}

// SnippetContains applies the Contains predicate on the "snippet" field.
func SnippetContains(v string) predicate.Email {
	return predicate.Email(sql.FieldContains(FieldSnippet, v))
}

// SnippetHasPrefix applies the HasPrefix predicate on the "snippet" field.
func SnippetHasPrefix(v string) predicate.Email {
	return predicate.Email(sql.FieldHasPrefix(FieldSnippet, v))
}

// SnippetHasSuffix applies the HasSuffix predicate on the "snippet" field.
func SnippetHasSuffix(v string) predicate.Email {
	return predicate.Email(sql.FieldHasSuffix(FieldSnippet, v))
}

// SnippetIsNil applies the IsNil predicate on the "snippet" field.
func SnippetIsNil() predicate.Email {
	return predicate.Email(sql.FieldIsNull(FieldSnippet))
}

// SnippetNotNil applies the NotNil predicate on the "snippet" field.
func SnippetNotNil() predicate.Email {
	return predicate.Email(sql.FieldNotNull(FieldSnippet))
}

// SnippetEqualFold applies the EqualFold predicate on the "snippet" field.
func SnippetEqualFold(v string) predicate.Email {
	return predicate.Email(sql.FieldEqualFold(FieldSnippet, v))
}

// SnippetContainsFold applies the ContainsFold predicate on the "snippet" field.
func SnippetContainsFold(v string) predicate.Email {
	return predicate.Email(sql.FieldContainsFold(FieldSnippet, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Email {
	return predicate.Email(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Email {
	return predicate.Email(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Email {
	return predicate.Email(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Email {
	return predicate.Email(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Email {
	return predicate.Email(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Email {
	return predicate.Email(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Email {
	return predicate.Email(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Email {
	return predicate.Email(sql.FieldLTE(FieldCreatedAt, v))
}

// HasThread applies the HasEdge predicate on the "thread" edge.
func HasThread() predicate.Email {
	return predicate.Email(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ThreadTable, ThreadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasThreadWith applies the HasEdge predicate on the "thread" edge with a given conditions (other predicates).
func HasThreadWith(preds ...predicate.Thread) predicate.Email {
	return predicate.Email(func(s *sql.Selector) {
		step := newThreadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBodies applies the HasEdge predicate on the "bodies" edge.
func HasBodies() predicate.Email {
	return predicate.Email(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BodiesTable, BodiesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBodiesWith applies the HasEdge predicate on the "bodies" edge with a given conditions (other predicates).
func HasBodiesWith(preds ...predicate.EmailBody) predicate.Email {
	return predicate.Email(func(s *sql.Selector) {
		step := newBodiesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAttachments applies the HasEdge predicate on the "attachments" edge.
func HasAttachments() predicate.Email {
	return predicate.Email(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttachmentsTable, AttachmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttachmentsWith applies the HasEdge predicate on the "attachments" edge with a given conditions (other predicates).
func HasAttachmentsWith(preds ...predicate.Attachment) predicate.Email {
	return predicate.Email(func(s *sql.Selector) {
		step := newAttachmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuoteVersions applies the HasEdge predicate on the "quote_versions" edge.
func HasQuoteVersions() predicate.Email {
	return predicate.Email(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuoteVersionsTable, QuoteVersionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuoteVersionsWith applies the HasEdge predicate on the "quote_versions" edge with a given conditions (other predicates).
func HasQuoteVersionsWith(preds ...predicate.QuoteVersion) predicate.Email {
	return predicate.Email(func(s *sql.Selector) {
		step := newQuoteVersionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnchoredQuotes applies the HasEdge predicate on the "anchored_quotes" edge.
func HasAnchoredQuotes() predicate.Email {
	return predicate.Email(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnchoredQuotesTable, AnchoredQuotesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnchoredQuotesWith applies the HasEdge predicate on the "anchored_quotes" edge with a given conditions (other predicates).
func HasAnchoredQuotesWith(preds ...predicate.Quote) predicate.Email {
	return predicate.Email(func(s *sql.Selector) {
		step := newAnchoredQuotesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Email) predicate.Email {
	return predicate.Email(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Email) predicate.Email {
	return predicate.Email(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Email) predicate.Email {
	return predicate.Email(sql.NotPredicates(p))
}
