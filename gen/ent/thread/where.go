// Code generated by ent, DO NOT EDIT.

package thread

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldID, id))
}

// ProviderThreadID applies equality check predicate on the "provider_thread_id" field. It's identical to ProviderThreadIDEQ.
func ProviderThreadID(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldProviderThreadID, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldFirstSeenAt, v))
}

// LastSyncedAt applies equality check predicate on the "last_synced_at" field. It's identical to LastSyncedAtEQ.
func LastSyncedAt(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldLastSyncedAt, v))
}

// ProviderThreadIDEQ applies the EQ predicate on the "provider_thread_id" field.
func ProviderThreadIDEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldProviderThreadID, v))
}

// ProviderThreadIDNEQ applies the NEQ predicate on the "provider_thread_id" field.
func ProviderThreadIDNEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldProviderThreadID, v))
}

// ProviderThreadIDIn applies the In predicate on the "provider_thread_id" field.
func ProviderThreadIDIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldProviderThreadID, vs...))
}

// ProviderThreadIDNotIn applies the NotIn predicate on the "provider_thread_id" field.
func ProviderThreadIDNotIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldProviderThreadID, vs...))
}

// ProviderThreadIDGT applies the GT predicate on the "provider_thread_id" field.
func ProviderThreadIDGT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldProviderThreadID, v))
}

// ProviderThreadIDGTE applies the GTE predicate on the "provider_thread_id" field.
func ProviderThreadIDGTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldProviderThreadID, v))
}

// ProviderThreadIDLT applies the LT predicate on the "provider_thread_id" field.
func ProviderThreadIDLT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldProviderThreadID, v))
}

// ProviderThreadIDLTE applies the LTE predicate on the "provider_thread_id" field.
func ProviderThreadIDLTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldProviderThreadID, v))
}

// ProviderThreadIDContains applies the Contains predicate on the "provider_thread_id" field.
func ProviderThreadIDContains(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContains(FieldProviderThreadID, v))
}

// ProviderThreadIDHasPrefix applies the HasPrefix predicate on the "provider_thread_id" field.
func ProviderThreadIDHasPrefix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasPrefix(FieldProviderThreadID, v))
}

// ProviderThreadIDHasSuffix applies the HasSuffix predicate on the "provider_thread_id" field.
func ProviderThreadIDHasSuffix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasSuffix(FieldProviderThreadID, v))
}

// ProviderThreadIDEqualFold applies the EqualFold predicate on the "provider_thread_id" field.
func ProviderThreadIDEqualFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEqualFold(FieldProviderThreadID, v))
}

// ProviderThreadIDContainsFold applies the ContainsFold predicate on the "provider_thread_id" field.
func ProviderThreadIDContainsFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContainsFold(FieldProviderThreadID, v))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldFirstSeenAt, v))
}

// LastSyncedAtEQ applies the EQ predicate on the "last_synced_at" field.
func LastSyncedAtEQ(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldLastSyncedAt, v))
}

// LastSyncedAtNEQ applies the NEQ predicate on the "last_synced_at" field.
func LastSyncedAtNEQ(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldLastSyncedAt, v))
}

// LastSyncedAtIn applies the In predicate on the "last_synced_at" field.
func LastSyncedAtIn(vs ...time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldLastSyncedAt, vs...))
}

// LastSyncedAtNotIn applies the NotIn predicate on the "last_synced_at" field.
func LastSyncedAtNotIn(vs ...time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldLastSyncedAt, vs...))
}

// LastSyncedAtGT applies the GT predicate on the "last_synced_at" field.
func LastSyncedAtGT(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldLastSyncedAt, v))
}

// LastSyncedAtGTE applies the GTE predicate on the "last_synced_at" field.
func LastSyncedAtGTE(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldLastSyncedAt, v))
}

// LastSyncedAtLT applies the LT predicate on the "last_synced_at" field.
func LastSyncedAtLT(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldLastSyncedAt, v))
}

// LastSyncedAtLTE applies the LTE predicate on the "last_synced_at" field.
func LastSyncedAtLTE(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldLastSyncedAt, v))
}

// LastSyncedAtIsNil applies the IsNil predicate on the "last_synced_at" field.
func LastSyncedAtIsNil() predicate.Thread {
	return predicate.Thread(sql.FieldIsNull(FieldLastSyncedAt))
}

// LastSyncedAtNotNil applies the NotNil predicate on the "last_synced_at" field.
func LastSyncedAtNotNil() predicate.Thread {
	return predicate.Thread(sql.FieldNotNull(FieldLastSyncedAt))
}

// HasEmails applies the HasEdge predicate on the "emails" edge.
func HasEmails() predicate.Thread {
	return predicate.Thread(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EmailsTable, EmailsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEmailsWith applies the HasEdge predicate on the "emails" edge with a given conditions (other predicates).
func HasEmailsWith(preds ...predicate.Email) predicate.Thread {
	return predicate.Thread(func(s *sql.Selector) {
		step := newEmailsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuotes applies the HasEdge predicate on the "quotes" edge.
func HasQuotes() predicate.Thread {
	return predicate.Thread(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuotesTable, QuotesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuotesWith applies the HasEdge predicate on the "quotes" edge with a given conditions (other predicates).
func HasQuotesWith(preds ...predicate.Quote) predicate.Thread {
	return predicate.Thread(func(s *sql.Selector) {
		step := newQuotesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Thread) predicate.Thread {
	return predicate.Thread(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Thread) predicate.Thread {
	return predicate.Thread(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Thread) predicate.Thread {
	return predicate.Thread(sql.NotPredicates(p))
}
