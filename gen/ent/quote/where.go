// Code generated by ent, DO NOT EDIT.

package quote

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldID, id))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldThreadID, v))
}

// VendorID applies equality check predicate on the "vendor_id" field. It's identical to VendorIDEQ.
func VendorID(v uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldVendorID, v))
}

// AnchorEmailID applies equality check predicate on the "anchor_email_id" field. It's identical to AnchorEmailIDEQ.
func AnchorEmailID(v uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldAnchorEmailID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldCreatedAt, v))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldThreadID, vs...))
}

// VendorIDEQ applies the EQ predicate on the "vendor_id" field.
func VendorIDEQ(v uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldVendorID, v))
}

// VendorIDNEQ applies the NEQ predicate on the "vendor_id" field.
func VendorIDNEQ(v uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldVendorID, v))
}

// VendorIDIn applies the In predicate on the "vendor_id" field.
func VendorIDIn(vs ...uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldVendorID, vs...))
}

// VendorIDNotIn applies the NotIn predicate on the "vendor_id" field.
func VendorIDNotIn(vs ...uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldVendorID, vs...))
}

// AnchorEmailIDEQ applies the EQ predicate on the "anchor_email_id" field.
func AnchorEmailIDEQ(v uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldAnchorEmailID, v))
}

// AnchorEmailIDNEQ applies the NEQ predicate on the "anchor_email_id" field.
func AnchorEmailIDNEQ(v uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldAnchorEmailID, v))
}

// AnchorEmailIDIn applies the In predicate on the "anchor_email_id" field.
func AnchorEmailIDIn(vs ...uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldAnchorEmailID, vs...))
}

// AnchorEmailIDNotIn applies the NotIn predicate on the "anchor_email_id" field.
func AnchorEmailIDNotIn(vs ...uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldAnchorEmailID, vs...))
}

// AnchorEmailIDIsNil applies the IsNil predicate on the "anchor_email_id" field.
func AnchorEmailIDIsNil() predicate.Quote {
	return predicate.Quote(sql.FieldIsNull(FieldAnchorEmailID))
}

// AnchorEmailIDNotNil applies the NotNil predicate on the "anchor_email_id" field.
func AnchorEmailIDNotNil() predicate.Quote {
	return predicate.Quote(sql.FieldNotNull(FieldAnchorEmailID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldCreatedAt, v))
}

// HasThread applies the HasEdge predicate on the "thread" edge.
func HasThread() predicate.Quote {
	return predicate.Quote(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ThreadTable, ThreadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasThreadWith applies the HasEdge predicate on the "thread" edge with a given conditions (other predicates).
func HasThreadWith(preds ...predicate.Thread) predicate.Quote {
	return predicate.Quote(func(s *sql.Selector) {
		step := newThreadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVendor applies the HasEdge predicate on the "vendor" edge.
func HasVendor() predicate.Quote {
	return predicate.Quote(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, VendorTable, VendorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVendorWith applies the HasEdge predicate on the "vendor" edge with a given conditions (other predicates).
func HasVendorWith(preds ...predicate.Vendor) predicate.Quote {
	return predicate.Quote(func(s *sql.Selector) {
		step := newVendorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnchorEmail applies the HasEdge predicate on the "anchor_email" edge.
func HasAnchorEmail() predicate.Quote {
	return predicate.Quote(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnchorEmailTable, AnchorEmailColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnchorEmailWith applies the HasEdge predicate on the "anchor_email" edge with a given conditions (other predicates).
func HasAnchorEmailWith(preds ...predicate.Email) predicate.Quote {
	return predicate.Quote(func(s *sql.Selector) {
		step := newAnchorEmailStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVersions applies the HasEdge predicate on the "versions" edge.
func HasVersions() predicate.Quote {
	return predicate.Quote(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VersionsTable, VersionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVersionsWith applies the HasEdge predicate on the "versions" edge with a given conditions (other predicates).
func HasVersionsWith(preds ...predicate.QuoteVersion) predicate.Quote {
	return predicate.Quote(func(s *sql.Selector) {
		step := newVersionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Quote) predicate.Quote {
	return predicate.Quote(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Quote) predicate.Quote {
	return predicate.Quote(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Quote) predicate.Quote {
	return predicate.Quote(sql.NotPredicates(p))
}
