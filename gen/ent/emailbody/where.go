// Code generated by ent, DO NOT EDIT.

package emailbody

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldLTE(FieldID, id))
}

// EmailID applies equality check predicate on the "email_id" field. It's identical to EmailIDEQ.
func EmailID(v uuid.UUID) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldEQ(FieldEmailID, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldEQ(FieldMimeType, v))
}

// BodyText applies equality check predicate on the "body_text" field. It's identical to BodyTextEQ.
func BodyText(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldEQ(FieldBodyText, v))
}

// BodyHTML applies equality check predicate on the "body_html" field. It's identical to BodyHTMLEQ.
func BodyHTML(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldEQ(FieldBodyHTML, v))
}

// EmailIDEQ applies the EQ predicate on the "email_id" field.
func EmailIDEQ(v uuid.UUID) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldEQ(FieldEmailID, v))
}

// EmailIDNEQ applies the NEQ predicate on the "email_id" field.
func EmailIDNEQ(v uuid.UUID) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldNEQ(FieldEmailID, v))
}

// EmailIDIn applies the In predicate on the "email_id" field.
func EmailIDIn(vs ...uuid.UUID) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldIn(FieldEmailID, vs...))
}

// EmailIDNotIn applies the NotIn predicate on the "email_id" field.
func EmailIDNotIn(vs ...uuid.UUID) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldNotIn(FieldEmailID, vs...))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeIsNil applies the IsNil predicate on the "mime_type" field.
func MimeTypeIsNil() predicate.EmailBody {
	return predicate.EmailBody(sql.FieldIsNull(FieldMimeType))
}

// MimeTypeNotNil applies the NotNil predicate on the "mime_type" field.
func MimeTypeNotNil() predicate.EmailBody {
	return predicate.EmailBody(sql.FieldNotNull(FieldMimeType))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldContainsFold(FieldMimeType, v))
}

// BodyTextEQ applies the EQ predicate on the "body_text" field.
func BodyTextEQ(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldEQ(FieldBodyText, v))
}

// BodyTextNEQ applies the NEQ predicate on the "body_text" field.
func BodyTextNEQ(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldNEQ(FieldBodyText, v))
}

// BodyTextIn applies the In predicate on the "body_text" field.
func BodyTextIn(vs ...string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldIn(FieldBodyText, vs...))
}

// BodyTextNotIn applies the NotIn predicate on the "body_text" field.
func BodyTextNotIn(vs ...string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldNotIn(FieldBodyText, vs...))
}

// BodyTextGT applies the GT predicate on the "body_text" field.
func BodyTextGT(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldGT(FieldBodyText, v))
}

// BodyTextGTE applies the GTE predicate on the "body_text" field.
func BodyTextGTE(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldGTE(FieldBodyText, v))
}

// BodyTextLT applies the LT predicate on the "body_text" field.
func BodyTextLT(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldLT(FieldBodyText, v))
}

// BodyTextLTE applies the LTE predicate on the "body_text" field.
func BodyTextLTE(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldLTE(FieldBodyText, v))
}

// BodyTextContains applies the Contains predicate on the "body_text" field.
func BodyTextContains(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldContains(FieldBodyText, v))
}

// BodyTextHasPrefix applies the HasPrefix predicate on the "body_text" field.
func BodyTextHasPrefix(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldHasPrefix(FieldBodyText, v))
}

// BodyTextHasSuffix applies the HasSuffix predicate on the "body_text" field.
func BodyTextHasSuffix(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldHasSuffix(FieldBodyText, v))
}

// BodyTextIsNil applies the IsNil predicate on the "body_text" field.
func BodyTextIsNil() predicate.EmailBody {
	return predicate.EmailBody(sql.FieldIsNull(FieldBodyText))
}

// BodyTextNotNil applies the NotNil predicate on the "body_text" field.
func BodyTextNotNil() predicate.EmailBody {
	return predicate.EmailBody(sql.FieldNotNull(FieldBodyText))
}

// BodyTextEqualFold applies the EqualFold predicate on the "body_text" field.
func BodyTextEqualFold(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldEqualFold(FieldBodyText, v))
}

// BodyTextContainsFold applies the ContainsFold predicate on the "body_text" field.
func BodyTextContainsFold(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldContainsFold(FieldBodyText, v))
}

// BodyHTMLEQ applies the EQ predicate on the "body_html" field.
func BodyHTMLEQ(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldEQ(FieldBodyHTML, v))
}

// BodyHTMLNEQ applies the NEQ predicate on the "body_html" field.
func BodyHTMLNEQ(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldNEQ(FieldBodyHTML, v))
}

// BodyHTMLIn applies the In predicate on the "body_html" field.
func BodyHTMLIn(vs ...string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldIn(FieldBodyHTML, vs...))
}

// BodyHTMLNotIn applies the NotIn predicate on the "body_html" field.
func BodyHTMLNotIn(vs ...string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldNotIn(FieldBodyHTML, vs...))
}

// BodyHTMLGT applies the GT predicate on the "body_html" field.
func BodyHTMLGT(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldGT(FieldBodyHTML, v))
}

// BodyHTMLGTE applies the GTE predicate on the "body_html" field.
func BodyHTMLGTE(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldGTE(FieldBodyHTML, v))
}

// BodyHTMLLT applies the LT predicate on the "body_html" field.
func BodyHTMLLT(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldLT(FieldBodyHTML, v))
}

// BodyHTMLLTE applies the LTE predicate on the "body_html" field.
func BodyHTMLLTE(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldLTE(FieldBodyHTML, v))
}

// BodyHTMLContains applies the Contains predicate on the "body_html" field.
func BodyHTMLContains(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldContains(FieldBodyHTML, v))
}

// BodyHTMLHasPrefix applies the HasPrefix predicate on the "body_html" field.
func BodyHTMLHasPrefix(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldHasPrefix(FieldBodyHTML, v))
}

// BodyHTMLHasSuffix applies the HasSuffix predicate on the "body_html" field.
func BodyHTMLHasSuffix(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldHasSuffix(FieldBodyHTML, v))
}

// BodyHTMLIsNil applies the IsNil predicate on the "body_html" field.
func BodyHTMLIsNil() predicate.EmailBody {
	return predicate.EmailBody(sql.FieldIsNull(FieldBodyHTML))
}

// BodyHTMLNotNil applies the NotNil predicate on the "body_html" field.
func BodyHTMLNotNil() predicate.EmailBody {
	return predicate.EmailBody(sql.FieldNotNull(FieldBodyHTML))
}

// BodyHTMLEqualFold applies the EqualFold predicate on the "body_html" field.
func BodyHTMLEqualFold(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldEqualFold(FieldBodyHTML, v))
}

// BodyHTMLContainsFold applies the ContainsFold predicate on the "body_html" field.
func BodyHTMLContainsFold(v string) predicate.EmailBody {
	return predicate.EmailBody(sql.FieldContainsFold(FieldBodyHTML, v))
}

// HasEmail applies the HasEdge predicate on the "email" edge.
func HasEmail() predicate.EmailBody {
	return predicate.EmailBody(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EmailTable, EmailColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEmailWith applies the HasEdge predicate on the "email" edge with a given conditions (other predicates).
func HasEmailWith(preds ...predicate.Email) predicate.EmailBody {
	return predicate.EmailBody(func(s *sql.Selector) {
		step := newEmailStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EmailBody) predicate.EmailBody {
	return predicate.EmailBody(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EmailBody) predicate.EmailBody {
	return predicate.EmailBody(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EmailBody) predicate.EmailBody {
	return predicate.EmailBody(sql.NotPredicates(p))
}
