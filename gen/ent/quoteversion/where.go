// Code generated by ent, DO NOT EDIT.

package quoteversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/predicate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLTE(FieldID, id))
}

// QuoteID applies equality check predicate on the "quote_id" field. It's identical to QuoteIDEQ.
func QuoteID(v uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldQuoteID, v))
}

// SourceEmailID applies equality check predicate on the "source_email_id" field. It's identical to SourceEmailIDEQ.
func SourceEmailID(v uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldSourceEmailID, v))
}

// VersionLabel applies equality check predicate on the "version_label" field. It's identical to VersionLabelEQ.
func VersionLabel(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldVersionLabel, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldCurrency, v))
}

// Subtotal applies equality check predicate on the "subtotal" field. It's identical to SubtotalEQ.
func Subtotal(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldSubtotal, v))
}

// Tax applies equality check predicate on the "tax" field. It's identical to TaxEQ.
func Tax(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldTax, v))
}

// Shipping applies equality check predicate on the "shipping" field. It's identical to ShippingEQ.
func Shipping(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldShipping, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldTotal, v))
}

// ValidTill applies equality check predicate on the "valid_till" field. It's identical to ValidTillEQ.
func ValidTill(v time.Time) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldValidTill, v))
}

// Terms applies equality check predicate on the "terms" field. It's identical to TermsEQ.
func Terms(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldTerms, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// QuoteIDEQ applies the EQ predicate on the "quote_id" field.
func QuoteIDEQ(v uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldQuoteID, v))
}

// QuoteIDNEQ applies the NEQ predicate on the "quote_id" field.
func QuoteIDNEQ(v uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNEQ(FieldQuoteID, v))
}

// QuoteIDIn applies the In predicate on the "quote_id" field.
func QuoteIDIn(vs ...uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIn(FieldQuoteID, vs...))
}

// QuoteIDNotIn applies the NotIn predicate on the "quote_id" field.
func QuoteIDNotIn(vs ...uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotIn(FieldQuoteID, vs...))
}

// SourceEmailIDEQ applies the EQ predicate on the "source_email_id" field.
func SourceEmailIDEQ(v uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldSourceEmailID, v))
}

// SourceEmailIDNEQ applies the NEQ predicate on the "source_email_id" field.
func SourceEmailIDNEQ(v uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNEQ(FieldSourceEmailID, v))
}

// SourceEmailIDIn applies the In predicate on the "source_email_id" field.
func SourceEmailIDIn(vs ...uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIn(FieldSourceEmailID, vs...))
}

// SourceEmailIDNotIn applies the NotIn predicate on the "source_email_id" field.
func SourceEmailIDNotIn(vs ...uuid.UUID) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotIn(FieldSourceEmailID, vs...))
}

// VersionLabelEQ applies the EQ predicate on the "version_label" field.
func VersionLabelEQ(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldVersionLabel, v))
}

// VersionLabelNEQ applies the NEQ predicate on the "version_label" field.
func VersionLabelNEQ(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNEQ(FieldVersionLabel, v))
}

// VersionLabelIn applies the In predicate on the "version_label" field.
func VersionLabelIn(vs ...string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIn(FieldVersionLabel, vs...))
}

// VersionLabelNotIn applies the NotIn predicate on the "version_label" field.
func VersionLabelNotIn(vs ...string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotIn(FieldVersionLabel, vs...))
}

// VersionLabelGT applies the GT predicate on the "version_label" field.
func VersionLabelGT(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGT(FieldVersionLabel, v))
}

// VersionLabelGTE applies the GTE predicate on the "version_label" field.
func VersionLabelGTE(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGTE(FieldVersionLabel, v))
}

// VersionLabelLT applies the LT predicate on the "version_label" field.
func VersionLabelLT(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLT(FieldVersionLabel, v))
}

// VersionLabelLTE applies the LTE predicate on the "version_label" field.
func VersionLabelLTE(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLTE(FieldVersionLabel, v))
}

// VersionLabelContains applies the Contains predicate on the "version_label" field.
func VersionLabelContains(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldContains(FieldVersionLabel, v))
}

// VersionLabelHasPrefix applies the HasPrefix predicate on the "version_label" field.
func VersionLabelHasPrefix(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldHasPrefix(FieldVersionLabel, v))
}

// VersionLabelHasSuffix applies the HasSuffix predicate on the "version_label" field.
func VersionLabelHasSuffix(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldHasSuffix(FieldVersionLabel, v))
}

// VersionLabelIsNil applies the IsNil predicate on the "version_label" field.
func VersionLabelIsNil() predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIsNull(FieldVersionLabel))
}

// VersionLabelNotNil applies the NotNil predicate on the "version_label" field.
func VersionLabelNotNil() predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotNull(FieldVersionLabel))
}

// VersionLabelEqualFold applies the EqualFold predicate on the "version_label" field.
func VersionLabelEqualFold(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEqualFold(FieldVersionLabel, v))
}

// VersionLabelContainsFold applies the ContainsFold predicate on the "version_label" field.
func VersionLabelContainsFold(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldContainsFold(FieldVersionLabel, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldContainsFold(FieldCurrency, v))
}

// SubtotalEQ applies the EQ predicate on the "subtotal" field.
func SubtotalEQ(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldSubtotal, v))
}

// SubtotalNEQ applies the NEQ predicate on the "subtotal" field.
func SubtotalNEQ(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNEQ(FieldSubtotal, v))
}

// SubtotalIn applies the In predicate on the "subtotal" field.
func SubtotalIn(vs ...decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIn(FieldSubtotal, vs...))
}

// SubtotalNotIn applies the NotIn predicate on the "subtotal" field.
func SubtotalNotIn(vs ...decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotIn(FieldSubtotal, vs...))
}

// SubtotalGT applies the GT predicate on the "subtotal" field.
func SubtotalGT(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGT(FieldSubtotal, v))
}

// SubtotalGTE applies the GTE predicate on the "subtotal" field.
func SubtotalGTE(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGTE(FieldSubtotal, v))
}

// SubtotalLT applies the LT predicate on the "subtotal" field.
func SubtotalLT(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLT(FieldSubtotal, v))
}

// SubtotalLTE applies the LTE predicate on the "subtotal" field.
func SubtotalLTE(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLTE(FieldSubtotal, v))
}

// SubtotalIsNil applies the IsNil predicate on the "subtotal" field.
func SubtotalIsNil() predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIsNull(FieldSubtotal))
}

// SubtotalNotNil applies the NotNil predicate on the "subtotal" field.
func SubtotalNotNil() predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotNull(FieldSubtotal))
}

// TaxEQ applies the EQ predicate on the "tax" field.
func TaxEQ(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldTax, v))
}

// TaxNEQ applies the NEQ predicate on the "tax" field.
func TaxNEQ(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNEQ(FieldTax, v))
}

// TaxIn applies the In predicate on the "tax" field.
func TaxIn(vs ...decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIn(FieldTax, vs...))
}

// TaxNotIn applies the NotIn predicate on the "tax" field.
func TaxNotIn(vs ...decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotIn(FieldTax, vs...))
}

// TaxGT applies the GT predicate on the "tax" field.
func TaxGT(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGT(FieldTax, v))
}

// TaxGTE applies the GTE predicate on the "tax" field.
func TaxGTE(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGTE(FieldTax, v))
}

// TaxLT applies the LT predicate on the "tax" field.
func TaxLT(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLT(FieldTax, v))
}

// TaxLTE applies the LTE predicate on the "tax" field.
func TaxLTE(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLTE(FieldTax, v))
}

// TaxIsNil applies the IsNil predicate on the "tax" field.
func TaxIsNil() predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIsNull(FieldTax))
}

// TaxNotNil applies the NotNil predicate on the "tax" field.
func TaxNotNil() predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotNull(FieldTax))
}

// ShippingEQ applies the EQ predicate on the "shipping" field.
func ShippingEQ(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldShipping, v))
}

// ShippingNEQ applies the NEQ predicate on the "shipping" field.
func ShippingNEQ(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNEQ(FieldShipping, v))
}

// ShippingIn applies the In predicate on the "shipping" field.
func ShippingIn(vs ...decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIn(FieldShipping, vs...))
}

// ShippingNotIn applies the NotIn predicate on the "shipping" field.
func ShippingNotIn(vs ...decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotIn(FieldShipping, vs...))
}

// ShippingGT applies the GT predicate on the "shipping" field.
func ShippingGT(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGT(FieldShipping, v))
}

// ShippingGTE applies the GTE predicate on the "shipping" field.
func ShippingGTE(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGTE(FieldShipping, v))
}

// ShippingLT applies the LT predicate on the "shipping" field.
func ShippingLT(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLT(FieldShipping, v))
}

// ShippingLTE applies the LTE predicate on the "shipping" field.
func ShippingLTE(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLTE(FieldShipping, v))
}

// ShippingIsNil applies the IsNil predicate on the "shipping" field.
func ShippingIsNil() predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIsNull(FieldShipping))
}

// ShippingNotNil applies the NotNil predicate on the "shipping" field.
func ShippingNotNil() predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotNull(FieldShipping))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v decimal.Decimal) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLTE(FieldTotal, v))
}

// ValidTillEQ applies the EQ predicate on the "valid_till" field.
func ValidTillEQ(v time.Time) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldValidTill, v))
}

// ValidTillNEQ applies the NEQ predicate on the "valid_till" field.
func ValidTillNEQ(v time.Time) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNEQ(FieldValidTill, v))
}

// ValidTillIn applies the In predicate on the "valid_till" field.
func ValidTillIn(vs ...time.Time) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIn(FieldValidTill, vs...))
}

// ValidTillNotIn applies the NotIn predicate on the "valid_till" field.
func ValidTillNotIn(vs ...time.Time) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotIn(FieldValidTill, vs...))
}

// ValidTillGT applies the GT predicate on the "valid_till" field.
func ValidTillGT(v time.Time) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGT(FieldValidTill, v))
}

// ValidTillGTE applies the GTE predicate on the "valid_till" field.
func ValidTillGTE(v time.Time) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGTE(FieldValidTill, v))
}

// ValidTillLT applies the LT predicate on the "valid_till" field.
func ValidTillLT(v time.Time) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLT(FieldValidTill, v))
}

// ValidTillLTE applies the LTE predicate on the "valid_till" field.
func ValidTillLTE(v time.Time) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLTE(FieldValidTill, v))
}

// ValidTillIsNil applies the IsNil predicate on the "valid_till" field.
func ValidTillIsNil() predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIsNull(FieldValidTill))
}

// ValidTillNotNil applies the NotNil predicate on the "valid_till" field.
func ValidTillNotNil() predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotNull(FieldValidTill))
}

// TermsEQ applies the EQ predicate on the "terms" field.
func TermsEQ(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldTerms, v))
}

// TermsNEQ applies the NEQ predicate on the "terms" field.
func TermsNEQ(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNEQ(FieldTerms, v))
}

// TermsIn applies the In predicate on the "terms" field.
func TermsIn(vs ...string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIn(FieldTerms, vs...))
}

// TermsNotIn applies the NotIn predicate on the "terms" field.
func TermsNotIn(vs ...string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotIn(FieldTerms, vs...))
}

// TermsGT applies the GT predicate on the "terms" field.
func TermsGT(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGT(FieldTerms, v))
}

// TermsGTE applies the GTE predicate on the "terms" field.
func TermsGTE(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGTE(FieldTerms, v))
}

// TermsLT applies the LT predicate on the "terms" field.
func TermsLT(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLT(FieldTerms, v))
}

// TermsLTE applies the LTE predicate on the "terms" field.
func TermsLTE(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLTE(FieldTerms, v))
}

// TermsContains applies the Contains predicate on the "terms" field.
func TermsContains(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldContains(FieldTerms, v))
}

// TermsHasPrefix applies the HasPrefix predicate on the "terms" field.
func TermsHasPrefix(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldHasPrefix(FieldTerms, v))
}

// TermsHasSuffix applies the HasSuffix predicate on the "terms" field.
func TermsHasSuffix(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldHasSuffix(FieldTerms, v))
}

// TermsIsNil applies the IsNil predicate on the "terms" field.
func TermsIsNil() predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIsNull(FieldTerms))
}

// TermsNotNil applies the NotNil predicate on the "terms" field.
func TermsNotNil() predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotNull(FieldTerms))
}

// TermsEqualFold applies the EqualFold predicate on the "terms" field.
func TermsEqualFold(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEqualFold(FieldTerms, v))
}

// TermsContainsFold applies the ContainsFold predicate on the "terms" field.
func TermsContainsFold(v string) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldContainsFold(FieldTerms, v))
}

// ExtractedJSONIsNil applies the IsNil predicate on the "extracted_json" field.
func ExtractedJSONIsNil() predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIsNull(FieldExtractedJSON))
}

// ExtractedJSONNotNil applies the NotNil predicate on the "extracted_json" field.
func ExtractedJSONNotNil() predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotNull(FieldExtractedJSON))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasQuote applies the HasEdge predicate on the "quote" edge.
func HasQuote() predicate.QuoteVersion {
	return predicate.QuoteVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuoteTable, QuoteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuoteWith applies the HasEdge predicate on the "quote" edge with a given conditions (other predicates).
func HasQuoteWith(preds ...predicate.Quote) predicate.QuoteVersion {
	return predicate.QuoteVersion(func(s *sql.Selector) {
		step := newQuoteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSourceEmail applies the HasEdge predicate on the "source_email" edge.
func HasSourceEmail() predicate.QuoteVersion {
	return predicate.QuoteVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SourceEmailTable, SourceEmailColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourceEmailWith applies the HasEdge predicate on the "source_email" edge with a given conditions (other predicates).
func HasSourceEmailWith(preds ...predicate.Email) predicate.QuoteVersion {
	return predicate.QuoteVersion(func(s *sql.Selector) {
		step := newSourceEmailStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.QuoteVersion {
	return predicate.QuoteVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.QuoteItem) predicate.QuoteVersion {
	return predicate.QuoteVersion(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuoteVersion) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuoteVersion) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuoteVersion) predicate.QuoteVersion {
	return predicate.QuoteVersion(sql.NotPredicates(p))
}
