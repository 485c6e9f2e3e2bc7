// Code generated by ent, DO NOT EDIT.

package quoteitem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/predicate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldLTE(FieldID, id))
}

// VersionID applies equality check predicate on the "version_id" field. It's identical to VersionIDEQ.
func VersionID(v uuid.UUID) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldEQ(FieldVersionID, v))
}

// Sku applies equality check predicate on the "sku" field. It's identical to SkuEQ.
func Sku(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldEQ(FieldSku, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldEQ(FieldDescription, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldEQ(FieldQuantity, v))
}

// UnitPrice applies equality check predicate on the "unit_price" field. It's identical to UnitPriceEQ.
func UnitPrice(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldEQ(FieldUnitPrice, v))
}

// Discount applies equality check predicate on the "discount" field. It's identical to DiscountEQ.
func Discount(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldEQ(FieldDiscount, v))
}

// LineTotal applies equality check predicate on the "line_total" field. It's identical to LineTotalEQ.
func LineTotal(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldEQ(FieldLineTotal, v))
}

// VersionIDEQ applies the EQ predicate on the "version_id" field.
func VersionIDEQ(v uuid.UUID) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldEQ(FieldVersionID, v))
}

// VersionIDNEQ applies the NEQ predicate on the "version_id" field.
func VersionIDNEQ(v uuid.UUID) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNEQ(FieldVersionID, v))
}

// VersionIDIn applies the In predicate on the "version_id" field.
func VersionIDIn(vs ...uuid.UUID) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldIn(FieldVersionID, vs...))
}

// VersionIDNotIn applies the NotIn predicate on the "version_id" field.
func VersionIDNotIn(vs ...uuid.UUID) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNotIn(FieldVersionID, vs...))
}

// SkuEQ applies the EQ predicate on the "sku" field.
func SkuEQ(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldEQ(FieldSku, v))
}

// SkuNEQ applies the NEQ predicate on the "sku" field.
func SkuNEQ(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNEQ(FieldSku, v))
}

// SkuIn applies the In predicate on the "sku" field.
func SkuIn(vs ...string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldIn(FieldSku, vs...))
}

// SkuNotIn applies the NotIn predicate on the "sku" field.
func SkuNotIn(vs ...string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNotIn(FieldSku, vs...))
}

// SkuGT applies the GT predicate on the "sku" field.
func SkuGT(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldGT(FieldSku, v))
}

// SkuGTE applies the GTE predicate on the "sku" field.
func SkuGTE(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldGTE(FieldSku, v))
}

// SkuLT applies the LT predicate on the "sku" field.
func SkuLT(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldLT(FieldSku, v))
}

// SkuLTE applies the LTE predicate on the "sku" field.
func SkuLTE(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldLTE(FieldSku, v))
}

// SkuContains applies the Contains predicate on the "sku" field.
func SkuContains(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldContains(FieldSku, v))
}

// SkuHasPrefix applies the HasPrefix predicate on the "sku" field.
func SkuHasPrefix(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldHasPrefix(FieldSku, v))
}

// SkuHasSuffix applies the HasSuffix predicate on the "sku" field.
func SkuHasSuffix(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldHasSuffix(FieldSku, v))
}

// SkuIsNil applies the IsNil predicate on the "sku" field.
func SkuIsNil() predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldIsNull(FieldSku))
}

// SkuNotNil applies the NotNil predicate on the "sku" field.
func SkuNotNil() predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNotNull(FieldSku))
}

// SkuEqualFold applies the EqualFold predicate on the "sku" field.
func SkuEqualFold(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldEqualFold(FieldSku, v))
}

// SkuContainsFold applies the ContainsFold predicate on the "sku" field.
func SkuContainsFold(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldContainsFold(FieldSku, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldContainsFold(FieldDescription, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldLTE(FieldQuantity, v))
}

// UnitPriceEQ applies the EQ predicate on the "unit_price" field.
func UnitPriceEQ(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldEQ(FieldUnitPrice, v))
}

// UnitPriceNEQ applies the NEQ predicate on the "unit_price" field.
func UnitPriceNEQ(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNEQ(FieldUnitPrice, v))
}

// UnitPriceIn applies the In predicate on the "unit_price" field.
func UnitPriceIn(vs ...decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldIn(FieldUnitPrice, vs...))
}

// UnitPriceNotIn applies the NotIn predicate on the "unit_price" field.
func UnitPriceNotIn(vs ...decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNotIn(FieldUnitPrice, vs...))
}

// UnitPriceGT applies the GT predicate on the "unit_price" field.
func UnitPriceGT(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldGT(FieldUnitPrice, v))
}

// UnitPriceGTE applies the GTE predicate on the "unit_price" field.
func UnitPriceGTE(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldGTE(FieldUnitPrice, v))
}

// UnitPriceLT applies the LT predicate on the "unit_price" field.
func UnitPriceLT(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldLT(FieldUnitPrice, v))
}

// UnitPriceLTE applies the LTE predicate on the "unit_price" field.
func UnitPriceLTE(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldLTE(FieldUnitPrice, v))
}

// DiscountEQ applies the EQ predicate on the "discount" field.
func DiscountEQ(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldEQ(FieldDiscount, v))
}

// DiscountNEQ applies the NEQ predicate on the "discount" field.
func DiscountNEQ(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNEQ(FieldDiscount, v))
}

// DiscountIn applies the In predicate on the "discount" field.
func DiscountIn(vs ...decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldIn(FieldDiscount, vs...))
}

// DiscountNotIn applies the NotIn predicate on the "discount" field.
func DiscountNotIn(vs ...decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNotIn(FieldDiscount, vs...))
}

// DiscountGT applies the GT predicate on the "discount" field.
func DiscountGT(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldGT(FieldDiscount, v))
}

// DiscountGTE applies the GTE predicate on the "discount" field.
func DiscountGTE(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldGTE(FieldDiscount, v))
}

// DiscountLT applies the LT predicate on the "discount" field.
func DiscountLT(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldLT(FieldDiscount, v))
}

// DiscountLTE applies the LTE predicate on the "discount" field.
func DiscountLTE(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldLTE(FieldDiscount, v))
}

// DiscountIsNil applies the IsNil predicate on the "discount" field.
func DiscountIsNil() predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldIsNull(FieldDiscount))
}

// DiscountNotNil applies the NotNil predicate on the "discount" field.
func DiscountNotNil() predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNotNull(FieldDiscount))
}

// LineTotalEQ applies the EQ predicate on the "line_total" field.
func LineTotalEQ(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldEQ(FieldLineTotal, v))
}

// LineTotalNEQ applies the NEQ predicate on the "line_total" field.
func LineTotalNEQ(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNEQ(FieldLineTotal, v))
}

// LineTotalIn applies the In predicate on the "line_total" field.
func LineTotalIn(vs ...decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldIn(FieldLineTotal, vs...))
}

// LineTotalNotIn applies the NotIn predicate on the "line_total" field.
func LineTotalNotIn(vs ...decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNotIn(FieldLineTotal, vs...))
}

// LineTotalGT applies the GT predicate on the "line_total" field.
func LineTotalGT(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldGT(FieldLineTotal, v))
}

// LineTotalGTE applies the GTE predicate on the "line_total" field.
func LineTotalGTE(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldGTE(FieldLineTotal, v))
}

// LineTotalLT applies the LT predicate on the "line_total" field.
func LineTotalLT(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldLT(FieldLineTotal, v))
}

// LineTotalLTE applies the LTE predicate on the "line_total" field.
func LineTotalLTE(v decimal.Decimal) predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldLTE(FieldLineTotal, v))
}

// LineTotalIsNil applies the IsNil predicate on the "line_total" field.
func LineTotalIsNil() predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldIsNull(FieldLineTotal))
}

// LineTotalNotNil applies the NotNil predicate on the "line_total" field.
func LineTotalNotNil() predicate.QuoteItem {
	return predicate.QuoteItem(sql.FieldNotNull(FieldLineTotal))
}

// HasVersion applies the HasEdge predicate on the "version" edge.
func HasVersion() predicate.QuoteItem {
	return predicate.QuoteItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, VersionTable, VersionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVersionWith applies the HasEdge predicate on the "version" edge with a given conditions (other predicates).
func HasVersionWith(preds ...predicate.QuoteVersion) predicate.QuoteItem {
	return predicate.QuoteItem(func(s *sql.Selector) {
		step := newVersionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuoteItem) predicate.QuoteItem {
	return predicate.QuoteItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuoteItem) predicate.QuoteItem {
	return predicate.QuoteItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuoteItem) predicate.QuoteItem {
	return predicate.QuoteItem(sql.NotPredicates(p))
}
