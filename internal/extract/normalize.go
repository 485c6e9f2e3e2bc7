package extract

import (
	"github.com/shopspring/decimal"

	"github.com/Akash-sopho/email-extractor-agent/internal/llm"
)

// moneyScale matches the numeric(12,2) storage columns.
const moneyScale = 2

// NormalizeExtraction fills in missing line totals, subtotals and totals
// using exact decimal arithmetic. Values the extractor supplied are never
// overwritten; only absent values are derived. Missing quantity and unit
// price default to zero rather than rejecting the item.
func NormalizeExtraction(res *llm.ExtractionResult) {
	for vi := range res.Versions {
		v := &res.Versions[vi]

		sum := decimal.Zero
		for ii := range v.Items {
			it := &v.Items[ii]
			if it.LineTotal == nil {
				lt := ComputeLineTotal(orZero(it.Quantity), orZero(it.UnitPrice), it.Discount).Round(moneyScale)
				it.LineTotal = &lt
			}
			sum = sum.Add(*it.LineTotal)
		}

		if v.Subtotal == nil {
			sub := sum.Round(moneyScale)
			v.Subtotal = &sub
		}
		if v.Total == nil {
			total := v.Subtotal.Add(orZero(v.Tax)).Add(orZero(v.Shipping)).Round(moneyScale)
			v.Total = &total
		}
	}
}

// ComputeLineTotal is quantity * unit_price minus an optional discount.
func ComputeLineTotal(quantity, unitPrice decimal.Decimal, discount *decimal.Decimal) decimal.Decimal {
	total := quantity.Mul(unitPrice)
	if discount != nil && !discount.IsZero() {
		total = total.Sub(*discount)
	}
	return total
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
