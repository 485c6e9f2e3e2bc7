package extract

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash-sopho/email-extractor-agent/internal/llm"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestNormalizeExtractionDerivesAbsentValues(t *testing.T) {
	res := llm.ExtractionResult{
		Versions: []llm.ExtractedVersion{
			{
				Currency: "USD",
				Items: []llm.ExtractedItem{
					{Description: "Service A", Quantity: dec("2"), UnitPrice: dec("10")},
					{Description: "Service B", Quantity: dec("1"), UnitPrice: dec("5"), Discount: dec("1")},
				},
				Tax:      dec("2"),
				Shipping: dec("3"),
			},
		},
	}

	NormalizeExtraction(&res)

	v := res.Versions[0]
	require.NotNil(t, v.Items[0].LineTotal)
	require.NotNil(t, v.Items[1].LineTotal)
	assert.Equal(t, "20.00", v.Items[0].LineTotal.StringFixed(2))
	assert.Equal(t, "4.00", v.Items[1].LineTotal.StringFixed(2))

	require.NotNil(t, v.Subtotal)
	assert.Equal(t, "24.00", v.Subtotal.StringFixed(2))
	require.NotNil(t, v.Total)
	assert.Equal(t, "29.00", v.Total.StringFixed(2))
}

func TestNormalizeExtractionNeverOverwritesSuppliedValues(t *testing.T) {
	// Supplied values stay untouched even when arithmetic disagrees.
	res := llm.ExtractionResult{
		Versions: []llm.ExtractedVersion{
			{
				Currency: "USD",
				Items: []llm.ExtractedItem{
					{Description: "Widget", Quantity: dec("3"), UnitPrice: dec("10"), LineTotal: dec("25")},
				},
				Subtotal: dec("99"),
				Total:    dec("100"),
			},
		},
	}

	NormalizeExtraction(&res)

	v := res.Versions[0]
	assert.Equal(t, "25.00", v.Items[0].LineTotal.StringFixed(2))
	assert.Equal(t, "99.00", v.Subtotal.StringFixed(2))
	assert.Equal(t, "100.00", v.Total.StringFixed(2))
}

func TestNormalizeExtractionSubtotalSumsSuppliedLineTotals(t *testing.T) {
	// A supplied line total feeds the derived subtotal as-is.
	res := llm.ExtractionResult{
		Versions: []llm.ExtractedVersion{
			{
				Currency: "EUR",
				Items: []llm.ExtractedItem{
					{Description: "Fixed", LineTotal: dec("12.34")},
					{Description: "Derived", Quantity: dec("2"), UnitPrice: dec("0.33")},
				},
			},
		},
	}

	NormalizeExtraction(&res)

	v := res.Versions[0]
	assert.Equal(t, "0.66", v.Items[1].LineTotal.StringFixed(2))
	require.NotNil(t, v.Subtotal)
	assert.Equal(t, "13.00", v.Subtotal.StringFixed(2))
	// No tax or shipping: total equals subtotal.
	require.NotNil(t, v.Total)
	assert.Equal(t, "13.00", v.Total.StringFixed(2))
}

func TestNormalizeExtractionMissingQuantityDefaultsToZero(t *testing.T) {
	res := llm.ExtractionResult{
		Versions: []llm.ExtractedVersion{
			{
				Currency: "USD",
				Items: []llm.ExtractedItem{
					{Description: "No quantity", UnitPrice: dec("10")},
				},
			},
		},
	}

	NormalizeExtraction(&res)

	v := res.Versions[0]
	require.NotNil(t, v.Items[0].LineTotal)
	assert.True(t, v.Items[0].LineTotal.IsZero())
	assert.Equal(t, "0.00", v.Subtotal.StringFixed(2))
}

func TestNormalizeExtractionExactDecimalArithmetic(t *testing.T) {
	// 0.1 + 0.2 style values must come out exact, not float-approximate.
	res := llm.ExtractionResult{
		Versions: []llm.ExtractedVersion{
			{
				Currency: "USD",
				Items: []llm.ExtractedItem{
					{Description: "A", Quantity: dec("3"), UnitPrice: dec("0.1")},
					{Description: "B", Quantity: dec("1"), UnitPrice: dec("0.2")},
				},
			},
		},
	}

	NormalizeExtraction(&res)

	assert.Equal(t, "0.50", res.Versions[0].Subtotal.StringFixed(2))
}

func TestComputeLineTotal(t *testing.T) {
	got := ComputeLineTotal(decimal.RequireFromString("2"), decimal.RequireFromString("10"), nil)
	assert.Equal(t, "20", got.String())

	got = ComputeLineTotal(decimal.RequireFromString("1"), decimal.RequireFromString("5"), dec("1"))
	assert.Equal(t, "4", got.String())
}

func TestNormalizeExtractionEmptyVersions(t *testing.T) {
	res := llm.EmptyResult()
	NormalizeExtraction(&res)
	assert.Empty(t, res.Versions)
}
