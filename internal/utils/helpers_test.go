package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash-sopho/email-extractor-agent/gen/ent"
)

func strp(s string) *string { return &s }

func dp(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestToPBItem(t *testing.T) {
	it := &ent.QuoteItem{
		ID:          uuid.New(),
		Description: "Service A",
		Quantity:    decimal.RequireFromString("2"),
		UnitPrice:   decimal.RequireFromString("10"),
		LineTotal:   dp("20"),
	}

	pb := ToPBItem(it)
	assert.Equal(t, "Service A", pb.Description)
	assert.Equal(t, "2.00", pb.Quantity)
	assert.Equal(t, "10.00", pb.UnitPrice)
	assert.Equal(t, "20.00", pb.LineTotal)
	assert.Empty(t, pb.Discount, "absent money renders as empty string")
	assert.Empty(t, pb.Sku)
}

func TestToPBVersionValidTill(t *testing.T) {
	valid := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	v := &ent.QuoteVersion{
		ID:        uuid.New(),
		Currency:  "USD",
		Total:     decimal.RequireFromString("26"),
		ValidTill: &valid,
		CreatedAt: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	}

	pb := ToPBVersion(v)
	assert.Equal(t, "2026-09-30", pb.ValidTill)
	assert.Equal(t, "26.00", pb.Total)
	assert.Empty(t, pb.VersionLabel)
}

func TestToPBQuoteLatestOnly(t *testing.T) {
	q := &ent.Quote{
		ID:       uuid.New(),
		ThreadID: uuid.New(),
		Status:   "active",
	}
	q.Edges.Vendor = &ent.Vendor{ID: uuid.New(), Name: strp("Acme")}
	q.Edges.Versions = []*ent.QuoteVersion{
		{ID: uuid.New(), Currency: "USD", Total: decimal.RequireFromString("10")},
		{ID: uuid.New(), Currency: "USD", Total: decimal.RequireFromString("12")},
	}

	all := ToPBQuote(q, false)
	require.Len(t, all.Versions, 2)

	latest := ToPBQuote(q, true)
	require.Len(t, latest.Versions, 1)
	assert.Equal(t, "12.00", latest.Versions[0].Total)
	assert.Equal(t, "Acme", latest.Vendor.Name)
}

func TestParseYMD(t *testing.T) {
	got, err := ParseYMD("2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseYMD("30/08/2026")
	assert.Error(t, err)
}
