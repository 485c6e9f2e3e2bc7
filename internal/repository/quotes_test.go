package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash-sopho/email-extractor-agent/gen/ent"
)

type quoteFixture struct {
	client   *ent.Client
	quotes   QuoteRepository
	threadID uuid.UUID
	vendorID uuid.UUID
	emailID  uuid.UUID
}

func newQuoteFixture(t *testing.T) quoteFixture {
	t.Helper()
	ctx := context.Background()
	client := testClient(t)

	emails := NewEmailRepository(client, testLogger())
	th, err := emails.GetOrCreateThread(ctx, "thread-1")
	require.NoError(t, err)

	sentAt := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	em, _, err := emails.Create(ctx, CreateEmailParams{
		ThreadID:          th.ID,
		ProviderMessageID: "msg-1",
		Subject:           strp("Quote"),
		SentAt:            &sentAt,
	})
	require.NoError(t, err)

	vendorID, err := NewVendorRepository(client, testLogger()).Upsert(ctx, strp("Acme"), strp("acme.com"))
	require.NoError(t, err)

	return quoteFixture{
		client:   client,
		quotes:   NewQuoteRepository(client, testLogger()),
		threadID: th.ID,
		vendorID: vendorID,
		emailID:  em.ID,
	}
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }
func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func TestGetOrCreateQuoteByThreadAndVendor(t *testing.T) {
	ctx := context.Background()
	f := newQuoteFixture(t)

	q1, err := f.quotes.GetOrCreateQuote(ctx, f.threadID, f.vendorID, f.emailID)
	require.NoError(t, err)
	q2, err := f.quotes.GetOrCreateQuote(ctx, f.threadID, f.vendorID, f.emailID)
	require.NoError(t, err)
	assert.Equal(t, q1.ID, q2.ID)
	require.NotNil(t, q2.AnchorEmailID)
	assert.Equal(t, f.emailID, *q2.AnchorEmailID)
}

func TestGetOrCreateQuoteBackfillsAnchorOnlyWhenUnset(t *testing.T) {
	ctx := context.Background()
	f := newQuoteFixture(t)

	q1, err := f.quotes.GetOrCreateQuote(ctx, f.threadID, f.vendorID, uuid.Nil)
	require.NoError(t, err)
	assert.Nil(t, q1.AnchorEmailID)

	// First email to arrive becomes the anchor.
	q2, err := f.quotes.GetOrCreateQuote(ctx, f.threadID, f.vendorID, f.emailID)
	require.NoError(t, err)
	assert.Equal(t, q1.ID, q2.ID)
	require.NotNil(t, q2.AnchorEmailID)
	assert.Equal(t, f.emailID, *q2.AnchorEmailID)

	// A later email never displaces it.
	emails := NewEmailRepository(f.client, testLogger())
	other, _, err := emails.Create(ctx, CreateEmailParams{
		ThreadID:          f.threadID,
		ProviderMessageID: "msg-other",
	})
	require.NoError(t, err)

	q3, err := f.quotes.GetOrCreateQuote(ctx, f.threadID, f.vendorID, other.ID)
	require.NoError(t, err)
	require.NotNil(t, q3.AnchorEmailID)
	assert.Equal(t, f.emailID, *q3.AnchorEmailID)
}

func TestGetOrCreateVersionOverwritesInPlace(t *testing.T) {
	ctx := context.Background()
	f := newQuoteFixture(t)

	q, err := f.quotes.GetOrCreateQuote(ctx, f.threadID, f.vendorID, f.emailID)
	require.NoError(t, err)

	v1, err := f.quotes.GetOrCreateVersion(ctx, VersionFields{
		QuoteID:       q.ID,
		SourceEmailID: f.emailID,
		VersionLabel:  strp("v1"),
		Currency:      "USD",
		Subtotal:      dp("24.00"),
		Tax:           dp("2.00"),
		Total:         d("26.00"),
	})
	require.NoError(t, err)

	// Reprocessing the same email converges on the same row with the new
	// extraction, including cleared optionals.
	v2, err := f.quotes.GetOrCreateVersion(ctx, VersionFields{
		QuoteID:       q.ID,
		SourceEmailID: f.emailID,
		Currency:      "EUR",
		Total:         d("30.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, v1.ID, v2.ID)
	assert.Equal(t, "EUR", v2.Currency)
	assert.Equal(t, "30.00", v2.Total.StringFixed(2))
	assert.Nil(t, v2.VersionLabel)
	assert.Nil(t, v2.Subtotal)
	assert.Nil(t, v2.Tax)
}

func TestGetOrCreateVersionAcceptsEmptyCurrency(t *testing.T) {
	ctx := context.Background()
	f := newQuoteFixture(t)

	q, err := f.quotes.GetOrCreateQuote(ctx, f.threadID, f.vendorID, f.emailID)
	require.NoError(t, err)

	v, err := f.quotes.GetOrCreateVersion(ctx, VersionFields{
		QuoteID:       q.ID,
		SourceEmailID: f.emailID,
		Currency:      "",
		Total:         d("10"),
	})
	require.NoError(t, err)
	assert.Empty(t, v.Currency)
}

func TestGetOrCreateVersionDistinctPerSourceEmail(t *testing.T) {
	ctx := context.Background()
	f := newQuoteFixture(t)

	q, err := f.quotes.GetOrCreateQuote(ctx, f.threadID, f.vendorID, f.emailID)
	require.NoError(t, err)

	emails := NewEmailRepository(f.client, testLogger())
	second, _, err := emails.Create(ctx, CreateEmailParams{
		ThreadID:          f.threadID,
		ProviderMessageID: "msg-2",
	})
	require.NoError(t, err)

	v1, err := f.quotes.GetOrCreateVersion(ctx, VersionFields{
		QuoteID: q.ID, SourceEmailID: f.emailID, Currency: "USD", Total: d("10"),
	})
	require.NoError(t, err)
	v2, err := f.quotes.GetOrCreateVersion(ctx, VersionFields{
		QuoteID: q.ID, SourceEmailID: second.ID, Currency: "USD", Total: d("12"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, v1.ID, v2.ID)
}

func TestReplaceItemsDeleteThenInsert(t *testing.T) {
	ctx := context.Background()
	f := newQuoteFixture(t)

	q, err := f.quotes.GetOrCreateQuote(ctx, f.threadID, f.vendorID, f.emailID)
	require.NoError(t, err)
	v, err := f.quotes.GetOrCreateVersion(ctx, VersionFields{
		QuoteID: q.ID, SourceEmailID: f.emailID, Currency: "USD", Total: d("29.00"),
	})
	require.NoError(t, err)

	err = f.quotes.ReplaceItems(ctx, v.ID, []ItemFields{
		{Description: "Service A", Quantity: d("2"), UnitPrice: d("10"), LineTotal: dp("20.00")},
		{Description: "Service B", Quantity: d("1"), UnitPrice: d("5"), Discount: dp("1"), LineTotal: dp("4.00")},
	})
	require.NoError(t, err)

	err = f.quotes.ReplaceItems(ctx, v.ID, []ItemFields{
		{Description: "Service C", Quantity: d("3"), UnitPrice: d("7"), LineTotal: dp("21.00")},
	})
	require.NoError(t, err)

	got, err := f.quotes.GetQuote(ctx, q.ID)
	require.NoError(t, err)
	require.Len(t, got.Edges.Versions, 1)
	items := got.Edges.Versions[0].Edges.Items
	require.Len(t, items, 1)
	assert.Equal(t, "Service C", items[0].Description)
}

func TestReplaceItemsEmptySetClears(t *testing.T) {
	ctx := context.Background()
	f := newQuoteFixture(t)

	q, err := f.quotes.GetOrCreateQuote(ctx, f.threadID, f.vendorID, f.emailID)
	require.NoError(t, err)
	v, err := f.quotes.GetOrCreateVersion(ctx, VersionFields{
		QuoteID: q.ID, SourceEmailID: f.emailID, Currency: "USD", Total: d("0"),
	})
	require.NoError(t, err)

	require.NoError(t, f.quotes.ReplaceItems(ctx, v.ID, []ItemFields{
		{Description: "Gone soon", Quantity: d("1"), UnitPrice: d("1")},
	}))
	require.NoError(t, f.quotes.ReplaceItems(ctx, v.ID, nil))

	got, err := f.quotes.GetQuote(ctx, q.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Edges.Versions[0].Edges.Items)
}

func TestListQuotesFilters(t *testing.T) {
	ctx := context.Background()
	f := newQuoteFixture(t)

	q, err := f.quotes.GetOrCreateQuote(ctx, f.threadID, f.vendorID, f.emailID)
	require.NoError(t, err)
	_, err = f.quotes.GetOrCreateVersion(ctx, VersionFields{
		QuoteID: q.ID, SourceEmailID: f.emailID, Currency: "USD", Total: d("26.00"),
	})
	require.NoError(t, err)

	byName, err := f.quotes.ListQuotes(ctx, QuoteFilter{VendorName: strp("acm")})
	require.NoError(t, err)
	assert.Len(t, byName, 1)

	noMatch, err := f.quotes.ListQuotes(ctx, QuoteFilter{VendorName: strp("globex")})
	require.NoError(t, err)
	assert.Empty(t, noMatch)

	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	inRange, err := f.quotes.ListQuotes(ctx, QuoteFilter{DateFrom: &from, DateTo: &to})
	require.NoError(t, err)
	assert.Len(t, inRange, 1)

	tooLate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	outOfRange, err := f.quotes.ListQuotes(ctx, QuoteFilter{DateFrom: &tooLate})
	require.NoError(t, err)
	assert.Empty(t, outOfRange)
}

func TestDeleteQuoteCascades(t *testing.T) {
	ctx := context.Background()
	f := newQuoteFixture(t)

	q, err := f.quotes.GetOrCreateQuote(ctx, f.threadID, f.vendorID, f.emailID)
	require.NoError(t, err)
	v, err := f.quotes.GetOrCreateVersion(ctx, VersionFields{
		QuoteID: q.ID, SourceEmailID: f.emailID, Currency: "USD", Total: d("5"),
	})
	require.NoError(t, err)
	require.NoError(t, f.quotes.ReplaceItems(ctx, v.ID, []ItemFields{
		{Description: "Item", Quantity: d("1"), UnitPrice: d("5")},
	}))

	require.NoError(t, f.quotes.DeleteQuote(ctx, q.ID))

	_, err = f.quotes.GetQuote(ctx, q.ID)
	assert.True(t, ent.IsNotFound(err))

	versions, err := f.client.QuoteVersion.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, versions)
	items, err := f.client.QuoteItem.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, items)
}
