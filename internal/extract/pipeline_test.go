package extract

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/Akash-sopho/email-extractor-agent/gen/ent"
	"github.com/Akash-sopho/email-extractor-agent/internal/llm"
	"github.com/Akash-sopho/email-extractor-agent/internal/repository"
)

func strp(s string) *string { return &s }

func testLogger() *slog.Logger { return slog.Default() }

func newTestDB(t *testing.T) *ent.Client {
	t.Helper()

	name := strings.NewReplacer("/", "_", "#", "_").Replace(t.Name())
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Schema.Create(context.Background()))
	return client
}

// stubExtractor returns a fixed result and records the requests it saw.
type stubExtractor struct {
	result   llm.ExtractionResult
	degraded bool
	reason   string
	requests []llm.ExtractRequest
}

// Extract hands out a copy per call, like a real adapter decoding a fresh
// payload. Normalization mutates its input, so a shared slice would leak the
// first run's derived totals into the next.
func (s *stubExtractor) Extract(_ context.Context, req llm.ExtractRequest) (llm.Outcome, error) {
	s.requests = append(s.requests, req)

	res := s.result
	res.Versions = make([]llm.ExtractedVersion, len(s.result.Versions))
	copy(res.Versions, s.result.Versions)
	for i := range res.Versions {
		items := make([]llm.ExtractedItem, len(res.Versions[i].Items))
		copy(items, res.Versions[i].Items)
		res.Versions[i].Items = items
	}
	return llm.Outcome{Result: res, Degraded: s.degraded, Reason: s.reason}, nil
}

func seedEmail(t *testing.T, client *ent.Client, subject, body string, attachments []repository.AttachmentParams) *ent.Email {
	t.Helper()
	ctx := context.Background()
	emails := repository.NewEmailRepository(client, testLogger())

	th, err := emails.GetOrCreateThread(ctx, "thread-1")
	require.NoError(t, err)

	sentAt := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	em, _, err := emails.Create(ctx, repository.CreateEmailParams{
		ThreadID:          th.ID,
		ProviderMessageID: uuid.NewString(),
		FromAddr:          strp("sales@acme.com"),
		ToAddrs:           []string{"buyer@example.com"},
		Subject:           strp(subject),
		SentAt:            &sentAt,
		Bodies: []repository.BodyParams{
			{MimeType: strp("text/plain"), Text: strp(body)},
		},
		Attachments: attachments,
	})
	require.NoError(t, err)
	return em
}

func acmeResult() llm.ExtractionResult {
	return llm.ExtractionResult{
		Vendor: llm.ExtractedVendor{Name: strp("Acme Inc"), Domain: strp("acme.com")},
		Versions: []llm.ExtractedVersion{
			{
				VersionLabel: strp("v1"),
				Currency:     "USD",
				Items: []llm.ExtractedItem{
					{Description: "Service A", Quantity: dec("2"), UnitPrice: dec("10")},
				},
			},
		},
	}
}

func TestProcessEmailEndToEnd(t *testing.T) {
	ctx := context.Background()
	client := newTestDB(t)
	stub := &stubExtractor{result: acmeResult()}
	proc := NewProcessor(client, stub, testLogger())

	em := seedEmail(t, client, "Quote for services", "Please see our quote below.", nil)

	res, err := proc.ProcessEmail(ctx, em.ID)
	require.NoError(t, err)
	assert.True(t, res.Processed)
	assert.Equal(t, 1, res.Versions)
	assert.Empty(t, res.Reason)

	// The stub saw the message content.
	require.Len(t, stub.requests, 1)
	assert.Equal(t, "Quote for services", stub.requests[0].Subject)
	assert.Equal(t, "sales@acme.com", stub.requests[0].From)

	// Stored state: one vendor, one quote anchored to the email, one version
	// with normalized totals and one item with a derived line total.
	quotes := repository.NewQuoteRepository(client, testLogger())
	all, err := quotes.ListQuotes(ctx, repository.QuoteFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)

	q := all[0]
	require.NotNil(t, q.AnchorEmailID)
	assert.Equal(t, em.ID, *q.AnchorEmailID)
	require.NotNil(t, q.Edges.Vendor.Name)
	assert.Equal(t, "Acme Inc", *q.Edges.Vendor.Name)

	require.Len(t, q.Edges.Versions, 1)
	v := q.Edges.Versions[0]
	require.NotNil(t, v.Subtotal)
	assert.Equal(t, "20.00", v.Subtotal.StringFixed(2))
	assert.Equal(t, "20.00", v.Total.StringFixed(2))

	require.Len(t, v.Edges.Items, 1)
	it := v.Edges.Items[0]
	assert.Equal(t, "Service A", it.Description)
	require.NotNil(t, it.LineTotal)
	assert.Equal(t, "20.00", it.LineTotal.StringFixed(2))
}

func TestProcessEmailIdempotentReprocess(t *testing.T) {
	ctx := context.Background()
	client := newTestDB(t)
	stub := &stubExtractor{result: acmeResult()}
	proc := NewProcessor(client, stub, testLogger())

	em := seedEmail(t, client, "Quotation", "pricing attached", nil)

	res1, err := proc.ProcessEmail(ctx, em.ID)
	require.NoError(t, err)
	require.True(t, res1.Processed)

	firstVersion, err := client.QuoteVersion.Query().Only(ctx)
	require.NoError(t, err)

	// Second run with revised items overwrites the same version row and
	// replaces its items rather than appending.
	stub.result.Versions[0].Items = []llm.ExtractedItem{
		{Description: "Service B", Quantity: dec("1"), UnitPrice: dec("30")},
	}
	res2, err := proc.ProcessEmail(ctx, em.ID)
	require.NoError(t, err)
	require.True(t, res2.Processed)

	secondVersion, err := client.QuoteVersion.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, firstVersion.ID, secondVersion.ID)
	assert.Equal(t, "30.00", secondVersion.Total.StringFixed(2))

	items, err := client.QuoteItem.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Service B", items[0].Description)
}

func TestProcessEmailPrefilterSkip(t *testing.T) {
	ctx := context.Background()
	client := newTestDB(t)
	stub := &stubExtractor{result: acmeResult()}
	proc := NewProcessor(client, stub, testLogger())

	em := seedEmail(t, client, "Lunch on Friday?", "Does noon work?", nil)

	res, err := proc.ProcessEmail(ctx, em.ID)
	require.NoError(t, err)
	assert.False(t, res.Processed)
	assert.Equal(t, ReasonPrefilterSkip, res.Reason)
	assert.Empty(t, stub.requests, "extractor must not be called for skipped emails")

	n, err := client.Quote.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProcessEmailNotFound(t *testing.T) {
	ctx := context.Background()
	client := newTestDB(t)
	proc := NewProcessor(client, &stubExtractor{}, testLogger())

	missing := uuid.New()
	res, err := proc.ProcessEmail(ctx, missing)
	require.NoError(t, err)
	assert.False(t, res.Processed)
	assert.Equal(t, ReasonEmailNotFound, res.Reason)
	assert.Equal(t, missing, res.EmailID)
}

func TestProcessEmailDegradedExtractionStillPersistsVendorQuote(t *testing.T) {
	ctx := context.Background()
	client := newTestDB(t)
	stub := &stubExtractor{result: llm.EmptyResult(), degraded: true, reason: "no-credential"}
	proc := NewProcessor(client, stub, testLogger())

	em := seedEmail(t, client, "Quote", "quote inside", nil)

	res, err := proc.ProcessEmail(ctx, em.ID)
	require.NoError(t, err)
	assert.True(t, res.Processed)
	assert.Equal(t, 0, res.Versions)

	// An empty extraction still records the (anonymous) vendor and the quote
	// shell so reprocessing has something to converge on.
	versions, err := client.QuoteVersion.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, versions)
}

func TestProcessEmailAttachmentTextReachesExtractor(t *testing.T) {
	ctx := context.Background()
	client := newTestDB(t)
	stub := &stubExtractor{result: acmeResult()}
	proc := NewProcessor(client, stub, testLogger())

	dir := t.TempDir()
	path := filepath.Join(dir, "quote.txt")
	require.NoError(t, os.WriteFile(path, []byte("Widget pricing: 2 x $10"), 0o644))

	em := seedEmail(t, client, "Quote attached", "see attachment", []repository.AttachmentParams{
		{Filename: strp("quote.txt"), MimeType: strp("text/plain"), LocalPath: strp(path)},
	})

	_, err := proc.ProcessEmail(ctx, em.ID)
	require.NoError(t, err)

	require.Len(t, stub.requests, 1)
	got := stub.requests[0].AttachmentsText
	assert.Contains(t, got, "--- quote.txt ---")
	assert.Contains(t, got, "Widget pricing: 2 x $10")
}

func TestProcessEmailUnreadableAttachmentIsIsolated(t *testing.T) {
	ctx := context.Background()
	client := newTestDB(t)
	stub := &stubExtractor{result: acmeResult()}
	proc := NewProcessor(client, stub, testLogger())

	em := seedEmail(t, client, "Quote", "quote", []repository.AttachmentParams{
		{Filename: strp("gone.pdf"), LocalPath: strp("/nonexistent/gone.pdf")},
	})

	res, err := proc.ProcessEmail(ctx, em.ID)
	require.NoError(t, err)
	assert.True(t, res.Processed)
	require.Len(t, stub.requests, 1)
	assert.Empty(t, stub.requests[0].AttachmentsText)
}

func TestProcessEmailPersistsVersionWithoutCurrency(t *testing.T) {
	ctx := context.Background()
	client := newTestDB(t)

	// Repair keeps a currency-less version; it must commit, not redeliver
	// forever on a validation error.
	result := acmeResult()
	result.Versions[0].Currency = ""
	stub := &stubExtractor{result: result}
	proc := NewProcessor(client, stub, testLogger())

	em := seedEmail(t, client, "Quote", "quote", nil)

	res, err := proc.ProcessEmail(ctx, em.ID)
	require.NoError(t, err)
	assert.True(t, res.Processed)
	assert.Equal(t, 1, res.Versions)

	v, err := client.QuoteVersion.Query().Only(ctx)
	require.NoError(t, err)
	assert.Empty(t, v.Currency)
}

func TestProcessEmailDropsItemsWithoutDescription(t *testing.T) {
	ctx := context.Background()
	client := newTestDB(t)

	result := acmeResult()
	result.Versions[0].Items = append(result.Versions[0].Items, llm.ExtractedItem{
		Description: "", Quantity: dec("1"), UnitPrice: dec("1"),
	})
	stub := &stubExtractor{result: result}
	proc := NewProcessor(client, stub, testLogger())

	em := seedEmail(t, client, "Quote", "quote", nil)

	res, err := proc.ProcessEmail(ctx, em.ID)
	require.NoError(t, err)
	require.True(t, res.Processed)

	items, err := client.QuoteItem.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Service A", items[0].Description)
}
