package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/Akash-sopho/email-extractor-agent/gen/ent"
	"github.com/Akash-sopho/email-extractor-agent/internal/repository"
)

func newService(t *testing.T) (*Service, *ent.Client) {
	t.Helper()

	name := strings.NewReplacer("/", "_", "#", "_").Replace(t.Name())
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Schema.Create(context.Background()))

	return NewService(repository.NewEmailRepository(client, slog.Default()), slog.Default()), client
}

func TestIngestEmailStoresMessageWithParts(t *testing.T) {
	ctx := context.Background()
	svc, client := newService(t)

	sentAt := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	em, created, err := svc.IngestEmail(ctx, EmailInput{
		ProviderThreadID:  "t-1",
		ProviderMessageID: "m-1",
		FromAddr:          "sales@acme.com",
		ToAddrs:           []string{"buyer@example.com"},
		Subject:           "Quote",
		SentAt:            &sentAt,
		Bodies: []BodyInput{
			{MimeType: "text/plain", Text: "pricing below"},
		},
		Attachments: []AttachmentInput{
			{Filename: "quote.pdf", MimeType: "application/pdf", SizeBytes: 1024, LocalPath: "/tmp/quote.pdf"},
		},
	})
	require.NoError(t, err)
	assert.True(t, created)

	bodies, err := client.EmailBody.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, bodies)
	atts, err := client.Attachment.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, atts)
	require.NotNil(t, em.Subject)
	assert.Equal(t, "Quote", *em.Subject)
}

func TestIngestEmailIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	in := EmailInput{ProviderThreadID: "t-1", ProviderMessageID: "m-dup"}
	e1, created, err := svc.IngestEmail(ctx, in)
	require.NoError(t, err)
	assert.True(t, created)

	e2, created, err := svc.IngestEmail(ctx, in)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, e1.ID, e2.ID)
}

func TestIngestEmailValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, _, err := svc.IngestEmail(ctx, EmailInput{ProviderMessageID: "m-1"})
	assert.Error(t, err)

	_, _, err = svc.IngestEmail(ctx, EmailInput{ProviderThreadID: "t-1"})
	assert.Error(t, err)
}
