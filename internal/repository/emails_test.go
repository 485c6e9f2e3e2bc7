package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateThreadIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewEmailRepository(testClient(t), testLogger())

	t1, err := repo.GetOrCreateThread(ctx, "thread-abc")
	require.NoError(t, err)
	t2, err := repo.GetOrCreateThread(ctx, "thread-abc")
	require.NoError(t, err)
	assert.Equal(t, t1.ID, t2.ID)

	t3, err := repo.GetOrCreateThread(ctx, "thread-def")
	require.NoError(t, err)
	assert.NotEqual(t, t1.ID, t3.ID)
}

func TestCreateEmailIdempotentOnProviderMessageID(t *testing.T) {
	ctx := context.Background()
	repo := NewEmailRepository(testClient(t), testLogger())

	th, err := repo.GetOrCreateThread(ctx, "thread-1")
	require.NoError(t, err)

	sentAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	params := CreateEmailParams{
		ThreadID:          th.ID,
		ProviderMessageID: "msg-1",
		FromAddr:          strp("sales@acme.com"),
		ToAddrs:           []string{"buyer@example.com"},
		Subject:           strp("Quote for services"),
		SentAt:            &sentAt,
		Bodies: []BodyParams{
			{MimeType: strp("text/plain"), Text: strp("see attached")},
		},
		Attachments: []AttachmentParams{
			{Filename: strp("quote.pdf"), MimeType: strp("application/pdf"), LocalPath: strp("/tmp/quote.pdf")},
		},
	}

	e1, created, err := repo.Create(ctx, params)
	require.NoError(t, err)
	assert.True(t, created)

	e2, created, err := repo.Create(ctx, params)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, e1.ID, e2.ID)
}

func TestGetWithPartsLoadsBodiesAndAttachments(t *testing.T) {
	ctx := context.Background()
	repo := NewEmailRepository(testClient(t), testLogger())

	th, err := repo.GetOrCreateThread(ctx, "thread-1")
	require.NoError(t, err)

	e, created, err := repo.Create(ctx, CreateEmailParams{
		ThreadID:          th.ID,
		ProviderMessageID: "msg-2",
		Subject:           strp("Quotation"),
		Bodies: []BodyParams{
			{MimeType: strp("text/plain"), Text: strp("plain body")},
			{MimeType: strp("text/html"), HTML: strp("<p>html body</p>")},
		},
		Attachments: []AttachmentParams{
			{Filename: strp("a.xlsx")},
			{Filename: strp("b.txt")},
		},
	})
	require.NoError(t, err)
	require.True(t, created)

	got, err := repo.GetWithParts(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, got.Edges.Bodies, 2)
	assert.Len(t, got.Edges.Attachments, 2)
	require.NotNil(t, got.Subject)
	assert.Equal(t, "Quotation", *got.Subject)
}
