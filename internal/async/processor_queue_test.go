package async

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/Akash-sopho/email-extractor-agent/gen/ent"
	"github.com/Akash-sopho/email-extractor-agent/internal/extract"
	"github.com/Akash-sopho/email-extractor-agent/internal/llm"
	"github.com/Akash-sopho/email-extractor-agent/internal/repository"
)

type countingExtractor struct {
	mu    sync.Mutex
	calls int
}

func (c *countingExtractor) Extract(context.Context, llm.ExtractRequest) (llm.Outcome, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return llm.Outcome{Result: llm.EmptyResult()}, nil
}

func (c *countingExtractor) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func newTestProcessor(t *testing.T, extractor llm.QuoteExtractor) (*extract.Processor, *ent.Client) {
	t.Helper()

	name := strings.NewReplacer("/", "_", "#", "_").Replace(t.Name())
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Schema.Create(context.Background()))

	return extract.NewProcessor(client, extractor, slog.Default()), client
}

func TestProcessorQueueDrainsOnShutdown(t *testing.T) {
	ctx := context.Background()
	extractor := &countingExtractor{}
	proc, client := newTestProcessor(t, extractor)

	emails := repository.NewEmailRepository(client, slog.Default())
	th, err := emails.GetOrCreateThread(ctx, "thread-1")
	require.NoError(t, err)

	subject := "Quote"
	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		em, _, err := emails.Create(ctx, repository.CreateEmailParams{
			ThreadID:          th.ID,
			ProviderMessageID: fmt.Sprintf("msg-%d", i),
			Subject:           &subject,
		})
		require.NoError(t, err)
		ids = append(ids, em.ID)
	}

	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(1), WithQueueSize(16))
	for _, id := range ids {
		require.NoError(t, q.Enqueue(ctx, Job{EmailID: id, SubmittedAt: time.Now()}))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	q.Shutdown(shutdownCtx)

	assert.Equal(t, 5, extractor.count(), "every queued email reaches the extractor")
}

func TestProcessorQueueEnqueueAfterShutdownIsDropped(t *testing.T) {
	proc, _ := newTestProcessor(t, &countingExtractor{})
	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(1))

	q.Shutdown(context.Background())

	// No panic on a closed queue; the job is logged and dropped.
	err := q.Enqueue(context.Background(), Job{EmailID: uuid.New()})
	assert.NoError(t, err)
}

func TestProcessorQueueMissingEmailIsNotFatal(t *testing.T) {
	extractor := &countingExtractor{}
	proc, _ := newTestProcessor(t, extractor)

	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(1))
	require.NoError(t, q.Enqueue(context.Background(), Job{EmailID: uuid.New()}))
	q.Shutdown(context.Background())

	assert.Zero(t, extractor.count())
}
