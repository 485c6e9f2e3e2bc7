package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Akash-sopho/email-extractor-agent/internal/extract"
)

// ProcessorQueue is an in-process worker pool over the extraction pipeline.
// Units of work for different emails run fully in parallel; a unit either
// runs to commit or fails wholesale.
type ProcessorQueue struct {
	proc    *extract.Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(proc *extract.Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	q := &ProcessorQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					res, err := q.proc.ProcessEmail(ctx, job.EmailID)
					cancel()

					switch {
					case err != nil:
						q.logger.Error("processing failed", "worker_id", workerID, "email_id", job.EmailID, "error", err)
					case !res.Processed:
						q.logger.Info("email skipped", "worker_id", workerID, "email_id", job.EmailID, "reason", res.Reason)
					default:
						q.logger.Info("email processed", "worker_id", workerID, "email_id", job.EmailID, "versions", res.Versions)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "email_id", job.EmailID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued email for processing", "email_id", job.EmailID)
	default:
		q.logger.Warn("queue full, applying backpressure", "email_id", job.EmailID)
		q.ch <- job
	}
	return nil
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
