package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one unit of work: process a single stored email. Redelivery of the
// same email is expected and safe; the pipeline is idempotent.
type Job struct {
	EmailID     uuid.UUID
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
