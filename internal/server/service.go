package server

import (
	"log/slog"

	quotespb "github.com/Akash-sopho/email-extractor-agent/gen/proto/quotes/v1"
	"github.com/Akash-sopho/email-extractor-agent/internal/async"
	"github.com/Akash-sopho/email-extractor-agent/internal/extract"
	"github.com/Akash-sopho/email-extractor-agent/internal/ingest"
	"github.com/Akash-sopho/email-extractor-agent/internal/repository"
)

// QuotesService implements the gRPC surface over the extraction pipeline
// and the persisted quote entities.
type QuotesService struct {
	quotespb.UnimplementedQuotesServiceServer
	processor  *extract.Processor
	queue      async.Queue
	ingestSvc  *ingest.Service
	quoteRepo  repository.QuoteRepository
	vendorRepo repository.VendorRepository
	logger     *slog.Logger
}

func NewQuotesService(
	processor *extract.Processor,
	queue async.Queue,
	ingestSvc *ingest.Service,
	quoteRepo repository.QuoteRepository,
	vendorRepo repository.VendorRepository,
	logger *slog.Logger,
) *QuotesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuotesService{
		processor:  processor,
		queue:      queue,
		ingestSvc:  ingestSvc,
		quoteRepo:  quoteRepo,
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}
