package server

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Akash-sopho/email-extractor-agent/gen/ent"
	quotespb "github.com/Akash-sopho/email-extractor-agent/gen/proto/quotes/v1"
	"github.com/Akash-sopho/email-extractor-agent/internal/async"
	"github.com/Akash-sopho/email-extractor-agent/internal/common"
	"github.com/Akash-sopho/email-extractor-agent/internal/repository"
	"github.com/Akash-sopho/email-extractor-agent/internal/utils"
)

// ProcessEmail runs the pipeline synchronously for one stored email. The
// response always distinguishes processed from not-processed with a
// machine-readable reason.
func (s *QuotesService) ProcessEmail(ctx context.Context, req *quotespb.ProcessEmailRequest) (*quotespb.ProcessEmailResponse, error) {
	emailID, err := uuid.Parse(req.GetEmailId())
	if err != nil {
		return nil, common.InvalidArgumentError("email_id must be a UUID")
	}

	res, err := s.processor.ProcessEmail(ctx, emailID)
	if err != nil {
		s.logger.Error("process email failed", "email_id", emailID, "error", err)
		return nil, common.InternalErrorf("process email: %v", err)
	}
	return &quotespb.ProcessEmailResponse{
		EmailId:   res.EmailID.String(),
		Processed: res.Processed,
		Reason:    res.Reason,
		Versions:  int32(res.Versions),
	}, nil
}

// ReprocessEmail enqueues extraction for one email and returns immediately.
func (s *QuotesService) ReprocessEmail(ctx context.Context, req *quotespb.ReprocessEmailRequest) (*quotespb.ReprocessEmailResponse, error) {
	emailID, err := uuid.Parse(req.GetEmailId())
	if err != nil {
		return nil, common.InvalidArgumentError("email_id must be a UUID")
	}

	if err := s.queue.Enqueue(ctx, async.Job{EmailID: emailID, SubmittedAt: time.Now()}); err != nil {
		s.logger.Error("enqueue failed", "email_id", emailID, "error", err)
		return nil, common.InternalError("enqueue failed")
	}
	return &quotespb.ReprocessEmailResponse{EmailId: emailID.String(), Enqueued: true}, nil
}

func (s *QuotesService) ListQuotes(ctx context.Context, req *quotespb.ListQuotesRequest) (*quotespb.ListQuotesResponse, error) {
	var filter repository.QuoteFilter
	if v := strings.TrimSpace(req.GetVendor()); v != "" {
		filter.VendorName = &v
	}
	if fd := strings.TrimSpace(req.GetDateFrom()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("date_from invalid (YYYY-MM-DD): %v", err)
		}
		filter.DateFrom = &from
	}
	if td := strings.TrimSpace(req.GetDateTo()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("date_to invalid (YYYY-MM-DD): %v", err)
		}
		filter.DateTo = &to
	}

	quotes, err := s.quoteRepo.ListQuotes(ctx, filter)
	if err != nil {
		s.logger.Error("list quotes failed", "error", err)
		return nil, common.InternalError("list quotes failed")
	}

	out := make([]*quotespb.Quote, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, utils.ToPBQuote(q, req.GetLatestOnly()))
	}
	return &quotespb.ListQuotesResponse{Quotes: out}, nil
}

func (s *QuotesService) GetQuote(ctx context.Context, req *quotespb.GetQuoteRequest) (*quotespb.GetQuoteResponse, error) {
	quoteID, err := uuid.Parse(req.GetQuoteId())
	if err != nil {
		return nil, common.InvalidArgumentError("quote_id must be a UUID")
	}

	q, err := s.quoteRepo.GetQuote(ctx, quoteID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("quote not found")
		}
		s.logger.Error("get quote failed", "quote_id", quoteID, "error", err)
		return nil, common.InternalError("get quote failed")
	}
	return &quotespb.GetQuoteResponse{Quote: utils.ToPBQuote(q, req.GetLatestOnly())}, nil
}

func (s *QuotesService) DeleteQuote(ctx context.Context, req *quotespb.DeleteQuoteRequest) (*quotespb.DeleteQuoteResponse, error) {
	quoteID, err := uuid.Parse(req.GetQuoteId())
	if err != nil {
		return nil, common.InvalidArgumentError("quote_id must be a UUID")
	}

	if err := s.quoteRepo.DeleteQuote(ctx, quoteID); err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("quote not found")
		}
		s.logger.Error("delete quote failed", "quote_id", quoteID, "error", err)
		return nil, common.InternalError("delete quote failed")
	}
	return &quotespb.DeleteQuoteResponse{Deleted: true}, nil
}
