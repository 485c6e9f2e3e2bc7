package server

import (
	"context"
	"strings"
	"time"

	quotespb "github.com/Akash-sopho/email-extractor-agent/gen/proto/quotes/v1"
	"github.com/Akash-sopho/email-extractor-agent/internal/async"
	"github.com/Akash-sopho/email-extractor-agent/internal/common"
	"github.com/Akash-sopho/email-extractor-agent/internal/ingest"
)

// IngestEmail stores one message and optionally enqueues extraction.
// Idempotent on provider_message_id: repeated calls return the same
// email_id with created=false.
func (s *QuotesService) IngestEmail(ctx context.Context, req *quotespb.IngestEmailRequest) (*quotespb.IngestEmailResponse, error) {
	if strings.TrimSpace(req.GetProviderThreadId()) == "" {
		return nil, common.InvalidArgumentError("provider_thread_id is required")
	}
	if strings.TrimSpace(req.GetProviderMessageId()) == "" {
		return nil, common.InvalidArgumentError("provider_message_id is required")
	}

	in := ingest.EmailInput{
		ProviderThreadID:  req.GetProviderThreadId(),
		ProviderMessageID: req.GetProviderMessageId(),
		FromAddr:          req.GetFromAddr(),
		ToAddrs:           req.GetToAddrs(),
		Subject:           req.GetSubject(),
		Snippet:           req.GetSnippet(),
	}
	if raw := strings.TrimSpace(req.GetSentAt()); raw != "" {
		sentAt, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("sent_at invalid (RFC 3339): %v", err)
		}
		in.SentAt = &sentAt
	}
	for _, b := range req.GetBodies() {
		in.Bodies = append(in.Bodies, ingest.BodyInput{
			MimeType: b.GetMimeType(),
			Text:     b.GetText(),
			HTML:     b.GetHtml(),
		})
	}
	for _, a := range req.GetAttachments() {
		in.Attachments = append(in.Attachments, ingest.AttachmentInput{
			Filename:  a.GetFilename(),
			MimeType:  a.GetMimeType(),
			SizeBytes: a.GetSizeBytes(),
			LocalPath: a.GetLocalPath(),
		})
	}

	em, created, err := s.ingestSvc.IngestEmail(ctx, in)
	if err != nil {
		s.logger.Error("ingest email failed", "provider_message_id", req.GetProviderMessageId(), "error", err)
		return nil, common.InternalError("ingest email failed")
	}

	enqueued := false
	if req.GetProcess() {
		if err := s.queue.Enqueue(ctx, async.Job{EmailID: em.ID, SubmittedAt: time.Now()}); err != nil {
			s.logger.Error("enqueue after ingest failed", "email_id", em.ID, "error", err)
		} else {
			enqueued = true
		}
	}

	return &quotespb.IngestEmailResponse{
		EmailId:  em.ID.String(),
		Created:  created,
		Enqueued: enqueued,
	}, nil
}
