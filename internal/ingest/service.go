package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Akash-sopho/email-extractor-agent/gen/ent"
	"github.com/Akash-sopho/email-extractor-agent/internal/repository"
)

// BodyInput is one body rendering of an incoming message.
type BodyInput struct {
	MimeType string
	Text     string
	HTML     string
}

// AttachmentInput references an attachment payload already downloaded to
// local disk by the acquisition layer.
type AttachmentInput struct {
	Filename  string
	MimeType  string
	SizeBytes int64
	LocalPath string
}

// EmailInput is one parsed message handed over by the acquisition layer.
// Mailbox access and header parsing happen upstream; this service only
// stores what it is given.
type EmailInput struct {
	ProviderThreadID  string
	ProviderMessageID string
	FromAddr          string
	ToAddrs           []string
	Subject           string
	SentAt            *time.Time
	Snippet           string
	Bodies            []BodyInput
	Attachments       []AttachmentInput
}

type Service struct {
	emails repository.EmailRepository
	logger *slog.Logger
}

func NewService(emails repository.EmailRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		emails: emails,
		logger: logger,
	}
}

// IngestEmail stores one message with its thread, bodies and attachments.
// Idempotent on the provider message id.
func (s *Service) IngestEmail(ctx context.Context, in EmailInput) (*ent.Email, bool, error) {
	if in.ProviderThreadID == "" {
		return nil, false, fmt.Errorf("provider thread id is required")
	}
	if in.ProviderMessageID == "" {
		return nil, false, fmt.Errorf("provider message id is required")
	}

	thread, err := s.emails.GetOrCreateThread(ctx, in.ProviderThreadID)
	if err != nil {
		return nil, false, fmt.Errorf("get or create thread: %w", err)
	}

	params := repository.CreateEmailParams{
		ThreadID:          thread.ID,
		ProviderMessageID: in.ProviderMessageID,
		FromAddr:          nilIfEmpty(in.FromAddr),
		ToAddrs:           in.ToAddrs,
		Subject:           nilIfEmpty(in.Subject),
		SentAt:            in.SentAt,
		Snippet:           nilIfEmpty(in.Snippet),
	}
	for _, b := range in.Bodies {
		params.Bodies = append(params.Bodies, repository.BodyParams{
			MimeType: nilIfEmpty(b.MimeType),
			Text:     nilIfEmpty(b.Text),
			HTML:     nilIfEmpty(b.HTML),
		})
	}
	for _, a := range in.Attachments {
		att := repository.AttachmentParams{
			Filename:  nilIfEmpty(a.Filename),
			MimeType:  nilIfEmpty(a.MimeType),
			LocalPath: nilIfEmpty(a.LocalPath),
		}
		if a.SizeBytes > 0 {
			size := a.SizeBytes
			att.SizeBytes = &size
		}
		params.Attachments = append(params.Attachments, att)
	}

	return s.emails.Create(ctx, params)
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
