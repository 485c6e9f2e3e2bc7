package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Akash-sopho/email-extractor-agent/gen/ent"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/email"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/thread"
)

// BodyParams is one body rendering supplied by the ingestion layer.
type BodyParams struct {
	MimeType *string
	Text     *string
	HTML     *string
}

// AttachmentParams references a downloaded attachment payload.
type AttachmentParams struct {
	Filename  *string
	MimeType  *string
	SizeBytes *int64
	LocalPath *string
}

// CreateEmailParams carries one parsed message for storage.
type CreateEmailParams struct {
	ThreadID          uuid.UUID
	ProviderMessageID string
	FromAddr          *string
	ToAddrs           []string
	Subject           *string
	SentAt            *time.Time
	Snippet           *string
	Bodies            []BodyParams
	Attachments       []AttachmentParams
}

type EmailRepository interface {
	// GetWithParts loads an email with its bodies and attachments.
	GetWithParts(ctx context.Context, id uuid.UUID) (*ent.Email, error)
	GetOrCreateThread(ctx context.Context, providerThreadID string) (*ent.Thread, error)
	// Create stores a message with its parts. Idempotent on the provider
	// message id: an already-stored message is returned with created=false.
	Create(ctx context.Context, p CreateEmailParams) (*ent.Email, bool, error)
}

type emailRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewEmailRepository(client *ent.Client, logger *slog.Logger) EmailRepository {
	return &emailRepository{
		client: client,
		logger: logger,
	}
}

func (r *emailRepository) GetWithParts(ctx context.Context, id uuid.UUID) (*ent.Email, error) {
	return r.client.Email.Query().
		Where(email.ID(id)).
		WithBodies().
		WithAttachments().
		Only(ctx)
}

func (r *emailRepository) GetOrCreateThread(ctx context.Context, providerThreadID string) (*ent.Thread, error) {
	t, err := r.client.Thread.Query().
		Where(thread.ProviderThreadID(providerThreadID)).
		Only(ctx)
	if err == nil {
		return r.client.Thread.UpdateOne(t).SetLastSyncedAt(time.Now()).Save(ctx)
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}
	t, err = r.client.Thread.Create().
		SetProviderThreadID(providerThreadID).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create thread", "provider_thread_id", providerThreadID, "error", err)
		return nil, err
	}
	r.logger.Info("thread created", "thread_id", t.ID, "provider_thread_id", providerThreadID)
	return t, nil
}

func (r *emailRepository) Create(ctx context.Context, p CreateEmailParams) (*ent.Email, bool, error) {
	existing, err := r.client.Email.Query().
		Where(email.ProviderMessageID(p.ProviderMessageID)).
		Only(ctx)
	if err == nil {
		r.logger.Debug("email already stored", "email_id", existing.ID, "provider_message_id", p.ProviderMessageID)
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, err
	}

	builder := r.client.Email.Create().
		SetThreadID(p.ThreadID).
		SetProviderMessageID(p.ProviderMessageID).
		SetNillableFromAddr(p.FromAddr).
		SetNillableSubject(p.Subject).
		SetNillableSentAt(p.SentAt).
		SetNillableSnippet(p.Snippet)
	if len(p.ToAddrs) > 0 {
		builder = builder.SetToAddrs(p.ToAddrs)
	}
	e, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create email", "provider_message_id", p.ProviderMessageID, "error", err)
		return nil, false, err
	}

	for _, b := range p.Bodies {
		if _, err := r.client.EmailBody.Create().
			SetEmailID(e.ID).
			SetNillableMimeType(b.MimeType).
			SetNillableBodyText(b.Text).
			SetNillableBodyHTML(b.HTML).
			Save(ctx); err != nil {
			return nil, false, err
		}
	}
	for _, a := range p.Attachments {
		if _, err := r.client.Attachment.Create().
			SetEmailID(e.ID).
			SetNillableFilename(a.Filename).
			SetNillableMimeType(a.MimeType).
			SetNillableSizeBytes(a.SizeBytes).
			SetNillableLocalPath(a.LocalPath).
			Save(ctx); err != nil {
			return nil, false, err
		}
	}

	r.logger.Info("email stored", "email_id", e.ID, "provider_message_id", p.ProviderMessageID,
		"bodies", len(p.Bodies), "attachments", len(p.Attachments))
	return e, true, nil
}
