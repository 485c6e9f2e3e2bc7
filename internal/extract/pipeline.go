package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Akash-sopho/email-extractor-agent/gen/ent"
	"github.com/Akash-sopho/email-extractor-agent/internal/extract/doctext"
	"github.com/Akash-sopho/email-extractor-agent/internal/llm"
	"github.com/Akash-sopho/email-extractor-agent/internal/repository"
)

// Terminal non-error outcomes reported by ProcessEmail.
const (
	ReasonEmailNotFound = "email-not-found"
	ReasonPrefilterSkip = "prefilter-skip"
)

// attachmentExcerptLimit bounds the text taken from one attachment before it
// is joined into the prompt. The cut is a plain prefix.
const attachmentExcerptLimit = 8000

// Result is the machine-readable outcome for one processed email.
type Result struct {
	EmailID   uuid.UUID `json:"email_id"`
	Processed bool      `json:"processed"`
	Reason    string    `json:"reason,omitempty"`
	Versions  int       `json:"versions,omitempty"`
}

// Processor runs the email-to-quote pipeline: prefilter, attachment text
// extraction, LLM extraction, normalization, idempotent persistence. One
// email is one unit of work committed in one transaction.
type Processor struct {
	client    *ent.Client
	extractor llm.QuoteExtractor
	logger    *slog.Logger
}

func NewProcessor(client *ent.Client, extractor llm.QuoteExtractor, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		client:    client,
		extractor: extractor,
		logger:    logger,
	}
}

// ProcessEmail processes one stored email into quote versions and items.
// Safe to call repeatedly for the same email: vendors, quotes and versions
// are keyed by natural keys and items are replaced wholesale. A missing
// email and a prefilter miss are reported outcomes, not errors; storage
// failures propagate with nothing committed.
func (p *Processor) ProcessEmail(ctx context.Context, emailID uuid.UUID) (Result, error) {
	emails := repository.NewEmailRepository(p.client, p.logger)
	em, err := emails.GetWithParts(ctx, emailID)
	if err != nil {
		if ent.IsNotFound(err) {
			return Result{EmailID: emailID, Reason: ReasonEmailNotFound}, nil
		}
		return Result{EmailID: emailID}, fmt.Errorf("load email: %w", err)
	}

	subject := strOrEmpty(em.Subject)
	bodyText := selectBody(em.Edges.Bodies)
	if !ShouldProcess(subject, bodyText) {
		p.logger.Debug("prefilter skip", "email_id", emailID)
		return Result{EmailID: emailID, Reason: ReasonPrefilterSkip}, nil
	}

	var date string
	if em.SentAt != nil {
		date = em.SentAt.Format(time.RFC3339)
	}

	out, err := p.extractor.Extract(ctx, llm.ExtractRequest{
		Subject:         subject,
		From:            strOrEmpty(em.FromAddr),
		To:              em.ToAddrs,
		Date:            date,
		BodyText:        bodyText,
		AttachmentsText: p.attachmentsText(em.Edges.Attachments),
	})
	if err != nil {
		return Result{EmailID: emailID}, fmt.Errorf("extract: %w", err)
	}
	if out.Degraded {
		p.logger.Warn("extraction degraded to empty", "email_id", emailID, "reason", out.Reason)
	}

	res := out.Result
	NormalizeExtraction(&res)

	tx, err := p.client.Tx(ctx)
	if err != nil {
		return Result{EmailID: emailID}, fmt.Errorf("begin tx: %w", err)
	}
	written, err := p.persist(ctx, tx.Client(), em, &res)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			p.logger.Error("rollback failed", "email_id", emailID, "error", rbErr)
		}
		return Result{EmailID: emailID}, err
	}
	if err := tx.Commit(); err != nil {
		return Result{EmailID: emailID}, fmt.Errorf("commit: %w", err)
	}

	p.logger.Info("email processed", "email_id", emailID, "versions", written)
	return Result{EmailID: emailID, Processed: true, Versions: written}, nil
}

func (p *Processor) persist(ctx context.Context, client *ent.Client, em *ent.Email, res *llm.ExtractionResult) (int, error) {
	vendors := repository.NewVendorRepository(client, p.logger)
	quotes := repository.NewQuoteRepository(client, p.logger)

	vendorID, err := vendors.Upsert(ctx, res.Vendor.Name, res.Vendor.Domain)
	if err != nil {
		return 0, fmt.Errorf("upsert vendor: %w", err)
	}
	quote, err := quotes.GetOrCreateQuote(ctx, em.ThreadID, vendorID, em.ID)
	if err != nil {
		return 0, fmt.Errorf("get or create quote: %w", err)
	}

	written := 0
	for _, ver := range res.Versions {
		v, err := quotes.GetOrCreateVersion(ctx, repository.VersionFields{
			QuoteID:       quote.ID,
			SourceEmailID: em.ID,
			VersionLabel:  ver.VersionLabel,
			Currency:      ver.Currency,
			Subtotal:      ver.Subtotal,
			Tax:           ver.Tax,
			Shipping:      ver.Shipping,
			Total:         totalOrZero(ver.Total),
			ValidTill:     parseValidTill(ver.ValidTill),
			Terms:         ver.Terms,
			ExtractedJSON: versionPayload(ver),
		})
		if err != nil {
			return written, fmt.Errorf("get or create version: %w", err)
		}

		items := make([]repository.ItemFields, 0, len(ver.Items))
		for _, it := range ver.Items {
			if it.Description == "" {
				p.logger.Warn("dropping item without description", "email_id", em.ID, "quote_id", quote.ID)
				continue
			}
			items = append(items, repository.ItemFields{
				SKU:         it.SKU,
				Description: it.Description,
				Quantity:    orZero(it.Quantity),
				UnitPrice:   orZero(it.UnitPrice),
				Discount:    it.Discount,
				LineTotal:   it.LineTotal,
			})
		}
		if err := quotes.ReplaceItems(ctx, v.ID, items); err != nil {
			return written, fmt.Errorf("replace items: %w", err)
		}
		written++
	}
	return written, nil
}

// attachmentsText renders every resolvable attachment as a labeled plaintext
// excerpt. Failures are isolated per attachment.
func (p *Processor) attachmentsText(attachments []*ent.Attachment) string {
	var blocks []string
	for _, a := range attachments {
		if a.LocalPath == nil || *a.LocalPath == "" {
			continue
		}
		data, err := os.ReadFile(*a.LocalPath)
		if err != nil {
			p.logger.Warn("attachment payload unreadable", "path", *a.LocalPath, "error", err)
			continue
		}
		name := strOrEmpty(a.Filename)
		if name == "" {
			name = filepath.Base(*a.LocalPath)
		}
		text, ok := doctext.FromAttachment(name, strOrEmpty(a.MimeType), data)
		if !ok {
			p.logger.Debug("no text extracted from attachment", "filename", name)
			continue
		}
		if len(text) > attachmentExcerptLimit {
			text = text[:attachmentExcerptLimit]
		}
		blocks = append(blocks, "--- "+name+" ---\n"+text)
	}
	return strings.Join(blocks, "\n\n")
}

// selectBody prefers the plain-text body, then HTML, then empty.
func selectBody(bodies []*ent.EmailBody) string {
	for _, b := range bodies {
		if strOrEmpty(b.MimeType) == "text/plain" && b.BodyText != nil && *b.BodyText != "" {
			return *b.BodyText
		}
	}
	for _, b := range bodies {
		if strOrEmpty(b.MimeType) == "text/html" && b.BodyHTML != nil && *b.BodyHTML != "" {
			return *b.BodyHTML
		}
	}
	return ""
}

// parseValidTill treats an unparseable date as absent, not as an error.
func parseValidTill(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", *s, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}

// versionPayload keeps the full normalized extraction for audit.
func versionPayload(v llm.ExtractedVersion) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil
	}
	return m
}

func totalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
