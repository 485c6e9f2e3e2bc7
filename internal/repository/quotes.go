package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Akash-sopho/email-extractor-agent/gen/ent"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/email"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quote"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteitem"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteversion"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/vendor"
)

// VersionFields carries everything stored on one quote version. All fields
// except the natural key (QuoteID, SourceEmailID) are overwritten in place on
// reprocessing.
type VersionFields struct {
	QuoteID       uuid.UUID
	SourceEmailID uuid.UUID
	VersionLabel  *string
	Currency      string
	Subtotal      *decimal.Decimal
	Tax           *decimal.Decimal
	Shipping      *decimal.Decimal
	Total         decimal.Decimal
	ValidTill     *time.Time
	Terms         *string
	ExtractedJSON map[string]any
}

// ItemFields is one line item to store under a version.
type ItemFields struct {
	SKU         *string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Discount    *decimal.Decimal
	LineTotal   *decimal.Decimal
}

// QuoteFilter narrows ListQuotes. Date bounds apply to the sent time of the
// emails that produced the quote's versions.
type QuoteFilter struct {
	VendorName *string
	DateFrom   *time.Time
	DateTo     *time.Time
}

type QuoteRepository interface {
	GetOrCreateQuote(ctx context.Context, threadID, vendorID, anchorEmailID uuid.UUID) (*ent.Quote, error)
	GetOrCreateVersion(ctx context.Context, fields VersionFields) (*ent.QuoteVersion, error)
	ReplaceItems(ctx context.Context, versionID uuid.UUID, items []ItemFields) error
	GetQuote(ctx context.Context, id uuid.UUID) (*ent.Quote, error)
	ListQuotes(ctx context.Context, filter QuoteFilter) ([]*ent.Quote, error)
	DeleteQuote(ctx context.Context, id uuid.UUID) error
}

type quoteRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewQuoteRepository(client *ent.Client, logger *slog.Logger) QuoteRepository {
	return &quoteRepository{
		client: client,
		logger: logger,
	}
}

// GetOrCreateQuote looks up by the (thread, vendor) natural key. The anchor
// email is set on creation, backfilled when unset, and otherwise immutable.
func (r *quoteRepository) GetOrCreateQuote(ctx context.Context, threadID, vendorID, anchorEmailID uuid.UUID) (*ent.Quote, error) {
	q, err := r.client.Quote.Query().
		Where(quote.ThreadID(threadID), quote.VendorID(vendorID)).
		Only(ctx)
	if err == nil {
		if q.AnchorEmailID == nil && anchorEmailID != uuid.Nil {
			return r.client.Quote.UpdateOne(q).SetAnchorEmailID(anchorEmailID).Save(ctx)
		}
		return q, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	builder := r.client.Quote.Create().
		SetThreadID(threadID).
		SetVendorID(vendorID)
	if anchorEmailID != uuid.Nil {
		builder = builder.SetAnchorEmailID(anchorEmailID)
	}
	q, err = builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create quote", "thread_id", threadID, "vendor_id", vendorID, "error", err)
		return nil, err
	}
	r.logger.Info("quote created", "quote_id", q.ID, "thread_id", threadID, "vendor_id", vendorID)
	return q, nil
}

// GetOrCreateVersion enforces the (quote, source email) uniqueness invariant:
// when a row already exists every mutable field is overwritten with the new
// extraction, so running once or N times converges on the same state.
func (r *quoteRepository) GetOrCreateVersion(ctx context.Context, f VersionFields) (*ent.QuoteVersion, error) {
	v, err := r.client.QuoteVersion.Query().
		Where(quoteversion.QuoteID(f.QuoteID), quoteversion.SourceEmailID(f.SourceEmailID)).
		Only(ctx)
	if err == nil {
		upd := r.client.QuoteVersion.UpdateOne(v).
			SetCurrency(f.Currency).
			SetTotal(f.Total)
		if f.VersionLabel != nil {
			upd = upd.SetVersionLabel(*f.VersionLabel)
		} else {
			upd = upd.ClearVersionLabel()
		}
		if f.Subtotal != nil {
			upd = upd.SetSubtotal(*f.Subtotal)
		} else {
			upd = upd.ClearSubtotal()
		}
		if f.Tax != nil {
			upd = upd.SetTax(*f.Tax)
		} else {
			upd = upd.ClearTax()
		}
		if f.Shipping != nil {
			upd = upd.SetShipping(*f.Shipping)
		} else {
			upd = upd.ClearShipping()
		}
		if f.ValidTill != nil {
			upd = upd.SetValidTill(*f.ValidTill)
		} else {
			upd = upd.ClearValidTill()
		}
		if f.Terms != nil {
			upd = upd.SetTerms(*f.Terms)
		} else {
			upd = upd.ClearTerms()
		}
		if f.ExtractedJSON != nil {
			upd = upd.SetExtractedJSON(f.ExtractedJSON)
		} else {
			upd = upd.ClearExtractedJSON()
		}
		v, err = upd.Save(ctx)
		if err != nil {
			r.logger.Error("failed to update quote version", "version_id", v.ID, "error", err)
			return nil, err
		}
		r.logger.Debug("quote version updated in place", "version_id", v.ID, "quote_id", f.QuoteID)
		return v, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	builder := r.client.QuoteVersion.Create().
		SetQuoteID(f.QuoteID).
		SetSourceEmailID(f.SourceEmailID).
		SetNillableVersionLabel(f.VersionLabel).
		SetCurrency(f.Currency).
		SetNillableSubtotal(f.Subtotal).
		SetNillableTax(f.Tax).
		SetNillableShipping(f.Shipping).
		SetTotal(f.Total).
		SetNillableValidTill(f.ValidTill).
		SetNillableTerms(f.Terms)
	if f.ExtractedJSON != nil {
		builder = builder.SetExtractedJSON(f.ExtractedJSON)
	}
	v, err = builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create quote version", "quote_id", f.QuoteID, "error", err)
		return nil, err
	}
	r.logger.Info("quote version created", "version_id", v.ID, "quote_id", f.QuoteID, "source_email_id", f.SourceEmailID)
	return v, nil
}

// ReplaceItems deletes all existing items for the version and inserts the
// new set, so the stored items always mirror the latest extraction.
func (r *quoteRepository) ReplaceItems(ctx context.Context, versionID uuid.UUID, items []ItemFields) error {
	if _, err := r.client.QuoteItem.Delete().
		Where(quoteitem.VersionID(versionID)).
		Exec(ctx); err != nil {
		r.logger.Error("failed to delete quote items", "version_id", versionID, "error", err)
		return err
	}
	if len(items) == 0 {
		return nil
	}

	builders := make([]*ent.QuoteItemCreate, 0, len(items))
	for _, it := range items {
		builders = append(builders, r.client.QuoteItem.Create().
			SetVersionID(versionID).
			SetNillableSku(it.SKU).
			SetDescription(it.Description).
			SetQuantity(it.Quantity).
			SetUnitPrice(it.UnitPrice).
			SetNillableDiscount(it.Discount).
			SetNillableLineTotal(it.LineTotal))
	}
	if _, err := r.client.QuoteItem.CreateBulk(builders...).Save(ctx); err != nil {
		r.logger.Error("failed to insert quote items", "version_id", versionID, "count", len(items), "error", err)
		return err
	}
	return nil
}

func (r *quoteRepository) GetQuote(ctx context.Context, id uuid.UUID) (*ent.Quote, error) {
	return r.client.Quote.Query().
		Where(quote.ID(id)).
		WithVendor().
		WithVersions(func(q *ent.QuoteVersionQuery) {
			q.WithItems()
			q.Order(ent.Asc(quoteversion.FieldCreatedAt))
		}).
		Only(ctx)
}

func (r *quoteRepository) ListQuotes(ctx context.Context, filter QuoteFilter) ([]*ent.Quote, error) {
	q := r.client.Quote.Query()
	if filter.VendorName != nil && *filter.VendorName != "" {
		q = q.Where(quote.HasVendorWith(vendor.NameContainsFold(*filter.VendorName)))
	}
	if filter.DateFrom != nil {
		q = q.Where(quote.HasVersionsWith(
			quoteversion.HasSourceEmailWith(email.SentAtGTE(*filter.DateFrom)),
		))
	}
	if filter.DateTo != nil {
		q = q.Where(quote.HasVersionsWith(
			quoteversion.HasSourceEmailWith(email.SentAtLTE(*filter.DateTo)),
		))
	}
	quotes, err := q.
		WithVendor().
		WithVersions(func(vq *ent.QuoteVersionQuery) {
			vq.WithItems()
			vq.Order(ent.Asc(quoteversion.FieldCreatedAt))
		}).
		Order(quote.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list quotes", "error", err)
		return nil, err
	}
	return quotes, nil
}

// DeleteQuote removes the quote and, explicitly rather than through ORM
// cascade behavior, its versions and their items.
func (r *quoteRepository) DeleteQuote(ctx context.Context, id uuid.UUID) error {
	if _, err := r.client.QuoteItem.Delete().
		Where(quoteitem.HasVersionWith(quoteversion.QuoteID(id))).
		Exec(ctx); err != nil {
		return err
	}
	if _, err := r.client.QuoteVersion.Delete().
		Where(quoteversion.QuoteID(id)).
		Exec(ctx); err != nil {
		return err
	}
	if err := r.client.Quote.DeleteOneID(id).Exec(ctx); err != nil {
		return err
	}
	r.logger.Info("quote deleted", "quote_id", id)
	return nil
}
