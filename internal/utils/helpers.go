package utils

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Akash-sopho/email-extractor-agent/gen/ent"
	quotespb "github.com/Akash-sopho/email-extractor-agent/gen/proto/quotes/v1"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func decStr(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func decStrOrEmpty(p *decimal.Decimal) string {
	if p == nil {
		return ""
	}
	return p.StringFixed(2)
}

func ToPBVendor(v *ent.Vendor) *quotespb.Vendor {
	return &quotespb.Vendor{
		Id:     v.ID.String(),
		Name:   strOrEmpty(v.Name),
		Domain: strOrEmpty(v.Domain),
	}
}

func ToPBItem(it *ent.QuoteItem) *quotespb.QuoteItem {
	return &quotespb.QuoteItem{
		Id:          it.ID.String(),
		Sku:         strOrEmpty(it.Sku),
		Description: it.Description,
		Quantity:    decStr(it.Quantity),
		UnitPrice:   decStr(it.UnitPrice),
		Discount:    decStrOrEmpty(it.Discount),
		LineTotal:   decStrOrEmpty(it.LineTotal),
	}
}

func ToPBVersion(v *ent.QuoteVersion) *quotespb.QuoteVersion {
	out := &quotespb.QuoteVersion{
		Id:           v.ID.String(),
		VersionLabel: strOrEmpty(v.VersionLabel),
		Currency:     v.Currency,
		Subtotal:     decStrOrEmpty(v.Subtotal),
		Tax:          decStrOrEmpty(v.Tax),
		Shipping:     decStrOrEmpty(v.Shipping),
		Total:        decStr(v.Total),
		Terms:        strOrEmpty(v.Terms),
		CreatedAt:    v.CreatedAt.UTC().Format(time.RFC3339),
	}
	if v.ValidTill != nil {
		out.ValidTill = v.ValidTill.Format("2006-01-02")
	}
	for _, it := range v.Edges.Items {
		out.Items = append(out.Items, ToPBItem(it))
	}
	return out
}

// ToPBQuote converts a quote with its loaded vendor and version edges.
// With latestOnly set, only the newest version (by creation time) is kept.
func ToPBQuote(q *ent.Quote, latestOnly bool) *quotespb.Quote {
	out := &quotespb.Quote{
		Id:        q.ID.String(),
		ThreadId:  q.ThreadID.String(),
		Status:    q.Status,
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339),
	}
	if q.Edges.Vendor != nil {
		out.Vendor = ToPBVendor(q.Edges.Vendor)
	}
	versions := q.Edges.Versions
	if latestOnly && len(versions) > 0 {
		versions = versions[len(versions)-1:]
	}
	for _, v := range versions {
		out.Versions = append(out.Versions, ToPBVersion(v))
	}
	return out
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
