package llm

import (
	"context"

	"github.com/shopspring/decimal"
)

// ExtractedVendor identifies the vendor named in the email. A nil Name means
// the model could not determine one; it never means empty string.
type ExtractedVendor struct {
	Name   *string `json:"name"`
	Domain *string `json:"domain,omitempty"`
}

// ExtractedItem is one quoted line. Quantity and unit price are required by
// the schema but a missing value is still tolerated downstream: normalization
// defaults them to zero rather than rejecting the item.
type ExtractedItem struct {
	SKU         *string          `json:"sku,omitempty"`
	Description string           `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Discount    *decimal.Decimal `json:"discount,omitempty"`
	LineTotal   *decimal.Decimal `json:"line_total,omitempty"`
}

// ExtractedVersion is one quote snapshot found in a single email.
type ExtractedVersion struct {
	VersionLabel *string          `json:"version_label"`
	Currency     string           `json:"currency"`
	Items        []ExtractedItem  `json:"items"`
	Subtotal     *decimal.Decimal `json:"subtotal,omitempty"`
	Tax          *decimal.Decimal `json:"tax,omitempty"`
	Shipping     *decimal.Decimal `json:"shipping,omitempty"`
	Total        *decimal.Decimal `json:"total"`
	ValidTill    *string          `json:"valid_till,omitempty"` // YYYY-MM-DD
	Terms        *string          `json:"terms,omitempty"`
}

// ExtractionResult is the strongly-typed shape we want from the LLM. Untyped
// model output is validated and repaired before it is converted to this type;
// nothing downstream sees raw JSON.
type ExtractionResult struct {
	Vendor   ExtractedVendor    `json:"vendor"`
	Versions []ExtractedVersion `json:"versions"`
}

// EmptyResult returns the canonical empty-but-schema-valid extraction. It is
// what the adapter produces when no credential is configured or when the
// model call degrades.
func EmptyResult() ExtractionResult {
	return ExtractionResult{
		Vendor:   ExtractedVendor{Name: nil},
		Versions: []ExtractedVersion{},
	}
}

// ExtractRequest carries the message content handed to the model.
type ExtractRequest struct {
	Subject         string
	From            string
	To              []string
	Date            string
	BodyText        string
	AttachmentsText string
}

// Outcome is the adapter's per-call result. Degraded marks calls that were
// substituted with EmptyResult; Reason says why. The adapter never returns a
// transport or parse failure as an error.
type Outcome struct {
	Result   ExtractionResult
	RawJSON  []byte
	Degraded bool
	Reason   string
}

// QuoteExtractor is the interface the pipeline depends on.
type QuoteExtractor interface {
	Extract(ctx context.Context, req ExtractRequest) (Outcome, error)
}
