package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairResult(t *testing.T) {
	tests := []struct {
		name        string
		in          map[string]any
		wantPatched []string
	}{
		{
			name:        "empty payload gets both defaults",
			in:          map[string]any{},
			wantPatched: []string{"vendor", "vendor.name", "versions"},
		},
		{
			name:        "vendor without name",
			in:          map[string]any{"vendor": map[string]any{"domain": "acme.com"}, "versions": []any{}},
			wantPatched: []string{"vendor.name"},
		},
		{
			name:        "versions of the wrong type",
			in:          map[string]any{"vendor": map[string]any{"name": "ACME"}, "versions": "oops"},
			wantPatched: []string{"versions"},
		},
		{
			name:        "already complete",
			in:          map[string]any{"vendor": map[string]any{"name": "ACME"}, "versions": []any{}},
			wantPatched: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, patched := RepairResult(tt.in)
			assert.Equal(t, tt.wantPatched, patched)

			// Patched output always validates.
			assert.NoError(t, ValidateAgainstSchema(BuildQuoteJSONSchema(), out))
		})
	}
}

func TestRepairResultKeepsExistingData(t *testing.T) {
	in := unmarshalPayload(t, `{
		"vendor": {"domain": "acme.com"},
		"versions": [{
			"version_label": "v2",
			"currency": "EUR",
			"items": [{"description": "Thing", "quantity": 1, "unit_price": 3}],
			"total": 3
		}]
	}`)

	out, patched := RepairResult(in)
	assert.Equal(t, []string{"vendor.name"}, patched)

	vendor := out["vendor"].(map[string]any)
	assert.Equal(t, "acme.com", vendor["domain"])
	assert.Nil(t, vendor["name"])
	assert.Len(t, out["versions"], 1)
}

func TestDecodeResult(t *testing.T) {
	m := unmarshalPayload(t, `{
		"vendor": {"name": "ACME Inc", "domain": "acme.com"},
		"versions": [{
			"version_label": "v1",
			"currency": "USD",
			"items": [{"description": "Service A", "quantity": 2, "unit_price": 10.5, "discount": 1}],
			"total": 20,
			"valid_till": "2026-09-30"
		}]
	}`)

	res, err := DecodeResult(m)
	require.NoError(t, err)

	require.NotNil(t, res.Vendor.Name)
	assert.Equal(t, "ACME Inc", *res.Vendor.Name)
	require.Len(t, res.Versions, 1)

	v := res.Versions[0]
	require.NotNil(t, v.VersionLabel)
	assert.Equal(t, "v1", *v.VersionLabel)
	assert.Equal(t, "USD", v.Currency)
	require.NotNil(t, v.Total)
	assert.Equal(t, "20", v.Total.String())
	require.NotNil(t, v.ValidTill)
	assert.Equal(t, "2026-09-30", *v.ValidTill)

	require.Len(t, v.Items, 1)
	it := v.Items[0]
	assert.Equal(t, "Service A", it.Description)
	assert.Equal(t, "10.5", it.UnitPrice.String())
	assert.Equal(t, "1", it.Discount.String())
	assert.Nil(t, it.LineTotal)
}

func TestDecodeResultNilVersionsBecomesEmptySlice(t *testing.T) {
	res, err := DecodeResult(map[string]any{"vendor": map[string]any{"name": nil}})
	require.NoError(t, err)
	assert.NotNil(t, res.Versions)
	assert.Empty(t, res.Versions)
}
