package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unmarshalPayload(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestValidateAgainstSchema(t *testing.T) {
	schema := BuildQuoteJSONSchema()

	tests := []struct {
		name    string
		payload string
		valid   bool
	}{
		{
			name:    "canonical empty result",
			payload: `{"vendor":{"name":null},"versions":[]}`,
			valid:   true,
		},
		{
			name: "full quote",
			payload: `{
				"vendor": {"name": "ACME Inc", "domain": "acme.com"},
				"versions": [{
					"version_label": "v1",
					"currency": "USD",
					"items": [{"description": "Service A", "quantity": 2, "unit_price": 10}],
					"total": 20
				}]
			}`,
			valid: true,
		},
		{
			name:    "null version_label is allowed",
			payload: `{"vendor":{"name":"ACME"},"versions":[{"version_label":null,"currency":"USD","items":[],"total":0}]}`,
			valid:   true,
		},
		{
			name:    "missing vendor",
			payload: `{"versions":[]}`,
			valid:   false,
		},
		{
			name:    "missing versions",
			payload: `{"vendor":{"name":"ACME"}}`,
			valid:   false,
		},
		{
			name:    "version missing total",
			payload: `{"vendor":{"name":"ACME"},"versions":[{"version_label":"v1","currency":"USD","items":[]}]}`,
			valid:   false,
		},
		{
			name:    "item missing description",
			payload: `{"vendor":{"name":"ACME"},"versions":[{"version_label":"v1","currency":"USD","items":[{"quantity":1,"unit_price":2}],"total":2}]}`,
			valid:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAgainstSchema(schema, unmarshalPayload(t, tt.payload))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
