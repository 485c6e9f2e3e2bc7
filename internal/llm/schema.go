package llm

// BuildQuoteJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We send it to the model as an output constraint and also use it locally to validate.
func BuildQuoteJSONSchema() map[string]any {
	item := map[string]any{
		"type":     "object",
		"required": []string{"description", "quantity", "unit_price"},
		"properties": map[string]any{
			"sku":         nullableString(),
			"description": map[string]any{"type": "string"},
			"quantity":    map[string]any{"type": "number"},
			"unit_price":  map[string]any{"type": "number"},
			"discount":    nullableNumber(),
			"line_total":  nullableNumber(),
		},
	}

	version := map[string]any{
		"type":     "object",
		"required": []string{"version_label", "currency", "items", "total"},
		"properties": map[string]any{
			"version_label": nullableString(),
			"valid_till":    map[string]any{"type": []string{"string", "null"}, "format": "date"},
			"currency":      map[string]any{"type": "string"},
			"subtotal":      nullableNumber(),
			"tax":           nullableNumber(),
			"shipping":      nullableNumber(),
			"total":         map[string]any{"type": "number"},
			"terms":         nullableString(),
			"items": map[string]any{
				"type":  "array",
				"items": item,
			},
		},
	}

	return map[string]any{
		"type":     "object",
		"required": []string{"vendor", "versions"},
		"properties": map[string]any{
			"vendor": map[string]any{
				"type":     "object",
				"required": []string{"name"},
				"properties": map[string]any{
					// name is required but nullable: the key must be present,
					// null means the model could not identify a vendor.
					"name":   nullableString(),
					"domain": nullableString(),
				},
			},
			"versions": map[string]any{
				"type":  "array",
				"items": version,
			},
		},
	}
}

func nullableNumber() map[string]any {
	return map[string]any{"type": []string{"number", "null"}}
}

func nullableString() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}
