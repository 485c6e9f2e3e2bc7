package llm

import (
	"encoding/json"
	"fmt"
)

// RepairResult patches a schema-invalid payload instead of rejecting it:
// a missing vendor defaults to {"name": null} and missing versions default to
// an empty list. Everything else present is kept as-is, favoring partial data
// over total loss. Returns the patched map and the list of patched keys.
func RepairResult(m map[string]any) (map[string]any, []string) {
	var patched []string

	vendor, ok := m["vendor"].(map[string]any)
	if !ok {
		vendor = map[string]any{}
		m["vendor"] = vendor
		patched = append(patched, "vendor")
	}
	if _, ok := vendor["name"]; !ok {
		vendor["name"] = nil
		patched = append(patched, "vendor.name")
	}
	if _, ok := m["versions"].([]any); !ok {
		m["versions"] = []any{}
		patched = append(patched, "versions")
	}
	return m, patched
}

// DecodeResult converts the validated/repaired payload into the typed
// ExtractionResult. This is the only place untyped model output crosses into
// typed code.
func DecodeResult(m map[string]any) (ExtractionResult, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return EmptyResult(), fmt.Errorf("encode payload: %w", err)
	}
	var out ExtractionResult
	if err := json.Unmarshal(b, &out); err != nil {
		return EmptyResult(), fmt.Errorf("decode payload: %w", err)
	}
	if out.Versions == nil {
		out.Versions = []ExtractedVersion{}
	}
	return out, nil
}
