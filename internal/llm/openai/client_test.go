package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash-sopho/email-extractor-agent/internal/llm"
)

func respondJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

func responsesPayload(text string) map[string]any {
	return map[string]any{
		"output": []map[string]any{
			{
				"type": "message",
				"content": []map[string]any{
					{"type": "output_text", "text": text},
				},
			},
		},
	}
}

func chatPayload(text string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": text}},
		},
	}
}

func newTestClient(t *testing.T, handler http.Handler, apiKey string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: apiKey, BaseURL: srv.URL, Model: "test-model"}, nil)
}

func TestExtractNoCredentialDegradesToEmpty(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without a credential")
	}), "")

	out, err := c.Extract(context.Background(), llm.ExtractRequest{Subject: "Quote"})
	require.NoError(t, err)
	assert.True(t, out.Degraded)
	assert.Equal(t, "no-credential", out.Reason)
	assert.Equal(t, llm.EmptyResult(), out.Result)
}

func TestExtractViaResponsesAPI(t *testing.T) {
	payload := `{"vendor":{"name":"ACME Inc","domain":"acme.com"},"versions":[{"version_label":"v1","currency":"USD","items":[{"description":"Service A","quantity":2,"unit_price":10}],"total":20}]}`

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/responses", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		respondJSON(t, w, responsesPayload(payload))
	}), "test-key")

	out, err := c.Extract(context.Background(), llm.ExtractRequest{Subject: "Quote for services"})
	require.NoError(t, err)
	assert.False(t, out.Degraded)

	require.NotNil(t, out.Result.Vendor.Name)
	assert.Equal(t, "ACME Inc", *out.Result.Vendor.Name)
	require.Len(t, out.Result.Versions, 1)
	assert.Len(t, out.Result.Versions[0].Items, 1)
	assert.JSONEq(t, payload, string(out.RawJSON))
}

func TestExtractFallsBackToChatCompletions(t *testing.T) {
	payload := `{"vendor":{"name":"ACME"},"versions":[]}`

	var responsesHit, chatHit bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/responses":
			responsesHit = true
			http.Error(w, `{"error":{"message":"not supported"}}`, http.StatusNotFound)
		case "/chat/completions":
			chatHit = true
			respondJSON(t, w, chatPayload(payload))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}), "test-key")

	out, err := c.Extract(context.Background(), llm.ExtractRequest{Subject: "Quote"})
	require.NoError(t, err)
	assert.True(t, responsesHit)
	assert.True(t, chatHit)
	assert.False(t, out.Degraded)
	require.NotNil(t, out.Result.Vendor.Name)
	assert.Equal(t, "ACME", *out.Result.Vendor.Name)
}

func TestExtractBothEndpointsFailing(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}), "test-key")

	out, err := c.Extract(context.Background(), llm.ExtractRequest{})
	require.NoError(t, err)
	assert.True(t, out.Degraded)
	assert.Equal(t, "call-failed", out.Reason)
	assert.Equal(t, llm.EmptyResult(), out.Result)
}

func TestExtractMalformedJSONDegrades(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, responsesPayload("this is not json"))
	}), "test-key")

	out, err := c.Extract(context.Background(), llm.ExtractRequest{})
	require.NoError(t, err)
	assert.True(t, out.Degraded)
	assert.Equal(t, "parse-failed", out.Reason)
	assert.Equal(t, llm.EmptyResult(), out.Result)
}

func TestExtractRepairsSchemaInvalidPayload(t *testing.T) {
	// Missing versions key: patched to [] instead of rejected.
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, responsesPayload(`{"vendor":{"name":"ACME"}}`))
	}), "test-key")

	out, err := c.Extract(context.Background(), llm.ExtractRequest{})
	require.NoError(t, err)
	assert.False(t, out.Degraded)
	require.NotNil(t, out.Result.Vendor.Name)
	assert.Equal(t, "ACME", *out.Result.Vendor.Name)
	assert.Empty(t, out.Result.Versions)
}

func TestExtractStripsCodeFence(t *testing.T) {
	fenced := "```json\n{\"vendor\":{\"name\":\"ACME\"},\"versions\":[]}\n```"
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, responsesPayload(fenced))
	}), "test-key")

	out, err := c.Extract(context.Background(), llm.ExtractRequest{})
	require.NoError(t, err)
	assert.False(t, out.Degraded)
	require.NotNil(t, out.Result.Vendor.Name)
	assert.Equal(t, "ACME", *out.Result.Vendor.Name)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
}
