package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Akash-sopho/email-extractor-agent/internal/llm"
)

// Extract implements llm.QuoteExtractor. It tries the Responses API first and
// falls back to chat/completions; only the final textual payload matters.
// Every transport, parse, or schema failure degrades to the canonical empty
// result instead of returning an error, so the pipeline stays live.
func (c *Client) Extract(ctx context.Context, req llm.ExtractRequest) (llm.Outcome, error) {
	rid := uuid.New().String()
	start := time.Now()

	if c.cfg.APIKey == "" {
		c.log.Debug("llm.extract.no_credential", "req_id", rid)
		return degraded(nil, "no-credential"), nil
	}

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"body_len", len(req.BodyText),
		"attachments_len", len(req.AttachmentsText),
	)

	schema := llm.BuildQuoteJSONSchema()
	user := llm.BuildUserPrompt(req)

	content, err := c.callResponses(ctx, user, schema)
	if err != nil {
		c.log.Warn("llm.extract.responses_fallback", "req_id", rid, "error", err)
		content, err = c.callChatCompletions(ctx, user, schema)
	}
	if err != nil {
		c.log.Error("llm.extract.call_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return degraded(nil, "call-failed"), nil
	}

	content = strings.TrimSpace(stripCodeFence(content))
	if content == "" {
		c.log.Warn("llm.extract.empty_response", "req_id", rid)
		return degraded(nil, "empty-response"), nil
	}
	raw := []byte(content)

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.log.Warn("llm.extract.parse_failed", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return degraded(raw, "parse-failed"), nil
	}

	if err := llm.ValidateAgainstSchema(schema, any(payload)); err != nil {
		var patched []string
		payload, patched = llm.RepairResult(payload)
		c.log.Warn("llm.extract.schema_repair",
			"req_id", rid, "error", err, "patched", patched,
		)
	}

	result, err := llm.DecodeResult(payload)
	if err != nil {
		c.log.Warn("llm.extract.decode_failed", "req_id", rid, "error", err)
		return degraded(raw, "decode-failed"), nil
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"vendor", strOrEmpty(result.Vendor.Name),
		"versions", len(result.Versions),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return llm.Outcome{Result: result, RawJSON: raw}, nil
}

func degraded(raw []byte, reason string) llm.Outcome {
	return llm.Outcome{
		Result:   llm.EmptyResult(),
		RawJSON:  raw,
		Degraded: true,
		Reason:   reason,
	}
}

// callResponses uses the Responses API. The schema rides along inside the
// user turn; strict structured-output enforcement is left to validation.
func (c *Client) callResponses(ctx context.Context, user string, schema map[string]any) (string, error) {
	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"input": []map[string]any{
			{"role": "system", "content": llm.SystemPrompt},
			{"role": "user", "content": user + "\n\nJSON Schema:\n" + llm.MustJSON(schema)},
		},
	}

	raw, err := c.post(ctx, strings.TrimRight(c.cfg.BaseURL, "/")+"/responses", body)
	if err != nil {
		return "", err
	}

	var resp struct {
		Output []struct {
			Type    string `json:"type"`
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode responses payload: %w", err)
	}
	var b strings.Builder
	for _, out := range resp.Output {
		for _, part := range out.Content {
			if part.Type == "output_text" {
				b.WriteString(part.Text)
			}
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no output text in responses payload")
	}
	return b.String(), nil
}

func (c *Client) callChatCompletions(ctx context.Context, user string, schema map[string]any) (string, error) {
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": llm.SystemPrompt},
			{"role": "user", "content": user + "\n\nJSON Schema:\n" + llm.MustJSON(schema)},
		},
	}

	raw, err := c.post(ctx, strings.TrimRight(c.cfg.BaseURL, "/")+"/chat/completions", body)
	if err != nil {
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode chat payload: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in chat payload")
	}
	return cc.Choices[0].Message.Content, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

// stripCodeFence removes a surrounding markdown code block, which some models
// add despite instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
