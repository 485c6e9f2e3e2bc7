package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUserPrompt(t *testing.T) {
	got := BuildUserPrompt(ExtractRequest{
		Subject:  "Quote for services",
		From:     "sales@acme.com",
		To:       []string{"a@example.com", "b@example.com"},
		Date:     "2026-08-01T09:00:00Z",
		BodyText: "pricing below",
	})

	assert.Contains(t, got, "Subject: Quote for services")
	assert.Contains(t, got, "From: sales@acme.com")
	assert.Contains(t, got, "To: a@example.com, b@example.com")
	assert.Contains(t, got, "pricing below")
	assert.NotContains(t, got, "Attachments", "no attachment block without attachment text")
}

func TestBuildUserPromptWithAttachments(t *testing.T) {
	got := BuildUserPrompt(ExtractRequest{
		Subject:         "Quote",
		BodyText:        "see attached",
		AttachmentsText: "--- quote.xlsx ---\nWidget\t2\t10",
	})

	assert.Contains(t, got, "Attachments (plaintext excerpts):")
	assert.Contains(t, got, "--- quote.xlsx ---")
}
