package llm

import (
	"encoding/json"
	"strings"
)

// SystemPrompt is the fixed instruction sent with every extraction call.
const SystemPrompt = "You are an information extraction engine. Given a vendor quote email, " +
	"output strictly valid JSON adhering to the provided JSON Schema. Never include prose."

// BuildUserPrompt renders the message content for the model. Attachment
// excerpts are appended as a labeled block when present.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	b.WriteString("Extract ALL quote versions present in the following email.\n")
	b.WriteString("Return STRICT JSON conforming to the provided schema.\n")
	b.WriteString("If information is missing, use null rather than guessing.\n\n")
	b.WriteString("Email:\n")
	b.WriteString("Subject: ")
	b.WriteString(req.Subject)
	b.WriteString("\nFrom: ")
	b.WriteString(req.From)
	b.WriteString("\nTo: ")
	b.WriteString(strings.Join(req.To, ", "))
	b.WriteString("\nDate: ")
	b.WriteString(req.Date)
	b.WriteString("\n\nBody (plaintext):\n")
	b.WriteString(req.BodyText)
	if req.AttachmentsText != "" {
		b.WriteString("\n\nAttachments (plaintext excerpts):\n")
		b.WriteString(req.AttachmentsText)
	}
	return b.String()
}

// MustJSON renders v for embedding into a prompt.
func MustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
