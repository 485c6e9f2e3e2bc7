// Package doctext converts attachment payloads into plain text for prompting.
// Each format branch is isolated: a decode failure yields "absent" for that
// attachment only and never aborts the caller.
package doctext

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const (
	mimePDF  = "application/pdf"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// FromAttachment converts an attachment payload to plain text, dispatching on
// the filename extension with the declared MIME type as a fallback hint.
// ok is false when the format has no extractable text or decoding fails.
func FromAttachment(filename, mimeType string, data []byte) (string, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return fromPDF(data)
	case ".docx":
		return fromDocx(data)
	case ".xlsx", ".xlsm":
		return fromSpreadsheet(data)
	case ".txt":
		return fromText(data)
	}

	switch {
	case mimeType == mimePDF:
		return fromPDF(data)
	case mimeType == mimeDocx:
		return fromDocx(data)
	case mimeType == mimeXlsx:
		return fromSpreadsheet(data)
	default:
		// plain text and unknown formats: best-effort UTF-8 decode
		return fromText(data)
	}
}

func fromText(data []byte) (string, bool) {
	if len(data) == 0 || !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}
