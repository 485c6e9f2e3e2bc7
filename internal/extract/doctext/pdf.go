package doctext

import (
	"strings"

	"github.com/gen2brain/go-fitz"
)

// fromPDF extracts the embedded text layer. Scanned documents carry no text
// layer and come back absent; there is no OCR fallback.
func fromPDF(data []byte) (string, bool) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", false
	}
	defer doc.Close()

	var b strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", false
	}
	return out, true
}
