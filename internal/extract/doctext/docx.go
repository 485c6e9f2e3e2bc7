package doctext

import (
	"bytes"
	"strings"

	docx "github.com/fumiama/go-docx"
)

// fromDocx concatenates paragraph text in document order.
func fromDocx(data []byte) (string, bool) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", false
	}

	var lines []string
	for _, it := range doc.Document.Body.Items {
		if p, ok := it.(*docx.Paragraph); ok {
			lines = append(lines, p.String())
		}
	}
	out := strings.TrimSpace(strings.Join(lines, "\n"))
	if out == "" {
		return "", false
	}
	return out, true
}
