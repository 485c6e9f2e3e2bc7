package doctext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildXLSX(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, val))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestFromAttachmentPlainText(t *testing.T) {
	text, ok := FromAttachment("quote.txt", "text/plain", []byte("Quotation for 10 units at $5 each"))
	assert.True(t, ok)
	assert.Equal(t, "Quotation for 10 units at $5 each", text)
}

func TestFromAttachmentUnknownExtensionFallsBackToText(t *testing.T) {
	text, ok := FromAttachment("notes.md", "text/markdown", []byte("# Pricing\n- Widget: $10"))
	assert.True(t, ok)
	assert.Contains(t, text, "Widget")
}

func TestFromAttachmentInvalidUTF8IsAbsent(t *testing.T) {
	_, ok := FromAttachment("blob.bin", "application/octet-stream", []byte{0xff, 0xfe, 0x00, 0x80})
	assert.False(t, ok)
}

func TestFromAttachmentEmptyPayloadIsAbsent(t *testing.T) {
	_, ok := FromAttachment("empty.txt", "text/plain", nil)
	assert.False(t, ok)
}

func TestFromAttachmentXLSX(t *testing.T) {
	data := buildXLSX(t, [][]any{
		{"Item", "Qty", "Price"},
		{"Widget", 2, 10.5},
		{},
	})

	text, ok := FromAttachment("quote.xlsx", mimeXlsx, data)
	require.True(t, ok)
	assert.Contains(t, text, "Item\tQty\tPrice")
	assert.Contains(t, text, "Widget\t2\t10.5")
	// Empty rows are dropped, not rendered as blank lines.
	assert.NotContains(t, text, "\n\n")
}

func TestFromAttachmentXLSXByMimeTypeOnly(t *testing.T) {
	data := buildXLSX(t, [][]any{{"A", "B"}})

	text, ok := FromAttachment("attachment", mimeXlsx, data)
	require.True(t, ok)
	assert.Equal(t, "A\tB", text)
}

func TestFromAttachmentCorruptXLSXIsAbsent(t *testing.T) {
	_, ok := FromAttachment("quote.xlsx", mimeXlsx, []byte("PK\x03\x04 not really a zip"))
	assert.False(t, ok)
}

func TestFromAttachmentCorruptPDFIsAbsent(t *testing.T) {
	_, ok := FromAttachment("quote.pdf", mimePDF, []byte("%PDF-1.7 truncated"))
	assert.False(t, ok)
}

func TestFromAttachmentCorruptDocxIsAbsent(t *testing.T) {
	_, ok := FromAttachment("quote.docx", mimeDocx, []byte("not a docx"))
	assert.False(t, ok)
}
