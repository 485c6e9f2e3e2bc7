package doctext

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"
)

// fromSpreadsheet renders every sheet row by row: non-empty cell values
// joined by tabs, one line per row, sheets in workbook order.
func fromSpreadsheet(data []byte) (string, bool) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", false
	}
	defer func() { _ = f.Close() }()

	var lines []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		for _, row := range rows {
			cells := make([]string, 0, len(row))
			for _, cell := range row {
				if cell != "" {
					cells = append(cells, cell)
				}
			}
			if len(cells) > 0 {
				lines = append(lines, strings.Join(cells, "\t"))
			}
		}
	}
	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}
