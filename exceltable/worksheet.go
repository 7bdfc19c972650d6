package exceltable

import (
	"github.com/domonda/go-report"
)

// NewWorksheet returns a data sheet with headers as first row
// followed by rows.
//
// Every header cell gets StyleHeader, data rows are not styled.
// If columnWidths are passed they are used as is,
// else the widths are calculated with report.AutoColumnWidths
// over the header and all rows.
func NewWorksheet(name string, headers []string, rows [][]report.Value, columnWidths ...float64) *Sheet {
	grid := make([][]report.Value, 0, len(rows)+1)
	header := make([]report.Value, len(headers))
	for i, h := range headers {
		header[i] = report.Text(h)
	}
	grid = append(grid, header)
	grid = append(grid, rows...)

	sheet := NewSheet(name, grid)
	for col := range sheet.rows[0] {
		sheet.rows[0][col].Style = StyleHeader
	}
	if len(columnWidths) > 0 {
		sheet.SetColumnWidths(columnWidths...)
	} else {
		sheet.SetColumnWidths(report.AutoColumnWidths(grid)...)
	}
	return sheet
}

// NewTableWorksheet returns a data sheet for table
// using report.TableData.NormalizedRows,
// so every row has exactly one cell per header.
func NewTableWorksheet(name string, table *report.TableData) *Sheet {
	return NewWorksheet(name, table.Headers, table.NormalizedRows())
}
