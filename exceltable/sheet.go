package exceltable

import (
	"errors"
	"fmt"

	"github.com/domonda/go-report"
)

// Format is the display format of a cell.
type Format int

const (
	NumFmtNone Format = iota
	NumFmtCurrency
	NumFmtPercentage
	NumFmtDate
	NumFmtNumber
)

func (f Format) String() string {
	switch f {
	case NumFmtNone:
		return "None"
	case NumFmtCurrency:
		return "Currency"
	case NumFmtPercentage:
		return "Percentage"
	case NumFmtDate:
		return "Date"
	case NumFmtNumber:
		return "Number"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Style is the visual emphasis of a cell.
type Style int

const (
	StyleNone Style = iota
	// StyleHeader is the bold white on dark blue header row of data sheets
	StyleHeader
	// StyleHeading is the bold, larger, gray filled section heading of the summary sheet
	StyleHeading
	// StyleLabel is the bold label column of the summary sheet
	StyleLabel
)

func (s Style) String() string {
	switch s {
	case StyleNone:
		return "None"
	case StyleHeader:
		return "Header"
	case StyleHeading:
		return "Heading"
	case StyleLabel:
		return "Label"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Cell is a value together with the display instructions
// that will be applied when the workbook is written.
type Cell struct {
	Value  report.Value
	Format Format
	Style  Style
}

// Sheet accumulates the cells and layout of one worksheet.
// Nothing is written to a spreadsheet document until
// the Workbook containing the sheet is serialized,
// so applying the same instructions again
// always leads to the same result.
type Sheet struct {
	name         string
	rows         [][]Cell
	colWidths    []float64
	freezeHeader bool
}

// NewSheet returns a Sheet with the cells of grid.
// The grid is copied, rows may have different lengths.
func NewSheet(name string, grid [][]report.Value) *Sheet {
	s := &Sheet{
		name: name,
		rows: make([][]Cell, len(grid)),
	}
	for r, row := range grid {
		s.rows[r] = make([]Cell, len(row))
		for c, v := range row {
			s.rows[r][c].Value = v
		}
	}
	return s
}

// Name returns the sheet name as passed to NewSheet
// or as assigned when the sheet was added to a Workbook.
func (s *Sheet) Name() string { return s.name }

// NumRows returns the number of rows including any header row.
func (s *Sheet) NumRows() int { return len(s.rows) }

// NumCols returns the length of the longest row.
func (s *Sheet) NumCols() int {
	n := 0
	for _, row := range s.rows {
		n = max(n, len(row))
	}
	return n
}

// LastRow returns the zero based index of the last row or -1.
func (s *Sheet) LastRow() int { return len(s.rows) - 1 }

// Cell returns the cell at zero based row and col,
// or an empty Cell if there is none.
func (s *Sheet) Cell(row, col int) Cell {
	if row < 0 || col < 0 || row >= len(s.rows) || col >= len(s.rows[row]) {
		return Cell{}
	}
	return s.rows[row][col]
}

// CellAt is like Cell but takes an A1 style address.
func (s *Sheet) CellAt(address string) (Cell, error) {
	row, col, err := report.DecodeCell(address)
	if err != nil {
		return Cell{}, err
	}
	return s.Cell(row, col), nil
}

// Row returns the cells of a row.
// The returned slice must not be modified.
func (s *Sheet) Row(row int) []Cell {
	if row < 0 || row >= len(s.rows) {
		return nil
	}
	return s.rows[row]
}

// Values returns the values of all cells as grid.
func (s *Sheet) Values() [][]report.Value {
	grid := make([][]report.Value, len(s.rows))
	for r, row := range s.rows {
		grid[r] = make([]report.Value, len(row))
		for c := range row {
			grid[r][c] = row[c].Value
		}
	}
	return grid
}

// Ref returns the range reference covering all cells
// or an empty string for a sheet without cells.
func (s *Sheet) Ref() string {
	numCols := s.NumCols()
	if len(s.rows) == 0 || numCols == 0 {
		return ""
	}
	return report.CellRange(0, 0, len(s.rows)-1, numCols-1).String()
}

// ColumnWidths returns the display widths of the columns,
// nil if no widths have been set.
func (s *Sheet) ColumnWidths() []float64 { return s.colWidths }

// SetColumnWidths sets the display widths of the first len(widths) columns.
func (s *Sheet) SetColumnWidths(widths ...float64) {
	s.colWidths = append([]float64(nil), widths...)
}

// FreezeHeader returns if the first row stays visible when scrolling.
func (s *Sheet) FreezeHeader() bool { return s.freezeHeader }

func (s *Sheet) SetFreezeHeader(freeze bool) { s.freezeHeader = freeze }

// SetStyle sets the style of every existing cell in rangeRef.
func (s *Sheet) SetStyle(rangeRef string, style Style) error {
	return s.EachCell(rangeRef, func(cell *Cell) error {
		cell.Style = style
		return nil
	})
}

// EachCell calls fn for every existing cell inside of rangeRef.
// Cells of the range beyond the end of a row or the last row
// are not created. An error from fn stops the iteration
// and is returned.
func (s *Sheet) EachCell(rangeRef string, fn func(cell *Cell) error) error {
	rng, err := report.DecodeRange(rangeRef)
	if err != nil {
		return err
	}
	for r := rng.StartRow; r <= rng.EndRow && r < len(s.rows); r++ {
		row := s.rows[r]
		for c := rng.StartCol; c <= rng.EndCol && c < len(row); c++ {
			if err := fn(&row[c]); err != nil {
				return err
			}
		}
	}
	return nil
}

// ApplyFormat calls formatter for every existing cell inside of rangeRef.
// Cells for which the formatter returns errors.ErrUnsupported
// are skipped, because formatting is best effort.
// Other formatter errors are returned.
func (s *Sheet) ApplyFormat(rangeRef string, formatter CellFormatter) error {
	return s.EachCell(rangeRef, func(cell *Cell) error {
		err := formatter.FormatCell(cell)
		if errors.Is(err, errors.ErrUnsupported) {
			return nil
		}
		return err
	})
}
