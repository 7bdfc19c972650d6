package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Range is a rectangular block of cells
// with zero based, inclusive row and column indices.
type Range struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// CellRange returns the Range spanning the passed corners
// in any order.
func CellRange(row1, col1, row2, col2 int) Range {
	return Range{
		StartRow: min(row1, row2),
		StartCol: min(col1, col2),
		EndRow:   max(row1, row2),
		EndCol:   max(col1, col2),
	}
}

// String returns the A1 style reference of the range,
// a single cell address if the range covers only one cell.
func (r Range) String() string {
	start := EncodeCell(r.StartRow, r.StartCol)
	if r.StartRow == r.EndRow && r.StartCol == r.EndCol {
		return start
	}
	return start + ":" + EncodeCell(r.EndRow, r.EndCol)
}

func (r Range) Contains(row, col int) bool {
	return row >= r.StartRow && row <= r.EndRow && col >= r.StartCol && col <= r.EndCol
}

func (r Range) NumRows() int { return r.EndRow - r.StartRow + 1 }

func (r Range) NumCols() int { return r.EndCol - r.StartCol + 1 }

// Limits of a worksheet, addresses beyond them are invalid.
const (
	MaxRows    = excelize.TotalRows
	MaxColumns = excelize.MaxColumns
)

// EncodeColumn returns the alphabetic name of
// the zero based column index: 0 is "A", 25 is "Z", 26 is "AA".
// Indices outside of the worksheet limits are clamped.
func EncodeColumn(col int) string {
	name, _ := excelize.ColumnNumberToName(clamp(col, MaxColumns) + 1)
	return name
}

// DecodeColumn returns the zero based column index
// of an alphabetic column name. Lower case letters are accepted.
func DecodeColumn(name string) (int, error) {
	col, err := excelize.ColumnNameToNumber(name)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid column %q: %w", ErrInvalidRangeFormat, name, err)
	}
	return col - 1, nil
}

// EncodeCell returns the A1 style address of a cell
// at zero based row and column: EncodeCell(1, 0) == "A2".
// Indices outside of the worksheet limits are clamped.
func EncodeCell(row, col int) string {
	addr, _ := excelize.CoordinatesToCellName(clamp(col, MaxColumns)+1, clamp(row, MaxRows)+1)
	return addr
}

// DecodeCell parses an A1 style cell address
// into zero based row and column indices.
// It is the inverse of EncodeCell.
// Absolute markers like in "$B$3" are ignored.
func DecodeCell(address string) (row, col int, err error) {
	col, row, err = excelize.CellNameToCoordinates(strings.TrimSpace(address))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid cell address %q: %w", ErrInvalidRangeFormat, address, err)
	}
	return row - 1, col - 1, nil
}

func clamp(index, limit int) int {
	return min(max(index, 0), limit-1)
}

// DecodeRange parses a range reference in the form "A1" or "A1:C10".
// A single cell address results in a Range covering only that cell.
// Corners may be given in any order, the result is normalized
// so that the start is the top left cell.
func DecodeRange(ref string) (Range, error) {
	first, second, isPair := strings.Cut(ref, ":")
	row1, col1, err := DecodeCell(first)
	if err != nil {
		return Range{}, err
	}
	if !isPair {
		return Range{StartRow: row1, StartCol: col1, EndRow: row1, EndCol: col1}, nil
	}
	row2, col2, err := DecodeCell(second)
	if err != nil {
		return Range{}, err
	}
	return CellRange(row1, col1, row2, col2), nil
}
