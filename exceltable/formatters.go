package exceltable

import (
	"errors"
	"strings"
	"time"

	"github.com/domonda/go-types/date"

	"github.com/domonda/go-report"
)

// CellFormatter sets the display format of a cell.
type CellFormatter interface {
	// FormatCell formats the cell in place
	// or returns a wrapped errors.ErrUnsupported error
	// if the cell's value can't be displayed in the format,
	// in which case the cell must be left unchanged.
	FormatCell(cell *Cell) error
}

// CellFormatterFunc implements CellFormatter for a function.
type CellFormatterFunc func(cell *Cell) error

func (f CellFormatterFunc) FormatCell(cell *Cell) error {
	return f(cell)
}

// NumericFormatter tags numeric cells with a Format
// and skips all other kinds of values.
type NumericFormatter Format

func (f NumericFormatter) FormatCell(cell *Cell) error {
	if cell.Value.Kind() != report.KindNumber {
		return errors.ErrUnsupported
	}
	cell.Format = Format(f)
	return nil
}

// DateFormatter tags date cells with NumFmtDate.
// Text cells are converted to dates if the text can be parsed
// as calendar date, text that can't be parsed is left unchanged.
type DateFormatter struct{}

func (DateFormatter) FormatCell(cell *Cell) error {
	switch cell.Value.Kind() {
	case report.KindDate:
		cell.Format = NumFmtDate
		return nil
	case report.KindText:
		text, _ := cell.Value.Text()
		t, ok := ParseDate(text)
		if !ok {
			return errors.ErrUnsupported
		}
		cell.Value = report.Date(t)
		cell.Format = NumFmtDate
		return nil
	}
	return errors.ErrUnsupported
}

var (
	// CurrencyFormatter displays numbers with currency symbol,
	// thousands separator and 2 decimals.
	CurrencyFormatter CellFormatter = NumericFormatter(NumFmtCurrency)

	// PercentageFormatter displays numbers as percentage with 2 decimals.
	// The stored number is not changed, so it has to be a fraction
	// of one: 0.45 is displayed as "45.00%", but 45 as "4500.00%".
	// See report.Percentage for explicit conversions.
	PercentageFormatter CellFormatter = NumericFormatter(NumFmtPercentage)

	// NumberFormatter displays numbers with thousands separator and 2 decimals.
	NumberFormatter CellFormatter = NumericFormatter(NumFmtNumber)

	// DateCellFormatter converts date strings to dates
	// and displays dates as calendar date.
	DateCellFormatter CellFormatter = DateFormatter{}
)

// FormatCurrency applies CurrencyFormatter to all cells in rangeRef.
func FormatCurrency(sheet *Sheet, rangeRef string) error {
	return sheet.ApplyFormat(rangeRef, CurrencyFormatter)
}

// FormatPercentage applies PercentageFormatter to all cells in rangeRef.
// Values are expected as fraction of one, they are not multiplied by 100.
func FormatPercentage(sheet *Sheet, rangeRef string) error {
	return sheet.ApplyFormat(rangeRef, PercentageFormatter)
}

// FormatDate applies DateCellFormatter to all cells in rangeRef.
func FormatDate(sheet *Sheet, rangeRef string) error {
	return sheet.ApplyFormat(rangeRef, DateCellFormatter)
}

// FormatNumber applies NumberFormatter to all cells in rangeRef.
func FormatNumber(sheet *Sheet, rangeRef string) error {
	return sheet.ApplyFormat(rangeRef, NumberFormatter)
}

// ParseDate parses a calendar date from str
// and returns it as midnight UTC so that
// the result does not depend on the local time zone.
// RFC 3339 timestamps keep their time of day.
// Common date notations like "2024-03-15", "15.03.2024"
// or "March 15, 2024" are supported.
func ParseDate(str string) (time.Time, bool) {
	str = strings.TrimSpace(str)
	if str == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, str); err == nil {
		return t, true
	}
	if d, err := date.Normalize(str); err == nil && !d.IsZero() {
		return d.MidnightUTC(), true
	}
	for _, layout := range monthNameLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// monthNameLayouts are tried when date.Normalize
// does not recognize a date.
var monthNameLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}
