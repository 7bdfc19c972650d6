package exceltable

import "errors"

var (
	// ErrDuplicateSheet is returned when serializing a workbook
	// that contains the same sheet or sheet name more than once.
	ErrDuplicateSheet = errors.New("duplicate sheet name")

	// ErrNoSheets is returned when serializing a workbook
	// without any sheet.
	ErrNoSheets = errors.New("workbook has no sheets")
)
