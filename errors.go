// Package report contains the format independent model of report exports:
// tables of typed cell values, summary metrics, firm and period metadata,
// A1 style cell addressing and the header based column detection
// shared by the XLSX and CSV exporters in the sub packages
// exceltable and csvtable.
package report

import "errors"

var (
	// ErrInvalidExportRequest is returned when a required top level
	// field of an export call is missing, before any work is done.
	// Returned errors wrap it with the name of the missing field.
	ErrInvalidExportRequest = errors.New("invalid export request")

	// ErrInvalidRangeFormat is returned for a malformed cell address
	// or cell range. It indicates a programming error of the caller
	// that built the range, not a problem with report data.
	ErrInvalidRangeFormat = errors.New("invalid range format")

	// ErrSerialization is returned when writing the final
	// document bytes fails.
	ErrSerialization = errors.New("serialization failure")
)
