package report

import (
	"fmt"
	"strings"
	"time"
)

// ReportData is the report agnostic input of an export.
// Exports never modify a passed ReportData.
type ReportData struct {
	// Title of the report, defaults to the title cased report type.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// DateRange is the optional reporting period.
	DateRange *DateRange `json:"dateRange,omitempty" yaml:"dateRange,omitempty"`

	// Tables are exported as one data sheet each, in order.
	Tables []TableData `json:"tables,omitempty" yaml:"tables,omitempty"`

	// Summary metrics in presentation order.
	Summary []SummaryItem `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// DateRange is a reporting period.
type DateRange struct {
	StartDate time.Time `json:"startDate" yaml:"startDate"`
	EndDate   time.Time `json:"endDate" yaml:"endDate"`
}

// SummaryItem is a labeled key metric of a report.
type SummaryItem struct {
	Label string `json:"label" yaml:"label"`
	Value Value  `json:"value" yaml:"value"`
}

// Metric returns a SummaryItem converting value with ValueOf.
func Metric(label string, value any) SummaryItem {
	return SummaryItem{Label: label, Value: ValueOf(value)}
}

// FirmInfo identifies the organization a report is produced for.
// Only Name is required.
type FirmInfo struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
	Phone   string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email   string `json:"email,omitempty" yaml:"email,omitempty"`
	Website string `json:"website,omitempty" yaml:"website,omitempty"`
}

// TableData is a titled table of rows with one header per column.
type TableData struct {
	Title   string    `json:"title,omitempty" yaml:"title,omitempty"`
	Headers []string  `json:"headers" yaml:"headers"`
	Rows    [][]Value `json:"rows" yaml:"rows"`
}

// NewTableData returns a TableData converting
// every cell of rows with ValueOf.
func NewTableData(title string, headers []string, rows ...[]any) TableData {
	t := TableData{
		Title:   title,
		Headers: headers,
		Rows:    make([][]Value, len(rows)),
	}
	for i, row := range rows {
		t.Rows[i] = Values(row...)
	}
	return t
}

// NormalizedRows returns a copy of the rows where every row
// has exactly one cell per header.
// Short rows are padded with empty values,
// cells beyond the header count are dropped.
func (t *TableData) NormalizedRows() [][]Value {
	rows := make([][]Value, len(t.Rows))
	for i := range t.Rows {
		rows[i] = make([]Value, len(t.Headers))
		copy(rows[i], t.Rows[i])
	}
	return rows
}

// Grid returns the header row followed by the normalized rows.
func (t *TableData) Grid() [][]Value {
	grid := make([][]Value, 0, len(t.Rows)+1)
	header := make([]Value, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = Text(h)
	}
	grid = append(grid, header)
	return append(grid, t.NormalizedRows()...)
}

// Validate checks the preconditions of a workbook export.
// The returned error wraps ErrInvalidExportRequest.
func Validate(data *ReportData, reportType string, firm FirmInfo) error {
	switch {
	case data == nil:
		return fmt.Errorf("%w: missing report data", ErrInvalidExportRequest)
	case strings.TrimSpace(reportType) == "":
		return fmt.Errorf("%w: missing report type", ErrInvalidExportRequest)
	case strings.TrimSpace(firm.Name) == "":
		return fmt.Errorf("%w: missing firm name", ErrInvalidExportRequest)
	}
	return nil
}
