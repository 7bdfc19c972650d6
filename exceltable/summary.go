package exceltable

import (
	"time"

	"github.com/domonda/go-report"
)

// SummarySheetName is the name of the first sheet of every report workbook.
const SummarySheetName = "Summary"

// Section headings of the summary sheet
const (
	HeadingReportInformation = "REPORT INFORMATION"
	HeadingReportDetails     = "REPORT DETAILS"
	HeadingSummaryMetrics    = "SUMMARY METRICS"
)

// SummaryMeta is the report identity shown on the summary sheet.
type SummaryMeta struct {
	Title       string
	GeneratedAt string
	Summary     []report.SummaryItem
}

// NewSummarySheet returns the metadata sheet of a report
// with label/value rows in a fixed order:
// firm block, report details block including the optional
// reporting period, and the summary metrics if there are any.
// Blocks are separated by a blank row.
//
// A nil config uses DefaultConfig.
// Period dates are rendered as text with config.SummaryDateLayout,
// not as date cells.
// Rows with a single populated cell are styled as headings,
// the label cell of all other rows is bold.
func NewSummarySheet(meta SummaryMeta, firm report.FirmInfo, dateRange *report.DateRange, config *Config) *Sheet {
	if config == nil {
		defaults := DefaultConfig()
		config = &defaults
	}
	var grid [][]report.Value
	heading := func(title string) {
		grid = append(grid, []report.Value{report.Text(title)})
	}
	field := func(label string, value report.Value) {
		grid = append(grid, []report.Value{report.Text(label), value})
	}
	optionalField := func(label, value string) {
		if value != "" {
			field(label, report.Text(value))
		}
	}
	blank := func() {
		grid = append(grid, nil)
	}

	heading(HeadingReportInformation)
	field("Firm Name", report.Text(firm.Name))
	optionalField("Address", firm.Address)
	optionalField("Phone", firm.Phone)
	optionalField("Email", firm.Email)
	blank()

	heading(HeadingReportDetails)
	field("Report Title", report.Text(meta.Title))
	field("Generated", report.Text(meta.GeneratedAt))
	if dateRange != nil {
		field("Period Start", report.Text(formatDate(dateRange.StartDate, config.SummaryDateLayout)))
		field("Period End", report.Text(formatDate(dateRange.EndDate, config.SummaryDateLayout)))
	}
	blank()

	if len(meta.Summary) > 0 {
		heading(HeadingSummaryMetrics)
		for _, item := range meta.Summary {
			field(item.Label, item.Value)
		}
	}

	sheet := NewSheet(SummarySheetName, grid)
	for _, row := range sheet.rows {
		if populatedCells(row) == 1 {
			row[0].Style = StyleHeading
			continue
		}
		if len(row) > 0 {
			row[0].Style = StyleLabel
		}
	}
	sheet.SetColumnWidths(config.LabelColumnWidth, config.ValueColumnWidth)
	return sheet
}

// AddSummarySheet builds the summary sheet with NewSummarySheet
// and inserts it as first sheet of the workbook.
func (wb *Workbook) AddSummarySheet(meta SummaryMeta, firm report.FirmInfo, dateRange *report.DateRange, config *Config) *Sheet {
	sheet := NewSummarySheet(meta, firm, dateRange, config)
	wb.InsertSheet(0, sheet)
	return sheet
}

func populatedCells(row []Cell) int {
	n := 0
	for _, cell := range row {
		if !cell.Value.IsEmpty() {
			n++
		}
	}
	return n
}

func formatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}
