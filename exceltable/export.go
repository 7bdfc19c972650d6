// Package exceltable exports report.ReportData as XLSX workbook
// with a summary sheet followed by one formatted data sheet per table.
//
// The package uses the excelize library (github.com/xuri/excelize/v2)
// to write the spreadsheet document. Sheets are assembled in memory
// as Sheet values that accumulate cell values, display formats and styles,
// the document is only written when the complete workbook is serialized,
// so a failed export never produces partial output.
//
// Example usage:
//
//	file, err := exceltable.ExportReport(ctx, &data, "financial-performance", report.FirmInfo{Name: "Acme CPA"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_, err = file.SaveTo(fs.File("/tmp/reports"))
package exceltable

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/domonda/go-report"
)

// FileExt is the file extension of exported workbooks.
const FileExt = "xlsx"

// DefaultExporter is used by the package level export functions.
var DefaultExporter = NewExporter()

// Exporter converts report data into XLSX workbooks.
// An Exporter is immutable, the With methods return modified copies,
// so one Exporter can be used for concurrent exports.
type Exporter struct {
	config Config
	rules  []ReportRule
	logger zerolog.Logger
	now    func() time.Time
}

// NewExporter returns an Exporter using DefaultConfig,
// DefaultRules, a disabled logger and the local time.
func NewExporter() *Exporter {
	return &Exporter{
		config: DefaultConfig(),
		rules:  DefaultRules,
		logger: zerolog.Nop(),
		now:    time.Now,
	}
}

func (e *Exporter) clone() *Exporter {
	c := new(Exporter)
	*c = *e
	return c
}

// WithConfig returns a new Exporter using config.
func (e *Exporter) WithConfig(config Config) *Exporter {
	mod := e.clone()
	mod.config = config
	return mod
}

// WithRules returns a new Exporter applying rules
// instead of DefaultRules to the data sheets.
func (e *Exporter) WithRules(rules []ReportRule) *Exporter {
	mod := e.clone()
	mod.rules = append([]ReportRule(nil), rules...)
	return mod
}

// WithLogger returns a new Exporter logging to logger.
func (e *Exporter) WithLogger(logger zerolog.Logger) *Exporter {
	mod := e.clone()
	mod.logger = logger
	return mod
}

// WithClock returns a new Exporter using now
// for the generation timestamp and file name.
func (e *Exporter) WithClock(now func() time.Time) *Exporter {
	mod := e.clone()
	mod.now = now
	return mod
}

func (e *Exporter) Config() Config { return e.config }

// ExportReport calls DefaultExporter.ExportReport.
func ExportReport(ctx context.Context, data *report.ReportData, reportType string, firm report.FirmInfo) (*report.File, error) {
	return DefaultExporter.ExportReport(ctx, data, reportType, firm)
}

// ExportReport builds the workbook for data with BuildWorkbook
// and serializes it as XLSX file named
// "{TitleCasedReportType}-{yyyy-MM-dd}.xlsx".
//
// Missing data, report type or firm name result in an error
// wrapping report.ErrInvalidExportRequest before any sheet is built.
// Serialization errors wrap report.ErrSerialization.
// No file is returned with any error.
func (e *Exporter) ExportReport(ctx context.Context, data *report.ReportData, reportType string, firm report.FirmInfo) (*report.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := e.now()
	wb, err := e.buildWorkbook(data, reportType, firm, now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Excel file: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	buf, err := wb.Bytes(&e.config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Excel file: %w", err)
	}
	file := &report.File{
		Name: report.Filename(reportType, now, FileExt),
		Data: buf,
	}
	e.logger.Info().
		Str("reportType", reportType).
		Str("file", file.Name).
		Int("sheets", len(wb.sheets)).
		Int("bytes", len(file.Data)).
		Msg("exported report workbook")
	return file, nil
}

// BuildWorkbook assembles the workbook of a report without serializing it:
// the summary sheet first, then one data sheet per table
// formatted by the rules matching reportType.
func (e *Exporter) BuildWorkbook(data *report.ReportData, reportType string, firm report.FirmInfo) (*Workbook, error) {
	return e.buildWorkbook(data, reportType, firm, e.now())
}

func (e *Exporter) buildWorkbook(data *report.ReportData, reportType string, firm report.FirmInfo, now time.Time) (*Workbook, error) {
	if err := report.Validate(data, reportType, firm); err != nil {
		return nil, err
	}
	if err := e.config.Validate(); err != nil {
		return nil, err
	}

	title := data.Title
	if title == "" {
		title = report.TitleCase(reportType)
	}
	description := "Generated by " + firm.Name
	if firm.Website != "" {
		description += " (" + firm.Website + ")"
	}
	wb := NewWorkbook(DocProps{
		Title:       title,
		Subject:     title + " report",
		Creator:     firm.Name,
		Keywords:    reportType,
		Description: description,
		Created:     now.UTC().Format(time.RFC3339),
	})

	wb.AddSummarySheet(
		SummaryMeta{
			Title:       title,
			GeneratedAt: now.Format(e.config.TimestampLayout),
			Summary:     data.Summary,
		},
		firm,
		data.DateRange,
		&e.config,
	)

	for i := range data.Tables {
		table := &data.Tables[i]
		name := table.Title
		if name == "" {
			name = fmt.Sprintf("Data %d", i+1)
		}
		sheet := NewTableWorksheet(name, table)
		sheet.SetFreezeHeader(e.config.FreezeHeaderRow)
		applied, err := ApplyReportRules(sheet, reportType, e.rules)
		if err != nil {
			return nil, fmt.Errorf("formatting table %d: %w", i+1, err)
		}
		name = wb.AddSheet(sheet)
		for _, a := range applied {
			e.logger.Debug().
				Str("sheet", name).
				Str("rule", a.Rule).
				Str("concept", a.Concept).
				Str("range", a.Range).
				Msg("formatted column")
		}
		e.logger.Debug().
			Str("sheet", name).
			Int("rows", len(table.Rows)).
			Int("columns", len(table.Headers)).
			Msg("added data sheet")
	}
	return wb, nil
}
