package exceltable

import (
	"context"

	"github.com/domonda/go-report"
)

// Report type tags of the known report archetypes
const (
	ReportTypeFinancialPerformance = "financial-performance"
	ReportTypeARAging              = "ar-aging"
	ReportTypeClientProfitability  = "client-profitability"
	ReportTypeTimeBilling          = "time-billing"
	ReportTypeProjectStatus        = "project-status"
)

// FinancialPerformanceData is the input of ExportFinancialPerformance.
type FinancialPerformanceData struct {
	Title           string
	DateRange       *report.DateRange
	Metrics         []report.SummaryItem
	IncomeStatement *report.TableData
	MonthlyTrend    *report.TableData
}

// ARAgingData is the input of ExportARAgingReport.
type ARAgingData struct {
	Title     string
	DateRange *report.DateRange
	Metrics   []report.SummaryItem
	Invoices  *report.TableData
	Clients   *report.TableData
}

// ClientProfitabilityData is the input of ExportClientProfitability.
type ClientProfitabilityData struct {
	Title     string
	DateRange *report.DateRange
	Metrics   []report.SummaryItem
	Clients   *report.TableData
}

// TimeBillingData is the input of ExportTimeBillingReport.
type TimeBillingData struct {
	Title     string
	DateRange *report.DateRange
	Metrics   []report.SummaryItem
	Entries   *report.TableData
	Staff     *report.TableData
}

// ProjectStatusData is the input of ExportProjectStatusReport.
type ProjectStatusData struct {
	Title      string
	DateRange  *report.DateRange
	Metrics    []report.SummaryItem
	Projects   *report.TableData
	Milestones *report.TableData
}

// ExportFinancialPerformance exports an income statement
// and an optional monthly trend with ReportTypeFinancialPerformance.
func (e *Exporter) ExportFinancialPerformance(ctx context.Context, data FinancialPerformanceData, firm report.FirmInfo) (*report.File, error) {
	return e.ExportReport(ctx, newReportData(data.Title, data.DateRange, data.Metrics,
		namedTable{"Income Statement", data.IncomeStatement},
		namedTable{"Monthly Trend", data.MonthlyTrend},
	), ReportTypeFinancialPerformance, firm)
}

// ExportARAgingReport exports open invoices
// and an optional per client aging with ReportTypeARAging.
func (e *Exporter) ExportARAgingReport(ctx context.Context, data ARAgingData, firm report.FirmInfo) (*report.File, error) {
	return e.ExportReport(ctx, newReportData(data.Title, data.DateRange, data.Metrics,
		namedTable{"Invoices", data.Invoices},
		namedTable{"Aging by Client", data.Clients},
	), ReportTypeARAging, firm)
}

// ExportClientProfitability exports per client profitability
// with ReportTypeClientProfitability.
func (e *Exporter) ExportClientProfitability(ctx context.Context, data ClientProfitabilityData, firm report.FirmInfo) (*report.File, error) {
	return e.ExportReport(ctx, newReportData(data.Title, data.DateRange, data.Metrics,
		namedTable{"Client Profitability", data.Clients},
	), ReportTypeClientProfitability, firm)
}

// ExportTimeBillingReport exports time entries
// and an optional staff utilization with ReportTypeTimeBilling.
func (e *Exporter) ExportTimeBillingReport(ctx context.Context, data TimeBillingData, firm report.FirmInfo) (*report.File, error) {
	return e.ExportReport(ctx, newReportData(data.Title, data.DateRange, data.Metrics,
		namedTable{"Time Entries", data.Entries},
		namedTable{"Staff Utilization", data.Staff},
	), ReportTypeTimeBilling, firm)
}

// ExportProjectStatusReport exports projects
// and optional milestones with ReportTypeProjectStatus.
func (e *Exporter) ExportProjectStatusReport(ctx context.Context, data ProjectStatusData, firm report.FirmInfo) (*report.File, error) {
	return e.ExportReport(ctx, newReportData(data.Title, data.DateRange, data.Metrics,
		namedTable{"Projects", data.Projects},
		namedTable{"Milestones", data.Milestones},
	), ReportTypeProjectStatus, firm)
}

// ExportFinancialPerformance calls DefaultExporter.ExportFinancialPerformance.
func ExportFinancialPerformance(ctx context.Context, data FinancialPerformanceData, firm report.FirmInfo) (*report.File, error) {
	return DefaultExporter.ExportFinancialPerformance(ctx, data, firm)
}

// ExportARAgingReport calls DefaultExporter.ExportARAgingReport.
func ExportARAgingReport(ctx context.Context, data ARAgingData, firm report.FirmInfo) (*report.File, error) {
	return DefaultExporter.ExportARAgingReport(ctx, data, firm)
}

// ExportClientProfitability calls DefaultExporter.ExportClientProfitability.
func ExportClientProfitability(ctx context.Context, data ClientProfitabilityData, firm report.FirmInfo) (*report.File, error) {
	return DefaultExporter.ExportClientProfitability(ctx, data, firm)
}

// ExportTimeBillingReport calls DefaultExporter.ExportTimeBillingReport.
func ExportTimeBillingReport(ctx context.Context, data TimeBillingData, firm report.FirmInfo) (*report.File, error) {
	return DefaultExporter.ExportTimeBillingReport(ctx, data, firm)
}

// ExportProjectStatusReport calls DefaultExporter.ExportProjectStatusReport.
func ExportProjectStatusReport(ctx context.Context, data ProjectStatusData, firm report.FirmInfo) (*report.File, error) {
	return DefaultExporter.ExportProjectStatusReport(ctx, data, firm)
}

type namedTable struct {
	defaultTitle string
	table        *report.TableData
}

// newReportData copies the non nil tables into a ReportData,
// titling untitled tables with their default title.
func newReportData(title string, dateRange *report.DateRange, metrics []report.SummaryItem, tables ...namedTable) *report.ReportData {
	data := &report.ReportData{
		Title:     title,
		DateRange: dateRange,
		Summary:   metrics,
	}
	for _, t := range tables {
		if t.table == nil {
			continue
		}
		table := *t.table
		if table.Title == "" {
			table.Title = t.defaultTitle
		}
		data.Tables = append(data.Tables, table)
	}
	return data
}
