package exceltable

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-report"
)

func TestExportArchetypes(t *testing.T) {
	ctx := context.Background()
	exporter := testExporter()
	income := report.NewTableData("", []string{"Month", "Revenue", "Expenses", "Net Profit"},
		[]any{"January", 12000, 8000, 4000},
	)
	invoices := report.NewTableData("", []string{"Client", "Amount", "Due Date"},
		[]any{"Acme", 1500, "2024-04-15"},
	)
	clients := report.NewTableData("", []string{"Client", "Fees", "Cost", "Margin"},
		[]any{"Acme", 10000, 6000, 0.4},
	)
	entries := report.NewTableData("", []string{"Staff", "Hours", "Rate", "Amount"},
		[]any{"Jane", 7.5, 150, 1125},
	)
	projects := report.NewTableData("", []string{"Project", "Progress", "Budget", "Spent", "Deadline"},
		[]any{"Audit", 0.6, 5000, 2800, "2024-06-30"},
	)

	tests := []struct {
		testName string
		export   func() (*report.File, error)
		fileName string
		sheets   []string
	}{
		{
			testName: "financial performance",
			export: func() (*report.File, error) {
				return exporter.ExportFinancialPerformance(ctx, FinancialPerformanceData{IncomeStatement: &income}, testFirm)
			},
			fileName: "Financial-Performance-2024-03-15.xlsx",
			sheets:   []string{"Summary", "Income Statement"},
		},
		{
			testName: "ar aging",
			export: func() (*report.File, error) {
				return exporter.ExportARAgingReport(ctx, ARAgingData{Invoices: &invoices, Clients: &clients}, testFirm)
			},
			fileName: "Ar-Aging-2024-03-15.xlsx",
			sheets:   []string{"Summary", "Invoices", "Aging by Client"},
		},
		{
			testName: "client profitability",
			export: func() (*report.File, error) {
				return exporter.ExportClientProfitability(ctx, ClientProfitabilityData{Clients: &clients}, testFirm)
			},
			fileName: "Client-Profitability-2024-03-15.xlsx",
			sheets:   []string{"Summary", "Client Profitability"},
		},
		{
			testName: "time billing",
			export: func() (*report.File, error) {
				return exporter.ExportTimeBillingReport(ctx, TimeBillingData{Entries: &entries}, testFirm)
			},
			fileName: "Time-Billing-2024-03-15.xlsx",
			sheets:   []string{"Summary", "Time Entries"},
		},
		{
			testName: "project status",
			export: func() (*report.File, error) {
				return exporter.ExportProjectStatusReport(ctx, ProjectStatusData{Projects: &projects}, testFirm)
			},
			fileName: "Project-Status-2024-03-15.xlsx",
			sheets:   []string{"Summary", "Projects"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			file, err := tt.export()
			require.NoError(t, err)
			require.Equal(t, tt.fileName, file.Name)
			require.NotEmpty(t, file.Data)
		})
	}
}

func TestNewReportData(t *testing.T) {
	titled := report.NewTableData("Open Items", []string{"Amount"})
	data := newReportData("AR", nil, []report.SummaryItem{report.Metric("Total", 1)},
		namedTable{"Invoices", &titled},
		namedTable{"Aging by Client", nil},
	)
	require.Equal(t, "AR", data.Title)
	require.Len(t, data.Tables, 1)
	require.Equal(t, "Open Items", data.Tables[0].Title)
	require.Len(t, data.Summary, 1)

	untitled := report.NewTableData("", []string{"Amount"})
	data = newReportData("", nil, nil, namedTable{"Invoices", &untitled})
	require.Equal(t, "Invoices", data.Tables[0].Title)
	require.Equal(t, "", untitled.Title, "input table is not modified")
}

func TestArchetypeSheetFormats(t *testing.T) {
	projects := report.NewTableData("", []string{"Project", "Progress", "Budget", "Spent", "Deadline"},
		[]any{"Audit", 0.6, 5000, 2800, "2024-06-30"},
	)
	wb, err := testExporter().BuildWorkbook(
		newReportData("", nil, nil, namedTable{"Projects", &projects}),
		ReportTypeProjectStatus,
		testFirm,
	)
	require.NoError(t, err)
	sheet := wb.Sheet("Projects")
	require.Equal(t, NumFmtPercentage, sheet.Cell(1, 1).Format)
	require.Equal(t, NumFmtCurrency, sheet.Cell(1, 2).Format)
	require.Equal(t, NumFmtCurrency, sheet.Cell(1, 3).Format)
	require.Equal(t, NumFmtDate, sheet.Cell(1, 4).Format)
}
