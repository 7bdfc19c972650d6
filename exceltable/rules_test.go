package exceltable

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-report"
)

func TestReportRule_Matches(t *testing.T) {
	rule := func(name string) *ReportRule {
		for i := range DefaultRules {
			if DefaultRules[i].Name == name {
				return &DefaultRules[i]
			}
		}
		t.Fatalf("no rule %q", name)
		return nil
	}
	tests := []struct {
		rule       string
		reportType string
		want       bool
	}{
		{rule: "financial", reportType: "financial-performance", want: true},
		{rule: "financial", reportType: "Financial", want: true},
		{rule: "financial", reportType: "ar-aging", want: false},
		{rule: "ar-aging", reportType: "ar-aging", want: true},
		{rule: "ar-aging", reportType: "AGING", want: true},
		{rule: "ar-aging", reportType: "quarterly", want: true},
		{rule: "ar-aging", reportType: "time-billing", want: false},
		{rule: "profitability", reportType: "client-profitability", want: true},
		{rule: "time-billing", reportType: "time-billing", want: true},
		{rule: "project-status", reportType: "project-status", want: true},
		{rule: "project-status", reportType: "financial-performance", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.rule+"/"+tt.reportType, func(t *testing.T) {
			require.Equal(t, tt.want, rule(tt.rule).Matches(tt.reportType))
		})
	}
}

func TestApplyReportRules_ARAging(t *testing.T) {
	sheet := NewWorksheet("Invoices",
		[]string{"Client", "Invoice #", "Balance Due", "Due Date"},
		[][]report.Value{
			report.Values("Acme", "INV-1", 1500.5, "2024-04-15"),
			report.Values("Beta", "INV-2", 250, "2024-05-01"),
		},
	)
	applied, err := ApplyReportRules(sheet, ReportTypeARAging, DefaultRules)
	require.NoError(t, err)
	require.Equal(t,
		[]AppliedFormat{
			{Rule: "ar-aging", Concept: "amount", Column: 2, Range: "C2:C3"},
			{Rule: "ar-aging", Concept: "date", Column: 3, Range: "D2:D3"},
		},
		applied,
	)
	require.Equal(t, NumFmtCurrency, sheet.Cell(1, 2).Format)
	require.Equal(t, NumFmtDate, sheet.Cell(2, 3).Format)
	require.Equal(t, NumFmtNone, sheet.Cell(1, 0).Format)
	require.Equal(t, NumFmtNone, sheet.Cell(0, 2).Format, "header row is not formatted")
}

func TestApplyReportRules_MultipleRules(t *testing.T) {
	sheet := NewWorksheet("Entries",
		[]string{"Client", "Hours", "Rate", "Billing", "Margin"},
		[][]report.Value{
			report.Values("Acme", 12.5, 150, 1875, 0.3),
			report.Values("Beta", 4, 200, 800, 0.25),
		},
	)
	applied, err := ApplyReportRules(sheet, "client-time-billing", DefaultRules)
	require.NoError(t, err)
	require.Equal(t,
		[]AppliedFormat{
			{Rule: "profitability", Concept: "revenue", Column: 3, Range: "D2:D3"},
			{Rule: "profitability", Concept: "margin", Column: 4, Range: "E2:E3"},
			{Rule: "time-billing", Concept: "hours", Column: 1, Range: "B2:B3"},
			{Rule: "time-billing", Concept: "rate", Column: 2, Range: "C2:C3"},
			{Rule: "time-billing", Concept: "amount", Column: 3, Range: "D2:D3"},
		},
		applied,
	)
	require.Equal(t, NumFmtNumber, sheet.Cell(1, 1).Format)
	require.Equal(t, NumFmtCurrency, sheet.Cell(2, 2).Format)
	require.Equal(t, NumFmtCurrency, sheet.Cell(1, 3).Format)
	require.Equal(t, NumFmtPercentage, sheet.Cell(2, 4).Format)
}

func TestApplyReportRules_NoMatch(t *testing.T) {
	sheet := NewWorksheet("Data",
		[]string{"Client", "Balance"},
		[][]report.Value{report.Values("Acme", 100)},
	)
	applied, err := ApplyReportRules(sheet, ReportTypeFinancialPerformance, DefaultRules)
	require.NoError(t, err)
	require.Empty(t, applied)
	require.Equal(t, NumFmtNone, sheet.Cell(1, 1).Format)

	applied, err = ApplyReportRules(sheet, "unknown", DefaultRules)
	require.NoError(t, err)
	require.Empty(t, applied)
}

func TestApplyReportRules_HeaderOnly(t *testing.T) {
	sheet := NewWorksheet("Data", []string{"Amount"}, nil)
	applied, err := ApplyReportRules(sheet, ReportTypeARAging, DefaultRules)
	require.NoError(t, err)
	require.Empty(t, applied)
}

func TestApplyReportRules_CustomRules(t *testing.T) {
	rules := []ReportRule{{
		Name:  "payroll",
		Match: []string{"payroll"},
		Concepts: []Concept{
			{Name: "salary", Keywords: []string{"salary"}, Formatter: CurrencyFormatter},
		},
	}}
	sheet := NewWorksheet("Payroll",
		[]string{"Employee", "Salary"},
		[][]report.Value{report.Values("Jane", 5000)},
	)
	applied, err := ApplyReportRules(sheet, "monthly-payroll", rules)
	require.NoError(t, err)
	require.Len(t, applied, 1)
	require.Equal(t, NumFmtCurrency, sheet.Cell(1, 1).Format)
}
