package exceltable

import (
	"strings"

	"github.com/domonda/go-report"
)

// Concept is a semantic column like "revenue"
// found by header keywords and the formatter
// applied to its data cells.
type Concept struct {
	Name      string
	Keywords  []string
	Formatter CellFormatter
}

// ReportRule is the formatting strategy of a report family.
// It applies to every report type tag that contains
// any of the Match substrings, compared case insensitive.
type ReportRule struct {
	Name     string
	Match    []string
	Concepts []Concept
}

// Matches reports if the rule applies to reportType.
func (r *ReportRule) Matches(reportType string) bool {
	reportType = report.NormalizeReportType(reportType)
	for _, m := range r.Match {
		if m != "" && strings.Contains(reportType, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

// AppliedFormat describes a concept column
// that was formatted by a ReportRule.
type AppliedFormat struct {
	Rule    string
	Concept string
	Column  int
	Range   string
}

// DefaultRules are the formatting rules of the known report families
// in the order they are applied.
var DefaultRules = []ReportRule{
	{
		Name:  "financial",
		Match: []string{"financial"},
		Concepts: []Concept{
			{Name: "revenue", Keywords: []string{"revenue", "income", "sales"}, Formatter: CurrencyFormatter},
			{Name: "expense", Keywords: []string{"expense", "cost"}, Formatter: CurrencyFormatter},
			{Name: "profit", Keywords: []string{"profit", "net income", "margin"}, Formatter: CurrencyFormatter},
		},
	},
	{
		Name:  "ar-aging",
		Match: []string{"ar", "aging"},
		Concepts: []Concept{
			{Name: "amount", Keywords: []string{"amount", "balance", "total"}, Formatter: CurrencyFormatter},
			{Name: "date", Keywords: []string{"date", "due date", "invoice date"}, Formatter: DateCellFormatter},
		},
	},
	{
		Name:  "profitability",
		Match: []string{"profitability", "client"},
		Concepts: []Concept{
			{Name: "revenue", Keywords: []string{"revenue", "billing", "fees"}, Formatter: CurrencyFormatter},
			{Name: "cost", Keywords: []string{"cost", "expense"}, Formatter: CurrencyFormatter},
			{Name: "margin", Keywords: []string{"margin", "profit %", "profitability"}, Formatter: PercentageFormatter},
		},
	},
	{
		Name:  "time-billing",
		Match: []string{"time", "billing"},
		Concepts: []Concept{
			{Name: "hours", Keywords: []string{"hours", "time", "billable hours"}, Formatter: NumberFormatter},
			{Name: "rate", Keywords: []string{"rate", "hourly rate"}, Formatter: CurrencyFormatter},
			{Name: "amount", Keywords: []string{"amount", "total", "billing"}, Formatter: CurrencyFormatter},
			{Name: "utilization", Keywords: []string{"utilization", "efficiency", "%"}, Formatter: PercentageFormatter},
		},
	},
	{
		Name:  "project-status",
		Match: []string{"project", "status"},
		Concepts: []Concept{
			{Name: "progress", Keywords: []string{"progress", "complete", "%"}, Formatter: PercentageFormatter},
			{Name: "budget", Keywords: []string{"budget", "estimate"}, Formatter: CurrencyFormatter},
			{Name: "actual", Keywords: []string{"actual", "spent"}, Formatter: CurrencyFormatter},
			{Name: "date", Keywords: []string{"date", "due date", "deadline"}, Formatter: DateCellFormatter},
		},
	},
}

// ApplyReportRules applies every rule matching reportType
// to the data sheet in the order of rules.
// The first row of the sheet is the header row
// searched with report.FindColumn for every concept.
// A concept whose column is not found is skipped.
// The formatter of a found concept is applied
// from the first data row to the last row of the sheet.
func ApplyReportRules(sheet *Sheet, reportType string, rules []ReportRule) ([]AppliedFormat, error) {
	if sheet.NumRows() < 2 {
		return nil, nil
	}
	headers := make([]string, len(sheet.Row(0)))
	for i, cell := range sheet.Row(0) {
		headers[i] = cell.Value.String()
	}
	var applied []AppliedFormat
	for i := range rules {
		rule := &rules[i]
		if !rule.Matches(reportType) {
			continue
		}
		for _, concept := range rule.Concepts {
			col := report.FindColumn(headers, concept.Keywords...)
			if col == report.NotFound {
				continue
			}
			rangeRef := report.CellRange(1, col, sheet.LastRow(), col).String()
			if err := sheet.ApplyFormat(rangeRef, concept.Formatter); err != nil {
				return applied, err
			}
			applied = append(applied, AppliedFormat{
				Rule:    rule.Name,
				Concept: concept.Name,
				Column:  col,
				Range:   rangeRef,
			})
		}
	}
	return applied, nil
}
