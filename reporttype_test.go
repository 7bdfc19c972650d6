package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		reportType string
		want       string
	}{
		{reportType: "financial-performance", want: "Financial Performance"},
		{reportType: "ar-aging", want: "Ar Aging"},
		{reportType: "time_billing", want: "Time Billing"},
		{reportType: "  project  status ", want: "Project Status"},
		{reportType: "x", want: "X"},
		{reportType: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.reportType, func(t *testing.T) {
			require.Equal(t, tt.want, TitleCase(tt.reportType))
		})
	}
}

func TestFilename(t *testing.T) {
	ts := time.Date(2024, 3, 15, 17, 30, 0, 0, time.UTC)
	require.Equal(t, "Financial-Performance-2024-03-15.xlsx", Filename("financial-performance", ts, "xlsx"))
	require.Equal(t, "Ar-Aging-2024-03-15.xlsx", Filename("ar-aging", ts, ".xlsx"))
	require.Equal(t, "Report-2024-03-15.csv", Filename("", ts, "csv"))
	require.Equal(t, "Ab-2024-03-15.xlsx", Filename("a/b", ts, "xlsx"))
}

func TestNormalizeReportType(t *testing.T) {
	require.Equal(t, "ar-aging", NormalizeReportType("  AR-Aging "))
}
