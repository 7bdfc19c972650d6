package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	fs "github.com/ungerik/go-fs"
)

func TestTableData_NormalizedRows(t *testing.T) {
	table := NewTableData("Invoices", []string{"Client", "Amount", "Due"},
		[]any{"Acme", 100},
		[]any{"Beta", 200, "2024-04-01", "extra"},
	)
	rows := table.NormalizedRows()
	require.Len(t, rows, 2)
	for _, row := range rows {
		require.Len(t, row, 3)
	}
	require.True(t, rows[0][2].IsEmpty())
	require.True(t, Text("2024-04-01").Equal(rows[1][2]))
	require.Len(t, table.Rows[1], 4, "source rows unchanged")

	grid := table.Grid()
	require.Len(t, grid, 3)
	require.True(t, Text("Client").Equal(grid[0][0]))
}

func TestNewView(t *testing.T) {
	table := NewTableData("Invoices", []string{"Client", "Amount"},
		[]any{"Acme"},
		[]any{"Beta", 200, "extra"},
	)
	view := NewView(&table)
	require.Equal(t, "Invoices", view.Title())
	require.Equal(t, []string{"Client", "Amount"}, view.Columns())
	require.Equal(t, 2, view.NumRows())
	require.True(t, view.Cell(0, 1).IsEmpty())
	require.True(t, view.Cell(1, 2).IsEmpty())
	require.True(t, view.Cell(5, 0).IsEmpty())
	require.True(t, Number(200).Equal(view.Cell(1, 1)))

	require.Equal(t,
		[][]string{{"Client", "Amount"}, {"Acme", ""}, {"Beta", "200"}},
		ViewStrings(view, true),
	)

	header := NewHeaderViewFrom(view)
	require.Equal(t, 1, header.NumRows())
	require.True(t, Text("Amount").Equal(header.Cell(0, 1)))
	require.True(t, header.Cell(1, 0).IsEmpty())
}

func TestValidate(t *testing.T) {
	firm := FirmInfo{Name: "Acme CPA"}
	require.NoError(t, Validate(&ReportData{}, "ar-aging", firm))
	require.ErrorIs(t, Validate(nil, "ar-aging", firm), ErrInvalidExportRequest)
	require.ErrorIs(t, Validate(&ReportData{}, " ", firm), ErrInvalidExportRequest)
	require.ErrorIs(t, Validate(&ReportData{}, "ar-aging", FirmInfo{}), ErrInvalidExportRequest)
}

func TestDecodeReportData(t *testing.T) {
	t.Run("YAML", func(t *testing.T) {
		data, err := DecodeReportData([]byte(`
title: Q1 Aging
dateRange:
  startDate: 2024-01-01
  endDate: 2024-03-31
summary:
  - label: Total Outstanding
    value: 15000
tables:
  - title: Invoices
    headers: [Client, Balance Due, Due Date]
    rows:
      - [Acme, 1500.5, 2024-04-15]
      - [Beta, 250]
`))
		require.NoError(t, err)
		require.Equal(t, "Q1 Aging", data.Title)
		require.NotNil(t, data.DateRange)
		require.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), data.DateRange.EndDate)
		require.Len(t, data.Summary, 1)
		require.True(t, Number(15000).Equal(data.Summary[0].Value))
		require.Len(t, data.Tables, 1)
		require.Equal(t, []string{"Client", "Balance Due", "Due Date"}, data.Tables[0].Headers)
		require.True(t, Text("2024-04-15").Equal(data.Tables[0].Rows[0][2]))
	})

	t.Run("JSON", func(t *testing.T) {
		data, err := DecodeReportData([]byte(`{
			"title": "Projects",
			"tables": [{"headers": ["Project", "Budget"], "rows": [["Audit", 5000]]}]
		}`))
		require.NoError(t, err)
		require.Equal(t, "Projects", data.Title)
		require.True(t, Number(5000).Equal(data.Tables[0].Rows[0][1]))
	})

	t.Run("YAML null cells keep their column", func(t *testing.T) {
		data, err := DecodeReportData([]byte(`
tables:
  - headers: [Account, Note, Balance]
    rows:
      - [Cash, ~, 1000]
      - [AP, null, -500]
      - ~
      - [Bank]
`))
		require.NoError(t, err)
		rows := data.Tables[0].Rows
		require.Len(t, rows, 4)
		require.Len(t, rows[0], 3)
		require.True(t, Text("Cash").Equal(rows[0][0]))
		require.True(t, rows[0][1].IsEmpty())
		require.True(t, Number(1000).Equal(rows[0][2]))
		require.True(t, rows[1][1].IsEmpty())
		require.True(t, Number(-500).Equal(rows[1][2]))
		require.Empty(t, rows[2])

		grid := data.Tables[0].Grid()
		require.True(t, Number(1000).Equal(grid[1][2]), "Balance column")
		require.True(t, grid[4][2].IsEmpty(), "short rows are padded")
	})

	t.Run("unknown table field", func(t *testing.T) {
		_, err := DecodeReportData([]byte("tables:\n  - headers: [A]\n    rowz: [[1]]\n"))
		require.Error(t, err)
		_, err = DecodeReportData([]byte("tables:\n  - headers: [A]\n    rows: [x]\n"))
		require.Error(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := DecodeReportData([]byte(`{"titel": "typo"}`))
		require.Error(t, err)
		_, err = DecodeReportData([]byte("titel: typo\n"))
		require.Error(t, err)
	})
}

func TestLoadReportData(t *testing.T) {
	file := fs.MemFile{FileName: "report.yaml", FileData: []byte("title: Loaded\n")}
	data, err := LoadReportData(file)
	require.NoError(t, err)
	require.Equal(t, "Loaded", data.Title)

	_, err = LoadReportData(fs.MemFile{FileName: "report.txt", FileData: []byte("title: x\n")})
	require.Error(t, err)
}

func TestFile_SaveTo(t *testing.T) {
	dir := fs.File(t.TempDir())
	f := &File{Name: "Ar-Aging-2024-03-15.csv", Data: []byte("a,b\r\n")}
	written, err := f.SaveTo(dir.Join("out"))
	require.NoError(t, err)
	require.Equal(t, "Ar-Aging-2024-03-15.csv", written.Name())
	data, err := written.ReadAll()
	require.NoError(t, err)
	require.Equal(t, f.Data, data)

	mem := f.MemFile()
	require.Equal(t, f.Name, mem.Name())

	_, err = (&File{}).SaveTo(dir)
	require.Error(t, err)
}
