package csvtable

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/domonda/go-report"
)

// FileExt is the file extension of exported CSV files.
const FileExt = "csv"

// ExportCSV writes the header row and all rows of table
// as RFC 4180 CSV using NewWriter and returns it
// as file named "{filename}.csv".
//
// Rows are normalized to the header count:
// missing cells are written as empty fields
// and cells beyond the last header are dropped.
func ExportCSV(ctx context.Context, table *report.TableData, filename string) (*report.File, error) {
	return NewWriter().Export(ctx, table, filename)
}

// Export writes table with the writer's settings
// and returns it as file named "{filename}.csv".
// The table must have headers and a non nil rows slice.
func (w *Writer) Export(ctx context.Context, table *report.TableData, filename string) (*report.File, error) {
	switch {
	case table == nil:
		return nil, fmt.Errorf("%w: missing table data", report.ErrInvalidExportRequest)
	case len(table.Headers) == 0:
		return nil, fmt.Errorf("%w: missing table headers", report.ErrInvalidExportRequest)
	case table.Rows == nil:
		return nil, fmt.Errorf("%w: missing table rows", report.ErrInvalidExportRequest)
	}
	filename = strings.TrimSuffix(strings.TrimSpace(filename), "."+FileExt)
	if filename == "" {
		return nil, fmt.Errorf("%w: missing filename", report.ErrInvalidExportRequest)
	}

	var buf bytes.Buffer
	if err := w.WriteTable(ctx, &buf, table); err != nil {
		return nil, fmt.Errorf("failed to generate CSV file: %w: %w", report.ErrSerialization, err)
	}
	return &report.File{
		Name: filename + "." + FileExt,
		Data: buf.Bytes(),
	}, nil
}
