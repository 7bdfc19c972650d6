package report

// View is the read interface of a table
// that export formats are written from.
type View interface {
	// Title of the table
	Title() string
	// Columns returns the column headers
	Columns() []string
	// NumRows returns the number of data rows
	NumRows() int
	// Cell returns the value at row and col,
	// or an empty Value if the cell does not exist
	Cell(row, col int) Value
}

// NewView returns a View of the passed table.
// The View does not copy the table, so the table
// must not be modified while the View is in use.
func NewView(table *TableData) View {
	return tableView{table}
}

type tableView struct {
	t *TableData
}

func (v tableView) Title() string     { return v.t.Title }
func (v tableView) Columns() []string { return v.t.Headers }
func (v tableView) NumRows() int      { return len(v.t.Rows) }

// Cell returns an empty Value for indices outside of the table,
// including missing trailing cells of short rows
// and extra cells beyond the header count.
func (v tableView) Cell(row, col int) Value {
	if row < 0 || col < 0 || row >= len(v.t.Rows) || col >= len(v.t.Rows[row]) || col >= len(v.t.Headers) {
		return Value{}
	}
	return v.t.Rows[row][col]
}

// HeaderView is a View whose only row
// consists of the column titles of another View.
type HeaderView struct {
	Source View
}

// NewHeaderViewFrom returns a HeaderView of source.
func NewHeaderViewFrom(source View) *HeaderView {
	return &HeaderView{Source: source}
}

func (v *HeaderView) Title() string     { return v.Source.Title() }
func (v *HeaderView) Columns() []string { return v.Source.Columns() }
func (v *HeaderView) NumRows() int      { return 1 }

func (v *HeaderView) Cell(row, col int) Value {
	cols := v.Source.Columns()
	if row != 0 || col < 0 || col >= len(cols) {
		return Value{}
	}
	return Text(cols[col])
}

// ViewStrings returns the raw string representation
// of all cells of the view, optionally
// with the column titles as first row.
func ViewStrings(view View, addHeaderRow bool) [][]string {
	numCols := len(view.Columns())
	rows := make([][]string, 0, view.NumRows()+1)
	if addHeaderRow {
		rows = append(rows, append([]string(nil), view.Columns()...))
	}
	for row := 0; row < view.NumRows(); row++ {
		rowStrs := make([]string, numCols)
		for col := range rowStrs {
			rowStrs[col] = view.Cell(row, col).String()
		}
		rows = append(rows, rowStrs)
	}
	return rows
}
