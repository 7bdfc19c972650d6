package report

import (
	"strings"
	"unicode/utf8"
)

// NotFound is returned by the column detectors
// if no header matches.
const NotFound = -1

const (
	// DefaultColumnWidth is used for columns without any value.
	DefaultColumnWidth = 10
	// MaxColumnWidth caps auto sized columns.
	MaxColumnWidth = 50
	// ColumnWidthPadding is added to the longest value of a column.
	ColumnWidthPadding = 2
)

// FindColumn returns the index of the first header
// that contains any of the keywords, compared case insensitive.
// The first matching header wins, even if a later header
// would be a better match.
// Returns NotFound if no header matches
// which callers should treat as nothing to do.
func FindColumn(headers []string, keywords ...string) int {
	lowerKeywords := lowerNonEmpty(keywords)
	for i, header := range headers {
		if containsAny(strings.ToLower(header), lowerKeywords) {
			return i
		}
	}
	return NotFound
}

// FindColumnStrict is like FindColumn but only returns
// an index if exactly one header matches the keywords.
// Ambiguous headers result in NotFound.
func FindColumnStrict(headers []string, keywords ...string) int {
	lowerKeywords := lowerNonEmpty(keywords)
	found := NotFound
	for i, header := range headers {
		if !containsAny(strings.ToLower(header), lowerKeywords) {
			continue
		}
		if found != NotFound {
			return NotFound
		}
		found = i
	}
	return found
}

func lowerNonEmpty(keywords []string) []string {
	lower := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k != "" {
			lower = append(lower, strings.ToLower(k))
		}
	}
	return lower
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// StringColumnWidths returns the column widths of the passed
// table as count of UTF-8 runes.
// If numCols is negative, the length of the longest row is used.
// Rows may be shorter than numCols.
func StringColumnWidths(rows [][]string, numCols int) []int {
	if numCols < 0 {
		for _, row := range rows {
			numCols = max(numCols, len(row))
		}
		if numCols <= 0 {
			return nil
		}
	}
	colWidths := make([]int, numCols)
	for row := range rows {
		for col := 0; col < numCols && col < len(rows[row]); col++ {
			colWidths[col] = max(colWidths[col], utf8.RuneCountInString(rows[row][col]))
		}
	}
	return colWidths
}

// AutoColumnWidths calculates display widths for the columns of grid,
// which includes the header as first row.
// A column is as wide as its longest raw string value
// plus ColumnWidthPadding, at most MaxColumnWidth.
// Columns without any non empty value get DefaultColumnWidth.
func AutoColumnWidths(grid [][]Value) []float64 {
	numCols := 0
	for _, row := range grid {
		numCols = max(numCols, len(row))
	}
	strs := make([][]string, len(grid))
	for i, row := range grid {
		strs[i] = make([]string, len(row))
		for j, v := range row {
			strs[i][j] = v.String()
		}
	}
	widths := make([]float64, numCols)
	for col, w := range StringColumnWidths(strs, numCols) {
		if w == 0 {
			widths[col] = DefaultColumnWidth
			continue
		}
		widths[col] = float64(min(w+ColumnWidthPadding, MaxColumnWidth))
	}
	return widths
}
