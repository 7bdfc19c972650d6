package report

import (
	"strings"
	"time"
	"unicode"
)

// TitleCase returns a display title for a report type tag
// by treating '-', '_' and whitespace as word separators
// and upper casing the first letter of every word:
// "financial-performance" becomes "Financial Performance".
func TitleCase(reportType string) string {
	return strings.Join(titleWords(reportType), " ")
}

func titleWords(s string) []string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return words
}

// Filename returns the suggested file name of an export
// in the form "{TitleCasedReportType}-{yyyy-MM-dd}.{ext}"
// where the words of the title are joined with '-'
// so the name contains no spaces:
// Filename("financial-performance", t, "xlsx")
// returns "Financial-Performance-2024-03-15.xlsx".
func Filename(reportType string, t time.Time, ext string) string {
	name := strings.Map(
		func(r rune) rune {
			if strings.ContainsRune(`\/:*?"<>|`, r) {
				return -1
			}
			return r
		},
		strings.Join(titleWords(reportType), "-"),
	)
	if name == "" {
		name = "Report"
	}
	return name + "-" + t.Format(time.DateOnly) + "." + strings.TrimPrefix(ext, ".")
}

// NormalizeReportType returns the lower case,
// space trimmed form of a report type tag
// as used for matching report type rules.
func NormalizeReportType(reportType string) string {
	return strings.ToLower(strings.TrimSpace(reportType))
}
