package exceltable

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxSheetNameLength is the maximum number of characters
// of a sheet name in a spreadsheet document.
const MaxSheetNameLength = 31

// DocProps is the document metadata of a workbook.
type DocProps struct {
	Title       string
	Subject     string
	Creator     string
	Keywords    string
	Description string
	Created     string
}

// Workbook is an ordered list of uniquely named sheets
// plus document metadata.
// Sheets are only converted to a spreadsheet document
// by Write or Bytes.
type Workbook struct {
	Props  DocProps
	sheets []*Sheet
}

func NewWorkbook(props DocProps) *Workbook {
	return &Workbook{Props: props}
}

// Sheets returns the sheets in document order.
// The returned slice must not be modified.
func (wb *Workbook) Sheets() []*Sheet { return wb.sheets }

// SheetNames returns the names of the sheets in document order.
func (wb *Workbook) SheetNames() []string {
	names := make([]string, len(wb.sheets))
	for i, s := range wb.sheets {
		names[i] = s.name
	}
	return names
}

// Sheet returns the sheet with the passed name or nil.
func (wb *Workbook) Sheet(name string) *Sheet {
	for _, s := range wb.sheets {
		if strings.EqualFold(s.name, name) {
			return s
		}
	}
	return nil
}

// AddSheet appends sheet to the workbook.
// The name of the sheet is sanitized with SanitizeSheetName
// and made unique by appending a "_2", "_3", ... suffix
// while keeping it at MaxSheetNameLength characters.
// Returns the final sheet name.
func (wb *Workbook) AddSheet(sheet *Sheet) string {
	return wb.InsertSheet(len(wb.sheets), sheet)
}

// InsertSheet is like AddSheet but inserts the sheet
// at index, where 0 makes it the first sheet.
func (wb *Workbook) InsertSheet(index int, sheet *Sheet) string {
	index = max(0, min(index, len(wb.sheets)))
	sheet.name = wb.uniqueSheetName(SanitizeSheetName(sheet.name))
	wb.sheets = append(wb.sheets, nil)
	copy(wb.sheets[index+1:], wb.sheets[index:])
	wb.sheets[index] = sheet
	return sheet.name
}

func (wb *Workbook) uniqueSheetName(base string) string {
	name := base
	for n := 2; wb.Sheet(name) != nil; n++ {
		suffix := fmt.Sprintf("_%d", n)
		name = truncateRunes(base, MaxSheetNameLength-len(suffix)) + suffix
	}
	return name
}

// SanitizeSheetName returns a valid sheet name for name
// by replacing the characters \ / ? * [ ] : and control characters
// with spaces, collapsing whitespace, removing leading and trailing
// apostrophes and truncating to MaxSheetNameLength characters.
// An empty result is replaced by "Sheet".
func SanitizeSheetName(name string) string {
	name = strings.Map(
		func(r rune) rune {
			switch r {
			case '\\', '/', '?', '*', '[', ']', ':':
				return ' '
			}
			if r < ' ' {
				return ' '
			}
			return r
		},
		name,
	)
	name = strings.Join(strings.Fields(name), " ")
	name = strings.Trim(name, "'")
	name = strings.TrimSpace(truncateRunes(name, MaxSheetNameLength))
	name = strings.TrimRight(name, "'")
	if name == "" {
		return "Sheet"
	}
	return name
}

func truncateRunes(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	return string([]rune(s)[:maxRunes])
}
