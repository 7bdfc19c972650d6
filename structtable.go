package report

import (
	"fmt"
	"go/token"
	"reflect"
	"strings"
	"unicode"
)

// StructFieldNaming defines how struct fields
// are mapped to column headers by NewStructTable.
//
// nil is a valid value for *StructFieldNaming
// and uses all exported struct fields
// with their field name as header.
type StructFieldNaming struct {
	// Tag is the struct field tag to be used as header.
	// If Tag is empty, then every struct field will be treated as untagged.
	Tag string
	// Ignore is the tag value of fields that are not exported as column
	Ignore string
	// Untagged will be called with the struct field name to
	// return a header in case the struct field has no tag named Tag.
	// If Untagged is nil, then the struct field name will be used.
	Untagged func(fieldName string) (header string)
}

// DefaultStructFieldNaming uses the "report" struct tag
// and spaces PascalCase names of untagged fields,
// so a field TotalRevenue becomes the header "Total Revenue"
// which the column detectors of the export formats can match.
var DefaultStructFieldNaming = StructFieldNaming{
	Tag:      "report",
	Ignore:   "-",
	Untagged: SpacePascalCase,
}

func (n *StructFieldNaming) String() string {
	if n == nil {
		return `StructFieldNaming{Tag: "", Ignore: ""}`
	}
	return fmt.Sprintf("StructFieldNaming{Tag: %#v, Ignore: %#v}", n.Tag, n.Ignore)
}

// StructFieldHeader returns the header for a struct field.
func (n *StructFieldNaming) StructFieldHeader(structField reflect.StructField) string {
	if n == nil {
		return structField.Name
	}
	if n.Tag != "" {
		if tag, ok := structField.Tag.Lookup(n.Tag); ok {
			if i := strings.IndexByte(tag, ','); i != -1 {
				tag = tag[:i]
			}
			if tag != "" {
				return tag
			}
		}
	}
	if n.Untagged == nil {
		return structField.Name
	}
	return n.Untagged(structField.Name)
}

func (n *StructFieldNaming) isIgnored(header string) bool {
	return n != nil && n.Ignore != "" && header == n.Ignore
}

// Headers returns the headers of the exported fields of strct
// which can be a struct, a pointer to a struct or a reflect.Type of them.
func (n *StructFieldNaming) Headers(strct any) []string {
	t, ok := strct.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(strct)
	}
	headers := make([]string, 0)
	for _, field := range StructFieldTypes(t) {
		if header := n.StructFieldHeader(field); !n.isIgnored(header) {
			headers = append(headers, header)
		}
	}
	return headers
}

// NewStructTable returns a TableData with one row per element
// of rows which must be a slice or array of structs or struct pointers.
// Headers are derived from the struct fields with naming,
// field values are converted with ValueOf.
// Nil struct pointers result in rows of empty values.
func NewStructTable(title string, rows any, naming *StructFieldNaming) (TableData, error) {
	v := reflect.ValueOf(rows)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return TableData{}, fmt.Errorf("expected slice or array of structs, got %T", rows)
	}
	structType := v.Type().Elem()
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return TableData{}, fmt.Errorf("expected slice or array of structs, got %T", rows)
	}

	fields := StructFieldTypes(structType)
	include := make([]bool, len(fields))
	table := TableData{
		Title:   title,
		Headers: make([]string, 0, len(fields)),
		Rows:    make([][]Value, v.Len()),
	}
	for i, field := range fields {
		header := naming.StructFieldHeader(field)
		include[i] = !naming.isIgnored(header)
		if include[i] {
			table.Headers = append(table.Headers, header)
		}
	}

	for r := range table.Rows {
		row := make([]Value, 0, len(table.Headers))
		elem := v.Index(r)
		if elem.Kind() == reflect.Pointer && elem.IsNil() {
			table.Rows[r] = make([]Value, len(table.Headers))
			continue
		}
		for i, field := range StructFieldValues(elem) {
			if include[i] {
				row = append(row, ValueOf(field.Interface()))
			}
		}
		table.Rows[r] = row
	}
	return table, nil
}

// StructFieldTypes returns the exported fields of a struct type
// including the inlined fields of any anonymously embedded structs.
func StructFieldTypes(structType reflect.Type) (fields []reflect.StructField) {
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		switch {
		case field.Anonymous && field.Type.Kind() == reflect.Struct:
			fields = append(fields, StructFieldTypes(field.Type)...)
		case token.IsExported(field.Name):
			fields = append(fields, field)
		}
	}
	return fields
}

// StructFieldValues returns the reflect.Value of exported struct fields
// including the inlined fields of any anonymously embedded structs
// in the same order as StructFieldTypes.
func StructFieldValues(structValue reflect.Value) (values []reflect.Value) {
	if structValue.Kind() == reflect.Pointer {
		structValue = structValue.Elem()
	}
	structType := structValue.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		switch {
		case field.Anonymous && field.Type.Kind() == reflect.Struct:
			values = append(values, StructFieldValues(structValue.Field(i))...)
		case token.IsExported(field.Name):
			values = append(values, structValue.Field(i))
		}
	}
	return values
}

// SpacePascalCase inserts spaces before upper case
// characters within PascalCase like names.
// It also replaces underscore '_' characters with spaces.
func SpacePascalCase(name string) string {
	b := strings.Builder{}
	b.Grow(len(name) + 4)
	lastWasUpper := true
	lastWasSpace := true
	for _, r := range name {
		if r == '_' {
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasUpper = false
			lastWasSpace = true
			continue
		}
		isUpper := unicode.IsUpper(r)
		if isUpper && !lastWasUpper && !lastWasSpace {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		lastWasUpper = isUpper
		lastWasSpace = unicode.IsSpace(r)
	}
	return strings.TrimSpace(b.String())
}
