package csvtable

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/domonda/go-types/charset"

	"github.com/domonda/go-report"
)

// Encoder is an interface to encode byte strings.
type Encoder interface {
	Bytes([]byte) ([]byte, error)
}

// EncoderFunc implements the Encoder interface for a function.
type EncoderFunc func([]byte) ([]byte, error)

func (f EncoderFunc) Bytes(data []byte) ([]byte, error) {
	return f(data)
}

// PassthroughEncoder returns an Encoder that returns the passed data unchanged.
func PassthroughEncoder() Encoder {
	return EncoderFunc(func(data []byte) ([]byte, error) {
		return data, nil
	})
}

// CellFormatter formats a cell value as string.
// The raw result indicates that the string
// must be written without quoting or escaping.
type CellFormatter func(value report.Value) (str string, raw bool)

// utf8BOM is written before the first row if enabled
// so that spreadsheet applications detect UTF-8.
const utf8BOM = "\uFEFF"

// Writer writes views as delimiter separated text.
// The zero value is not usable, use NewWriter.
// A Writer is immutable, the With methods return modified copies.
type Writer struct {
	columnFormatters map[int]CellFormatter
	headerRow        bool
	quoteAllFields   bool
	quoteEmptyFields bool
	escapeQuotes     string
	nilValue         string
	delimiter        rune
	newLine          string
	encoder          Encoder
	utf8BOM          bool
}

// NewWriter returns a Writer for RFC 4180 CSV:
// comma delimiter, "\r\n" new lines, a header row,
// doubled quotes and UTF-8 without byte order mark.
func NewWriter() *Writer {
	return &Writer{
		columnFormatters: make(map[int]CellFormatter),
		headerRow:        true,
		quoteAllFields:   false,
		quoteEmptyFields: false,
		escapeQuotes:     `""`,
		nilValue:         "",
		delimiter:        ',',
		newLine:          "\r\n",
		encoder:          nil,
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WriteView writes the view to dest formatted as CSV.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view report.View) error {
	if w.utf8BOM {
		if _, err := io.WriteString(dest, utf8BOM); err != nil {
			return err
		}
	}
	if w.headerRow {
		err := w.writeView(ctx, dest, report.NewHeaderViewFrom(view), true)
		if err != nil {
			return err
		}
	}
	return w.writeView(ctx, dest, view, false)
}

// WriteTable writes table to dest formatted as CSV.
func (w *Writer) WriteTable(ctx context.Context, dest io.Writer, table *report.TableData) error {
	return w.WriteView(ctx, dest, report.NewView(table))
}

func (w *Writer) writeView(ctx context.Context, dest io.Writer, view report.View, isHeader bool) error {
	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := w.writeRow(rowBuf, view, row, isHeader)
		if err != nil {
			return err
		}
		_, err = dest.Write(rowBuf.Bytes())
		if err != nil {
			return err
		}
		rowBuf.Reset()
	}
	return nil
}

func (w *Writer) writeRow(rowBuf *bytes.Buffer, view report.View, row int, isHeader bool) error {
	for col := range view.Columns() {
		if col > 0 {
			rowBuf.WriteRune(w.delimiter)
		}
		rowBuf.WriteString(w.cellString(view.Cell(row, col), col, isHeader))
	}
	rowBuf.WriteString(w.newLine)

	if w.encoder == nil {
		return nil
	}

	// Read, encode, and write back the buffered row
	encoded, err := w.encoder.Bytes(rowBuf.Bytes())
	if err != nil {
		return err
	}
	rowBuf.Reset()
	_, err = rowBuf.Write(encoded)
	return err
}

func (w *Writer) cellString(value report.Value, col int, isHeader bool) string {
	if !isHeader {
		if colFormatter, ok := w.columnFormatters[col]; ok {
			str, isRaw := colFormatter(value)
			return w.escapeString(str, isRaw)
		}
	}
	if value.IsEmpty() {
		return w.escapeString(w.nilValue, false)
	}
	return w.escapeString(value.String(), false)
}

// escapeString quotes fields containing the delimiter,
// a quote or a line break and doubles contained quotes.
func (w *Writer) escapeString(str string, isRaw bool) string {
	if isRaw {
		return str
	}
	switch {
	case w.quoteAllFields || strings.ContainsRune(str, w.delimiter) || strings.ContainsAny(str, "\"\r\n"):
		return `"` + strings.ReplaceAll(str, `"`, w.escapeQuotes) + `"`
	case w.quoteEmptyFields && str == "":
		return `""`
	}
	return str
}

// ViewStrings returns the view formatted as a slice of string slices
// including the header row if enabled, without any quoting.
func (w *Writer) ViewStrings(view report.View) [][]string {
	rows := report.ViewStrings(view, w.headerRow)
	if len(w.columnFormatters) == 0 {
		return rows
	}
	first := 0
	if w.headerRow {
		first = 1
	}
	for r := first; r < len(rows); r++ {
		for col, f := range w.columnFormatters {
			if col < len(rows[r]) {
				rows[r][col], _ = f(view.Cell(r-first, col))
			}
		}
	}
	return rows
}

func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithColumnFormatter returns a new writer with the passed formatter registered for columnIndex.
// If nil is passed as formatter, then a previous registered column formatter is removed.
func (w *Writer) WithColumnFormatter(columnIndex int, formatter CellFormatter) *Writer {
	mod := w.clone()
	mod.columnFormatters = make(map[int]CellFormatter)
	for key, val := range w.columnFormatters {
		mod.columnFormatters[key] = val
	}
	if formatter != nil {
		mod.columnFormatters[columnIndex] = formatter
	} else {
		delete(mod.columnFormatters, columnIndex)
	}
	return mod
}

func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

func (w *Writer) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer {
	mod := w.clone()
	mod.quoteEmptyFields = quoteEmptyFields
	return mod
}

func (w *Writer) WithNilValue(nilValue string) *Writer {
	mod := w.clone()
	mod.nilValue = nilValue
	return mod
}

func (w *Writer) WithEscapeQuotes(escapeQuotes string) *Writer {
	mod := w.clone()
	mod.escapeQuotes = escapeQuotes
	return mod
}

func (w *Writer) WithDelimiter(delimiter rune) *Writer {
	mod := w.clone()
	mod.delimiter = delimiter
	return mod
}

func (w *Writer) WithNewLine(newLine string) *Writer {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}

func (w *Writer) WithEncoder(encoder Encoder) *Writer {
	mod := w.clone()
	mod.encoder = encoder
	return mod
}

// WithUTF8BOM returns a new writer that starts the output
// with a UTF-8 byte order mark. Only use it without
// an encoder to another charset.
func (w *Writer) WithUTF8BOM(bom bool) *Writer {
	mod := w.clone()
	mod.utf8BOM = bom
	return mod
}

// WithFormat returns a new writer using the separator, newline
// and encoding of format.
func (w *Writer) WithFormat(format *Format) (*Writer, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	delimiter, _ := utf8.DecodeRuneInString(format.Separator)
	mod := w.WithDelimiter(delimiter).WithNewLine(format.Newline)
	if isUTF8(format.Encoding) {
		mod.encoder = nil
		return mod, nil
	}
	enc, err := charset.GetEncoding(format.Encoding)
	if err != nil {
		return nil, fmt.Errorf("csv.Format.Encoding: %w", err)
	}
	mod.encoder = EncoderFunc(enc.Encode)
	mod.utf8BOM = false
	return mod, nil
}

func (w *Writer) HeaderRow() bool { return w.headerRow }

func (w *Writer) QuoteAllFields() bool {
	return w.quoteAllFields
}

func (w *Writer) QuoteEmptyFields() bool {
	return w.quoteEmptyFields
}

func (w *Writer) Delimiter() rune {
	return w.delimiter
}

func (w *Writer) EscapeQuotes() string {
	return w.escapeQuotes
}

func (w *Writer) NilValue() string {
	return w.nilValue
}

func (w *Writer) NewLine() string {
	return w.newLine
}

func (w *Writer) Encoder() Encoder {
	return w.encoder
}
