// Package csvtable writes report tables as delimiter separated text
// with RFC 4180 quoting and optional re-encoding
// of the UTF-8 output to other charsets.
package csvtable

import (
	"errors"
	"fmt"
	"strings"
)

// Format is the encoding and structure of written CSV files.
type Format struct {
	// Encoding of the output, like "UTF-8", "UTF-16LE",
	// "ISO 8859-1", "Windows 1252" or "Macintosh"
	Encoding string `json:"encoding" yaml:"encoding"`

	// Separator is the single character field delimiter
	Separator string `json:"separator" yaml:"separator"`

	// Newline is one of "\n", "\r\n" or "\n\r"
	Newline string `json:"newline" yaml:"newline"`
}

// DefaultFormat is RFC 4180 CSV: UTF-8, comma separated, CRLF line endings.
var DefaultFormat = NewFormat(",")

// NewFormat returns a UTF-8 Format with "\r\n" line endings
// and the passed separator.
func NewFormat(separator string) *Format {
	return &Format{
		Encoding:  "UTF-8",
		Separator: separator,
		Newline:   "\r\n",
	}
}

// Validate can be called on a nil receiver.
func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("<nil> csv.Format")
	case f.Encoding == "":
		return errors.New("missing csv.Format.Encoding")
	case f.Separator == "":
		return errors.New("missing csv.Format.Separator")
	case len(f.Separator) > 1:
		return fmt.Errorf("invalid csv.Format.Separator: %q", f.Separator)
	case f.Newline == "":
		return errors.New("missing csv.Format.Newline")
	case f.Newline != "\n" && f.Newline != "\n\r" && f.Newline != "\r\n":
		return fmt.Errorf("invalid csv.Format.Newline: %q", f.Newline)
	}
	return nil
}

func isUTF8(encoding string) bool {
	switch strings.ToUpper(strings.ReplaceAll(encoding, " ", "")) {
	case "UTF-8", "UTF8":
		return true
	}
	return false
}
