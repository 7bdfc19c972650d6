package exceltable

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	fs "github.com/ungerik/go-fs"
	"gopkg.in/yaml.v3"
)

// Config holds the presentation settings of exported workbooks.
// The zero value is not valid, start from DefaultConfig.
type Config struct {
	// Number format codes applied by the cell formatters
	CurrencyFormat   string `yaml:"currencyFormat"`
	PercentageFormat string `yaml:"percentageFormat"`
	DateFormat       string `yaml:"dateFormat"`
	NumberFormat     string `yaml:"numberFormat"`

	// Header row of data sheets
	HeaderFontColor string `yaml:"headerFontColor"`
	HeaderFillColor string `yaml:"headerFillColor"`

	// Section headings of the summary sheet
	HeadingFillColor string  `yaml:"headingFillColor"`
	HeadingFontSize  float64 `yaml:"headingFontSize"`

	// Summary sheet column widths
	LabelColumnWidth float64 `yaml:"labelColumnWidth"`
	ValueColumnWidth float64 `yaml:"valueColumnWidth"`

	// FreezeHeaderRow keeps the header row of data sheets visible
	FreezeHeaderRow bool `yaml:"freezeHeaderRow"`

	// SummaryDateLayout is the Go time layout used for
	// the reporting period dates rendered as text on the summary sheet.
	SummaryDateLayout string `yaml:"summaryDateLayout"`

	// TimestampLayout is the Go time layout of the generated timestamp.
	TimestampLayout string `yaml:"timestampLayout"`
}

// DefaultConfig returns the default presentation settings.
func DefaultConfig() Config {
	return Config{
		CurrencyFormat:    `"$"#,##0.00`,
		PercentageFormat:  `0.00%`,
		DateFormat:        `yyyy-mm-dd`,
		NumberFormat:      `#,##0.00`,
		HeaderFontColor:   "FFFFFF",
		HeaderFillColor:   "1F4E78",
		HeadingFillColor:  "E7E6E6",
		HeadingFontSize:   12,
		LabelColumnWidth:  25,
		ValueColumnWidth:  40,
		FreezeHeaderRow:   true,
		SummaryDateLayout: "1/2/2006",
		TimestampLayout:   "1/2/2006, 3:04:05 PM",
	}
}

// Validate returns an error if a setting
// would produce an invalid workbook.
func (c *Config) Validate() error {
	switch {
	case c == nil:
		return errors.New("<nil> exceltable.Config")
	case c.CurrencyFormat == "":
		return errors.New("missing exceltable.Config.CurrencyFormat")
	case c.PercentageFormat == "":
		return errors.New("missing exceltable.Config.PercentageFormat")
	case c.DateFormat == "":
		return errors.New("missing exceltable.Config.DateFormat")
	case c.NumberFormat == "":
		return errors.New("missing exceltable.Config.NumberFormat")
	case c.HeadingFontSize <= 0:
		return fmt.Errorf("invalid exceltable.Config.HeadingFontSize: %v", c.HeadingFontSize)
	case c.LabelColumnWidth <= 0 || c.LabelColumnWidth > 255:
		return fmt.Errorf("invalid exceltable.Config.LabelColumnWidth: %v", c.LabelColumnWidth)
	case c.ValueColumnWidth <= 0 || c.ValueColumnWidth > 255:
		return fmt.Errorf("invalid exceltable.Config.ValueColumnWidth: %v", c.ValueColumnWidth)
	case c.SummaryDateLayout == "":
		return errors.New("missing exceltable.Config.SummaryDateLayout")
	case c.TimestampLayout == "":
		return errors.New("missing exceltable.Config.TimestampLayout")
	}
	return nil
}

// format returns the number format code for f.
func (c *Config) format(f Format) string {
	switch f {
	case NumFmtCurrency:
		return c.CurrencyFormat
	case NumFmtPercentage:
		return c.PercentageFormat
	case NumFmtDate:
		return c.DateFormat
	case NumFmtNumber:
		return c.NumberFormat
	}
	return ""
}

// LoadConfig decodes YAML settings from r on top of DefaultConfig,
// so a document only needs to list the settings it changes.
func LoadConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&config)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("can't decode exceltable.Config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// LoadConfigFile is like LoadConfig but reads from a file.
func LoadConfigFile(file fs.FileReader) (Config, error) {
	data, err := file.ReadAll()
	if err != nil {
		return Config{}, err
	}
	return LoadConfig(bytes.NewReader(data))
}
