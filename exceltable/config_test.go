package exceltable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	fs "github.com/ungerik/go-fs"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())
	require.Equal(t, `"$"#,##0.00`, config.format(NumFmtCurrency))
	require.Equal(t, `0.00%`, config.format(NumFmtPercentage))
	require.Equal(t, `yyyy-mm-dd`, config.format(NumFmtDate))
	require.Equal(t, `#,##0.00`, config.format(NumFmtNumber))
	require.Equal(t, "", config.format(NumFmtNone))
}

func TestConfig_Validate(t *testing.T) {
	var nilConfig *Config
	require.Error(t, nilConfig.Validate())

	tests := []struct {
		testName string
		modify   func(*Config)
	}{
		{testName: "currency", modify: func(c *Config) { c.CurrencyFormat = "" }},
		{testName: "percentage", modify: func(c *Config) { c.PercentageFormat = "" }},
		{testName: "date", modify: func(c *Config) { c.DateFormat = "" }},
		{testName: "number", modify: func(c *Config) { c.NumberFormat = "" }},
		{testName: "font size", modify: func(c *Config) { c.HeadingFontSize = -1 }},
		{testName: "label width", modify: func(c *Config) { c.LabelColumnWidth = 300 }},
		{testName: "value width", modify: func(c *Config) { c.ValueColumnWidth = 0 }},
		{testName: "summary date layout", modify: func(c *Config) { c.SummaryDateLayout = "" }},
		{testName: "timestamp layout", modify: func(c *Config) { c.TimestampLayout = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			require.Error(t, config.Validate())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(strings.NewReader(`
currencyFormat: '"€"#,##0.00'
freezeHeaderRow: false
labelColumnWidth: 30
`))
	require.NoError(t, err)
	require.Equal(t, `"€"#,##0.00`, config.CurrencyFormat)
	require.False(t, config.FreezeHeaderRow)
	require.Equal(t, 30.0, config.LabelColumnWidth)
	require.Equal(t, DefaultConfig().PercentageFormat, config.PercentageFormat, "unset fields keep defaults")

	config, err = LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)

	_, err = LoadConfig(strings.NewReader("unknownSetting: 1\n"))
	require.Error(t, err)

	_, err = LoadConfig(strings.NewReader("headingFontSize: 0\n"))
	require.Error(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	file := fs.MemFile{FileName: "export.yaml", FileData: []byte("dateFormat: dd.mm.yyyy\n")}
	config, err := LoadConfigFile(file)
	require.NoError(t, err)
	require.Equal(t, "dd.mm.yyyy", config.DateFormat)
}
