package exceltable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-report"
)

// Bytes serializes the workbook as XLSX document.
// Errors wrap report.ErrSerialization.
func (wb *Workbook) Bytes(config *Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := wb.Write(&buf, config); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes the workbook as XLSX document to dest.
// Nothing is written to dest if building the document fails.
// Errors wrap report.ErrSerialization.
func (wb *Workbook) Write(dest io.Writer, config *Config) (err error) {
	if len(wb.sheets) == 0 {
		return fmt.Errorf("%w: %w", report.ErrSerialization, ErrNoSheets)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("%w: %w", report.ErrSerialization, err)
	}
	if err := wb.checkSheetNames(); err != nil {
		return fmt.Errorf("%w: %w", report.ErrSerialization, err)
	}

	f := excelize.NewFile()
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	buf, err := wb.build(f, config)
	if err != nil {
		return fmt.Errorf("%w: %w", report.ErrSerialization, err)
	}
	if _, err := buf.WriteTo(dest); err != nil {
		return fmt.Errorf("%w: %w", report.ErrSerialization, err)
	}
	return nil
}

// checkSheetNames guards against sheets added twice
// or renamed after they were added.
func (wb *Workbook) checkSheetNames() error {
	seen := make(map[string]bool, len(wb.sheets))
	for _, sheet := range wb.sheets {
		key := strings.ToLower(sheet.name)
		if seen[key] {
			return fmt.Errorf("%w: %q", ErrDuplicateSheet, sheet.name)
		}
		seen[key] = true
	}
	return nil
}

func (wb *Workbook) build(f *excelize.File, config *Config) (*bytes.Buffer, error) {
	err := f.SetDocProps(&excelize.DocProperties{
		Title:          wb.Props.Title,
		Subject:        wb.Props.Subject,
		Creator:        wb.Props.Creator,
		LastModifiedBy: wb.Props.Creator,
		Keywords:       wb.Props.Keywords,
		Description:    wb.Props.Description,
		Created:        wb.Props.Created,
		Modified:       wb.Props.Created,
	})
	if err != nil {
		return nil, err
	}

	styles := newStyleCache(f, config)
	// A new file always contains one default sheet
	// that is renamed to the first sheet of the workbook
	defaultSheet := f.GetSheetName(0)
	for i, sheet := range wb.sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet.name); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return nil, err
			}
		}
		if err := writeSheet(f, sheet, styles); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet.name, err)
		}
	}
	f.SetActiveSheet(0)

	return f.WriteToBuffer()
}

func writeSheet(f *excelize.File, sheet *Sheet, styles *styleCache) error {
	for r, row := range sheet.rows {
		if len(row) == 0 {
			continue
		}
		values := make([]any, len(row))
		for c, cell := range row {
			values[c] = cell.Value.Interface()
		}
		rowStart, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet.name, rowStart, &values); err != nil {
			return err
		}
		for c, cell := range row {
			if cell.Style == StyleNone && cell.Format == NumFmtNone {
				continue
			}
			styleID, err := styles.get(cell.Style, cell.Format)
			if err != nil {
				return err
			}
			addr, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet.name, addr, addr, styleID); err != nil {
				return err
			}
		}
	}
	for c, width := range sheet.colWidths {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.name, col, col, width); err != nil {
			return err
		}
	}
	if sheet.freezeHeader && len(sheet.rows) > 1 {
		err := f.SetPanes(sheet.name, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		})
		if err != nil {
			return err
		}
	}
	return nil
}

type styleKey struct {
	style  Style
	format Format
}

// styleCache creates every combination of Style and Format
// only once per document.
type styleCache struct {
	file   *excelize.File
	config *Config
	ids    map[styleKey]int
}

func newStyleCache(file *excelize.File, config *Config) *styleCache {
	return &styleCache{
		file:   file,
		config: config,
		ids:    make(map[styleKey]int),
	}
}

func (c *styleCache) get(style Style, format Format) (int, error) {
	key := styleKey{style, format}
	if id, ok := c.ids[key]; ok {
		return id, nil
	}
	id, err := c.file.NewStyle(c.excelStyle(style, format))
	if err != nil {
		return 0, err
	}
	c.ids[key] = id
	return id, nil
}

func (c *styleCache) excelStyle(style Style, format Format) *excelize.Style {
	s := new(excelize.Style)
	switch style {
	case StyleHeader:
		s.Font = &excelize.Font{Bold: true, Color: c.config.HeaderFontColor}
		s.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{c.config.HeaderFillColor}}
		s.Alignment = &excelize.Alignment{Vertical: "center"}
	case StyleHeading:
		s.Font = &excelize.Font{Bold: true, Size: c.config.HeadingFontSize}
		s.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{c.config.HeadingFillColor}}
	case StyleLabel:
		s.Font = &excelize.Font{Bold: true}
	}
	if numFmt := c.config.format(format); numFmt != "" {
		s.CustomNumFmt = &numFmt
	}
	return s
}
