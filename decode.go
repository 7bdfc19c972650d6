package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	fs "github.com/ungerik/go-fs"
	"gopkg.in/yaml.v3"
)

// DecodeReportData decodes a ReportData document
// from JSON if data starts with '{' or else from YAML.
// JSON dates of the date range must use RFC 3339,
// YAML also accepts plain "2006-01-02" timestamps.
func DecodeReportData(data []byte) (*ReportData, error) {
	var r ReportData
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&r); err != nil {
			return nil, fmt.Errorf("can't decode report data JSON: %w", err)
		}
		return &r, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("can't decode report data YAML: %w", err)
	}
	return &r, nil
}

// LoadReportData reads and decodes a ReportData document
// from a .json, .yaml or .yml file.
func LoadReportData(file fs.FileReader) (*ReportData, error) {
	data, err := file.ReadAll()
	if err != nil {
		return nil, err
	}
	switch ext := strings.ToLower(file.Ext()); ext {
	case ".json", ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("unsupported report data file extension %q", ext)
	}
	r, err := DecodeReportData(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.Name(), err)
	}
	return r, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
// Rows are decoded cell by cell because yaml.v3
// drops null elements of struct slices,
// which would shift the following cells of a row
// into the wrong columns.
// Unknown table fields are errors like with DecodeReportData.
func (t *TableData) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping for report.TableData", node.Line)
	}
	var table TableData
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		var err error
		switch key.Value {
		case "title":
			err = val.Decode(&table.Title)
		case "headers":
			err = val.Decode(&table.Headers)
		case "rows":
			table.Rows, err = decodeYAMLRows(val)
		default:
			err = fmt.Errorf("line %d: field %s not found in type report.TableData", key.Line, key.Value)
		}
		if err != nil {
			return err
		}
	}
	*t = table
	return nil
}

func decodeYAMLRows(node *yaml.Node) ([][]Value, error) {
	node = resolveAlias(node)
	if node.ShortTag() == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected sequence of rows", node.Line)
	}
	rows := make([][]Value, len(node.Content))
	for r, rowNode := range node.Content {
		rowNode = resolveAlias(rowNode)
		if rowNode.ShortTag() == "!!null" {
			continue
		}
		if rowNode.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("line %d: expected sequence of cells", rowNode.Line)
		}
		row := make([]Value, len(rowNode.Content))
		for c, cell := range rowNode.Content {
			if err := row[c].UnmarshalYAML(resolveAlias(cell)); err != nil {
				return nil, err
			}
		}
		rows[r] = row
	}
	return rows, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
