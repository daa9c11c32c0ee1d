package export

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type JSONExporter struct{}

func NewJSONExporter() Exporter {
	return &JSONExporter{}
}

func (e *JSONExporter) Name() string {
	return "json"
}

// Export writes a JSON array of {name, kind, value} objects. Booleans and
// integers keep their JSON types; absent values are null.
func (e *JSONExporter) Export(records []Record) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rows(records)); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return buf.Bytes(), nil
}
