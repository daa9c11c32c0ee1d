package export

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

type TOMLExporter struct{}

func NewTOMLExporter() Exporter {
	return &TOMLExporter{}
}

func (e *TOMLExporter) Name() string {
	return "toml"
}

// Export writes one [[var]] table per record. TOML has no null, so absent
// values omit the value key.
func (e *TOMLExporter) Export(records []Record) ([]byte, error) {
	doc := struct {
		Vars []row `toml:"var"`
	}{Vars: rows(records)}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("encode toml: %w", err)
	}
	return buf.Bytes(), nil
}
