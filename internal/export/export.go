// Package export renders snapshot records in text, JSON, YAML and TOML.
package export

import (
	"fmt"
	"slices"

	"github.com/unrss/shenv/internal/value"
)

// Record is one variable prepared for output.
type Record struct {
	Name       string
	Value      value.Value
	Categories []string
	// Masked is set when the value must not be shown verbatim.
	Masked bool
}

// Documented reports whether any catalogue category declares the variable.
func (r Record) Documented() bool {
	return len(r.Categories) > 0
}

// Display returns the value as it should be printed: a bool, an int64, a
// string, or nil for absent values. Masked values are always strings.
func (r Record) Display() any {
	if r.Masked {
		return mask(r.Value.Raw())
	}
	if u, ok := r.Value.URL(); ok {
		return u.Redacted()
	}
	return r.Value.Scalar()
}

// DisplayString is Display rendered as text.
func (r Record) DisplayString() string {
	v := r.Display()
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Exporter renders records in a single format.
type Exporter interface {
	// Export converts records to the target format.
	Export(records []Record) ([]byte, error)

	// Name returns the format name (e.g., "json", "yaml").
	Name() string
}

// New returns the exporter for format.
func New(format string) (Exporter, error) {
	switch format {
	case "text", "":
		return NewTextExporter(), nil
	case "json":
		return NewJSONExporter(), nil
	case "yaml":
		return NewYAMLExporter(), nil
	case "toml":
		return NewTOMLExporter(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// row is the structured form shared by the machine-readable exporters.
type row struct {
	Name       string   `json:"name" yaml:"name" toml:"name"`
	Kind       string   `json:"kind" yaml:"kind" toml:"kind"`
	Value      any      `json:"value" yaml:"value" toml:"value,omitempty"`
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty" toml:"categories,omitempty"`
	Masked     bool     `json:"masked,omitempty" yaml:"masked,omitempty" toml:"masked,omitempty"`
}

func rows(records []Record) []row {
	out := make([]row, 0, len(records))
	for _, r := range records {
		out = append(out, row{
			Name:       r.Name,
			Kind:       r.Value.Kind().String(),
			Value:      r.Display(),
			Categories: slices.Clone(r.Categories),
			Masked:     r.Masked,
		})
	}
	return out
}
