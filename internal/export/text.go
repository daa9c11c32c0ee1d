package export

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

type TextExporter struct{}

func NewTextExporter() Exporter {
	return &TextExporter{}
}

func (e *TextExporter) Name() string {
	return "text"
}

// Export writes aligned NAME KIND VALUE columns. Documented variables are
// marked with "*" after the kind.
func (e *TextExporter) Export(records []Record) ([]byte, error) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	for _, r := range records {
		kind := r.Value.Kind().String()
		if r.Documented() {
			kind += "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, kind, r.DisplayString())
	}
	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("write text: %w", err)
	}
	return buf.Bytes(), nil
}
