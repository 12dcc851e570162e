package report

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLReporter renders summaries as YAML.
type YAMLReporter struct {
	indent int
}

// NewYAMLReporter creates a YAML reporter. Non-positive indent
// uses two spaces.
func NewYAMLReporter(indent int) *YAMLReporter {
	if indent <= 0 {
		indent = 2
	}
	return &YAMLReporter{indent: indent}
}

// Generate renders the summary as YAML.
func (r *YAMLReporter) Generate(summary *Summary) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(r.indent)
	if err := enc.Encode(summary); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteReport writes a YAML summary to w.
func (r *YAMLReporter) WriteReport(w io.Writer, summary *Summary) error {
	return writeReport(r, w, summary)
}

// Extension returns "yaml".
func (r *YAMLReporter) Extension() string { return "yaml" }
