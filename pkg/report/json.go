package report

import (
	"encoding/json"
	"io"
)

var (
	jsonMarshal       = json.Marshal
	jsonMarshalIndent = json.MarshalIndent
)

// JSONReporter renders summaries as JSON.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

// Generate renders the summary as JSON.
func (r *JSONReporter) Generate(summary *Summary) ([]byte, error) {
	if r.pretty {
		return jsonMarshalIndent(summary, "", "  ")
	}
	return jsonMarshal(summary)
}

// WriteReport writes a JSON summary to w.
func (r *JSONReporter) WriteReport(w io.Writer, summary *Summary) error {
	return writeReport(r, w, summary)
}

// Extension returns "json".
func (r *JSONReporter) Extension() string { return "json" }
