// Package report renders failures gathered by a failure.Collector
// as JSON, YAML, or Markdown summaries.
package report

import "io"

// Reporter defines the interface for rendering failure summaries.
type Reporter interface {
	// Generate renders the summary.
	Generate(summary *Summary) ([]byte, error)

	// WriteReport writes the rendered summary to w.
	WriteReport(w io.Writer, summary *Summary) error

	// Extension is the file extension used by Save, without the
	// leading dot.
	Extension() string
}

func writeReport(r Reporter, w io.Writer, summary *Summary) error {
	data, err := r.Generate(summary)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
