package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"digital.vasic.assertions/pkg/failure"
)

// Summary aggregates a run of soft assertions.
type Summary struct {
	ID          string                   `json:"id" yaml:"id"`
	GeneratedAt time.Time                `json:"generated_at" yaml:"generated_at"`
	Total       int                      `json:"total" yaml:"total"`
	ByKind      map[failure.Kind]int     `json:"by_kind" yaml:"by_kind"`
	ByCategory  map[failure.Category]int `json:"by_category" yaml:"by_category"`
	ByStrategy  map[string]int           `json:"by_strategy" yaml:"by_strategy"`
	Failures    []Entry                  `json:"failures" yaml:"failures"`
}

// Entry is a single failure with its operands already rendered.
type Entry struct {
	Kind        failure.Kind     `json:"kind" yaml:"kind"`
	Category    failure.Category `json:"category" yaml:"category"`
	Strategy    string           `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Actual      string           `json:"actual,omitempty" yaml:"actual,omitempty"`
	Expected    string           `json:"expected,omitempty" yaml:"expected,omitempty"`
	Offset      string           `json:"offset,omitempty" yaml:"offset,omitempty"`
	Message     string           `json:"message" yaml:"message"`
}

// BuildSummary creates a summary from assertion errors in report
// order. Operands are rendered with each error's own
// representation.
func BuildSummary(errs []*failure.AssertionError) *Summary {
	now := time.Now()
	summary := &Summary{
		ID:          fmt.Sprintf("assertions_%s", now.Format("20060102_150405")),
		GeneratedAt: now,
		ByKind:      make(map[failure.Kind]int),
		ByCategory:  make(map[failure.Category]int),
		ByStrategy:  make(map[string]int),
		Failures:    make([]Entry, 0, len(errs)),
	}

	for _, e := range errs {
		if e == nil {
			continue
		}
		d := e.Descriptor
		repr := e.Info.Repr()

		entry := Entry{
			Kind:        d.Kind,
			Category:    d.Kind.Category(),
			Strategy:    d.StrategyName(),
			Description: e.Info.Description,
			Message:     e.Message,
		}
		if d.Kind != failure.KindActualIsNull {
			entry.Actual = repr.ToString(d.Actual)
		}
		if d.Expected != nil {
			entry.Expected = repr.ToString(d.Expected)
		}
		if d.Offset != nil {
			entry.Offset = repr.ToString(d.Offset)
		}

		summary.Failures = append(summary.Failures, entry)
		summary.Total++
		summary.ByKind[entry.Kind]++
		summary.ByCategory[entry.Category]++
		if entry.Strategy != "" {
			summary.ByStrategy[entry.Strategy]++
		}
	}

	return summary
}

// FromCollector summarizes everything c has gathered so far.
func FromCollector(c *failure.Collector) *Summary {
	return BuildSummary(c.Errors())
}

// Kinds returns the failure kinds present in the summary, sorted.
func (s *Summary) Kinds() []failure.Kind {
	kinds := make([]failure.Kind, 0, len(s.ByKind))
	for k := range s.ByKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Save writes the summary once per reporter into outputDir and
// points latest_summary.<ext> at the newest file. Missing
// directories are created.
func Save(summary *Summary, outputDir string, reporters ...Reporter) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ts := summary.GeneratedAt.Format("20060102_150405")

	for _, r := range reporters {
		data, err := r.Generate(summary)
		if err != nil {
			return fmt.Errorf("failed to render %s summary: %w", r.Extension(), err)
		}

		name := fmt.Sprintf("assertion_summary_%s.%s", ts, r.Extension())
		path := filepath.Join(outputDir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s summary: %w", r.Extension(), err)
		}

		latest := filepath.Join(outputDir, "latest_summary."+r.Extension())
		_ = os.Remove(latest)
		_ = os.Symlink(name, latest)
	}

	return nil
}
