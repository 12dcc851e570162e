package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// MarkdownReporter renders summaries as Markdown tables.
type MarkdownReporter struct {
	title string
}

// NewMarkdownReporter creates a Markdown reporter. An empty title
// uses "Assertion Summary".
func NewMarkdownReporter(title string) *MarkdownReporter {
	if title == "" {
		title = "Assertion Summary"
	}
	return &MarkdownReporter{title: title}
}

// Generate renders the summary as Markdown.
func (r *MarkdownReporter) Generate(summary *Summary) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", r.title))
	sb.WriteString(fmt.Sprintf("**Summary ID:** %s\n\n", summary.ID))
	sb.WriteString(fmt.Sprintf(
		"**Generated:** %s\n\n",
		summary.GeneratedAt.Format(time.RFC3339),
	))

	if summary.Total == 0 {
		sb.WriteString("No failed assertions.\n")
		return []byte(sb.String()), nil
	}

	sb.WriteString("## Statistics\n\n")
	sb.WriteString("| Kind | Count |\n")
	sb.WriteString("|------|-------|\n")
	for _, k := range summary.Kinds() {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", k, summary.ByKind[k]))
	}
	sb.WriteString(fmt.Sprintf("| **Total** | %d |\n", summary.Total))

	if len(summary.ByStrategy) > 0 {
		names := make([]string, 0, len(summary.ByStrategy))
		for name := range summary.ByStrategy {
			names = append(names, name)
		}
		sort.Strings(names)

		sb.WriteString("\n## Strategies\n\n")
		sb.WriteString("| Strategy | Count |\n")
		sb.WriteString("|----------|-------|\n")
		for _, name := range names {
			sb.WriteString(fmt.Sprintf(
				"| %s | %d |\n", escapeCell(name), summary.ByStrategy[name],
			))
		}
	}

	sb.WriteString("\n## Failures\n\n")
	sb.WriteString("| # | Description | Kind | Actual | Expected |\n")
	sb.WriteString("|---|-------------|------|--------|----------|\n")
	for i, e := range summary.Failures {
		sb.WriteString(fmt.Sprintf(
			"| %d | %s | %s | %s | %s |\n",
			i+1, escapeCell(e.Description), e.Kind,
			escapeCell(e.Actual), escapeCell(e.Expected),
		))
	}

	return []byte(sb.String()), nil
}

// WriteReport writes a Markdown summary to w.
func (r *MarkdownReporter) WriteReport(w io.Writer, summary *Summary) error {
	return writeReport(r, w, summary)
}

// Extension returns "md".
func (r *MarkdownReporter) Extension() string { return "md" }

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
