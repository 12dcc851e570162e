package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownReporter_Generate(t *testing.T) {
	data, err := NewMarkdownReporter("Ledger checks").Generate(makeTestSummary(t))
	require.NoError(t, err)

	md := string(data)
	assert.True(t, strings.HasPrefix(md, "# Ledger checks\n"))
	assert.Contains(t, md, "## Statistics")
	assert.Contains(t, md, "| should_be_close_to | 1 |")
	assert.Contains(t, md, "| **Total** | 3 |")
	assert.Contains(t, md, "| absolute value | 1 |")
	assert.Contains(t, md, "| 3 |  | should_be_close_to | 1.5 | 1 |")
}

func TestMarkdownReporter_EscapesCells(t *testing.T) {
	data, err := NewMarkdownReporter("").Generate(makeTestSummary(t))
	require.NoError(t, err)

	assert.Contains(t, string(data), `delta \| sign`)
}

func TestMarkdownReporter_Empty(t *testing.T) {
	data, err := NewMarkdownReporter("").Generate(BuildSummary(nil))
	require.NoError(t, err)

	assert.Contains(t, string(data), "# Assertion Summary")
	assert.Contains(t, string(data), "No failed assertions.")
	assert.NotContains(t, string(data), "## Failures")
}
