package representation

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns a unified diff between the rendered expected and
// actual values. It returns an empty string when both fit on a
// single line, since the message already shows them side by side.
func Diff(expected, actual string) string {
	if !strings.Contains(expected, "\n") &&
		!strings.Contains(actual, "\n") {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  1,
	})
	if err != nil {
		return ""
	}

	return diff
}
