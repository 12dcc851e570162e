package failure

import (
	"fmt"
	"strings"

	"digital.vasic.assertions/pkg/representation"
)

// phrases holds the expectation wording per kind. Kinds with an
// Expected operand read "Expecting <actual> <phrase> <expected>".
var phrases = map[Kind]string{
	KindShouldBeEqual:          "to be equal to",
	KindShouldNotBeEqual:       "not to be equal to",
	KindShouldBeGreater:        "to be greater than",
	KindShouldBeGreaterOrEqual: "to be greater than or equal to",
	KindShouldBeLess:           "to be less than",
	KindShouldBeLessOrEqual:    "to be less than or equal to",
	KindShouldBeCloseTo:        "to be close to",
	KindShouldBeZero:           "to be zero",
	KindShouldNotBeZero:        "not to be zero",
	KindShouldBePositive:       "to be positive",
	KindShouldBeNegative:       "to be negative",
	KindShouldBeNaN:            "to be NaN",
	KindShouldNotBeNaN:         "not to be NaN",
	KindShouldBeReadable:       "to be readable",
	KindShouldBeWritable:       "to be writable",
	KindShouldExist:            "to exist",
	KindShouldNotExist:         "not to exist",
	KindShouldBeDirectory:      "to be an existing directory",
	KindShouldBeFile:           "to be an existing file",
}

func hasOperand(k Kind) bool {
	switch k {
	case KindShouldBeEqual, KindShouldNotBeEqual,
		KindShouldBeGreater, KindShouldBeGreaterOrEqual,
		KindShouldBeLess, KindShouldBeLessOrEqual,
		KindShouldBeCloseTo:
		return true
	}
	return false
}

// Message renders the descriptor with repr. A nil repr uses the
// default representation. When diff is true and an equality
// failure renders to several lines, a unified diff is appended.
func (d Descriptor) Message(
	repr representation.Representation,
	diff bool,
) string {
	if repr == nil {
		repr = representation.Default()
	}

	if d.Kind == KindActualIsNull {
		return "\nExpecting actual not to be null"
	}

	var b strings.Builder
	actual := repr.ToString(d.Actual)
	fmt.Fprintf(&b, "\nExpecting:\n  <%s>\n%s", actual, phrases[d.Kind])

	var expected string
	if hasOperand(d.Kind) {
		expected = repr.ToString(d.Expected)
		fmt.Fprintf(&b, ":\n  <%s>", expected)
	}
	if d.Kind == KindShouldBeCloseTo {
		fmt.Fprintf(&b, "\nwithin offset <%s>", repr.ToString(d.Offset))
	}
	if name := d.StrategyName(); name != "" {
		fmt.Fprintf(&b, "\nwhen comparing values using '%s'", name)
	}
	if d.Kind == KindShouldBeEqual {
		b.WriteString("\nbut was not.")
		if diff {
			if out := representation.Diff(expected, actual); out != "" {
				b.WriteString("\n\nDiff:\n")
				b.WriteString(out)
			}
		}
	}

	return b.String()
}
