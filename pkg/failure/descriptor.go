package failure

import (
	"fmt"

	"digital.vasic.assertions/pkg/strategy"
)

// Descriptor is the structured record of one failed assertion. It
// keeps the operands as given so a renderer can show exactly what
// was compared. Strategy is nil when the standard strategy was
// used.
type Descriptor struct {
	Kind     Kind         `json:"kind"`
	Actual   any          `json:"actual,omitempty"`
	Expected any          `json:"expected,omitempty"`
	Offset   any          `json:"offset,omitempty"`
	Strategy fmt.Stringer `json:"-"`
}

// StrategyName returns the strategy name, or "" for the standard
// strategy.
func (d Descriptor) StrategyName() string {
	if d.Strategy == nil {
		return ""
	}
	return d.Strategy.String()
}

func custom(s fmt.Stringer) fmt.Stringer {
	if strategy.IsStandard(s) {
		return nil
	}
	return s
}

// ActualIsNull describes an absent actual value.
func ActualIsNull() Descriptor {
	return Descriptor{Kind: KindActualIsNull}
}

// ShouldBeEqual describes actual differing from expected.
func ShouldBeEqual(actual, expected any, s fmt.Stringer) Descriptor {
	return Descriptor{
		Kind: KindShouldBeEqual, Actual: actual,
		Expected: expected, Strategy: custom(s),
	}
}

// ShouldNotBeEqual describes actual equal to a value it should
// differ from.
func ShouldNotBeEqual(actual, other any, s fmt.Stringer) Descriptor {
	return Descriptor{
		Kind: KindShouldNotBeEqual, Actual: actual,
		Expected: other, Strategy: custom(s),
	}
}

// ShouldBeGreater describes actual not strictly above other.
func ShouldBeGreater(actual, other any, s fmt.Stringer) Descriptor {
	return Descriptor{
		Kind: KindShouldBeGreater, Actual: actual,
		Expected: other, Strategy: custom(s),
	}
}

// ShouldBeGreaterOrEqual describes actual below other.
func ShouldBeGreaterOrEqual(actual, other any, s fmt.Stringer) Descriptor {
	return Descriptor{
		Kind: KindShouldBeGreaterOrEqual, Actual: actual,
		Expected: other, Strategy: custom(s),
	}
}

// ShouldBeLess describes actual not strictly below other.
func ShouldBeLess(actual, other any, s fmt.Stringer) Descriptor {
	return Descriptor{
		Kind: KindShouldBeLess, Actual: actual,
		Expected: other, Strategy: custom(s),
	}
}

// ShouldBeLessOrEqual describes actual above other.
func ShouldBeLessOrEqual(actual, other any, s fmt.Stringer) Descriptor {
	return Descriptor{
		Kind: KindShouldBeLessOrEqual, Actual: actual,
		Expected: other, Strategy: custom(s),
	}
}

// ShouldBeCloseTo describes actual further than offset from
// expected.
func ShouldBeCloseTo(actual, expected, offset any) Descriptor {
	return Descriptor{
		Kind: KindShouldBeCloseTo, Actual: actual,
		Expected: expected, Offset: offset,
	}
}

// ShouldBeZero describes a non-zero actual.
func ShouldBeZero(actual any, s fmt.Stringer) Descriptor {
	return Descriptor{Kind: KindShouldBeZero, Actual: actual, Strategy: custom(s)}
}

// ShouldNotBeZero describes a zero actual.
func ShouldNotBeZero(actual any, s fmt.Stringer) Descriptor {
	return Descriptor{Kind: KindShouldNotBeZero, Actual: actual, Strategy: custom(s)}
}

// ShouldBePositive describes an actual not above zero.
func ShouldBePositive(actual any, s fmt.Stringer) Descriptor {
	return Descriptor{Kind: KindShouldBePositive, Actual: actual, Strategy: custom(s)}
}

// ShouldBeNegative describes an actual not below zero.
func ShouldBeNegative(actual any, s fmt.Stringer) Descriptor {
	return Descriptor{Kind: KindShouldBeNegative, Actual: actual, Strategy: custom(s)}
}

// ShouldBeNaN describes a number that is not NaN.
func ShouldBeNaN(actual any) Descriptor {
	return Descriptor{Kind: KindShouldBeNaN, Actual: actual}
}

// ShouldNotBeNaN describes a NaN.
func ShouldNotBeNaN(actual any) Descriptor {
	return Descriptor{Kind: KindShouldNotBeNaN, Actual: actual}
}

// ShouldBeReadable describes a handle that cannot be read.
func ShouldBeReadable(actual any) Descriptor {
	return Descriptor{Kind: KindShouldBeReadable, Actual: actual}
}

// ShouldBeWritable describes a handle that cannot be written.
func ShouldBeWritable(actual any) Descriptor {
	return Descriptor{Kind: KindShouldBeWritable, Actual: actual}
}

// ShouldExist describes a handle whose target is missing.
func ShouldExist(actual any) Descriptor {
	return Descriptor{Kind: KindShouldExist, Actual: actual}
}

// ShouldNotExist describes a handle whose target is present.
func ShouldNotExist(actual any) Descriptor {
	return Descriptor{Kind: KindShouldNotExist, Actual: actual}
}

// ShouldBeDirectory describes a handle that is not a directory.
func ShouldBeDirectory(actual any) Descriptor {
	return Descriptor{Kind: KindShouldBeDirectory, Actual: actual}
}

// ShouldBeFile describes a handle that is not a regular file.
func ShouldBeFile(actual any) Descriptor {
	return Descriptor{Kind: KindShouldBeFile, Actual: actual}
}
