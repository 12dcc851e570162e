// Package decimals provides the value comparator for arbitrary
// precision decimals (github.com/shopspring/decimal).
package decimals

import (
	"github.com/shopspring/decimal"

	"digital.vasic.assertions/pkg/comparables"
	"digital.vasic.assertions/pkg/failure"
	"digital.vasic.assertions/pkg/strategy"
)

// Standard is the natural strategy for decimals. Equality is scale
// sensitive: 1.0 and 1.000 are different values. Ordering compares
// numeric value only, so neither of those two is greater.
type Standard struct {
	strategy.Natural
}

// Equal reports whether actual and other have the same coefficient
// and the same exponent.
func (Standard) Equal(actual, other decimal.Decimal) bool {
	return actual.Exponent() == other.Exponent() &&
		actual.Coefficient().Cmp(other.Coefficient()) == 0
}

// Greater reports whether actual is numerically above other.
func (Standard) Greater(actual, other decimal.Decimal) bool {
	return actual.Cmp(other) > 0
}

// NumericValue compares decimals by value and ignores scale.
var NumericValue = strategy.Comparing(
	"numeric value",
	func(a, b decimal.Decimal) int { return a.Cmp(b) },
)

// Decimals exposes the assertion verbs for decimal.Decimal.
type Decimals struct {
	comparables.Comparables[decimal.Decimal]
}

// New creates Decimals using the Standard strategy.
func New(failures failure.Reporter) *Decimals {
	return NewWithStrategy(failures, Standard{})
}

// NewWithStrategy creates Decimals using s.
func NewWithStrategy(
	failures failure.Reporter,
	s strategy.Strategy[decimal.Decimal],
) *Decimals {
	return &Decimals{
		Comparables: comparables.NewComparables[decimal.Decimal](s, failures),
	}
}

// AssertIsZero checks that actual equals zero under the strategy.
func (d *Decimals) AssertIsZero(
	info failure.Info,
	actual *decimal.Decimal,
) error {
	if actual == nil {
		return d.Failures().Failure(info, failure.ActualIsNull())
	}
	if d.zero(*actual) {
		return nil
	}
	return d.Failures().Failure(info,
		failure.ShouldBeZero(*actual, d.Strategy()))
}

// AssertIsNotZero checks that actual differs from zero under the
// strategy.
func (d *Decimals) AssertIsNotZero(
	info failure.Info,
	actual *decimal.Decimal,
) error {
	if actual == nil {
		return d.Failures().Failure(info, failure.ActualIsNull())
	}
	if !d.zero(*actual) {
		return nil
	}
	return d.Failures().Failure(info,
		failure.ShouldNotBeZero(*actual, d.Strategy()))
}

// AssertIsPositive checks that actual is greater than zero under
// the strategy.
func (d *Decimals) AssertIsPositive(
	info failure.Info,
	actual *decimal.Decimal,
) error {
	if actual == nil {
		return d.Failures().Failure(info, failure.ActualIsNull())
	}
	if d.Ordering().Greater(*actual, decimal.Zero) {
		return nil
	}
	return d.Failures().Failure(info,
		failure.ShouldBePositive(*actual, d.Ordering()))
}

// AssertIsNegative checks that actual is less than zero under the
// strategy.
func (d *Decimals) AssertIsNegative(
	info failure.Info,
	actual *decimal.Decimal,
) error {
	if actual == nil {
		return d.Failures().Failure(info, failure.ActualIsNull())
	}
	if d.Ordering().Greater(decimal.Zero, *actual) {
		return nil
	}
	return d.Failures().Failure(info,
		failure.ShouldBeNegative(*actual, d.Ordering()))
}

// AssertIsCloseTo checks that |actual - expected| <= offset. The
// strategy is not consulted. A negative offset is a caller error
// and yields an error wrapping failure.ErrInvalidArgument.
func (d *Decimals) AssertIsCloseTo(
	info failure.Info,
	actual *decimal.Decimal,
	expected, offset decimal.Decimal,
) error {
	if actual == nil {
		return d.Failures().Failure(info, failure.ActualIsNull())
	}
	if offset.IsNegative() {
		return failure.InvalidArgument(
			"offset %s must not be negative", offset,
		)
	}
	if actual.Sub(expected).Abs().Cmp(offset) <= 0 {
		return nil
	}
	return d.Failures().Failure(info,
		failure.ShouldBeCloseTo(*actual, expected, offset))
}

// zero compares against zero. The standard strategy is scale
// sensitive and decimal.Zero has its own exponent, so the standard
// case checks the value instead.
func (d *Decimals) zero(v decimal.Decimal) bool {
	if strategy.IsStandard(d.Strategy()) {
		return v.IsZero()
	}
	return d.Strategy().Equal(v, decimal.Zero)
}
