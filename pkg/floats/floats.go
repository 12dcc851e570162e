// Package floats provides the value comparator for floating-point
// numbers.
package floats

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"

	"digital.vasic.assertions/pkg/comparables"
	"digital.vasic.assertions/pkg/failure"
	"digital.vasic.assertions/pkg/strategy"
)

// Floats exposes the assertion verbs for one float type. The
// standard strategy is strategy.Ordered, under which -0.0 equals 0.0
// and NaN equals NaN; supply a comparator strategy to tell signed
// zeros apart.
type Floats[T constraints.Float] struct {
	comparables.Comparables[T]
}

// New creates Floats using the standard ordering.
func New[T constraints.Float](failures failure.Reporter) *Floats[T] {
	return NewWithStrategy[T](failures, strategy.Ordered[T]{})
}

// NewWithStrategy creates Floats using s.
func NewWithStrategy[T constraints.Float](
	failures failure.Reporter,
	s strategy.Strategy[T],
) *Floats[T] {
	return &Floats[T]{
		Comparables: comparables.NewComparables[T](s, failures),
	}
}

// AbsValue returns a strategy that compares absolute values, so
// 6 and -6 are equal.
func AbsValue[T constraints.Float]() *strategy.ComparatorBased[T] {
	return strategy.Comparing("absolute value", func(a, b T) int {
		return cmp.Compare(
			T(math.Abs(float64(a))), T(math.Abs(float64(b))),
		)
	})
}

// AssertIsNaN checks that actual is NaN.
func (f *Floats[T]) AssertIsNaN(info failure.Info, actual *T) error {
	if actual == nil {
		return f.Failures().Failure(info, failure.ActualIsNull())
	}
	if isNaN(*actual) {
		return nil
	}
	return f.Failures().Failure(info, failure.ShouldBeNaN(*actual))
}

// AssertIsNotNaN checks that actual is not NaN.
func (f *Floats[T]) AssertIsNotNaN(info failure.Info, actual *T) error {
	if actual == nil {
		return f.Failures().Failure(info, failure.ActualIsNull())
	}
	if !isNaN(*actual) {
		return nil
	}
	return f.Failures().Failure(info, failure.ShouldNotBeNaN(*actual))
}

// AssertIsCloseTo checks that |actual - expected| <= offset, or
// that both are the same infinity. The strategy is not consulted. A negative or NaN offset yields an
// error wrapping failure.ErrInvalidArgument.
func (f *Floats[T]) AssertIsCloseTo(
	info failure.Info,
	actual *T,
	expected, offset T,
) error {
	if actual == nil {
		return f.Failures().Failure(info, failure.ActualIsNull())
	}
	if offset < 0 || isNaN(offset) {
		return failure.InvalidArgument(
			"offset %v must be a non-negative number", offset,
		)
	}
	if *actual == expected {
		return nil
	}
	diff := math.Abs(float64(*actual) - float64(expected))
	if diff <= float64(offset) {
		return nil
	}
	return f.Failures().Failure(info,
		failure.ShouldBeCloseTo(*actual, expected, offset))
}

func isNaN[T constraints.Float](v T) bool {
	return v != v
}
