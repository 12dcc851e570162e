// Package comparables holds the verb plumbing shared by every value
// comparator: the null guard, strategy evaluation, and descriptor
// construction. A value comparator embeds Equatables or Comparables
// and adds its kind-specific verbs.
package comparables

import (
	"fmt"

	"digital.vasic.assertions/pkg/failure"
	"digital.vasic.assertions/pkg/representation"
	"digital.vasic.assertions/pkg/strategy"
)

// IsNil reports whether v is absent. It is representation.IsNil,
// so a value is null exactly when it renders as "null".
func IsNil(v any) bool {
	return representation.IsNil(v)
}

// NotNil reports ActualIsNull when actual is absent.
func NotNil(
	failures failure.Reporter,
	info failure.Info,
	actual any,
) error {
	if IsNil(actual) {
		return failures.Failure(info, failure.ActualIsNull())
	}
	return nil
}

// Equatables provides the equality verbs for a kind under one
// Equality strategy. The strategy never changes after
// construction.
type Equatables[T any] struct {
	strategy strategy.Equality[T]
	failures failure.Reporter
}

// NewEquatables creates Equatables. It panics if either collaborator
// is nil.
func NewEquatables[T any](
	s strategy.Equality[T],
	failures failure.Reporter,
) Equatables[T] {
	if s == nil {
		panic("comparables: nil strategy")
	}
	if failures == nil {
		panic("comparables: nil failure reporter")
	}
	return Equatables[T]{strategy: s, failures: failures}
}

// Strategy returns the comparison strategy.
func (e Equatables[T]) Strategy() strategy.Equality[T] {
	return e.strategy
}

// Failures returns the failure reporter.
func (e Equatables[T]) Failures() failure.Reporter {
	return e.failures
}

// AssertEqual checks that actual equals expected under the
// strategy.
func (e Equatables[T]) AssertEqual(
	info failure.Info,
	actual *T,
	expected T,
) error {
	if actual == nil {
		return e.failures.Failure(info, failure.ActualIsNull())
	}
	if e.strategy.Equal(*actual, expected) {
		return nil
	}
	return e.failures.Failure(info,
		failure.ShouldBeEqual(*actual, expected, e.strategy))
}

// AssertNotEqual checks that actual differs from other under the
// strategy.
func (e Equatables[T]) AssertNotEqual(
	info failure.Info,
	actual *T,
	other T,
) error {
	if actual == nil {
		return e.failures.Failure(info, failure.ActualIsNull())
	}
	if !e.strategy.Equal(*actual, other) {
		return nil
	}
	return e.failures.Failure(info,
		failure.ShouldNotBeEqual(*actual, other, e.strategy))
}

// Comparables adds the ordering verbs to Equatables for kinds with
// an ordering.
type Comparables[T any] struct {
	Equatables[T]
	ordering strategy.Strategy[T]
}

// NewComparables creates Comparables.
func NewComparables[T any](
	s strategy.Strategy[T],
	failures failure.Reporter,
) Comparables[T] {
	return Comparables[T]{
		Equatables: NewEquatables[T](s, failures),
		ordering:   s,
	}
}

// Ordering returns the comparison strategy with its ordering.
func (c Comparables[T]) Ordering() strategy.Strategy[T] {
	return c.ordering
}

func (c Comparables[T]) check(
	info failure.Info,
	actual *T,
	other T,
	holds func(s strategy.Strategy[T], a, b T) bool,
	describe func(actual, other any, s fmt.Stringer) failure.Descriptor,
) error {
	if actual == nil {
		return c.failures.Failure(info, failure.ActualIsNull())
	}
	if holds(c.ordering, *actual, other) {
		return nil
	}
	return c.failures.Failure(info, describe(*actual, other, c.ordering))
}

// AssertGreaterThan checks that actual is strictly greater than
// other.
func (c Comparables[T]) AssertGreaterThan(
	info failure.Info,
	actual *T,
	other T,
) error {
	return c.check(info, actual, other,
		greater[T], failure.ShouldBeGreater)
}

// AssertGreaterThanOrEqualTo checks that actual is not less than
// other.
func (c Comparables[T]) AssertGreaterThanOrEqualTo(
	info failure.Info,
	actual *T,
	other T,
) error {
	return c.check(info, actual, other,
		strategy.GreaterOrEqual[T], failure.ShouldBeGreaterOrEqual)
}

// AssertLessThan checks that actual is strictly less than other.
func (c Comparables[T]) AssertLessThan(
	info failure.Info,
	actual *T,
	other T,
) error {
	return c.check(info, actual, other,
		strategy.Less[T], failure.ShouldBeLess)
}

// AssertLessThanOrEqualTo checks that actual is not greater than
// other.
func (c Comparables[T]) AssertLessThanOrEqualTo(
	info failure.Info,
	actual *T,
	other T,
) error {
	return c.check(info, actual, other,
		strategy.LessOrEqual[T], failure.ShouldBeLessOrEqual)
}

func greater[T any](s strategy.Strategy[T], a, b T) bool {
	return s.Greater(a, b)
}
