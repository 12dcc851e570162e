// Package objects provides an equality-only value comparator for
// arbitrary values, compared structurally with go-cmp.
package objects

import (
	"github.com/google/go-cmp/cmp"

	"digital.vasic.assertions/pkg/comparables"
	"digital.vasic.assertions/pkg/failure"
	"digital.vasic.assertions/pkg/strategy"
)

// Standard compares values with cmp.Equal and the given options.
type Standard[T any] struct {
	strategy.Natural
	options []cmp.Option
}

// NewStandard creates a Standard strategy. Options are passed to
// cmp.Equal unchanged, for example cmpopts.EquateEmpty().
func NewStandard[T any](opts ...cmp.Option) Standard[T] {
	return Standard[T]{options: opts}
}

// Equal reports whether actual and other are structurally equal.
// cmp.Equal panics on unexported fields without an option; that
// panic is a configuration error and is not recovered.
func (s Standard[T]) Equal(actual, other T) bool {
	return cmp.Equal(actual, other, s.options...)
}

// Objects exposes the equality verbs for values of type T.
type Objects[T any] struct {
	comparables.Equatables[T]
}

// New creates Objects using Standard with opts.
func New[T any](failures failure.Reporter, opts ...cmp.Option) *Objects[T] {
	return NewWithStrategy[T](failures, NewStandard[T](opts...))
}

// NewWithStrategy creates Objects using s.
func NewWithStrategy[T any](
	failures failure.Reporter,
	s strategy.Equality[T],
) *Objects[T] {
	return &Objects[T]{
		Equatables: comparables.NewEquatables[T](s, failures),
	}
}

// AssertNotNil checks that actual is not absent. Unlike the
// equality verbs, actual is the value itself, so nil pointers,
// maps, slices, and interfaces count as absent.
func (o *Objects[T]) AssertNotNil(info failure.Info, actual T) error {
	return comparables.NotNil(o.Failures(), info, actual)
}
