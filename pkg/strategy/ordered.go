package strategy

import "cmp"

// Ordered is the standard strategy for kinds with a built-in
// ordering. It follows cmp.Compare, so a NaN equals another NaN
// and sorts below every other float, and -0.0 equals 0.0.
type Ordered[T cmp.Ordered] struct {
	Natural
}

// Equal reports whether actual and other compare equal.
func (Ordered[T]) Equal(actual, other T) bool {
	return cmp.Compare(actual, other) == 0
}

// Greater reports whether actual compares above other.
func (Ordered[T]) Greater(actual, other T) bool {
	return cmp.Compare(actual, other) > 0
}
