// Package strategy defines the comparison strategies used by the
// value comparators. A strategy decides whether two values of one
// kind are equal and which of them is greater. The standard
// strategies use the natural ordering of the kind; comparator based
// strategies delegate to a caller-supplied ordering function.
package strategy

// Equality decides whether two values of a kind are equal.
type Equality[T any] interface {
	// Equal reports whether actual and other are equal under
	// this strategy.
	Equal(actual, other T) bool

	// String names the strategy for failure messages.
	String() string
}

// Strategy extends Equality with a strict weak ordering. Greater
// must be irreflexive and transitive, and Equal(a, b) implies
// neither Greater(a, b) nor Greater(b, a).
type Strategy[T any] interface {
	Equality[T]

	// Greater reports whether actual is strictly greater than
	// other under this strategy.
	Greater(actual, other T) bool
}

// Natural marks a strategy as the standard one for its kind.
// Failure descriptors omit standard strategies so that default
// messages stay terse. Embed it in a standard strategy type.
type Natural struct{}

func (Natural) natural() {}

// String returns the name shared by all standard strategies.
func (Natural) String() string { return "standard comparison" }

type natural interface {
	natural()
}

// IsStandard reports whether s is a standard strategy. A nil
// strategy counts as standard.
func IsStandard(s any) bool {
	if s == nil {
		return true
	}
	_, ok := s.(natural)
	return ok
}

// Less reports whether actual is strictly less than other.
func Less[T any](s Strategy[T], actual, other T) bool {
	return s.Greater(other, actual)
}

// GreaterOrEqual reports whether actual is not less than other.
func GreaterOrEqual[T any](s Strategy[T], actual, other T) bool {
	return !s.Greater(other, actual)
}

// LessOrEqual reports whether actual is not greater than other.
func LessOrEqual[T any](s Strategy[T], actual, other T) bool {
	return !s.Greater(actual, other)
}
