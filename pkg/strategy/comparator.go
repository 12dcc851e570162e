package strategy

// Comparator orders two values: negative when a < b, zero when
// they are equal, positive when a > b. This is the convention of
// cmp.Compare and slices.SortFunc.
type Comparator[T any] func(a, b T) int

// ComparatorBased is a strategy backed by a caller-supplied
// Comparator. It is immutable once built. A comparator that panics
// is not recovered; the panic reaches the caller of the assertion.
type ComparatorBased[T any] struct {
	name    string
	compare Comparator[T]
}

// Comparing builds a ComparatorBased strategy. The name is shown in
// failure messages. It panics if compare is nil.
func Comparing[T any](
	name string,
	compare func(a, b T) int,
) *ComparatorBased[T] {
	if compare == nil {
		panic("strategy: nil comparator")
	}
	if name == "" {
		name = "custom comparator"
	}
	return &ComparatorBased[T]{name: name, compare: compare}
}

// Equal reports whether the comparator orders the values equal,
// whatever their structural difference.
func (c *ComparatorBased[T]) Equal(actual, other T) bool {
	return c.compare(actual, other) == 0
}

// Greater reports whether the comparator orders actual above
// other.
func (c *ComparatorBased[T]) Greater(actual, other T) bool {
	return c.compare(actual, other) > 0
}

// Comparator returns the wrapped ordering function.
func (c *ComparatorBased[T]) Comparator() Comparator[T] {
	return c.compare
}

// String returns the comparator name.
func (c *ComparatorBased[T]) String() string {
	return c.name
}
