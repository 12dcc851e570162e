// Package failure defines the error descriptors produced by failed
// assertions and the reporters that turn them into errors.
package failure

// Kind identifies a failure template.
type Kind string

const (
	KindActualIsNull           Kind = "actual_is_null"
	KindShouldBeEqual          Kind = "should_be_equal"
	KindShouldNotBeEqual       Kind = "should_not_be_equal"
	KindShouldBeGreater        Kind = "should_be_greater"
	KindShouldBeGreaterOrEqual Kind = "should_be_greater_or_equal"
	KindShouldBeLess           Kind = "should_be_less"
	KindShouldBeLessOrEqual    Kind = "should_be_less_or_equal"
	KindShouldBeCloseTo        Kind = "should_be_close_to"
	KindShouldBeReadable       Kind = "should_be_readable"
	KindShouldBeWritable       Kind = "should_be_writable"
	KindShouldExist            Kind = "should_exist"
	KindShouldNotExist         Kind = "should_not_exist"
	KindShouldBeDirectory      Kind = "should_be_directory"
	KindShouldBeFile           Kind = "should_be_file"
	KindShouldBeNaN            Kind = "should_be_nan"
	KindShouldNotBeNaN         Kind = "should_not_be_nan"
	KindShouldBeZero           Kind = "should_be_zero"
	KindShouldNotBeZero        Kind = "should_not_be_zero"
	KindShouldBePositive       Kind = "should_be_positive"
	KindShouldBeNegative       Kind = "should_be_negative"
)

// Category groups kinds by the check that produced them.
type Category string

const (
	CategoryNull      Category = "null"
	CategoryEquality  Category = "equality"
	CategoryOrdering  Category = "ordering"
	CategoryCloseness Category = "closeness"
	CategoryPredicate Category = "predicate"
)

// Category returns the group the kind belongs to.
func (k Kind) Category() Category {
	switch k {
	case KindActualIsNull:
		return CategoryNull
	case KindShouldBeEqual, KindShouldNotBeEqual,
		KindShouldBeZero, KindShouldNotBeZero:
		return CategoryEquality
	case KindShouldBeGreater, KindShouldBeGreaterOrEqual,
		KindShouldBeLess, KindShouldBeLessOrEqual,
		KindShouldBePositive, KindShouldBeNegative:
		return CategoryOrdering
	case KindShouldBeCloseTo:
		return CategoryCloseness
	default:
		return CategoryPredicate
	}
}

func (k Kind) String() string { return string(k) }
