package failure

import (
	"bytes"
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"digital.vasic.assertions/pkg/logging"
	"digital.vasic.assertions/pkg/metrics"
	"digital.vasic.assertions/pkg/representation"
	"digital.vasic.assertions/pkg/strategy"
)

var absValue = strategy.Comparing("AbsValueComparator", func(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	return cmp.Compare(a, b)
})

func TestKind_Category(t *testing.T) {
	tests := []struct {
		kind     Kind
		category Category
	}{
		{KindActualIsNull, CategoryNull},
		{KindShouldBeEqual, CategoryEquality},
		{KindShouldNotBeEqual, CategoryEquality},
		{KindShouldBeZero, CategoryEquality},
		{KindShouldBeGreater, CategoryOrdering},
		{KindShouldBeLessOrEqual, CategoryOrdering},
		{KindShouldBeNegative, CategoryOrdering},
		{KindShouldBeCloseTo, CategoryCloseness},
		{KindShouldBeReadable, CategoryPredicate},
		{KindShouldBeWritable, CategoryPredicate},
		{KindShouldBeNaN, CategoryPredicate},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.category, tt.kind.Category())
		})
	}
}

func TestDescriptor_StandardStrategyDropped(t *testing.T) {
	d := ShouldBeEqual(1, 2, strategy.Ordered[int]{})

	assert.Nil(t, d.Strategy)
	assert.Empty(t, d.StrategyName())
}

func TestDescriptor_CustomStrategyKept(t *testing.T) {
	d := ShouldNotBeEqual(6, -6, absValue)

	assert.Same(t, absValue, d.Strategy)
	assert.Equal(t, "AbsValueComparator", d.StrategyName())
	assert.Equal(t, 6, d.Actual)
	assert.Equal(t, -6, d.Expected)
}

func TestDescriptor_Payloads(t *testing.T) {
	assert.Equal(t, Descriptor{Kind: KindActualIsNull}, ActualIsNull())
	assert.Equal(t,
		Descriptor{Kind: KindShouldBeReadable, Actual: "f"},
		ShouldBeReadable("f"))
	assert.Equal(t,
		Descriptor{Kind: KindShouldBeWritable, Actual: "f"},
		ShouldBeWritable("f"))
	assert.Equal(t,
		Descriptor{Kind: KindShouldBeCloseTo, Actual: 1.5, Expected: 1.0, Offset: 0.1},
		ShouldBeCloseTo(1.5, 1.0, 0.1))
}

func TestDescriptor_Message(t *testing.T) {
	tests := []struct {
		name     string
		d        Descriptor
		contains []string
		excludes []string
	}{
		{
			name:     "actual is null",
			d:        ActualIsNull(),
			contains: []string{"Expecting actual not to be null"},
		},
		{
			name: "should be equal keeps decimal scale",
			d: ShouldBeEqual(
				decimal.RequireFromString("1.000"),
				decimal.RequireFromString("1"), nil,
			),
			contains: []string{"<1.000>", "to be equal to:\n  <1>", "but was not."},
			excludes: []string{"when comparing"},
		},
		{
			name:     "should not be equal with strategy",
			d:        ShouldNotBeEqual(6, -6, absValue),
			contains: []string{"not to be equal to", "<-6>", "when comparing values using 'AbsValueComparator'"},
		},
		{
			name:     "should be greater",
			d:        ShouldBeGreater(6.0, 6.0, nil),
			contains: []string{"to be greater than:\n  <6>"},
		},
		{
			name:     "close to",
			d:        ShouldBeCloseTo(1.5, 1.0, 0.1),
			contains: []string{"to be close to", "within offset <0.1>"},
		},
		{
			name:     "readable",
			d:        ShouldBeReadable("/tmp/x"),
			contains: []string{`<"/tmp/x">`, "to be readable"},
		},
		{
			name:     "positive with strategy",
			d:        ShouldBePositive(-1, absValue),
			contains: []string{"to be positive", "AbsValueComparator"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.d.Message(nil, true)
			for _, c := range tt.contains {
				assert.Contains(t, msg, c)
			}
			for _, e := range tt.excludes {
				assert.NotContains(t, msg, e)
			}
		})
	}
}

func TestDescriptor_Message_Diff(t *testing.T) {
	d := ShouldBeEqual(
		map[string]int{"a": 1, "b": 2},
		map[string]int{"a": 1, "b": 3}, nil,
	)

	withDiff := d.Message(nil, true)
	assert.Contains(t, withDiff, "Diff:")
	assert.Contains(t, withDiff, "--- Expected")

	assert.NotContains(t, d.Message(nil, false), "Diff:")
}

func TestAssertionError(t *testing.T) {
	err := &AssertionError{Message: "boom"}
	assert.Equal(t, "boom", err.Error())

	err.Info = SomeInfo().DescribedAs("balance")
	assert.Equal(t, "[balance] boom", err.Error())

	wrapped := fmt.Errorf("outer: %w", err)
	got, ok := AsAssertionError(wrapped)
	require.True(t, ok)
	assert.Same(t, err, got)

	_, ok = AsAssertionError(errors.New("plain"))
	assert.False(t, ok)
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("offset %v must not be negative", -1)

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "offset -1")
	_, ok := AsAssertionError(err)
	assert.False(t, ok)
}

func TestInfo_Repr_Default(t *testing.T) {
	assert.NotNil(t, Info{}.Repr())
	assert.Equal(t, "null", Info{}.Repr().ToString(nil))
}

func TestFailures_Failure(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewJSONLogger(logging.LoggerConfig{
		Output: &buf,
		Level:  logging.LevelDebug,
	})
	require.NoError(t, err)
	m := metrics.NewInMemoryMetrics()

	f := NewFailures(WithLogger(logger), WithMetrics(m), WithDiff(false))
	info := SomeInfo()
	d := ShouldNotBeEqual(6, -6, absValue)

	got := f.Failure(info, d)

	ae, ok := AsAssertionError(got)
	require.True(t, ok)
	assert.Equal(t, d, ae.Descriptor)
	assert.Equal(t, info, ae.Info)
	assert.Contains(t, ae.Message, "AbsValueComparator")
	assert.Equal(t, 1, m.FailureCount("should_not_be_equal", "AbsValueComparator"))

	var entry logging.LogEntry
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "assertion failed", entry.Message)
	assert.Equal(t, "should_not_be_equal", entry.Fields["kind"])
	assert.Equal(t, "equality", entry.Fields["category"])
}

func TestFailures_DiffFollowsRepresentationConfig(t *testing.T) {
	config, err := representation.ParseConfig([]byte("diff: false"))
	require.NoError(t, err)
	info := Info{Representation: representation.NewStandard(config)}
	d := ShouldBeEqual(
		map[string]int{"a": 1, "b": 2},
		map[string]int{"a": 1, "b": 3}, nil,
	)

	ae, ok := AsAssertionError(NewFailures().Failure(info, d))
	require.True(t, ok)
	assert.NotContains(t, ae.Message, "Diff:")

	ae, ok = AsAssertionError(NewFailures().Failure(SomeInfo(), d))
	require.True(t, ok)
	assert.Contains(t, ae.Message, "Diff:")

	ae, ok = AsAssertionError(NewFailures(WithDiff(true)).Failure(info, d))
	require.True(t, ok)
	assert.Contains(t, ae.Message, "Diff:")
}

func TestReporterFunc(t *testing.T) {
	sentinel := errors.New("reported")
	var got Descriptor

	r := ReporterFunc(func(_ Info, d Descriptor) error {
		got = d
		return sentinel
	})

	assert.Same(t, sentinel, r.Failure(SomeInfo(), ActualIsNull()))
	assert.Equal(t, KindActualIsNull, got.Kind)
}

func TestCollector_KeepsEveryFailure(t *testing.T) {
	c := NewCollector(nil)
	info := SomeInfo()

	require.Error(t, c.Failure(info, ActualIsNull()))
	require.Error(t, c.Failure(info, ShouldBeReadable("f")))

	require.Equal(t, 2, c.Len())
	errs := c.Errors()
	assert.Equal(t, KindActualIsNull, errs[0].Descriptor.Kind)
	assert.Equal(t, KindShouldBeReadable, errs[1].Descriptor.Kind)

	joined := c.Err()
	require.Error(t, joined)
	assert.Contains(t, joined.Error(), "not to be null")
	assert.Contains(t, joined.Error(), "to be readable")
}

func TestCollector_Empty(t *testing.T) {
	assert.NoError(t, NewCollector(nil).Err())
}

func TestCollector_NonAssertionErrorFromInner(t *testing.T) {
	c := NewCollector(ReporterFunc(func(Info, Descriptor) error {
		return errors.New("custom")
	}))

	err := c.Failure(SomeInfo(), ActualIsNull())

	assert.EqualError(t, err, "custom")
	require.Len(t, c.Errors(), 1)
	assert.Equal(t, "custom", c.Errors()[0].Message)
}

func TestCollector_Concurrent(t *testing.T) {
	c := NewCollector(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Failure(SomeInfo(), ActualIsNull())
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, c.Len())
}

type mockT struct {
	mock.Mock
}

func (m *mockT) Helper() {}

func (m *mockT) Fatal(args ...any) {
	m.Called(args...)
}

func TestTestingReporter_Fatal(t *testing.T) {
	mt := new(mockT)
	mt.On("Fatal", mock.MatchedBy(func(err error) bool {
		return strings.Contains(err.Error(), "to be writable")
	})).Return()

	r := ForTest(mt, nil)
	err := r.Failure(SomeInfo(), ShouldBeWritable("f"))

	require.Error(t, err)
	mt.AssertExpectations(t)
}
