// Package representation turns assertion operands into the strings
// shown in failure messages.
package representation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
)

// Representation renders a value for a failure message.
type Representation interface {
	ToString(value any) string
}

// Standard is the default Representation. Scalars are printed
// directly, decimals keep their scale, and composite values are
// dumped with go-spew.
type Standard struct {
	config Config
	dumper *spew.ConfigState
}

// NewStandard creates a Standard representation from a Config.
func NewStandard(config Config) *Standard {
	return &Standard{
		config: config,
		dumper: &spew.ConfigState{
			Indent:                  "  ",
			MaxDepth:                config.MaxDepth,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		},
	}
}

// Default returns a Standard representation using DefaultConfig.
func Default() *Standard {
	return NewStandard(DefaultConfig())
}

// Config returns the configuration the representation was built
// with.
func (s *Standard) Config() Config {
	return s.config
}

// ToString renders value.
func (s *Standard) ToString(value any) string {
	if IsNil(value) {
		return "null"
	}

	switch v := value.(type) {
	case string:
		return strconv.Quote(s.truncate(v))
	case decimal.Decimal:
		return Decimal(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32) + "f"
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v)
	case fmt.Stringer:
		return s.truncate(v.String())
	case error:
		return s.truncate(v.Error())
	}

	return strings.TrimRight(s.dumper.Sdump(value), "\n")
}

func (s *Standard) truncate(v string) string {
	limit := s.config.MaxStringLength
	if limit <= 0 || len(v) <= limit {
		return v
	}
	for limit > 0 && !utf8.RuneStart(v[limit]) {
		limit--
	}
	return v[:limit] + "..."
}

// Decimal renders d without dropping trailing zeros, so 1.000 and
// 1 stay distinguishable.
func Decimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// IsNil reports whether value is absent: a nil interface, or a nil
// pointer, map, slice, func, or channel behind an interface.
func IsNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
