package validators

import (
	"cmp"
	"math"
	"reflect"

	"github.com/dmitrymomot/validators/pkg/chain"
)

// Gte accepts values greater than or equal to min. Values of type T are
// compared directly; numbers of any other numeric type are compared as float64.
// NaN is not ordered and fails with KindIsType.
func Gte[T cmp.Ordered](min T) chain.Link[any] {
	return chain.Chainable(func(v any) (any, error) {
		c, ok := compareTo(v, min)
		if !ok {
			return nil, chain.Errorf(KindIsType, "not comparable with %T", min)
		}
		if c < 0 {
			return nil, chain.NewError(KindGte, "value too small").WithParam("min", min)
		}
		return v, nil
	})
}

// Lte accepts values less than or equal to max, following the same comparison
// rules as Gte.
func Lte[T cmp.Ordered](max T) chain.Link[any] {
	return chain.Chainable(func(v any) (any, error) {
		c, ok := compareTo(v, max)
		if !ok {
			return nil, chain.Errorf(KindIsType, "not comparable with %T", max)
		}
		if c > 0 {
			return nil, chain.NewError(KindLte, "value too large").WithParam("max", max)
		}
		return v, nil
	})
}

func compareTo[T cmp.Ordered](v any, bound T) (int, bool) {
	if isNaN(v) || isNaN(bound) {
		return 0, false
	}
	if tv, ok := v.(T); ok {
		return cmp.Compare(tv, bound), true
	}
	fv, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	fb, ok := toFloat(bound)
	if !ok {
		return 0, false
	}
	return cmp.Compare(fv, fb), true
}

func isNaN(v any) bool {
	f, ok := toFloat(v)
	return ok && math.IsNaN(f)
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
