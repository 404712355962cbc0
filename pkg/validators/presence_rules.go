package validators

import (
	"reflect"

	"github.com/dmitrymomot/validators/pkg/chain"
)

// Optional stops the chain when the value is nil or equal to one of defaults,
// leaving the original value as the chain result. Other values pass through.
func Optional(defaults ...any) chain.Link[any] {
	return chain.Chainable(func(v any) (any, error) {
		if isNil(v) {
			return chain.ReturnEarly[any]()
		}
		for _, d := range defaults {
			if reflect.DeepEqual(v, d) {
				return chain.ReturnEarly[any]()
			}
		}
		return v, nil
	})
}

// Required rejects nil values, including typed nil pointers.
func Required() chain.Link[any] {
	return chain.Chainable(func(v any) (any, error) {
		if isNil(v) {
			return nil, chain.NewError(KindRequired, "required value missing")
		}
		return v, nil
	})
}

// Nonempty rejects empty strings, slices, arrays and maps.
// Values of other kinds, nil included, pass.
func Nonempty() chain.Link[any] {
	return chain.Chainable(func(v any) (any, error) {
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
			if rv.Len() == 0 {
				return nil, chain.NewError(KindNonempty, "empty sequence")
			}
		}
		return v, nil
	})
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
