package validators

import (
	"reflect"

	"github.com/dmitrymomot/validators/pkg/chain"
)

// Boolean accepts only bool values. Numbers are rejected, 0 and 1 included,
// so JSON input must carry true or false.
func Boolean() chain.Link[any] {
	return chain.Chainable(func(v any) (any, error) {
		if _, ok := v.(bool); !ok {
			return nil, chain.NewError(KindBoolean, "not boolean")
		}
		return v, nil
	})
}

// IsType accepts values whose dynamic type is T. When T is an interface,
// any value implementing it is accepted. Nil never matches.
func IsType[T any]() chain.Link[any] {
	name := reflect.TypeFor[T]().String()
	return chain.Chainable(func(v any) (any, error) {
		if _, ok := v.(T); !ok {
			return nil, chain.Errorf(KindIsType, "not %s", name).WithParam("type", name)
		}
		return v, nil
	})
}
