package validators

import (
	"reflect"

	"github.com/dmitrymomot/validators/pkg/chain"
)

// Transform applies fns in order to values of type T and passes the result
// down the chain. Values of any other type fail with KindIsType.
//
//	name := chain.Make(validators.Transform(strings.TrimSpace, strings.ToLower), validators.Nonempty())
func Transform[T any](fns ...func(T) T) chain.Link[any] {
	name := reflect.TypeFor[T]().String()
	return chain.Chainable(func(v any) (any, error) {
		tv, ok := v.(T)
		if !ok {
			return nil, chain.Errorf(KindIsType, "not %s", name)
		}
		for _, fn := range fns {
			tv = fn(tv)
		}
		return tv, nil
	})
}
