package validators

import (
	"reflect"

	"github.com/dmitrymomot/validators/pkg/chain"
)

// ListOf accepts slices and arrays whose every element passes item. Elements
// are checked in order and the first failure is reported with its index.
// A nil item only checks that the value is a list.
//
// Item chains may stop early through Optional; such elements count as valid.
func ListOf(item chain.Link[any]) chain.Link[any] {
	validateItem := chain.Make[any]()
	if item != nil {
		validateItem = chain.Make(item)
	}

	return chain.Chainable(func(v any) (any, error) {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, chain.NewError(KindListOf, "not a list")
		}
		for i := range rv.Len() {
			if _, err := validateItem(rv.Index(i).Interface()); err != nil {
				verr, ok := chain.AsValidationError(err)
				if !ok {
					return nil, err
				}
				return nil, chain.Errorf(KindListOf, "item %d: %s", i, verr.Error()).
					WithParam("index", i).
					WithParam("kind", verr.Kind)
			}
		}
		return v, nil
	})
}
