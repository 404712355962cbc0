package validators

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/validators/pkg/chain"
)

// IsIn accepts values of type T equal to one of items.
func IsIn[T comparable](items ...T) chain.Link[any] {
	allowed := slices.Clone(items)
	return chain.Chainable(func(v any) (any, error) {
		tv, ok := v.(T)
		if !ok || !slices.Contains(allowed, tv) {
			return nil, chain.NewError(KindIsIn, "not in collection").WithParam("allowed", allowed)
		}
		return v, nil
	})
}

// IsInKeys accepts values of type K that are keys of m.
// The map is read on every call, so it must not be modified concurrently.
func IsInKeys[K comparable, V any](m map[K]V) chain.Link[any] {
	return chain.Chainable(func(v any) (any, error) {
		k, ok := v.(K)
		if !ok {
			return nil, chain.NewError(KindIsIn, "not in collection")
		}
		if _, found := m[k]; !found {
			return nil, chain.NewError(KindIsIn, "not in collection")
		}
		return v, nil
	})
}

// IsSubstringOf accepts strings contained in s. The empty string is always
// accepted.
func IsSubstringOf(s string) chain.Link[any] {
	return chain.Chainable(func(v any) (any, error) {
		sv, ok := v.(string)
		if !ok || !strings.Contains(s, sv) {
			return nil, chain.NewError(KindIsIn, "not in collection").WithParam("allowed", s)
		}
		return v, nil
	})
}
