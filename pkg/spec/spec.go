package spec

import (
	"slices"

	"github.com/dmitrymomot/validators/pkg/chain"
)

// Field pairs an object key with the chain that validates its value.
type Field struct {
	Key   string
	Chain []chain.Link[any]
}

// Spec is an ordered list of fields. Fields are validated in this order.
type Spec []Field

// Of creates a Field.
func Of(key string, links ...chain.Link[any]) Field {
	return Field{Key: key, Chain: links}
}

// FromMap builds a Spec from a map, ordering fields by key.
func FromMap(m map[string][]chain.Link[any]) Spec {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := make(Spec, 0, len(keys))
	for _, k := range keys {
		s = append(s, Of(k, m[k]...))
	}
	return s
}

// Keys returns field keys in spec order.
func (s Spec) Keys() []string {
	keys := make([]string, len(s))
	for i, f := range s {
		keys[i] = f.Key
	}
	return keys
}
