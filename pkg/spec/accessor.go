package spec

import "net/url"

// Accessor returns, for a field key, a function reading that field from an
// object. It is called once per field when the Validator is built.
type Accessor[O any] func(key string) func(obj O) any

// Getter is implemented by objects that look their fields up by key.
type Getter interface {
	Get(key string) (any, bool)
}

// Key reads map entries. A missing key reads as nil.
func Key(key string) func(map[string]any) any {
	return func(m map[string]any) any {
		return m[key]
	}
}

// Values reads the first form value for the key, or nil when there is none.
func Values(key string) func(url.Values) any {
	return func(v url.Values) any {
		vs, ok := v[key]
		if !ok || len(vs) == 0 {
			return nil
		}
		return vs[0]
	}
}

// GetterKey reads fields through the Getter interface. A field the getter
// reports as absent reads as nil.
func GetterKey[O Getter](key string) func(O) any {
	return func(obj O) any {
		v, ok := obj.Get(key)
		if !ok {
			return nil
		}
		return v
	}
}
