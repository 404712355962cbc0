// Package spec validates structured objects field by field.
//
// A Spec is an ordered list of fields, each pairing a key with a chain of
// validators from package chain. New compiles a Spec once into a Validator
// that can then check any number of objects:
//
//	fields := spec.Spec{
//	    spec.Of("email", validators.Required(), validators.Match(emailRe)),
//	    spec.Of("age", validators.Optional(), validators.IsType[int](), validators.Gte(18)),
//	}
//	v := spec.ForMap(fields)
//
//	errs, err := v.Validate(map[string]any{"email": "a@b.c", "age": 12})
//	if err != nil {
//	    // a validator failed with something other than a validation error
//	}
//	if !errs.IsEmpty() {
//	    // errs.Get("age").Kind == "gte"
//	}
//
// Errors are collected, not fail-fast: every field is checked and each
// failing key gets its *chain.ValidationError in the returned Errors map.
// A field whose chain stops early (validators.Optional) counts as valid.
//
// # Accessors
//
// How a field value is read from the object is decided by the Accessor given
// to New. Key reads map[string]any entries and is what ForMap uses, Values
// reads url.Values form data, and GetterKey works with any type implementing
// Getter. Custom accessors are plain functions.
//
// # Concurrency
//
// A Validator is immutable after New and safe for concurrent use when its
// validators and accessor are.
package spec
