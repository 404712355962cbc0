package chain

// Or builds a validator that passes when any of the alternatives passes.
// Alternatives are tried in order and the first success wins; later ones are
// not run. When every alternative fails with a validation error, the last one
// is returned. ErrReturnEarly and errors that are not validation errors are
// returned immediately.
//
// Or panics with ErrTooFewAlternatives when given fewer than two alternatives.
func Or[T any](alternatives ...Link[T]) Link[T] {
	if len(alternatives) < 2 {
		panic(ErrTooFewAlternatives)
	}
	alts := append([]Link[T](nil), alternatives...)

	return Chainable(func(v T) (T, error) {
		var last error
		for _, alt := range alts {
			out, err := alt.Validate(v)
			if err == nil {
				return out, nil
			}
			if !IsValidationError(err) {
				return out, err
			}
			last = err
		}
		var zero T
		return zero, last
	})
}

// Not builds a validator that passes, returning its input unchanged, when
// inner rejects the value with a validation error, and fails with KindInvalid
// when inner accepts it. The value produced by inner is always discarded.
func Not[T any](inner Link[T]) Link[T] {
	return Chainable(func(v T) (T, error) {
		_, err := inner.Validate(v)
		switch {
		case err == nil:
			var zero T
			return zero, NewError(KindInvalid, "invalid")
		case IsValidationError(err):
			return v, nil
		default:
			var zero T
			return zero, err
		}
	})
}
