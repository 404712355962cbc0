package chain

import "errors"

// Func is a plain validator. It returns the value, possibly transformed,
// or an error when the value is rejected.
type Func[T any] func(T) (T, error)

// Link is a chain-adapted validator. Given the next step of a chain it returns
// a Func that runs this step first and passes the result on to next.
type Link[T any] func(next Func[T]) Func[T]

// Identity returns v unchanged. It terminates every chain.
func Identity[T any](v T) (T, error) {
	return v, nil
}

// ReturnEarly is a shorthand for stages that want to stop the chain.
func ReturnEarly[T any]() (T, error) {
	var zero T
	return zero, ErrReturnEarly
}

// Chainable adapts fn so it can be composed with Make or passed to a combinator.
// A nil next behaves as Identity. Errors from fn or next are returned as is.
func Chainable[T any](fn Func[T]) Link[T] {
	return func(next Func[T]) Func[T] {
		if next == nil {
			next = Identity[T]
		}
		return func(v T) (T, error) {
			out, err := fn(v)
			if err != nil {
				var zero T
				return zero, err
			}
			return next(out)
		}
	}
}

// Validate runs l on its own, as the only stage of a chain.
// ErrReturnEarly is not trapped here; only Make does that.
func (l Link[T]) Validate(v T) (T, error) {
	return l(Identity[T])(v)
}

// Make composes links into a single validator. Links run in the order given,
// each one receiving the previous one's result. When a stage returns
// ErrReturnEarly the remaining stages are skipped and the original input is
// returned. An empty chain is the identity.
func Make[T any](links ...Link[T]) Func[T] {
	composed := Func[T](Identity[T])
	for i := len(links) - 1; i >= 0; i-- {
		composed = links[i](composed)
	}

	return func(v T) (T, error) {
		out, err := composed(v)
		if errors.Is(err, ErrReturnEarly) {
			return v, nil
		}
		return out, err
	}
}
