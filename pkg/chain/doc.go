// Package chain composes small, single-purpose validators into ordered
// pipelines with short-circuit support.
//
// A validator comes in two shapes. A Func is a plain validator: it takes a
// value and returns the (possibly transformed) value or an error. A Link is a
// chain-adapted validator: given the next step it returns a Func that runs
// itself first and feeds its result into that next step. Chainable turns a
// Func into a Link, and Make folds a list of Links into one Func.
//
// # Architecture
//
// Every stage of a chain has three possible outcomes:
//
//   - (value, nil)            continue with value
//   - (zero, ErrReturnEarly)  stop the chain and keep the original input
//   - (zero, err)             fail with err
//
// ErrReturnEarly is trapped exactly once, at the boundary of the Func returned
// by Make. Ordinary failures are reported as *ValidationError values carrying
// a human-readable message and a stable Kind tag for programmatic branching.
//
// Or and Not are combinators built on the same protocol: Or succeeds with the
// first alternative that passes and otherwise returns the last validation
// error, Not inverts pass and fail.
//
// # Usage
//
//	positive := chain.Chainable(func(v int) (int, error) {
//	    if v <= 0 {
//	        return 0, chain.NewError("gte", "value too small")
//	    }
//	    return v, nil
//	})
//	double := chain.Chainable(func(v int) (int, error) { return v * 2, nil })
//
//	validate := chain.Make(positive, double)
//	v, err := validate(21) // 42, nil
//
// # Concurrency
//
// Links and composed Funcs hold no mutable state. They are safe to build once
// and share between goroutines as long as the leaf validators are pure.
package chain
