// Package validators provides the built-in leaf validators for chains built
// with package chain.
//
// Every constructor returns a chain.Link[any], so validators can be used on
// their own through Link.Validate, composed with chain.Make, wrapped by
// chain.Or and chain.Not, or listed in a spec.Field:
//
//	age := chain.Make(
//	    validators.Optional(),
//	    validators.IsType[int](),
//	    validators.Gte(18),
//	    validators.Lte(130),
//	)
//
// Failures are *chain.ValidationError values whose Kind is one of the Kind*
// constants declared here. Optional is the only validator that stops a chain
// early; it never fails.
//
// Validators return the value they were given. None of them keeps state, so
// they can be shared freely between goroutines.
//
// # Configuration
//
// URL and timestamp checks can be tuned from the environment through Config
// and LoadConfig:
//
//	VALIDATORS_URL_SCHEMES=https,ftp
//	VALIDATORS_TIMESTAMP_LAYOUT=%Y-%m-%d
package validators
