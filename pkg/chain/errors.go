package chain

import (
	"errors"
	"fmt"
)

// KindInvalid is the failure kind reported by Not and by validators that have
// nothing more specific to say.
const KindInvalid = "invalid"

var (
	// ErrReturnEarly is returned by a stage to stop the rest of the chain. The
	// chain built by Make then returns its original input with a nil error.
	ErrReturnEarly = errors.New("chain: return early")

	// ErrTooFewAlternatives is the panic value of Or when it gets fewer than
	// two alternatives.
	ErrTooFewAlternatives = errors.New("chain: at least two alternatives are required")
)

// ValidationError describes a single validation failure.
type ValidationError struct {
	Kind    string
	Message string
	Params  map[string]any
}

// NewError creates a validation error of the given kind.
func NewError(kind, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}

// Errorf creates a validation error with a formatted message.
func Errorf(kind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" {
		return e.Kind
	}
	return e.Message
}

// Is reports whether target is a *ValidationError of the same kind. A target
// with an empty Kind matches any validation error.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok || t == nil || e == nil {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

// WithParam returns a copy of e with an extra message parameter.
// Parameters feed message translation and are never interpreted by the chain.
func (e *ValidationError) WithParam(key string, value any) *ValidationError {
	params := make(map[string]any, len(e.Params)+1)
	for k, v := range e.Params {
		params[k] = v
	}
	params[key] = value
	return &ValidationError{Kind: e.Kind, Message: e.Message, Params: params}
}

// TranslationKey returns the i18n key for the failure kind.
func (e *ValidationError) TranslationKey() string {
	return "validation." + e.Kind
}

// AsValidationError extracts a *ValidationError from err's tree. A nil
// *ValidationError stored in a non-nil error is not a validation error.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) && verr != nil {
		return verr, true
	}
	return nil, false
}

// IsValidationError reports whether err's tree holds a *ValidationError.
func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}

// IsKind reports whether err carries a validation error of the given kind.
func IsKind(err error, kind string) bool {
	verr, ok := AsValidationError(err)
	return ok && verr.Kind == kind
}
