package spec

import (
	"errors"
	"slices"
	"strings"

	"github.com/dmitrymomot/validators/pkg/chain"
)

var (
	// ErrNilAccessor is the panic value of New when the accessor is nil.
	ErrNilAccessor = errors.New("spec: accessor is nil")

	// ErrDuplicateField is the panic value of New when a key appears twice.
	ErrDuplicateField = errors.New("spec: duplicate field key")
)

// Errors maps field keys to their validation errors. Only failing fields are
// present; an empty map means the object is valid.
type Errors map[string]*chain.ValidationError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, key := range e.Fields() {
		parts = append(parts, key+": "+e[key].Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) Has(key string) bool {
	_, ok := e[key]
	return ok
}

// Get returns the error for key, or nil.
func (e Errors) Get(key string) *chain.ValidationError {
	return e[key]
}

// Fields returns failing keys in sorted order.
func (e Errors) Fields() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// Messages returns the error message of every failing field.
func (e Errors) Messages() map[string]string {
	out := make(map[string]string, len(e))
	for k, err := range e {
		out[k] = err.Error()
	}
	return out
}

// Err returns e as an error, or nil when there are no failures.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// ExtractErrors returns the Errors held in err's tree, or nil.
func ExtractErrors(err error) Errors {
	var errs Errors
	if errors.As(err, &errs) {
		return errs
	}
	return nil
}
