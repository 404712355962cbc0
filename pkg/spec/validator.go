package spec

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/validators/pkg/chain"
	"github.com/dmitrymomot/validators/pkg/logger"
)

type compiledField[O any] struct {
	key      string
	get      func(O) any
	validate chain.Func[any]
}

// Validator checks objects of type O against a compiled Spec.
type Validator[O any] struct {
	fields []compiledField[O]
	log    *slog.Logger
}

// New compiles s: the accessor and the chain of every field are built once
// here, not on each validation.
//
// New panics with ErrNilAccessor when accessor is nil and with
// ErrDuplicateField when two fields share a key.
func New[O any](s Spec, accessor Accessor[O], opts ...Option) *Validator[O] {
	if accessor == nil {
		panic(ErrNilAccessor)
	}

	o := options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	seen := make(map[string]struct{}, len(s))
	fields := make([]compiledField[O], 0, len(s))
	for _, f := range s {
		if _, dup := seen[f.Key]; dup {
			panic(fmt.Errorf("%w: %q", ErrDuplicateField, f.Key))
		}
		seen[f.Key] = struct{}{}

		fields = append(fields, compiledField[O]{
			key:      f.Key,
			get:      accessor(f.Key),
			validate: chain.Make(f.Chain...),
		})
	}

	return &Validator[O]{
		fields: fields,
		log:    o.logger.With(logger.Component("spec")),
	}
}

// ForMap compiles s for map[string]any objects using the Key accessor.
func ForMap(s Spec, opts ...Option) *Validator[map[string]any] {
	return New[map[string]any](s, Key, opts...)
}

// Validate runs every field chain against obj and returns the validation
// errors by key. The returned map is never nil.
//
// When a validator fails with an error that is not a *chain.ValidationError,
// validation stops and that error is returned wrapped, together with the
// errors collected so far.
func (v *Validator[O]) Validate(obj O) (Errors, error) {
	errs := make(Errors)
	err := v.run(obj, errs, nil)
	return errs, err
}

// Clean works like Validate and also returns the chain output of every field
// that passed, keyed by field.
func (v *Validator[O]) Clean(obj O) (map[string]any, Errors, error) {
	values := make(map[string]any, len(v.fields))
	errs := make(Errors)
	err := v.run(obj, errs, values)
	return values, errs, err
}

// Keys returns the compiled field keys in validation order.
func (v *Validator[O]) Keys() []string {
	keys := make([]string, len(v.fields))
	for i, f := range v.fields {
		keys[i] = f.key
	}
	return keys
}

func (v *Validator[O]) run(obj O, errs Errors, values map[string]any) error {
	for _, f := range v.fields {
		out, err := f.validate(f.get(obj))
		if err == nil {
			if values != nil {
				values[f.key] = out
			}
			continue
		}

		verr, ok := chain.AsValidationError(err)
		if !ok {
			v.log.Error("field validation aborted", logger.Field(f.key), logger.Error(err))
			return fmt.Errorf("spec: field %q: %w", f.key, err)
		}
		v.log.Debug("field validation failed", logger.Field(f.key), logger.Kind(verr.Kind), logger.Error(verr))
		errs[f.key] = verr
	}

	if len(errs) > 0 {
		v.log.Debug("object validation failed", logger.FieldCount(len(errs)))
	}
	return nil
}
