package spec

import "log/slog"

// Option configures a Validator.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report field failures at debug level
// and aborted validations at error level. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
