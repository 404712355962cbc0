// Package logger provides a small factory around Go's slog package and
// helper attribute constructors that keep key names consistent.
//
// New builds a *slog.Logger from functional options:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format
//   - WithLevel sets the minimum level
//   - WithOutput sets the destination writer
//   - WithAttr attaches static attributes to every record
//   - WithHandlerOptions passes slog.HandlerOptions through unchanged
//
// Discard returns a logger that drops everything; components fall back to it
// when the caller does not configure one.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	v := spec.ForMap(fields, spec.WithLogger(log))
//
// Attribute helpers (Error, Field, Kind, Component, ...) return an empty
// slog.Attr for empty input, so they can be passed without nil checks:
//
//	log.Debug("field validation failed", logger.Field(key), logger.Error(err))
package logger
