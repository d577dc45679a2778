package rlog

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type contextKey struct{}

//nolint:gochecknoglobals // package-level context key is idiomatic
var loggerKey = contextKey{}

// FromContext retrieves a Logger from ctx, or the default logger if none is
// attached.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// WithRunID attaches a fresh correlation id to logger's fields, returning a
// context carrying the tagged logger and the id itself, so a single
// runestone invocation across multiple files logs under one identifier.
func WithRunID(ctx context.Context, logger *log.Logger) (context.Context, string) {
	runID := uuid.NewString()
	tagged := logger.With("run_id", runID)
	return WithLogger(ctx, tagged), runID
}
