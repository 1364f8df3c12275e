package logging

import (
	"context"
	"log/slog"
)

// ctxKey is the key used to store the logger in a context.
// Using a custom type prevents collisions.
type ctxKey struct{}

// WithLogger returns a child context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromCtx retrieves the operation-scoped logger from the context.
// It returns the default logger if none is found.
func FromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
