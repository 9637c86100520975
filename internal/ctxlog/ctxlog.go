// Package ctxlog carries the request-scoped slog.Logger through
// context.Context.
package ctxlog

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key int

const loggerKey key = 0

// discard is returned when no logger was attached.
var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. If no logger is
// found, it returns a logger that discards everything.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return discard
}

// WithCompileID generates a fresh compile id and returns a context whose
// logger adds it as the "compile_id" attribute.
func WithCompileID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return WithLogger(ctx, FromContext(ctx).With("compile_id", id)), id
}
