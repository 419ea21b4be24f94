// Package logging provides component loggers and trace-ID plumbing so every
// log line emitted during one CLI invocation can be correlated.
package logging

import (
	"context"
	"crypto/rand"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// traceIDKey is the context key for the invocation trace ID.
type traceIDKey struct{}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger when
// none was attached. Safe to call with a nil context.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		disabled := zerolog.Nop()
		return &disabled
	}
	return zerolog.Ctx(ctx)
}

// NewTraceID generates a ULID trace identifier for one CLI invocation.
func NewTraceID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// ContextWithTraceID stores a trace ID in the context.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored in ctx, or empty.
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateTraceID returns the context's trace ID, generating a fresh
// one when the context has none.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return NewTraceID()
}
