package registry

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// contextKey is a unique type for storing values in context to avoid
// collisions with keys from other packages.
type contextKey string

// tracerKey is the context key used to store the OpenTelemetry tracer.
const tracerKey contextKey = "tracer"

// WithTracer stores an OpenTelemetry tracer in the context. The dispatcher
// wraps each check in a span when a tracer is present; without one, checks
// run untraced.
func WithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return context.WithValue(ctx, tracerKey, tracer)
}

// TracerFromContext retrieves the OpenTelemetry tracer from the context.
// Returns the tracer and true if found, or nil and false if not present.
func TracerFromContext(ctx context.Context) (trace.Tracer, bool) { //nolint:ireturn
	tracer, ok := ctx.Value(tracerKey).(trace.Tracer)

	return tracer, ok
}
