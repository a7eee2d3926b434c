package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type ctxKey string

const runIDKey ctxKey = "run_id"

// ContextWithRunID stores the invocation ID in the context.
func ContextWithRunID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the invocation ID from context if present.
func RunIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(runIDKey).(string); ok {
		return v
	}
	return ""
}

// FromContext returns a component logger from the default logger,
// annotated with the run ID carried by ctx.
func FromContext(ctx context.Context, component string) zerolog.Logger {
	l := Default().Component(component)
	if id := RunIDFromContext(ctx); id != "" {
		l = l.With().Str("run", id).Logger()
	}
	return l
}
