package log

import (
	"context"

	"github.com/rs/zerolog"
)

type ctxKey struct{}

// WithLogger stores a logger in the context.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// Ctx retrieves the logger from the context, falling back to the global logger.
func Ctx(ctx context.Context) zerolog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
		return l
	}
	return L()
}

// WithID adds the ID being handled to the context logger.
func WithID(ctx context.Context, id string) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str(FieldID, id)
	})
}

// WithTimestamp adds a caller-supplied timestamp to the context logger.
// A nil ms leaves the context unchanged.
func WithTimestamp(ctx context.Context, ms *uint64) context.Context {
	if ms == nil {
		return ctx
	}
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Uint64(FieldTimestampMs, *ms)
	})
}

func with(ctx context.Context, fields func(zerolog.Context) zerolog.Context) context.Context {
	l := Ctx(ctx)
	return WithLogger(ctx, fields(l.With()).Logger())
}
