package logging

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type keyType int

const (
	loggerContextKey keyType = iota
	channelContextKey
)

// From returns the logger in ctx. If no logger is found then the global
// logger is returned. For example if you pass context.Background() then
// you will get back the global logger. From will panic if ctx is nil.
func From(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerContextKey).(*Logger); ok && l != nil {
		return l
	}
	return Global()
}

// NewContext creates a new context that includes logger as a value.
// Optional fields are added to the logger with With.
// The logger can be retrieved using logging.From(ctx)
func NewContext(ctx context.Context, logger *Logger, fields ...interface{}) context.Context {
	if logger != nil {
		logger = logger.With(fields...)
	}
	return context.WithValue(ctx, loggerContextKey, logger)
}

// NewRequestContext creates a context with a new request logger. The request
// logger will include the requestId in each entry. The request logger is
// derived from the logger found by calling logging.From(ctx). If requestID
// is empty a new ULID is generated.
func NewRequestContext(ctx context.Context, requestID string) context.Context {
	if len(requestID) == 0 {
		requestID = ulid.Make().String()
	}
	logger := From(ctx)
	if logger == nil {
		return ctx
	}
	return NewContext(ctx, logger, RequestIDKey, requestID)
}

// WithChannel returns a context carrying the debug channel c.
func WithChannel(ctx context.Context, c *Channel) context.Context {
	return context.WithValue(ctx, channelContextKey, c)
}

// ChannelFrom returns the debug channel in ctx, or nil. A nil channel
// drops everything, so the result is always safe to use.
func ChannelFrom(ctx context.Context) *Channel {
	c, _ := ctx.Value(channelContextKey).(*Channel)
	return c
}
