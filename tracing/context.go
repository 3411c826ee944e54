package tracing

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
)

type keyType int

const (
	operationIDContextKey keyType = iota
	requestIDContextKey
	parentSpanContextKey
)

// WithOperationID creates a new context that includes the value operationID.
// Use OperationIDFrom() to get the value back out.
func WithOperationID(ctx context.Context, operationID string) context.Context {
	return context.WithValue(ctx, operationIDContextKey, operationID)
}

// OperationIDFrom returns the operationID value from context. If that value
// has not been set in the context then the empty string is returned.
func OperationIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(operationIDContextKey).(string); ok {
		return v
	}
	return ""
}

// WithRequestID creates a new context that includes the value requestID.
// Use RequestIDFrom() to get the value back out.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// RequestIDFrom returns the requestID value from context. If that value
// has not been set in the context then the empty string is returned.
func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDContextKey).(string); ok {
		return v
	}
	return ""
}

// WithParentSpan attaches an already resolved parent span context to ctx,
// for call sites that receive the parent rather than extracting it.
func WithParentSpan(ctx context.Context, parent opentracing.SpanContext) context.Context {
	return context.WithValue(ctx, parentSpanContextKey, parent)
}

// ParentSpanFrom returns whatever parent span context was attached with
// WithParentSpan, or nil.
func ParentSpanFrom(ctx context.Context) opentracing.SpanContext {
	if v, ok := ctx.Value(parentSpanContextKey).(opentracing.SpanContext); ok {
		return v
	}
	return nil
}
