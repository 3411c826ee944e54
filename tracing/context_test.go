package tracing

import (
	"context"
	"testing"

	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
)

func TestOperationID(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", OperationIDFrom(ctx))
	ctx = WithOperationID(ctx, "query")
	assert.Equal(t, "query", OperationIDFrom(ctx))
}

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", RequestIDFrom(ctx))
	ctx = WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", RequestIDFrom(ctx))
}

func TestParentSpan(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ParentSpanFrom(ctx))

	parent := mocktracer.New().StartSpan("parent").Context()
	ctx = WithParentSpan(ctx, parent)
	assert.Equal(t, parent, ParentSpanFrom(ctx))

	ctx = WithParentSpan(ctx, nil)
	assert.Nil(t, ParentSpanFrom(ctx))
}
