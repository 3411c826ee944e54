package logging

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFallsBackToGlobal(t *testing.T) {
	assert.Same(t, Global(), From(context.Background()))
	assert.Same(t, Global(), From(NewContext(context.Background(), nil)))
}

func TestNewContextAddsFields(t *testing.T) {
	outC, w := StartLogCapturing()
	logger := NewWithOutput("accounts", w)
	ctx := NewContext(context.Background(), logger, "account", "0:ab")
	From(ctx).Info("fetched")
	logger.Info("untouched")

	s := StopLogCapturing(outC, w)
	assert.Contains(t, s[0], `"account":"0:ab"`)
	assert.NotContains(t, s[1], `"account"`)
}

func TestNewRequestContext(t *testing.T) {
	outC, w := StartLogCapturing()
	ctx := NewContext(context.Background(), NewWithOutput("accounts", w))
	From(NewRequestContext(ctx, "req-1")).Info("given")
	From(NewRequestContext(ctx, "")).Info("generated")

	s := StopLogCapturing(outC, w)
	assert.Contains(t, s[0], `"requestId":"req-1"`)
	entry := parseEntry(t, s[1])
	_, err := ulid.ParseStrict(entry[RequestIDKey].(string))
	require.NoError(t, err)
}

func TestChannelOnContext(t *testing.T) {
	assert.Nil(t, ChannelFrom(context.Background()))

	g := NewGate(Lock(nil), nil)
	c := g.Channel("net")
	ctx := WithChannel(context.Background(), c)
	assert.Same(t, c, ChannelFrom(ctx))

	assert.NotPanics(t, func() {
		ChannelFrom(context.Background()).Debug("dropped")
	})
}
