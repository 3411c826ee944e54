package logging

import (
	"io"
	"sync/atomic"
	"time"
)

// A Gate owns the debug and error sinks shared by every Channel created from
// it. Stopping the gate silences all of its channels for good.
type Gate struct {
	stopped atomic.Bool
	debug   WriteSyncer
	errors  *Logger
	now     func() time.Time
}

// NewGate returns an open gate writing debug records to debug and passing
// error output to errors. A nil debug sink discards records, a nil errors
// logger discards error output.
func NewGate(debug WriteSyncer, errors *Logger) *Gate {
	if debug == nil {
		debug = Lock(io.Discard)
	}
	if errors == nil {
		errors = NewNop()
	}
	return &Gate{debug: debug, errors: errors, now: time.Now}
}

// Stop turns every later emission into a no-op. It cannot be undone.
func (g *Gate) Stop() {
	if g == nil {
		return
	}
	g.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (g *Gate) Stopped() bool {
	return g == nil || g.stopped.Load()
}

// Debug writes one formatted record for channel name to the debug sink.
func (g *Gate) Debug(name string, args ...interface{}) {
	if g.Stopped() {
		return
	}
	line := FormatAt(g.now(), name, args...)
	_, _ = io.WriteString(g.debug, line+"\n")
}

// Error forwards args untouched to the error sink. Unlike Debug the
// output is not escaped or tab-delimited.
func (g *Gate) Error(args ...interface{}) {
	if g.Stopped() {
		return
	}
	g.errors.Errorln(args...)
}

// Channel returns an emitter bound to name.
func (g *Gate) Channel(name string) *Channel {
	return &Channel{gate: g, name: name}
}

// A Channel is a named emitter. It holds no state besides its name and
// the gate it writes through.
type Channel struct {
	gate *Gate
	name string
}

// Name returns the channel name.
func (c *Channel) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Debug emits a debug record on the channel.
func (c *Channel) Debug(args ...interface{}) {
	if c == nil {
		return
	}
	c.gate.Debug(c.name, args...)
}

// Error emits error output through the channel's gate.
func (c *Channel) Error(args ...interface{}) {
	if c == nil {
		return
	}
	c.gate.Error(args...)
}
