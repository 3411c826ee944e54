package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(buf *bytes.Buffer, errors *Logger) *Gate {
	g := NewGate(Lock(buf), errors)
	g.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return g
}

func TestGateDebug(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGate(&buf, nil)

	c := g.Channel("net")
	assert.Equal(t, "net", c.Name())
	c.Debug("hello\nworld", 42)
	c.Debug()

	assert.Equal(t, "1700000000000\tnet\thello\\nworld\t42\n1700000000000\tnet\t\n", buf.String())
}

func TestGateStop(t *testing.T) {
	var buf bytes.Buffer
	outC, w := StartLogCapturing()
	g := newTestGate(&buf, NewWithOutput("testlogger", w))
	c := g.Channel("db")

	assert.False(t, g.Stopped())
	c.Debug("before")
	c.Error("error before")
	g.Stop()
	g.Stop()
	assert.True(t, g.Stopped())
	c.Debug("after")
	c.Error("error after")
	g.Channel("late").Debug("after")

	s := StopLogCapturing(outC, w)
	assert.Equal(t, "1700000000000\tdb\tbefore\n", buf.String())
	assert.Contains(t, s[0], `"message":"error before"`)
	assert.NotContains(t, strings.Join(s, "\n"), "error after")
}

func TestGateErrorBypassesRecordFormat(t *testing.T) {
	var buf bytes.Buffer
	outC, w := StartLogCapturing()
	g := newTestGate(&buf, NewWithOutput("testlogger", w))
	g.Channel("db").Error("line one\tcolumn", 7)
	s := StopLogCapturing(outC, w)

	assert.Empty(t, buf.String())
	assert.Contains(t, s[0], `"message":"line one\tcolumn 7"`)
}

func TestNilGateAndChannel(t *testing.T) {
	var g *Gate
	assert.True(t, g.Stopped())
	g.Stop()
	g.Debug("x", 1)
	g.Error("x")

	var c *Channel
	assert.Equal(t, "", c.Name())
	c.Debug("x")
	c.Error("x")
}

func TestNewGateDefaults(t *testing.T) {
	g := NewGate(nil, nil)
	c := g.Channel("any")
	c.Debug("discarded")
	c.Error("discarded")
	assert.False(t, g.Stopped())
}

func TestGateConcurrentDebug(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGate(&buf, nil)
	c := g.Channel("net")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c.Debug("tick", j)
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 400)
	for _, line := range lines {
		assert.Len(t, strings.Split(line, "\t"), 4)
	}
}
