package metrics

import "time"

// A Counter is a monotonic metric. Its tags are resolved once at construction.
type Counter struct {
	sink Sink
	name string
	tags []string
}

// NewCounter returns a counter named name reporting to sink, which may be nil.
func NewCounter(sink Sink, name string, tags ...string) *Counter {
	sink = orDisabled(sink)
	return &Counter{sink: sink, name: name, tags: CombineTags(sink, tags)}
}

// Increment adds one.
func (c *Counter) Increment() {
	c.sink.Increment(c.name, 1, 1, c.tags)
}

// A Gauge tracks a current value and reports it on every change. A gauge
// must have a single writer; it does no locking.
type Gauge struct {
	sink  Sink
	name  string
	tags  []string
	value float64
}

// NewGauge returns a gauge starting at zero.
func NewGauge(sink Sink, name string, tags ...string) *Gauge {
	sink = orDisabled(sink)
	return &Gauge{sink: sink, name: name, tags: CombineTags(sink, tags)}
}

// Set stores v and reports it.
func (g *Gauge) Set(v float64) {
	g.value = v
	g.sink.Gauge(g.name, g.value, 1, g.tags)
}

// Increment adds delta, or 1 when no delta is given.
func (g *Gauge) Increment(delta ...float64) {
	g.Set(g.value + step(delta))
}

// Decrement subtracts delta, or 1 when no delta is given.
func (g *Gauge) Decrement(delta ...float64) {
	g.Set(g.value - step(delta))
}

// Value returns the last value set.
func (g *Gauge) Value() float64 {
	return g.value
}

func step(delta []float64) float64 {
	if len(delta) == 0 {
		return 1
	}
	return delta[0]
}

// A Timing reports durations.
type Timing struct {
	sink Sink
	name string
	tags []string
	now  func() time.Time
}

// NewTiming returns a timing named name reporting to sink.
func NewTiming(sink Sink, name string, tags ...string) *Timing {
	sink = orDisabled(sink)
	return &Timing{sink: sink, name: name, tags: CombineTags(sink, tags), now: time.Now}
}

// Report emits one timing sample.
func (t *Timing) Report(d time.Duration) {
	t.sink.Timing(t.name, d, 1, t.tags)
}

// Start captures the current time and returns a function reporting the
// time elapsed since. Every call of the returned function reports again.
func (t *Timing) Start() func() {
	start := t.now()
	return func() {
		t.Report(t.now().Sub(start))
	}
}

func orDisabled(sink Sink) Sink {
	if sink == nil {
		return disabledSink{}
	}
	return sink
}
