package metrics

import (
	"sort"
	"time"

	jmetrics "github.com/uber/jaeger-lib/metrics"
)

// JaegerFactory returns a jaeger-lib metrics factory reporting to sink, so
// that the tracer backend's own counters, gauges and timers are sent with
// the rest of the service metrics. Namespaces join names with a dot and
// tags become "key:value" pairs after the sink's configured tags.
func JaegerFactory(sink Sink) jmetrics.Factory {
	return &jaegerFactory{sink: orDisabled(sink)}
}

type jaegerFactory struct {
	sink      Sink
	namespace string
	tags      map[string]string
}

func (f *jaegerFactory) name(name string) string {
	switch {
	case f.namespace == "":
		return name
	case name == "":
		return f.namespace
	}
	return f.namespace + "." + name
}

func (f *jaegerFactory) mergedTags(tags map[string]string) map[string]string {
	merged := make(map[string]string, len(f.tags)+len(tags))
	for k, v := range f.tags {
		merged[k] = v
	}
	for k, v := range tags {
		merged[k] = v
	}
	return merged
}

// statsdTags renders tags sorted by key, prefixed with the configured tags.
func (f *jaegerFactory) statsdTags(tags map[string]string) []string {
	merged := f.mergedTags(tags)
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+":"+merged[k])
	}
	return CombineTags(f.sink, out)
}

func (f *jaegerFactory) Counter(o jmetrics.Options) jmetrics.Counter {
	return jaegerCounter{sink: f.sink, name: f.name(o.Name), tags: f.statsdTags(o.Tags)}
}

func (f *jaegerFactory) Timer(o jmetrics.TimerOptions) jmetrics.Timer {
	return jaegerTimer{sink: f.sink, name: f.name(o.Name), tags: f.statsdTags(o.Tags)}
}

func (f *jaegerFactory) Gauge(o jmetrics.Options) jmetrics.Gauge {
	return jaegerGauge{sink: f.sink, name: f.name(o.Name), tags: f.statsdTags(o.Tags)}
}

func (f *jaegerFactory) Histogram(o jmetrics.HistogramOptions) jmetrics.Histogram {
	return jaegerHistogram{sink: f.sink, name: f.name(o.Name), tags: f.statsdTags(o.Tags)}
}

func (f *jaegerFactory) Namespace(scope jmetrics.NSOptions) jmetrics.Factory {
	return &jaegerFactory{
		sink:      f.sink,
		namespace: f.name(scope.Name),
		tags:      f.mergedTags(scope.Tags),
	}
}

type jaegerCounter struct {
	sink Sink
	name string
	tags []string
}

func (c jaegerCounter) Inc(delta int64) { c.sink.Increment(c.name, delta, 1, c.tags) }

type jaegerTimer struct {
	sink Sink
	name string
	tags []string
}

func (t jaegerTimer) Record(d time.Duration) { t.sink.Timing(t.name, d, 1, t.tags) }

type jaegerGauge struct {
	sink Sink
	name string
	tags []string
}

func (g jaegerGauge) Update(v int64) { g.sink.Gauge(g.name, float64(v), 1, g.tags) }

type jaegerHistogram struct {
	sink Sink
	name string
	tags []string
}

func (h jaegerHistogram) Record(v float64) { h.sink.Histogram(h.name, v, 1, h.tags) }
