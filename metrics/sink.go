package metrics

import (
	"strings"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
)

const (
	// DefaultPrefix is prepended to every metric name sent by an active sink.
	DefaultPrefix = "qserver."
	// DefaultPort is used when the server address has no port.
	DefaultPort = "8125"
)

// A Sink receives metric observations. Rates are sample rates in (0, 1];
// tags are statsd "key:value" strings.
type Sink interface {
	Increment(name string, value int64, rate float64, tags []string)
	Decrement(name string, value int64, rate float64, tags []string)
	Histogram(name string, value float64, rate float64, tags []string)
	Gauge(name string, value float64, rate float64, tags []string)
	Set(name string, value string, rate float64, tags []string)
	Timing(name string, value time.Duration, rate float64, tags []string)

	// ConfiguredTags are the tags prepended to every per-call tag set.
	ConfiguredTags() []string
	Close() error
}

type options struct {
	prefix     string
	clientOpts []statsd.Option
}

// Option configures CreateSink.
type Option func(*options)

// WithPrefix sets the name prefix of an active sink.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithClientOptions passes extra options to the statsd client.
func WithClientOptions(opts ...statsd.Option) Option {
	return func(o *options) {
		o.clientOpts = append(o.clientOpts, opts...)
	}
}

// CreateSink returns a disabled sink when server is empty. Otherwise server
// is split on its first colon into host and port and an active statsd sink
// bound to it is returned, carrying configuredTags.
func CreateSink(server string, configuredTags []string, opts ...Option) (Sink, error) {
	if server == "" {
		return disabledSink{}, nil
	}
	o := options{prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(&o)
	}
	host, port, _ := strings.Cut(server, ":")
	if port == "" {
		port = DefaultPort
	}
	clientOpts := append([]statsd.Option{
		statsd.WithNamespace(o.prefix),
		statsd.WithoutTelemetry(),
		statsd.WithoutClientSideAggregation(),
	}, o.clientOpts...)
	client, err := statsd.New(host+":"+port, clientOpts...)
	if err != nil {
		return nil, err
	}
	return newActiveSink(client, configuredTags), nil
}

// CombineTags returns the sink's configured tags followed by tags, or tags
// unchanged when the sink has none.
func CombineTags(sink Sink, tags []string) []string {
	if sink == nil {
		return tags
	}
	configured := sink.ConfiguredTags()
	if len(configured) == 0 {
		return tags
	}
	combined := make([]string, 0, len(configured)+len(tags))
	combined = append(combined, configured...)
	return append(combined, tags...)
}

// statsdClient is the part of statsd.ClientInterface used by activeSink.
type statsdClient interface {
	Count(name string, value int64, tags []string, rate float64) error
	Gauge(name string, value float64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	Set(name string, value string, tags []string, rate float64) error
	Timing(name string, value time.Duration, tags []string, rate float64) error
	Close() error
}

// activeSink forwards to a statsd client. Send errors are dropped: the
// client owns its transport.
type activeSink struct {
	client statsdClient
	tags   []string
}

func newActiveSink(client statsdClient, configuredTags []string) *activeSink {
	tags := make([]string, len(configuredTags))
	copy(tags, configuredTags)
	return &activeSink{client: client, tags: tags}
}

func (s *activeSink) Increment(name string, value int64, rate float64, tags []string) {
	_ = s.client.Count(name, value, tags, rate)
}

func (s *activeSink) Decrement(name string, value int64, rate float64, tags []string) {
	_ = s.client.Count(name, -value, tags, rate)
}

func (s *activeSink) Histogram(name string, value float64, rate float64, tags []string) {
	_ = s.client.Histogram(name, value, tags, rate)
}

func (s *activeSink) Gauge(name string, value float64, rate float64, tags []string) {
	_ = s.client.Gauge(name, value, tags, rate)
}

func (s *activeSink) Set(name string, value string, rate float64, tags []string) {
	_ = s.client.Set(name, value, tags, rate)
}

func (s *activeSink) Timing(name string, value time.Duration, rate float64, tags []string) {
	_ = s.client.Timing(name, value, tags, rate)
}

func (s *activeSink) ConfiguredTags() []string { return s.tags }

func (s *activeSink) Close() error { return s.client.Close() }

// Disabled returns a sink that accepts everything and does nothing.
func Disabled() Sink { return disabledSink{} }

type disabledSink struct{}

func (disabledSink) Increment(string, int64, float64, []string) {}
func (disabledSink) Decrement(string, int64, float64, []string) {}
func (disabledSink) Histogram(string, float64, float64, []string) {}
func (disabledSink) Gauge(string, float64, float64, []string) {}
func (disabledSink) Set(string, string, float64, []string) {}
func (disabledSink) Timing(string, time.Duration, float64, []string) {}
func (disabledSink) ConfiguredTags() []string { return nil }
func (disabledSink) Close() error { return nil }
