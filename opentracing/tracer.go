package opentracing

import (
	"fmt"
	"io"
	"net"
	"strconv"

	opentracing "github.com/opentracing/opentracing-go"
	jaeger "github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"github.com/uber/jaeger-lib/metrics"

	"github.com/INTONNATION/ton-os-dapp-server-k8s/config"
	"github.com/INTONNATION/ton-os-dapp-server-k8s/logging"
)

// ChannelName is the debug channel used by the tracer.
const ChannelName = "tracer"

// A Tracer wraps a tracing backend together with the process-wide span
// tags. It is built once by the process entry point and passed down.
// The zero value is not usable; use New or NewWithBackend.
type Tracer struct {
	backend opentracing.Tracer
	closer  io.Closer
	tags    map[string]string
	channel *logging.Channel
}

type options struct {
	logger     *logging.Logger
	gate       *logging.Gate
	metrics    metrics.Factory
	jaegerOpts []jaegercfg.Option
}

// Option configures a Tracer.
type Option func(*options)

// WithLogger routes tracer backend diagnostics to logger.
func WithLogger(logger *logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithGate makes the tracer report failed spans on the "tracer" debug
// channel of gate.
func WithGate(gate *logging.Gate) Option {
	return func(o *options) {
		o.gate = gate
	}
}

// WithMetricsFactory sets the factory for the jaeger client's own metrics.
func WithMetricsFactory(factory metrics.Factory) Option {
	return func(o *options) {
		o.metrics = factory
	}
}

// WithJaegerOptions passes extra options to the jaeger client.
func WithJaegerOptions(opts ...jaegercfg.Option) Option {
	return func(o *options) {
		o.jaegerOpts = append(o.jaegerOpts, opts...)
	}
}

// New builds the tracer described by cfg. Without an endpoint the tracer
// is disabled: every operation is defined and does nothing. A bare
// "host:port" endpoint sends spans to a jaeger agent; anything with a
// protocol is used as a collector URL. Both sample every span.
func New(cfg config.Jaeger, opts ...Option) (*Tracer, error) {
	o := options{metrics: metrics.NullFactory}
	for _, opt := range opts {
		opt(&o)
	}
	var channel *logging.Channel
	if o.gate != nil {
		channel = o.gate.Channel(ChannelName)
	}

	jaegerConfig, err := jaegerConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	if jaegerConfig == nil {
		return &Tracer{
			backend: opentracing.NoopTracer{},
			closer:  nopCloser{},
			tags:    copyTags(cfg.Tags),
			channel: channel,
		}, nil
	}

	logger := newLogger(o.logger)
	jaegerOpts := append([]jaegercfg.Option{
		jaegercfg.Logger(logger),
		jaegercfg.Metrics(o.metrics),
	}, o.jaegerOpts...)
	backend, closer, err := jaegerConfig.NewTracer(jaegerOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize jaeger tracer: %w", err)
	}
	logger.logger.Info("Tracer initialized",
		"endpoint", cfg.Endpoint,
		"agent", jaegerConfig.Reporter.LocalAgentHostPort,
		"collector", jaegerConfig.Reporter.CollectorEndpoint)
	return &Tracer{
		backend: backend,
		closer:  closer,
		tags:    copyTags(cfg.Tags),
		channel: channel,
	}, nil
}

// NewWithBackend wraps an already built backend. The caller keeps
// ownership of the backend; Close on the result does nothing.
func NewWithBackend(backend opentracing.Tracer, tags map[string]string, opts ...Option) *Tracer {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	t := &Tracer{backend: backend, closer: nopCloser{}, tags: copyTags(tags)}
	if o.gate != nil {
		t.channel = o.gate.Channel(ChannelName)
	}
	return t
}

// jaegerConfiguration returns nil when cfg has no endpoint. The
// configuration starts from the JAEGER_* environment and then forces the
// endpoint, service and a constant sampler.
func jaegerConfiguration(cfg config.Jaeger) (*jaegercfg.Configuration, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}
	c, err := jaegercfg.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load jaeger environment: %w", err)
	}
	c.ServiceName = cfg.Service
	c.Sampler = &jaegercfg.SamplerConfig{
		Type:  jaeger.SamplerTypeConst,
		Param: 1,
	}
	if c.Reporter == nil {
		c.Reporter = &jaegercfg.ReporterConfig{}
	}
	c.Reporter.LogSpans = true

	parts := ParseURL(cfg.Endpoint)
	if parts.Protocol == "" {
		port := parts.Port
		if port == "" {
			port = strconv.Itoa(jaeger.DefaultUDPSpanServerPort)
		}
		c.Reporter.LocalAgentHostPort = net.JoinHostPort(parts.Host, port)
		c.Reporter.CollectorEndpoint = ""
	} else {
		c.Reporter.CollectorEndpoint = cfg.Endpoint
	}
	return c, nil
}

// Backend returns the wrapped tracing backend.
func (t *Tracer) Backend() opentracing.Tracer {
	return t.backend
}

// Tags returns a copy of the tags applied to every span.
func (t *Tracer) Tags() map[string]string {
	return copyTags(t.tags)
}

// Close flushes and releases the backend.
func (t *Tracer) Close() error {
	return t.closer.Close()
}

func copyTags(tags map[string]string) map[string]string {
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		out[k] = v
	}
	return out
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
