package opentracing

import (
	"context"

	"go.uber.org/fx"

	"github.com/INTONNATION/ton-os-dapp-server-k8s/config"
	"github.com/INTONNATION/ton-os-dapp-server-k8s/logging"
	"github.com/INTONNATION/ton-os-dapp-server-k8s/metrics"
)

// FXModule provides the *Tracer described by *config.Config and closes it
// when the application stops. It needs the providers of logging.FXModule
// and metrics.FXModule.
var FXModule = fx.Module("opentracing",
	fx.Provide(NewTracerFromConfig),
	fx.Invoke(RegisterTracerLifecycle),
)

// NewTracerFromConfig creates a Tracer from the jaeger section of cfg. The
// backend's own metrics are reported to sink.
func NewTracerFromConfig(cfg *config.Config, logger *logging.Logger, gate *logging.Gate, sink metrics.Sink) (*Tracer, error) {
	return New(cfg.Jaeger,
		WithLogger(logger),
		WithGate(gate),
		WithMetricsFactory(metrics.JaegerFactory(sink)),
	)
}

// RegisterTracerLifecycle closes tracer on application stop, flushing
// buffered spans.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tracer.Close()
		},
	})
}
