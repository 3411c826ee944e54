package metrics

import (
	"context"

	"go.uber.org/fx"

	"github.com/INTONNATION/ton-os-dapp-server-k8s/config"
)

// FXModule provides the Sink selected by *config.Config and closes it
// when the application stops.
var FXModule = fx.Module("metrics",
	fx.Provide(NewSinkFromConfig),
	fx.Invoke(RegisterSinkLifecycle),
)

// NewSinkFromConfig creates a Sink from the stats section of cfg.
func NewSinkFromConfig(cfg *config.Config) (Sink, error) {
	return CreateSink(cfg.Stats.Server, cfg.Stats.ConfiguredTags, WithPrefix(cfg.Stats.Prefix))
}

// RegisterSinkLifecycle closes sink on application stop, flushing buffered metrics.
func RegisterSinkLifecycle(lc fx.Lifecycle, sink Sink) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return sink.Close()
		},
	})
}
