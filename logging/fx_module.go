package logging

import (
	"context"
	"os"

	"go.uber.org/fx"

	"github.com/INTONNATION/ton-os-dapp-server-k8s/config"
)

// FXModule provides the service *Logger and the debug *Gate described by
// *config.Config. The gate is stopped and the logger flushed on shutdown.
var FXModule = fx.Module("logging",
	fx.Provide(NewLoggerFromConfig, NewGateFromConfig),
	fx.Invoke(RegisterLifecycle),
)

// NewLoggerFromConfig creates the service logger and installs it as the
// global logger.
func NewLoggerFromConfig(cfg *config.Config) (*Logger, error) {
	level, err := ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	logger := New(cfg.Logging.Service)
	logger.SetLevel(level)
	SetGlobalLogger(logger)
	return logger, nil
}

// NewGateFromConfig creates a gate writing debug records to stdout. The
// gate starts stopped when debug output is disabled.
func NewGateFromConfig(cfg *config.Config, logger *Logger) *Gate {
	gate := NewGate(Lock(os.Stdout), logger)
	if !cfg.Logging.Debug {
		gate.Stop()
	}
	return gate
}

// RegisterLifecycle stops gate and flushes logger when the application stops.
func RegisterLifecycle(lc fx.Lifecycle, gate *Gate, logger *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			gate.Stop()
			logger.Flush()
			return nil
		},
	})
}
