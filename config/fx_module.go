package config

import "go.uber.org/fx"

// FXModule provides *Config loaded from the environment.
var FXModule = fx.Module("config",
	fx.Provide(Load),
)
