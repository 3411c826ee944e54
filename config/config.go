package config

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "Q"

// Config holds the observability configuration consumed by the logging,
// metrics and opentracing packages.
type Config struct {
	Jaeger  Jaeger  `yaml:"jaeger"`
	Stats   Stats   `yaml:"stats"`
	Logging Logging `yaml:"logging"`
}

// Jaeger configures the tracer. An empty Endpoint disables tracing.
// Endpoint is either a bare host:port of a jaeger agent or a collector URL.
type Jaeger struct {
	Endpoint string            `yaml:"endpoint"`
	Service  string            `yaml:"service" default:"Q Server"`
	Tags     map[string]string `yaml:"tags"`
}

// Stats configures the statsd sink. An empty Server disables metrics.
type Stats struct {
	Server         string   `yaml:"server"`
	ConfiguredTags []string `yaml:"configuredTags" split_words:"true"`
	Prefix         string   `yaml:"prefix" default:"qserver."`
}

// Logging configures the structured logger and the debug channel.
type Logging struct {
	Service string `yaml:"service" default:"q-server"`
	Level   string `yaml:"level" default:"info"`
	Debug   bool   `yaml:"debug" default:"true"`
}

// Load loads configuration from environment variables, e.g.
// Q_JAEGER_ENDPOINT, Q_JAEGER_TAGS=env:prod,dc:eu or
// Q_STATS_CONFIGURED_TAGS=a:1,b:2.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// FromYAML parses configuration from YAML. Missing fields take the
// values of Default.
func FromYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Default returns a configuration with all backends disabled.
func Default() *Config {
	return &Config{
		Jaeger: Jaeger{
			Service: "Q Server",
			Tags:    map[string]string{},
		},
		Stats: Stats{
			Prefix: "qserver.",
		},
		Logging: Logging{
			Service: "q-server",
			Level:   "info",
			Debug:   true,
		},
	}
}
