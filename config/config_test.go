package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Jaeger.Endpoint)
	assert.Equal(t, "Q Server", cfg.Jaeger.Service)
	assert.Equal(t, "", cfg.Stats.Server)
	assert.Equal(t, "qserver.", cfg.Stats.Prefix)
	assert.Equal(t, "q-server", cfg.Logging.Service)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Debug)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("Q_JAEGER_ENDPOINT", "jaeger-agent:6831")
	t.Setenv("Q_JAEGER_SERVICE", "svc")
	t.Setenv("Q_JAEGER_TAGS", "env:prod,dc:eu")
	t.Setenv("Q_STATS_SERVER", "statsd:8125")
	t.Setenv("Q_STATS_CONFIGURED_TAGS", "a:1,b:2")
	t.Setenv("Q_STATS_PREFIX", "q.")
	t.Setenv("Q_LOGGING_LEVEL", "debug")
	t.Setenv("Q_LOGGING_DEBUG", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Jaeger{
		Endpoint: "jaeger-agent:6831",
		Service:  "svc",
		Tags:     map[string]string{"env": "prod", "dc": "eu"},
	}, cfg.Jaeger)
	assert.Equal(t, Stats{
		Server:         "statsd:8125",
		ConfiguredTags: []string{"a:1", "b:2"},
		Prefix:         "q.",
	}, cfg.Stats)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Debug)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("Q_LOGGING_DEBUG", "sometimes")
	_, err := Load()
	assert.ErrorContains(t, err, "failed to load config")
}

func TestFromYAML(t *testing.T) {
	cfg, err := FromYAML([]byte(`
jaeger:
  endpoint: http://collector:14268/api/traces
  tags:
    env: prod
stats:
  server: statsd
  configuredTags: [a:1, b:2]
logging:
  level: warn
`))
	require.NoError(t, err)
	assert.Equal(t, "http://collector:14268/api/traces", cfg.Jaeger.Endpoint)
	assert.Equal(t, "Q Server", cfg.Jaeger.Service)
	assert.Equal(t, map[string]string{"env": "prod"}, cfg.Jaeger.Tags)
	assert.Equal(t, "statsd", cfg.Stats.Server)
	assert.Equal(t, []string{"a:1", "b:2"}, cfg.Stats.ConfiguredTags)
	assert.Equal(t, "qserver.", cfg.Stats.Prefix)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Debug)
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := FromYAML([]byte("jaeger: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.Jaeger.Endpoint)
	assert.NotNil(t, cfg.Jaeger.Tags)
	assert.Empty(t, cfg.Stats.Server)
	assert.NotSame(t, cfg, Default())
}

func TestFXModule(t *testing.T) {
	t.Setenv("Q_STATS_SERVER", "statsd")
	var cfg *Config
	app := fxtest.New(t, FXModule, fx.Populate(&cfg))
	app.RequireStart()
	assert.Equal(t, "statsd", cfg.Stats.Server)
	app.RequireStop()
}
