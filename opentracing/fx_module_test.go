package opentracing

import (
	"testing"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/INTONNATION/ton-os-dapp-server-k8s/config"
	"github.com/INTONNATION/ton-os-dapp-server-k8s/logging"
	"github.com/INTONNATION/ton-os-dapp-server-k8s/metrics"
)

func TestFXModule(t *testing.T) {
	cfg := config.Default()
	cfg.Jaeger.Tags = map[string]string{"dc": "eu"}

	var tracer *Tracer
	app := fxtest.New(t,
		fx.Supply(cfg),
		logging.FXModule,
		metrics.FXModule,
		FXModule,
		fx.Populate(&tracer),
	)
	app.RequireStart()
	assert.IsType(t, opentracing.NoopTracer{}, tracer.Backend())
	assert.Equal(t, map[string]string{"dc": "eu"}, tracer.Tags())
	app.RequireStop()
}
