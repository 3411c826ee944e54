package opentracing

import (
	"errors"
	"fmt"
	"strings"

	jaegerLogger "github.com/uber/jaeger-client-go/log"

	"github.com/INTONNATION/ton-os-dapp-server-k8s/logging"
)

// Logger adapts a logging.Logger to the jaeger reporter logger so that the
// tracer backend writes in the same format as the rest of the service.
type Logger struct {
	logger *logging.Logger
}

var _ jaegerLogger.DebugLogger = (*Logger)(nil)

func newLogger(logger *logging.Logger) *Logger {
	if logger == nil {
		logger = logging.Global()
	}
	return &Logger{logger: logger.With(logging.ComponentKey, "jaeger")}
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.logger.Error(errors.New(msg), "Tracer backend error")
}

// Infof logs a info message
func (l *Logger) Infof(msg string, args ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(msg, args...)))
}

// Debugf logs a debug message
func (l *Logger) Debugf(msg string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(msg, args...)))
}
