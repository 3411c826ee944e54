package logging

import (
	"net/http"
	"time"

	"github.com/INTONNATION/ton-os-dapp-server-k8s/tracing"
)

// httpAccessHandler writes http access records to a debug channel
type httpAccessHandler struct {
	channel *Channel
	next    http.Handler
}

// NewHTTPAccessHandler constructs a new middleware instance emitting one
// debug record per handled request on channel.
func NewHTTPAccessHandler(channel *Channel, next http.Handler) http.Handler {
	return &httpAccessHandler{channel: channel, next: next}
}

// ServeHTTP implements http.Handler interface
func (h *httpAccessHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rw := tracing.NewHTTPResponseWriter(w)
	start := time.Now()
	h.next.ServeHTTP(rw, r)
	duration := time.Since(start)

	ctx := r.Context()
	h.channel.Debug("Handled request", map[string]interface{}{
		"method":        r.Method,
		"operation":     tracing.OperationIDFrom(ctx),
		"requestId":     tracing.RequestIDFrom(ctx),
		"code":          rw.StatusCode(),
		"responseBytes": rw.ResponseBytes(),
		"durationMS":    duration.Milliseconds(),
		"path":          r.URL.Path,
		"rawQuery":      r.URL.RawQuery,
	})
}

type requestLoggerHandler struct {
	handler      http.Handler // the next handler in the chain
	parentLogger *Logger
	channel      *Channel
}

// NewRequestLoggerHandler creates a middleware instance that adds the request
// logger and the debug channel to the http request context. The request logger
// includes the request id if one is found on context (see the tracing package).
// If parentLogger is nil then the global logger will be used as the parent logger.
func NewRequestLoggerHandler(parentLogger *Logger, channel *Channel, handler http.Handler) http.Handler {
	return &requestLoggerHandler{
		handler:      handler,
		parentLogger: parentLogger,
		channel:      channel,
	}
}

// ServeHTTP implements the http.Handler interface.
func (h *requestLoggerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.parentLogger != nil {
		ctx = NewContext(ctx, h.parentLogger)
	}
	if requestID := tracing.RequestIDFrom(ctx); len(requestID) > 0 {
		ctx = NewRequestContext(ctx, requestID)
	}
	if h.channel != nil {
		ctx = WithChannel(ctx, h.channel)
	}
	r = r.WithContext(ctx)
	h.handler.ServeHTTP(w, r)
}
