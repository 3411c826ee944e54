package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/INTONNATION/ton-os-dapp-server-k8s/tracing"
)

// Metric names reported by the http access handler.
const (
	HTTPRequestsName       = "http.requests"
	HTTPRequestsActiveName = "http.requests.active"
	HTTPRequestsTimingName = "http.requests.duration"
)

// httpAccessHandler provides http middleware to observe
// http metrics
type httpAccessHandler struct {
	sink Sink
	next http.Handler

	mu     sync.Mutex // guards active
	active *Gauge
}

// NewHTTPAccessHandler constructs a new middleware instance for observing
// http metrics: a request counter and a duration timing tagged by method,
// operation and status code, and a gauge of requests in flight.
func NewHTTPAccessHandler(sink Sink, next http.Handler) http.Handler {
	return &httpAccessHandler{
		sink:   orDisabled(sink),
		active: NewGauge(sink, HTTPRequestsActiveName),
		next:   next,
	}
}

func (h *httpAccessHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rw := tracing.NewHTTPResponseWriter(w)
	h.track(1)

	start := time.Now()
	h.next.ServeHTTP(rw, r)
	duration := time.Since(start)

	h.track(-1)
	tags := []string{
		"method:" + r.Method,
		"operation:" + tracing.OperationIDFrom(r.Context()),
		"statusCode:" + strconv.Itoa(rw.StatusCode()),
	}
	NewCounter(h.sink, HTTPRequestsName, tags...).Increment()
	NewTiming(h.sink, HTTPRequestsTimingName, tags...).Report(duration)
}

func (h *httpAccessHandler) track(delta float64) {
	h.mu.Lock()
	h.active.Increment(delta)
	h.mu.Unlock()
}
