package tracing

import (
	"net/http"

	"github.com/oklog/ulid/v2"
)

type requestContextHandler struct {
	next http.Handler // the next handler in the chain
}

// NewRequestContextHandler creates a request handler that extracts the request ID
// from the http request, or generates one, and adds it to the request context
// for use in logging, metrics and span tags. The operation ID is taken from the
// URL path. Use RequestIDFrom and OperationIDFrom to get the values back out.
func NewRequestContextHandler(next http.Handler) http.Handler {
	return &requestContextHandler{
		next: next,
	}
}

// ServeHTTP implements the http.Handler interface.
func (h *requestContextHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get(XRequestID)
	if len(requestID) == 0 {
		requestID = ulid.Make().String()
	}

	ctx := r.Context()
	ctx = WithRequestID(ctx, requestID)
	if len(OperationIDFrom(ctx)) == 0 {
		ctx = WithOperationID(ctx, r.Method+" "+r.URL.Path)
	}

	h.next.ServeHTTP(w, r.WithContext(ctx))
}
