package opentracing

import (
	"context"
	"net"
	"net/http"
	"strconv"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"

	"github.com/INTONNATION/ton-os-dapp-server-k8s/logging"
	"github.com/INTONNATION/ton-os-dapp-server-k8s/tracing"
)

// httpTracingHandler provides http middleware that runs every request
// inside a server span.
type httpTracingHandler struct {
	tracer *Tracer
	next   http.Handler
}

// NewHTTPTracingHandler constructs a middleware that traces each incoming
// request. A span propagated in the request headers becomes the parent;
// otherwise a root span is started. The span is named after the operation
// id in the request context, falling back to "METHOD /path".
func NewHTTPTracingHandler(tracer *Tracer, next http.Handler) http.Handler {
	return &httpTracingHandler{tracer: tracer, next: next}
}

func (h *httpTracingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	parent, err := h.tracer.ExtractHTTP(r.Header)
	if err != nil {
		logging.From(ctx).Warn("Error extracting span from HTTP request", logging.ErrorKey, err)
	}
	operation := tracing.OperationIDFrom(ctx)
	if operation == "" {
		operation = r.Method + " " + r.URL.Path
	}

	rw := tracing.NewHTTPResponseWriter(w)
	_ = h.tracer.Trace(ctx, operation, parent, func(ctx context.Context, span opentracing.Span) error {
		ext.HTTPMethod.Set(span, r.Method)
		ext.HTTPUrl.Set(span, r.URL.String())
		if id := tracing.RequestIDFrom(ctx); id != "" {
			span.SetTag(tracing.RequestIDKey, id)
		}
		h.next.ServeHTTP(rw, r.WithContext(ctx))
		ext.HTTPStatusCode.Set(span, uint16(rw.StatusCode()))
		if rw.StatusCode() >= http.StatusInternalServerError {
			ext.Error.Set(span, true)
		}
		return nil
	})
}

// transport is an http.RoundTripper that wraps each outgoing request in a
// client span.
type transport struct {
	tracer *Tracer
	base   http.RoundTripper
}

// NewTransport returns a RoundTripper that starts a client span, child of
// the span in the request context, for every request and propagates it in
// the request headers. A nil base uses http.DefaultTransport.
func NewTransport(tracer *Tracer, base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &transport{tracer: tracer, base: base}
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	var parent opentracing.SpanContext
	if span := opentracing.SpanFromContext(req.Context()); span != nil {
		parent = span.Context()
	}
	span := t.tracer.backend.StartSpan(req.Method+" "+req.URL.Path, opentracing.ChildOf(parent))
	defer span.Finish()
	ext.SpanKindRPCClient.Set(span)
	tagHTTPClientRequest(span, req)

	// RoundTrip must not modify the caller's request.
	out := req.Clone(req.Context())
	if err := t.tracer.backend.Inject(span.Context(), opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(out.Header)); err != nil {
		ext.Error.Set(span, true)
	}
	resp, err := t.base.RoundTrip(out)
	if err != nil {
		ext.Error.Set(span, true)
		Failed(span, err)
		return nil, err
	}
	ext.HTTPStatusCode.Set(span, uint16(resp.StatusCode))
	if resp.StatusCode >= http.StatusInternalServerError {
		ext.Error.Set(span, true)
	}
	return resp, nil
}

// tagHTTPClientRequest adds the method, url and peer of req to span.
func tagHTTPClientRequest(span opentracing.Span, req *http.Request) {
	ext.HTTPMethod.Set(span, req.Method)
	ext.HTTPUrl.Set(span, req.URL.Scheme+"://"+req.URL.Host+req.URL.Path)

	host, portString, err := net.SplitHostPort(req.URL.Host)
	if err != nil {
		ext.PeerHostname.Set(span, req.URL.Host)
		return
	}
	ext.PeerHostname.Set(span, host)
	if port, err := strconv.Atoi(portString); err == nil {
		ext.PeerPort.Set(span, uint16(port))
	}
}
