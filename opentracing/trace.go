package opentracing

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	otlog "github.com/opentracing/opentracing-go/log"
	jaeger "github.com/uber/jaeger-client-go"

	"github.com/INTONNATION/ton-os-dapp-server-k8s/logging"
	"github.com/INTONNATION/ton-os-dapp-server-k8s/tracing"
)

const (
	// ResultTag holds the JSON projection of a successful result.
	ResultTag = "result"
	// FailedEvent is the event name of the log entry written on failure.
	FailedEvent = "failed"
)

// InboundRequest carries whatever the transport delivered for trace
// propagation: either text headers or an opaque binary context. Headers
// take precedence when both are set.
type InboundRequest struct {
	Headers map[string]string
	Context []byte
}

// ExtractParentSpan returns the parent span context carried by req. A
// request without tracing information yields a nil context and a nil
// error; a nil context starts a root span.
func (t *Tracer) ExtractParentSpan(req InboundRequest) (opentracing.SpanContext, error) {
	if req.Headers != nil {
		return extracted(t.backend.Extract(opentracing.TextMap, opentracing.TextMapCarrier(req.Headers)))
	}
	if len(req.Context) == 0 {
		return nil, nil
	}
	return extracted(t.backend.Extract(opentracing.Binary, bytes.NewReader(req.Context)))
}

// ExtractHTTP returns the parent span context propagated in HTTP headers.
func (t *Tracer) ExtractHTTP(header http.Header) (opentracing.SpanContext, error) {
	return extracted(t.backend.Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(header)))
}

func extracted(sc opentracing.SpanContext, err error) (opentracing.SpanContext, error) {
	if errors.Is(err, opentracing.ErrSpanContextNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// InjectBinary encodes sc in the backend's binary format, the inverse of
// ExtractParentSpan with a binary context.
func (t *Tracer) InjectBinary(sc opentracing.SpanContext) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.backend.Inject(sc, opentracing.Binary, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// InjectHTTPRequest copies the span found in the request context, if any,
// into the outgoing headers of req.
func (t *Tracer) InjectHTTPRequest(req *http.Request) error {
	span := opentracing.SpanFromContext(req.Context())
	if span == nil {
		return nil
	}
	return t.backend.Inject(span.Context(), opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(req.Header))
}

// MessageRootSpanContext derives a deterministic span context from a
// message id: the first 16 characters are the trace id and the next 16
// the span id. The same id always produces the same context, so every
// component handling a message joins one trace. Ids too short or not
// hex yield nil. The result is a jaeger span context.
func MessageRootSpanContext(messageID string) opentracing.SpanContext {
	traceID := substr(messageID, 0, 16)
	spanID := substr(messageID, 16, 16)
	if traceID == "" || spanID == "" {
		return nil
	}
	sc, err := jaeger.ContextFromString(traceID + ":" + spanID + ":0:1")
	if err != nil {
		return nil
	}
	return sc
}

func substr(s string, start, n int) string {
	if start >= len(s) {
		return ""
	}
	end := start + n
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}

// ParentSpan returns the parent span context attached to ctx with
// tracing.WithParentSpan. Failing that it returns the context of the span
// active in ctx, or nil.
func ParentSpan(ctx context.Context) opentracing.SpanContext {
	if sc := tracing.ParentSpanFrom(ctx); sc != nil {
		return sc
	}
	if span := opentracing.SpanFromContext(ctx); span != nil {
		return span.Context()
	}
	return nil
}

// Failed records err on span as a "failed" log entry with the cleaned
// error as payload. A nil err records nothing.
func Failed(span opentracing.Span, err error) {
	if err == nil {
		return
	}
	span.LogFields(
		otlog.String("event", FailedEvent),
		otlog.String("payload", logging.ToJSON(CleanError(err))),
	)
}

// StartSpan starts a server span named name as a child of parent, tagged
// with the configured tags. A nil parent starts a root span.
func (t *Tracer) StartSpan(name string, parent opentracing.SpanContext) opentracing.Span {
	span := t.backend.StartSpan(name, opentracing.ChildOf(parent))
	ext.SpanKindRPCServer.Set(span)
	for k, v := range t.tags {
		if k == "" {
			continue
		}
		span.SetTag(k, v)
	}
	return span
}

// Trace runs work inside a new span. The span is in the context handed to
// work. When work returns an error the span gets a "failed" log entry and
// the cleaned error is returned. A panic in work is recorded the same way
// and then re-raised. The span is finished exactly once on every path.
func (t *Tracer) Trace(ctx context.Context, name string, parent opentracing.SpanContext, work func(context.Context, opentracing.Span) error) error {
	_, err := trace(ctx, t, name, parent, false, func(ctx context.Context, span opentracing.Span) (struct{}, error) {
		return struct{}{}, work(ctx, span)
	})
	return err
}

// TraceValue is Trace for work that produces a value. On success the span
// is tagged with the JSON projection of the value under "result"; a nil
// interface value is not tagged.
func TraceValue[T any](ctx context.Context, t *Tracer, name string, parent opentracing.SpanContext, work func(context.Context, opentracing.Span) (T, error)) (T, error) {
	return trace(ctx, t, name, parent, true, work)
}

func trace[T any](ctx context.Context, t *Tracer, name string, parent opentracing.SpanContext, tagResult bool, work func(context.Context, opentracing.Span) (T, error)) (result T, err error) {
	span := t.StartSpan(name, parent)
	finished := false
	finish := func() {
		finished = true
		span.Finish()
	}
	defer func() {
		if finished {
			return
		}
		r := recover()
		if r == nil {
			finish()
			return
		}
		t.fail(span, name, CleanError(panicError(r)))
		finish()
		panic(r)
	}()

	result, err = work(opentracing.ContextWithSpan(ctx, span), span)
	if err != nil {
		cleaned := CleanError(err)
		t.fail(span, name, cleaned)
		finish()
		var zero T
		return zero, cleaned
	}
	if tagResult && any(result) != nil {
		span.SetTag(ResultTag, logging.ToJSON(result))
	}
	finish()
	return result, nil
}

func (t *Tracer) fail(span opentracing.Span, name string, err *Error) {
	Failed(span, err)
	t.channel.Debug(FailedEvent, name, err)
}
