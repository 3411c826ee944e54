/*
Package opentracing is the tracer facade of the service. A Tracer is built
once from config.Jaeger and passed to whatever needs to trace work.

Without an endpoint the tracer is disabled and every span is a no-op.
With a bare "host:port" endpoint spans are sent to a jaeger agent over
UDP, with a URL they are posted to a jaeger collector.

	tracer, err := opentracing.New(cfg.Jaeger, opentracing.WithLogger(logger))
	if err != nil {
		return err
	}
	defer tracer.Close()

	parent, _ := tracer.ExtractParentSpan(opentracing.InboundRequest{Headers: headers})
	err = tracer.Trace(ctx, "handleMessage", parent, func(ctx context.Context, span opentracing.Span) error {
		return handle(ctx)
	})

Messages that carry no propagated context can still share a trace by
deriving the parent from their id with MessageRootSpanContext.
*/
package opentracing
