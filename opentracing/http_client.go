package opentracing

import (
	"context"
	"io"
	"net/http"
)

// NewRequest returns a request bound to ctx with the span of ctx, if any,
// injected into its headers.
func (t *Tracer) NewRequest(ctx context.Context, method string, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if err := t.InjectHTTPRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}
