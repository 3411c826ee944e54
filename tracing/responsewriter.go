package tracing

import (
	"net/http"
)

// HTTPResponseWriter wraps an http.ResponseWriter to capture the
// response status code and size.
type HTTPResponseWriter struct {
	w             http.ResponseWriter
	responseBytes uint64
	statusCode    int
}

func NewHTTPResponseWriter(w http.ResponseWriter) *HTTPResponseWriter {
	return &HTTPResponseWriter{w: w}
}

// Implements http.ResponseWriter
func (r *HTTPResponseWriter) Write(b []byte) (int, error) {
	if r.statusCode == 0 {
		r.statusCode = http.StatusOK
	}
	n, err := r.w.Write(b)
	r.responseBytes += uint64(n)
	return n, err
}

// Implements http.ResponseWriter
func (r *HTTPResponseWriter) WriteHeader(statusCode int) {
	if r.statusCode == 0 {
		r.statusCode = statusCode
	}
	r.w.WriteHeader(statusCode)
}

// Implements http.ResponseWriter
func (r *HTTPResponseWriter) Header() http.Header {
	return r.w.Header()
}

func (r *HTTPResponseWriter) ResponseBytes() uint64 {
	return r.responseBytes
}

// StatusCode returns the status written so far. A handler that wrote
// nothing is reported as 200, which is what net/http sends for it.
func (r *HTTPResponseWriter) StatusCode() int {
	if r.statusCode == 0 {
		return http.StatusOK
	}
	return r.statusCode
}
