package opentracing

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/opentracing/opentracing-go/mocktracer"
)

func StartLogCapturing() (chan string, *os.File) {
	r, w, _ := os.Pipe()
	outC := make(chan string)

	// copy the output in a separate goroutine so printing can't block indefinitely
	go func() {
		var buf bytes.Buffer
		_, e := io.Copy(&buf, r)
		if e != nil {
			panic(e)
		}
		outC <- buf.String()
	}()
	return outC, w
}

func StopLogCapturing(outChannel chan string, writeStream *os.File) []string {
	if e := writeStream.Close(); e != nil {
		panic(e)
	}
	logOutput := <-outChannel
	return strings.Split(logOutput, "\n")
}

func newMockTracer(tags map[string]string, opts ...Option) (*Tracer, *mocktracer.MockTracer) {
	mt := mocktracer.New()
	return NewWithBackend(mt, tags, opts...), mt
}

func fieldsOf(record mocktracer.MockLogRecord) map[string]string {
	out := make(map[string]string, len(record.Fields))
	for _, f := range record.Fields {
		out[f.Key] = f.ValueString
	}
	return out
}
