package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const entries = `{"level":"INFO","time":"2023-11-14T22:13:20.123Z","file":"server/main.go:42","message":"Server started","service":"q-server","port":4000}
garbage
{"level":"ERROR","time":"2023-11-14T22:13:21.000Z","message":"Tracer backend error","error":"cannot flush spans","component":"jaeger"}
`

func TestPPLog(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, exec(strings.NewReader(entries), &out, []string{"-no-color", "-omit", "service"}))
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `1114 22:13:20.123 INFO  server/main.go:42      | "Server started" port=4000`, lines[0])
	assert.Equal(t, "garbage", lines[1])
	assert.Equal(t, `1114 22:13:21     ERROR                        | "Tracer backend error" component=jaeger error="cannot flush spans"`, lines[2])
}

func TestPPLogColors(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, exec(strings.NewReader(entries), &out, nil))
	assert.Contains(t, out.String(), "\x1b[32mINFO \x1b[0m")
	assert.Contains(t, out.String(), "\x1b[31mERROR\x1b[0m")
	assert.Contains(t, out.String(), "service=q-server")
}
