package logging

import (
	"io"

	"go.uber.org/zap/zapcore"
)

type WriteSyncer = zapcore.WriteSyncer

// Lock converts a generic io.Writer into a WriteSyncer that is safe for
// concurrent use. A nil writer discards everything.
func Lock(w io.Writer) WriteSyncer {
	if w == nil {
		w = io.Discard
	}
	// AddSync gives writers without Sync a no-op one.
	writer := zapcore.AddSync(w)
	return zapcore.Lock(writer)
}
