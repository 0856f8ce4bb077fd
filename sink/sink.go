package sink

import (
	"io"

	"go.uber.org/zap/zapcore"
)

// Sink is the destination of formatted log lines. Each Write call carries
// exactly one complete line. Implementations used from several goroutines
// must not interleave the bytes of concurrent Write calls.
//
// Sink has the method set of zapcore.WriteSyncer, so zap sinks can be
// used directly.
type Sink interface {
	Write(p []byte) (n int, err error)
	Sync() error
}

var _ Sink = zapcore.WriteSyncer(nil)

// Lock wraps w so that Write and Sync calls are serialized with a mutex.
// If w already has a Sync method it is forwarded, otherwise Sync is a no-op.
// The caller keeps ownership of w.
func Lock(w io.Writer) Sink {
	return zapcore.Lock(zapcore.AddSync(w))
}

// Discard is a Sink that drops everything.
var Discard Sink = zapcore.AddSync(io.Discard)
