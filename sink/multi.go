package sink

import (
	"go.uber.org/zap/zapcore"
)

// Multi returns a Sink that duplicates every line to all given sinks.
// A write is attempted on every child even if an earlier one fails; the
// failures are combined with multierr. Children are expected to be
// line-atomic themselves (see Lock).
func Multi(sinks ...Sink) Sink {
	if len(sinks) == 1 {
		return sinks[0]
	}
	ws := make([]zapcore.WriteSyncer, len(sinks))
	for i, s := range sinks {
		ws[i] = s
	}
	return zapcore.NewMultiWriteSyncer(ws...)
}
