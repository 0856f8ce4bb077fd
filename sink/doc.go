// Package sink provides the destinations ranklog writes lines to.
//
// The logger does not own its sink: it only appends complete lines and
// asks for Sync. Line atomicity is the sink's job. Lock wraps any
// io.Writer with a mutex (zapcore.Lock), Open hands out zap's locked
// stdout/stderr/file sinks, and Multi fans a line out to several sinks,
// combining failures with multierr.
//
// Write errors are never swallowed or retried here; they travel back to
// the log call that produced the line.
//
// Counting wraps a sink with atomic counters of written lines, bytes and
// failures for monitoring.
package sink
