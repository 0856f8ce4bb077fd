//go:build !logtrace

package logger

// TraceEnabled is true only when built with the logtrace tag. Without it
// Trace call sites compile to nothing.
const TraceEnabled = false
