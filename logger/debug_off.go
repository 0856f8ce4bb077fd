//go:build nologdebug

package logger

// DebugEnabled is false when built with the nologdebug tag. Debug call
// sites then compile to nothing.
const DebugEnabled = false
