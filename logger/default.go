package logger

import (
	"sync"

	"github.com/philipp01105/ranklog/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Default logger: INFO to stderr, rank taken from the MPI launcher when
	// it can be read.
	b := NewBuilder().WithLevel(core.DefaultLevel)
	if rank, err := DetectRank(); err == nil {
		b.WithRank(rank)
	}
	defaultLogger = b.Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger. A nil logger is ignored.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// SetThreshold changes the threshold of the default logger
func SetThreshold(level core.Level) error {
	return Default().SetThreshold(level)
}

// Threshold returns the threshold of the default logger
func Threshold() core.Level {
	return Default().Threshold()
}

// Log logs msg at level using the default logger
func Log(level core.Level, msg string) error {
	l := Default()
	if !compiledIn(level) || !l.Enabled(level) {
		return nil
	}
	return l.output(level, msg)
}

// LogAt logs msg at level with an explicit source location using the
// default logger
func LogAt(level core.Level, file string, line int, msg string) error {
	l := Default()
	if !compiledIn(level) || !l.Enabled(level) {
		return nil
	}
	return l.write(level, file, line, msg)
}
