package logger

import (
	"fmt"

	"github.com/philipp01105/ranklog/core"
)

// Fatal logs a fatal message. It never exits the process.
func (l *Logger) Fatal(msg string) error {
	if !l.Enabled(core.FatalLevel) {
		return nil
	}
	return l.output(core.FatalLevel, msg)
}

// Fatalf logs a fatal message with formatting
func (l *Logger) Fatalf(format string, args ...interface{}) error {
	if !l.Enabled(core.FatalLevel) {
		return nil
	}
	return l.output(core.FatalLevel, fmt.Sprintf(format, args...))
}

// FatalRoot logs a fatal message on the root rank only
func (l *Logger) FatalRoot(msg string) error {
	if !l.EnabledRoot(core.FatalLevel) {
		return nil
	}
	return l.output(core.FatalLevel, msg)
}

// FatalRootf logs a fatal message with formatting on the root rank only
func (l *Logger) FatalRootf(format string, args ...interface{}) error {
	if !l.EnabledRoot(core.FatalLevel) {
		return nil
	}
	return l.output(core.FatalLevel, fmt.Sprintf(format, args...))
}

// Error logs an error message
func (l *Logger) Error(msg string) error {
	if !l.Enabled(core.ErrorLevel) {
		return nil
	}
	return l.output(core.ErrorLevel, msg)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) error {
	if !l.Enabled(core.ErrorLevel) {
		return nil
	}
	return l.output(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// ErrorRoot logs an error message on the root rank only
func (l *Logger) ErrorRoot(msg string) error {
	if !l.EnabledRoot(core.ErrorLevel) {
		return nil
	}
	return l.output(core.ErrorLevel, msg)
}

// ErrorRootf logs an error message with formatting on the root rank only
func (l *Logger) ErrorRootf(format string, args ...interface{}) error {
	if !l.EnabledRoot(core.ErrorLevel) {
		return nil
	}
	return l.output(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) error {
	if !l.Enabled(core.WarnLevel) {
		return nil
	}
	return l.output(core.WarnLevel, msg)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) error {
	if !l.Enabled(core.WarnLevel) {
		return nil
	}
	return l.output(core.WarnLevel, fmt.Sprintf(format, args...))
}

// WarnRoot logs a warning message on the root rank only
func (l *Logger) WarnRoot(msg string) error {
	if !l.EnabledRoot(core.WarnLevel) {
		return nil
	}
	return l.output(core.WarnLevel, msg)
}

// WarnRootf logs a warning message with formatting on the root rank only
func (l *Logger) WarnRootf(format string, args ...interface{}) error {
	if !l.EnabledRoot(core.WarnLevel) {
		return nil
	}
	return l.output(core.WarnLevel, fmt.Sprintf(format, args...))
}

// Info logs an info message
func (l *Logger) Info(msg string) error {
	if !l.Enabled(core.InfoLevel) {
		return nil
	}
	return l.output(core.InfoLevel, msg)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) error {
	if !l.Enabled(core.InfoLevel) {
		return nil
	}
	return l.output(core.InfoLevel, fmt.Sprintf(format, args...))
}

// InfoRoot logs an info message on the root rank only
func (l *Logger) InfoRoot(msg string) error {
	if !l.EnabledRoot(core.InfoLevel) {
		return nil
	}
	return l.output(core.InfoLevel, msg)
}

// InfoRootf logs an info message with formatting on the root rank only
func (l *Logger) InfoRootf(format string, args ...interface{}) error {
	if !l.EnabledRoot(core.InfoLevel) {
		return nil
	}
	return l.output(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) error {
	if !DebugEnabled || !l.Enabled(core.DebugLevel) {
		return nil
	}
	return l.output(core.DebugLevel, msg)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) error {
	if !DebugEnabled || !l.Enabled(core.DebugLevel) {
		return nil
	}
	return l.output(core.DebugLevel, fmt.Sprintf(format, args...))
}

// DebugRoot logs a debug message on the root rank only
func (l *Logger) DebugRoot(msg string) error {
	if !DebugEnabled || !l.EnabledRoot(core.DebugLevel) {
		return nil
	}
	return l.output(core.DebugLevel, msg)
}

// DebugRootf logs a debug message with formatting on the root rank only
func (l *Logger) DebugRootf(format string, args ...interface{}) error {
	if !DebugEnabled || !l.EnabledRoot(core.DebugLevel) {
		return nil
	}
	return l.output(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Trace logs a trace message
func (l *Logger) Trace(msg string) error {
	if !TraceEnabled || !l.Enabled(core.TraceLevel) {
		return nil
	}
	return l.output(core.TraceLevel, msg)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) error {
	if !TraceEnabled || !l.Enabled(core.TraceLevel) {
		return nil
	}
	return l.output(core.TraceLevel, fmt.Sprintf(format, args...))
}

// TraceRoot logs a trace message on the root rank only
func (l *Logger) TraceRoot(msg string) error {
	if !TraceEnabled || !l.EnabledRoot(core.TraceLevel) {
		return nil
	}
	return l.output(core.TraceLevel, msg)
}

// TraceRootf logs a trace message with formatting on the root rank only
func (l *Logger) TraceRootf(format string, args ...interface{}) error {
	if !TraceEnabled || !l.EnabledRoot(core.TraceLevel) {
		return nil
	}
	return l.output(core.TraceLevel, fmt.Sprintf(format, args...))
}

// Log logs msg at level
func (l *Logger) Log(level core.Level, msg string) error {
	if !compiledIn(level) || !l.Enabled(level) {
		return nil
	}
	return l.output(level, msg)
}

// Logf logs a formatted message at level
func (l *Logger) Logf(level core.Level, format string, args ...interface{}) error {
	if !compiledIn(level) || !l.Enabled(level) {
		return nil
	}
	return l.output(level, fmt.Sprintf(format, args...))
}

// LogAt logs msg at level with an explicit source location, for callers
// that carry their own file and line (generated code, adapters).
func (l *Logger) LogAt(level core.Level, file string, line int, msg string) error {
	if !compiledIn(level) || !l.Enabled(level) {
		return nil
	}
	return l.write(level, file, line, msg)
}

// LogRootAt is LogAt restricted to the root rank.
func (l *Logger) LogRootAt(level core.Level, file string, line int, msg string) error {
	if !compiledIn(level) || !l.EnabledRoot(level) {
		return nil
	}
	return l.write(level, file, line, msg)
}
