package logger

import (
	"fmt"

	"github.com/philipp01105/ranklog/core"
)

// Fatal logs a fatal message using the default logger
func Fatal(msg string) error {
	l := Default()
	if !l.Enabled(core.FatalLevel) {
		return nil
	}
	return l.output(core.FatalLevel, msg)
}

// Fatalf logs a formatted fatal message using the default logger
func Fatalf(format string, args ...interface{}) error {
	l := Default()
	if !l.Enabled(core.FatalLevel) {
		return nil
	}
	return l.output(core.FatalLevel, fmt.Sprintf(format, args...))
}

// FatalRoot logs a fatal message on the root rank using the default logger
func FatalRoot(msg string) error {
	l := Default()
	if !l.EnabledRoot(core.FatalLevel) {
		return nil
	}
	return l.output(core.FatalLevel, msg)
}

// FatalRootf logs a formatted fatal message on the root rank using the default logger
func FatalRootf(format string, args ...interface{}) error {
	l := Default()
	if !l.EnabledRoot(core.FatalLevel) {
		return nil
	}
	return l.output(core.FatalLevel, fmt.Sprintf(format, args...))
}

// Error logs an error message using the default logger
func Error(msg string) error {
	l := Default()
	if !l.Enabled(core.ErrorLevel) {
		return nil
	}
	return l.output(core.ErrorLevel, msg)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) error {
	l := Default()
	if !l.Enabled(core.ErrorLevel) {
		return nil
	}
	return l.output(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// ErrorRoot logs an error message on the root rank using the default logger
func ErrorRoot(msg string) error {
	l := Default()
	if !l.EnabledRoot(core.ErrorLevel) {
		return nil
	}
	return l.output(core.ErrorLevel, msg)
}

// ErrorRootf logs a formatted error message on the root rank using the default logger
func ErrorRootf(format string, args ...interface{}) error {
	l := Default()
	if !l.EnabledRoot(core.ErrorLevel) {
		return nil
	}
	return l.output(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// Warn logs a warning message using the default logger
func Warn(msg string) error {
	l := Default()
	if !l.Enabled(core.WarnLevel) {
		return nil
	}
	return l.output(core.WarnLevel, msg)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) error {
	l := Default()
	if !l.Enabled(core.WarnLevel) {
		return nil
	}
	return l.output(core.WarnLevel, fmt.Sprintf(format, args...))
}

// WarnRoot logs a warning message on the root rank using the default logger
func WarnRoot(msg string) error {
	l := Default()
	if !l.EnabledRoot(core.WarnLevel) {
		return nil
	}
	return l.output(core.WarnLevel, msg)
}

// WarnRootf logs a formatted warning message on the root rank using the default logger
func WarnRootf(format string, args ...interface{}) error {
	l := Default()
	if !l.EnabledRoot(core.WarnLevel) {
		return nil
	}
	return l.output(core.WarnLevel, fmt.Sprintf(format, args...))
}

// Info logs an info message using the default logger
func Info(msg string) error {
	l := Default()
	if !l.Enabled(core.InfoLevel) {
		return nil
	}
	return l.output(core.InfoLevel, msg)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) error {
	l := Default()
	if !l.Enabled(core.InfoLevel) {
		return nil
	}
	return l.output(core.InfoLevel, fmt.Sprintf(format, args...))
}

// InfoRoot logs an info message on the root rank using the default logger
func InfoRoot(msg string) error {
	l := Default()
	if !l.EnabledRoot(core.InfoLevel) {
		return nil
	}
	return l.output(core.InfoLevel, msg)
}

// InfoRootf logs a formatted info message on the root rank using the default logger
func InfoRootf(format string, args ...interface{}) error {
	l := Default()
	if !l.EnabledRoot(core.InfoLevel) {
		return nil
	}
	return l.output(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Debug logs a debug message using the default logger
func Debug(msg string) error {
	l := Default()
	if !DebugEnabled || !l.Enabled(core.DebugLevel) {
		return nil
	}
	return l.output(core.DebugLevel, msg)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) error {
	l := Default()
	if !DebugEnabled || !l.Enabled(core.DebugLevel) {
		return nil
	}
	return l.output(core.DebugLevel, fmt.Sprintf(format, args...))
}

// DebugRoot logs a debug message on the root rank using the default logger
func DebugRoot(msg string) error {
	l := Default()
	if !DebugEnabled || !l.EnabledRoot(core.DebugLevel) {
		return nil
	}
	return l.output(core.DebugLevel, msg)
}

// DebugRootf logs a formatted debug message on the root rank using the default logger
func DebugRootf(format string, args ...interface{}) error {
	l := Default()
	if !DebugEnabled || !l.EnabledRoot(core.DebugLevel) {
		return nil
	}
	return l.output(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Trace logs a trace message using the default logger
func Trace(msg string) error {
	l := Default()
	if !TraceEnabled || !l.Enabled(core.TraceLevel) {
		return nil
	}
	return l.output(core.TraceLevel, msg)
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...interface{}) error {
	l := Default()
	if !TraceEnabled || !l.Enabled(core.TraceLevel) {
		return nil
	}
	return l.output(core.TraceLevel, fmt.Sprintf(format, args...))
}

// TraceRoot logs a trace message on the root rank using the default logger
func TraceRoot(msg string) error {
	l := Default()
	if !TraceEnabled || !l.EnabledRoot(core.TraceLevel) {
		return nil
	}
	return l.output(core.TraceLevel, msg)
}

// TraceRootf logs a formatted trace message on the root rank using the default logger
func TraceRootf(format string, args ...interface{}) error {
	l := Default()
	if !TraceEnabled || !l.EnabledRoot(core.TraceLevel) {
		return nil
	}
	return l.output(core.TraceLevel, fmt.Sprintf(format, args...))
}
