package core

import (
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Level represents the severity of a log record. Lower values are more severe.
type Level int8

const (
	// OffLevel disables all output when used as a threshold
	OffLevel Level = iota
	// FatalLevel for unrecoverable conditions
	FatalLevel
	// ErrorLevel for error messages
	ErrorLevel
	// WarnLevel for warning messages
	WarnLevel
	// InfoLevel for general informational messages (default threshold)
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// TraceLevel for very fine-grained tracing
	TraceLevel
)

// DefaultLevel is the threshold used when none is configured.
const DefaultLevel = InfoLevel

var levelNames = [...]string{
	OffLevel:   "OFF",
	FatalLevel: "FATAL",
	ErrorLevel: "ERROR",
	WarnLevel:  "WARN",
	InfoLevel:  "INFO",
	DebugLevel: "DEBUG",
	TraceLevel: "TRACE",
}

// String returns the string representation of the level
func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// Valid reports whether l is one of the six emitting levels.
func (l Level) Valid() bool {
	return l >= FatalLevel && l <= TraceLevel
}

// ErrUnknownLevel is returned by ParseLevel for unrecognized names.
var ErrUnknownLevel = errors.New("unknown log level")

// ParseLevel converts a level name to a Level. Unknown names are an error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FATAL":
		return FatalLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "TRACE":
		return TraceLevel, nil
	case "OFF", "NONE":
		return OffLevel, nil
	}
	return OffLevel, errors.Wrapf(ErrUnknownLevel, "%q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if l != OffLevel && !l.Valid() {
		return nil, errors.Errorf("cannot marshal log level %d", l)
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ErrInvalidThreshold is returned when a threshold outside OffLevel..TraceLevel
// is stored.
var ErrInvalidThreshold = errors.New("invalid threshold level")

// Threshold holds the current threshold level. The zero value reads as
// DefaultLevel. It is safe for concurrent use.
type Threshold struct {
	// stored as level+1 so that the zero value means "unset"
	v atomic.Int32
}

// NewThreshold returns a Threshold initialized to l.
func NewThreshold(l Level) (*Threshold, error) {
	t := &Threshold{}
	if err := t.Store(l); err != nil {
		return nil, err
	}
	return t, nil
}

// Load returns the current threshold.
func (t *Threshold) Load() Level {
	v := t.v.Load()
	if v == 0 {
		return DefaultLevel
	}
	return Level(v - 1)
}

// Store replaces the threshold in a single atomic assignment. Levels
// outside OffLevel..TraceLevel are rejected and the threshold is left
// unchanged.
func (t *Threshold) Store(l Level) error {
	if l != OffLevel && !l.Valid() {
		return errors.Wrapf(ErrInvalidThreshold, "%d", l)
	}
	t.v.Store(int32(l) + 1)
	return nil
}

// Allows reports whether a record at level l passes the threshold.
func (t *Threshold) Allows(l Level) bool {
	return l > OffLevel && l <= t.Load()
}
