package logger

import (
	"os"

	"github.com/pkg/errors"

	"github.com/philipp01105/ranklog/core"
	"github.com/philipp01105/ranklog/formatter"
	"github.com/philipp01105/ranklog/sink"
)

// Logger gates, formats and writes log lines for one process.
//
// The threshold may be changed at any time with SetThreshold; everything
// else is fixed at Build. A Logger is safe for concurrent use as long as
// its sink is line-atomic (see sink.Lock).
type Logger struct {
	threshold  core.Threshold
	rank       int
	rootRank   int
	sink       sink.Sink
	prefix     *formatter.Prefix
	clock      core.Clock
	stampTime  bool
	callerSkip int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	sink       sink.Sink
	level      core.Level
	rank       int
	rootRank   int
	format     formatter.Config
	clock      core.Clock
	callerSkip int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.DefaultLevel,
		callerSkip: 2, // output -> exported helper -> call site
	}
}

// WithSink sets the destination. The logger never closes it.
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.sink = s
	return b
}

// WithLevel sets the initial threshold
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithRank sets the rank of the local process
func (b *Builder) WithRank(rank int) *Builder {
	b.rank = rank
	return b
}

// WithRootRank sets the rank allowed to emit through the Root helpers
func (b *Builder) WithRootRank(rank int) *Builder {
	b.rootRank = rank
	return b
}

// WithFormatter sets the prefix options
func (b *Builder) WithFormatter(cfg formatter.Config) *Builder {
	b.format = cfg
	return b
}

// WithClock sets the timestamp source
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// WithCoarseClock switches timestamps to the cached coarse clock
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	if enabled {
		b.clock = core.CoarseClock{}
	} else {
		b.clock = nil
	}
	return b
}

// WithCallerSkip adds n frames to the caller lookup, for wrappers around
// the logging helpers.
func (b *Builder) WithCallerSkip(n int) *Builder {
	b.callerSkip += n
	return b
}

// Build creates the Logger instance. Without a sink, lines go to a locked
// os.Stderr. Build panics if the level is outside OffLevel..TraceLevel.
func (b *Builder) Build() *Logger {
	s := b.sink
	if s == nil {
		s = sink.Lock(os.Stderr)
	}
	clock := b.clock
	if clock == nil {
		clock = core.SystemClock{}
	}
	l := &Logger{
		rank:       b.rank,
		rootRank:   b.rootRank,
		sink:       s,
		prefix:     formatter.NewPrefix(b.format),
		clock:      clock,
		stampTime:  b.format.Timestamp,
		callerSkip: b.callerSkip,
	}
	if err := l.threshold.Store(b.level); err != nil {
		panic(errors.Wrap(err, "ranklog: build"))
	}
	return l
}

// Threshold returns the current threshold.
func (l *Logger) Threshold() core.Level {
	return l.threshold.Load()
}

// SetThreshold replaces the threshold. Concurrent log calls observe
// either the old or the new value. A level outside OffLevel..TraceLevel
// is rejected with core.ErrInvalidThreshold and the threshold is kept.
func (l *Logger) SetThreshold(level core.Level) error {
	return l.threshold.Store(level)
}

// Rank returns the rank of the local process.
func (l *Logger) Rank() int {
	return l.rank
}

// RootRank returns the rank that emits Root lines.
func (l *Logger) RootRank() int {
	return l.rootRank
}

// Sink returns the destination the logger writes to.
func (l *Logger) Sink() sink.Sink {
	return l.sink
}

// Enabled reports whether a line at level would be written by any rank.
func (l *Logger) Enabled(level core.Level) bool {
	return l.threshold.Allows(level)
}

// EnabledFor reports whether a line at level would be written when only
// rank may emit it.
func (l *Logger) EnabledFor(level core.Level, rank int) bool {
	return l.threshold.Allows(level) && l.rank == rank
}

// EnabledRoot reports whether a Root line at level would be written.
func (l *Logger) EnabledRoot(level core.Level) bool {
	return l.EnabledFor(level, l.rootRank)
}

// Sync flushes the sink.
func (l *Logger) Sync() error {
	return l.sink.Sync()
}

// compiledIn reports whether call sites for level survive the build tags.
func compiledIn(level core.Level) bool {
	switch level {
	case core.DebugLevel:
		return DebugEnabled
	case core.TraceLevel:
		return TraceEnabled
	}
	return true
}

// output captures the call site and writes. It must be called directly
// from the exported helper the user invoked.
func (l *Logger) output(level core.Level, msg string) error {
	c := core.GetCaller(l.callerSkip)
	return l.write(level, c.File, c.Line, msg)
}

func (l *Logger) write(level core.Level, file string, line int, msg string) error {
	rec := core.Record{
		Level:   level,
		File:    file,
		Line:    line,
		Rank:    l.rank,
		Message: msg,
	}
	if l.stampTime {
		rec.Time = l.clock.Now()
	}
	return l.emit(&rec)
}

// emit formats rec into a pooled buffer and hands the line to the sink in
// a single Write.
func (l *Logger) emit(rec *core.Record) error {
	buf := formatter.GetBuffer()
	buf.Write(l.prefix.AppendLine(buf.AvailableBuffer(), rec))
	_, err := l.sink.Write(buf.Bytes())
	formatter.PutBuffer(buf)
	if err != nil {
		return errors.Wrap(err, "ranklog: write")
	}
	return nil
}
