package logger

import (
	"context"
	"log/slog"
	"runtime"
	"strconv"

	"github.com/philipp01105/ranklog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Logger, so libraries logging through log/slog obey the same threshold,
// rank gating and line format. Attributes are appended to the message as
// key=value text.
type SlogHandler struct {
	logger *Logger
	root   bool
	attrs  []byte
	group  string
}

// NewSlogHandler creates a slog.Handler writing through l. When root is
// true only the root rank emits.
func NewSlogHandler(l *Logger, root bool) *SlogHandler {
	return &SlogHandler{logger: l, root: root}
}

// Enabled reports whether the handler handles records at the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	lvl := slogLevelToCore(level)
	if !compiledIn(lvl) {
		return false
	}
	if h.root {
		return h.logger.EnabledRoot(lvl)
	}
	return h.logger.Enabled(lvl)
}

// Handle writes the record as one line.
func (h *SlogHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.Enabled(ctx, r.Level) {
		return nil
	}
	level := slogLevelToCore(r.Level)

	msg := make([]byte, 0, len(r.Message)+len(h.attrs)+32)
	msg = append(msg, r.Message...)
	msg = append(msg, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		msg = appendAttr(msg, h.group, a)
		return true
	})

	rec := core.Record{
		Time:    r.Time,
		Level:   level,
		File:    "???",
		Rank:    h.logger.rank,
		Message: string(msg),
	}
	if r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		rec.File = frame.File
		rec.Line = frame.Line
	}
	return h.logger.emit(&rec)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]byte, len(h.attrs), len(h.attrs)+16*len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, h.group, a)
	}
	return &SlogHandler{
		logger: h.logger,
		root:   h.root,
		attrs:  newAttrs,
		group:  h.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	return &SlogHandler{
		logger: h.logger,
		root:   h.root,
		attrs:  h.attrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level. Levels above
// error map to FATAL, levels below debug to TRACE.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level > slog.LevelError:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr appends " key=value", flattening groups into dotted keys.
func appendAttr(dst []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, key, ga)
		}
		return dst
	}

	dst = append(dst, ' ')
	dst = append(dst, key...)
	dst = append(dst, '=')
	switch a.Value.Kind() {
	case slog.KindString:
		s := a.Value.String()
		if needsQuote(s) {
			dst = strconv.AppendQuote(dst, s)
		} else {
			dst = append(dst, s...)
		}
	case slog.KindInt64:
		dst = strconv.AppendInt(dst, a.Value.Int64(), 10)
	case slog.KindUint64:
		dst = strconv.AppendUint(dst, a.Value.Uint64(), 10)
	case slog.KindFloat64:
		dst = strconv.AppendFloat(dst, a.Value.Float64(), 'g', -1, 64)
	case slog.KindBool:
		dst = strconv.AppendBool(dst, a.Value.Bool())
	default:
		dst = append(dst, a.Value.String()...)
	}
	return dst
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c <= ' ' || c == '=' || c == '"' || c >= 0x7f {
			return true
		}
	}
	return false
}
