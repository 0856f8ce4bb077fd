package formatter

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/philipp01105/ranklog/core"
)

// Prefix builds the line prefix
//
//	<LEVEL> [<timestamp>] [<hostname>] [rank <n>] <file>:<line>
//
// Bracketed fields appear only when enabled in Config. The prefix always
// ends with a single space so the message can be appended directly.
type Prefix struct {
	cfg      Config
	tsFormat string
	hostname string
}

// pre-formatted level labels with their trailing separator
var levelLabels = [...]string{
	core.OffLevel:   "OFF ",
	core.FatalLevel: "FATAL ",
	core.ErrorLevel: "ERROR ",
	core.WarnLevel:  "WARN ",
	core.InfoLevel:  "INFO ",
	core.DebugLevel: "DEBUG ",
	core.TraceLevel: "TRACE ",
}

// NewPrefix creates a prefix formatter. The host name is looked up once.
func NewPrefix(cfg Config) *Prefix {
	p := &Prefix{cfg: cfg, tsFormat: cfg.timestampFormat()}
	if cfg.Hostname {
		p.hostname = cfg.HostnameOverride
		if p.hostname == "" {
			p.hostname = lookupHostname()
		}
	}
	return p
}

func lookupHostname() string {
	h, err := os.Hostname()
	if err != nil || h == "" {
		return "unknown"
	}
	return h
}

// Config returns the configuration the formatter was built with.
func (p *Prefix) Config() Config {
	return p.cfg
}

// Format returns the prefix for level at file:line using the current time.
func (p *Prefix) Format(level core.Level, file string, line int) string {
	rec := core.Record{Time: now(), Level: level, File: file, Line: line}
	return string(p.AppendRecord(make([]byte, 0, 64+len(file)), &rec))
}

// AppendRecord appends the prefix for rec to dst and returns the
// extended slice. rec.Message is not appended.
func (p *Prefix) AppendRecord(dst []byte, rec *core.Record) []byte {
	if rec.Level >= 0 && int(rec.Level) < len(levelLabels) {
		dst = append(dst, levelLabels[rec.Level]...)
	} else {
		dst = append(dst, "UNKNOWN "...)
	}

	if p.cfg.Timestamp {
		dst = append(dst, '[')
		dst = rec.Time.AppendFormat(dst, p.tsFormat)
		dst = append(dst, "] "...)
	}

	if p.cfg.Hostname {
		dst = append(dst, '[')
		dst = append(dst, p.hostname...)
		dst = append(dst, "] "...)
	}

	if p.cfg.Rank {
		dst = append(dst, "[rank "...)
		dst = strconv.AppendInt(dst, int64(rec.Rank), 10)
		dst = append(dst, "] "...)
	}

	file := rec.File
	if p.cfg.ShortFile {
		file = filepath.Base(file)
	}
	dst = append(dst, file...)
	dst = append(dst, ':')
	dst = strconv.AppendInt(dst, int64(rec.Line), 10)
	dst = append(dst, ' ')
	return dst
}

// AppendLine appends the prefix, the message and a terminating newline
// (unless the message already ends in one).
func (p *Prefix) AppendLine(dst []byte, rec *core.Record) []byte {
	dst = p.AppendRecord(dst, rec)
	dst = append(dst, rec.Message...)
	if n := len(rec.Message); n == 0 || rec.Message[n-1] != '\n' {
		dst = append(dst, '\n')
	}
	return dst
}
