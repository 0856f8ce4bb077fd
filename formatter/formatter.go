package formatter

import (
	"bytes"
	"sync"
	"time"
)

// DefaultTimestampFormat is used when Config.TimestampFormat is empty.
const DefaultTimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Config selects the optional fields of the line prefix.
type Config struct {
	// Timestamp adds the wall-clock time of the record
	Timestamp bool
	// TimestampFormat specifies the time layout (empty for DefaultTimestampFormat)
	TimestampFormat string
	// Hostname adds the host name, resolved once at construction
	Hostname bool
	// HostnameOverride replaces the resolved host name when non-empty
	HostnameOverride string
	// Rank adds the process rank of the emitting process
	Rank bool
	// ShortFile prints the base name of the source file instead of the
	// path as supplied by the call site
	ShortFile bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer returns an empty buffer from the shared pool.
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to the shared pool.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

func (c Config) timestampFormat() string {
	if c.TimestampFormat == "" {
		return DefaultTimestampFormat
	}
	return c.TimestampFormat
}

// now is overridden in tests
var now = time.Now
