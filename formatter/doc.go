// Package formatter builds the text prefix of a log line.
//
// A line is
//
//	<LEVEL> [<timestamp>] [<hostname>] [rank <n>] <file>:<line> <message>\n
//
// where the bracketed fields are optional per Config. Prefix appends
// directly into a caller-provided byte slice using Go's Append-style
// functions (time.AppendFormat, strconv.AppendInt), so the hot path does
// not allocate. Level labels are pre-computed with their trailing space.
//
// Formatting is only ever done after the logger's threshold check has
// passed; the formatter itself does not look at thresholds.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
