// Package core defines the shared types used across ranklog.
//
// Level is the fixed severity scale FATAL(1) < ERROR < WARN < INFO <
// DEBUG < TRACE(6); a lower number is more severe, and the values never
// change. Threshold is the atomic holder of the current cut-off: a record
// is emitted when its level is numerically <= the threshold. OffLevel (0)
// as a threshold silences everything.
//
// Record is the per-line value handed from the logger to the formatter
// and sink. It lives on the caller's stack and is only built after the
// threshold check passed.
//
// Clock abstracts the timestamp source. CoarseClock caches time.Now in a
// background ticker for hot loops that enable timestamps.
package core
