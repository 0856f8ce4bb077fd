// Package logger is the public API of ranklog. Most programs only need to
// import this package.
//
// A Logger decides with one integer comparison whether a line is written
// (the gate), builds the prefix only when it is, and hands the finished
// line to its sink in a single Write:
//
//	ERROR [2026-01-15T12:00:00.000Z] [node017] solver.go:212 diverged at step 40
//
// Every level has four helpers. Info and Infof may emit on every rank;
// InfoRoot and InfoRootf emit only on the root rank, so a message that
// every process of a parallel job reaches is printed once:
//
//	log := logger.NewBuilder().
//	    WithSink(sink.Lock(os.Stderr)).
//	    WithLevel(logger.WarnLevel).
//	    WithRank(rank).
//	    Build()
//	log.ErrorRootf("residual %g above tolerance", r)
//
// Debug helpers are compiled out with the nologdebug build tag. Trace
// helpers are compiled out unless the logtrace build tag is set. A
// compiled-out helper does nothing at all, not even the threshold check.
//
// The threshold is the only mutable state and may be changed at any time
// with SetThreshold. Rank and root rank are fixed when the Logger is
// built. Config, LoadConfig and ConfigFromEnv build loggers from TOML
// files or RANKLOG_* environment variables and fail on any invalid value
// instead of falling back to a default.
//
// The package keeps a default Logger (INFO, stderr, rank from the MPI
// launcher environment) behind package-level functions of the same names.
package logger
