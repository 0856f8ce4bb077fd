package sink

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Open opens the named outputs and returns a single Sink writing to all of
// them, together with a function that closes the opened files.
//
// Paths are interpreted the way zap does: "stdout" and "stderr" name the
// process streams, anything else is a file path (or file:// URL) opened in
// append mode and created when missing. The returned Sink is already
// locked. The close function does not close stdout or stderr.
func Open(paths ...string) (Sink, func(), error) {
	if len(paths) == 0 {
		return nil, nil, errors.New("ranklog: no output paths given")
	}
	ws, closeAll, err := zap.Open(paths...)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "ranklog: open outputs %v", paths)
	}
	return ws, closeAll, nil
}
