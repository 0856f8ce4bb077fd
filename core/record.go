package core

import (
	"path/filepath"
	"runtime"
	"time"
)

// Record is a single log line about to be written. Records are built on
// the caller's stack after the threshold check and are never retained.
type Record struct {
	Time    time.Time
	Level   Level
	File    string
	Line    int
	Rank    int
	Message string
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Defined   bool
}

// GetCaller retrieves caller information. skip has the meaning of
// runtime.Caller's argument as seen from the function calling GetCaller.
func GetCaller(skip int) CallerInfo {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{File: "???", ShortFile: "???"}
	}
	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Defined:   true,
	}
}
