// Package logutil provides the debug loggers used across the shell.
package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Discard is a Logger that ignores all loggings.
var Discard = log.New(io.Discard, "", 0)

var (
	outMu sync.Mutex
	out   io.Writer = io.Discard
)

// GetLogger gets a logger with the given prefix. The logger writes to the
// current output set by SetOutput or SetOutputFile.
func GetLogger(prefix string) *log.Logger {
	return log.New(writer{}, prefix, log.LstdFlags|log.Lmicroseconds)
}

// SetOutput redirects the output of all loggers obtained with GetLogger.
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	out = w
}

// SetOutputFile opens path for appending and uses it as the log output. An
// empty path discards logs. The returned closer releases the file.
func SetOutputFile(path string) (io.Closer, error) {
	if path == "" {
		SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	SetOutput(f)
	return f, nil
}

type writer struct{}

func (writer) Write(p []byte) (int, error) {
	outMu.Lock()
	defer outMu.Unlock()
	return out.Write(p)
}
