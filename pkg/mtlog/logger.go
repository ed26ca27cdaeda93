// Package mtlog sets up the debug log. The terminal belongs to the UI while
// the browser runs, so log output goes to a file or nowhere.
package mtlog

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultFileName is used when debug logging is enabled without a path.
const DefaultFileName = "debug.log"

var osOpenFile = os.OpenFile

// New returns a logger writing text entries to w at debug level.
func New(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	return l
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := New(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// OpenFile appends to the log file at path, creating it if needed.
// The returned closer must be called once the logger is no longer used.
func OpenFile(path string) (*logrus.Logger, io.Closer, error) {
	if path == "" {
		path = DefaultFileName
	}
	f, err := osOpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return New(f), f, nil
}
