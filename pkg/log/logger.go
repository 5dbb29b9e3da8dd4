// Package log configures the process-wide slog logger.
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu sync.Mutex
	// logFile is the file opened by the last Init, if it was given a path.
	logFile *os.File
)

// Init installs a text slog logger as the default at the given level
// ("debug", "info", "warn", "error"; anything else means warn). Records go
// to the file at path when set, otherwise to w, otherwise to stderr. A file
// opened by a previous Init is closed once the new output is ready.
func Init(w io.Writer, path string, level string) error {
	mu.Lock()
	defer mu.Unlock()

	out, f, err := openOutput(w, path)
	if err != nil {
		return err
	}

	prev := logFile
	logFile = f
	slog.SetDefault(newLogger(out, ParseLevel(level)))

	if prev != nil {
		return prev.Close()
	}
	return nil
}

// Close closes the log file opened by Init, if any, and points the default
// logger back at stderr.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	slog.SetDefault(newLogger(os.Stderr, slog.LevelWarn))
	err := logFile.Close()
	logFile = nil
	return err
}

func openOutput(w io.Writer, path string) (io.Writer, *os.File, error) {
	if path == "" {
		if w == nil {
			w = os.Stderr
		}
		return w, nil, nil
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("prog", "gensrc")
}

// ParseLevel maps a level name to a slog.Level. Unknown names yield warn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
