// Package logging builds the typy logger. The TUI owns the terminal, so logs
// go to a file in the OS temp directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// LevelEnv selects the log level (debug, info, warn, error).
const LevelEnv = "TYPY_LOG_LEVEL"

// DefaultPath returns the log file location.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "typy.log")
}

// Logger wraps a charm logger and the file behind it.
type Logger struct {
	*log.Logger
	Path string
	file *os.File
}

// Open creates a logger appending to path. When the file cannot be opened the
// logger writes to fallback instead and Path is empty.
func Open(path string, fallback io.Writer) *Logger {
	l := &Logger{}

	var w io.Writer = fallback
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err == nil {
		l.file = f
		l.Path = path
		w = f
	}

	l.Logger = New(w)
	if err != nil {
		l.Warn("using fallback log output", "path", path, "err", err)
	}
	return l
}

// New returns a logger writing to w with the level taken from LevelEnv.
func New(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "typy",
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	logger.SetLevel(LevelFromEnv())
	return logger
}

// LevelFromEnv parses LevelEnv, defaulting to info.
func LevelFromEnv() log.Level {
	raw := strings.TrimSpace(os.Getenv(LevelEnv))
	if raw == "" {
		return log.InfoLevel
	}
	level, err := log.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("close log: %w", err)
	}
	return nil
}
