// Package shared holds helpers used by more than one drawpoker command.
package shared

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// ParseLevel converts a config or flag value into a log level
func ParseLevel(level string) (log.Level, error) {
	l, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// SetupLogger writes human-readable log lines to w
func SetupLogger(w io.Writer, level string) (*log.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           l,
		ReportTimestamp: true,
	}), nil
}

// SetupFileLogger appends to path, since the terminal belongs to the game
// while it runs. Close the returned file when done.
func SetupFileLogger(path, level string) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger, err := SetupLogger(f, level)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}
