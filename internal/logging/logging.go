// Package logging builds the structured logger shared by the CLI and the
// terminal front-end. The front-end owns the terminal, so records go to a
// rotating file instead of stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// StderrFile selects stderr instead of a log file.
const StderrFile = "-"

// Options configures the logger and its file rotation.
type Options struct {
	File       string // Log file path, StderrFile, or empty to discard
	Level      string // debug, info, warn, error
	Prefix     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultOptions returns the options used when no flags are given.
func DefaultOptions() Options {
	return Options{
		File:       "~/.survival/survival.log",
		Level:      "info",
		Prefix:     "survival",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger for opts. The returned closer releases the log file.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch opts.File {
	case "":
		w = io.Discard
	case StderrFile:
		w = os.Stderr
	default:
		path, err := expandHome(opts.File)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create directory: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}
		w, closer = lj, lj
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
