// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runlog writes timestamped run events to an append-only log file.
// One Logger is created per invocation and passed explicitly to each
// stage; there is no package-level logger state.
package runlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Logger records major actions and per-file errors for one run.
type Logger struct {
	s *slog.Logger
	f *os.File
}

// Open appends to the log file at path, creating it if needed.
func Open(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening run log %s: %w", path, err)
	}
	return &Logger{s: slog.New(slog.NewTextHandler(f, nil)), f: f}, nil
}

// Discard returns a Logger that drops everything. Used in tests and when
// logging is disabled.
func Discard() *Logger {
	return &Logger{s: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Info records a major action.
func (l *Logger) Info(msg string, args ...any) { l.s.Info(msg, args...) }

// Error records a recoverable failure.
func (l *Logger) Error(msg string, args ...any) { l.s.Error(msg, args...) }

// Close releases the underlying file, if any.
func (l *Logger) Close() error {
	if l.f == nil {
		return nil
	}
	return l.f.Close()
}
