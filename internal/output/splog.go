// Package output provides terminal output helpers for commitsync.
package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// simpleHandler is a custom slog handler that writes messages without
// timestamps or level prefixes
type simpleHandler struct {
	writer    io.Writer
	debugMode bool
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	// Debug messages only enabled in debug mode
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// Splog provides structured logging and output
type Splog struct {
	logger *slog.Logger
	writer io.Writer
}

// NewSplog creates a new splog instance writing to stdout. Debug output is
// enabled with COMMITSYNC_DEBUG.
func NewSplog() *Splog {
	return NewSplogWithWriter(os.Stdout)
}

// NewSplogWithWriter creates a splog instance writing to w.
func NewSplogWithWriter(w io.Writer) *Splog {
	handler := &simpleHandler{
		writer:    w,
		debugMode: os.Getenv("COMMITSYNC_DEBUG") != "",
	}
	return &Splog{
		logger: slog.New(handler),
		writer: w,
	}
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	s.logger.Info(fmt.Sprintf(format, args...))
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	s.logger.Warn("⚠️  " + fmt.Sprintf(format, args...))
}

// Error writes an error message
func (s *Splog) Error(format string, args ...interface{}) {
	s.logger.Error(Failure(fmt.Sprintf(format, args...)))
}

// Tip writes a tip message
func (s *Splog) Tip(format string, args ...interface{}) {
	s.logger.Info("💡 " + fmt.Sprintf(format, args...))
}

// Debug writes a debug message, shown only when COMMITSYNC_DEBUG is set
func (s *Splog) Debug(format string, args ...interface{}) {
	s.logger.Debug(fmt.Sprintf(format, args...))
}

// Newline writes a newline
func (s *Splog) Newline() {
	fmt.Fprintln(s.writer)
}
