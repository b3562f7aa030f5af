package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// SlogLogger implements Logger on top of log/slog. Every method forwards to
// the *Context variant of slog so handlers can read values from ctx.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps an existing *slog.Logger.
//
// Parameters:
//
//	l  the slog logger to forward to; its handler decides format and level
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

// NewJSON returns a logger writing one JSON object per line to stdout. The
// long-running processes (the server and the bot) use it.
//
// Parameters:
//
//	level  the minimum level written; see ParseLevel
func NewJSON(level slog.Level) *SlogLogger {
	return NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
}

// NewText returns a logger writing slog text lines (key=value pairs) to w.
// The screen client points it at a log file because the terminal belongs to
// the UI.
//
// Parameters:
//
//	w      the destination, e.g. an *os.File opened for append
//	level  the minimum level written
func NewText(w io.Writer, level slog.Level) *SlogLogger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// NewNop returns a logger that discards everything. Tests use it where log
// output is not asserted.
func NewNop() *SlogLogger {
	return NewText(io.Discard, slog.LevelError)
}

// Debug logs msg at slog.LevelDebug with args as key-value pairs.
func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

// Info logs msg at slog.LevelInfo.
func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

// Warn logs msg at slog.LevelWarn.
func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

// Error logs msg at slog.LevelError.
func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

// With returns a child logger whose records always carry args. The parent
// is not modified.
func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}

// ParseLevel converts a level name from config into a slog.Level.
//
// Accepted names are those of slog.Level.UnmarshalText, case-insensitive:
// "debug", "info", "warn" and "error", optionally with an offset such as
// "info+2".
//
// Returns:
//
//	The parsed level, or slog.LevelInfo for an empty or unknown name.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
