package genarena

import (
	"context"
	"log/slog"
)

// Logger captures structured log output from an arena.
type Logger interface {
	With(key string, value any) Logger
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// NewSlogLogger adapts a slog.Logger. A nil logger uses slog.Default.
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return slogLogger{l: l}
}

type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) With(key string, value any) Logger {
	return slogLogger{l: s.l.With(key, value)}
}

func (s slogLogger) Info(msg string, args ...any) {
	s.l.InfoContext(context.Background(), msg, args...)
}

func (s slogLogger) Error(msg string, args ...any) {
	s.l.ErrorContext(context.Background(), msg, args...)
}

// noopLogger is used until a real logger is supplied.
type noopLogger struct{}

func (noopLogger) With(string, any) Logger { return noopLogger{} }
func (noopLogger) Info(string, ...any)     {}
func (noopLogger) Error(string, ...any)    {}

var (
	_ Logger = slogLogger{}
	_ Logger = noopLogger{}
)
