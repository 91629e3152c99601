package logging

import (
	"context"
	"log/slog"
)

// SlogLogger is the slog backed Logger. Request fields attached with
// WithFields are written ahead of the call's own arguments.
type SlogLogger struct {
	l *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

func (s *SlogLogger) log(ctx context.Context, level slog.Level, msg string, args []any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !s.l.Enabled(ctx, level) {
		return
	}
	s.l.Log(ctx, level, msg, withContextFields(ctx, args)...)
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) { s.log(ctx, slog.LevelDebug, msg, args) }
func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any)  { s.log(ctx, slog.LevelInfo, msg, args) }
func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any)  { s.log(ctx, slog.LevelWarn, msg, args) }
func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) { s.log(ctx, slog.LevelError, msg, args) }

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}
