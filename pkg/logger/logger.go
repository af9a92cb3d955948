// Package logger provides structured logging setup using Go's slog package.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Logger is a thin printf-style facade over slog used across the service.
type Logger struct {
	l *slog.Logger
}

// New builds a JSON slog logger with correlation ID support and installs it
// as the process default.
func New(level string) *Logger {
	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, handlerOpts)

	// Wrap with correlation handler to auto-inject correlation_id from context
	handler = NewCorrelationHandler(handler)

	l := slog.New(handler)
	slog.SetDefault(l)

	return &Logger{l: l}
}

func (lg *Logger) Debug(format string, args ...any) {
	lg.l.Debug(fmt.Sprintf(format, args...))
}

func (lg *Logger) Info(format string, args ...any) {
	lg.l.Info(fmt.Sprintf(format, args...))
}

func (lg *Logger) Warn(format string, args ...any) {
	lg.l.Warn(fmt.Sprintf(format, args...))
}

func (lg *Logger) Error(format string, args ...any) {
	lg.l.Error(fmt.Sprintf(format, args...))
}

// Fatal logs the error and terminates the process.
func (lg *Logger) Fatal(err error) {
	lg.l.Error(err.Error())
	os.Exit(1)
}

// Slog exposes the underlying slog.Logger for packages that prefer
// structured attributes over printf formatting.
func (lg *Logger) Slog() *slog.Logger {
	return lg.l
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
