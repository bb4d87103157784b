package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

var defaultLogger *slog.Logger

// Initialize sets up the global logger with the specified level and format
func Initialize(level, format string) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// Get returns the default logger
func Get() *slog.Logger {
	if defaultLogger == nil {
		// Initialize with default settings if not yet initialized
		Initialize("info", "text")
	}
	return defaultLogger
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

// DebugContext logs a debug message with context
func DebugContext(ctx context.Context, msg string, args ...any) {
	Get().DebugContext(ctx, msg, args...)
}

// InfoContext logs an info message with context
func InfoContext(ctx context.Context, msg string, args ...any) {
	Get().InfoContext(ctx, msg, args...)
}

// ErrorContext logs an error message with context
func ErrorContext(ctx context.Context, msg string, args ...any) {
	Get().ErrorContext(ctx, msg, args...)
}

// WithService returns a logger with service name attached
func WithService(serviceName string) *slog.Logger {
	return Get().With("service", serviceName)
}

// WithSession returns a logger with a wizard session id attached
func WithSession(sessionID string) *slog.Logger {
	return Get().With("session_id", sessionID)
}

// UpstreamCall logs an outbound call to the rental API (debug log for external resources)
func UpstreamCall(method, endpoint string, args ...any) {
	allArgs := append([]any{"method", method, "endpoint", endpoint}, args...)
	Get().Debug("→ Upstream API call", allArgs...)
}

// UpstreamResult logs the outcome of an upstream API call
func UpstreamResult(method, endpoint string, status int, err error, args ...any) {
	allArgs := append([]any{"method", method, "endpoint", endpoint, "status", status}, args...)
	if err != nil {
		allArgs = append(allArgs, "error", err)
		Get().Error("← Upstream API call failed", allArgs...)
	} else {
		Get().Debug("← Upstream API call succeeded", allArgs...)
	}
}
