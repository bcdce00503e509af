// Package logger provides a factory for structured slog loggers with
// environment-driven level and format selection.
package logger
