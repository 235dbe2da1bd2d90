// Package logger provides structured logging with configurable log levels.
// It wraps the standard log/slog package. Records go to the writer the caller
// chooses, which lets the CLI keep diagnostics off the demonstration output.
package logger
