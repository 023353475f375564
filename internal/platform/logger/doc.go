// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels, optional size-based file rotation, and
// request-scoped loggers carried on a context.Context.
package logger
