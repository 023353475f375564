package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/leflux-api/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseLevel converts a configured level name into a slog.Level.
// The second return value is false when the name is not recognized.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// NewWriter returns the destination for log output. When cfg.LogFile is set
// the file is rotated by lumberjack, otherwise logs go to stdout.
// The caller owns the returned closer.
func NewWriter(cfg config.ServerConfig) io.WriteCloser {
	if cfg.LogFile == "" {
		return nopCloser{os.Stdout}
	}

	return &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAgeDays,
		Compress:   cfg.LogCompress,
	}
}

// Setup initializes the application's logging system based on the provided
// configuration. It creates a structured JSON logger with the configured
// level and sets it as the default logger for the application.
//
// The returned closer releases the log file, if any.
func Setup(cfg config.ServerConfig) (*slog.Logger, io.Closer, error) {
	w := NewWriter(cfg)
	return SetupWithWriter(cfg, w), w, nil
}

// SetupWithWriter is Setup with an explicit destination. It is used by
// tests to capture output.
func SetupWithWriter(cfg config.ServerConfig, w io.Writer) *slog.Logger {
	level, ok := ParseLevel(cfg.LogLevel)

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if !ok {
		logger.Warn("invalid log level configured, using default level",
			slog.String("configured_level", cfg.LogLevel),
			slog.String("default_level", "info"))
	}

	return logger
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
