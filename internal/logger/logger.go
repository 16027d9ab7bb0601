// Package logger is the bot's structured logger: slog handlers writing to the
// console and, optionally, a size-rotated file.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Initialize replaces the package logger according to cfg. It returns a closer
// for the log file, or a no-op closer when file output is off.
func Initialize(cfg Config) (io.Closer, error) {
	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	var handlers []slog.Handler
	if cfg.ConsoleEnabled {
		handlers = append(handlers, newHandler(os.Stdout, cfg.ConsoleFormat, opts))
	}

	var closer io.Closer = nopCloser{}
	if cfg.FileEnabled {
		file := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.FileMaxSizeMB,
			MaxBackups: cfg.FileMaxBackups,
			MaxAge:     cfg.FileMaxAgeDays,
		}
		handlers = append(handlers, newHandler(file, cfg.FileFormat, opts))
		closer = file
	}

	switch len(handlers) {
	case 0:
		logger = slog.New(slog.NewTextHandler(os.Stdout, opts))
	case 1:
		logger = slog.New(handlers[0])
	default:
		logger = slog.New(&fanout{handlers: handlers})
	}
	slog.SetDefault(logger)

	return closer, nil
}

// SetOutput points the logger at w. Tests use it to capture output.
func SetOutput(w io.Writer, level slog.Level) {
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs at debug level with key/value pairs
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Info logs at info level with key/value pairs
func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

// Warn logs at warn level with key/value pairs
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

// Error logs at error level with key/value pairs
func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

// ErrorContext logs at error level, letting handlers read trace ids from ctx
func ErrorContext(ctx context.Context, msg string, args ...any) {
	logger.ErrorContext(ctx, msg, args...)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// fanout writes every record to all handlers that accept its level.
type fanout struct {
	handlers []slog.Handler
}

func (f *fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f *fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (f *fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &fanout{handlers: handlers}
}

func (f *fanout) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &fanout{handlers: handlers}
}
