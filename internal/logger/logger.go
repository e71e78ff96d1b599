// Package logger provides leveled, component-scoped logging for the CLI.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Level controls which messages are written
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelSilent
)

// Logger is a structured logger carrying a set of fields
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithField(key string, value any) Logger
	WithFields(fields map[string]any) Logger
}

type slogLogger struct {
	l *slog.Logger
}

var (
	mu     sync.RWMutex
	level  = new(slog.LevelVar)
	silent bool
	root   *slog.Logger
)

func init() {
	level.Set(slog.LevelWarn)
	root = newSlog(os.Stderr)
}

func base() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

func newSlog(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLevel changes the minimum level for every logger
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()

	silent = l == LevelSilent
	switch l {
	case LevelDebug:
		level.Set(slog.LevelDebug)
	case LevelInfo:
		level.Set(slog.LevelInfo)
	case LevelError:
		level.Set(slog.LevelError)
	default:
		level.Set(slog.LevelWarn)
	}
}

// GetLevel returns the current level
func GetLevel() Level {
	mu.RLock()
	defer mu.RUnlock()

	if silent {
		return LevelSilent
	}
	switch level.Level() {
	case slog.LevelDebug:
		return LevelDebug
	case slog.LevelInfo:
		return LevelInfo
	case slog.LevelError:
		return LevelError
	default:
		return LevelWarn
	}
}

// Configure maps the --debug and --verbose flags onto a level
func Configure(debug, verbose bool) {
	switch {
	case verbose:
		SetLevel(LevelDebug)
	case debug:
		SetLevel(LevelInfo)
	default:
		SetLevel(LevelWarn)
	}
}

// SetOutput redirects all log output. Loggers created before the call keep
// their writer.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	root = newSlog(w)
}

func isSilent() bool {
	mu.RLock()
	defer mu.RUnlock()
	return silent
}

func (s *slogLogger) Debug(msg string, args ...any) {
	if !isSilent() {
		s.l.Debug(msg, args...)
	}
}

func (s *slogLogger) Info(msg string, args ...any) {
	if !isSilent() {
		s.l.Info(msg, args...)
	}
}

func (s *slogLogger) Warn(msg string, args ...any) {
	if !isSilent() {
		s.l.Warn(msg, args...)
	}
}

func (s *slogLogger) Error(msg string, args ...any) {
	if !isSilent() {
		s.l.Error(msg, args...)
	}
}

func (s *slogLogger) WithField(key string, value any) Logger {
	return &slogLogger{l: s.l.With(key, value)}
}

func (s *slogLogger) WithFields(fields map[string]any) Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &slogLogger{l: s.l.With(args...)}
}

// Default returns a logger with no fields
func Default() Logger {
	return &slogLogger{l: base()}
}

func Debug(msg string, args ...any) { Default().Debug(msg, args...) }
func Info(msg string, args ...any)  { Default().Info(msg, args...) }
func Warn(msg string, args ...any)  { Default().Warn(msg, args...) }
func Error(msg string, args ...any) { Default().Error(msg, args...) }

// WithField returns a logger carrying one field
func WithField(key string, value any) Logger {
	return Default().WithField(key, value)
}

// WithFields returns a logger carrying several fields
func WithFields(fields map[string]any) Logger {
	return Default().WithFields(fields)
}
