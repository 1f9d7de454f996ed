package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

type Field struct {
	Key   string
	Value any
}

// F builds a field
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	Enabled(level Level) bool
}

type slogLogger struct {
	h     *slog.Logger
	level Level
}

// New returns a logfmt logger writing to out
func New(out io.Writer, level Level) Logger {
	if out == nil {
		out = os.Stderr
	}
	h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level.slog()})
	return &slogLogger{h: slog.New(h), level: level}
}

func Nop() Logger {
	return New(io.Discard, Error)
}

// OpenFile opens (or creates) a log file and returns a logger on it together
// with a close func. The standard library logger is redirected to the same file
// so messages from third-party code end up next to ours.
func OpenFile(path string, level Level) (Logger, func() error, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return New(f, level), f.Close, nil
}

// ParseLevel maps a config string to a level; unknown values mean Info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func (l Level) slog() slog.Level {
	switch l {
	case Debug:
		return slog.LevelDebug
	case Warn:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *slogLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}
	return l.h.Enabled(context.Background(), level.slog())
}

func (l *slogLogger) With(fields ...Field) Logger {
	if l == nil {
		return Nop()
	}
	return &slogLogger{h: l.h.With(attrs(fields)...), level: l.level}
}

func (l *slogLogger) Debug(msg string, fields ...Field) { l.log(Debug, msg, fields) }
func (l *slogLogger) Info(msg string, fields ...Field)  { l.log(Info, msg, fields) }
func (l *slogLogger) Warn(msg string, fields ...Field)  { l.log(Warn, msg, fields) }
func (l *slogLogger) Error(msg string, fields ...Field) { l.log(Error, msg, fields) }

func (l *slogLogger) log(level Level, msg string, fields []Field) {
	if l == nil {
		return
	}
	l.h.Log(context.Background(), level.slog(), msg, attrs(fields)...)
}

func attrs(fields []Field) []any {
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			out = append(out, slog.String(f.Key, err.Error()))
			continue
		}
		out = append(out, slog.Any(f.Key, f.Value))
	}
	return out
}
