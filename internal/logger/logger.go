package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

type implLogger struct {
	logger *log.Logger
	json   *slog.Logger
	level  string
}

// New creates a text Logger writing to stdout
func New(level string) Logger {
	return NewWithFormat(level, "text", os.Stdout)
}

// NewWithFormat creates a Logger for the given format ("text" or "json")
func NewWithFormat(level, format string, w io.Writer) Logger {
	if w == nil {
		w = os.Stdout
	}
	l := &implLogger{level: strings.ToLower(level)}
	if strings.EqualFold(format, "json") {
		l.json = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		l.logger = log.New(w, "", log.LstdFlags)
	}
	return l
}

// Nop returns a Logger that discards everything
func Nop() Logger {
	return NewWithFormat("error", "text", io.Discard)
}

func (l *implLogger) shouldLog(level string) bool {
	levels := map[string]int{
		"debug": 0,
		"info":  1,
		"warn":  2,
		"error": 3,
	}

	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) write(ctx context.Context, level string, msg string, args []interface{}) {
	if !l.shouldLog(level) {
		return
	}
	if l.json != nil {
		text := fmt.Sprintf(msg, args...)
		switch level {
		case "debug":
			l.json.DebugContext(ctx, text)
		case "warn":
			l.json.WarnContext(ctx, text)
		case "error":
			l.json.ErrorContext(ctx, text)
		default:
			l.json.InfoContext(ctx, text)
		}
		return
	}
	l.logger.Printf("["+strings.ToUpper(level)+"] "+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "debug", msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "info", msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "warn", msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "error", msg, args)
}
