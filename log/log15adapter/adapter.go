// Package log15adapter provides a logger that writes to a github.com/inconshreveable/log15.Logger
// log.
package log15adapter

import (
	"context"

	"github.com/jackc/pgtext"
)

// Log15Logger interface defines the subset of
// github.com/inconshreveable/log15.Logger that this adapter uses.
type Log15Logger interface {
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
	Crit(msg string, ctx ...any)
}

type Logger struct {
	l Log15Logger
}

func NewLogger(l Log15Logger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(ctx context.Context, level pgtext.LogLevel, msg string, data map[string]any) {
	logArgs := make([]any, 0, len(data)*2)
	for k, v := range data {
		logArgs = append(logArgs, k, v)
	}

	switch level {
	case pgtext.LogLevelTrace:
		l.l.Debug(msg, append(logArgs, "PGTEXT_LOG_LEVEL", level)...)
	case pgtext.LogLevelDebug:
		l.l.Debug(msg, logArgs...)
	case pgtext.LogLevelInfo:
		l.l.Info(msg, logArgs...)
	case pgtext.LogLevelWarn:
		l.l.Warn(msg, logArgs...)
	case pgtext.LogLevelError:
		l.l.Error(msg, logArgs...)
	default:
		l.l.Error(msg, append(logArgs, "INVALID_PGTEXT_LOG_LEVEL", level)...)
	}
}
