// Package kitlogadapter provides a logger that writes to a github.com/go-kit/log.Logger.
package kitlogadapter

import (
	"context"

	"github.com/go-kit/log"
	kitlevel "github.com/go-kit/log/level"
	"github.com/jackc/pgtext"
)

type Logger struct {
	l log.Logger
}

func NewLogger(l log.Logger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(ctx context.Context, level pgtext.LogLevel, msg string, data map[string]any) {
	logger := l.l
	for k, v := range data {
		logger = log.With(logger, k, v)
	}

	switch level {
	case pgtext.LogLevelTrace:
		logger.Log("PGTEXT_LOG_LEVEL", level, "msg", msg)
	case pgtext.LogLevelDebug:
		kitlevel.Debug(logger).Log("msg", msg)
	case pgtext.LogLevelInfo:
		kitlevel.Info(logger).Log("msg", msg)
	case pgtext.LogLevelWarn:
		kitlevel.Warn(logger).Log("msg", msg)
	case pgtext.LogLevelError:
		kitlevel.Error(logger).Log("msg", msg)
	default:
		logger.Log("INVALID_PGTEXT_LOG_LEVEL", level, "error", msg)
	}
}
