// Package logrusadapter provides a logger that writes to a github.com/sirupsen/logrus.Logger
// log.
package logrusadapter

import (
	"context"

	"github.com/jackc/pgtext"
	"github.com/sirupsen/logrus"
)

type Logger struct {
	l logrus.FieldLogger
}

func NewLogger(l logrus.FieldLogger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(ctx context.Context, level pgtext.LogLevel, msg string, data map[string]any) {
	var logger logrus.FieldLogger
	if data != nil {
		logger = l.l.WithFields(data)
	} else {
		logger = l.l
	}

	switch level {
	case pgtext.LogLevelTrace:
		logger.WithField("PGTEXT_LOG_LEVEL", level).Debug(msg)
	case pgtext.LogLevelDebug:
		logger.Debug(msg)
	case pgtext.LogLevelInfo:
		logger.Info(msg)
	case pgtext.LogLevelWarn:
		logger.Warn(msg)
	case pgtext.LogLevelError:
		logger.Error(msg)
	default:
		logger.WithField("INVALID_PGTEXT_LOG_LEVEL", level).Error(msg)
	}
}
