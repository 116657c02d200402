package main

import (
	"io"

	kitlog "github.com/go-kit/log"
	"github.com/jackc/pgtext"
	"github.com/jackc/pgtext/log/kitlogadapter"
	"github.com/jackc/pgtext/log/log15adapter"
	"github.com/jackc/pgtext/log/logrusadapter"
	"github.com/jackc/pgtext/log/zapadapter"
	"github.com/jackc/pgtext/log/zerologadapter"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/inconshreveable/log15.v2"
)

// newLogger returns a pgtext.Logger writing to w through backend. The backends log everything they are given;
// the TypeMap log level does the filtering.
func newLogger(backend string, w io.Writer) (pgtext.Logger, error) {
	switch backend {
	case "", "none":
		return nil, nil
	case "zerolog":
		return zerologadapter.NewLogger(zerolog.New(w).With().Timestamp().Logger()), nil
	case "zap":
		core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(w), zapcore.DebugLevel)
		return zapadapter.NewLogger(zap.New(core)), nil
	case "logrus":
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(logrus.TraceLevel)
		return logrusadapter.NewLogger(l), nil
	case "log15":
		l := log15.New()
		l.SetHandler(log15.StreamHandler(w, log15.LogfmtFormat()))
		return log15adapter.NewLogger(l), nil
	case "kitlog":
		return kitlogadapter.NewLogger(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))), nil
	default:
		return nil, errors.Errorf("unknown log backend %q", backend)
	}
}
