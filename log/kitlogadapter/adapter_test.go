package kitlogadapter_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-kit/log"
	"github.com/jackc/pgtext"
	"github.com/jackc/pgtext/log/kitlogadapter"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		level pgtext.LogLevel
		data  map[string]any
		want  string
	}{
		{pgtext.LogLevelWarn, map[string]any{"issue": "not_whole"}, `{"issue":"not_whole","level":"warn","msg":"Parse"}`},
		{pgtext.LogLevelDebug, nil, `{"level":"debug","msg":"Parse"}`},
		{pgtext.LogLevelTrace, nil, `{"PGTEXT_LOG_LEVEL":"trace","msg":"Parse"}`},
		{pgtext.LogLevel(0), nil, `{"INVALID_PGTEXT_LOG_LEVEL":"invalid level 0","error":"Parse"}`},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		logger := kitlogadapter.NewLogger(log.NewJSONLogger(&buf))
		logger.Log(context.Background(), tt.level, "Parse", tt.data)
		assert.JSONEq(t, tt.want, buf.String())
	}
}
