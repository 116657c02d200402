package zapadapter_test

import (
	"context"
	"testing"

	"github.com/jackc/pgtext"
	"github.com/jackc/pgtext/log/zapadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zapadapter.NewLogger(zap.New(core))
	ctx := context.Background()

	logger.Log(ctx, pgtext.LogLevelWarn, "Parse", map[string]any{"type": "int2", "issue": "too_big"})
	logger.Log(ctx, pgtext.LogLevelTrace, "Parse", nil)
	logger.Log(ctx, pgtext.LogLevel(42), "Parse", nil)

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "Parse", entries[0].Message)
	assert.Equal(t, map[string]any{"type": "int2", "issue": "too_big"}, entries[0].ContextMap())

	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, map[string]any{"PGTEXT_LOG_LEVEL": "trace"}, entries[1].ContextMap())

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, map[string]any{"INVALID_PGTEXT_LOG_LEVEL": "invalid level 42"}, entries[2].ContextMap())
}
