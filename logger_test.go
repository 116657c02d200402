package pgtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelFromString(t *testing.T) {
	for _, lvl := range []LogLevel{LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError, LogLevelNone} {
		got, err := LogLevelFromString(lvl.String())
		require.NoError(t, err)
		assert.Equal(t, lvl, got)
	}

	_, err := LogLevelFromString("loud")
	require.Error(t, err)
	assert.Equal(t, "invalid level 0", LogLevel(0).String())
}

func TestLogSrc(t *testing.T) {
	assert.Equal(t, "short", logSrc("short"))

	s := strings.Repeat("x", 64)
	assert.Equal(t, s, logSrc(s))
	assert.Equal(t, s+" (truncated 3 bytes)", logSrc(s+"abc"))

	// A rune straddling the limit is kept whole.
	s = strings.Repeat("x", 63) + "é" + "abc"
	assert.Equal(t, strings.Repeat("x", 63)+"é (truncated 3 bytes)", logSrc(s))
}
