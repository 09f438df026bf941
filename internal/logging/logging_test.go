package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel("info")

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, zapcore.DebugLevel, Level())

	require.NoError(t, SetLevel("ERROR"))
	assert.Equal(t, zapcore.ErrorLevel, Level())

	assert.Error(t, SetLevel("chatty"))
	assert.Equal(t, zapcore.ErrorLevel, Level())
}

func TestNamedLoggerHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(zapcore.AddSync(&buf))
	defer SetLevel("info")

	logger := MustGetLogger("tempseries.test")

	require.NoError(t, SetLevel("warn"))
	logger.Info("hidden")
	logger.Warnw("shown", "count", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "tempseries.test")
	assert.Contains(t, out, "count")
}

func TestSetOutputRedirectsExistingLoggers(t *testing.T) {
	logger := MustGetLogger("tempseries.early")

	var first, second bytes.Buffer
	SetOutput(zapcore.AddSync(&first))
	logger.Info("to first")

	SetOutput(zapcore.AddSync(&second))
	logger.Info("to second")

	assert.Contains(t, first.String(), "to first")
	assert.NotContains(t, first.String(), "to second")
	assert.Contains(t, second.String(), "to second")
}
