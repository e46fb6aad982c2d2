package zapadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/trickstertwo/logbridge"
)

func TestHost_VerbosityFollowsCore(t *testing.T) {
	for _, tc := range []struct {
		level zapcore.Level
		want  logbridge.Level
	}{
		{zapcore.DebugLevel, logbridge.LevelTrace},
		{zapcore.InfoLevel, logbridge.LevelInfo},
		{zapcore.WarnLevel, logbridge.LevelWarn},
		{zapcore.ErrorLevel, logbridge.LevelError},
	} {
		core, _ := observer.New(tc.level)
		got, err := logbridge.LevelFor(New(zap.New(core)))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "zap level %s", tc.level)
	}
}

func TestHost_BridgeDispatch(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b, err := logbridge.New(New(zap.New(core)), "xjc", "UTF-8")
	require.NoError(t, err)

	cause := errors.New("boom")
	b.Publish(logbridge.Record{Level: logbridge.LevelError, Message: "failed", Err: cause})
	b.Publish(logbridge.NewRecord(time.Time{}, logbridge.LevelWarn, "careful"))
	b.Publish(logbridge.NewRecord(time.Time{}, logbridge.LevelInfo, "hello"))
	b.Publish(logbridge.NewRecord(time.Time{}, logbridge.LevelTrace, "fine"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "[xjc]: failed", entries[0].Message)
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[2].Level)
	assert.Equal(t, zapcore.DebugLevel, entries[3].Level)
	assert.Empty(t, entries[1].Context)
}

func TestNewHost_JSON(t *testing.T) {
	var buf bytes.Buffer
	h, al := NewHost(Config{Writer: &buf, MinLevel: logbridge.LevelWarn})

	assert.False(t, h.IsInfoEnabled())
	assert.True(t, h.IsWarnEnabled())

	h.Info("dropped", nil)
	h.Warn("kept", errors.New("why"))

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m), buf.String())
	assert.Equal(t, "warn", m["level"])
	assert.Equal(t, "kept", m["message"])
	assert.Equal(t, "why", m["error"])

	al.SetLevel(zapcore.DebugLevel)
	assert.True(t, h.IsDebugEnabled())
}
