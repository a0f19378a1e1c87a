package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Level: tt.level}.LogLevel())
		})
	}
}

func TestConfig_Presets(t *testing.T) {
	assert.True(t, ProductionConfig().IsJSON())
	assert.False(t, DevelopmentConfig().IsJSON())
	assert.True(t, DevelopmentConfig().AddSource)
	assert.Equal(t, DefaultServiceName, DefaultConfig().ServiceName)
	assert.Len(t, DefaultConfig().BaseAttributes(), 3)
}

func TestInitLoggerWithWriter_JSON(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	InitLoggerWithWriter(&buf, NewConfig("info", "json", "idleforge", "1.2.3", "test", false))

	ctx := WithPlayerID(WithRequestID(context.Background(), "req-1"), "player-1")
	FromContext(ctx).Info("hello")
	slog.Debug("filtered out")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "idleforge", entry[AttrKeyService])
	assert.Equal(t, "1.2.3", entry[AttrKeyVersion])
	assert.Equal(t, "test", entry[AttrKeyEnvironment])
	assert.Equal(t, "req-1", entry[AttrKeyRequestID])
	assert.Equal(t, "player-1", entry[AttrKeyPlayerID])
}

func TestInitLoggerWithWriter_Text(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	InitLoggerWithWriter(&buf, NewConfig("debug", "text", "svc", "dev", "dev", false))

	slog.Debug("visible", "k", "v")

	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "k=v")
	assert.Contains(t, buf.String(), "service=svc")
}

func TestRequestIDFromContext(t *testing.T) {
	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)

	id := GenerateRequestID()
	got, ok := RequestIDFromContext(WithRequestID(context.Background(), id))
	assert.True(t, ok)
	assert.Equal(t, id, got)
	assert.Len(t, id, 36)
}
