package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_LevelsAndFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewZapLogger(zap.New(core))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, "dbg", entries[0].Message)
	assert.Equal(t, zap.DebugLevel, entries[0].Level)
	assert.Equal(t, int64(2), entries[1].ContextMap()["b"])
	assert.Equal(t, zap.ErrorLevel, entries[3].Level)
}

func TestZapLogger_With_AddsFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := NewZapLogger(zap.New(core)).With("module", "grpc_server")

	log.Info(context.Background(), "hello", "k", "v")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "grpc_server", fields["module"])
	assert.Equal(t, "v", fields["k"])
}

func TestZapLogger_ContextFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := NewZapLogger(zap.New(core))
	ctx := WithFields(context.Background(), "request_id", "r-9", "method", "CreateStore")

	log.Error(ctx, "failed", "error", "boom")
	log.Info(context.Background(), "plain")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "r-9", fields["request_id"])
	assert.Equal(t, "CreateStore", fields["method"])
	assert.Equal(t, "boom", fields["error"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestNew_Backends(t *testing.T) {
	var buf bytes.Buffer

	l, err := New(BackendSlog, &buf)
	require.NoError(t, err)
	l.Info(context.Background(), "from-slog", "x", 1)
	assert.Contains(t, buf.String(), `"msg":"from-slog"`)

	buf.Reset()
	l, err = New(BackendZap, &buf)
	require.NoError(t, err)
	l.Info(context.Background(), "from-zap", "x", 1)
	require.NoError(t, l.(*ZapLogger).Sync())
	assert.Contains(t, buf.String(), `"msg":"from-zap"`)

	_, err = New("logrus", &buf)
	assert.Error(t, err)
}
