package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_ModuleAndDetails(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewCoreLogger(core)

	l.Info("ScoreService", "Score submitted", map[string]interface{}{"total": 3.4})
	l.Warn("ChatService", "Rejected", nil)
	l.Error("ConsumerService", "Archive failed", map[string]interface{}{"error": errors.New("boom")})

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, "Score submitted", entries[0].Message)
	assert.Equal(t, "ScoreService", entries[0].ContextMap()["module"])
	assert.Equal(t, map[string]interface{}{"total": 3.4}, entries[0].ContextMap()["details"])

	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, map[string]interface{}{}, entries[1].ContextMap()["details"])

	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
}

func TestIsolatedLogger_WritesFile(t *testing.T) {
	path := t.TempDir() + "/ws.log"
	l := NewIsolatedLogger(path)

	l.Info("Hub", "Client registered", nil)
	require.NoError(t, l.Sync())
	assert.FileExists(t, path)
}
