package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	cfg := DefaultConfig()
	l, err := New(cfg)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	cfg.Level = "debug"
	l, err = New(cfg)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	cfg.Level = "chatty"
	l, err = New(cfg)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_FileOutputJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netfeas.log")
	l, err := New(Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	l.Info("resolved", zap.Int("edges", 4))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"resolved"`)
	assert.Contains(t, string(data), `"timestamp"`)
	assert.Contains(t, string(data), `"edges":4`)
}

func TestNew_BadFile(t *testing.T) {
	_, err := New(Config{Level: "info", Output: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}
