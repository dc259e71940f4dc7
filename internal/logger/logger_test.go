package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{verbosity: 0, want: zapcore.WarnLevel},
		{verbosity: 1, want: zapcore.InfoLevel},
		{verbosity: 2, want: zapcore.DebugLevel},
		{verbosity: 5, want: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestNewSilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New(VerbosityUser, false, &buf)

	log.Infow("probe", "name", "git")
	log.Errorw("boom")
	require.NoError(t, log.Sync())

	assert.Empty(t, buf.String())
}

func TestNewInfoSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(VerbosityInfo, false, &buf)

	log.Debugw("hidden")
	log.Infow("visible", "step", "create_files")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "create_files")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(VerbosityDebug, true, &buf)

	log.Debugw("external command", "name", "uv", "args", []string{"venv"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "external command", entry["msg"])
	assert.Equal(t, "uv", entry["name"])
}

func TestInitialize(t *testing.T) {
	t.Cleanup(func() {
		_ = Initialize(VerbosityUser, false)
	})

	require.NoError(t, Initialize(VerbosityDebug, true))
	assert.NotNil(t, Logger)
	assert.True(t, JSONOutput)

	require.NoError(t, Initialize(VerbosityUser, true))
	assert.False(t, JSONOutput)
}
