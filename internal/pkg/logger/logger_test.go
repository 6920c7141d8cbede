package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("writes json with timestamp and lowercase level", func(t *testing.T) {
		var buf bytes.Buffer
		log := newLogger(Config{Level: "info", Format: "json"}, &buf)

		log.Info("hello")
		require.NoError(t, log.Sync())

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
		assert.NotEmpty(t, entry["timestamp"])
	})

	t.Run("respects the level", func(t *testing.T) {
		var buf bytes.Buffer
		log := newLogger(Config{Level: "warn"}, &buf)

		log.Info("dropped")
		assert.Zero(t, buf.Len())

		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		log := newLogger(Config{Level: "verbose"}, &buf)

		log.Debug("dropped")
		log.Info("kept")
		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("adds request id", func(t *testing.T) {
		var buf bytes.Buffer
		log := WithRequestID(newLogger(Config{}, &buf), "req-1")

		log.Info("with id")
		assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	})
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "springweb.log")
	log := New(Config{Level: "info", File: path, MaxSizeMB: 1, MaxBackups: 1})

	log.Info("to file")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
