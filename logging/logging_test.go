package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/grayknuth/config"
	"github.com/katalvlaran/grayknuth/logging"
)

func TestNewWithSink_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.NewWithSink(config.LogConfig{Level: "info", Format: "json"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("encoded", zap.Int("n", 7), zap.Int("step", 4))
	require.NoError(t, log.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1, "debug entry must be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "encoded", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "grayknuth", entry["logger"])
	assert.EqualValues(t, 4, entry["step"])
	assert.Contains(t, entry, "ts")
}

func TestNewWithSink_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.NewWithSink(config.LogConfig{Level: "debug", Format: "console"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	log.Debug("decode rejected", zap.String("reason", "malformed"))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "decode rejected")
	assert.Contains(t, out, `"reason": "malformed"`)
}

func TestNewWithSink_Errors(t *testing.T) {
	var buf bytes.Buffer
	_, err := logging.NewWithSink(config.LogConfig{Level: "loud", Format: "json"}, zapcore.AddSync(&buf))
	assert.Error(t, err)

	_, err = logging.NewWithSink(config.LogConfig{Level: "info", Format: "xml"}, zapcore.AddSync(&buf))
	assert.ErrorContains(t, err, "unknown format")
}

func TestNew_Stderr(t *testing.T) {
	log, err := logging.New(config.Default().Log)
	require.NoError(t, err)
	assert.NotNil(t, log)
}
