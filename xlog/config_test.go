package xlog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("XLOG_LVL", "")
	t.Setenv("XLOG_ENCODER", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	opts, err := cfg.Options()
	require.NoError(t, err)
	require.Len(t, opts, 2)

	t.Setenv("XLOG_LVL", "warn")
	t.Setenv("XLOG_ENCODER", "plaintext")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Level)
	require.Equal(t, "plaintext", cfg.Encoder)

	buf := &bytes.Buffer{}
	logger, err := NewXLoggerFromEnv(WithXLoggerWriteSyncer(zapcore.AddSync(buf)))
	require.NoError(t, err)
	require.Equal(t, "warn", logger.Level())
	logger.Info("dropped")
	logger.Warn("kept")
	require.NotContains(t, buf.String(), "dropped")
	require.Contains(t, buf.String(), "kept")
	require.NotContains(t, buf.String(), "{")

	t.Setenv("XLOG_ENCODER", "yaml")
	_, err = NewXLoggerFromEnv()
	require.Error(t, err)

	var nilCfg *Config
	_, err = nilCfg.Options()
	require.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, LogLevelDebug, parseLogLevel(""))
	require.Equal(t, LogLevelDebug, parseLogLevel("verbose"))
	require.Equal(t, LogLevelInfo, parseLogLevel(" info "))
	require.Equal(t, LogLevelError, parseLogLevel("ERROR"))
	require.Equal(t, zapcore.WarnLevel, parseLogLevel("Warn").zapLevel())
}
