package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/raoulx24/backup-pruner/internal/config"
)

func TestNew(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		l, err := New(config.LoggingConfig{Level: "debug", Format: format})
		require.NoError(t, err, format)
		require.NotNil(t, l)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "chatty", Format: "json"})
	require.ErrorContains(t, err, "parsing log level")
}

func TestWithBindsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With("run_id", "abc")

	l.Info("copied", "file", "a.txt")
	l.Debug("classified", "age_days", 2)

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "copied", entry.Message)
	require.Equal(t, zapcore.InfoLevel, entry.Level)
	fields := entry.ContextMap()
	require.Equal(t, "abc", fields["run_id"])
	require.Equal(t, "a.txt", fields["file"])
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("ignored", "k", "v")
	l.Sync()
}
