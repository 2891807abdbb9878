package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollectorCounts(t *testing.T) {
	c := New()

	c.FileScanned()
	c.FileScanned()
	c.FileCopied(100)
	c.FileDeleted()
	c.Finish(time.Unix(1700000000, 0), true)

	require.Equal(t, 2.0, testutil.ToFloat64(c.scanned))
	require.Equal(t, 1.0, testutil.ToFloat64(c.copied))
	require.Equal(t, 100.0, testutil.ToFloat64(c.bytesCopied))
	require.Equal(t, 1.0, testutil.ToFloat64(c.deleted))
	require.Equal(t, 1700000000.0, testutil.ToFloat64(c.lastRun))
	require.Equal(t, 1.0, testutil.ToFloat64(c.lastSuccess))

	c.Finish(time.Unix(1700000100, 0), false)
	require.Equal(t, 0.0, testutil.ToFloat64(c.lastSuccess))
}

func TestWriteTextfile(t *testing.T) {
	c := New()
	c.FileCopied(42)
	path := filepath.Join(t.TempDir(), "backup_pruner.prom")

	require.NoError(t, c.WriteTextfile(path))

	expected := `
# HELP backup_pruner_bytes_copied_total Bytes copied to the destination.
# TYPE backup_pruner_bytes_copied_total counter
backup_pruner_bytes_copied_total 42
`
	require.NoError(t, testutil.CollectAndCompare(c.bytesCopied, strings.NewReader(expected)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "backup_pruner_files_copied_total 1")
}

func TestWriteTextfileBadPath(t *testing.T) {
	err := New().WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"))
	require.ErrorContains(t, err, "writing metrics textfile")
}
