package retention

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raoulx24/backup-pruner/internal/fs"
)

func TestValidateDirs(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	file := filepath.Join(src, "plain.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	missing := filepath.Join(src, "missing")

	require.NoError(t, ValidateDirs(fs.New(), src, dst))

	tests := []struct {
		name     string
		src, dst string
		field    string
		path     string
	}{
		{"missing source", missing, dst, "source", missing},
		{"missing destination", src, missing, "destination", missing},
		{"source is a file", file, dst, "source", file},
		{"destination is a file", src, file, "destination", file},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDirs(fs.New(), tt.src, tt.dst)
			require.ErrorIs(t, err, ErrDirectoryNotFound)

			var cerr *ConfigurationError
			require.True(t, errors.As(err, &cerr))
			require.Equal(t, KindDirectoryNotFound, cerr.Kind)
			require.Equal(t, tt.field, cerr.Field)
			require.Equal(t, tt.path, cerr.Path)
			require.Contains(t, cerr.Error(), tt.path)
		})
	}
}

func TestValidateDirsWrapsStatError(t *testing.T) {
	err := ValidateDirs(fs.New(), filepath.Join(t.TempDir(), "nope"), t.TempDir())
	require.ErrorIs(t, err, os.ErrNotExist)
}
