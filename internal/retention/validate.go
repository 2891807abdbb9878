package retention

import (
	"github.com/raoulx24/backup-pruner/internal/fs"
)

// ValidateDirs checks that both directories exist. It never writes.
func ValidateDirs(fsys fs.FS, source, destination string) error {
	if err := requireDir(fsys, "source", source); err != nil {
		return err
	}
	return requireDir(fsys, "destination", destination)
}

func requireDir(fsys fs.FS, field, path string) error {
	st, err := fsys.Stat(path)
	if err != nil {
		return &ConfigurationError{Kind: KindDirectoryNotFound, Field: field, Path: path, Err: err}
	}
	if !st.Mode.IsDir() {
		return &ConfigurationError{Kind: KindDirectoryNotFound, Field: field, Path: path}
	}
	return nil
}
