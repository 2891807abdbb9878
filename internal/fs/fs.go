// Package fs defines the filesystem abstraction used by backup-pruner.
// It provides the FS interface and the FileInfo type shared across the system.
package fs

import (
	"os"
	"time"
)

type FileInfo struct {
	Name       string
	Path       string
	Size       int64
	Mode       os.FileMode
	ModTime    time.Time
	// ChangeTime is whatever the platform reports as the creation field:
	// inode change time on Unix, creation time on Windows.
	ChangeTime time.Time
}

// IsRegular reports whether the entry is a plain file.
func (fi FileInfo) IsRegular() bool {
	return fi.Mode.IsRegular()
}

type FS interface {
	// Stat follows symlinks.
	Stat(path string) (FileInfo, error)
	// ReadDir returns the names of the immediate entries of dir.
	ReadDir(dir string) ([]string, error)
	// CopyFile copies src into dstDir under its base name, replacing any existing file.
	CopyFile(src, dstDir string) (string, error)
	Remove(path string) error
}
