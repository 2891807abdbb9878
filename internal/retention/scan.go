package retention

import (
	"fmt"
	"path/filepath"

	"github.com/raoulx24/backup-pruner/internal/fs"
)

// ScanFiles lists the regular files directly under dir, in the order the
// filesystem returns them. Directories, special files and entries that cannot
// be stat'ed (dangling symlinks, entries gone since the listing) are skipped.
func ScanFiles(fsys fs.FS, dir string) ([]fs.FileInfo, error) {
	names, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var files []fs.FileInfo
	for _, name := range names {
		info, err := fsys.Stat(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if !info.IsRegular() {
			continue
		}
		info.Name = name
		files = append(files, info)
	}

	return files, nil
}
