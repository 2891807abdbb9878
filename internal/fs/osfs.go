package fs

import (
	"os"
	"path/filepath"
)

// OSFS is the concrete implementation of FS backed by the local OS filesystem.
// Platform-specific details (such as the change time) are handled in build-tagged files.
type OSFS struct{}

func New() *OSFS {
	return &OSFS{}
}

func (o *OSFS) Stat(path string) (FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}

	return FileInfo{
		Name:       filepath.Base(path),
		Path:       path,
		Size:       st.Size(),
		Mode:       st.Mode(),
		ModTime:    st.ModTime(),
		ChangeTime: changeTimeOf(st),
	}, nil
}

func (o *OSFS) ReadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

func (o *OSFS) CopyFile(src, dstDir string) (string, error) {
	dst := filepath.Join(dstDir, filepath.Base(src))
	if err := copyOnce(src, dst); err != nil {
		return "", err
	}
	return dst, nil
}

func (o *OSFS) Remove(path string) error {
	return os.Remove(path)
}
