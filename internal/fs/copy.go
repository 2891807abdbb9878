package fs

import (
	"io"
	"os"
)

// copies file contents and permission bits, overwriting dst.
// There is no retry: a failure is returned to the caller as is.

func copyOnce(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	st, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, st.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	// O_CREATE only applies the mode to new files
	if err := out.Chmod(st.Mode().Perm()); err != nil {
		return err
	}

	return out.Sync()
}
