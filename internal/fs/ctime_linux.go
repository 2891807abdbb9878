//go:build linux

package fs

import (
	"os"
	"syscall"
	"time"
)

// st_ctim is the inode change time, reported in place of a creation time.
func changeTimeOf(info os.FileInfo) time.Time {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
}
