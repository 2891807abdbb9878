//go:build darwin || freebsd || netbsd

package fs

import (
	"os"
	"syscall"
	"time"
)

func changeTimeOf(info os.FileInfo) time.Time {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(int64(st.Ctimespec.Sec), int64(st.Ctimespec.Nsec))
}
