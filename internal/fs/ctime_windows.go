//go:build windows

package fs

import (
	"os"
	"syscall"
	"time"
)

// Windows exposes a real creation time.
func changeTimeOf(info os.FileInfo) time.Time {
	attr, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(0, attr.CreationTime.Nanoseconds())
}
