//go:build !linux && !darwin && !freebsd && !netbsd && !windows

package fs

import (
	"os"
	"time"
)

// no portable change time here, fall back to the modification time
func changeTimeOf(info os.FileInfo) time.Time {
	return info.ModTime()
}
