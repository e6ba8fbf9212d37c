package platform

import (
	"os"
	"syscall"
	"time"
)

// creationTime returns the inode status-change time, the closest Linux
// exposes through stat
func creationTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctim.Unix())
	}
	return info.ModTime()
}
