//go:build windows

package topsize

import (
	"io/fs"
	"syscall"
	"time"
)

// fileTimes extracts the access and creation times from the file
// attribute data the walk already loaded.
func fileTimes(_ string, info fs.FileInfo) (created, accessed time.Time) {
	st, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return created, accessed
	}

	created = time.Unix(0, st.CreationTime.Nanoseconds())
	accessed = time.Unix(0, st.LastAccessTime.Nanoseconds())

	return created, accessed
}
