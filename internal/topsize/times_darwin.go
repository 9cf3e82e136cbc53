//go:build darwin

package topsize

import (
	"io/fs"
	"syscall"
	"time"
)

// fileTimes extracts the access and birth times from the Stat_t the
// walk already loaded.
func fileTimes(_ string, info fs.FileInfo) (created, accessed time.Time) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return created, accessed
	}

	accessed = time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec)
	created = time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)

	return created, accessed
}
