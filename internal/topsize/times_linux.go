//go:build linux

package topsize

import (
	"io/fs"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// fileTimes extracts the access and birth times of a stated file. The
// access time comes from the Stat_t the walk already loaded; the birth
// time needs a statx call and stays zero on filesystems or kernels that
// do not report it.
func fileTimes(path string, info fs.FileInfo) (created, accessed time.Time) {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		accessed = time.Unix(st.Atim.Sec, st.Atim.Nsec)
	}

	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &stx); err == nil &&
		stx.Mask&unix.STATX_BTIME != 0 {
		created = time.Unix(int64(stx.Btime.Sec), int64(stx.Btime.Nsec))
	}

	return created, accessed
}
