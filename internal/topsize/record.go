package topsize

import (
	"io/fs"
	"time"
)

// FileRecord describes a single regular file encountered during a scan.
type FileRecord struct {
	// Path is the display path: relative to the working directory when
	// the root lies inside it, absolute otherwise.
	Path string `json:"path"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
	// Created is the file birth time; zero when the platform or
	// filesystem does not record one.
	Created time.Time `json:"created,omitzero"`
	// Modified is the content modification time.
	Modified time.Time `json:"modified"`
	// Accessed is the last access time; zero when unavailable.
	Accessed time.Time `json:"accessed,omitzero"`
}

// newFileRecord builds a record for a stated file. path is the native
// path used for extra metadata lookups; display is what ends up in the
// record.
func newFileRecord(display, path string, info fs.FileInfo) FileRecord {
	created, accessed := fileTimes(path, info)

	return FileRecord{
		Path:     display,
		Size:     info.Size(),
		Created:  created,
		Modified: info.ModTime(),
		Accessed: accessed,
	}
}
