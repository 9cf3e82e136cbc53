package topsize

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Options configures a scan.
type Options struct {
	// Path is the root directory to scan.
	Path string
	// MinSize is the inclusive minimum file size in bytes.
	MinSize int64
	// TopN is the number of largest files to keep. Must be positive.
	TopN int
	// Workers overrides the walker parallelism (0 = walker default).
	Workers int
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Logger receives per-entry debug output. Nil disables logging.
	Logger *zap.Logger
}

// Stats holds the counters accumulated over one scan.
type Stats struct {
	// FileCount is the number of regular files stated successfully.
	FileCount int64 `json:"file_count"`
	// DirCount is the number of directories descended into.
	DirCount int64 `json:"dir_count"`
	// ErrorCount is the number of entries skipped due to errors.
	ErrorCount int64 `json:"error_count"`
	// PermissionDenied is the subset of ErrorCount caused by permissions.
	PermissionDenied int64 `json:"permission_denied"`
	// TotalBytes is the cumulative size of all counted files.
	TotalBytes int64 `json:"total_bytes"`
	// Elapsed is the wall time of the walk.
	Elapsed time.Duration `json:"elapsed"`
}

// Progress is a point-in-time counter snapshot passed to progress
// callbacks while a scan is running.
type Progress struct {
	Files  int64
	Dirs   int64
	Errors int64
	Bytes  int64
}

// Result is the outcome of one scan.
type Result struct {
	// Root is the cleaned root path the scan ran over, in slash form.
	Root string `json:"root"`
	// Top contains the selected files, largest first.
	Top []FileRecord `json:"top"`
	// Stats holds the scan counters.
	Stats Stats `json:"stats"`
	// TopN is the selection capacity the scan ran with.
	TopN int `json:"top_n"`
	// MinSize is the minimum size filter in bytes.
	MinSize int64 `json:"min_size"`
}

// collector aggregates scan state from concurrent fastwalk callbacks
// using a mutex.
type collector struct {
	mu         sync.Mutex // Protect concurrent access
	selection  *Selection
	fileCount  int64
	dirCount   int64
	errorCount int64
	permDenied int64
	totalBytes int64
}

// newCollector creates a collector feeding the given selection.
func newCollector(selection *Selection) *collector {
	return &collector{selection: selection}
}

// addDir counts a directory visit.
func (c *collector) addDir() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dirCount++
}

// addError counts a skipped entry. Permission failures are tallied
// separately on top of the error count.
func (c *collector) addError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.countErrorLocked(err)
}

// addDirError counts a directory whose contents could not be read. The
// walk reports such a directory a second time after the plain visit
// already counted it, so the visit is taken back out of the count.
func (c *collector) addDirError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dirCount--
	c.countErrorLocked(err)
}

func (c *collector) countErrorLocked(err error) {
	c.errorCount++

	if errors.Is(err, fs.ErrPermission) {
		c.permDenied++
	}
}

// addFile counts a stated regular file and reports whether a record of
// that size could currently enter the selection. Callers use the answer
// to skip timestamp lookups for files that stand no chance.
func (c *collector) addFile(size int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fileCount++
	c.totalBytes += size

	return c.selection.Eligible(size)
}

// admit offers a fully-built record to the selection. This operation is
// protected by a mutex since fastwalk calls the callback from multiple
// goroutines concurrently.
func (c *collector) admit(rec FileRecord) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.selection.Admit(rec)
}

// snapshot returns the current counters for progress reporting.
func (c *collector) snapshot() Progress {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Progress{
		Files:  c.fileCount,
		Dirs:   c.dirCount,
		Errors: c.errorCount,
		Bytes:  c.totalBytes,
	}
}

// finalize produces the Result from the collected state. Display paths
// are converted to slash format for cross-platform consistency and
// stripped of any leading "./".
func (c *collector) finalize(root string) *Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	top := c.selection.Records()
	for i := range top {
		top[i].Path = strings.TrimPrefix(filepath.ToSlash(top[i].Path), "./")
	}

	return &Result{
		Root: root,
		Top:  top,
		Stats: Stats{
			FileCount:        c.fileCount,
			DirCount:         c.dirCount,
			ErrorCount:       c.errorCount,
			PermissionDenied: c.permDenied,
			TotalBytes:       c.totalBytes,
		},
		TopN:    c.selection.limit,
		MinSize: c.selection.minSize,
	}
}
