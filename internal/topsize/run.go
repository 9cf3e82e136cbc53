package topsize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// ErrInvalidRoot indicates the scan root is missing or not a directory.
var ErrInvalidRoot = errors.New("invalid root")

// startProgressReporter invokes hook with a counter snapshot on each
// tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(Progress), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.snapshot())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// displayPath returns a path as presented to the user: relative to cwd
// when the scan root lies inside it, absolute otherwise.
func displayPath(path, cwd string, outsideCwd bool) string {
	if outsideCwd {
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}

		return path
	}

	if rel, err := filepath.Rel(cwd, path); err == nil {
		return rel
	}

	return path
}

// Run walks the tree rooted at opt.Path and returns the largest files
// found along with walk statistics.
//
// The root must exist and be a directory, and opt.TopN must be
// positive; both are checked before any traversal and fail with errors
// wrapping ErrInvalidRoot and ErrInvalidTopN respectively. Per-entry
// failures during the walk are counted and skipped, never fatal.
//
// The walk operation can be cancelled via ctx. Progress updates are
// sent to progressHook if provided.
func Run(ctx context.Context, opt Options, progressHook func(Progress)) (*Result, error) {
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if opt.Path == "" {
		opt.Path = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	// filepath.Clean handles both separators and converts to native format
	opt.Path = filepath.Clean(opt.Path)

	// Determine if target is outside cwd (to decide between relative/absolute display)
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	absTarget, err := filepath.Abs(opt.Path)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	relToTarget, err := filepath.Rel(cwd, absTarget)
	outsideCwd := err != nil || strings.HasPrefix(relToTarget, "..")

	// validate path exists and is a directory before anything else
	if info, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("%w: accessing %q: %w", ErrInvalidRoot, opt.Path, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrInvalidRoot, opt.Path)
	}

	selection, err := NewSelection(opt.TopN, opt.MinSize)
	if err != nil {
		return nil, err
	}

	collector := newCollector(selection)

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Start progress reporter goroutine
	startProgressReporter(ctx, collector, progressHook, opt.ProgressInterval)

	start := time.Now()

	// Configure fastwalk
	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: opt.Workers,
	}

	// Walk directory with fastwalk (parallel traversal)
	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, opt.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// An unreadable directory is reported as a second visit of
			// an entry already counted; take the count back.
			if d != nil && d.IsDir() {
				collector.addDirError(err)
			} else {
				collector.addError(err)
			}

			log.Debug("skipping entry", zap.String("path", path), zap.Error(err))

			return nil
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if d.IsDir() {
			collector.addDir()

			return nil
		}

		// Symlinks, sockets, devices and the like are skipped outright.
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			collector.addError(err)

			log.Debug("reading file info", zap.String("path", path), zap.Error(err))

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		// Count the file; skip the timestamp lookups unless the size
		// can still make the selection.
		if !collector.addFile(info.Size()) {
			return nil
		}

		display := displayPath(path, cwd, outsideCwd)

		collector.admit(newFileRecord(display, path, info))

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	result := collector.finalize(filepath.ToSlash(opt.Path))

	result.Stats.Elapsed = time.Since(start)

	return result, nil
}
