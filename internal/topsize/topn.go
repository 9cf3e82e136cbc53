package topsize

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidTopN indicates a non-positive selection capacity.
var ErrInvalidTopN = errors.New("top-n must be positive")

// Selection keeps the N largest records seen so far, ordered largest
// first. Records below the minimum size never enter. Once full, a
// candidate must be strictly larger than the smallest held record to
// displace it, so among equal sizes the first one admitted stays.
//
// Selection is not safe for concurrent use; the collector serializes
// access to it.
type Selection struct {
	limit   int
	minSize int64
	records []FileRecord
}

// NewSelection creates a selection holding at most limit records of at
// least minSize bytes each.
func NewSelection(limit int, minSize int64) (*Selection, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTopN, limit)
	}

	return &Selection{
		limit:   limit,
		minSize: minSize,
		records: make([]FileRecord, 0, limit),
	}, nil
}

// Eligible reports whether a record of the given size could enter the
// selection right now. The answer goes stale as soon as further records
// are admitted; Admit re-checks, so a stale yes only costs the caller
// the work it did to build the record.
func (s *Selection) Eligible(size int64) bool {
	if size < s.minSize {
		return false
	}

	return len(s.records) < s.limit || size > s.records[len(s.records)-1].Size
}

// Admit offers a record to the selection and reports whether it was
// kept. Admission is O(log n) to locate the slot plus O(n) to shift;
// once the selection is full, records at or below the floor are
// rejected in O(1).
func (s *Selection) Admit(rec FileRecord) bool {
	if rec.Size < s.minSize {
		return false
	}

	full := len(s.records) == s.limit
	if full && rec.Size <= s.records[len(s.records)-1].Size {
		return false
	}

	// Insert after any records of equal size so earlier arrivals stay ahead.
	idx := sort.Search(len(s.records), func(i int) bool {
		return s.records[i].Size < rec.Size
	})

	if full {
		s.records = s.records[:len(s.records)-1]
	}

	s.records = append(s.records, FileRecord{})
	copy(s.records[idx+1:], s.records[idx:])
	s.records[idx] = rec

	return true
}

// Len returns the number of records currently held.
func (s *Selection) Len() int {
	return len(s.records)
}

// Records returns the held records, largest first. The slice is the
// selection's backing store; callers must not grow it.
func (s *Selection) Records() []FileRecord {
	return s.records
}
