package topsize

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizesOf(records []FileRecord) []int64 {
	out := make([]int64, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Size)
	}

	return out
}

func TestNewSelection(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		wantErr bool
	}{
		{"positive limit", 3, false},
		{"limit of one", 1, false},
		{"zero limit", 0, true},
		{"negative limit", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := NewSelection(tt.limit, 0)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTopN)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 0, sel.Len())
		})
	}
}

func TestSelectionAdmit(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		minSize int64
		input   []int64
		want    []int64
	}{
		{
			name:  "keeps the largest in descending order",
			limit: 3,
			input: []int64{10, 50, 30, 90, 20},
			want:  []int64{90, 50, 30},
		},
		{
			name:  "fewer records than capacity",
			limit: 10,
			input: []int64{5, 15},
			want:  []int64{15, 5},
		},
		{
			name:  "capacity of one tracks the maximum",
			limit: 1,
			input: []int64{3, 9, 7, 12, 1},
			want:  []int64{12},
		},
		{
			name:    "minimum size filters everything",
			limit:   2,
			minSize: 100,
			input:   []int64{10, 50, 99},
			want:    []int64{},
		},
		{
			name:    "minimum size is inclusive",
			limit:   2,
			minSize: 50,
			input:   []int64{10, 50, 99},
			want:    []int64{99, 50},
		},
		{
			name:  "equal sizes keep arrival order",
			limit: 2,
			input: []int64{5, 5, 5},
			want:  []int64{5, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := NewSelection(tt.limit, tt.minSize)
			require.NoError(t, err)

			for i, size := range tt.input {
				sel.Admit(FileRecord{Path: fmt.Sprintf("f%d", i), Size: size})
			}

			assert.Equal(t, tt.want, sizesOf(sel.Records()))
		})
	}
}

func TestSelectionAdmitTieBreak(t *testing.T) {
	sel, err := NewSelection(2, 0)
	require.NoError(t, err)

	assert.True(t, sel.Admit(FileRecord{Path: "first", Size: 5}))
	assert.True(t, sel.Admit(FileRecord{Path: "second", Size: 5}))
	assert.False(t, sel.Admit(FileRecord{Path: "third", Size: 5}), "full selection rejects a size equal to the floor")

	records := sel.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "first", records[0].Path)
	assert.Equal(t, "second", records[1].Path)
}

func TestSelectionAdmitEviction(t *testing.T) {
	sel, err := NewSelection(3, 0)
	require.NoError(t, err)

	for _, size := range []int64{10, 20, 30} {
		require.True(t, sel.Admit(FileRecord{Size: size}))
	}

	assert.False(t, sel.Admit(FileRecord{Size: 10}), "equal to the floor")
	assert.Equal(t, []int64{30, 20, 10}, sizesOf(sel.Records()))

	assert.True(t, sel.Admit(FileRecord{Size: 25}), "above the floor evicts the smallest")
	assert.Equal(t, []int64{30, 25, 20}, sizesOf(sel.Records()))

	assert.Equal(t, 3, sel.Len())
}

func TestSelectionEligible(t *testing.T) {
	sel, err := NewSelection(2, 10)
	require.NoError(t, err)

	assert.False(t, sel.Eligible(9), "below the minimum size")
	assert.True(t, sel.Eligible(10), "minimum size is inclusive")

	require.True(t, sel.Admit(FileRecord{Size: 40}))
	require.True(t, sel.Admit(FileRecord{Size: 30}))

	assert.False(t, sel.Eligible(30), "equal to the floor of a full selection")
	assert.True(t, sel.Eligible(31))
}

func TestSelectionMatchesFullSort(t *testing.T) {
	const limit = 8

	rng := rand.New(rand.NewSource(1))

	sel, err := NewSelection(limit, 0)
	require.NoError(t, err)

	all := make([]int64, 0, 500)

	for i := 0; i < 500; i++ {
		size := rng.Int63n(1 << 20)
		all = append(all, size)
		sel.Admit(FileRecord{Size: size})
	}

	sort.Slice(all, func(i, j int) bool { return all[i] > all[j] })

	assert.Equal(t, all[:limit], sizesOf(sel.Records()))
}
