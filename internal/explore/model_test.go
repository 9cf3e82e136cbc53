package explore

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/topsize/internal/topsize"
)

func testResult(n int) *topsize.Result {
	result := &topsize.Result{
		Root: "testdata",
		Stats: topsize.Stats{
			FileCount: int64(n),
			DirCount:  1,
			Elapsed:   125 * time.Millisecond,
		},
		TopN: n,
	}

	for i := range n {
		result.Top = append(result.Top, topsize.FileRecord{
			Path:     "testdata/file" + string(rune('a'+i)),
			Size:     int64((n - i) * 100),
			Modified: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		})
	}

	return result
}

func keyPress(key string) tea.KeyMsg {
	switch key {
	case "ctrl+f":
		return tea.KeyMsg{Type: tea.KeyCtrlF}
	case "ctrl+b":
		return tea.KeyMsg{Type: tea.KeyCtrlB}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

// step feeds one message through Update and unwraps the concrete model.
func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	updated, cmd := m.Update(msg)

	next, ok := updated.(Model)
	require.True(t, ok, "Update must return the explore model")

	return next, cmd
}

func TestModelCursorMovement(t *testing.T) {
	m := New(testResult(5), Options{})
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, 0, m.cursor)

	m, _ = step(t, m, keyPress("j"))
	m, _ = step(t, m, keyPress("j"))
	assert.Equal(t, 2, m.cursor)

	m, _ = step(t, m, keyPress("k"))
	assert.Equal(t, 1, m.cursor)

	m, _ = step(t, m, keyPress("G"))
	assert.Equal(t, 4, m.cursor)

	// End of the list: down is a no-op.
	m, _ = step(t, m, keyPress("j"))
	assert.Equal(t, 4, m.cursor)

	m, _ = step(t, m, keyPress("g"))
	assert.Equal(t, 0, m.cursor)

	m, _ = step(t, m, keyPress("k"))
	assert.Equal(t, 0, m.cursor)
}

func TestModelScrolling(t *testing.T) {
	m := New(testResult(50), Options{})

	// Small window: 10 lines leave 6 rows for records.
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 10})

	m, _ = step(t, m, keyPress("G"))
	assert.Equal(t, 49, m.cursor)
	assert.Equal(t, 49-m.visibleRows()+1, m.offset, "cursor must stay in view")

	m, _ = step(t, m, keyPress("ctrl+b"))
	assert.Equal(t, 49-m.visibleRows(), m.cursor)

	m, _ = step(t, m, keyPress("g"))
	assert.Equal(t, 0, m.offset)

	m, _ = step(t, m, keyPress("ctrl+f"))
	assert.Equal(t, m.visibleRows(), m.cursor)
}

func TestModelQuit(t *testing.T) {
	for _, quitKey := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := New(testResult(1), Options{})

		_, cmd := step(t, m, quitKey)
		require.NotNil(t, cmd, "key %q must quit", quitKey.String())
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestModelView(t *testing.T) {
	result := testResult(3)
	result.Top[0].Created = time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)

	m := New(result, Options{SizeLabel: "Size", Index: true})
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 24})

	view := m.View()

	assert.Contains(t, view, "testdata/filea")
	assert.Contains(t, view, "2023-01-15")
	assert.Contains(t, view, "2024-06-01")
	// Accessed is unknown for every record.
	assert.Contains(t, view, "-")
	assert.Contains(t, view, "3 files, 1 dirs")
	// Index column counts from the largest file.
	assert.Contains(t, view, " 1 ")
}

func TestModelViewBeforeSize(t *testing.T) {
	m := New(testResult(1), Options{})

	assert.Empty(t, m.View(), "no window size means nothing to draw")
}

func TestModelDefaultFormatter(t *testing.T) {
	m := New(testResult(1), Options{})
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.True(t, strings.Contains(m.View(), "100"), "default formatter prints plain digits")
}
