// Package explore implements the interactive results browser opened by
// the --interactive flag. It is a read-only view over a finished scan:
// nothing in here touches the filesystem or mutates the result.
package explore

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idelchi/topsize/internal/topsize"
)

const (
	dateColWidth  = 10
	sizeColWidth  = 14
	indexColWidth = 4
)

// Options controls how the browser renders records. The size column
// reuses the formatter of the non-interactive table so both views show
// identical numbers.
type Options struct {
	// FormatSize renders a byte count. Nil falls back to plain digits.
	FormatSize func(int64) string
	// SizeLabel is the size column heading.
	SizeLabel string
	// Index numbers the rows starting from the largest file.
	Index bool
}

// Model is the root Bubble Tea model for the results browser.
type Model struct {
	result *topsize.Result
	opts   Options
	keys   keyMap

	cursor int
	offset int
	width  int
	height int
}

// New creates a browser over a finished scan result.
func New(result *topsize.Result, opts Options) Model {
	if opts.FormatSize == nil {
		opts.FormatSize = func(size int64) string {
			return strconv.FormatInt(size, 10)
		}
	}

	if opts.SizeLabel == "" {
		opts.SizeLabel = "Size"
	}

	return Model{
		result: result,
		opts:   opts,
		keys:   defaultKeys,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("topsize")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureVisible()

		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.ensureVisible()
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.result.Top)-1 {
				m.cursor++
				m.ensureVisible()
			}
		case key.Matches(msg, m.keys.Home):
			m.cursor = 0
			m.offset = 0
		case key.Matches(msg, m.keys.End):
			m.cursor = max(0, len(m.result.Top)-1)
			m.ensureVisible()
		case key.Matches(msg, m.keys.PageDown):
			m.cursor = min(m.cursor+m.visibleRows(), max(0, len(m.result.Top)-1))
			m.ensureVisible()
		case key.Matches(msg, m.keys.PageUp):
			m.cursor = max(m.cursor-m.visibleRows(), 0)
			m.ensureVisible()
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf(" %s — %d largest files ", m.result.Root, len(m.result.Top))
	b.WriteString(titleStyle.Render(truncate(title, m.width)))
	b.WriteString("\n")

	pathWidth := m.pathWidth()

	header := m.formatRow(headerCells(m.opts.SizeLabel), "#") + " Path"
	b.WriteString(headerRowStyle.Render(truncate(header, m.width)))
	b.WriteString("\n")

	b.WriteString(strings.Repeat("─", m.width))
	b.WriteString("\n")

	visibleEnd := min(m.offset+m.visibleRows(), len(m.result.Top))
	for i := m.offset; i < visibleEnd; i++ {
		rec := m.result.Top[i]

		cells := [4]string{
			m.opts.FormatSize(rec.Size),
			formatDate(rec.Created),
			formatDate(rec.Modified),
			formatDate(rec.Accessed),
		}

		line := m.formatRow(cells, strconv.Itoa(i+1)) + " " + truncate(rec.Path, pathWidth)
		line = truncate(line, m.width)

		if i == m.cursor {
			line = selectedRowStyle.Width(m.width).Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	// Pad so the footer stays pinned to the bottom row.
	for i := visibleEnd - m.offset; i < m.visibleRows(); i++ {
		b.WriteString("\n")
	}

	b.WriteString(statusBarStyle.Render(truncate(m.statusLine(), m.width)))

	return b.String()
}

// headerCells returns the fixed column headings, size label first.
func headerCells(sizeLabel string) [4]string {
	return [4]string{sizeLabel, "Created", "Modified", "Accessed"}
}

// formatRow lays out the fixed-width columns of one row; the caller
// appends the path, which gets whatever room is left.
func (m Model) formatRow(cells [4]string, index string) string {
	var b strings.Builder

	if m.opts.Index {
		fmt.Fprintf(&b, " %*s", indexColWidth, index)
	}

	fmt.Fprintf(&b, " %*s  %-*s %-*s %-*s",
		sizeColWidth, cells[0],
		dateColWidth, cells[1],
		dateColWidth, cells[2],
		dateColWidth, cells[3],
	)

	return b.String()
}

func (m Model) statusLine() string {
	stats := m.result.Stats

	return fmt.Sprintf(" %d/%d · scanned %d files, %d dirs, %d errors in %.3fs · q to quit",
		m.cursor+1, len(m.result.Top),
		stats.FileCount, stats.DirCount, stats.ErrorCount,
		stats.Elapsed.Seconds(),
	)
}

// pathWidth returns the room left for the path column.
func (m Model) pathWidth() int {
	fixed := 1 + sizeColWidth + 2 + 3*(dateColWidth+1)
	if m.opts.Index {
		fixed += 1 + indexColWidth
	}

	return max(10, m.width-fixed-1)
}

// visibleRows returns how many records fit between the chrome rows
// (title, header, separator, status bar).
func (m Model) visibleRows() int {
	return max(1, m.height-4)
}

// ensureVisible scrolls the viewport so the cursor stays on screen.
func (m *Model) ensureVisible() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}

	if m.cursor >= m.offset+m.visibleRows() {
		m.offset = m.cursor - m.visibleRows() + 1
	}
}

// formatDate renders a timestamp as YYYY-MM-DD, or "-" when unknown.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Format("2006-01-02")
}

// truncate hard-cuts a string to at most max cells so each record stays
// on one terminal row.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max])
}
