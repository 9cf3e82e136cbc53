package explore

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent    = lipgloss.Color("#11C3DB") // cyan
	colorMuted     = lipgloss.Color("8")       // gray
	colorHighlight = lipgloss.Color("15")      // white
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	Background(colorAccent).
	Padding(0, 1)

var (
	headerRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("17")).
				Foreground(colorHighlight)
)

var statusBarStyle = lipgloss.NewStyle().
	Foreground(colorMuted)
