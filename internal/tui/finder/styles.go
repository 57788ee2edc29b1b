package finder

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			Padding(0, 1)

	cursorRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true)

	matchedRuneStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0AF")).
				Underline(true)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	sentinelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Italic(true)

	createStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))
)
