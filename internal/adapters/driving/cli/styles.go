package cli

import "github.com/charmbracelet/lipgloss"

// Output styles shared by the commands.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#06B6D4"))

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A6E3A1"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9E2AF"))
)
