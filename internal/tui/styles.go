package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Bold(true)
	decryptedBox  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	statusMessage = lipgloss.NewStyle().Italic(true)
)
