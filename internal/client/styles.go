package client

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true)
	decryptedBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)
