package tui

import "github.com/charmbracelet/lipgloss"

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#928374")).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#8ec07c")).
				Padding(1, 2)

	timerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ebdbb2")).
			Bold(true).
			Align(lipgloss.Center)

	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c"))
	pausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#fabd2f"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#fb4934"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#fe8019")).Bold(true)
)
