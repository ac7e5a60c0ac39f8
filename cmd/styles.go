package cmd

import "github.com/charmbracelet/lipgloss"

// Shared palette for CLI output, tuned for dark terminal backgrounds.
const (
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorCmd     = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
)

var (
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	cmdStyle     = lipgloss.NewStyle().Foreground(colorCmd)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)
