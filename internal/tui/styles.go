// Package tui provides the Bubble Tea frontend for ABC.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary = lipgloss.Color("#FF6B6B") // Red - title
	ColorAccent  = lipgloss.Color("#ffe66d") // Yellow - the letter
	ColorMuted   = lipgloss.Color("#666666") // Gray - help text
	ColorBg      = lipgloss.Color("#1a1a2e") // Dark background
	ColorBorder  = lipgloss.Color("#3d5a80") // Border color
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1).
			MarginBottom(1)

	LetterBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Foreground(ColorAccent).
			Background(lipgloss.Color("#000000")).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)
