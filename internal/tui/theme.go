package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, readable, built for long-form text
var (
	primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	success = lipgloss.Color("#22C55E") // Green
	errRed  = lipgloss.Color("#F43F5E") // Rose
	text    = lipgloss.Color("#F8FAFC") // White
	textDim = lipgloss.Color("#94A3B8") // Slate
	bgCard  = lipgloss.Color("#1E293B") // Dark Slate
)

// Typography
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	bodyStyle = lipgloss.NewStyle().
			Foreground(text)

	hintStyle = lipgloss.NewStyle().
			Foreground(textDim).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errRed)

	successStyle = lipgloss.NewStyle().
			Foreground(success)

	headerStyle = lipgloss.NewStyle().
			Background(bgCard).
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Background(bgCard).
			Padding(0, 2)
)
