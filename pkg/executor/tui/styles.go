package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette
// This is the single source of truth for all TUI colors.
var (
	paleViolet  = lipgloss.Color("#C3B1E1") // soft violet - primary accent
	skyBlue     = lipgloss.Color("#A7C7E7") // pastel blue - secondary
	mintGreen   = lipgloss.Color("#A8E6CF") // soft mint green - success states
	mutedGray   = lipgloss.Color("#6B7280") // muted gray - secondary text
	brightWhite = lipgloss.Color("#F9FAFB") // bright white - primary text
)

// Common Styles
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(paleViolet).
			Bold(true)

	tipsStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	userStyle = lipgloss.NewStyle().
			Foreground(skyBlue).
			Bold(true)

	assistantStyle = lipgloss.NewStyle().
			Foreground(brightWhite)

	thinkingStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Italic(true)

	effectStyle = lipgloss.NewStyle().
			Foreground(mintGreen)

	errorStyle = lipgloss.NewStyle().
			Foreground(paleViolet)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(paleViolet).
			Padding(0, 1)
)
