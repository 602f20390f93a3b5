package tui

import "charm.land/lipgloss/v2"

// Color palette — calm, readable, suited to long study sessions.
var (
	colorPrimary = lipgloss.Color("#6366F1") // Indigo
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorError   = lipgloss.Color("#F43F5E") // Rose
	colorText    = lipgloss.Color("#F8FAFC") // White
	colorDim     = lipgloss.Color("#94A3B8") // Slate
	colorBorder  = lipgloss.Color("#334155") // Slate
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleTerm = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Align(lipgloss.Center)

	styleHint = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	styleDim = lipgloss.NewStyle().
			Foreground(colorDim)

	styleCorrect = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	styleWrong = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 3)
)
