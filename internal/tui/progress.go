package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// progressBar renders a horizontal bar filled to percent of width cells.
func progressBar(percent float64, width int) string {
	if width < 4 {
		width = 4
	}

	filled := int(float64(width) * percent)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	filledStr := lipgloss.NewStyle().
		Background(colorPrimary).
		Render(strings.Repeat(" ", filled))
	emptyStr := lipgloss.NewStyle().
		Background(colorBorder).
		Render(strings.Repeat(" ", width-filled))

	return filledStr + emptyStr
}
