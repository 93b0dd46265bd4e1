package view

import "github.com/charmbracelet/lipgloss"

// wrap returns style constrained to width when width is positive.
func wrap(style lipgloss.Style, width int) lipgloss.Style {
	if width > 0 {
		return style.Width(width)
	}
	return style
}
