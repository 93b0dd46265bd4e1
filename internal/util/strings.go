// Package util provides shared text helpers for terminal rendering.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TruncateString truncates a string to maxLen runes, adding "..." if truncated.
// It does not account for ANSI escape codes or wide characters; use
// TruncateANSI for styled terminal output.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 3 {
		return "..."
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// TruncateANSI truncates a string to maxWidth visual columns, adding "..." if
// truncated. Escape sequences and wide characters are measured correctly.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "...")
}

// SingleLine collapses every run of whitespace, newlines included, into one
// space and trims the ends.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ClampLines word-wraps s to width columns and keeps at most maxLines lines.
// When lines are dropped the last kept line ends in "...".
func ClampLines(s string, width, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	if width <= 3 {
		return "..."
	}

	wrapped := ansi.Wordwrap(SingleLine(s), width, "")
	lines := strings.Split(wrapped, "\n")
	if len(lines) <= maxLines {
		return wrapped
	}

	lines = lines[:maxLines]
	last := lines[maxLines-1]
	if lipgloss.Width(last)+3 > width {
		last = ansi.Truncate(last, width-3, "")
	}
	lines[maxLines-1] = strings.TrimRight(last, " ") + "..."
	return strings.Join(lines, "\n")
}
