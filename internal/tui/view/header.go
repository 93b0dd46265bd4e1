package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/planner/internal/controller"
	"github.com/Iron-Ham/planner/internal/tui/styles"
)

// AppTitle is shown at the top of every screen except results.
const AppTitle = "AI Project Planner"

// AppTagline is the line under the title.
const AppTagline = "Generate project plans, schedules and reviews with an AI planning service"

// HeaderView renders the navigation header.
type HeaderView struct{}

// Render returns the header for mode. The header is hidden in results mode.
func (HeaderView) Render(mode controller.Mode, width int) string {
	if mode == controller.ModeResults {
		return ""
	}
	st := styles.Active()

	nav := func(label string, active bool) string {
		if active {
			return st.NavActive.Render(label)
		}
		return st.NavInactive.Render(label)
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top,
		nav("Project History", mode == controller.ModeHistory),
		" ",
		nav("Create New Project", mode == controller.ModeForm),
	)

	var b strings.Builder
	b.WriteString(st.Title.Render(AppTitle))
	b.WriteString("\n")
	if width == 0 || width >= lipgloss.Width(AppTagline) {
		b.WriteString(st.Subtitle.Render(AppTagline))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(tabs)
	b.WriteString("\n")
	return b.String()
}

// ErrorBanner renders msg in a bordered box, or "" when msg is empty.
func ErrorBanner(msg string, width int) string {
	if msg == "" {
		return ""
	}
	st := styles.Active()
	box := st.ErrorBanner
	if width > 4 {
		box = box.Width(width - 4)
	}
	return box.Render(st.Error.Bold(true).Render("Error") + "\n" + msg)
}

// HelpBar renders key/description pairs: HelpBar("q", "quit", "n", "new").
func HelpBar(pairs ...string) string {
	st := styles.Active()
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, st.HelpKey.Render(pairs[i])+" "+pairs[i+1])
	}
	return st.HelpBar.Render(strings.Join(parts, "  "))
}
