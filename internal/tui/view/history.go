package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/planner/internal/project"
	"github.com/Iron-Ham/planner/internal/tui/styles"
	"github.com/Iron-Ham/planner/internal/util"
)

// Empty-state messages for the history list.
const (
	NoProjectsMessage = "No projects found. Create your first project!"
	NoMatchesMessage  = "No projects found matching your search."
	LoadingMessage    = "Loading projects..."
)

// HistoryState holds what the history screen needs to render.
type HistoryState struct {
	Summaries []project.Summary
	Cursor    int
	// FilterInput is the rendered filter text input.
	FilterInput string
	// FilterQuery is the raw filter text, used to pick the empty-state message.
	FilterQuery string
	Loading     bool
	// Loaded is false until the first successful fetch.
	Loaded  bool
	Spinner string
	// Confirming holds the summary awaiting delete confirmation, if any.
	Confirming *project.Summary
	Width      int
	Height     int
}

// HistoryView renders the project history screen.
type HistoryView struct{}

// cardLines is the number of terminal lines one card occupies.
const cardLines = 6

// Render returns the history screen.
func (HistoryView) Render(s HistoryState) string {
	st := styles.Active()
	var b strings.Builder

	b.WriteString(st.Primary.Bold(true).Render("Project History"))
	b.WriteString("\n")
	b.WriteString(st.InputBoxActive.Render(s.FilterInput))
	b.WriteString("\n")

	switch {
	case s.Loading && !s.Loaded:
		b.WriteString("\n" + s.Spinner + " " + st.Muted.Render(LoadingMessage) + "\n")
	case len(s.Summaries) == 0:
		msg := NoProjectsMessage
		if strings.TrimSpace(s.FilterQuery) != "" {
			msg = NoMatchesMessage
		}
		b.WriteString("\n" + st.Muted.Render(msg) + "\n")
	default:
		if s.Loading {
			b.WriteString(s.Spinner + " " + st.Muted.Render("Refreshing...") + "\n")
		}
		b.WriteString(renderCards(s))
	}

	if s.Confirming != nil {
		b.WriteString("\n")
		b.WriteString(ConfirmDelete(*s.Confirming))
		b.WriteString("\n")
		b.WriteString(HelpBar("y", "delete", "n/esc", "cancel"))
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(HelpBar(
		"↑/↓", "select",
		"enter", "view",
		"d", "delete",
		"/", "filter",
		"n", "new project",
		"r", "refresh",
		"q", "quit",
	))
	return b.String()
}

// renderCards shows as many cards as fit, keeping the cursor visible.
func renderCards(s HistoryState) string {
	st := styles.Active()

	visible := len(s.Summaries)
	if s.Height > 0 {
		visible = max(1, (s.Height-12)/cardLines)
	}
	start := 0
	if s.Cursor >= visible {
		start = s.Cursor - visible + 1
	}
	end := min(len(s.Summaries), start+visible)

	cardWidth := 60
	if s.Width > 8 {
		cardWidth = s.Width - 4
	}
	inner := max(10, cardWidth-4)

	var b strings.Builder
	for i := start; i < end; i++ {
		p := s.Summaries[i]
		title := util.TruncateANSI(util.SingleLine(p.ProjectType), inner)
		body := strings.Join([]string{
			st.CardTitle.Render(title),
			st.CardMeta.Render(util.TruncateANSI(util.SingleLine(p.Industry), inner)),
			st.Text.Render(util.ClampLines(p.Objectives, inner, 2)),
			st.CardMeta.Render("Created: " + p.FormatCreated()),
		}, "\n")

		card := st.Card
		if i == s.Cursor {
			card = st.CardSelected
		}
		b.WriteString(card.Width(cardWidth).Render(body))
		b.WriteString("\n")
	}

	if end-start < len(s.Summaries) {
		b.WriteString(st.Muted.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(s.Summaries))))
		b.WriteString("\n")
	}
	return b.String()
}

// ConfirmDelete renders the delete confirmation prompt for p.
func ConfirmDelete(p project.Summary) string {
	st := styles.Active()
	name := util.SingleLine(p.ProjectType)
	if name == "" {
		name = p.ID
	}
	return st.Modal.Render(
		st.Warning.Bold(true).Render("Are you sure you want to delete this project?") + "\n\n" +
			st.Text.Render(name) + "\n" +
			st.Muted.Render("This cannot be undone."),
	)
}
