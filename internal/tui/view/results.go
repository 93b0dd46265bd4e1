package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/planner/internal/tui/styles"
)

// Tab identifies a results tab.
type Tab int

const (
	TabPlan Tab = iota
	TabSchedule
	TabReview
	TabHTML
)

// Tabs lists the results tabs in display order.
var Tabs = []Tab{TabPlan, TabSchedule, TabReview, TabHTML}

// Label returns the tab caption.
func (t Tab) Label() string {
	switch t {
	case TabPlan:
		return "Project Plan"
	case TabSchedule:
		return "Schedule"
	case TabReview:
		return "Review"
	case TabHTML:
		return "HTML Export"
	default:
		return "Unknown"
	}
}

// HTMLExportNote introduces the raw document on the HTML tab.
const HTMLExportNote = "This is the complete HTML document generated for your project. You can preview it or download it for sharing."

// ResultsState holds what the results screen needs to render.
type ResultsState struct {
	Active Tab
	// Body is the rendered viewport for the active tab.
	Body string
	// ScrollPercent is the viewport position, 0 to 1.
	ScrollPercent float64
	// Notice is a transient status line such as "Saved project-plan.html".
	Notice string
	Width  int
}

// ResultsView renders the generated plan screen.
type ResultsView struct{}

// Render returns the results screen.
func (ResultsView) Render(s ResultsState) string {
	st := styles.Active()
	var b strings.Builder

	b.WriteString(st.Title.Render("Project Plan Generated"))
	b.WriteString("\n")
	b.WriteString(RenderTabs(s.Active))
	b.WriteString("\n\n")

	if s.Active == TabHTML {
		b.WriteString(st.Muted.Render(HTMLExportNote))
		b.WriteString("\n\n")
	}
	b.WriteString(s.Body)
	b.WriteString("\n")
	b.WriteString(st.Muted.Render(fmt.Sprintf("%3.f%%", s.ScrollPercent*100)))
	b.WriteString("\n")

	if s.Notice != "" {
		b.WriteString(st.SuccessMsg.Render(s.Notice))
		b.WriteString("\n")
	}

	pairs := []string{
		"tab/1-4", "switch tab",
		"↑/↓", "scroll",
	}
	if s.Active == TabHTML {
		pairs = append(pairs, "d", "download", "p", "preview")
	}
	pairs = append(pairs, "n", "new project", "h", "history", "q", "quit")
	b.WriteString(HelpBar(pairs...))
	return b.String()
}

// RenderTabs draws the tab strip with active highlighted.
func RenderTabs(active Tab) string {
	st := styles.Active()
	rendered := make([]string, 0, len(Tabs))
	for _, t := range Tabs {
		if t == active {
			rendered = append(rendered, st.TabActive.Render(t.Label()))
		} else {
			rendered = append(rendered, st.TabInactive.Render(t.Label()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
