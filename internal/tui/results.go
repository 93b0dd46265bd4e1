package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/planner/internal/project"
	"github.com/Iron-Ham/planner/internal/render"
	"github.com/Iron-Ham/planner/internal/tui/styles"
	"github.com/Iron-Ham/planner/internal/tui/view"
)

// resultsModel holds the results screen's tab and scroll position.
type resultsModel struct {
	tab      view.Tab
	viewport viewport.Model
	notice   string
}

func newResultsModel() resultsModel {
	return resultsModel{viewport: viewport.New(80, 20)}
}

// resize fits the viewport to the terminal, leaving room for the chrome.
func (r *resultsModel) resize(width, height int) {
	r.viewport.Width = max(20, width-2)
	r.viewport.Height = max(5, height-12)
}

// show switches to tab and loads its content from result.
func (r *resultsModel) show(tab view.Tab, result *project.Result) {
	r.tab = tab
	r.viewport.SetContent(tabContent(tab, result, r.viewport.Width))
	r.viewport.GotoTop()
}

// tabContent renders the body of tab. The HTML tab shows the raw document;
// the others go through the markup renderer.
func tabContent(tab view.Tab, result *project.Result, width int) string {
	if result == nil {
		return ""
	}
	switch tab {
	case view.TabSchedule:
		return view.RenderDocument(render.Render(result.Schedule), width)
	case view.TabReview:
		return view.RenderDocument(render.Render(result.Review), width)
	case view.TabHTML:
		return styles.Active().Code.Render(lipgloss.NewStyle().Width(width).Render(result.HTMLOutput))
	default:
		return view.RenderDocument(render.Render(result.Plan), width)
	}
}
