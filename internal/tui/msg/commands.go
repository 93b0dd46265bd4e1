package msg

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/planner/internal/catalog"
	"github.com/Iron-Ham/planner/internal/controller"
	"github.com/Iron-Ham/planner/internal/logging"
	"github.com/Iron-Ham/planner/internal/project"
	"github.com/Iron-Ham/planner/internal/render"
)

// locator is implemented by sinks that know where a saved file ends up.
type locator interface {
	Path(name string) string
}

// RefreshProjects re-fetches the project list.
func RefreshProjects(ctx context.Context, c *catalog.Catalog) tea.Cmd {
	return func() tea.Msg {
		return ProjectsLoadedMsg{Err: c.Refresh(ctx)}
	}
}

// OpenProject fetches the full result for id. seq is passed back unchanged so
// the receiver can tell which request the response answers.
func OpenProject(ctx context.Context, c *catalog.Catalog, id string, seq uint64) tea.Cmd {
	return func() tea.Msg {
		result, err := c.FetchDetail(ctx, id)
		return ProjectOpenedMsg{ID: id, Seq: seq, Result: result, Err: err}
	}
}

// GeneratePlan submits in through the controller.
func GeneratePlan(ctx context.Context, ctrl *controller.Controller, in project.Input) tea.Cmd {
	return func() tea.Msg {
		return PlanGeneratedMsg{Err: ctrl.Submit(ctx, in)}
	}
}

// DeleteProject removes id. The caller must already have shown and accepted
// the confirmation prompt.
func DeleteProject(ctx context.Context, c *catalog.Catalog, id string) tea.Cmd {
	return func() tea.Msg {
		return ProjectDeletedMsg{ID: id, Err: c.Remove(ctx, id, catalog.Approved)}
	}
}

// Download saves html through sink under the standard export name.
func Download(sink render.ArtifactSink, html string) tea.Cmd {
	return func() tea.Msg {
		a, err := render.Download(sink, html)
		out := DownloadedMsg{Name: a.Name, Path: a.Name, Err: err}
		if l, ok := sink.(locator); ok {
			out.Path = l.Path(a.Name)
		}
		return out
	}
}

// Preview opens html through sink. Failures are logged, never reported.
func Preview(sink render.ArtifactSink, html string, logger *logging.Logger) tea.Cmd {
	return func() tea.Msg {
		render.OpenPreview(sink, html, logger)
		return nil
	}
}
