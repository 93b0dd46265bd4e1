// Package catalog maintains the list of previously generated projects: it
// fetches summaries from the planning service, filters them locally, loads
// full results on demand and deletes projects after explicit confirmation.
package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/Iron-Ham/planner/internal/errors"
	"github.com/Iron-Ham/planner/internal/logging"
	"github.com/Iron-Ham/planner/internal/project"
)

// Service is the subset of the API client the catalog uses.
type Service interface {
	ListProjects(ctx context.Context) ([]project.Summary, error)
	GetProject(ctx context.Context, id string) (project.Result, error)
	DeleteProject(ctx context.Context, id string) error
}

// Confirmer asks the user to approve an irreversible action. Implementations
// may block until the user answers or ctx is done.
type Confirmer interface {
	Confirm(ctx context.Context, summary project.Summary) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, summary project.Summary) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(ctx context.Context, summary project.Summary) (bool, error) {
	return f(ctx, summary)
}

// Approved is a Confirmer for callers that already obtained consent
// (a TUI modal or a --yes flag).
var Approved Confirmer = ConfirmFunc(func(context.Context, project.Summary) (bool, error) {
	return true, nil
})

// State is a point-in-time copy of the catalog for rendering.
type State struct {
	// Visible holds the summaries matching Filter, in service order.
	Visible []project.Summary
	// Total is the number of summaries before filtering.
	Total   int
	Filter  string
	Loading bool
	Error   string
	// Loaded reports whether at least one refresh has succeeded.
	Loaded bool
}

// Catalog owns the summary list and its loading/error state.
type Catalog struct {
	svc     Service
	baseURL string
	logger  *logging.Logger

	mu        sync.Mutex
	summaries []project.Summary
	filter    string
	loading   bool
	loaded    bool
	errMsg    string
	// generation increments on every Refresh so an older response never
	// replaces a newer one.
	generation uint64
}

// New creates an empty catalog. baseURL is only used for error hints.
func New(svc Service, baseURL string, logger *logging.Logger) *Catalog {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Catalog{
		svc:       svc,
		baseURL:   baseURL,
		logger:    logger.WithComponent("catalog"),
		summaries: []project.Summary{},
	}
}

// Refresh replaces the summary list with the service's current listing.
// On failure the previous list is kept and the error is recorded.
func (c *Catalog) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	summaries, err := c.svc.ListProjects(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Debug("discarding superseded refresh", "generation", gen)
		return nil
	}
	c.loading = false

	if err != nil {
		c.errMsg = errors.UserMessage(err, c.baseURL)
		c.logger.Warn("refresh failed", "error", err.Error(), "kept", len(c.summaries))
		return errors.Wrap(err, "listing projects")
	}

	c.summaries = append([]project.Summary(nil), summaries...)
	c.loaded = true
	c.logger.Debug("refreshed", "count", len(summaries))
	return nil
}

// SetFilter stores query and returns the matching summaries. A query that is
// blank after trimming matches everything.
func (c *Catalog) SetFilter(query string) []project.Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filter = query
	return filter(c.summaries, query)
}

// Visible returns the summaries matching the current filter.
func (c *Catalog) Visible() []project.Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return filter(c.summaries, c.filter)
}

// Snapshot returns a copy of the catalog state.
func (c *Catalog) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		Visible: filter(c.summaries, c.filter),
		Total:   len(c.summaries),
		Filter:  c.filter,
		Loading: c.loading,
		Error:   c.errMsg,
		Loaded:  c.loaded,
	}
}

// Lookup returns the stored summary with the given id.
func (c *Catalog) Lookup(id string) (project.Summary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range c.summaries {
		if s.ID == id {
			return s, true
		}
	}
	return project.Summary{}, false
}

// ClearError drops the last error message.
func (c *Catalog) ClearError() {
	c.mu.Lock()
	c.errMsg = ""
	c.mu.Unlock()
}

// Reset clears the view state (filter and error) when the history view is
// left. The summary list is kept until the next Refresh replaces it.
func (c *Catalog) Reset() {
	c.mu.Lock()
	c.filter = ""
	c.errMsg = ""
	c.mu.Unlock()
}

// FetchDetail loads the full result for id. The result is returned, not
// stored; a failure is recorded without touching the summary list.
func (c *Catalog) FetchDetail(ctx context.Context, id string) (project.Result, error) {
	c.mu.Lock()
	c.errMsg = ""
	c.mu.Unlock()

	result, err := c.svc.GetProject(ctx, id)
	if err != nil {
		c.setError(err)
		c.logger.WithProjectID(id).Warn("fetch detail failed", "error", err.Error())
		return project.Result{}, errors.Wrapf(err, "fetching project %s", id)
	}
	if result.ID == "" {
		result.ID = id
	}
	return result, nil
}

// Remove deletes the project with the given id once confirmer approves.
// A nil confirmer, a declined prompt or a prompt error deletes nothing. After
// a successful delete the list is re-fetched; a failing re-fetch is recorded
// in the catalog state but does not fail Remove.
func (c *Catalog) Remove(ctx context.Context, id string, confirmer Confirmer) error {
	if confirmer == nil {
		return errors.ErrNotConfirmed
	}

	summary, ok := c.Lookup(id)
	if !ok {
		summary = project.Summary{ID: id}
	}

	approved, err := confirmer.Confirm(ctx, summary)
	if err != nil {
		return errors.Wrap(err, "confirming delete")
	}
	if !approved {
		c.logger.WithProjectID(id).Debug("delete declined")
		return errors.ErrNotConfirmed
	}

	c.mu.Lock()
	c.errMsg = ""
	c.mu.Unlock()

	if err := c.svc.DeleteProject(ctx, id); err != nil {
		c.setError(err)
		c.logger.WithProjectID(id).Warn("delete failed", "error", err.Error())
		return errors.Wrapf(err, "deleting project %s", id)
	}
	c.logger.WithProjectID(id).Info("project deleted")

	if err := c.Refresh(ctx); err != nil {
		c.logger.WithProjectID(id).Warn("refresh after delete failed, list is stale", "error", err.Error())
	}
	return nil
}

func (c *Catalog) setError(err error) {
	c.mu.Lock()
	c.errMsg = errors.UserMessage(err, c.baseURL)
	c.mu.Unlock()
}

// filter returns a fresh slice of the summaries whose type, objectives or
// industry contain query, ignoring case.
func filter(summaries []project.Summary, query string) []project.Summary {
	out := make([]project.Summary, 0, len(summaries))
	if strings.TrimSpace(query) == "" {
		return append(out, summaries...)
	}

	q := strings.ToLower(query)
	for _, s := range summaries {
		if strings.Contains(strings.ToLower(s.ProjectType), q) ||
			strings.Contains(strings.ToLower(s.Objectives), q) ||
			strings.Contains(strings.ToLower(s.Industry), q) {
			out = append(out, s)
		}
	}
	return out
}
