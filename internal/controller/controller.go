// Package controller owns the top-level view mode and the result currently on
// screen. All mode transitions go through a Controller so exactly one of
// history, form and results is active at a time.
package controller

import (
	"context"
	"sync"

	"github.com/Iron-Ham/planner/internal/errors"
	"github.com/Iron-Ham/planner/internal/logging"
	"github.com/Iron-Ham/planner/internal/project"
)

// Mode is the top-level UI mode.
type Mode int

const (
	// ModeHistory lists previously generated projects.
	ModeHistory Mode = iota
	// ModeForm collects input for a new project.
	ModeForm
	// ModeResults shows one generated project.
	ModeResults
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeHistory:
		return "history"
	case ModeForm:
		return "form"
	case ModeResults:
		return "results"
	default:
		return "unknown"
	}
}

// Generator is the service call Submit depends on.
type Generator interface {
	GeneratePlan(ctx context.Context, in project.Input) (project.Result, error)
}

// State is a point-in-time copy of the controller's fields.
type State struct {
	Mode    Mode
	Result  *project.Result
	Loading bool
	// Error is the banner text, empty when there is none.
	Error string
}

// Controller is safe for concurrent use: the UI loop reads snapshots while a
// background command runs Submit.
type Controller struct {
	api     Generator
	baseURL string
	logger  *logging.Logger

	mu      sync.Mutex
	mode    Mode
	result  *project.Result
	loading bool
	errMsg  string
	// epoch changes on every transition and every new submission; a response
	// carrying an older epoch is discarded.
	epoch uint64
}

// New creates a Controller starting in history mode. baseURL is only used to
// word the "server unreachable" hint.
func New(api Generator, baseURL string, logger *logging.Logger) *Controller {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Controller{
		api:     api,
		baseURL: baseURL,
		logger:  logger.WithComponent("controller"),
		mode:    ModeHistory,
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{Mode: c.mode, Loading: c.loading, Error: c.errMsg}
	if c.result != nil {
		r := *c.result
		s.Result = &r
	}
	return s
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Loading reports whether a submission is in flight. Triggering controls
// should be disabled while it is true.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Submit validates and sends in. On success the result is stored and the mode
// becomes results. On failure the error is stored, the mode is unchanged, and
// the error is returned. A response that arrives after the user has navigated
// elsewhere is dropped and reported as nil.
func (c *Controller) Submit(ctx context.Context, in project.Input) error {
	epoch, prepared, err := c.beginSubmit(in)
	if err != nil {
		return err
	}

	result, err := c.api.GeneratePlan(ctx, prepared)
	return c.finishSubmit(epoch, result, err)
}

func (c *Controller) beginSubmit(in project.Input) (uint64, project.Input, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loading {
		return 0, project.Input{}, errors.ErrOperationInFlight
	}

	c.errMsg = ""
	if err := in.Validate(); err != nil {
		c.errMsg = errors.UserMessage(err, c.baseURL)
		c.logger.Debug("submission rejected", "error", err.Error())
		return 0, project.Input{}, err
	}

	c.epoch++
	c.loading = true
	c.logger.Info("submitting project", "project_type", in.ProjectType, "industry", in.Industry)
	return c.epoch, in.Pruned(), nil
}

func (c *Controller) finishSubmit(epoch uint64, result project.Result, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch {
		c.logger.Debug("discarding stale submission response", "epoch", epoch, "current_epoch", c.epoch)
		return nil
	}

	c.loading = false
	if err != nil {
		c.errMsg = errors.UserMessage(err, c.baseURL)
		c.logger.Error("error generating project plan", "error", err.Error())
		return err
	}

	c.result = &result
	c.transition(ModeResults)
	c.logger.Info("project plan generated", "project_id", result.ID)
	return nil
}

// StartNewProject clears the result and error and shows the form.
func (c *Controller) StartNewProject() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.result = nil
	c.errMsg = ""
	c.loading = false
	c.epoch++
	c.transition(ModeForm)
}

// ViewHistory clears the result and error and shows the history list.
func (c *Controller) ViewHistory() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.result = nil
	c.errMsg = ""
	c.loading = false
	c.epoch++
	c.transition(ModeHistory)
}

// OpenProject shows a result the caller already fetched.
func (c *Controller) OpenProject(result project.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := result
	c.result = &r
	c.errMsg = ""
	c.loading = false
	c.epoch++
	c.transition(ModeResults)
}

// transition sets the mode. The caller must hold the mutex.
func (c *Controller) transition(to Mode) {
	if c.mode != to {
		c.logger.Debug("view mode changed", "from", c.mode.String(), "to", to.String())
	}
	c.mode = to
}
