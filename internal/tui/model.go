// Package tui implements the interactive terminal client: a history list of
// generated projects, an input form for new ones, and a tabbed results view.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/planner/internal/catalog"
	"github.com/Iron-Ham/planner/internal/controller"
	"github.com/Iron-Ham/planner/internal/errors"
	"github.com/Iron-Ham/planner/internal/logging"
	"github.com/Iron-Ham/planner/internal/render"
	"github.com/Iron-Ham/planner/internal/tui/msg"
	"github.com/Iron-Ham/planner/internal/tui/styles"
	"github.com/Iron-Ham/planner/internal/tui/view"
)

// Model is the Bubble Tea model for the planner client. The controller owns
// the view mode and displayed result; the catalog owns the project list.
type Model struct {
	ctx     context.Context
	ctrl    *controller.Controller
	catalog *catalog.Catalog
	sink    render.ArtifactSink
	logger  *logging.Logger

	spinner spinner.Model
	form    formModel
	history historyModel
	results resultsModel

	// errMsg holds failures that belong to neither the controller nor the
	// catalog, such as a failed download.
	errMsg string

	width  int
	height int
}

// NewModel creates the root model.
func NewModel(ctx context.Context, ctrl *controller.Controller, cat *catalog.Catalog, sink render.ArtifactSink, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.NopLogger()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Active().Primary

	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		catalog: cat,
		sink:    sink,
		logger:  logger.WithComponent("tui"),
		spinner: sp,
		form:    newFormModel(),
		history: newHistoryModel(),
		results: newResultsModel(),
	}
}

// Init loads the project list.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		msg.RefreshProjects(m.ctx, m.catalog),
		m.spinner.Tick,
		textinput.Blink,
	)
}

// Update handles messages and returns the updated model.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.results.resize(message.Width, message.Height)
		if m.ctrl.Mode() == controller.ModeResults {
			m.showResults(m.results.tab)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(message)
		return m, cmd

	case msg.ProjectsLoadedMsg:
		m.history.clampCursor(len(m.catalog.Visible()))
		return m, nil

	case msg.ProjectOpenedMsg:
		// Only the latest selection made during this visit to history counts.
		if !m.history.finishOpen(message.ID, message.Seq) || m.ctrl.Mode() != controller.ModeHistory {
			m.logger.Debug("ignoring superseded project open", "project_id", message.ID, "seq", message.Seq)
			return m, nil
		}
		if message.Err != nil {
			return m, nil
		}
		m.leaveHistory()
		m.ctrl.OpenProject(message.Result)
		m.errMsg = ""
		m.results.notice = ""
		m.showResults(view.TabPlan)
		return m, nil

	case msg.PlanGeneratedMsg:
		if errors.Is(message.Err, errors.ErrOperationInFlight) {
			return m, nil
		}
		if message.Err == nil && m.ctrl.Mode() == controller.ModeResults {
			m.form = newFormModel()
			m.results.notice = ""
			m.showResults(view.TabPlan)
		}
		return m, nil

	case msg.ProjectDeletedMsg:
		m.history.clampCursor(len(m.catalog.Visible()))
		return m, nil

	case msg.DownloadedMsg:
		if message.Err != nil {
			m.errMsg = fmt.Sprintf("Download failed: %v", message.Err)
			m.results.notice = ""
			return m, nil
		}
		m.errMsg = ""
		m.results.notice = "Saved " + message.Path
		return m, nil

	case msg.ThemeChangedMsg:
		styles.SetActiveTheme(styles.ThemeName(message.Theme))
		m.spinner.Style = styles.Active().Primary
		if m.ctrl.Mode() == controller.ModeResults {
			offset := m.results.viewport.YOffset
			m.showResults(m.results.tab)
			m.results.viewport.SetYOffset(offset)
		}
		return m, nil

	case msg.ErrMsg:
		if message.Err != nil {
			m.errMsg = message.Err.Error()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeypress(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.ctrl.Mode() {
	case controller.ModeForm:
		return m.handleFormKey(key)
	case controller.ModeResults:
		return m.handleResultsKey(key)
	default:
		return m.handleHistoryKey(key)
	}
}

func (m Model) handleHistoryKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.history.confirming != nil {
		switch key.String() {
		case "y", "Y":
			id := m.history.confirming.ID
			m.history.confirming = nil
			return m, msg.DeleteProject(m.ctx, m.catalog, id)
		case "n", "N", "esc":
			m.history.confirming = nil
		}
		return m, nil
	}

	if m.history.filtering {
		switch key.String() {
		case "esc", "enter":
			m.history.filtering = false
			m.history.filter.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.history.filter, cmd = m.history.filter.Update(key)
		visible := m.catalog.SetFilter(m.history.filter.Value())
		m.history.clampCursor(len(visible))
		return m, cmd
	}

	visible := m.catalog.Visible()
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.history.cursor > 0 {
			m.history.cursor--
		}
	case "down", "j":
		if m.history.cursor < len(visible)-1 {
			m.history.cursor++
		}
	case "/":
		m.history.filtering = true
		cmd := m.history.filter.Focus()
		return m, cmd
	case "esc":
		if m.history.filter.Value() != "" {
			m.history.filter.SetValue("")
			m.catalog.SetFilter("")
			m.history.cursor = 0
		}
	case "enter":
		if p, ok := m.history.selected(visible); ok {
			seq := m.history.beginOpen(p.ID)
			return m, msg.OpenProject(m.ctx, m.catalog, p.ID, seq)
		}
	case "d":
		if p, ok := m.history.selected(visible); ok {
			m.history.confirming = &p
		}
	case "r":
		return m, msg.RefreshProjects(m.ctx, m.catalog)
	case "n":
		return m.startNewProject()
	}
	return m, nil
}

func (m Model) handleFormKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch key.String() {
	case "esc":
		return m.viewHistory()
	case "tab", "down":
		cmd = m.form.next()
	case "shift+tab", "up":
		cmd = m.form.prev()
	case "ctrl+a":
		cmd = m.form.addRow()
	case "ctrl+x":
		cmd = m.form.removeRow()
	case "ctrl+s":
		cmd = m.submit()
	case "enter":
		if m.form.submitFocused() {
			cmd = m.submit()
		} else {
			cmd = m.form.next()
		}
	default:
		cmd = m.form.update(key)
	}
	return m, cmd
}

// submit starts plan generation unless one is already running.
func (m *Model) submit() tea.Cmd {
	if m.ctrl.Loading() {
		return nil
	}
	return msg.GeneratePlan(m.ctx, m.ctrl, m.form.input())
}

func (m Model) handleResultsKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "tab", "right", "l":
		m.showResults(view.Tabs[(int(m.results.tab)+1)%len(view.Tabs)])
		return m, nil
	case "shift+tab", "left":
		m.showResults(view.Tabs[(int(m.results.tab)+len(view.Tabs)-1)%len(view.Tabs)])
		return m, nil
	case "1", "2", "3", "4":
		m.showResults(view.Tabs[int(key.String()[0]-'1')])
		return m, nil
	case "d":
		if m.results.tab == view.TabHTML {
			if r := m.ctrl.Snapshot().Result; r != nil {
				return m, msg.Download(m.sink, r.HTMLOutput)
			}
		}
		return m, nil
	case "p":
		if m.results.tab == view.TabHTML {
			if r := m.ctrl.Snapshot().Result; r != nil {
				m.results.notice = "Opening preview..."
				return m, msg.Preview(m.sink, r.HTMLOutput, m.logger)
			}
		}
		return m, nil
	case "n":
		return m.startNewProject()
	case "h", "esc":
		return m.viewHistory()
	}

	var cmd tea.Cmd
	m.results.viewport, cmd = m.results.viewport.Update(key)
	return m, cmd
}

func (m Model) startNewProject() (tea.Model, tea.Cmd) {
	m.leaveHistory()
	m.ctrl.StartNewProject()
	m.errMsg = ""
	cmd := m.form.setFocus(m.form.focus)
	return m, cmd
}

// leaveHistory resets the history screen and the catalog's view state so the
// list comes back unfiltered.
func (m *Model) leaveHistory() {
	m.history.leave()
	m.catalog.Reset()
}

// viewHistory returns to the list and re-fetches it.
func (m Model) viewHistory() (tea.Model, tea.Cmd) {
	m.ctrl.ViewHistory()
	m.history.pending = openRequest{}
	m.catalog.ClearError()
	m.errMsg = ""
	m.results.notice = ""
	return m, msg.RefreshProjects(m.ctx, m.catalog)
}

// showResults renders tab from the controller's current result.
func (m *Model) showResults(tab view.Tab) {
	m.results.show(tab, m.ctrl.Snapshot().Result)
}

// View renders the current screen.
func (m Model) View() string {
	state := m.ctrl.Snapshot()
	var b strings.Builder

	if header := (view.HeaderView{}).Render(state.Mode, m.width); header != "" {
		b.WriteString(header)
		b.WriteString("\n")
	}

	if banner := view.ErrorBanner(m.errorText(state), m.width); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}

	switch state.Mode {
	case controller.ModeForm:
		b.WriteString(view.FormView{}.Render(m.form.state(state.Loading, m.spinner.View(), m.width)))
	case controller.ModeResults:
		b.WriteString(view.ResultsView{}.Render(view.ResultsState{
			Active:        m.results.tab,
			Body:          m.results.viewport.View(),
			ScrollPercent: m.results.viewport.ScrollPercent(),
			Notice:        m.results.notice,
			Width:         m.width,
		}))
	default:
		cat := m.catalog.Snapshot()
		b.WriteString(view.HistoryView{}.Render(view.HistoryState{
			Summaries:   cat.Visible,
			Cursor:      m.history.cursor,
			FilterInput: m.history.filter.View(),
			FilterQuery: cat.Filter,
			Loading:     cat.Loading,
			Loaded:      cat.Loaded,
			Spinner:     m.spinner.View(),
			Confirming:  m.history.confirming,
			Width:       m.width,
			Height:      m.height,
		}))
	}

	return b.String()
}

// errorText joins the messages that should appear in the error banner.
func (m Model) errorText(state controller.State) string {
	var parts []string
	if state.Error != "" {
		parts = append(parts, state.Error)
	}
	if state.Mode == controller.ModeHistory {
		if e := m.catalog.Snapshot().Error; e != "" {
			parts = append(parts, e)
		}
	}
	if m.errMsg != "" {
		parts = append(parts, m.errMsg)
	}
	return strings.Join(parts, "\n")
}
