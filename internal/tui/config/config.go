// Package config provides the interactive editor behind "planner config edit".
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/planner/internal/config"
	"github.com/Iron-Ham/planner/internal/tui/styles"
)

// ConfigItem represents a single configuration item
type ConfigItem struct {
	Key         string
	Label       string
	Description string
	Type        string   // "string", "bool", "int", "select"
	Options     []string // For select type
}

// Category represents a group of config items
type Category struct {
	Name  string
	Items []ConfigItem
}

// Model is the Bubbletea model for the interactive config UI
type Model struct {
	categories    []Category
	categoryIndex int
	itemIndex     int
	width         int
	height        int
	editing       bool
	textInput     textinput.Model
	selectIndex   int
	errorMsg      string
	infoMsg       string
	quitting      bool

	// configFile is where edits are written.
	configFile string
}

// Categories returns the editable settings grouped for display.
func Categories() []Category {
	return []Category{
		{
			Name: "Service",
			Items: []ConfigItem{
				{
					Key:         "api.base_url",
					Label:       "Base URL",
					Description: "Address of the project-planning service",
					Type:        "string",
				},
				{
					Key:         "api.timeout_seconds",
					Label:       "Request Timeout (s)",
					Description: "Upper bound for a single request; plan generation can take minutes (0 = no limit)",
					Type:        "int",
				},
			},
		},
		{
			Name: "Interface",
			Items: []ConfigItem{
				{
					Key:         "tui.theme",
					Label:       "Theme",
					Description: "Color theme; custom themes are read from the themes directory",
					Type:        "select",
					Options:     styles.ValidThemes(),
				},
			},
		},
		{
			Name: "Export",
			Items: []ConfigItem{
				{
					Key:         "export.dir",
					Label:       "Download Directory",
					Description: "Where downloaded plans are written (empty = current directory)",
					Type:        "string",
				},
				{
					Key:         "export.open_command",
					Label:       "Preview Command",
					Description: "Command used to open previews (empty = system browser)",
					Type:        "string",
				},
			},
		},
		{
			Name: "Logging",
			Items: []ConfigItem{
				{
					Key:         "logging.enabled",
					Label:       "Enabled",
					Description: "Write a debug log under the config directory",
					Type:        "bool",
				},
				{
					Key:         "logging.level",
					Label:       "Level",
					Description: "Minimum level written to the log",
					Type:        "select",
					Options:     config.ValidLogLevels(),
				},
				{
					Key:         "logging.max_size_mb",
					Label:       "Max Size (MB)",
					Description: "Size at which the log file is rotated",
					Type:        "int",
				},
				{
					Key:         "logging.max_backups",
					Label:       "Max Backups",
					Description: "How many rotated log files are kept",
					Type:        "int",
				},
			},
		},
	}
}

// New creates a config model that saves to configFile.
func New(configFile string) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	return Model{
		categories: Categories(),
		textInput:  ti,
		configFile: configFile,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.errorMsg = ""
		m.infoMsg = ""

		if m.editing {
			return m.handleEditingKeypress(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			m.itemIndex--
			if m.itemIndex < 0 {
				m.categoryIndex = (m.categoryIndex - 1 + len(m.categories)) % len(m.categories)
				m.itemIndex = len(m.categories[m.categoryIndex].Items) - 1
			}

		case "down", "j":
			m.itemIndex++
			if m.itemIndex >= len(m.categories[m.categoryIndex].Items) {
				m.categoryIndex = (m.categoryIndex + 1) % len(m.categories)
				m.itemIndex = 0
			}

		case "tab":
			m.categoryIndex = (m.categoryIndex + 1) % len(m.categories)
			m.itemIndex = 0

		case "shift+tab":
			m.categoryIndex = (m.categoryIndex - 1 + len(m.categories)) % len(m.categories)
			m.itemIndex = 0

		case "enter", " ":
			item := m.currentItem()
			switch item.Type {
			case "bool":
				if err := m.apply(item.Key, !viper.GetBool(item.Key)); err != nil {
					m.errorMsg = err.Error()
				}
			case "select":
				m.editing = true
				m.selectIndex = m.currentSelectIndex()
			default:
				m.editing = true
				m.textInput.SetValue(m.displayValue(item))
				m.textInput.CursorEnd()
				cmd := m.textInput.Focus()
				return m, cmd
			}

		case "r":
			m.resetCurrentToDefault()
		}
	}

	return m, nil
}

func (m Model) handleEditingKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item := m.currentItem()

	switch msg.String() {
	case "esc":
		m.editing = false
		m.textInput.Blur()
		m.textInput.SetValue("")
		return m, nil

	case "enter":
		if item.Type == "select" {
			if len(item.Options) > 0 {
				if err := m.apply(item.Key, item.Options[m.selectIndex]); err != nil {
					m.errorMsg = err.Error()
					return m, nil
				}
			}
			m.editing = false
			return m, nil
		}

		if err := m.validateAndSet(item, m.textInput.Value()); err != nil {
			m.errorMsg = err.Error()
			return m, nil
		}
		m.editing = false
		m.textInput.Blur()
		m.textInput.SetValue("")
		return m, nil

	case "up", "k":
		if item.Type == "select" && len(item.Options) > 0 {
			m.selectIndex = (m.selectIndex - 1 + len(item.Options)) % len(item.Options)
			return m, nil
		}

	case "down", "j":
		if item.Type == "select" && len(item.Options) > 0 {
			m.selectIndex = (m.selectIndex + 1) % len(item.Options)
			return m, nil
		}
	}

	if item.Type != "select" {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := styles.Active()
	var b strings.Builder

	b.WriteString(st.Title.Render("Planner Configuration"))
	b.WriteString("\n")

	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		configPath = m.configFile + " (not created)"
	}
	b.WriteString(st.Muted.Render("Config file: " + configPath))
	b.WriteString("\n\n")

	for ci, cat := range m.categories {
		active := ci == m.categoryIndex

		catStyle := st.Muted.Bold(true)
		if active {
			catStyle = st.Primary.Bold(true)
		}
		b.WriteString(catStyle.Render(fmt.Sprintf("[ %s ]", cat.Name)))
		b.WriteString("\n")

		for ii, item := range cat.Items {
			b.WriteString(m.renderItem(item, active && ii == m.itemIndex))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString(m.renderEditOverlay())
	} else {
		b.WriteString(st.Muted.Render(m.currentItem().Description))
	}
	b.WriteString("\n")

	if m.errorMsg != "" {
		b.WriteString("\n")
		b.WriteString(st.Error.Render("Error: " + m.errorMsg))
	}
	if m.infoMsg != "" {
		b.WriteString("\n")
		b.WriteString(st.SuccessMsg.Render(m.infoMsg))
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderItem(item ConfigItem, selected bool) string {
	st := styles.Active()
	label := fmt.Sprintf("%-22s", item.Label)
	value := m.displayValue(item)
	if value == "" {
		value = "(empty)"
	}

	if selected {
		return fmt.Sprintf("  %s %s  %s",
			st.Secondary.Render(">"),
			st.Text.Bold(true).Render(label),
			st.Primary.Render(value))
	}
	return fmt.Sprintf("    %s  %s", st.Muted.Render(label), st.Text.Render(value))
}

func (m Model) renderEditOverlay() string {
	st := styles.Active()
	item := m.currentItem()

	var content strings.Builder
	if item.Type == "select" {
		content.WriteString(fmt.Sprintf("Select %s:\n\n", item.Label))
		for i, opt := range item.Options {
			if i == m.selectIndex {
				content.WriteString(st.Primary.Bold(true).Render(" > "+opt) + "\n")
			} else {
				content.WriteString(st.Text.Render("   "+opt) + "\n")
			}
		}
		content.WriteString("\n" + st.Muted.Render("j/k or arrows to select, enter to confirm, esc to cancel"))
	} else {
		content.WriteString(fmt.Sprintf("Edit %s:\n\n", item.Label))
		content.WriteString(m.textInput.View())
		content.WriteString("\n\n" + st.Muted.Render("enter to save, esc to cancel"))
	}

	return "\n" + st.Modal.BorderForeground(st.PrimaryColor).Width(56).Render(content.String())
}

func (m Model) renderHelp() string {
	st := styles.Active()
	if m.editing {
		return st.HelpBar.Render(
			st.HelpKey.Render("enter") + " save  " +
				st.HelpKey.Render("esc") + " cancel",
		)
	}
	return st.HelpBar.Render(
		st.HelpKey.Render("j/k") + " navigate  " +
			st.HelpKey.Render("tab") + " next category  " +
			st.HelpKey.Render("enter/space") + " edit  " +
			st.HelpKey.Render("r") + " reset  " +
			st.HelpKey.Render("q") + " quit",
	)
}

func (m Model) currentItem() ConfigItem {
	return m.categories[m.categoryIndex].Items[m.itemIndex]
}

func (m Model) displayValue(item ConfigItem) string {
	switch item.Type {
	case "bool":
		return strconv.FormatBool(viper.GetBool(item.Key))
	case "int":
		return strconv.Itoa(viper.GetInt(item.Key))
	default:
		return viper.GetString(item.Key)
	}
}

func (m Model) currentSelectIndex() int {
	item := m.currentItem()
	if i := slices.Index(item.Options, viper.GetString(item.Key)); i >= 0 {
		return i
	}
	return 0
}

func (m *Model) validateAndSet(item ConfigItem, value string) error {
	value = strings.TrimSpace(value)
	switch item.Type {
	case "int":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("expected integer value")
		}
		return m.apply(item.Key, n)
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("expected true or false")
		}
		return m.apply(item.Key, b)
	case "select":
		if !slices.Contains(item.Options, value) {
			return fmt.Errorf("invalid option: %s", value)
		}
		return m.apply(item.Key, value)
	default:
		return m.apply(item.Key, value)
	}
}

// apply sets key, validates the resulting configuration and saves it. An
// invalid value is rolled back.
func (m *Model) apply(key string, value any) error {
	prev := viper.Get(key)
	viper.Set(key, value)

	if _, err := config.Load(); err != nil {
		viper.Set(key, prev)
		return err
	}
	return m.saveConfig()
}

func (m *Model) saveConfig() error {
	if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(m.configFile); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	m.infoMsg = "Saved!"
	return nil
}

func (m *Model) resetCurrentToDefault() {
	item := m.currentItem()
	d := config.Default()

	defaults := map[string]any{
		"api.base_url":        d.API.BaseURL,
		"api.timeout_seconds": d.API.TimeoutSeconds,
		"tui.theme":           d.TUI.Theme,
		"export.dir":          d.Export.Dir,
		"export.open_command": d.Export.OpenCommand,
		"logging.enabled":     d.Logging.Enabled,
		"logging.level":       d.Logging.Level,
		"logging.max_size_mb": d.Logging.MaxSizeMB,
		"logging.max_backups": d.Logging.MaxBackups,
	}

	value, ok := defaults[item.Key]
	if !ok {
		return
	}
	if err := m.apply(item.Key, value); err != nil {
		m.errorMsg = err.Error()
		return
	}
	m.infoMsg = fmt.Sprintf("Reset %s to default", item.Label)
}

// Run starts the interactive config UI, saving edits to configFile.
func Run(configFile string) error {
	// Custom themes must be registered before the theme options are built.
	_, _ = styles.DiscoverCustomThemes(config.ThemesDir())

	p := tea.NewProgram(New(configFile), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
