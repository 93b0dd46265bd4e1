package config

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/planner/internal/config"
)

func setup(t *testing.T) (Model, string) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	config.SetDefaults()

	file := filepath.Join(config.ConfigDir(), "config.yaml")
	return New(file), file
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func typeText(m Model, text string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

func TestNavigation_WrapsAcrossCategories(t *testing.T) {
	m, _ := setup(t)

	m = send(m, "down", "down")
	if m.categoryIndex != 1 || m.itemIndex != 0 {
		t.Errorf("after two downs: category %d item %d, want 1/0", m.categoryIndex, m.itemIndex)
	}

	m = send(m, "k")
	if m.categoryIndex != 0 || m.itemIndex != 1 {
		t.Errorf("after up: category %d item %d, want 0/1", m.categoryIndex, m.itemIndex)
	}

	m = send(m, "tab", "tab", "tab")
	if m.categoryIndex != 3 || m.currentItem().Key != "logging.enabled" {
		t.Errorf("tab should land on Logging, got %q", m.currentItem().Key)
	}
}

func TestToggleBool_SavesConfig(t *testing.T) {
	m, file := setup(t)
	m = send(m, "tab", "tab", "tab") // logging.enabled

	m = send(m, "enter")
	if viper.GetBool("logging.enabled") {
		t.Error("logging.enabled should be toggled off")
	}
	if m.infoMsg != "Saved!" {
		t.Errorf("infoMsg = %q, errorMsg = %q", m.infoMsg, m.errorMsg)
	}

	v := viper.New()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("reading saved config: %v", err)
	}
	if v.GetBool("logging.enabled") {
		t.Error("saved file should have logging.enabled=false")
	}
}

func TestEditString_InvalidValueRolledBack(t *testing.T) {
	m, _ := setup(t)

	m = send(m, "enter") // api.base_url
	if !m.editing {
		t.Fatal("enter should start editing")
	}
	m = send(m, "ctrl+u")
	m = typeText(m, "not a url")
	m = send(m, "enter")

	if !m.editing {
		t.Error("invalid value should keep the editor open")
	}
	if !strings.Contains(m.errorMsg, "api.base_url") {
		t.Errorf("errorMsg = %q", m.errorMsg)
	}
	if got := viper.GetString("api.base_url"); got != config.DefaultBaseURL {
		t.Errorf("base_url = %q, want rollback to default", got)
	}
}

func TestEditInt(t *testing.T) {
	m, _ := setup(t)

	m = send(m, "down", "enter") // api.timeout_seconds
	m = send(m, "ctrl+u")
	m = typeText(m, "abc")
	m = send(m, "enter")
	if m.errorMsg != "expected integer value" {
		t.Errorf("errorMsg = %q", m.errorMsg)
	}

	m = send(m, "ctrl+u")
	m = typeText(m, "60")
	m = send(m, "enter")
	if m.editing {
		t.Error("valid value should close the editor")
	}
	if viper.GetInt("api.timeout_seconds") != 60 {
		t.Errorf("timeout = %d, want 60", viper.GetInt("api.timeout_seconds"))
	}
}

func TestSelect_Theme(t *testing.T) {
	m, _ := setup(t)
	m = send(m, "tab", "enter") // tui.theme
	if !m.editing || m.selectIndex != 0 {
		t.Fatalf("expected select editor on default theme, editing=%v index=%d", m.editing, m.selectIndex)
	}

	m = send(m, "j", "enter")
	if got := viper.GetString("tui.theme"); got != "dracula" {
		t.Errorf("theme = %q, want dracula", got)
	}
}

func TestReset(t *testing.T) {
	m, _ := setup(t)
	viper.Set("api.timeout_seconds", 5)

	m = send(m, "down", "r")
	if viper.GetInt("api.timeout_seconds") != 300 {
		t.Errorf("timeout = %d, want default 300", viper.GetInt("api.timeout_seconds"))
	}
	if !strings.HasPrefix(m.infoMsg, "Reset Request Timeout") {
		t.Errorf("infoMsg = %q", m.infoMsg)
	}
}

func TestView(t *testing.T) {
	m, _ := setup(t)
	out := m.View()
	for _, want := range []string{"Planner Configuration", "[ Service ]", "Base URL", "http://localhost:8000"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m = send(m, "q")
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
