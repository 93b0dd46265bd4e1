package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/planner/internal/testutil"
	"github.com/Iron-Ham/planner/internal/tui/styles"
)

// setupConfigHome points the config directory at a temp dir and resets
// viper and the custom theme registry.
func setupConfigHome(t *testing.T) string {
	t.Helper()
	dir := testutil.SetupConfigHome(t)
	styles.ClearCustomThemes()
	t.Cleanup(styles.ClearCustomThemes)
	return dir
}

// capture directs cmd's output to a buffer.
func capture(t *testing.T, cmd *cobra.Command) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	t.Cleanup(func() {
		cmd.SetOut(nil)
		cmd.SetErr(nil)
	})
	return &buf
}

const customTheme = `name: "Test Theme"
author: "Ana"
version: "1"
colors:
  primary: "#A78BFA"
  secondary: "#10B981"
  warning: "#F59E0B"
  error: "#F87171"
  muted: "#9CA3AF"
  surface: "#1F2937"
  text: "#F9FAFB"
  border: "#6B7280"
`

func writeTheme(t *testing.T, dir, name, content string) {
	t.Helper()
	themes := filepath.Join(dir, "themes")
	if err := os.MkdirAll(themes, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(themes, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunThemeList(t *testing.T) {
	dir := setupConfigHome(t)
	writeTheme(t, dir, "testtheme.yaml", customTheme)
	out := capture(t, themeListCmd)

	if err := runThemeList(themeListCmd, nil); err != nil {
		t.Fatalf("runThemeList() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{"dracula", "default (active)", "testtheme (by Ana)"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunThemeExport(t *testing.T) {
	setupConfigHome(t)
	outputPath := filepath.Join(t.TempDir(), "exported.yaml")
	capture(t, themeExportCmd)

	if err := runThemeExport(themeExportCmd, []string{"nord", outputPath}); err != nil {
		t.Fatalf("runThemeExport() error = %v", err)
	}

	theme, err := styles.LoadThemeFile(outputPath)
	if err != nil {
		t.Fatalf("exported file does not load: %v", err)
	}
	if theme.Colors.Primary != string(styles.NordPalette().Primary) {
		t.Errorf("Primary = %q", theme.Colors.Primary)
	}
}

func TestRunThemeExportInvalidTheme(t *testing.T) {
	setupConfigHome(t)

	err := runThemeExport(themeExportCmd, []string{"nonexistent"})
	if err == nil || !strings.Contains(err.Error(), "unknown theme") {
		t.Errorf("runThemeExport() error = %v, want unknown theme", err)
	}
}

func TestRunThemeInfo_BrokenCustomTheme(t *testing.T) {
	dir := setupConfigHome(t)
	writeTheme(t, dir, "broken.yaml", "name: Broken\nversion: \"1\"\ncolors: {}\n")

	err := runThemeInfo(themeInfoCmd, []string{"broken"})
	if err == nil || !strings.Contains(err.Error(), "failed to load") {
		t.Errorf("runThemeInfo() error = %v, want load failure", err)
	}
}

func TestRunThemeInfo(t *testing.T) {
	setupConfigHome(t)
	out := capture(t, themeInfoCmd)

	if err := runThemeInfo(themeInfoCmd, []string{"gruvbox"}); err != nil {
		t.Fatalf("runThemeInfo() error = %v", err)
	}
	if !strings.Contains(out.String(), "Type: Built-in") {
		t.Errorf("output = %s", out.String())
	}
}

func TestRunThemeCreate(t *testing.T) {
	dir := setupConfigHome(t)
	capture(t, themeCreateCmd)
	themeFrom = "dracula"
	t.Cleanup(func() { themeFrom = string(styles.ThemeDefault) })

	if err := runThemeCreate(themeCreateCmd, []string{"night"}); err != nil {
		t.Fatalf("runThemeCreate() error = %v", err)
	}

	path := filepath.Join(dir, "themes", "night.yaml")
	theme, err := styles.LoadThemeFile(path)
	if err != nil {
		t.Fatalf("created theme does not load: %v", err)
	}
	if theme.Colors.Primary != string(styles.DraculaPalette().Primary) {
		t.Errorf("Primary = %q, want dracula's", theme.Colors.Primary)
	}

	if err := runThemeCreate(themeCreateCmd, []string{"night"}); err == nil {
		t.Error("creating an existing theme should fail")
	}
	if err := runThemeCreate(themeCreateCmd, []string{"nord"}); err == nil {
		t.Error("shadowing a built-in theme should fail")
	}
	if err := runThemeCreate(themeCreateCmd, []string{"a/b"}); err == nil {
		t.Error("path separators should be rejected")
	}
}
