package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	appconfig "github.com/Iron-Ham/planner/internal/config"
	"github.com/Iron-Ham/planner/internal/tui/styles"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage color themes",
	Long: `Manage color themes for the planner TUI.

Besides the built-in themes, any YAML file in the themes directory is loaded
as a custom theme named after the file.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available themes",
	Args:  cobra.NoArgs,
	RunE:  runThemeList,
}

var themeExportCmd = &cobra.Command{
	Use:   "export <theme-name> [output-file]",
	Short: "Export a theme to YAML",
	Long: `Export a theme as a YAML theme file, as a starting point for a custom theme.

Examples:
  planner config theme export nord                # Print to stdout
  planner config theme export dracula night.yaml  # Save to a file`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runThemeExport,
}

var themeInfoCmd = &cobra.Command{
	Use:   "info <theme-name>",
	Short: "Show a theme's colors",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeInfo,
}

var themePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the custom themes directory path",
	Args:  cobra.NoArgs,
	RunE:  runThemePath,
}

var themeCreateCmd = &cobra.Command{
	Use:   "create <name> [--from theme]",
	Short: "Create a custom theme file",
	Long: `Create a new custom theme in the themes directory, copied from the
default theme or from --from.

Example:
  planner config theme create paper --from solarized-light
  planner config set tui.theme paper`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeCreate,
}

var themeFrom string

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themeInfoCmd)
	themeCmd.AddCommand(themePathCmd)
	themeCmd.AddCommand(themeCreateCmd)
	configCmd.AddCommand(themeCmd)

	themeCreateCmd.Flags().StringVar(&themeFrom, "from", string(styles.ThemeDefault), "Theme to copy colors from")
}

// discoverThemes loads custom themes and returns the load errors.
func discoverThemes() []error {
	_, errs := styles.DiscoverCustomThemes(appconfig.ThemesDir())
	return errs
}

// unknownThemeError explains why name is not available, naming the load
// error for its file if there was one.
func unknownThemeError(name string, loadErrs []error) error {
	for _, err := range loadErrs {
		msg := err.Error()
		if strings.HasPrefix(msg, name+".yaml:") || strings.HasPrefix(msg, name+".yml:") {
			return fmt.Errorf("theme '%s' exists but failed to load: %v", name, err)
		}
	}
	return fmt.Errorf("unknown theme: %s\n\nRun 'planner config theme list' to see available themes.\nCustom themes should be placed in: %s",
		name, appconfig.ThemesDir())
}

func runThemeList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if loadErrs := discoverThemes(); len(loadErrs) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: Some themes failed to load:")
		for _, err := range loadErrs {
			fmt.Fprintf(cmd.ErrOrStderr(), "  - %v\n", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr())
	}

	active := appconfig.Get().TUI.Theme
	mark := func(name string) string {
		if name == active {
			return " (active)"
		}
		return ""
	}

	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintf(out, "  - %s%s\n", name, mark(name))
	}

	if custom := styles.CustomThemeNames(); len(custom) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Custom themes:")
		for _, name := range custom {
			theme := styles.GetCustomTheme(styles.ThemeName(name))
			if theme != nil && theme.Author != "" {
				fmt.Fprintf(out, "  - %s (by %s)%s\n", name, theme.Author, mark(name))
			} else {
				fmt.Fprintf(out, "  - %s%s\n", name, mark(name))
			}
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Custom themes directory: %s\n", appconfig.ThemesDir())
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	name := args[0]

	loadErrs := discoverThemes()
	if !styles.IsValidTheme(name) {
		return unknownThemeError(name, loadErrs)
	}

	data, err := styles.ExportTheme(styles.ThemeName(name))
	if err != nil {
		return fmt.Errorf("exporting theme: %w", err)
	}

	if len(args) > 1 {
		if err := os.WriteFile(args[1], data, 0o644); err != nil {
			return fmt.Errorf("writing to %s: %w", args[1], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme exported to: %s\n", args[1])
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runThemeInfo(cmd *cobra.Command, args []string) error {
	name := args[0]
	out := cmd.OutOrStdout()

	loadErrs := discoverThemes()
	if !styles.IsValidTheme(name) {
		return unknownThemeError(name, loadErrs)
	}

	fmt.Fprintf(out, "Theme: %s\n\n", name)
	if styles.IsBuiltinTheme(name) {
		fmt.Fprintln(out, "Type: Built-in")
	} else {
		fmt.Fprintln(out, "Type: Custom")
		if theme := styles.GetCustomTheme(styles.ThemeName(name)); theme != nil && theme.Author != "" {
			fmt.Fprintf(out, "Author: %s\n", theme.Author)
		}
	}

	p := styles.GetPalette(styles.ThemeName(name))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Base Colors:")
	fmt.Fprintf(out, "  Primary:   %s\n", p.Primary)
	fmt.Fprintf(out, "  Secondary: %s\n", p.Secondary)
	fmt.Fprintf(out, "  Warning:   %s\n", p.Warning)
	fmt.Fprintf(out, "  Error:     %s\n", p.Error)
	fmt.Fprintf(out, "  Muted:     %s\n", p.Muted)
	fmt.Fprintf(out, "  Surface:   %s\n", p.Surface)
	fmt.Fprintf(out, "  Text:      %s\n", p.Text)
	fmt.Fprintf(out, "  Border:    %s\n", p.Border)
	fmt.Fprintln(out, "Headings:")
	fmt.Fprintf(out, "  H1: %s\n", p.Heading1)
	fmt.Fprintf(out, "  H2: %s\n", p.Heading2)
	fmt.Fprintf(out, "  H3: %s\n", p.Heading3)
	return nil
}

func runThemePath(cmd *cobra.Command, args []string) error {
	dir := appconfig.ThemesDir()
	fmt.Fprintln(cmd.OutOrStdout(), dir)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), "Note: This directory does not exist yet.")
		fmt.Fprintln(cmd.OutOrStdout(), "It will be created when you add your first custom theme.")
	}
	return nil
}

func runThemeCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	if name == "" || strings.ContainsAny(name, "/\\:*?\"<>|") {
		return fmt.Errorf("invalid theme name: %q", name)
	}
	if styles.IsBuiltinTheme(name) {
		return fmt.Errorf("cannot create custom theme with built-in name '%s'", name)
	}

	dir := appconfig.ThemesDir()
	path := filepath.Join(dir, name+".yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("theme '%s' already exists at %s", name, path)
	}

	loadErrs := discoverThemes()
	if !styles.IsValidTheme(themeFrom) {
		return unknownThemeError(themeFrom, loadErrs)
	}

	theme := styles.FromPalette(name, styles.GetPalette(styles.ThemeName(themeFrom)))
	if err := styles.SaveTheme(dir, name, theme); err != nil {
		return fmt.Errorf("creating theme: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created new theme: %s\n\n", path)
	fmt.Fprintln(cmd.OutOrStdout(), "To use it, run:")
	fmt.Fprintf(cmd.OutOrStdout(), "  planner config set tui.theme %s\n", name)
	return nil
}
