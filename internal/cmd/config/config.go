// Package config provides CLI commands for managing planner configuration.
package config

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appconfig "github.com/Iron-Ham/planner/internal/config"
	tuiconfig "github.com/Iron-Ham/planner/internal/tui/config"
	"github.com/Iron-Ham/planner/internal/tui/styles"
)

// Wrapper functions for exec to allow testing
var execLookPath = exec.LookPath
var execCommand = exec.Command

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify planner configuration",
	Long: `View or modify planner configuration.

Without arguments, displays the current configuration.
Use 'config edit' for the interactive editor and the other subcommands to
modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  planner config set api.base_url http://planner.internal:8000
  planner config set tui.theme nord
  planner config set logging.level debug

Valid keys:
  api.base_url         - Planning service root URL
  api.timeout_seconds  - Request timeout in seconds (0 = no timeout)
  tui.theme            - Color theme (built-in or custom)
  export.dir           - Directory downloads are saved to
  export.open_command  - Command used to open previews (default: system opener)
  logging.enabled      - Write the debug log (true/false)
  logging.level        - Minimum log level: debug, info, warn, error
  logging.max_size_mb  - Log size before rotation
  logging.max_backups  - Rotated log files to keep`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/planner/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit configuration interactively",
	Long: `Open the interactive configuration editor.

With --editor, opens the config file in $EDITOR instead (falling back to
vim, nano or vi). If no config file exists, one is created with default
values first.`,
	RunE: runConfigEdit,
}

var configResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Reset configuration to defaults",
	Long: `Reset configuration values to their defaults.

Without arguments, resets all configuration to defaults.
With a key argument, resets only that specific key.

Examples:
  planner config reset                # Reset all to defaults
  planner config reset api.base_url   # Reset only the service URL`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigReset,
}

var useExternalEditor bool

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configResetCmd)

	configEditCmd.Flags().BoolVar(&useExternalEditor, "editor", false, "Open the file in $EDITOR instead of the interactive editor")
}

// Register adds all config-related commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

// keyType describes how a config value is parsed and checked.
type keyType string

const (
	typeString keyType = "string"
	typeInt    keyType = "int"
	typeBool   keyType = "bool"
	typeTheme  keyType = "theme"
	typeLevel  keyType = "level"
)

// validKeys lists the settable keys.
var validKeys = map[string]keyType{
	"api.base_url":        typeString,
	"api.timeout_seconds": typeInt,
	"tui.theme":           typeTheme,
	"export.dir":          typeString,
	"export.open_command": typeString,
	"logging.enabled":     typeBool,
	"logging.level":       typeLevel,
	"logging.max_size_mb": typeInt,
	"logging.max_backups": typeInt,
}

// defaultValues maps every settable key to its default.
func defaultValues() map[string]any {
	d := appconfig.Default()
	return map[string]any{
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
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := appconfig.Get()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "api:")
	fmt.Fprintf(out, "  base_url: %s\n", cfg.API.BaseURL)
	fmt.Fprintf(out, "  timeout_seconds: %d\n", cfg.API.TimeoutSeconds)

	fmt.Fprintln(out, "tui:")
	fmt.Fprintf(out, "  theme: %s\n", cfg.TUI.Theme)

	fmt.Fprintln(out, "export:")
	fmt.Fprintf(out, "  dir: %s\n", displayOr(cfg.Export.Dir, "(current directory)"))
	fmt.Fprintf(out, "  open_command: %s\n", displayOr(cfg.Export.OpenCommand, "(system default)"))

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  max_size_mb: %d\n", cfg.Logging.MaxSizeMB)
	fmt.Fprintf(out, "  max_backups: %d\n", cfg.Logging.MaxBackups)

	return nil
}

func displayOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// parseValue converts value to the type registered for key.
func parseValue(key, value string) (any, error) {
	kt, ok := validKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'planner config set --help' to see valid keys", key)
	}

	switch kt {
	case typeTheme:
		_, _ = styles.DiscoverCustomThemes(appconfig.ThemesDir())
		if !styles.IsValidTheme(value) {
			return nil, fmt.Errorf("invalid theme: %s\nValid options: %s",
				value, strings.Join(styles.ValidThemes(), ", "))
		}
		return value, nil
	case typeLevel:
		level := strings.ToLower(value)
		if !slices.Contains(appconfig.ValidLogLevels(), level) {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(appconfig.ValidLogLevels(), ", "))
		}
		return level, nil
	case typeBool:
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return value == "true", nil
	case typeInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		return n, nil
	default:
		return value, nil
	}
}

// setAndSave applies the values, validates the resulting configuration and
// writes it out. Invalid values are rolled back and nothing is written.
func setAndSave(values map[string]any) error {
	prev := make(map[string]any, len(values))
	for key, value := range values {
		prev[key] = viper.Get(key)
		viper.Set(key, value)
	}

	if _, err := appconfig.Load(); err != nil {
		for key, value := range prev {
			viper.Set(key, value)
		}
		return err
	}

	if err := os.MkdirAll(appconfig.ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(appconfig.ConfigFile()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	typed, err := parseValue(key, value)
	if err != nil {
		return err
	}
	if err := setAndSave(map[string]any{key: typed}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typed)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", appconfig.ConfigFile())
	return nil
}

// defaultConfigContent is the commented file written by "config init".
const defaultConfigContent = `# Planner Configuration

# Planning service
api:
  # Root URL of the planning service. PLANNER_API_BASE_URL, PLANNER_API_URL
  # and NEXT_PUBLIC_API_URL override this.
  base_url: http://localhost:8000
  # Request timeout in seconds. Plan generation runs several model calls,
  # so keep this generous. 0 disables the timeout.
  timeout_seconds: 300

# Terminal UI
tui:
  # Built-in: default, dracula, nord, gruvbox, solarized-light.
  # Custom themes are loaded from the themes directory next to this file.
  theme: default

# Downloads and previews
export:
  # Directory project-plan.html is saved to (empty = current directory)
  dir: ""
  # Command used to open previews (empty = xdg-open / open / rundll32)
  open_command: ""

# Debug log (see 'planner logs')
logging:
  enabled: true
  # debug, info, warn or error
  level: info
  # Rotate when the file reaches this size
  max_size_mb: 5
  # Rotated files to keep
  max_backups: 2
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := appconfig.ConfigFile()

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'planner config set' to modify values", configFile)
	}

	if err := os.MkdirAll(appconfig.ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", appconfig.ConfigFile())
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", appconfig.ConfigFile())
	fmt.Fprintf(out, "  2. ./config.yaml (current directory)\n")
	fmt.Fprintf(out, "\nThemes directory: %s\n", appconfig.ThemesDir())
	fmt.Fprintf(out, "Log directory: %s\n", appconfig.LogDir())
	fmt.Fprintln(out, "\nEnvironment variables: PLANNER_* (e.g., PLANNER_API_BASE_URL)")

	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	configFile := appconfig.ConfigFile()

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		fmt.Fprintf(cmd.OutOrStdout(), "Config file doesn't exist, creating with defaults...\n")
		if err := runConfigInit(cmd, args); err != nil {
			return err
		}
		viper.SetConfigFile(configFile)
		_ = viper.ReadInConfig()
	}

	if !useExternalEditor {
		return tuiconfig.Run(configFile)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "nano", "vi"} {
			if _, err := execLookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Set $EDITOR environment variable")
	}

	editorCmd := execCommand(editor, configFile)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file saved: %s\n", configFile)
	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	defaults := defaultValues()
	out := cmd.OutOrStdout()

	values := defaults
	if len(args) == 1 {
		key := args[0]
		value, ok := defaults[key]
		if !ok {
			return fmt.Errorf("unknown configuration key: %s\nRun 'planner config set --help' to see valid keys", key)
		}
		values = map[string]any{key: value}
	}

	if err := setAndSave(values); err != nil {
		return err
	}

	if len(args) == 1 {
		fmt.Fprintf(out, "Reset %s to default: %v\n", args[0], values[args[0]])
	} else {
		fmt.Fprintln(out, "Reset all configuration to defaults.")
	}
	fmt.Fprintf(out, "Config saved to %s\n", appconfig.ConfigFile())
	return nil
}
