package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete planner configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Export  ExportConfig  `mapstructure:"export"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig locates the planning service
type APIConfig struct {
	// BaseURL is the root of the planning service (default: http://localhost:8000)
	BaseURL string `mapstructure:"base_url"`
	// TimeoutSeconds bounds a single request. Plan generation runs several
	// model calls server-side, so the default is generous (300).
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// Theme is a builtin theme name or the name of a custom theme file
	Theme string `mapstructure:"theme"`
}

// ExportConfig controls where downloads land and how previews open
type ExportConfig struct {
	// Dir is where downloaded documents are written (empty = current directory)
	Dir string `mapstructure:"dir"`
	// OpenCommand overrides the browser opener used for previews
	// (empty = xdg-open / open / rundll32 depending on OS)
	OpenCommand string `mapstructure:"open_command"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled controls whether a log file is written at all
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum log level: debug, info, warn, error
	Level string `mapstructure:"level"`
	// MaxSizeMB is the size at which the log file rotates
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is how many rotated files are kept
	MaxBackups int `mapstructure:"max_backups"`
}

// DefaultBaseURL is used when neither config nor environment names a server.
const DefaultBaseURL = "http://localhost:8000"

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: 300,
		},
		TUI: TUIConfig{
			Theme: "default",
		},
		Export: ExportConfig{
			Dir:         "",
			OpenCommand: "",
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
	}
}

// Timeout returns the request timeout as a time.Duration (0 means no timeout)
func (c *APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// NormalizedBaseURL returns BaseURL without a trailing slash.
func (c *APIConfig) NormalizedBaseURL() string {
	return strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.timeout_seconds", defaults.API.TimeoutSeconds)

	viper.SetDefault("tui.theme", defaults.TUI.Theme)

	viper.SetDefault("export.dir", defaults.Export.Dir)
	viper.SetDefault("export.open_command", defaults.Export.OpenCommand)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// BindEnv wires the environment variables that name the service address.
// PLANNER_API_BASE_URL comes from AutomaticEnv; the shorter PLANNER_API_URL
// and the web client's NEXT_PUBLIC_API_URL are accepted as aliases.
func BindEnv() {
	_ = viper.BindEnv("api.base_url", "PLANNER_API_BASE_URL", "PLANNER_API_URL", "NEXT_PUBLIC_API_URL")
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "planner")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".planner"
	}
	return filepath.Join(home, ".config", "planner")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LogDir returns the directory holding planner.log and its backups
func LogDir() string {
	return filepath.Join(ConfigDir(), "logs")
}

// ThemesDir returns the directory searched for custom theme files
func ThemesDir() string {
	return filepath.Join(ConfigDir(), "themes")
}
