package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "http://localhost:8000")
	}
	if cfg.API.TimeoutSeconds != 300 {
		t.Errorf("API.TimeoutSeconds = %d, want 300", cfg.API.TimeoutSeconds)
	}
	if cfg.TUI.Theme != "default" {
		t.Errorf("TUI.Theme = %q, want %q", cfg.TUI.Theme, "default")
	}
	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestAPIConfig_Timeout(t *testing.T) {
	c := APIConfig{TimeoutSeconds: 90}
	if got := c.Timeout(); got != 90*time.Second {
		t.Errorf("Timeout() = %v, want 90s", got)
	}
}

func TestAPIConfig_NormalizedBaseURL(t *testing.T) {
	tests := map[string]string{
		"http://localhost:8000":    "http://localhost:8000",
		"http://localhost:8000/":   "http://localhost:8000",
		" https://x.example/api// ": "https://x.example/api",
	}
	for in, want := range tests {
		c := APIConfig{BaseURL: in}
		if got := c.NormalizedBaseURL(); got != want {
			t.Errorf("NormalizedBaseURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		if got := ConfigDir(); got != filepath.Join("/tmp/xdg", "planner") {
			t.Errorf("ConfigDir() = %q", got)
		}
		if got := ConfigFile(); got != filepath.Join("/tmp/xdg", "planner", "config.yaml") {
			t.Errorf("ConfigFile() = %q", got)
		}
		if got := LogDir(); got != filepath.Join("/tmp/xdg", "planner", "logs") {
			t.Errorf("LogDir() = %q", got)
		}
	})

	t.Run("falls back to home config", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", "/tmp/home")
		if got := ConfigDir(); got != filepath.Join("/tmp/home", ".config", "planner") {
			t.Errorf("ConfigDir() = %q", got)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("defaults load and validate", func(t *testing.T) {
		viper.Reset()
		SetDefaults()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.API.BaseURL != DefaultBaseURL {
			t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, DefaultBaseURL)
		}
	})

	t.Run("env alias overrides base url", func(t *testing.T) {
		viper.Reset()
		SetDefaults()
		BindEnv()
		t.Setenv("NEXT_PUBLIC_API_URL", "http://10.0.0.5:9000")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.API.BaseURL != "http://10.0.0.5:9000" {
			t.Errorf("API.BaseURL = %q, want env value", cfg.API.BaseURL)
		}
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		viper.Reset()
		SetDefaults()
		viper.Set("api.base_url", "not a url")

		if _, err := Load(); err == nil {
			t.Fatal("Load() should fail for invalid base URL")
		}
		if got := Get(); got.API.BaseURL != DefaultBaseURL {
			t.Errorf("Get() should fall back to defaults, got %q", got.API.BaseURL)
		}
	})
}
