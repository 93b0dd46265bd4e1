package config

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{Field: "api.base_url", Value: "ftp://x", Message: "must be an absolute http or https URL"}
	want := "api.base_url: must be an absolute http or https URL (got: ftp://x)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	if got := ValidationErrors(nil).Error(); got != "" {
		t.Errorf("empty Error() = %q, want empty", got)
	}

	errs := ValidationErrors{
		{Field: "a", Value: 1, Message: "bad"},
		{Field: "b", Value: 2, Message: "worse"},
	}
	got := errs.Error()
	if !strings.HasPrefix(got, "2 validation errors:") {
		t.Errorf("Error() = %q, want count prefix", got)
	}
	if !strings.Contains(got, "1. a: bad") || !strings.Contains(got, "2. b: worse") {
		t.Errorf("Error() = %q, missing entries", got)
	}
}

func TestConfig_Validate_DefaultConfig(t *testing.T) {
	if errs := Default().Validate(); len(errs) != 0 {
		t.Errorf("default config should be valid, got %v", errs)
	}
}

func TestConfig_Validate_API(t *testing.T) {
	tests := []struct {
		name      string
		baseURL   string
		timeout   int
		wantField string
	}{
		{"valid http", "http://0.0.0.0:8000", 10, ""},
		{"valid https with path", "https://plans.example.com/api/", 0, ""},
		{"empty", "  ", 10, "api.base_url"},
		{"no scheme", "localhost:8000", 10, "api.base_url"},
		{"wrong scheme", "ftp://localhost", 10, "api.base_url"},
		{"negative timeout", "http://localhost:8000", -1, "api.timeout_seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.API.BaseURL = tt.baseURL
			cfg.API.TimeoutSeconds = tt.timeout

			errs := cfg.Validate()
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Errorf("expected no errors, got %v", errs)
				}
				return
			}
			if len(errs) != 1 || errs[0].Field != tt.wantField {
				t.Errorf("expected one error on %s, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestConfig_Validate_Logging(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"uppercase level", func(c *Config) { c.Logging.Level = "DEBUG" }, false},
		{"empty level", func(c *Config) { c.Logging.Level = "" }, false},
		{"unknown level", func(c *Config) { c.Logging.Level = "trace" }, true},
		{"negative size", func(c *Config) { c.Logging.MaxSizeMB = -1 }, true},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -3 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if got := len(cfg.Validate()) > 0; got != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", got, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.API.BaseURL = ""
	cfg.Logging.Level = "loud"

	if errs := cfg.Validate(); len(errs) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(errs), errs)
	}
}
