package config

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	appconfig "github.com/Iron-Ham/planner/internal/config"
)

func TestParseValue(t *testing.T) {
	setupConfigHome(t)

	tests := []struct {
		key     string
		value   string
		want    any
		wantErr string
	}{
		{"api.base_url", "http://h:1", "http://h:1", ""},
		{"api.timeout_seconds", "30", 30, ""},
		{"api.timeout_seconds", "-1", nil, "non-negative"},
		{"api.timeout_seconds", "abc", nil, "expected integer"},
		{"logging.enabled", "false", false, ""},
		{"logging.enabled", "no", nil, "true or false"},
		{"logging.level", "DEBUG", "debug", ""},
		{"logging.level", "trace", nil, "Valid options"},
		{"tui.theme", "nord", "nord", ""},
		{"tui.theme", "neon", nil, "invalid theme"},
		{"nope.key", "x", nil, "unknown configuration key"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			got, err := parseValue(tt.key, tt.value)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("parseValue() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseValue() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("parseValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunConfigSet(t *testing.T) {
	dir := setupConfigHome(t)
	out := capture(t, configSetCmd)

	if err := runConfigSet(configSetCmd, []string{"api.base_url", "http://planner.test:9000"}); err != nil {
		t.Fatalf("runConfigSet() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "http://planner.test:9000") {
		t.Errorf("config file = %s", data)
	}
	if !strings.Contains(out.String(), "Set api.base_url") {
		t.Errorf("output = %s", out.String())
	}
}

func TestRunConfigSet_InvalidURLRolledBack(t *testing.T) {
	dir := setupConfigHome(t)
	capture(t, configSetCmd)

	err := runConfigSet(configSetCmd, []string{"api.base_url", "not a url"})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if got := viper.GetString("api.base_url"); got != appconfig.DefaultBaseURL {
		t.Errorf("api.base_url = %q, want rollback to default", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); !os.IsNotExist(err) {
		t.Error("nothing should be written for an invalid value")
	}
}

func TestRunConfigInit(t *testing.T) {
	dir := setupConfigHome(t)
	capture(t, configInitCmd)

	if err := runConfigInit(configInitCmd, nil); err != nil {
		t.Fatalf("runConfigInit() error = %v", err)
	}

	viper.SetConfigFile(filepath.Join(dir, "config.yaml"))
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("generated config does not parse: %v", err)
	}
	cfg, err := appconfig.Load()
	if err != nil {
		t.Fatalf("generated config is invalid: %v", err)
	}
	if *cfg != *appconfig.Default() {
		t.Errorf("generated config = %+v, want defaults", cfg)
	}

	if err := runConfigInit(configInitCmd, nil); err == nil {
		t.Error("init should refuse to overwrite an existing file")
	}
}

func TestRunConfigReset(t *testing.T) {
	setupConfigHome(t)
	capture(t, configResetCmd)
	capture(t, configSetCmd)

	if err := runConfigSet(configSetCmd, []string{"tui.theme", "nord"}); err != nil {
		t.Fatal(err)
	}
	if err := runConfigSet(configSetCmd, []string{"logging.level", "debug"}); err != nil {
		t.Fatal(err)
	}

	if err := runConfigReset(configResetCmd, []string{"tui.theme"}); err != nil {
		t.Fatalf("runConfigReset(key) error = %v", err)
	}
	if viper.GetString("tui.theme") != "default" || viper.GetString("logging.level") != "debug" {
		t.Error("single-key reset should only touch that key")
	}

	if err := runConfigReset(configResetCmd, nil); err != nil {
		t.Fatalf("runConfigReset() error = %v", err)
	}
	if viper.GetString("logging.level") != "info" {
		t.Errorf("logging.level = %q, want info", viper.GetString("logging.level"))
	}

	if err := runConfigReset(configResetCmd, []string{"bogus"}); err == nil {
		t.Error("unknown key should fail")
	}
}

func TestRunConfigShow(t *testing.T) {
	setupConfigHome(t)
	out := capture(t, configShowCmd)

	if err := runConfigShow(configShowCmd, nil); err != nil {
		t.Fatalf("runConfigShow() error = %v", err)
	}
	for _, want := range []string{"base_url: http://localhost:8000", "theme: default", "(current directory)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunConfigEdit_ExternalEditor(t *testing.T) {
	dir := setupConfigHome(t)
	capture(t, configEditCmd)
	t.Setenv("EDITOR", "true-editor")

	var gotName string
	var gotArgs []string
	origCommand := execCommand
	execCommand = func(name string, args ...string) *exec.Cmd {
		gotName, gotArgs = name, args
		return exec.Command("true")
	}
	useExternalEditor = true
	t.Cleanup(func() {
		execCommand = origCommand
		useExternalEditor = false
	})

	if err := runConfigEdit(configEditCmd, nil); err != nil {
		t.Fatalf("runConfigEdit() error = %v", err)
	}
	if gotName != "true-editor" {
		t.Errorf("editor = %q", gotName)
	}
	want := filepath.Join(dir, "config.yaml")
	if len(gotArgs) != 1 || gotArgs[0] != want {
		t.Errorf("editor args = %v, want [%s]", gotArgs, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Error("edit should create the config file first")
	}
}
