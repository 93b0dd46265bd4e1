package styles

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func validThemeFile() ThemeFile {
	return ThemeFile{
		Name:    "Paper",
		Version: "1",
		Colors: ThemeColors{
			Primary:   "#A78BFA",
			Secondary: "#10B981",
			Warning:   "#F59E0B",
			Error:     "#F87171",
			Muted:     "#9CA3AF",
			Surface:   "#1F2937",
			Text:      "#F9FAFB",
			Border:    "#6B7280",
		},
	}
}

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		color string
		want  bool
	}{
		{"#A78BFA", true},
		{"#a78bfa", true},
		{"#ABC", true},
		{"A78BFA", false},
		{"#AB", false},
		{"#ABCD", false},
		{"#GHIJKL", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			if got := isValidHexColor(tt.color); got != tt.want {
				t.Errorf("isValidHexColor(%q) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestThemeFileValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ThemeFile)
		errMsg string
	}{
		{"valid", func(*ThemeFile) {}, ""},
		{"missing name", func(f *ThemeFile) { f.Name = "" }, "theme name is required"},
		{"missing version", func(f *ThemeFile) { f.Version = "" }, "theme version is required"},
		{"bad version", func(f *ThemeFile) { f.Version = "2" }, "unsupported theme version"},
		{"missing color", func(f *ThemeFile) { f.Colors.Border = "" }, "color 'border' is required"},
		{"bad color", func(f *ThemeFile) { f.Colors.Primary = "purple" }, "color 'primary' has invalid format"},
		{"bad heading", func(f *ThemeFile) { f.Colors.Headings.H2 = "#12" }, "color 'headings.h2' has invalid format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validThemeFile()
			tt.mutate(&f)
			err := f.Validate()

			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestToPalette_HeadingDefaults(t *testing.T) {
	f := validThemeFile()
	f.Colors.Headings.H3 = "#123456"
	p := f.ToPalette()

	if p.Heading1 != "#A78BFA" || p.Heading2 != "#A78BFA" {
		t.Errorf("missing headings should default to primary, got %q %q", p.Heading1, p.Heading2)
	}
	if p.Heading3 != "#123456" {
		t.Errorf("Heading3 = %q, want #123456", p.Heading3)
	}
}

func TestDiscoverCustomThemes(t *testing.T) {
	ClearCustomThemes()
	t.Cleanup(ClearCustomThemes)

	dir := t.TempDir()
	write := func(name string, f ThemeFile) {
		data, err := yaml.Marshal(f)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("paper.yaml", validThemeFile())
	write("dracula.yml", validThemeFile())
	broken := validThemeFile()
	broken.Version = ""
	write("broken.yaml", broken)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644)

	loaded, errs := DiscoverCustomThemes(dir)

	if !slices.Equal(loaded, []string{"paper"}) {
		t.Errorf("loaded = %v, want [paper]", loaded)
	}
	if len(errs) != 2 {
		t.Errorf("expected 2 errors (broken, builtin override), got %v", errs)
	}
	if !IsValidTheme("paper") || !IsCustomTheme("paper") {
		t.Error("paper should be registered")
	}
	if GetPalette("paper").Primary != "#A78BFA" {
		t.Error("GetPalette should resolve the custom theme")
	}
	if !slices.Contains(ValidThemes(), "paper") {
		t.Error("ValidThemes should include custom themes")
	}
}

func TestDiscoverCustomThemes_MissingDir(t *testing.T) {
	loaded, errs := DiscoverCustomThemes(filepath.Join(t.TempDir(), "nope"))
	if len(loaded) != 0 || len(errs) != 0 {
		t.Errorf("missing dir should be silent, got %v %v", loaded, errs)
	}
}

func TestExportTheme_RoundTripsThroughLoader(t *testing.T) {
	ClearCustomThemes()
	t.Cleanup(ClearCustomThemes)

	for _, name := range BuiltinThemes() {
		t.Run(name, func(t *testing.T) {
			data, err := ExportTheme(ThemeName(name))
			if err != nil {
				t.Fatalf("ExportTheme() error = %v", err)
			}
			path := filepath.Join(t.TempDir(), name+".yaml")
			if err := os.WriteFile(path, data, 0o644); err != nil {
				t.Fatal(err)
			}
			theme, err := LoadThemeFile(path)
			if err != nil {
				t.Fatalf("exported theme does not load: %v", err)
			}
			if got, want := theme.ToPalette().Heading2, GetPalette(ThemeName(name)).Heading2; got != want {
				t.Errorf("Heading2 = %q, want %q", got, want)
			}
		})
	}
}

func TestExportTheme_Unknown(t *testing.T) {
	ClearCustomThemes()
	if _, err := ExportTheme("missing"); err == nil {
		t.Error("expected an error for an unknown theme")
	}
}

func TestSaveTheme(t *testing.T) {
	ClearCustomThemes()
	t.Cleanup(ClearCustomThemes)
	dir := filepath.Join(t.TempDir(), "themes")

	theme := validThemeFile()
	if err := SaveTheme(dir, "paper", &theme); err != nil {
		t.Fatalf("SaveTheme() error = %v", err)
	}
	loaded, errs := DiscoverCustomThemes(dir)
	if len(errs) != 0 || !slices.Equal(loaded, []string{"paper"}) {
		t.Errorf("DiscoverCustomThemes() = %v, %v", loaded, errs)
	}

	bad := validThemeFile()
	bad.Colors.Text = "white"
	if err := SaveTheme(dir, "bad", &bad); err == nil || !strings.Contains(err.Error(), "text") {
		t.Errorf("SaveTheme() error = %v, want invalid text color", err)
	}
}
