package styles

import "testing"

func TestGetPalette(t *testing.T) {
	for _, name := range BuiltinThemes() {
		if GetPalette(ThemeName(name)) == nil {
			t.Errorf("GetPalette(%q) returned nil", name)
		}
	}
	if GetPalette("no-such-theme").Primary != DefaultPalette().Primary {
		t.Error("unknown theme should fall back to the default palette")
	}
}

func TestIsValidTheme(t *testing.T) {
	if !IsValidTheme("nord") {
		t.Error("nord should be valid")
	}
	if IsValidTheme("monokai-pro") {
		t.Error("unregistered theme should be invalid")
	}
}

func TestSetActiveTheme(t *testing.T) {
	t.Cleanup(func() { SetActiveTheme(ThemeDefault) })

	SetActiveTheme(ThemeNord)
	if ActiveThemeName() != ThemeNord {
		t.Errorf("ActiveThemeName() = %q", ActiveThemeName())
	}
	if Active().PrimaryColor != NordPalette().Primary {
		t.Errorf("PrimaryColor = %q, want nord primary", Active().PrimaryColor)
	}

	SetActiveTheme(ThemeDefault)
	if Active().PrimaryColor != DefaultPalette().Primary {
		t.Error("switching back should restore the default palette")
	}
}
