package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault        ThemeName = "default"         // Purple/green dark theme
	ThemeDracula        ThemeName = "dracula"         // Dracula theme colors
	ThemeNord           ThemeName = "nord"            // Nord theme - cool blue-gray
	ThemeGruvbox        ThemeName = "gruvbox"         // Gruvbox retro groove
	ThemeSolarizedLight ThemeName = "solarized-light" // Solarized Light for bright terminals
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeDracula),
		string(ThemeNord),
		string(ThemeGruvbox),
		string(ThemeSolarizedLight),
	}
}

// ValidThemes returns all valid theme names (built-in + custom).
func ValidThemes() []string {
	return append(BuiltinThemes(), CustomThemeNames()...)
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func IsValidTheme(name string) bool {
	return IsBuiltinTheme(name) || IsCustomTheme(name)
}

// IsBuiltinTheme checks if a theme name is a built-in theme.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent (titles, active tab, selection)
	Primary lipgloss.Color
	// Secondary accent (success messages, bullets)
	Secondary lipgloss.Color
	// Warning (loading, confirmation prompts)
	Warning lipgloss.Color
	// Error (error banner)
	Error lipgloss.Color
	// Muted (help text, timestamps)
	Muted lipgloss.Color
	// Surface (banner and modal backgrounds)
	Surface lipgloss.Color
	// Text (primary text)
	Text lipgloss.Color
	// Border (cards, inputs)
	Border lipgloss.Color
	// Heading colors for rendered documents, level 1 to 3
	Heading1 lipgloss.Color
	Heading2 lipgloss.Color
	Heading3 lipgloss.Color
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500
		Heading1:  lipgloss.Color("#A78BFA"),
		Heading2:  lipgloss.Color("#60A5FA"), // Blue
		Heading3:  lipgloss.Color("#FBBF24"), // Yellow
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Dracula purple
		Secondary: lipgloss.Color("#50FA7B"), // Dracula green
		Warning:   lipgloss.Color("#F1FA8C"), // Dracula yellow
		Error:     lipgloss.Color("#FF5555"), // Dracula red
		Muted:     lipgloss.Color("#6272A4"), // Dracula comment
		Surface:   lipgloss.Color("#282A36"), // Dracula background
		Text:      lipgloss.Color("#F8F8F2"), // Dracula foreground
		Border:    lipgloss.Color("#44475A"), // Dracula selection
		Heading1:  lipgloss.Color("#FF79C6"), // Pink
		Heading2:  lipgloss.Color("#8BE9FD"), // Cyan
		Heading3:  lipgloss.Color("#FFB86C"), // Orange
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Nord frost (cyan)
		Secondary: lipgloss.Color("#A3BE8C"), // Nord aurora green
		Warning:   lipgloss.Color("#EBCB8B"), // Nord aurora yellow
		Error:     lipgloss.Color("#BF616A"), // Nord aurora red
		Muted:     lipgloss.Color("#4C566A"), // Nord polar night 3
		Surface:   lipgloss.Color("#2E3440"), // Nord polar night 0
		Text:      lipgloss.Color("#ECEFF4"), // Nord snow storm 2
		Border:    lipgloss.Color("#3B4252"), // Nord polar night 1
		Heading1:  lipgloss.Color("#88C0D0"),
		Heading2:  lipgloss.Color("#81A1C1"), // Frost blue
		Heading3:  lipgloss.Color("#B48EAD"), // Aurora purple
	}
}

// GruvboxPalette returns the Gruvbox dark palette.
func GruvboxPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#FE8019"), // Orange
		Secondary: lipgloss.Color("#B8BB26"), // Green
		Warning:   lipgloss.Color("#FABD2F"), // Yellow
		Error:     lipgloss.Color("#FB4934"), // Red
		Muted:     lipgloss.Color("#928374"), // Gray
		Surface:   lipgloss.Color("#282828"), // bg0
		Text:      lipgloss.Color("#EBDBB2"), // fg1
		Border:    lipgloss.Color("#504945"), // bg2
		Heading1:  lipgloss.Color("#FE8019"),
		Heading2:  lipgloss.Color("#83A598"), // Blue
		Heading3:  lipgloss.Color("#D3869B"), // Purple
	}
}

// SolarizedLightPalette returns the Solarized Light palette.
func SolarizedLightPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#268BD2"), // Blue
		Secondary: lipgloss.Color("#859900"), // Green
		Warning:   lipgloss.Color("#B58900"), // Yellow
		Error:     lipgloss.Color("#DC322F"), // Red
		Muted:     lipgloss.Color("#657B83"), // base00
		Surface:   lipgloss.Color("#EEE8D5"), // base2
		Text:      lipgloss.Color("#073642"), // base02
		Border:    lipgloss.Color("#93A1A1"), // base1
		Heading1:  lipgloss.Color("#6C71C4"), // Violet
		Heading2:  lipgloss.Color("#268BD2"),
		Heading3:  lipgloss.Color("#2AA198"), // Cyan
	}
}

// GetPalette returns the color palette for the given theme name.
// Checks custom themes first, then falls back to built-in themes.
// Returns the default palette for unknown theme names.
func GetPalette(name ThemeName) *ColorPalette {
	if custom := GetCustomTheme(name); custom != nil {
		return custom.ToPalette()
	}

	switch name {
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	case ThemeGruvbox:
		return GruvboxPalette()
	case ThemeSolarizedLight:
		return SolarizedLightPalette()
	default:
		return DefaultPalette()
	}
}
