// Package styles defines the lipgloss styles used by the planner TUI and the
// color themes they are built from. Built-in palettes can be extended with
// YAML theme files placed in the themes directory.
package styles

import "github.com/charmbracelet/lipgloss"

// ThemedStyles contains all the lipgloss styles built from a color palette.
// Styles are regenerated when the theme changes.
type ThemedStyles struct {
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	WarningColor   lipgloss.Color
	ErrorColor     lipgloss.Color
	MutedColor     lipgloss.Color
	SurfaceColor   lipgloss.Color
	TextColor      lipgloss.Color
	BorderColor    lipgloss.Color

	// Convenience styles for colors
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style

	// Header and navigation
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	NavActive   lipgloss.Style
	NavInactive lipgloss.Style

	// Result tabs
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// History cards
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	CardMeta     lipgloss.Style

	// Form
	Label          lipgloss.Style
	RequiredMark   lipgloss.Style
	InputBox       lipgloss.Style
	InputBoxActive lipgloss.Style
	Button         lipgloss.Style
	ButtonActive   lipgloss.Style

	// Messages
	ErrorBanner lipgloss.Style
	SuccessMsg  lipgloss.Style
	Modal       lipgloss.Style

	// Rendered documents
	Heading1  lipgloss.Style
	Heading2  lipgloss.Style
	Heading3  lipgloss.Style
	Bullet    lipgloss.Style
	Strong    lipgloss.Style
	Paragraph lipgloss.Style
	Code      lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style
}

// NewThemedStyles creates a ThemedStyles from the given color palette.
func NewThemedStyles(p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{
		PrimaryColor:   p.Primary,
		SecondaryColor: p.Secondary,
		WarningColor:   p.Warning,
		ErrorColor:     p.Error,
		MutedColor:     p.Muted,
		SurfaceColor:   p.Surface,
		TextColor:      p.Text,
		BorderColor:    p.Border,
	}

	s.Primary = lipgloss.NewStyle().Foreground(p.Primary)
	s.Secondary = lipgloss.NewStyle().Foreground(p.Secondary)
	s.Warning = lipgloss.NewStyle().Foreground(p.Warning)
	s.Error = lipgloss.NewStyle().Foreground(p.Error)
	s.Muted = lipgloss.NewStyle().Foreground(p.Muted)
	s.Text = lipgloss.NewStyle().Foreground(p.Text)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)
	s.Subtitle = lipgloss.NewStyle().Foreground(p.Muted)
	s.NavActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Surface).
		Background(p.Primary).
		Padding(0, 2)
	s.NavInactive = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 2)

	s.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Primary).
		Padding(0, 2)
	s.TabInactive = lipgloss.NewStyle().
		Foreground(p.Muted).
		Background(p.Surface).
		Padding(0, 2)

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	s.CardSelected = s.Card.
		BorderForeground(p.Primary)
	s.CardTitle = lipgloss.NewStyle().Bold(true).Foreground(p.Text)
	s.CardMeta = lipgloss.NewStyle().Foreground(p.Muted)

	s.Label = lipgloss.NewStyle().Bold(true).Foreground(p.Text)
	s.RequiredMark = lipgloss.NewStyle().Foreground(p.Error)
	s.InputBox = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	s.InputBoxActive = s.InputBox.
		BorderForeground(p.Primary)
	s.Button = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Border).
		Padding(0, 2)
	s.ButtonActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Surface).
		Background(p.Secondary).
		Padding(0, 2)

	s.ErrorBanner = lipgloss.NewStyle().
		Foreground(p.Error).
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Error).
		Padding(0, 1)
	s.SuccessMsg = lipgloss.NewStyle().Foreground(p.Secondary)
	s.Modal = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(p.Warning).
		Padding(1, 2)

	s.Heading1 = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(p.Heading1).MarginTop(1)
	s.Heading2 = lipgloss.NewStyle().Bold(true).Foreground(p.Heading2).MarginTop(1)
	s.Heading3 = lipgloss.NewStyle().Bold(true).Foreground(p.Heading3)
	s.Bullet = lipgloss.NewStyle().Foreground(p.Secondary).PaddingLeft(2)
	s.Strong = lipgloss.NewStyle().Bold(true).Foreground(p.Text)
	s.Paragraph = lipgloss.NewStyle().Foreground(p.Text)
	s.Code = lipgloss.NewStyle().Foreground(p.Muted)

	s.HelpBar = lipgloss.NewStyle().Foreground(p.Muted).MarginTop(1)
	s.HelpKey = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)

	return s
}

var (
	activeTheme     = NewThemedStyles(DefaultPalette())
	activeThemeName = ThemeDefault
)

// SetActiveTheme switches the active styles to the named theme. Unknown names
// fall back to the default palette.
//
// Not thread-safe: call it from the Bubble Tea update loop only.
func SetActiveTheme(name ThemeName) {
	activeTheme = NewThemedStyles(GetPalette(name))
	activeThemeName = name
}

// Active returns the currently active themed styles.
func Active() *ThemedStyles {
	return activeTheme
}

// ActiveThemeName returns the name passed to the last SetActiveTheme call.
func ActiveThemeName() ThemeName {
	return activeThemeName
}
