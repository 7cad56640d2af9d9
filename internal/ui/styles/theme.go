// Package styles holds the colour palette of the profile screen.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the palette and pre-built styles.
type Theme struct {
	Accent  lipgloss.Color // tint of navigation buttons and toggles
	OnImage lipgloss.Color // controls drawn over the expanded avatar

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgBase   lipgloss.Color // screen background
	BgRaised lipgloss.Color // opaque header and cells
	Divider  lipgloss.Color
	Island   lipgloss.Color // capsule fill

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Accent  lipgloss.Style
	OnImage lipgloss.Style
	Divider lipgloss.Style
	Key     lipgloss.Style // help line keys
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Accent:  lipgloss.Color("#0a84ff"),
	OnImage: lipgloss.Color("#ffffff"),

	FgBase:   lipgloss.Color("#f2f2f7"),
	FgMuted:  lipgloss.Color("#8e8e93"),
	FgSubtle: lipgloss.Color("#48484a"),

	BgBase:   lipgloss.Color("#1c1c1e"),
	BgRaised: lipgloss.Color("#2c2c2e"),
	Divider:  lipgloss.Color("#3a3a3c"),
	Island:   lipgloss.Color("#000000"),

	Success: lipgloss.Color("#30d158"),
	Error:   lipgloss.Color("#ff453a"),
	Warning: lipgloss.Color("#ff9f0a"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Accent:  lipgloss.NewStyle().Foreground(t.Accent),
		OnImage: lipgloss.NewStyle().Foreground(t.OnImage).Bold(true),
		Divider: lipgloss.NewStyle().Foreground(t.Divider),
		Key: lipgloss.NewStyle().
			Foreground(t.FgMuted).
			Bold(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
