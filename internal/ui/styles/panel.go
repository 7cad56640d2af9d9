package styles

import "github.com/charmbracelet/lipgloss"

// CellStyle returns the style of a settings cell row.
func CellStyle(selected bool) lipgloss.Style {
	t := T()
	style := lipgloss.NewStyle().
		Background(t.BgRaised).
		Foreground(t.FgBase).
		Padding(0, 1)
	if selected {
		style = style.
			Background(Mix(t.BgRaised, t.Accent, 0.15)).
			Foreground(t.Accent).
			Bold(true)
	}
	return style
}
