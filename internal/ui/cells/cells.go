// Package cells renders the settings list under the header: one row per
// runtime toggle followed by placeholder cells that give the screen
// something to scroll.
package cells

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/islandprofile/internal/ui/render"
	"github.com/llehouerou/islandprofile/internal/ui/styles"
)

// Toggle is one switchable setting.
type Toggle struct {
	Label string
	Key   string // shortcut shown next to the label
	On    bool
}

// Switch glyphs.
const (
	SwitchOn  = "━●"
	SwitchOff = "○━"
)

// placeholderWidths cycle to give the empty cells an uneven look.
var placeholderWidths = []float64{0.6, 0.4, 0.75, 0.5, 0.65}

// Rows is the number of lines Render returns.
func Rows(toggles []Toggle, empty int) int {
	n := len(toggles) + max(empty, 0)
	if len(toggles) > 0 && empty > 0 {
		n++ // gap between the two groups
	}
	return n
}

// Hit returns the toggle index at line row of the rendered list, or -1.
func Hit(toggles []Toggle, row int) int {
	if row < 0 || row >= len(toggles) {
		return -1
	}
	return row
}

// Render returns Rows(toggles, empty) lines of width cells. selected
// highlights one toggle; pass -1 for none.
func Render(toggles []Toggle, empty, width, selected int) []string {
	if width <= 0 {
		return nil
	}
	lines := make([]string, 0, Rows(toggles, empty))
	for i, t := range toggles {
		lines = append(lines, toggleRow(t, width, i == selected))
	}
	if len(toggles) > 0 && empty > 0 {
		lines = append(lines, render.Blank(width))
	}
	for i := range max(empty, 0) {
		lines = append(lines, emptyRow(i, width))
	}
	return lines
}

func toggleRow(t Toggle, width int, selected bool) string {
	theme := styles.T()
	style := styles.CellStyle(selected)
	inner := max(width-style.GetHorizontalPadding(), 0)

	sw := lipgloss.NewStyle().Background(theme.BgRaised).Foreground(theme.FgSubtle).Render(SwitchOff)
	if t.On {
		sw = lipgloss.NewStyle().Background(theme.BgRaised).Foreground(theme.Success).Render(SwitchOn)
	}
	key := ""
	if t.Key != "" {
		key = lipgloss.NewStyle().Background(theme.BgRaised).Foreground(theme.FgMuted).Render("[" + t.Key + "] ")
	}
	label := render.Truncate(t.Label, max(inner-lipgloss.Width(sw)-lipgloss.Width(key)-1, 0))
	gap := max(inner-lipgloss.Width(label)-lipgloss.Width(key)-lipgloss.Width(sw), 0)

	bg := lipgloss.NewStyle().Background(theme.BgRaised)
	return style.Width(width).Render(label + bg.Render(strings.Repeat(" ", gap)) + key + sw)
}

func emptyRow(i, width int) string {
	theme := styles.T()
	style := styles.CellStyle(false)
	inner := max(width-style.GetHorizontalPadding(), 0)
	n := int(float64(inner) * placeholderWidths[i%len(placeholderWidths)])
	bar := lipgloss.NewStyle().Background(theme.BgRaised).Foreground(theme.FgSubtle).Render(strings.Repeat("▔", n))
	return style.Width(width).Render(bar)
}
