// Package island draws the simulated status bar: a clock, the island
// capsule and a battery level.
package island

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/islandprofile/internal/motion"
	"github.com/llehouerou/islandprofile/internal/ui/layout"
	"github.com/llehouerou/islandprofile/internal/ui/overlay"
	"github.com/llehouerou/islandprofile/internal/ui/render"
	"github.com/llehouerou/islandprofile/internal/ui/styles"
)

// Battery is the fixed charge shown on the right.
const Battery = "100%"

// Capsule is the island geometry in cells.
type Capsule struct {
	Col  int
	Row  int
	Cols int
	Rows int
}

// Place fits the capsule of s into a status area of width x rows cells. It
// reports false when nothing should be drawn.
func Place(s motion.IslandState, g layout.Grid, width, rows int) (Capsule, bool) {
	if !s.Visible() || rows <= 0 {
		return Capsule{}, false
	}
	scale := s.Scale
	if scale <= 0 {
		scale = 1
	}
	c := Capsule{
		Cols: min(max(g.Cols(s.Size.Width*scale), 2), width),
		Rows: min(max(g.Rows(s.Size.Height*scale), 1), rows),
	}
	c.Col = (width - c.Cols) / 2
	c.Row = max(min(g.Rows(s.TopPadding), rows-c.Rows), 0)
	return c, true
}

// Render returns rows lines of width cells. The clock sits left of the
// capsule's middle row and the battery on the right.
func Render(s motion.IslandState, g layout.Grid, width, rows int, clock string) string {
	if rows <= 0 || width <= 0 {
		return ""
	}
	t := styles.T()
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = render.Blank(width)
	}

	c, shown := Place(s, g, width, rows)
	infoRow := rows / 2
	if shown {
		infoRow = c.Row + c.Rows/2
	}
	lines[infoRow] = render.Bar(
		" "+t.S().Title.Render(clock),
		"",
		t.S().Base.Render(Battery)+" ",
		width,
	)
	if !shown {
		return strings.Join(lines, "\n")
	}

	fill := styles.Fade(t.Island, t.BgBase, s.Alpha)
	body := make([]string, c.Rows)
	for i := range body {
		body[i] = capsuleRow(c.Cols, fill)
	}
	lines = overlay.Compose(lines, width, overlay.Layer{
		Content: strings.Join(body, "\n"),
		Col:     c.Col,
		Row:     c.Row,
	})
	return strings.Join(lines, "\n")
}

// capsuleRow is one row of the capsule with half-cell rounded ends.
func capsuleRow(cols int, fill lipgloss.Color) string {
	style := lipgloss.NewStyle().Foreground(fill)
	if cols < 3 {
		return style.Render(strings.Repeat("█", cols))
	}
	return style.Render("▐" + strings.Repeat("█", cols-2) + "▌")
}
