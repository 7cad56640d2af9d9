// Package debug renders a small box with the live motion values.
package debug

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/islandprofile/internal/motion"
	"github.com/llehouerou/islandprofile/internal/ui/render"
	"github.com/llehouerou/islandprofile/internal/ui/styles"
)

// Info is what the overlay shows besides the presentation.
type Info struct {
	Variant string
	Frames  int // frames rendered since start
	Snap    motion.SnapDecision
}

// Lines returns the label/value pairs in display order.
func Lines(p motion.Presentation, info Info) [][2]string {
	v := p.Params
	snap := "none"
	if info.Snap.ShouldSnap {
		snap = info.Snap.Anchor.String()
	}
	return [][2]string{
		{"variant", info.Variant},
		{"offset", num(p.Offset.Y)},
		{"mode", p.Mode.String()},
		{"drag", fmt.Sprint(p.Dragging)},
		{"scale", num(v.Scale)},
		{"island", num(v.IslandScale)},
		{"avatar α", num(v.AvatarOpacity)},
		{"header α", num(v.HeaderOpacity)},
		{"blur", num(v.BlurRadius)},
		{"title pt", num(v.TitleFontSize)},
		{"padding", num(v.HeaderPadding)},
		{"snap", snap},
		{"frames", humanize.Comma(int64(info.Frames))},
	}
}

// Render draws the overlay box, width cells wide including its border.
func Render(p motion.Presentation, info Info, width int) string {
	t := styles.T()
	inner := max(width-4, 1)

	rows := Lines(p, info)
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r[0]))
	}

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		label := t.S().Muted.Render(render.Pad(r[0], labelWidth))
		line := label + " " + t.S().Base.Render(r[1])
		out = append(out, render.Pad(line, inner))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Warning).
		Padding(0, 1).
		Width(inner + 2).
		Render(strings.Join(out, "\n"))
}

// num rounds to two decimals; FtoaWithDigits alone truncates.
func num(f float64) string {
	return humanize.FtoaWithDigits(math.Round(f*100)/100, 2)
}
