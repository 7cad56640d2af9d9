// Package header renders the name block under the avatar: the title, the
// phone and nickname line, and the bottom padding.
package header

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/islandprofile/internal/motion"
	"github.com/llehouerou/islandprofile/internal/profile"
	"github.com/llehouerou/islandprofile/internal/ui/layout"
	"github.com/llehouerou/islandprofile/internal/ui/render"
	"github.com/llehouerou/islandprofile/internal/ui/styles"
)

// expandedIndent is the left inset of the title drawn over the full avatar.
const expandedIndent = 2

// Options carry the presentation values the header follows.
type Options struct {
	Width     int
	Grid      layout.Grid
	Mode      motion.PresentationMode
	Params    motion.VisualParameters
	Layout    motion.HeaderLayout
	Constants motion.Constants
}

// Height is the number of rows Render returns for o.
func Height(o Options) int {
	h := 1
	if descriptionVisible(o) {
		h++
	}
	return h + paddingRows(o)
}

// Render returns Height(o) lines of o.Width cells.
func Render(u profile.User, o Options) string {
	if o.Width <= 0 {
		return ""
	}
	t := styles.T()
	bg := t.BgBase
	fill := lipgloss.NewStyle()
	if o.Layout.OpaqueBackground {
		bg = t.BgRaised
		fill = fill.Background(bg)
	}

	lines := []string{title(u.Title(), o, fill)}
	if descriptionVisible(o) {
		fg := styles.Fade(t.FgMuted, bg, o.Params.HeaderOpacity)
		text := render.Truncate(u.Description(), o.Width)
		lines = append(lines, fill.Foreground(fg).
			Width(o.Width).
			Align(lipgloss.Center).
			Render(text))
	}
	for range paddingRows(o) {
		lines = append(lines, fill.Width(o.Width).Render(""))
	}
	return strings.Join(lines, "\n")
}

// Tracking is the letter spacing standing in for the title font size: one
// space between letters above the midpoint of the body and title sizes.
func Tracking(size float64, c motion.Constants) int {
	if size >= (c.BodyFontSize+c.Title1FontSize)/2 {
		return 1
	}
	return 0
}

func title(name string, o Options, fill lipgloss.Style) string {
	s := styles.T().S()
	if o.Mode == motion.Expanded {
		// Drawn over the image, smaller and aligned left.
		text := render.Truncate(name, o.Width-expandedIndent)
		return s.OnImage.Inherit(fill).
			Width(o.Width).
			PaddingLeft(expandedIndent).
			Render(text)
	}
	text := render.Truncate(render.Track(name, Tracking(o.Params.TitleFontSize, o.Constants)), o.Width)
	return s.Title.Inherit(fill).
		Width(o.Width).
		Align(lipgloss.Center).
		Render(text)
}

// Divider is the hairline under a pinned header.
func Divider(width int) string {
	return styles.T().S().Divider.Render(render.Separator(width))
}

func descriptionVisible(o Options) bool {
	return o.Layout.DescriptionHeight >= o.Grid.Y(1)/2
}

func paddingRows(o Options) int {
	return max(o.Grid.Rows(o.Params.HeaderPadding), 0)
}
