// Package navbar renders the row of navigation buttons above the scroll
// view. Which buttons show depends on whether the avatar has scrolled away.
package navbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/islandprofile/internal/ui/render"
	"github.com/llehouerou/islandprofile/internal/ui/styles"
)

// Height is the fixed height of the bar.
const Height = 1

// SwapDuration is how long the buttons take to fade in after a swap.
const SwapDuration = 200 // milliseconds

// Button labels.
const (
	QR     = "⌗ QR"
	Edit   = "Edit"
	Search = "⌕ Search"
)

// State is everything the bar depends on.
type State struct {
	AvatarScrolledAway bool
	Expanded           bool    // Edit turns white over the full avatar
	Pinning            bool    // search is only offered with a pinned header
	Title              string  // shown when the header has left the screen
	Reveal             float64 // 0..1 progress of the last button swap
}

// Render returns one row of width cells.
func Render(s State, width int) string {
	if width <= 0 {
		return ""
	}
	t := styles.T()
	accent := styles.Fade(t.Accent, t.BgBase, s.Reveal)
	button := lipgloss.NewStyle().Foreground(accent)

	if !s.AvatarScrolledAway {
		edit := button
		if s.Expanded {
			edit = lipgloss.NewStyle().Foreground(styles.Fade(t.OnImage, t.BgBase, s.Reveal)).Bold(true)
		}
		return render.Bar(" "+button.Render(QR), "", edit.Render(Edit)+" ", width)
	}

	if s.Pinning {
		return render.Bar("", "", button.Render(Search)+" ", width)
	}
	title := lipgloss.NewStyle().
		Foreground(styles.Fade(t.FgBase, t.BgBase, s.Reveal)).
		Bold(true).
		Render(render.Truncate(s.Title, max(width/2, 1)))
	return render.Bar("", title, "", width)
}
