// Package layout provides pure functions converting between points and
// terminal cells and splitting the screen into regions.
package layout

import (
	"math"

	"github.com/llehouerou/islandprofile/internal/motion"
)

const (
	// NavBarHeight is the row of navigation buttons under the status area.
	NavBarHeight = 1
	// HelpBarHeight is the bottom row with key hints or the status message.
	HelpBarHeight = 1
	// MinViewportRows is what the status area must leave to the scroll view.
	MinViewportRows = 3
)

// Grid maps points to terminal cells. A cell is PointsPerColumn wide and
// PointsPerRow tall; half-block pixels are square when the row is twice the
// column.
type Grid struct {
	PointsPerColumn float64
	PointsPerRow    float64
}

// DefaultGrid assumes an 8x16 point cell.
func DefaultGrid() Grid {
	return Grid{PointsPerColumn: 8, PointsPerRow: 16}
}

func (g Grid) normalized() Grid {
	d := DefaultGrid()
	if g.PointsPerColumn <= 0 {
		g.PointsPerColumn = d.PointsPerColumn
	}
	if g.PointsPerRow <= 0 {
		g.PointsPerRow = d.PointsPerRow
	}
	return g
}

// Cols converts a horizontal distance to the nearest column count.
func (g Grid) Cols(points float64) int {
	g = g.normalized()
	return int(math.Round(points / g.PointsPerColumn))
}

// Rows converts a vertical distance to the nearest row count.
func (g Grid) Rows(points float64) int {
	g = g.normalized()
	return int(math.Round(points / g.PointsPerRow))
}

// X converts columns to points.
func (g Grid) X(cols int) float64 {
	return float64(cols) * g.normalized().PointsPerColumn
}

// Y converts rows to points.
func (g Grid) Y(rows int) float64 {
	return float64(rows) * g.normalized().PointsPerRow
}

// PixelPoints is the edge of one half-block pixel in points, measured
// horizontally.
func (g Grid) PixelPoints() float64 {
	return g.normalized().PointsPerColumn
}

// Frame is the row split of the terminal.
type Frame struct {
	Width        int
	Height       int
	StatusRows   int // simulated status bar with the island
	NavRow       int
	ViewportTop  int
	ViewportRows int
	HelpRow      int // -1 when hidden
}

// Screen splits a window of width x height cells. The status area shrinks
// before the viewport drops under MinViewportRows.
func Screen(width, height, statusRows int, help bool) Frame {
	helpRows := 0
	if help {
		helpRows = HelpBarHeight
	}
	available := max(height-NavBarHeight-helpRows, 0)
	statusRows = max(min(statusRows, available-MinViewportRows), 0)

	f := Frame{
		Width:        width,
		Height:       height,
		StatusRows:   statusRows,
		NavRow:       statusRows,
		ViewportTop:  statusRows + NavBarHeight,
		ViewportRows: max(available-statusRows, 0),
		HelpRow:      -1,
	}
	if help && height > 0 {
		f.HelpRow = height - 1
	}
	return f
}

// MaxScroll is the largest positive offset of content in a viewport.
func MaxScroll(contentHeight, viewportHeight float64) float64 {
	return math.Max(0, contentHeight-viewportHeight)
}

// SnapTarget returns the offset that brings the header to anchor. Top puts
// the header's top edge at the viewport top; Bottom puts its bottom edge at
// the viewport bottom. The result stays within [0, maxScroll].
func SnapTarget(anchor motion.Anchor, headerTop, headerBottom, viewport, maxScroll float64) float64 {
	var target float64
	if anchor == motion.AnchorTop {
		target = headerTop
	} else {
		target = headerBottom - viewport
	}
	return math.Max(0, math.Min(target, maxScroll))
}
