// internal/app/content.go
package app

import (
	"strings"

	"github.com/llehouerou/islandprofile/internal/keymap"
	"github.com/llehouerou/islandprofile/internal/motion"
	"github.com/llehouerou/islandprofile/internal/ui/cells"
	"github.com/llehouerou/islandprofile/internal/ui/header"
	"github.com/llehouerou/islandprofile/internal/ui/layout"
	"github.com/llehouerou/islandprofile/internal/ui/render"
)

// contentRow is one line of the scroll view. Opaque rows replace what is
// under them; the others let the avatar show through their blank cells.
type contentRow struct {
	text   string
	opaque bool
}

// content is the row split of the scrollable column.
type content struct {
	spacer  int // room for the collapsed avatar
	header  int
	drift   int // expanded header travel
	padding int // grows with the offset while scrolling down
	cells   int
}

func (c content) headerTop() int { return c.spacer }
func (c content) cellsTop() int  { return c.spacer + c.header + c.padding }
func (c content) rows() int      { return c.cellsTop() + c.cells + 1 }

func (m Model) frame() layout.Frame {
	return layout.Screen(m.Width, m.Height, m.device.StatusRows(), true)
}

func (m Model) toggles() []cells.Toggle {
	return []cells.Toggle{
		{Label: "Zoom Effect", Key: m.keyFor(keymap.ActionToggleZoom), On: m.motion.ZoomEffect()},
		{Label: "Header Paging", Key: m.keyFor(keymap.ActionTogglePaging), On: m.motion.HeaderPaging()},
		{Label: "Header Pinning", Key: m.keyFor(keymap.ActionTogglePinning), On: m.Pinning},
		{Label: "Indicators", Key: m.keyFor(keymap.ActionToggleIndicators), On: m.Indicators},
	}
}

func (m Model) headerOptions(p motion.Presentation) header.Options {
	return header.Options{
		Width:     m.Width,
		Grid:      m.device.Grid(),
		Mode:      p.Mode,
		Params:    p.Params,
		Layout:    p.Header,
		Constants: m.motion.Config().Constants,
	}
}

func (m Model) contentLayout(p motion.Presentation) content {
	cfg := m.motion.Config()
	g := m.device.Grid()
	return content{
		spacer:  g.Rows(cfg.Constants.ImageSize + cfg.Geometry.CollapsedTopAnchor),
		header:  header.Height(m.headerOptions(p)),
		drift:   g.Rows(p.Header.Offset),
		padding: max(g.Rows(p.Header.ContentTopPadding), 0),
		cells:   cells.Rows(m.toggles(), m.ui.CellCount),
	}
}

// maxScroll is the largest offset in points for the current layout.
func (m Model) maxScroll() float64 {
	p := m.motion.Current()
	g := m.device.Grid()
	return layout.MaxScroll(g.Y(m.contentLayout(p).rows()), g.Y(m.frame().ViewportRows))
}

// snapTarget converts an anchor into an offset in points.
func (m Model) snapTarget(a motion.Anchor) float64 {
	p := m.motion.Current()
	g := m.device.Grid()
	c := m.contentLayout(p)
	return layout.SnapTarget(a,
		g.Y(c.headerTop()),
		g.Y(c.headerTop()+c.header),
		g.Y(m.frame().ViewportRows),
		m.maxScroll(),
	)
}

// contentRows renders the whole scrollable column.
func (m Model) contentRows(p motion.Presentation, c content) []contentRow {
	rows := make([]contentRow, c.rows())
	blank := render.Blank(m.Width)
	for i := range rows {
		rows[i] = contentRow{text: blank}
	}

	top := max(c.headerTop()+c.drift, 0)
	for i, line := range strings.Split(header.Render(m.user, m.headerOptions(p)), "\n") {
		if top+i < len(rows) {
			rows[top+i] = contentRow{text: line, opaque: p.Header.OpaqueBackground}
		}
	}

	for i, line := range cells.Render(m.toggles(), m.ui.CellCount, m.Width, m.mouse.hover) {
		if c.cellsTop()+i < len(rows) {
			rows[c.cellsTop()+i] = contentRow{text: line, opaque: true}
		}
	}
	return rows
}

func (m Model) keyFor(a keymap.Action) string {
	if keys := m.resolver.KeysFor(a); len(keys) > 0 {
		return keys[0]
	}
	return ""
}

// scrollRows is the offset in whole rows; negative while pulled.
func (m Model) scrollRows() int {
	return m.device.Grid().Rows(m.scroll.y)
}

// pinned reports whether the header sticks to the viewport top.
func (m Model) pinned(p motion.Presentation, c content) bool {
	return m.Pinning && p.Mode == motion.Collapsed && m.scrollRows() > c.headerTop()
}

// toggleAt returns the toggle under viewport row vr, or -1.
func (m Model) toggleAt(vr int) int {
	p := m.motion.Current()
	c := m.contentLayout(p)
	if m.pinned(p, c) {
		covered := c.header
		if p.Header.DividerVisible {
			covered++
		}
		if vr < covered {
			return -1
		}
	}
	return cells.Hit(m.toggles(), vr+m.scrollRows()-c.cellsTop())
}
