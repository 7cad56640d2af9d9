// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/islandprofile/internal/motion"
	"github.com/llehouerou/islandprofile/internal/ui/avatar"
	"github.com/llehouerou/islandprofile/internal/ui/debug"
	"github.com/llehouerou/islandprofile/internal/ui/header"
	"github.com/llehouerou/islandprofile/internal/ui/island"
	"github.com/llehouerou/islandprofile/internal/ui/layout"
	"github.com/llehouerou/islandprofile/internal/ui/navbar"
	"github.com/llehouerou/islandprofile/internal/ui/overlay"
	"github.com/llehouerou/islandprofile/internal/ui/render"
	"github.com/llehouerou/islandprofile/internal/ui/styles"
)

// debugWidth is the width of the debug overlay box.
const debugWidth = 26

// clockFormat is the status bar time.
const clockFormat = "15:04"

// View renders the application UI. Layers from bottom to top: avatar,
// scroll content, navigation bar, status bar with the island.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	p := m.motion.Current()
	f := m.frame()

	lines := make([]string, f.Height)
	blank := render.Blank(f.Width)
	for i := range lines {
		lines[i] = blank
	}

	lines = overlay.Compose(lines, f.Width, m.avatarLayer(p, f))
	m.drawViewport(lines, p, f)

	nav := navbar.Render(navbar.State{
		AvatarScrolledAway: p.AvatarScrolledAway,
		Expanded:           p.Mode == motion.Expanded,
		Pinning:            m.Pinning,
		Title:              m.user.Title(),
		Reveal:             m.navReveal(),
	}, f.Width)
	status := island.Render(p.Island, m.device.Grid(), f.Width, f.StatusRows, m.now().Format(clockFormat))
	lines = overlay.Compose(lines, f.Width,
		overlay.Layer{Content: nav, Row: f.NavRow},
		overlay.Layer{Content: status},
	)

	if m.Indicators {
		lines = overlay.Compose(lines, f.Width, m.indicatorLayer(p, f))
	}
	if m.Debug {
		box := debug.Render(p, debug.Info{Variant: m.variant, Frames: m.frames, Snap: m.motion.LastSnap()}, debugWidth)
		lines = overlay.Compose(lines, f.Width, overlay.Layer{
			Content: box,
			Col:     max(f.Width-debugWidth, 0),
			Row:     f.ViewportTop,
		})
	}
	if m.help.ShowAll {
		lines = overlay.Compose(lines, f.Width, m.fullHelpLayer(f))
	}
	if f.HelpRow >= 0 {
		lines[f.HelpRow] = m.renderHelpRow(f.Width)
	}
	return strings.Join(lines, "\n")
}

// avatarRect is the placement of the avatar in screen cells.
type avatarRect struct {
	col, row, cols, rows int
	radius               float64 // pixels
}

// placeAvatar scales the avatar around its centre and moves it with the
// offset. Rows may be negative; the compositor clips them.
func (m Model) placeAvatar(p motion.Presentation, f layout.Frame) avatarRect {
	g := m.device.Grid()
	l := m.morph.at(m.now(), p.Avatar)
	scale := p.Params.Scale

	w, h := l.Width*scale, l.Height*scale
	top := l.TopAnchor + p.AvatarOffset + (l.Height-h)/2
	r := avatarRect{
		cols:   min(g.Cols(w), f.Width),
		rows:   g.Rows(h),
		radius: l.CornerRadius * scale / g.PixelPoints(),
	}
	r.col = (f.Width - r.cols) / 2
	r.row = f.ViewportTop + g.Rows(top)
	return r
}

func (m Model) avatarLayer(p motion.Presentation, f layout.Frame) overlay.Layer {
	r := m.placeAvatar(p, f)
	block := m.avatar.Render(avatar.Options{
		Cols:       r.cols,
		Rows:       r.rows,
		Radius:     r.radius,
		Opacity:    p.Params.AvatarOpacity,
		Blur:       p.Params.BlurRadius,
		Background: styles.T().BgBase,
	})
	return overlay.Layer{Content: block, Col: r.col, Row: r.row}
}

// hitAvatar reports whether screen cell (x, y) lies on the visible avatar.
func (m Model) hitAvatar(x, y int) bool {
	p := m.motion.Current()
	if p.Params.AvatarOpacity <= 0 {
		return false
	}
	r := m.placeAvatar(p, m.frame())
	return x >= r.col && x < r.col+r.cols && y >= r.row && y < r.row+r.rows
}

// drawViewport draws the scroll content into lines, with the header pinned
// to the top once it would scroll out.
func (m Model) drawViewport(lines []string, p motion.Presentation, f layout.Frame) {
	c := m.contentLayout(p)
	rows := m.contentRows(p, c)
	offset := m.scrollRows()

	for i := range f.ViewportRows {
		ci := i + offset
		if ci < 0 || ci >= len(rows) {
			continue
		}
		m.drawRow(lines, f.ViewportTop+i, rows[ci], f.Width)
	}

	if !m.pinned(p, c) {
		return
	}
	pinned := strings.Split(header.Render(m.user, m.headerOptions(p)), "\n")
	if p.Header.DividerVisible {
		pinned = append(pinned, header.Divider(f.Width))
	}
	for i, line := range pinned {
		if i < f.ViewportRows {
			m.drawRow(lines, f.ViewportTop+i, contentRow{text: line, opaque: true}, f.Width)
		}
	}
}

func (m Model) drawRow(lines []string, at int, r contentRow, width int) {
	if at < 0 || at >= len(lines) {
		return
	}
	if r.opaque {
		lines[at] = render.Pad(r.text, width)
		return
	}
	lines[at] = overlay.Compose([]string{lines[at]}, width, overlay.Layer{Content: r.text})[0]
}

// indicatorLayer is the scroll thumb on the right edge of the viewport.
func (m Model) indicatorLayer(p motion.Presentation, f layout.Frame) overlay.Layer {
	total := m.contentLayout(p).rows()
	vp := f.ViewportRows
	if vp <= 0 || total <= vp {
		return overlay.Layer{}
	}
	thumb := max(vp*vp/total, 1)
	pos := 0
	if maxRows := total - vp; maxRows > 0 {
		pos = min(max(m.scrollRows(), 0)*(vp-thumb)/maxRows, vp-thumb)
	}
	t := styles.T()
	bar := make([]string, thumb)
	for i, c := range styles.Gradient(thumb, t.FgMuted, t.FgSubtle) {
		bar[i] = lipgloss.NewStyle().Foreground(c).Render("┃")
	}
	return overlay.Layer{
		Content: strings.Join(bar, "\n"),
		Col:     f.Width - 1,
		Row:     f.ViewportTop + pos,
	}
}

// fullHelpLayer is the bordered key list drawn over the viewport.
func (m Model) fullHelpLayer(f layout.Frame) overlay.Layer {
	t := styles.T()
	h := m.help
	h.Width = max(f.Width-4, 0) // border and padding
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Background(t.BgRaised).
		Padding(0, 1).
		Render(h.FullHelpView(m.helpKeys.FullHelp()))
	return overlay.Layer{
		Content: box,
		Col:     max((f.Width-lipgloss.Width(box))/2, 0),
		Row:     f.ViewportTop + 1,
	}
}

// renderHelpRow shows the last captured message, or the short key help.
func (m Model) renderHelpRow(width int) string {
	if m.Status != "" {
		return render.Pad(styles.T().S().Warning.Render(render.Truncate(m.Status, width)), width)
	}
	h := m.help
	h.ShowAll = false
	return render.Pad(h.View(m.helpKeys), width)
}
