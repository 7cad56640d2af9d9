// internal/app/update.go
package app

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/islandprofile/internal/motion"
	"github.com/llehouerou/islandprofile/internal/ui/navbar"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)

	case tea.KeyMsg:
		cmd = m.handleKeyMsg(msg)

	case tea.MouseMsg:
		cmd = m.handleMouseMsg(msg)

	case tea.FocusMsg:
		m.motion.ScenePhaseChanged(true, m.now())

	case tea.BlurMsg:
		m.motion.ScenePhaseChanged(false, m.now())

	case DragEndMsg:
		if msg.Version == m.dragVersion && m.virtualDrag {
			m.virtualDrag = false
			m.endDrag()
		}

	case FrameMsg:
		m.ticking = false
		m.advanceFrame()

	case StderrMsg:
		m.Status = string(msg)
		cmd = waitForStderr(m.stderr)
	}

	after := m.afterUpdate()
	return m, tea.Batch(cmd, after)
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.Width, m.Height = msg.Width, msg.Height
	if m.device.Resize(msg.Width, msg.Height) {
		m.motion.SetMetrics(m.device.Metrics())
	}
	m.help.Width = msg.Width
	m.scroll.clamp(m.maxScroll())
	m.motion.ScrollChanged(m.rawOffset())
}

// rawOffset is the scroll offset as the container reports it.
func (m Model) rawOffset() motion.Point {
	return motion.Point{Y: -m.scroll.y}
}

// scrollBy moves the content during a drag.
func (m *Model) scrollBy(delta float64) {
	m.scroll.drag(delta, m.maxScroll(), m.ui.MaxPull, m.ui.Resistance)
	m.motion.ScrollChanged(m.rawOffset())
}

// beginDrag starts a drag unless one is already running.
func (m *Model) beginDrag() {
	if !m.motion.Current().Dragging {
		m.scroll.stop()
		m.motion.DragStateChanged(true)
	}
}

// endDrag ends the drag and settles the offset: onto the snap anchor when
// paging decides so, back to rest after an overscroll, otherwise in place.
func (m *Model) endDrag() {
	_, decision := m.motion.DragStateChanged(false)
	switch {
	case decision.ShouldSnap:
		m.scroll.animateTo(m.snapTarget(decision.Anchor))
	case m.scroll.y < 0:
		m.scroll.animateTo(0)
	}
}

// virtualDragCmd keeps a wheel or key drag alive until input goes idle.
func (m *Model) virtualDragCmd() tea.Cmd {
	m.beginDrag()
	m.virtualDrag = true
	m.dragVersion++
	return DragEndCmd(m.dragVersion, m.ui.DragEnd())
}

// advanceFrame steps the spring and the time-based fades.
func (m *Model) advanceFrame() {
	now := m.now()
	if m.scroll.animating {
		m.scroll.step()
		m.motion.ScrollChanged(m.rawOffset())
	}
	if m.morph.done(now) {
		m.morph.active = false
	}
	m.motion.Refresh(now)
	m.frames++
}

// afterUpdate handles the mode transitions raised during this update and
// keeps the frame loop running while something animates.
func (m *Model) afterUpdate() tea.Cmd {
	now := m.now()
	var cmds []tea.Cmd

	p := m.motion.Current()
	if len(m.events.pending) > 0 {
		d := m.motion.Deriver()
		g := m.motion.Config().Geometry
		for _, t := range m.events.pending {
			log.Printf("mode %s -> %s at y=%.1f", t.From, t.To, p.Offset.Y)
			shown := m.morph.at(now, d.AvatarLayout(g, t.From, m.motion.Metrics()))
			m.morph.begin(shown, d.AvatarLayout(g, t.To, m.motion.Metrics()), now, t.Duration)
			cmds = append(cmds, HapticCmd(m.pulser, t.Haptic))
		}
		m.events.pending = m.events.pending[:0]
	}

	if p.AvatarScrolledAway != m.navAway {
		m.navAway = p.AvatarScrolledAway
		m.navSwap = now
	}

	if !m.ticking && m.animating() {
		m.ticking = true
		cmds = append(cmds, FrameCmd(m.ui.SpringFPS))
	}
	return tea.Batch(cmds...)
}

func (m Model) animating() bool {
	now := m.now()
	return m.scroll.animating ||
		m.morph.active ||
		m.navReveal() < 1 ||
		m.motion.IslandAnimating(now)
}

// navReveal is the progress of the last navigation bar swap.
func (m Model) navReveal() float64 {
	if m.navSwap.IsZero() {
		return 1
	}
	elapsed := m.now().Sub(m.navSwap).Milliseconds()
	return min(float64(elapsed)/navbar.SwapDuration, 1)
}
