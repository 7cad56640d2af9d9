// internal/app/keys.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/islandprofile/internal/app/handler"
	"github.com/llehouerou/islandprofile/internal/keymap"
)

// pullRows is how far one pull press drags past the top, before resistance.
const pullRows = 4

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	a := m.resolver.Resolve(msg.String())
	r := handler.Chain(a,
		m.handleGlobalKeys,
		m.handleScrollKeys,
		m.handleHeaderKeys,
		m.handleSettingsKeys,
	)
	return r.Cmd
}

func (m *Model) handleGlobalKeys(a keymap.Action) handler.Result {
	switch a { //nolint:exhaustive // other actions belong to other handlers
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return handler.HandledNoCmd
	case keymap.ActionDebug:
		m.Debug = !m.Debug
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) handleScrollKeys(a keymap.Action) handler.Result {
	g := m.device.Grid()
	var delta float64
	switch a { //nolint:exhaustive // other actions belong to other handlers
	case keymap.ActionScrollDown:
		delta = g.Y(1)
	case keymap.ActionScrollUp:
		delta = -g.Y(1)
	case keymap.ActionPageDown:
		delta = g.Y(max(m.frame().ViewportRows-1, 1))
	case keymap.ActionPageUp:
		delta = -g.Y(max(m.frame().ViewportRows-1, 1))
	case keymap.ActionPull:
		delta = -g.Y(pullRows)
	case keymap.ActionTop:
		if m.virtualDrag {
			m.virtualDrag = false
			m.motion.DragStateChanged(false)
		}
		m.scroll.animateTo(0)
		return handler.HandledNoCmd
	default:
		return handler.NotHandled
	}

	cmd := m.virtualDragCmd()
	m.scrollBy(delta)
	return handler.Handled(cmd)
}

func (m *Model) handleHeaderKeys(a keymap.Action) handler.Result {
	if a != keymap.ActionTapAvatar {
		return handler.NotHandled
	}
	m.motion.TapAvatar()
	return handler.HandledNoCmd
}

func (m *Model) handleSettingsKeys(a keymap.Action) handler.Result {
	switch a { //nolint:exhaustive // other actions belong to other handlers
	case keymap.ActionToggleZoom:
		m.toggle(0)
	case keymap.ActionTogglePaging:
		m.toggle(1)
	case keymap.ActionTogglePinning:
		m.toggle(2)
	case keymap.ActionToggleIndicators:
		m.toggle(3)
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// toggle flips the setting shown in cell i.
func (m *Model) toggle(i int) {
	switch i {
	case 0:
		on := !m.motion.ZoomEffect() && m.motion.Metrics().IsNotchPresent()
		m.motion.SetZoomEffect(on)
	case 1:
		m.motion.SetHeaderPaging(!m.motion.HeaderPaging())
	case 2:
		m.Pinning = !m.Pinning
	case 3:
		m.Indicators = !m.Indicators
	}
}
