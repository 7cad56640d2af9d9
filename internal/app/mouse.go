// internal/app/mouse.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// mouseState tracks a left button gesture. A press released without motion
// is a tap; any motion turns it into a drag.
type mouseState struct {
	pressed bool
	moved   bool
	lastY   int
	hover   int // toggle under the pressed button, -1 for none
}

func (m *Model) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button { //nolint:exhaustive // only the wheel and left button are used
	case tea.MouseButtonWheelDown:
		cmd := m.virtualDragCmd()
		m.scrollBy(m.ui.WheelStep)
		return cmd
	case tea.MouseButtonWheelUp:
		cmd := m.virtualDragCmd()
		m.scrollBy(-m.ui.WheelStep)
		return cmd
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.mouse = mouseState{pressed: true, lastY: msg.Y, hover: m.toggleAt(msg.Y - m.frame().ViewportTop)}
	case tea.MouseActionMotion:
		if !m.mouse.pressed {
			return nil
		}
		if !m.mouse.moved {
			m.mouse.moved = true
			m.mouse.hover = -1
			m.virtualDrag = false
			m.beginDrag()
		}
		dy := msg.Y - m.mouse.lastY
		m.mouse.lastY = msg.Y
		if dy != 0 {
			m.scrollBy(-m.device.Grid().Y(dy))
		}
	case tea.MouseActionRelease:
		if !m.mouse.pressed {
			return nil
		}
		gesture := m.mouse
		m.mouse = mouseState{hover: -1}
		if gesture.moved {
			m.endDrag()
			return nil
		}
		m.tap(msg.X, msg.Y)
	}
	return nil
}

// tap handles a press released in place.
func (m *Model) tap(x, y int) {
	if m.hitAvatar(x, y) {
		m.motion.TapAvatar()
		return
	}
	if i := m.toggleAt(y - m.frame().ViewportTop); i >= 0 {
		m.toggle(i)
	}
}
