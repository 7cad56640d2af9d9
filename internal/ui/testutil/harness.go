package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives a tea.Model the way the program loop would, recording the
// commands each update returns.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewHarness wraps m and records its Init command.
func NewHarness(m tea.Model) *Harness {
	h := &Harness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Model returns the current model for type assertions.
func (h *Harness) Model() tea.Model {
	return h.model
}

// View renders the current model.
func (h *Harness) View() string {
	return h.model.View()
}

// Send delivers msg and returns the resulting command.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Key sends a rune key such as "j" or a named key such as "up".
func (h *Harness) Key(key string) tea.Cmd {
	if t, ok := namedKeys[key]; ok {
		return h.Send(tea.KeyMsg{Type: t})
	}
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

var namedKeys = map[string]tea.KeyType{
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"pgup":   tea.KeyPgUp,
	"pgdown": tea.KeyPgDown,
	"home":   tea.KeyHome,
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"ctrl+c": tea.KeyCtrlC,
}

// Resize sends a window size.
func (h *Harness) Resize(width, height int) tea.Cmd {
	return h.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// Wheel sends one mouse wheel notch at (x, y). up scrolls content back
// toward the top.
func (h *Harness) Wheel(x, y int, up bool) tea.Cmd {
	button := tea.MouseButtonWheelDown
	if up {
		button = tea.MouseButtonWheelUp
	}
	return h.Send(tea.MouseMsg{X: x, Y: y, Button: button, Action: tea.MouseActionPress})
}

// Press, Drag and Release send left button events at (x, y).
func (h *Harness) Press(x, y int) tea.Cmd {
	return h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
}

func (h *Harness) Drag(x, y int) tea.Cmd {
	return h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
}

func (h *Harness) Release(x, y int) tea.Cmd {
	return h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
}

// Commands returns every command recorded so far.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands forgets recorded commands.
func (h *Harness) ClearCommands() {
	h.cmds = nil
}

// Execute runs cmd synchronously. Batches are flattened and every non-nil
// message is returned in order. Commands that block on timers run to
// completion, so only use this with short durations.
func Execute(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch m := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range m {
			out = append(out, Execute(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}
