package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding for documentation.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "scroll", "header", "settings"
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionDebug, []string{"D"}, "Debug overlay", "global"},

	// Scroll
	{ActionScrollDown, []string{"j", "down"}, "Scroll down", "scroll"},
	{ActionScrollUp, []string{"k", "up"}, "Scroll up", "scroll"},
	{ActionPageDown, []string{"pgdown", "ctrl+d"}, "Page down", "scroll"},
	{ActionPageUp, []string{"pgup", "ctrl+u"}, "Page up", "scroll"},
	{ActionTop, []string{"g", "home"}, "Back to top", "scroll"},
	{ActionPull, []string{"J"}, "Pull down", "scroll"},

	// Header
	{ActionTapAvatar, []string{" ", "space", "enter"}, "Tap avatar", "header"},

	// Settings
	{ActionToggleZoom, []string{"z"}, "Zoom effect", "settings"},
	{ActionTogglePaging, []string{"p"}, "Header paging", "settings"},
	{ActionTogglePinning, []string{"n"}, "Header pinning", "settings"},
	{ActionToggleIndicators, []string{"i"}, "Indicators", "settings"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Find returns the binding of an action.
func Find(action Action) (Binding, bool) {
	return find(All, action)
}

// Key converts the binding into a bubbles key binding for the help view.
func (b Binding) Key() key.Binding {
	keys := b.Keys
	label := keys[0]
	if label == " " {
		label = "space"
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, b.Description))
}

// Help implements help.KeyMap over a set of bindings.
type Help struct {
	bindings []Binding
}

// NewHelp builds the help key map from all bindings.
func NewHelp() Help {
	return Help{bindings: All}
}

// ShortHelp lists the bindings shown on the one-line help bar.
func (h Help) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, a := range []Action{ActionScrollDown, ActionPull, ActionTapAvatar, ActionHelp, ActionQuit} {
		if b, ok := find(h.bindings, a); ok {
			out = append(out, b.Key())
		}
	}
	return out
}

// FullHelp groups every binding by context.
func (h Help) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	for _, ctx := range []string{"scroll", "header", "settings", "global"} {
		var group []key.Binding
		for _, b := range h.bindings {
			if b.Context == ctx {
				group = append(group, b.Key())
			}
		}
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

func find(bindings []Binding, action Action) (Binding, bool) {
	for _, b := range bindings {
		if b.Action == action {
			return b, true
		}
	}
	return Binding{}, false
}
