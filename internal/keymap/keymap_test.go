//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", "global", 3},
		{"scroll context", "scroll", 5},
		{"header context", "header", 1},
		{"settings context", "settings", 4},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectMinLength == 0 {
				assert.Empty(t, result)
			}
			assert.GreaterOrEqual(t, len(result), tt.expectMinLength)
			for _, b := range result {
				assert.Equal(t, tt.context, b.Context)
			}
		})
	}
}

func TestAll_NoDuplicateKeys(t *testing.T) {
	seen := map[string]Action{}
	for _, b := range All {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestFind(t *testing.T) {
	b, ok := Find(ActionTogglePaging)
	require.True(t, ok)
	assert.Equal(t, []string{"p"}, b.Keys)

	_, ok = Find(Action("nope"))
	assert.False(t, ok)
}

func TestBinding_Key(t *testing.T) {
	b, _ := Find(ActionTapAvatar)
	k := b.Key()

	assert.Equal(t, "space", k.Help().Key)
	assert.Equal(t, "Tap avatar", k.Help().Desc)
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, k))
}

func TestHelp(t *testing.T) {
	h := NewHelp()

	short := h.ShortHelp()
	require.Len(t, short, 5)
	assert.Equal(t, "j", short[0].Help().Key)

	full := h.FullHelp()
	assert.Len(t, full, 4)

	view := help.New().View(h)
	assert.Contains(t, view, "Tap avatar")
}
