package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean string unchanged", "John Appleseed", "John Appleseed"},
		{"control characters dropped", "John\x07 Apple\x1bseed", "John Appleseed"},
		{"invalid utf8 dropped", "Jo\xffhn", "John"},
		{"nbsp becomes space", "John\u00a0Appleseed", "John Appleseed"},
		{"tab kept", "a\tb", "a\tb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello w…"},
		{"zero width", "hello", 0, ""},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"padding needed", "hello", 8, "hello   "},
		{"exact width", "hello", 5, "hello"},
		{"already wider", "hello world", 5, "hello world"},
		{"empty string", "", 3, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pad(tt.input, tt.width); got != tt.want {
				t.Errorf("Pad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"ab", 5, " ab  "},
		{"abcdef", 4, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Center(tt.input, tt.width); got != tt.want {
				t.Errorf("Center(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		name                string
		left, center, right string
		width               int
		want                string
	}{
		{"all three", "QR", "Name", "Edit", 20, "QR      Name    Edit"},
		{"no center", "QR", "", "Edit", 10, "QR    Edit"},
		{"center dropped when crowded", "QR", "Appleseed", "Edit", 12, "QR      Edit"},
		{"sides wider than row", "Search", "", "Edit", 8, "SearchEdit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bar(tt.left, tt.center, tt.right, tt.width)
			if got != tt.want {
				t.Errorf("Bar() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBar_Width(t *testing.T) {
	for width := 10; width <= 40; width++ {
		got := Bar("QR", "John", "Edit", width)
		if w := lipgloss.Width(got); w != width {
			t.Fatalf("Bar width at %d = %d", width, w)
		}
	}
}

func TestTrack(t *testing.T) {
	tests := []struct {
		name  string
		input string
		gap   int
		want  string
	}{
		{"no gap", "John", 0, "John"},
		{"one space", "John", 1, "J o h n"},
		{"two spaces", "ab", 2, "a  b"},
		{"empty", "", 1, ""},
		{"grapheme clusters kept whole", "e\u0301a", 1, "e\u0301 a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Track(tt.input, tt.gap); got != tt.want {
				t.Errorf("Track(%q, %d) = %q, want %q", tt.input, tt.gap, got, tt.want)
			}
		})
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(4); got != "────" {
		t.Errorf("Separator(4) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q, want empty", got)
	}
}

func TestBlank(t *testing.T) {
	if got := Blank(3); got != "   " {
		t.Errorf("Blank(3) = %q", got)
	}
}
