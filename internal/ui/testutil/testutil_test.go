package testutil

import (
	"testing"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no ansi codes",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "with color codes",
			input: "\x1b[31mred\x1b[0m text",
			want:  "red text",
		},
		{
			name:  "true colour",
			input: "\x1b[38;2;10;132;255m▀\x1b[0m",
			want:  "▀",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripANSI(tt.input)
			if got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMeasureWidth(t *testing.T) {
	if got := MeasureWidth("ab\n\x1b[1mabcd\x1b[0m\nx"); got != 4 {
		t.Errorf("MeasureWidth() = %d, want 4", got)
	}
}

func TestFindLine(t *testing.T) {
	view := "first\n\x1b[31msecond\x1b[0m\nthird"

	if got := FindLine(view, "second"); got != 1 {
		t.Errorf("FindLine(second) = %d, want 1", got)
	}
	if got := FindLine(view, "missing"); got != -1 {
		t.Errorf("FindLine(missing) = %d, want -1", got)
	}
	if !ContainsLine(view, "third") {
		t.Error("ContainsLine(third) = false")
	}
}

func TestCountNonBlank(t *testing.T) {
	if got := CountNonBlank("a\n   \n\nb\n"); got != 2 {
		t.Errorf("CountNonBlank() = %d, want 2", got)
	}
}
