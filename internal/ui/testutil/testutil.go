// Package testutil provides helpers for asserting on rendered views.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences, leaving only visible text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the visible width of the widest line.
func MeasureWidth(s string) int {
	widest := 0
	for line := range strings.SplitSeq(s, "\n") {
		widest = max(widest, ansi.StringWidth(line))
	}
	return widest
}

// Lines splits a view into unstyled lines.
func Lines(view string) []string {
	return strings.Split(StripANSI(view), "\n")
}

// FindLine returns the index of the first unstyled line containing substr,
// or -1.
func FindLine(view, substr string) int {
	for i, line := range Lines(view) {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

// ContainsLine reports whether any unstyled line contains substr.
func ContainsLine(view, substr string) bool {
	return FindLine(view, substr) >= 0
}

// CountNonBlank returns the number of lines with visible content.
func CountNonBlank(view string) int {
	n := 0
	for _, line := range Lines(view) {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
