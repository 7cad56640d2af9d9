// Package render provides text helpers for fixed-width terminal rows.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Sanitize drops control characters and invalid UTF-8, and turns non-breaking
// spaces into plain spaces. Profile fields are user supplied.
func Sanitize(s string) string {
	clean := true
	for _, r := range s {
		if r == utf8.RuneError || r == '\u00a0' || (r != '\t' && unicode.IsControl(r)) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == utf8.RuneError && size <= 1:
		case r != '\t' && unicode.IsControl(r):
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Truncate shortens s to maxWidth cells, ending with "…" when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// Pad fills s with spaces on the right up to width cells.
func Pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// Center places s in the middle of width cells. Odd leftovers go right.
func Center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Bar lays out left, center and right on one row of exactly width cells.
// The center is centred on the full width, not on the space left over, and
// is dropped when it would overlap the sides.
func Bar(left, center, right string, width int) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	if lw+rw >= width {
		return Pad(left, width-rw) + right
	}

	start := (width - cw) / 2
	if center == "" || start <= lw || start+cw >= width-rw {
		return left + strings.Repeat(" ", width-lw-rw) + right
	}
	return left +
		strings.Repeat(" ", start-lw) +
		center +
		strings.Repeat(" ", width-rw-start-cw) +
		right
}

// Track inserts gap spaces between grapheme clusters, the terminal stand-in
// for a larger font.
func Track(s string, gap int) string {
	if gap <= 0 || s == "" {
		return s
	}
	spacer := strings.Repeat(" ", gap)
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	first := true
	for g.Next() {
		if !first {
			b.WriteString(spacer)
		}
		b.WriteString(g.Str())
		first = false
	}
	return b.String()
}

// Separator is a horizontal rule of width cells.
func Separator(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("─", width)
}

// Blank is an empty row of width cells.
func Blank(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(" ", width)
}
