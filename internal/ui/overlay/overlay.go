// Package overlay stacks rendered blocks on a fixed-size screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Layer is a rendered block whose top-left cell lands at (Col, Row). Spaces
// before the first and after the last visible cell of each line are
// transparent. Negative positions clip the block.
type Layer struct {
	Content string
	Col     int
	Row     int
}

// Compose draws layers over base in order and returns the resulting lines.
// Every returned line is padded to width.
func Compose(base []string, width int, layers ...Layer) []string {
	out := make([]string, len(base))
	copy(out, base)

	for _, l := range layers {
		if l.Content == "" {
			continue
		}
		for i, line := range strings.Split(l.Content, "\n") {
			row := l.Row + i
			if row < 0 || row >= len(out) {
				continue
			}
			out[row] = drawLine(out[row], line, l.Col, width)
		}
	}
	return out
}

// Place is Compose for a single block over a newline-joined base.
func Place(base, block string, col, row, width int) string {
	lines := Compose(strings.Split(base, "\n"), width, Layer{Content: block, Col: col, Row: row})
	return strings.Join(lines, "\n")
}

func drawLine(dst, src string, col, width int) string {
	plain := ansi.Strip(src)
	trimmed := strings.TrimRight(plain, " ")
	start := len(trimmed) - len(strings.TrimLeft(trimmed, " "))
	end := ansi.StringWidth(trimmed)
	if end <= start {
		return dst
	}

	content := ansi.Cut(src, start, end)
	from, to := col+start, col+end
	if from < 0 {
		content = ansi.Cut(content, -from, end-start)
		from = 0
	}
	if to > width {
		content = ansi.Cut(content, 0, width-from)
		to = width
	}
	if from >= to {
		return dst
	}

	if w := ansi.StringWidth(dst); w < width {
		dst += strings.Repeat(" ", width-w)
	}
	return ansi.Cut(dst, 0, from) + content + ansi.Cut(dst, to, width)
}
