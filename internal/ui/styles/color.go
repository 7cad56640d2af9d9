package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// fallbackGray stands in for ANSI palette colours, which have no RGB value.
var fallbackGray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Colorful converts a hex lipgloss colour for blending.
func Colorful(c lipgloss.Color) colorful.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	return fallbackGray
}

// Hex converts a blended colour back to lipgloss.
func Hex(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Clamped().Hex())
}

// Mix blends from into to by t in [0, 1]. Blending is done in HCL space so
// intermediate steps keep a perceptually even brightness.
func Mix(from, to lipgloss.Color, t float64) lipgloss.Color {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}
	return Hex(Colorful(from).BlendHcl(Colorful(to), t))
}

// Fade returns fg drawn at alpha over bg. Terminals have no alpha channel,
// so opacity is simulated by blending toward the background.
func Fade(fg, bg lipgloss.Color, alpha float64) lipgloss.Color {
	switch {
	case alpha <= 0:
		return bg
	case alpha >= 1:
		return fg
	}
	return Hex(Colorful(bg).BlendRgb(Colorful(fg), alpha))
}

// Gradient returns size colours blended from from to to.
func Gradient(size int, from, to lipgloss.Color) []lipgloss.Color {
	if size <= 0 {
		return nil
	}
	if size == 1 {
		return []lipgloss.Color{from}
	}
	c1, c2 := Colorful(from), Colorful(to)
	out := make([]lipgloss.Color, size)
	for i := 1; i < size-1; i++ {
		t := float64(i) / float64(size-1)
		out[i] = Hex(c1.BlendHcl(c2, t))
	}
	out[0], out[size-1] = from, to
	return out
}
