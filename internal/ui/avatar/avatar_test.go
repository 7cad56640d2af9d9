package avatar

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

var red = color.NRGBA{R: 255, A: 255}

func TestRender_Dimensions(t *testing.T) {
	r := NewRenderer(solid(32, 32, red))
	out := r.Render(Options{Cols: 6, Rows: 3, Opacity: 1, Background: "#000000"})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 6, ansi.StringWidth(line))
		assert.Equal(t, strings.Repeat(upperHalf, 6), ansi.Strip(line))
	}
}

func TestRender_Empty(t *testing.T) {
	r := NewRenderer(solid(4, 4, red))
	assert.Empty(t, r.Render(Options{Cols: 0, Rows: 3, Opacity: 1}))
	assert.Empty(t, r.Render(Options{Cols: 3, Rows: 3, Opacity: 0}), "invisible avatar draws nothing")
}

func TestRender_RoundedCornersAreTransparent(t *testing.T) {
	r := NewRenderer(solid(64, 64, red))
	out := r.Render(Options{Cols: 10, Rows: 5, Radius: 5, Opacity: 1, Background: "#000000"})

	lines := strings.Split(ansi.Strip(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], " "), "top-left corner masked: %q", lines[0])
	assert.True(t, strings.HasSuffix(lines[0], " "), "top-right corner masked: %q", lines[0])
	assert.Equal(t, strings.Repeat(upperHalf, 10), lines[2], "middle row is full")
}

func TestInside(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		radius float64
		want   bool
	}{
		{"centre", 5, 5, 5, true},
		{"corner of a circle", 0.5, 0.5, 5, false},
		{"corner of a square", 0.5, 0.5, 0, true},
		{"edge midpoint of a circle", 0.5, 5, 5, true},
		{"outside", 11, 5, 0, false},
		{"radius larger than half is capped", 5, 0.5, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inside(tt.x, tt.y, 10, 10, tt.radius))
		})
	}
}

func TestShade_Opacity(t *testing.T) {
	img := solid(2, 2, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	bg := colorful.Color{}

	c, ok := shade(img, Options{Opacity: 1}, bg, 0, 0)
	require.True(t, ok)
	assert.InDelta(t, 1.0, c.R, 1e-9)

	c, ok = shade(img, Options{Opacity: 0.25}, bg, 1, 1)
	require.True(t, ok)
	assert.InDelta(t, 0.25, c.R, 1e-9)

	c, ok = shade(img, Options{Opacity: 3}, bg, 1, 0)
	require.True(t, ok)
	assert.InDelta(t, 1.0, c.G, 1e-9, "opacity above one is clamped")
}

func TestBlurLevel(t *testing.T) {
	assert.Equal(t, 0, blurLevel(0))
	assert.Equal(t, 0, blurLevel(-1))
	assert.Equal(t, 2, blurLevel(0.5))
	assert.Equal(t, maxBlurLevel, blurLevel(1))
	assert.Equal(t, maxBlurLevel, blurLevel(3.15))
}

func TestRasterCache(t *testing.T) {
	r := NewRenderer(solid(16, 16, red))

	first := r.rasterFor(4, 4, 0)
	assert.Same(t, first, r.rasterFor(4, 4, 0))
	assert.NotSame(t, first, r.rasterFor(4, 4, 2))
	assert.Equal(t, image.Rect(0, 0, 4, 4), r.rasterFor(4, 4, 2).Bounds())
}

func TestCover(t *testing.T) {
	src := solid(100, 50, red)

	assert.Equal(t, image.Rect(25, 0, 75, 50), cover(src, 10, 10).Bounds(), "wide source cropped to square")
	assert.Equal(t, image.Rect(0, 0, 100, 50), cover(src, 20, 10).Bounds(), "same aspect kept")
	assert.Equal(t, image.Rect(0, 15, 100, 35), cover(src, 50, 10).Bounds(), "wider target crops height")
}

func TestPlaceholder(t *testing.T) {
	img := Placeholder(24)
	assert.Equal(t, image.Rect(0, 0, 24, 24), img.Bounds())
	for _, p := range []image.Point{{0, 0}, {12, 9}, {23, 23}} {
		assert.Equal(t, uint8(255), img.NRGBAAt(p.X, p.Y).A)
	}
	assert.NotEqual(t, img.NRGBAAt(0, 0), img.NRGBAAt(12, 9), "head differs from background")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solid(8, 6, red)))
	require.NoError(t, f.Close())

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 6), img.Bounds())
	assert.Equal(t, red, img.NRGBAAt(3, 3))
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0o600))
	_, err = Load(bad)
	assert.Error(t, err)
}
