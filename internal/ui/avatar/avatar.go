// Package avatar rasterizes the profile picture into half-block cells. Each
// cell carries two vertically stacked pixels: the upper one as the
// foreground of "▀" and the lower one as its background.
package avatar

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // JPEG avatars
	_ "image/png"  // PNG avatars
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"

	"github.com/llehouerou/islandprofile/internal/ui/styles"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"

	// maxBlurLevel is the strongest downscale step used for blurring.
	maxBlurLevel = 4
)

// Load decodes a PNG or JPEG file.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

// Placeholder draws a head-and-shoulders silhouette on a diagonal gradient,
// size pixels square.
func Placeholder(size int) *image.NRGBA {
	size = max(size, 1)
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	t := styles.T()
	from, to := styles.Colorful(t.Accent), styles.Colorful("#5e5ce6")
	figure := colorful.Color{R: 0.92, G: 0.92, B: 0.96}

	s := float64(size)
	for y := range size {
		for x := range size {
			u, v := (float64(x)+0.5)/s, (float64(y)+0.5)/s
			c := from.BlendHcl(to, (u+v)/2).Clamped()

			head := sq(u-0.5)+sq(v-0.4) <= sq(0.18)
			shoulders := sq((u-0.5)/0.36)+sq((v-1.02)/0.36) <= 1
			if head || shoulders {
				c = c.BlendRgb(figure, 0.85)
			}
			r, g, b := c.RGB255()
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

func sq(v float64) float64 { return v * v }

// Options describe one rendering of the avatar.
type Options struct {
	Cols       int
	Rows       int     // pixel height is twice this
	Radius     float64 // corner radius in pixels
	Opacity    float64 // 0 is invisible, 1 is opaque
	Blur       float64 // 0 is sharp, 1 is the strongest blur
	Background lipgloss.Color
}

type rasterKey struct {
	w, h, blur int
}

// Renderer scales the source on demand and keeps the last raster, since
// consecutive frames mostly share a size.
type Renderer struct {
	src    *image.NRGBA
	key    rasterKey
	raster *image.NRGBA
}

// NewRenderer prepares src for rendering.
func NewRenderer(src image.Image) *Renderer {
	return &Renderer{src: toNRGBA(src)}
}

// Render returns Rows lines of Cols cells. Pixels outside the rounded
// rectangle become spaces so overlays treat them as transparent.
func (r *Renderer) Render(o Options) string {
	if o.Cols <= 0 || o.Rows <= 0 || o.Opacity <= 0 {
		return ""
	}
	img := r.rasterFor(o.Cols, o.Rows*2, blurLevel(o.Blur))
	bg := styles.Colorful(o.Background)

	lines := make([]string, o.Rows)
	var b strings.Builder
	for row := range o.Rows {
		b.Reset()
		for x := range o.Cols {
			top, topOK := shade(img, o, bg, x, row*2)
			bottom, bottomOK := shade(img, o, bg, x, row*2+1)
			b.WriteString(cell(top, topOK, bottom, bottomOK))
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

func cell(top colorful.Color, topOK bool, bottom colorful.Color, bottomOK bool) string {
	switch {
	case topOK && bottomOK:
		return lipgloss.NewStyle().
			Foreground(styles.Hex(top)).
			Background(styles.Hex(bottom)).
			Render(upperHalf)
	case topOK:
		return lipgloss.NewStyle().Foreground(styles.Hex(top)).Render(upperHalf)
	case bottomOK:
		return lipgloss.NewStyle().Foreground(styles.Hex(bottom)).Render(lowerHalf)
	default:
		return " "
	}
}

// shade returns the colour of pixel (x, y) after masking and fading, and
// false when the pixel is outside the mask.
func shade(img *image.NRGBA, o Options, bg colorful.Color, x, y int) (colorful.Color, bool) {
	b := img.Bounds()
	if !inside(float64(x)+0.5, float64(y)+0.5, float64(b.Dx()), float64(b.Dy()), o.Radius) {
		return colorful.Color{}, false
	}
	p := img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
	c := colorful.Color{R: float64(p.R) / 255, G: float64(p.G) / 255, B: float64(p.B) / 255}
	alpha := math.Min(o.Opacity, 1) * float64(p.A) / 255
	return bg.BlendRgb(c, alpha), true
}

// inside reports whether (x, y) lies in a w x h rectangle with corners
// rounded by radius.
func inside(x, y, w, h, radius float64) bool {
	if x < 0 || y < 0 || x > w || y > h {
		return false
	}
	r := math.Min(radius, math.Min(w, h)/2)
	if r <= 0 {
		return true
	}
	cx := math.Max(r, math.Min(x, w-r))
	cy := math.Max(r, math.Min(y, h-r))
	return sq(x-cx)+sq(y-cy) <= r*r
}

func blurLevel(blur float64) int {
	if blur <= 0 || math.IsNaN(blur) {
		return 0
	}
	return int(math.Round(math.Min(blur, 1) * maxBlurLevel))
}

func (r *Renderer) rasterFor(w, h, blur int) *image.NRGBA {
	key := rasterKey{w, h, blur}
	if r.raster != nil && r.key == key {
		return r.raster
	}

	var img image.Image = cover(r.src, w, h)
	img = resize.Resize(uint(w), uint(h), img, resize.Bilinear) //nolint:gosec // cell counts are small
	if blur > 0 {
		// Downscaling and scaling back up is a cheap box-like blur.
		sw, sh := max(w/(blur+1), 1), max(h/(blur+1), 1)
		small := resize.Resize(uint(sw), uint(sh), img, resize.Bilinear) //nolint:gosec // as above
		img = resize.Resize(uint(w), uint(h), small, resize.Bilinear)    //nolint:gosec // as above
	}

	r.key = key
	r.raster = toNRGBA(img)
	return r.raster
}

// cover crops src to the aspect ratio of w x h around its centre, the way
// an aspect-fill image view does.
func cover(src *image.NRGBA, w, h int) image.Image {
	b := src.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	target := float64(w) / float64(h)

	cw, ch := sw, sh
	if sw/sh > target {
		cw = sh * target
	} else {
		ch = sw / target
	}
	x0 := b.Min.X + int((sw-cw)/2)
	y0 := b.Min.Y + int((sh-ch)/2)
	rect := image.Rect(x0, y0, x0+max(int(cw), 1), y0+max(int(ch), 1))
	return src.SubImage(rect)
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
