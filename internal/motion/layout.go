package motion

import "math"

// Geometry holds the layout constants of the avatar and header swap.
type Geometry struct {
	CollapsedTopAnchor float64 // avatar top inset while collapsed
	ExpandedTopAnchor  float64 // avatar top inset while expanded
	OffsetFloorPercent float64 // how much of the avatar stays on screen, in %
	PushFactor         float64 // avatar travel per point of negative offset

	DividerOffset       float64 // divider shows past this offset
	BackgroundOffset    float64 // header background turns opaque past this offset
	ContentPaddingRatio float64 // content top padding divisor while y > 0
	DescriptionHeight   float64
	DescriptionShrink   float64
	DescriptionMinNotch float64
	DescriptionMin      float64
	ExpandedHeaderDrift float64
}

// DefaultGeometry returns the values of the stock profile screen.
func DefaultGeometry() Geometry {
	return Geometry{
		CollapsedTopAnchor:  30,
		ExpandedTopAnchor:   -60,
		OffsetFloorPercent:  1,
		PushFactor:          0.1,
		DividerOffset:       90,
		BackgroundOffset:    50,
		ContentPaddingRatio: 9,
		DescriptionHeight:   20,
		DescriptionShrink:   0.05,
		DescriptionMinNotch: 4,
		DescriptionMin:      8,
		ExpandedHeaderDrift: 0.3,
	}
}

// AvatarLayout is the constraint set of the avatar image for one mode.
type AvatarLayout struct {
	Width        float64
	Height       float64
	CornerRadius float64
	TopAnchor    float64
}

// HeaderLayout holds the header decorations that follow the offset.
type HeaderLayout struct {
	DividerVisible    bool
	OpaqueBackground  bool
	ContentTopPadding float64
	DescriptionHeight float64
	Offset            float64
}

// AvatarLayout returns the avatar constraints for mode. The expanded avatar
// spans the screen width; a zero width falls back to the full image size.
func (d Deriver) AvatarLayout(g Geometry, mode PresentationMode, metrics DeviceMetrics) AvatarLayout {
	c := d.Constants
	if mode == Expanded {
		width := metrics.ScreenWidth
		if width <= 0 {
			width = c.FullImageSize
		}
		return AvatarLayout{
			Width:        width,
			Height:       c.FullImageSize,
			CornerRadius: 0,
			TopAnchor:    g.ExpandedTopAnchor,
		}
	}
	return AvatarLayout{
		Width:        c.ImageSize,
		Height:       c.ImageSize,
		CornerRadius: c.ImageSize / 2,
		TopAnchor:    g.CollapsedTopAnchor,
	}
}

// LerpAvatar blends two layouts; t is clamped to [0, 1].
func LerpAvatar(from, to AvatarLayout, t float64) AvatarLayout {
	t = clamp(t, 0, 1)
	lerp := func(a, b float64) float64 { return a + (b-a)*t }
	return AvatarLayout{
		Width:        lerp(from.Width, to.Width),
		Height:       lerp(from.Height, to.Height),
		CornerRadius: lerp(from.CornerRadius, to.CornerRadius),
		TopAnchor:    lerp(from.TopAnchor, to.TopAnchor),
	}
}

// AvatarOffset is the vertical travel of the avatar. It follows the content
// while scrolling away, moves a tenth as fast while pulled, and never leaves
// the screen entirely.
func (d Deriver) AvatarOffset(g Geometry, y float64) float64 {
	size := d.Constants.ImageSize
	floor := -size + size*g.OffsetFloorPercent/100
	if y < 0 {
		return math.Max(-y*g.PushFactor, floor)
	}
	return math.Max(-y, floor)
}

// HeaderLayout derives the header decorations for an offset.
func (d Deriver) HeaderLayout(g Geometry, y float64, mode PresentationMode, notch bool) HeaderLayout {
	expanded := mode == Expanded

	h := HeaderLayout{
		DividerVisible:   !expanded && y > g.DividerOffset,
		OpaqueBackground: !expanded && y > g.BackgroundOffset,
	}
	if y > 0 && g.ContentPaddingRatio != 0 {
		h.ContentTopPadding = y / g.ContentPaddingRatio
	}

	height := g.DescriptionHeight
	if !expanded {
		shrink := y * g.DescriptionShrink
		height -= shrink * shrink
	}
	minHeight := g.DescriptionMin
	if notch {
		minHeight = g.DescriptionMinNotch
	}
	h.DescriptionHeight = math.Max(height, minHeight)

	if expanded {
		h.Offset = y * g.ExpandedHeaderDrift
	}
	return h
}

// AvatarScrolledAway reports whether the offset has saturated, meaning the
// avatar has fully merged into the top of the screen.
func (d Deriver) AvatarScrolledAway(y float64) bool {
	return d.Percentage(y) >= d.Constants.ImageSize
}
