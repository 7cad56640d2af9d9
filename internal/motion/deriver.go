package motion

import (
	"fmt"
	"math"
	"strings"
)

// Constants are the static layout values the interpolation laws read.
type Constants struct {
	ImageSize        float64 // collapsed avatar diameter
	FullImageSize    float64 // expanded avatar height
	BodyFontSize     float64
	Title1FontSize   float64
	CalloutFontSize  float64
	HeaderPaddingMax float64
}

// DefaultConstants returns the values of the stock profile screen.
func DefaultConstants() Constants {
	return Constants{
		ImageSize:        90,
		FullImageSize:    375,
		BodyFontSize:     17,
		Title1FontSize:   28,
		CalloutFontSize:  16,
		HeaderPaddingMax: 10,
	}
}

// Laws holds the coefficients and divisors of the interpolation formulas.
// Screen variants differ only in these numbers.
type Laws struct {
	ScaleCoefficient float64 // applied to the clamped offset before dividing
	ScalePullDivisor float64 // used while y > 0
	ScalePushDivisor float64 // used while y <= 0

	AvatarOpacityCoefficient float64
	AvatarOpacityDivisor     float64
	HeaderOpacityCoefficient float64
	HeaderOpacityDivisor     float64
	BlurCoefficient          float64
	BlurDivisor              float64

	IslandZoom    float64 // island scale at rest when the zoom effect is on
	IslandDivisor float64 // offset divisor in the island percentage
}

// DefaultLaws returns the coefficients of the stock profile screen.
func DefaultLaws() Laws {
	return Laws{
		ScaleCoefficient:         1 / 1.4,
		ScalePullDivisor:         100,
		ScalePushDivisor:         300,
		AvatarOpacityCoefficient: 1.1,
		AvatarOpacityDivisor:     100,
		HeaderOpacityCoefficient: 1.0,
		HeaderOpacityDivisor:     90,
		BlurCoefficient:          3.5,
		BlurDivisor:              100,
		IslandZoom:               1.2,
		IslandDivisor:            1.5,
	}
}

// withDefaults replaces unusable zero divisors and coefficients.
func (l Laws) withDefaults() Laws {
	d := DefaultLaws()
	fill := func(v *float64, def float64) {
		if *v == 0 || math.IsNaN(*v) || math.IsInf(*v, 0) {
			*v = def
		}
	}
	fill(&l.ScaleCoefficient, d.ScaleCoefficient)
	fill(&l.ScalePullDivisor, d.ScalePullDivisor)
	fill(&l.ScalePushDivisor, d.ScalePushDivisor)
	fill(&l.AvatarOpacityCoefficient, d.AvatarOpacityCoefficient)
	fill(&l.AvatarOpacityDivisor, d.AvatarOpacityDivisor)
	fill(&l.HeaderOpacityCoefficient, d.HeaderOpacityCoefficient)
	fill(&l.HeaderOpacityDivisor, d.HeaderOpacityDivisor)
	fill(&l.BlurCoefficient, d.BlurCoefficient)
	fill(&l.BlurDivisor, d.BlurDivisor)
	fill(&l.IslandZoom, d.IslandZoom)
	fill(&l.IslandDivisor, d.IslandDivisor)
	return l
}

// Field identifies one member of VisualParameters.
type Field uint16

const (
	FieldScale Field = 1 << iota
	FieldIslandScale
	FieldAvatarOpacity
	FieldHeaderOpacity
	FieldBlurRadius
	FieldTitleFontSize
	FieldDescriptionFontSize
	FieldHeaderPadding
)

var fieldNames = []struct {
	field Field
	name  string
}{
	{FieldScale, "scale"},
	{FieldIslandScale, "island_scale"},
	{FieldAvatarOpacity, "avatar_opacity"},
	{FieldHeaderOpacity, "header_opacity"},
	{FieldBlurRadius, "blur_radius"},
	{FieldTitleFontSize, "title_font_size"},
	{FieldDescriptionFontSize, "description_font_size"},
	{FieldHeaderPadding, "header_padding"},
}

// ParseFields converts field names such as "avatar_opacity" into a set.
func ParseFields(names []string) (Field, error) {
	var set Field
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		found := false
		for _, fn := range fieldNames {
			if fn.name == name {
				set |= fn.field
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown visual parameter %q", raw)
		}
	}
	return set, nil
}

// Names lists the members of the set in declaration order.
func (f Field) Names() []string {
	var names []string
	for _, fn := range fieldNames {
		if f&fn.field != 0 {
			names = append(names, fn.name)
		}
	}
	return names
}

// Overrides selects which parameters are pinned to fixed values while the
// header is expanded, and what those values are.
type Overrides struct {
	Fields Field
	Values VisualParameters
}

// OpenValues returns the "fully open" parameter values for c.
func OpenValues(c Constants) VisualParameters {
	return VisualParameters{
		Scale:               1,
		IslandScale:         1,
		AvatarOpacity:       1,
		HeaderOpacity:       1,
		BlurRadius:          0,
		TitleFontSize:       c.Title1FontSize,
		DescriptionFontSize: c.CalloutFontSize,
		HeaderPadding:       c.HeaderPaddingMax,
	}
}

// DefaultOverrides pins scale, avatar opacity and blur while expanded.
func DefaultOverrides(c Constants) Overrides {
	return Overrides{
		Fields: FieldScale | FieldAvatarOpacity | FieldBlurRadius,
		Values: OpenValues(c),
	}
}

// Deriver computes VisualParameters from a scroll offset. It is a value type
// with no hidden state, so identical inputs always give identical outputs.
type Deriver struct {
	Constants Constants
	Laws      Laws
	Overrides Overrides
}

// NewDeriver returns a deriver with unusable law values replaced by defaults.
func NewDeriver(c Constants, l Laws, o Overrides) Deriver {
	return Deriver{Constants: c, Laws: l.withDefaults(), Overrides: o}
}

// Percentage is the offset as read by the laws: growth past ImageSize
// saturates, scrolling the other way does not.
func (d Deriver) Percentage(y float64) float64 {
	return math.Min(y, d.Constants.ImageSize)
}

// Derive returns the parameters to render, with the override set applied
// when mode is Expanded.
func (d Deriver) Derive(y float64, mode PresentationMode, metrics DeviceMetrics, zoom bool) VisualParameters {
	return d.ApplyOverrides(d.Interpolate(y, metrics, zoom), mode)
}

// Interpolate returns the parameters purely from the offset, ignoring mode.
func (d Deriver) Interpolate(y float64, metrics DeviceMetrics, zoom bool) VisualParameters {
	c, l := d.Constants, d.Laws
	percentage := d.Percentage(y)

	divisor := l.ScalePushDivisor
	if y > 0 {
		divisor = l.ScalePullDivisor
	}

	return VisualParameters{
		Scale:               1 + (percentage*l.ScaleCoefficient)*(-1)/divisor,
		IslandScale:         d.islandScale(y, metrics.IslandSize.Height, zoom),
		AvatarOpacity:       math.Min(1, 1-(percentage*l.AvatarOpacityCoefficient)/l.AvatarOpacityDivisor),
		HeaderOpacity:       math.Min(1, 1-(percentage*l.HeaderOpacityCoefficient)/l.HeaderOpacityDivisor),
		BlurRadius:          math.Min(1, 1-math.Min(1, 1-(percentage*l.BlurCoefficient)/l.BlurDivisor)),
		TitleFontSize:       Interpolate(c.BodyFontSize, c.Title1FontSize, 100-percentage),
		DescriptionFontSize: Interpolate(c.CalloutFontSize, c.CalloutFontSize, 100-percentage),
		HeaderPadding:       Interpolate(0, c.HeaderPaddingMax, 100-percentage),
	}
}

// islandScale shrinks the island from its zoomed size back to 1 as the
// avatar approaches it. A zero height means the island is never shown.
func (d Deriver) islandScale(y, height float64, zoom bool) float64 {
	coefficient := 1.0
	if zoom {
		coefficient = d.Laws.IslandZoom
	}
	var p float64
	if height > 0 {
		p = clamp(math.Abs(y/d.Laws.IslandDivisor-height)/height, 0, 1)
	}
	return coefficient + p*(1-coefficient)
}

// ApplyOverrides replaces the fields of the override set when mode is Expanded.
func (d Deriver) ApplyOverrides(p VisualParameters, mode PresentationMode) VisualParameters {
	if mode != Expanded {
		return p
	}
	set, v := d.Overrides.Fields, d.Overrides.Values
	if set&FieldScale != 0 {
		p.Scale = v.Scale
	}
	if set&FieldIslandScale != 0 {
		p.IslandScale = v.IslandScale
	}
	if set&FieldAvatarOpacity != 0 {
		p.AvatarOpacity = v.AvatarOpacity
	}
	if set&FieldHeaderOpacity != 0 {
		p.HeaderOpacity = v.HeaderOpacity
	}
	if set&FieldBlurRadius != 0 {
		p.BlurRadius = v.BlurRadius
	}
	if set&FieldTitleFontSize != 0 {
		p.TitleFontSize = v.TitleFontSize
	}
	if set&FieldDescriptionFontSize != 0 {
		p.DescriptionFontSize = v.DescriptionFontSize
	}
	if set&FieldHeaderPadding != 0 {
		p.HeaderPadding = v.HeaderPadding
	}
	return p
}

// Interpolate maps percent (0..100) linearly onto [minV, maxV] and clamps.
func Interpolate(minV, maxV, percent float64) float64 {
	value := minV + (maxV-minV)*(percent/100)
	return clamp(value, math.Min(minV, maxV), math.Max(minV, maxV))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
