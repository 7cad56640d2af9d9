package motion

import "time"

// DefaultTransitionDuration is the animation length of a mode change.
const DefaultTransitionDuration = 250 * time.Millisecond

// Config is the full parameter record of one screen variant.
type Config struct {
	Thresholds         Thresholds
	TransitionDuration time.Duration
	SnapUpperBound     float64
	HeaderPaging       bool
	ZoomEffect         bool

	Constants Constants
	Laws      Laws
	Geometry  Geometry
	Overrides Overrides
}

// DefaultConfig returns the stock variant with paging and zoom enabled.
func DefaultConfig() Config {
	c := DefaultConstants()
	return Config{
		Thresholds:         DefaultThresholds(),
		TransitionDuration: DefaultTransitionDuration,
		SnapUpperBound:     DefaultSnapUpperBound,
		HeaderPaging:       true,
		ZoomEffect:         true,
		Constants:          c,
		Laws:               DefaultLaws(),
		Geometry:           DefaultGeometry(),
		Overrides:          DefaultOverrides(c),
	}
}

// Normalized returns c with out-of-range values replaced by defaults. The
// down threshold must be negative and the up threshold positive, otherwise
// the band would not be a band.
func (c Config) Normalized() Config {
	d := DefaultConfig()
	if c.Thresholds.Down >= 0 {
		c.Thresholds.Down = d.Thresholds.Down
	}
	if c.Thresholds.Up <= 0 {
		c.Thresholds.Up = d.Thresholds.Up
	}
	if c.TransitionDuration <= 0 {
		c.TransitionDuration = d.TransitionDuration
	}
	if c.SnapUpperBound <= 0 {
		c.SnapUpperBound = d.SnapUpperBound
	}
	if c.Constants == (Constants{}) {
		c.Constants = d.Constants
	}
	if c.Geometry == (Geometry{}) {
		c.Geometry = d.Geometry
	}
	if c.Overrides.Values == (VisualParameters{}) {
		c.Overrides.Values = OpenValues(c.Constants)
	}
	c.Laws = c.Laws.withDefaults()
	return c
}
