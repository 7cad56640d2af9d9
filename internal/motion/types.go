// Package motion turns the scroll offset of the profile screen into everything
// the renderer draws: interpolated visual parameters, the collapsed/expanded
// presentation mode, and the anchor the header should settle on after a drag.
//
// All types in this package are meant to be driven from a single event loop.
// Nothing here blocks or performs I/O.
package motion

import "fmt"

// Point is a raw content offset as reported by the scroll container.
type Point struct {
	X, Y float64
}

// ScrollOffset is the normalized signed scroll distance. Y is the exact
// negation of the container's raw vertical offset.
type ScrollOffset struct {
	Y float64
}

// PresentationMode is the discrete state of the avatar header.
type PresentationMode int

const (
	Collapsed PresentationMode = iota
	Expanded
)

func (m PresentationMode) String() string {
	switch m {
	case Collapsed:
		return "collapsed"
	case Expanded:
		return "expanded"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Anchor is the viewport edge a snapped header is brought to.
type Anchor int

const (
	AnchorBottom Anchor = iota
	AnchorTop
)

func (a Anchor) String() string {
	if a == AnchorTop {
		return "top"
	}
	return "bottom"
}

// SnapDecision is produced once per drag end and consumed immediately.
type SnapDecision struct {
	ShouldSnap bool
	Anchor     Anchor
}

// Haptic is the feedback style attached to a mode transition. Playing it is
// up to the renderer.
type Haptic int

const (
	HapticNone Haptic = iota
	HapticSoft
	HapticMedium
)

// Size is a width/height pair in points.
type Size struct {
	Width, Height float64
}

// notchSafeAreaTop is the top inset above which the device is assumed to have
// an island-style cutout.
const notchSafeAreaTop = 47

// DeviceMetrics are supplied by the host once per layout pass.
type DeviceMetrics struct {
	SafeAreaTop      float64
	IslandSize       Size
	IslandTopPadding float64
	ScreenWidth      float64
}

// IsNotchPresent reports whether the island shape should be simulated at all.
func (d DeviceMetrics) IsNotchPresent() bool {
	return d.SafeAreaTop > notchSafeAreaTop
}

// VisualParameters is a snapshot of every scroll-dependent value the header
// renders. It is recomputed on each offset change and never mutated.
type VisualParameters struct {
	Scale               float64
	IslandScale         float64
	AvatarOpacity       float64
	HeaderOpacity       float64
	BlurRadius          float64
	TitleFontSize       float64
	DescriptionFontSize float64
	HeaderPadding       float64
}
