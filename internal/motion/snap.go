package motion

// DefaultSnapUpperBound is the end of the snapping dead zone, in points.
const DefaultSnapUpperBound = 165

// Snapper decides where the header settles when a drag ends mid-transition.
type Snapper struct {
	UpperBound float64
	Enabled    bool
}

// NewSnapper returns an enabled snapper for the dead zone (0, bound).
func NewSnapper(bound float64) Snapper {
	return Snapper{UpperBound: bound, Enabled: true}
}

// OnDragEnded returns the anchor for an offset inside the dead zone. Offsets
// at rest, past the bound, or with paging disabled are left alone.
func (s Snapper) OnDragEnded(y float64) SnapDecision {
	if !s.Enabled || !(y > 0 && y < s.UpperBound) {
		return SnapDecision{}
	}
	anchor := AnchorBottom
	if y > s.UpperBound/2 {
		anchor = AnchorTop
	}
	return SnapDecision{ShouldSnap: true, Anchor: anchor}
}
