package motion

// Tracker normalizes raw container offsets and latches the drag flag.
type Tracker struct {
	offset   ScrollOffset
	dragging bool
}

// OnScrollChanged inverts the raw vertical offset. No clamping is done here;
// every consumer clamps what it reads.
func (t *Tracker) OnScrollChanged(raw Point) ScrollOffset {
	t.offset = ScrollOffset{Y: -raw.Y}
	return t.offset
}

// OnDragStateChanged records the drag flag and reports whether it flipped.
func (t *Tracker) OnDragStateChanged(dragging bool) bool {
	if t.dragging == dragging {
		return false
	}
	t.dragging = dragging
	return true
}

// Offset returns the last normalized offset.
func (t *Tracker) Offset() ScrollOffset {
	return t.offset
}

// IsDragging returns the latched drag flag.
func (t *Tracker) IsDragging() bool {
	return t.dragging
}
