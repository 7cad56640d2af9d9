package motion

import "time"

// Presentation is the complete state the renderer consumes after one event.
type Presentation struct {
	Offset   ScrollOffset
	Dragging bool
	Mode     PresentationMode

	// Params are the values to render. Interpolated holds the same values
	// before the expanded override set was applied.
	Params       VisualParameters
	Interpolated VisualParameters

	Avatar             AvatarLayout
	AvatarOffset       float64
	AvatarScrolledAway bool
	Header             HeaderLayout
	Island             IslandState
}

// Coordinator wires the tracker, deriver, expansion machine, snapper and
// island visibility into one per-event state. It must only be used from the
// goroutine that delivers scroll events.
type Coordinator struct {
	cfg      Config
	tracker  Tracker
	deriver  Deriver
	machine  *Machine
	snapper  Snapper
	island   IslandVisibility
	metrics  DeviceMetrics
	zoom     bool
	now      func() time.Time
	current  Presentation
	lastSnap SnapDecision
}

// NewCoordinator builds a coordinator for cfg. The zoom effect is only on
// when the config asks for it and the device has a cutout.
func NewCoordinator(cfg Config, metrics DeviceMetrics) *Coordinator {
	cfg = cfg.Normalized()
	snapper := NewSnapper(cfg.SnapUpperBound)
	snapper.Enabled = cfg.HeaderPaging

	c := &Coordinator{
		cfg:     cfg,
		deriver: NewDeriver(cfg.Constants, cfg.Laws, cfg.Overrides),
		machine: NewMachine(cfg.Thresholds, cfg.TransitionDuration),
		snapper: snapper,
		island:  NewIslandVisibility(),
		metrics: metrics,
		zoom:    cfg.ZoomEffect && metrics.IsNotchPresent(),
		now:     time.Now,
	}
	c.current = c.compose()
	return c
}

// Config returns the normalized configuration.
func (c *Coordinator) Config() Config {
	return c.cfg
}

// Deriver exposes the parameter deriver for renderers that need the raw laws.
func (c *Coordinator) Deriver() Deriver {
	return c.deriver
}

// ScrollChanged handles a content offset change.
func (c *Coordinator) ScrollChanged(raw Point) Presentation {
	offset := c.tracker.OnScrollChanged(raw)
	c.machine.Observe(offset.Y)
	c.current = c.compose()
	return c.current
}

// DragStateChanged handles a drag start or end. A snap decision is only made
// on the edge from dragging to not dragging.
func (c *Coordinator) DragStateChanged(dragging bool) (Presentation, SnapDecision) {
	var decision SnapDecision
	if c.tracker.OnDragStateChanged(dragging) && !dragging {
		decision = c.snapper.OnDragEnded(c.tracker.Offset().Y)
		c.lastSnap = decision
	}
	c.current = c.compose()
	return c.current, decision
}

// ScenePhaseChanged gates the island on the app being in the foreground.
func (c *Coordinator) ScenePhaseChanged(active bool, now time.Time) Fade {
	fade := c.island.SetActive(active, now)
	c.current = c.composeAt(now)
	return fade
}

// TapAvatar toggles the mode when the content is at rest. It returns false
// when the tap does not map to a transition.
func (c *Coordinator) TapAvatar() bool {
	_, ok := c.machine.Toggle(c.tracker.Offset().Y)
	if ok {
		c.current = c.compose()
	}
	return ok
}

// Refresh recomputes the presentation at now, for time-based fades.
func (c *Coordinator) Refresh(now time.Time) Presentation {
	c.current = c.composeAt(now)
	return c.current
}

// IslandAnimating reports whether the island fade is still running.
func (c *Coordinator) IslandAnimating(now time.Time) bool {
	return c.island.Animating(now)
}

// Current returns the last composed presentation.
func (c *Coordinator) Current() Presentation {
	return c.current
}

// Mode returns the active presentation mode.
func (c *Coordinator) Mode() PresentationMode {
	return c.machine.Mode()
}

// Subscribe forwards to the expansion machine.
func (c *Coordinator) Subscribe(fn func(Transition)) func() {
	return c.machine.Subscribe(fn)
}

// SetMetrics replaces the device metrics, e.g. after a resize.
func (c *Coordinator) SetMetrics(m DeviceMetrics) {
	c.metrics = m
	c.current = c.compose()
}

// Metrics returns the current device metrics.
func (c *Coordinator) Metrics() DeviceMetrics {
	return c.metrics
}

// SetZoomEffect turns the island zoom on or off.
func (c *Coordinator) SetZoomEffect(on bool) {
	c.zoom = on
	c.current = c.compose()
}

// ZoomEffect reports whether the island zoom is on.
func (c *Coordinator) ZoomEffect() bool {
	return c.zoom
}

// SetHeaderPaging enables or disables snapping.
func (c *Coordinator) SetHeaderPaging(on bool) {
	c.snapper.Enabled = on
}

// HeaderPaging reports whether snapping is enabled.
func (c *Coordinator) HeaderPaging() bool {
	return c.snapper.Enabled
}

// LastSnap returns the decision of the most recent drag end.
func (c *Coordinator) LastSnap() SnapDecision {
	return c.lastSnap
}

func (c *Coordinator) compose() Presentation {
	return c.composeAt(c.now())
}

func (c *Coordinator) composeAt(now time.Time) Presentation {
	y := c.tracker.Offset().Y
	mode := c.machine.Mode()
	g := c.cfg.Geometry
	notch := c.metrics.IsNotchPresent()

	interpolated := c.deriver.Interpolate(y, c.metrics, c.zoom)
	params := c.deriver.ApplyOverrides(interpolated, mode)

	return Presentation{
		Offset:             c.tracker.Offset(),
		Dragging:           c.tracker.IsDragging(),
		Mode:               mode,
		Params:             params,
		Interpolated:       interpolated,
		Avatar:             c.deriver.AvatarLayout(g, mode, c.metrics),
		AvatarOffset:       c.deriver.AvatarOffset(g, y),
		AvatarScrolledAway: c.deriver.AvatarScrolledAway(y),
		Header:             c.deriver.HeaderLayout(g, y, mode, notch),
		Island: IslandState{
			Shown:      notch,
			Alpha:      c.island.Alpha(now),
			Scale:      params.IslandScale,
			Size:       c.metrics.IslandSize,
			TopPadding: c.metrics.IslandTopPadding,
		},
	}
}
