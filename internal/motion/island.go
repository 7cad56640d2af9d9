package motion

import "time"

// Fade timings for the island shape when the app changes scene phase.
const (
	ForegroundFadeDelay    = 300 * time.Millisecond
	ForegroundFadeDuration = 300 * time.Millisecond
)

// Fade is a linear alpha ramp that starts after Delay.
type Fade struct {
	From     float64
	To       float64
	Start    time.Time
	Delay    time.Duration
	Duration time.Duration
}

// Alpha returns the fade value at now.
func (f Fade) Alpha(now time.Time) float64 {
	elapsed := now.Sub(f.Start) - f.Delay
	if elapsed < 0 {
		return f.From
	}
	if f.Duration <= 0 || elapsed >= f.Duration {
		return f.To
	}
	t := float64(elapsed) / float64(f.Duration)
	return f.From + (f.To-f.From)*t
}

// Done reports whether the fade has reached its target at now.
func (f Fade) Done(now time.Time) bool {
	return now.Sub(f.Start) >= f.Delay+f.Duration
}

// IslandVisibility gates the island shape on the scene phase. A new phase
// supersedes any fade still running, starting from the current alpha.
type IslandVisibility struct {
	active bool
	fade   Fade
}

// NewIslandVisibility starts fully visible and active.
func NewIslandVisibility() IslandVisibility {
	return IslandVisibility{active: true, fade: Fade{From: 1, To: 1}}
}

// SetActive records a scene phase change. Backgrounding hides the island
// immediately; foregrounding fades it back in after a short delay.
func (v *IslandVisibility) SetActive(active bool, now time.Time) Fade {
	if v.active == active {
		return v.fade
	}
	v.active = active
	current := v.fade.Alpha(now)
	if active {
		v.fade = Fade{
			From:     current,
			To:       1,
			Start:    now,
			Delay:    ForegroundFadeDelay,
			Duration: ForegroundFadeDuration,
		}
	} else {
		v.fade = Fade{From: current, To: 0, Start: now}
	}
	return v.fade
}

// Active reports the last scene phase.
func (v IslandVisibility) Active() bool {
	return v.active
}

// Alpha returns the island opacity at now.
func (v IslandVisibility) Alpha(now time.Time) float64 {
	return v.fade.Alpha(now)
}

// Animating reports whether the fade is still running at now.
func (v IslandVisibility) Animating(now time.Time) bool {
	return !v.fade.Done(now)
}

// IslandState is what the renderer needs to draw the island capsule. The
// capsule is always the same component; Shown and Alpha decide how much of it
// is visible.
type IslandState struct {
	Shown      bool // device has a cutout
	Alpha      float64
	Scale      float64
	Size       Size
	TopPadding float64
}

// Visible reports whether anything of the capsule should be drawn.
func (s IslandState) Visible() bool {
	return s.Shown && s.Alpha > 0 && s.Size.Height > 0
}
