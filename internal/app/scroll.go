// internal/app/scroll.go
package app

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/llehouerou/islandprofile/internal/motion"
)

// settleDistance and settleVelocity end a spring once it is close enough
// to its target that another frame would not move a cell.
const (
	settleDistance = 0.5
	settleVelocity = 1.0
)

// scroller owns the content offset in points. Positive values scroll the
// content up; negative values are an overscroll past the top.
type scroller struct {
	y         float64
	vel       float64
	target    float64
	spring    harmonica.Spring
	animating bool
}

func newScroller(fps int, frequency, damping float64) scroller {
	return scroller{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// drag moves the offset by delta points. Travel past the top is scaled by
// resistance and stops at maxPull; the bottom is a hard edge.
func (s *scroller) drag(delta, maxScroll, maxPull, resistance float64) {
	s.stop()
	next := s.y + delta
	if delta < 0 && next < 0 {
		above := math.Max(s.y, 0)
		next = math.Min(s.y, 0) + (delta+above)*resistance
	}
	s.y = math.Max(math.Min(next, maxScroll), -maxPull)
}

// clamp keeps a resting offset inside the scrollable range.
func (s *scroller) clamp(maxScroll float64) {
	if s.y > maxScroll {
		s.y = math.Max(maxScroll, 0)
	}
}

// animateTo starts a spring toward target from the current offset.
func (s *scroller) animateTo(target float64) {
	s.target = target
	s.animating = s.y != target
}

func (s *scroller) stop() {
	s.animating = false
	s.vel = 0
}

// step advances the spring by one frame and reports whether it still runs.
func (s *scroller) step() bool {
	if !s.animating {
		return false
	}
	s.y, s.vel = s.spring.Update(s.y, s.vel, s.target)
	if math.Abs(s.y-s.target) < settleDistance && math.Abs(s.vel) < settleVelocity {
		s.y = s.target
		s.stop()
	}
	return s.animating
}

// morph animates the avatar between the layouts of two modes.
type morph struct {
	from     motion.AvatarLayout
	to       motion.AvatarLayout
	start    time.Time
	duration time.Duration
	active   bool
}

// begin starts a morph from whatever is on screen at now.
func (mo *morph) begin(current, to motion.AvatarLayout, now time.Time, d time.Duration) {
	*mo = morph{from: current, to: to, start: now, duration: d, active: d > 0}
}

// at returns the layout at now, or fallback when no morph is running.
func (mo morph) at(now time.Time, fallback motion.AvatarLayout) motion.AvatarLayout {
	if !mo.active {
		return fallback
	}
	return motion.LerpAvatar(mo.from, mo.to, smoothstep(mo.progress(now)))
}

func (mo morph) progress(now time.Time) float64 {
	if mo.duration <= 0 {
		return 1
	}
	return math.Min(math.Max(float64(now.Sub(mo.start))/float64(mo.duration), 0), 1)
}

// done reports whether a running morph has reached its end at now.
func (mo morph) done(now time.Time) bool {
	return mo.active && mo.progress(now) >= 1
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}
