package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIslandVisibility_BackgroundHidesImmediately(t *testing.T) {
	now := time.Unix(1000, 0)
	v := NewIslandVisibility()

	assert.InDelta(t, 1.0, v.Alpha(now), 1e-9)

	v.SetActive(false, now)
	assert.InDelta(t, 0.0, v.Alpha(now), 1e-9)
	assert.False(t, v.Animating(now))
}

func TestIslandVisibility_ForegroundFadesAfterDelay(t *testing.T) {
	start := time.Unix(1000, 0)
	v := NewIslandVisibility()
	v.SetActive(false, start)

	v.SetActive(true, start)

	assert.InDelta(t, 0.0, v.Alpha(start.Add(200*time.Millisecond)), 1e-9, "still delayed")
	assert.InDelta(t, 0.5, v.Alpha(start.Add(450*time.Millisecond)), 1e-9)
	assert.InDelta(t, 1.0, v.Alpha(start.Add(600*time.Millisecond)), 1e-9)
	assert.True(t, v.Animating(start.Add(500*time.Millisecond)))
	assert.False(t, v.Animating(start.Add(600*time.Millisecond)))
}

func TestIslandVisibility_SupersededFade(t *testing.T) {
	start := time.Unix(1000, 0)
	v := NewIslandVisibility()
	v.SetActive(false, start)
	v.SetActive(true, start)

	mid := start.Add(450 * time.Millisecond)
	fade := v.SetActive(false, mid)

	assert.InDelta(t, 0.5, fade.From, 1e-9, "starts from the current alpha")
	assert.InDelta(t, 0.0, v.Alpha(mid), 1e-9)
}

func TestIslandVisibility_SamePhaseIsNoop(t *testing.T) {
	now := time.Unix(1000, 0)
	v := NewIslandVisibility()

	v.SetActive(true, now)
	assert.True(t, v.Active())
	assert.InDelta(t, 1.0, v.Alpha(now), 1e-9)
}

func TestIslandState_Visible(t *testing.T) {
	s := IslandState{Shown: true, Alpha: 0.4, Scale: 1, Size: Size{Width: 126, Height: 37}}
	assert.True(t, s.Visible())

	s.Alpha = 0
	assert.False(t, s.Visible())

	s.Alpha, s.Shown = 1, false
	assert.False(t, s.Visible())

	s.Shown, s.Size.Height = true, 0
	assert.False(t, s.Visible())
}
