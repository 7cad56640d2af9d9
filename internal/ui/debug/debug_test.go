package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/islandprofile/internal/motion"
	"github.com/llehouerou/islandprofile/internal/ui/testutil"
)

func TestLines(t *testing.T) {
	p := motion.Presentation{
		Offset: motion.ScrollOffset{Y: 42.126},
		Mode:   motion.Expanded,
		Params: motion.VisualParameters{Scale: 1, AvatarOpacity: 0.5},
	}
	info := Info{Variant: "profile", Frames: 12345, Snap: motion.SnapDecision{ShouldSnap: true, Anchor: motion.AnchorTop}}

	got := map[string]string{}
	for _, l := range Lines(p, info) {
		got[l[0]] = l[1]
	}

	assert.Equal(t, "profile", got["variant"])
	assert.Equal(t, "42.13", got["offset"])
	assert.Equal(t, "expanded", got["mode"])
	assert.Equal(t, "1", got["scale"])
	assert.Equal(t, "0.5", got["avatar α"])
	assert.Equal(t, "top", got["snap"])
	assert.Equal(t, "12,345", got["frames"])
}

func TestNum_Rounds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{42.126, "42.13"},
		{42.124, "42.12"},
		{0.999, "1"},
		{-0.375, "-0.38"},
		{0, "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, num(tt.in), "num(%v)", tt.in)
	}
}

func TestLines_NoSnap(t *testing.T) {
	for _, l := range Lines(motion.Presentation{}, Info{}) {
		if l[0] == "snap" {
			assert.Equal(t, "none", l[1])
		}
	}
}

func TestRender(t *testing.T) {
	view := testutil.StripANSI(Render(motion.Presentation{}, Info{Variant: "compact"}, 30))

	assert.Equal(t, 30, testutil.MeasureWidth(view))
	assert.True(t, testutil.ContainsLine(view, "compact"))
	assert.True(t, testutil.ContainsLine(view, "collapsed"))
	assert.Len(t, testutil.Lines(view), len(Lines(motion.Presentation{}, Info{}))+2)
}
