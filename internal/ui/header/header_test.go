package header

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/islandprofile/internal/motion"
	"github.com/llehouerou/islandprofile/internal/profile"
	"github.com/llehouerou/islandprofile/internal/ui/layout"
	"github.com/llehouerou/islandprofile/internal/ui/testutil"
)

func optionsAt(y float64, mode motion.PresentationMode) Options {
	d := motion.NewDeriver(motion.DefaultConstants(), motion.DefaultLaws(), motion.DefaultOverrides(motion.DefaultConstants()))
	return Options{
		Width:     40,
		Grid:      layout.DefaultGrid(),
		Mode:      mode,
		Params:    d.Derive(y, mode, motion.DeviceMetrics{}, false),
		Layout:    d.HeaderLayout(motion.DefaultGeometry(), y, mode, true),
		Constants: d.Constants,
	}
}

func TestRender_AtRest(t *testing.T) {
	o := optionsAt(0, motion.Collapsed)
	out := Render(profile.Mock(), o)
	lines := testutil.Lines(out)

	require.Len(t, lines, Height(o))
	assert.Equal(t, 3, Height(o), "title, description, padding")
	assert.Equal(t, "P u s l a n", strings.TrimSpace(lines[0]), "large title is tracked")
	assert.Equal(t, "+99999999 • @puslanus", strings.TrimSpace(lines[1]))
	for _, line := range lines {
		assert.Equal(t, 40, testutil.MeasureWidth(line))
	}
}

func TestRender_TitleCentered(t *testing.T) {
	lines := testutil.Lines(Render(profile.Mock(), optionsAt(0, motion.Collapsed)))
	left := len(lines[0]) - len(strings.TrimLeft(lines[0], " "))
	right := len(lines[0]) - len(strings.TrimRight(lines[0], " "))
	assert.InDelta(t, left, right, 1)
}

func TestRender_ScrolledShrinksTitle(t *testing.T) {
	o := optionsAt(80, motion.Collapsed)
	lines := testutil.Lines(Render(profile.Mock(), o))

	assert.Equal(t, "Puslan", strings.TrimSpace(lines[0]))
	assert.Equal(t, 0, Tracking(o.Params.TitleFontSize, o.Constants))
}

func TestRender_DescriptionCollapses(t *testing.T) {
	// 20 - (y * 0.05)^2 falls to the notch minimum of 4 points.
	o := optionsAt(85, motion.Collapsed)
	assert.InDelta(t, 4.0, o.Layout.DescriptionHeight, 1e-9)
	assert.Equal(t, 1+paddingRows(o), Height(o))
	assert.False(t, testutil.ContainsLine(Render(profile.Mock(), o), "@puslanus"))
}

func TestRender_ExpandedTitleOnImage(t *testing.T) {
	o := optionsAt(-40, motion.Expanded)
	lines := testutil.Lines(Render(profile.Mock(), o))

	assert.True(t, strings.HasPrefix(lines[0], "  Puslan"), "left aligned: %q", lines[0])
}

func TestTracking(t *testing.T) {
	c := motion.DefaultConstants()
	assert.Equal(t, 1, Tracking(c.Title1FontSize, c))
	assert.Equal(t, 1, Tracking(22.5, c))
	assert.Equal(t, 0, Tracking(22, c))
	assert.Equal(t, 0, Tracking(c.BodyFontSize, c))
}

func TestDivider(t *testing.T) {
	assert.Equal(t, strings.Repeat("─", 5), testutil.StripANSI(Divider(5)))
}

func TestRender_ZeroWidth(t *testing.T) {
	o := optionsAt(0, motion.Collapsed)
	o.Width = 0
	assert.Empty(t, Render(profile.Mock(), o))
}
