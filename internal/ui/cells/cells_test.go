package cells

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/islandprofile/internal/ui/testutil"
)

func sampleToggles() []Toggle {
	return []Toggle{
		{Label: "Zoom Effect", Key: "z", On: true},
		{Label: "Header Paging", Key: "p"},
	}
}

func TestRows(t *testing.T) {
	assert.Equal(t, 5, Rows(sampleToggles(), 2))
	assert.Equal(t, 2, Rows(sampleToggles(), 0))
	assert.Equal(t, 3, Rows(nil, 3))
	assert.Equal(t, 0, Rows(nil, -1))
}

func TestRender(t *testing.T) {
	lines := Render(sampleToggles(), 3, 40, -1)
	require.Len(t, lines, Rows(sampleToggles(), 3))

	for i, l := range lines {
		assert.Equal(t, 40, testutil.MeasureWidth(l), "line %d", i)
	}

	zoom := testutil.StripANSI(lines[0])
	assert.Contains(t, zoom, "Zoom Effect")
	assert.Contains(t, zoom, "[z]")
	assert.Contains(t, zoom, SwitchOn)

	paging := testutil.StripANSI(lines[1])
	assert.Contains(t, paging, SwitchOff)

	assert.Equal(t, "", trimmed(lines[2]), "gap row")
	assert.Contains(t, testutil.StripANSI(lines[3]), "▔")
}

func TestRender_NarrowTruncatesLabel(t *testing.T) {
	lines := Render(sampleToggles(), 0, 16, 0)
	require.Len(t, lines, 2)
	assert.Equal(t, 16, testutil.MeasureWidth(lines[0]))
	assert.Contains(t, testutil.StripANSI(lines[0]), SwitchOn)
}

func TestRender_ZeroWidth(t *testing.T) {
	assert.Nil(t, Render(sampleToggles(), 3, 0, -1))
}

func TestHit(t *testing.T) {
	toggles := sampleToggles()
	assert.Equal(t, 0, Hit(toggles, 0))
	assert.Equal(t, 1, Hit(toggles, 1))
	assert.Equal(t, -1, Hit(toggles, 2))
	assert.Equal(t, -1, Hit(toggles, -1))
}

func trimmed(s string) string {
	out := testutil.StripANSI(s)
	for len(out) > 0 && out[len(out)-1] == ' ' {
		out = out[:len(out)-1]
	}
	return out
}
