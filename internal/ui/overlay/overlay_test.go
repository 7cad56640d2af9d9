package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/islandprofile/internal/ui/testutil"
)

func blank(rows, width int) []string {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat(".", width)
	}
	return lines
}

func TestCompose_PlacesBlock(t *testing.T) {
	got := Compose(blank(3, 6), 6, Layer{Content: "ab\ncd", Col: 2, Row: 1})
	assert.Equal(t, []string{"......", "..ab..", "..cd.."}, got)
}

func TestCompose_EdgeSpacesAreTransparent(t *testing.T) {
	got := Compose(blank(1, 6), 6, Layer{Content: " a b ", Col: 0, Row: 0})
	assert.Equal(t, []string{".a b.."}, got)
}

func TestCompose_ClipsNegativeAndOverflow(t *testing.T) {
	got := Compose(blank(2, 4), 4,
		Layer{Content: "xyz", Col: -2, Row: 0},
		Layer{Content: "pqr", Col: 2, Row: 1},
		Layer{Content: "hidden", Col: 0, Row: -1},
	)
	assert.Equal(t, []string{"z...", "..pq"}, got)
}

func TestCompose_LaterLayersWin(t *testing.T) {
	got := Compose(blank(1, 4), 4,
		Layer{Content: "aaaa"},
		Layer{Content: "bb", Col: 1},
	)
	assert.Equal(t, []string{"abba"}, got)
}

func TestCompose_PadsShortBase(t *testing.T) {
	got := Compose([]string{""}, 4, Layer{Content: "x", Col: 2})
	assert.Equal(t, []string{"  x "}, got)
}

func TestCompose_KeepsStyles(t *testing.T) {
	styled := "\x1b[31mred\x1b[0m"
	got := Compose(blank(1, 5), 5, Layer{Content: styled, Col: 1})

	assert.Contains(t, got[0], "\x1b[31m")
	assert.Equal(t, ".red.", testutil.StripANSI(got[0]))
}

func TestPlace(t *testing.T) {
	got := Place("....\n....", "#", 3, 1, 4)
	assert.Equal(t, "....\n...#", got)
}
