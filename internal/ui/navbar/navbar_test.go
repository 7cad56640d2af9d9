package navbar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/islandprofile/internal/ui/testutil"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		contains []string
		absent   []string
	}{
		{
			name:     "avatar visible shows QR and Edit",
			state:    State{Reveal: 1},
			contains: []string{QR, Edit},
			absent:   []string{Search},
		},
		{
			name:     "scrolled away with pinning offers search",
			state:    State{AvatarScrolledAway: true, Pinning: true, Title: "Puslan", Reveal: 1},
			contains: []string{Search},
			absent:   []string{QR, Edit, "Puslan"},
		},
		{
			name:     "scrolled away without pinning shows the name",
			state:    State{AvatarScrolledAway: true, Title: "Puslan", Reveal: 1},
			contains: []string{"Puslan"},
			absent:   []string{QR, Edit, Search},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testutil.StripANSI(Render(tt.state, 40))
			assert.Equal(t, 40, testutil.MeasureWidth(got))
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestRender_Alignment(t *testing.T) {
	got := testutil.StripANSI(Render(State{Reveal: 1}, 30))
	assert.True(t, strings.HasPrefix(got, " "+QR))
	assert.True(t, strings.HasSuffix(got, Edit+" "))
}

func TestRender_ZeroWidth(t *testing.T) {
	assert.Empty(t, Render(State{}, 0))
}
