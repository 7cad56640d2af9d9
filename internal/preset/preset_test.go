package preset

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/islandprofile/internal/motion"
)

func TestBuiltin(t *testing.T) {
	f, err := Builtin()
	require.NoError(t, err)

	assert.Equal(t, "constructor", f.Default)
	assert.Equal(t, []string{"compact", "constructor", "profile"}, f.Names())
}

func TestLoad_Variants(t *testing.T) {
	tests := []struct {
		name      string
		variant   string
		down, up  float64
		duration  time.Duration
		snap      float64
		overrides motion.Field
	}{
		{
			name:      "default is constructor",
			variant:   "",
			down:      -30,
			up:        10,
			duration:  150 * time.Millisecond,
			snap:      165,
			overrides: motion.FieldAvatarOpacity,
		},
		{
			name:      "profile",
			variant:   "profile",
			down:      -10,
			up:        10,
			duration:  250 * time.Millisecond,
			snap:      165,
			overrides: motion.FieldScale | motion.FieldAvatarOpacity | motion.FieldBlurRadius,
		},
		{
			name:      "compact",
			variant:   "compact",
			down:      -30,
			up:        5,
			duration:  200 * time.Millisecond,
			snap:      90,
			overrides: motion.FieldScale | motion.FieldAvatarOpacity | motion.FieldHeaderOpacity | motion.FieldBlurRadius,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.variant)
			require.NoError(t, err)

			assert.Equal(t, motion.Thresholds{Down: tt.down, Up: tt.up}, cfg.Thresholds)
			assert.Equal(t, tt.duration, cfg.TransitionDuration)
			assert.InDelta(t, tt.snap, cfg.SnapUpperBound, 1e-9)
			assert.Equal(t, tt.overrides, cfg.Overrides.Fields)
		})
	}
}

func TestLoad_CompactDisablesZoom(t *testing.T) {
	cfg, err := Load("compact")
	require.NoError(t, err)
	assert.False(t, cfg.ZoomEffect)
	assert.True(t, cfg.HeaderPaging)
}

func TestLoad_Unknown(t *testing.T) {
	_, err := Load("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "variants: [unclosed"},
		{"no variants", "default: a\n"},
		{"missing default", "default: b\nvariants:\n  a:\n    down_threshold: -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestVariant_BadOverride(t *testing.T) {
	v := Variant{DownThreshold: -10, UpThreshold: 10, Overrides: []string{"glow"}}
	_, err := v.Config()
	assert.Error(t, err)
}

func TestVariant_InvalidThresholdsNormalized(t *testing.T) {
	v := Variant{DownThreshold: 5, UpThreshold: -5}
	cfg, err := v.Config()
	require.NoError(t, err)
	assert.Equal(t, motion.DefaultThresholds(), cfg.Thresholds)
}
