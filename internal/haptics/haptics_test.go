package haptics

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/islandprofile/internal/motion"
)

func TestToneFor(t *testing.T) {
	medium, ok := ToneFor(motion.HapticMedium)
	require.True(t, ok)
	soft, ok := ToneFor(motion.HapticSoft)
	require.True(t, ok)

	assert.Less(t, medium.Frequency, soft.Frequency)
	assert.Greater(t, medium.Duration, soft.Duration)

	_, ok = ToneFor(motion.HapticNone)
	assert.False(t, ok)
}

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 128)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestStreamer_Length(t *testing.T) {
	sr := beep.SampleRate(8000)
	tone := Tone{Frequency: 200, Duration: 25 * time.Millisecond}

	st, err := Streamer(sr, tone)
	require.NoError(t, err)

	samples := drain(t, st)
	assert.Len(t, samples, sr.N(tone.Duration))
}

func TestStreamer_EnvelopeSilencesEdges(t *testing.T) {
	sr := beep.SampleRate(8000)
	st, err := Streamer(sr, Tone{Frequency: 200, Duration: 50 * time.Millisecond})
	require.NoError(t, err)

	samples := drain(t, st)
	require.NotEmpty(t, samples)

	assert.InDelta(t, 0.0, samples[0][0], 1e-9, "starts from silence")
	peak := 0.0
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(s[0]))
		assert.LessOrEqual(t, math.Abs(s[0]), 1.0)
	}
	assert.Greater(t, peak, 0.1)
}

func TestStreamer_InvalidFrequency(t *testing.T) {
	_, err := Streamer(beep.SampleRate(8000), Tone{Frequency: 5000, Duration: time.Millisecond})
	assert.Error(t, err, "frequency above Nyquist")
}

func TestSpeaker_PulseBeforeInit(t *testing.T) {
	s := NewSpeaker()
	assert.NotPanics(t, func() {
		s.Pulse(motion.HapticMedium)
		s.Close()
	})
}

func TestNop(t *testing.T) {
	var p Pulser = Nop{}
	assert.NotPanics(t, func() { p.Pulse(motion.HapticSoft) })
}
