// Package haptics plays short tones in place of a taptic engine when the
// profile header changes mode.
package haptics

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/llehouerou/islandprofile/internal/errmsg"
	"github.com/llehouerou/islandprofile/internal/motion"
)

const sampleRate = beep.SampleRate(44100)

// Pulser plays the feedback attached to a transition. Pulse must not block.
type Pulser interface {
	Pulse(h motion.Haptic)
}

// Nop discards every pulse.
type Nop struct{}

// Pulse implements Pulser.
func (Nop) Pulse(motion.Haptic) {}

// Tone is the sound of one haptic style. Volume is in the logarithmic units
// of effects.Volume with base 2; 0 is unchanged and -1 is half.
type Tone struct {
	Frequency float64
	Duration  time.Duration
	Volume    float64
}

// ToneFor maps a haptic style to its tone. Medium is lower and longer than
// soft, the way a heavier tap feels.
func ToneFor(h motion.Haptic) (Tone, bool) {
	switch h {
	case motion.HapticMedium:
		return Tone{Frequency: 150, Duration: 35 * time.Millisecond, Volume: -1.5}, true
	case motion.HapticSoft:
		return Tone{Frequency: 220, Duration: 20 * time.Millisecond, Volume: -3}, true
	default:
		return Tone{}, false
	}
}

// Speaker plays pulses on the default audio output.
type Speaker struct {
	mu          sync.Mutex
	initialized bool
}

// NewSpeaker returns an uninitialized speaker; call Init before Pulse.
func NewSpeaker() *Speaker {
	return &Speaker{}
}

// Init opens the audio output. A short buffer keeps pulses in step with the
// animation.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/50)); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

// Pulse implements Pulser. It is a no-op before Init.
func (s *Speaker) Pulse(h motion.Haptic) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	tone, ok := ToneFor(h)
	if !ok {
		return
	}
	st, err := Streamer(sampleRate, tone)
	if err != nil {
		log.Print(errmsg.Format(errmsg.OpHaptic, err))
		return
	}
	speaker.Play(st)
}

// Close stops anything still playing.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		speaker.Clear()
		s.initialized = false
	}
}

// Streamer renders tone at sr. The result drains after tone.Duration.
func Streamer(sr beep.SampleRate, tone Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, tone.Frequency)
	if err != nil {
		return nil, err
	}
	n := sr.N(tone.Duration)
	env := &envelope{Streamer: beep.Take(n, sine), total: n}
	return &effects.Volume{Streamer: env, Base: 2, Volume: tone.Volume}, nil
}

// envelope ramps the first and last tenth of a tone linearly so it starts
// and stops without a click.
type envelope struct {
	beep.Streamer
	pos   int
	total int
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.Streamer.Stream(samples)
	ramp := max(e.total/10, 1)
	for i := range samples[:n] {
		gain := 1.0
		if e.pos < ramp {
			gain = float64(e.pos) / float64(ramp)
		} else if left := e.total - e.pos; left < ramp {
			gain = float64(left) / float64(ramp)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}
