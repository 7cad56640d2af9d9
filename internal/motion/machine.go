package motion

import "time"

// Thresholds are the two edges of the hysteresis band. Down is negative and
// expands the header; Up is positive and collapses it.
type Thresholds struct {
	Down float64
	Up   float64
}

// DefaultThresholds returns -30 / +10.
func DefaultThresholds() Thresholds {
	return Thresholds{Down: -30, Up: 10}
}

// Contains reports whether y lies strictly inside the band, where the
// machine never changes mode.
func (t Thresholds) Contains(y float64) bool {
	return y > t.Down && y < t.Up
}

// Transition describes one edge crossing.
type Transition struct {
	From     PresentationMode
	To       PresentationMode
	Duration time.Duration
	Haptic   Haptic
}

type subscriber struct {
	id int
	fn func(Transition)
}

// Machine is the two-state expansion machine. The mode only changes through
// Observe or Toggle, and every change is delivered to subscribers exactly
// once.
type Machine struct {
	thresholds  Thresholds
	duration    time.Duration
	mode        PresentationMode
	subscribers []subscriber
	nextID      int
}

// NewMachine creates a machine in the Collapsed mode.
func NewMachine(t Thresholds, duration time.Duration) *Machine {
	return &Machine{thresholds: t, duration: duration}
}

// Mode returns the active presentation mode.
func (m *Machine) Mode() PresentationMode {
	return m.mode
}

// Thresholds returns the configured band.
func (m *Machine) Thresholds() Thresholds {
	return m.thresholds
}

// Observe feeds one offset sample and reports the transition it caused.
func (m *Machine) Observe(y float64) (Transition, bool) {
	switch m.mode {
	case Collapsed:
		if y <= m.thresholds.Down {
			return m.transition(Expanded), true
		}
	case Expanded:
		if y >= m.thresholds.Up {
			return m.transition(Collapsed), true
		}
	}
	return Transition{}, false
}

// Toggle flips the mode in response to a tap. Taps are only defined while the
// content is at rest; anything else is ignored.
func (m *Machine) Toggle(y float64) (Transition, bool) {
	if y != 0 {
		return Transition{}, false
	}
	switch m.mode {
	case Collapsed:
		return m.transition(Expanded), true
	case Expanded:
		return m.transition(Collapsed), true
	}
	return Transition{}, false
}

// Subscribe registers fn for every future transition. The returned function
// removes the subscription.
func (m *Machine) Subscribe(fn func(Transition)) (cancel func()) {
	id := m.nextID
	m.nextID++
	m.subscribers = append(m.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range m.subscribers {
			if s.id == id {
				m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (m *Machine) transition(to PresentationMode) Transition {
	t := Transition{
		From:     m.mode,
		To:       to,
		Duration: m.duration,
		Haptic:   HapticSoft,
	}
	if to == Expanded {
		t.Haptic = HapticMedium
	}
	m.mode = to

	// Copy so a subscriber may cancel itself.
	subs := append([]subscriber(nil), m.subscribers...)
	for _, s := range subs {
		s.fn(t)
	}
	return t
}
