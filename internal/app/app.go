// internal/app/app.go
package app

import (
	"image"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/islandprofile/internal/config"
	"github.com/llehouerou/islandprofile/internal/device"
	"github.com/llehouerou/islandprofile/internal/haptics"
	"github.com/llehouerou/islandprofile/internal/keymap"
	"github.com/llehouerou/islandprofile/internal/motion"
	"github.com/llehouerou/islandprofile/internal/profile"
	"github.com/llehouerou/islandprofile/internal/ui/avatar"
	"github.com/llehouerou/islandprofile/internal/ui/styles"
)

// placeholderSize is the pixel edge of the generated avatar.
const placeholderSize = 256

// Options are the dependencies of the root model.
type Options struct {
	Config  *config.Config
	Motion  motion.Config // resolved variant with [motion] overrides applied
	Variant string
	User    profile.User
	Avatar  image.Image    // nil selects the placeholder
	Pulser  haptics.Pulser // nil disables haptic feedback
	Stderr  <-chan string  // captured stderr lines, nil when not captured
}

// transitions collects mode changes reported by the coordinator between two
// updates. It is shared by every copy of the model.
type transitions struct {
	pending []motion.Transition
}

// Model is the root application model.
type Model struct {
	ui       config.UIConfig
	variant  string
	user     profile.User
	device   *device.Terminal
	motion   *motion.Coordinator
	avatar   *avatar.Renderer
	pulser   haptics.Pulser
	stderr   <-chan string
	resolver *keymap.Resolver
	help     help.Model
	helpKeys keymap.Help
	events   *transitions
	now      func() time.Time

	Width  int
	Height int

	scroll scroller
	morph  morph

	// Settings switched at runtime
	Pinning    bool
	Indicators bool
	Debug      bool

	// Input state
	mouse       mouseState
	virtualDrag bool
	dragVersion int
	ticking     bool

	// Navigation bar swap
	navAway bool
	navSwap time.Time

	frames int
	Status string
}

// New creates the root model.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	ui := cfg.GetUIConfig()
	term := device.NewTerminal(cfg.GetDeviceConfig())

	src := opts.Avatar
	if src == nil {
		src = avatar.Placeholder(placeholderSize)
	}
	pulser := opts.Pulser
	if pulser == nil {
		pulser = haptics.Nop{}
	}

	h := help.New()
	h.Styles.ShortKey = styles.T().S().Key
	h.Styles.FullKey = styles.T().S().Key
	h.Styles.ShortDesc = styles.T().S().Subtle
	h.Styles.FullDesc = styles.T().S().Muted

	m := Model{
		ui:         ui,
		variant:    opts.Variant,
		user:       opts.User,
		device:     term,
		motion:     motion.NewCoordinator(opts.Motion, term.Metrics()),
		avatar:     avatar.NewRenderer(src),
		pulser:     pulser,
		stderr:     opts.Stderr,
		resolver:   keymap.NewResolver(keymap.All),
		help:       h,
		helpKeys:   keymap.NewHelp(),
		events:     &transitions{},
		now:        time.Now,
		scroll:     newScroller(ui.SpringFPS, ui.SpringFreq, ui.SpringDamping),
		Pinning:    *ui.HeaderPinning,
		Indicators: ui.ShowIndicators,
		Debug:      ui.Debug,
		mouse:      mouseState{hover: -1},
	}
	events := m.events
	m.motion.Subscribe(func(t motion.Transition) {
		events.pending = append(events.pending, t)
	})
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForStderr(m.stderr)
}

// Presentation returns the state the screen is currently drawn from.
func (m Model) Presentation() motion.Presentation {
	return m.motion.Current()
}

// Offset returns the scroll offset in points.
func (m Model) Offset() float64 {
	return m.scroll.y
}
