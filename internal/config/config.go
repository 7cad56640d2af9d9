package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/islandprofile/internal/motion"
)

const appName = "islandprofile"

type Config struct {
	Variant string `koanf:"variant"` // "profile", "constructor", "compact"
	Haptics bool   `koanf:"haptics"` // play a short tone on mode changes
	LogFile string `koanf:"log_file"`

	// Per-field overrides of the selected variant
	Motion MotionConfig `koanf:"motion"`

	// Simulated device; terminal width drives the screen width
	Device DeviceConfig `koanf:"device"`

	UI UIConfig `koanf:"ui"`
}

// MotionConfig overrides values of the selected variant. Nil or zero fields
// keep the variant's value.
type MotionConfig struct {
	DownThreshold  *float64 `koanf:"down_threshold"`
	UpThreshold    *float64 `koanf:"up_threshold"`
	SnapUpperBound *float64 `koanf:"snap_upper_bound"`
	TransitionMS   int      `koanf:"transition_ms"`
	HeaderPaging   *bool    `koanf:"header_paging"`
	ZoomEffect     *bool    `koanf:"zoom_effect"`
}

// DeviceConfig describes the simulated phone.
type DeviceConfig struct {
	SafeAreaTop      *float64 `koanf:"safe_area_top"` // > 47 means the island is simulated
	IslandWidth      float64  `koanf:"island_width"`
	IslandHeight     float64  `koanf:"island_height"`
	IslandTopPadding float64  `koanf:"island_top_padding"`
	PointsPerColumn  float64  `koanf:"points_per_column"` // terminal cell width in points
	PointsPerRow     float64  `koanf:"points_per_row"`    // terminal cell height in points
	DetectCellSize   bool     `koanf:"detect_cell_size"`  // derive the row height from the terminal's pixel size
}

// UIConfig holds renderer settings.
type UIConfig struct {
	HeaderPinning  *bool   `koanf:"header_pinning"`
	ShowIndicators bool    `koanf:"show_indicators"`
	Debug          bool    `koanf:"debug"`
	AvatarPath     string  `koanf:"avatar_path"`
	WheelStep      float64 `koanf:"wheel_step"`       // points per wheel notch
	DragEndMS      int     `koanf:"drag_end_ms"`      // idle time that ends a wheel/key drag
	MaxPull        float64 `koanf:"max_pull"`         // overscroll limit in points
	Resistance     float64 `koanf:"resistance"`       // overscroll travel per point dragged
	CellCount      int     `koanf:"cell_count"`       // placeholder cells under the header
	SpringFPS      int     `koanf:"spring_fps"`       // animation frame rate
	SpringDamping  float64 `koanf:"spring_damping"`   // snap spring damping ratio
	SpringFreq     float64 `koanf:"spring_frequency"` // snap spring angular frequency
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.UI.AvatarPath = expandPath(cfg.UI.AvatarPath)
	cfg.LogFile = expandPath(cfg.LogFile)

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/islandprofile/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ApplyMotion lays the [motion] overrides on top of a variant configuration.
func (c *Config) ApplyMotion(base motion.Config) motion.Config {
	m := c.Motion
	if m.DownThreshold != nil {
		base.Thresholds.Down = *m.DownThreshold
	}
	if m.UpThreshold != nil {
		base.Thresholds.Up = *m.UpThreshold
	}
	if m.SnapUpperBound != nil {
		base.SnapUpperBound = *m.SnapUpperBound
	}
	if m.TransitionMS > 0 {
		base.TransitionDuration = time.Duration(m.TransitionMS) * time.Millisecond
	}
	if m.HeaderPaging != nil {
		base.HeaderPaging = *m.HeaderPaging
	}
	if m.ZoomEffect != nil {
		base.ZoomEffect = *m.ZoomEffect
	}
	return base.Normalized()
}

// GetDeviceConfig returns the device configuration with defaults applied.
// The defaults describe a phone with an island cutout.
func (c *Config) GetDeviceConfig() DeviceConfig {
	cfg := c.Device

	if cfg.SafeAreaTop == nil {
		top := 59.0
		cfg.SafeAreaTop = &top
	}
	if cfg.IslandWidth <= 0 {
		cfg.IslandWidth = 126
	}
	if cfg.IslandHeight < 0 {
		cfg.IslandHeight = 0
	} else if cfg.IslandHeight == 0 {
		cfg.IslandHeight = 37
	}
	if cfg.IslandTopPadding <= 0 {
		cfg.IslandTopPadding = 11
	}
	if cfg.PointsPerColumn <= 0 {
		cfg.PointsPerColumn = 8
	}
	if cfg.PointsPerRow <= 0 {
		cfg.PointsPerRow = 16
	}

	return cfg
}

// GetUIConfig returns the renderer configuration with defaults applied.
func (c *Config) GetUIConfig() UIConfig {
	cfg := c.UI

	if cfg.HeaderPinning == nil {
		pin := true
		cfg.HeaderPinning = &pin
	}
	if cfg.WheelStep <= 0 {
		cfg.WheelStep = 12
	}
	if cfg.DragEndMS <= 0 {
		cfg.DragEndMS = 150
	}
	if cfg.MaxPull <= 0 {
		cfg.MaxPull = 150
	}
	if cfg.Resistance <= 0 || cfg.Resistance > 1 {
		cfg.Resistance = 0.5
	}
	if cfg.CellCount <= 0 {
		cfg.CellCount = 25
	}
	if cfg.SpringFPS <= 0 || cfg.SpringFPS > 120 {
		cfg.SpringFPS = 60
	}
	if cfg.SpringDamping <= 0 {
		cfg.SpringDamping = 1.0
	}
	if cfg.SpringFreq <= 0 {
		cfg.SpringFreq = 7.0
	}

	return cfg
}

// DragEnd returns the idle time after which a wheel or key drag ends.
func (u UIConfig) DragEnd() time.Duration {
	return time.Duration(u.DragEndMS) * time.Millisecond
}
