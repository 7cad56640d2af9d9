// Package device simulates phone metrics on top of a terminal window.
package device

import (
	"github.com/llehouerou/islandprofile/internal/config"
	"github.com/llehouerou/islandprofile/internal/motion"
	"github.com/llehouerou/islandprofile/internal/ui/layout"
)

// Terminal turns the terminal size into device metrics. The screen width
// follows the window; everything else comes from configuration.
type Terminal struct {
	cfg  config.DeviceConfig
	grid layout.Grid
	cols int
	rows int
}

// NewTerminal expects a configuration with defaults applied.
func NewTerminal(cfg config.DeviceConfig) *Terminal {
	grid := layout.Grid{PointsPerColumn: cfg.PointsPerColumn, PointsPerRow: cfg.PointsPerRow}
	if cfg.DetectCellSize {
		if w, h, ok := cellPixels(); ok {
			grid.PointsPerRow = grid.PointsPerColumn * float64(h) / float64(w)
		}
	}
	return &Terminal{cfg: cfg, grid: grid}
}

// Resize records a new window size and reports whether it changed.
func (t *Terminal) Resize(cols, rows int) bool {
	if cols == t.cols && rows == t.rows {
		return false
	}
	t.cols, t.rows = cols, rows
	return true
}

// Size returns the window size in cells.
func (t *Terminal) Size() (cols, rows int) {
	return t.cols, t.rows
}

// Grid returns the point/cell mapping.
func (t *Terminal) Grid() layout.Grid {
	return t.grid
}

// Metrics returns the simulated device.
func (t *Terminal) Metrics() motion.DeviceMetrics {
	top := 0.0
	if t.cfg.SafeAreaTop != nil {
		top = *t.cfg.SafeAreaTop
	}
	return motion.DeviceMetrics{
		SafeAreaTop:      top,
		IslandSize:       motion.Size{Width: t.cfg.IslandWidth, Height: t.cfg.IslandHeight},
		IslandTopPadding: t.cfg.IslandTopPadding,
		ScreenWidth:      t.grid.X(t.cols),
	}
}

// StatusRows is the height of the simulated status bar. It is at least one
// row so the clock always has a place.
func (t *Terminal) StatusRows() int {
	return max(t.grid.Rows(t.Metrics().SafeAreaTop), 1)
}
