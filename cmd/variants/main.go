// Prints every builtin screen variant and samples its parameter laws over a
// range of offsets, for tuning presets without starting the TUI.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/islandprofile/internal/motion"
	"github.com/llehouerou/islandprofile/internal/preset"
)

// Offsets sampled for each variant, in points.
var samples = []float64{-60, -30, -10, 0, 10, 45, 90, 165}

func main() {
	only := flag.String("variant", "", "print only this variant")
	zoom := flag.Bool("zoom", true, "sample the island with the zoom effect")
	flag.Parse()

	log.SetFlags(0)
	log.SetOutput(os.Stdout)

	f, err := preset.Builtin()
	if err != nil {
		log.Fatalf("Failed to load presets: %v", err)
	}

	metrics := motion.DeviceMetrics{
		SafeAreaTop: 59,
		IslandSize:  motion.Size{Width: 126, Height: 37},
		ScreenWidth: 393,
	}

	for _, name := range f.Names() {
		if *only != "" && name != *only {
			continue
		}
		cfg, err := f.Config(name)
		if err != nil {
			log.Fatalf("Failed to resolve %s: %v", name, err)
		}
		printVariant(name, f.Variants[name].Description, cfg, metrics, *zoom)
	}
}

func printVariant(name, description string, cfg motion.Config, metrics motion.DeviceMetrics, zoom bool) {
	log.Printf("%s: %s", name, description)
	log.Printf("  band %s / %s, transition %s, snap (0, %s), paging %v, overrides %v",
		num(cfg.Thresholds.Down), num(cfg.Thresholds.Up), cfg.TransitionDuration,
		num(cfg.SnapUpperBound), cfg.HeaderPaging, cfg.Overrides.Fields.Names())

	d := motion.NewDeriver(cfg.Constants, cfg.Laws, cfg.Overrides)
	m := motion.NewMachine(cfg.Thresholds, cfg.TransitionDuration)
	log.Printf("  %8s %10s %7s %7s %7s %7s %7s", "y", "mode", "scale", "island", "avatar", "header", "blur")
	for _, y := range samples {
		m.Observe(y)
		p := d.Derive(y, m.Mode(), metrics, zoom && cfg.ZoomEffect)
		log.Printf("  %8s %10s %7s %7s %7s %7s %7s",
			num(y), m.Mode(), num(p.Scale), num(p.IslandScale),
			num(p.AvatarOpacity), num(p.HeaderOpacity), num(p.BlurRadius))
	}
	log.Println()
}

func num(f float64) string {
	return humanize.FtoaWithDigits(f, 3)
}
