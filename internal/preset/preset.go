// Package preset holds the named screen variants of the profile header.
package preset

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/llehouerou/islandprofile/internal/motion"
)

//go:embed variants.yaml
var variantsYAML []byte

// ErrUnknownVariant is returned when a variant name is not defined.
var ErrUnknownVariant = errors.New("unknown variant")

// Variant is one screen variant as written in the presets file.
type Variant struct {
	Description    string   `yaml:"description"`
	DownThreshold  float64  `yaml:"down_threshold"`
	UpThreshold    float64  `yaml:"up_threshold"`
	TransitionMS   int      `yaml:"transition_ms"`
	SnapUpperBound float64  `yaml:"snap_upper_bound"`
	Overrides      []string `yaml:"overrides"`
	HeaderPaging   *bool    `yaml:"header_paging"`
	ZoomEffect     *bool    `yaml:"zoom_effect"`
}

// File is the decoded presets document.
type File struct {
	Default  string             `yaml:"default"`
	Variants map[string]Variant `yaml:"variants"`
}

// Parse decodes a presets document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	if len(f.Variants) == 0 {
		return nil, errors.New("presets define no variants")
	}
	if _, ok := f.Variants[f.Default]; !ok {
		return nil, fmt.Errorf("default variant %q: %w", f.Default, ErrUnknownVariant)
	}
	return &f, nil
}

// Builtin returns the embedded presets.
func Builtin() (*File, error) {
	return Parse(variantsYAML)
}

// Names returns the variant names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Variants))
	for name := range f.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Config resolves a variant into a motion configuration. An empty name
// selects the default variant.
func (f *File) Config(name string) (motion.Config, error) {
	if name == "" {
		name = f.Default
	}
	v, ok := f.Variants[name]
	if !ok {
		return motion.Config{}, fmt.Errorf("%q: %w", name, ErrUnknownVariant)
	}
	return v.Config()
}

// Config converts the variant into a motion configuration on top of the
// defaults.
func (v Variant) Config() (motion.Config, error) {
	cfg := motion.DefaultConfig()
	cfg.Thresholds = motion.Thresholds{Down: v.DownThreshold, Up: v.UpThreshold}
	cfg.TransitionDuration = time.Duration(v.TransitionMS) * time.Millisecond
	cfg.SnapUpperBound = v.SnapUpperBound

	fields, err := motion.ParseFields(v.Overrides)
	if err != nil {
		return motion.Config{}, err
	}
	cfg.Overrides.Fields = fields

	if v.HeaderPaging != nil {
		cfg.HeaderPaging = *v.HeaderPaging
	}
	if v.ZoomEffect != nil {
		cfg.ZoomEffect = *v.ZoomEffect
	}
	return cfg.Normalized(), nil
}

// Load resolves a builtin variant by name.
func Load(name string) (motion.Config, error) {
	f, err := Builtin()
	if err != nil {
		return motion.Config{}, err
	}
	return f.Config(name)
}
