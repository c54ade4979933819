package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/slidekit/internal/slider"
	"github.com/dshills/slidekit/internal/track"
)

// Settings is the file representation of a slider configuration.
type Settings struct {
	// Min and Max are the domain bounds.
	Min float64 `toml:"min" yaml:"min"`
	Max float64 `toml:"max" yaml:"max"`

	// Step is the quantization granularity.
	Step float64 `toml:"step" yaml:"step"`

	// Range selects two-handle operation.
	Range bool `toml:"range" yaml:"range"`

	// Initial is the starting value in single mode.
	Initial float64 `toml:"initial" yaml:"initial"`

	// InitialMin and InitialMax are the starting endpoints in range mode.
	InitialMin float64 `toml:"initial_min" yaml:"initial_min"`
	InitialMax float64 `toml:"initial_max" yaml:"initial_max"`

	// Disabled suppresses all mutation.
	Disabled bool `toml:"disabled" yaml:"disabled"`

	// LabelScript is an optional Lua script defining format(value) for
	// label rendering.
	LabelScript string `toml:"label_script" yaml:"label_script"`
}

// DefaultSettings returns a usable 0-100 single-value configuration.
func DefaultSettings() Settings {
	return Settings{
		Min:        0,
		Max:        100,
		Step:       1,
		Initial:    50,
		InitialMin: 25,
		InitialMax: 75,
	}
}

// Load reads settings from path, picking the decoder by extension.
// A missing file returns (nil, nil) so callers can fall back to defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return parseTOML(path, data)
	case ".yaml", ".yml":
		return parseYAML(path, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func parseTOML(path string, data []byte) (*Settings, error) {
	s := DefaultSettings()
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &s, nil
}

func parseYAML(path string, data []byte) (*Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &s, nil
}

// Mode returns the slider mode the settings select.
func (s Settings) Mode() slider.Mode {
	if s.Range {
		return slider.ModeRange
	}
	return slider.ModeSingle
}

// InitialRange returns the starting value in range shape.
func (s Settings) InitialRange() track.Range {
	if s.Range {
		return track.Range{Min: s.InitialMin, Max: s.InitialMax}
	}
	return track.Range{Min: s.Min, Max: s.Initial}
}

// Validate mirrors the slider configuration taxonomy so bad files are
// rejected before a controller is built.
func (s Settings) Validate() error {
	scale, err := track.NewScale(s.Min, s.Max, s.Step)
	if err != nil {
		return err
	}

	r := s.InitialRange()
	if s.Range {
		if !scale.Contains(r.Min) || !scale.Contains(r.Max) || r.Min >= r.Max {
			return fmt.Errorf("%w: initial range %+v outside bounds [%v, %v]",
				slider.ErrValueOutOfRange, r, s.Min, s.Max)
		}
		return nil
	}
	if !scale.Contains(r.Max) {
		return fmt.Errorf("%w: initial value %v outside bounds [%v, %v]",
			slider.ErrValueOutOfRange, r.Max, s.Min, s.Max)
	}
	return nil
}
