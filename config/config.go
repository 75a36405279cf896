// Package config loads tilekit settings from TOML and persists layouts
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/tilekit/grid2"
	"github.com/lixenwraith/tilekit/widget"
)

const configFile = "config.toml"

// Config is the root of the TOML document
type Config struct {
	Grid     GridConfig     `toml:"grid"`
	Bindings BindingsConfig `toml:"bindings"`
	Layout   LayoutConfig   `toml:"layout"`
	Log      LogConfig      `toml:"log"`
	Sound    SoundConfig    `toml:"sound"`
}

type GridConfig struct {
	Border  int     `toml:"border"`
	Margin  int     `toml:"margin"`
	Epsilon float64 `toml:"epsilon"`
	Snap    bool    `toml:"snap"`
}

// BindingsConfig holds trigger strings such as "shift+right"; empty unbinds
type BindingsConfig struct {
	Resize    string `toml:"resize"`
	Flip      string `toml:"flip"`
	FlipLocal string `toml:"flip_local"`
	Swap      string `toml:"swap"`
}

type LayoutConfig struct {
	// File is where the demo saves and restores its layout
	File string `toml:"file"`
	// Initial is a layout string used when File does not exist
	Initial string `toml:"initial"`
}

type LogConfig struct {
	File string `toml:"file"`
}

type SoundConfig struct {
	Enabled bool `toml:"enabled"`
	// Volume is a gain exponent in base 2, 0 is unchanged
	Volume float64 `toml:"volume"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Grid: GridConfig{
			Border:  1,
			Margin:  0,
			Epsilon: grid2.DefaultEpsilon,
			Snap:    true,
		},
		Bindings: BindingsConfig{
			Resize:    "left",
			Flip:      "right",
			FlipLocal: "shift+right",
			Swap:      "ctrl+right",
		},
		Layout: LayoutConfig{
			Initial: "g 0 1 h s 1 1 1 v s 1 1 2 s 1 1 3",
		},
		Sound: SoundConfig{
			Enabled: false,
			Volume:  -1,
		},
	}
}

// Load decodes path over the defaults; keys it does not know are an error
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// LoadOrDefault is Load, falling back to Default when path does not exist
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes cfg as TOML, creating the directory if needed
func Save(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return errors.Wrap(err, "encode config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrapf(err, "create config directory for %s", path)
	}
	return errors.Wrapf(os.WriteFile(path, buf.Bytes(), 0644), "write config %s", path)
}

// Validate checks ranges and trigger syntax
func (c Config) Validate() error {
	if c.Grid.Border < 0 || c.Grid.Margin < 0 {
		return errors.Errorf("grid: border and margin must not be negative, got %d and %d", c.Grid.Border, c.Grid.Margin)
	}
	if c.Grid.Epsilon <= 0 {
		return errors.Errorf("grid: epsilon must be positive, got %g", c.Grid.Epsilon)
	}
	_, err := c.Bindings.Parse()
	return err
}

// Parse converts the trigger strings into grid bindings
func (b BindingsConfig) Parse() (grid2.Bindings, error) {
	var out grid2.Bindings
	for _, f := range []struct {
		name string
		in   string
		dst  *widget.Trigger
	}{
		{"resize", b.Resize, &out.Resize},
		{"flip", b.Flip, &out.Flip},
		{"flip_local", b.FlipLocal, &out.FlipLocal},
		{"swap", b.Swap, &out.Swap},
	} {
		if strings.TrimSpace(f.in) == "" {
			continue
		}
		t, err := widget.ParseTrigger(f.in)
		if err != nil {
			return grid2.Bindings{}, errors.Wrapf(err, "bindings.%s", f.name)
		}
		*f.dst = t
	}
	return out, nil
}

// GridOptions builds grid options from the [grid] and [bindings] sections
func (c Config) GridOptions() (grid2.Options, error) {
	b, err := c.Bindings.Parse()
	if err != nil {
		return grid2.Options{}, err
	}
	return grid2.Options{
		Border:   c.Grid.Border,
		Margin:   c.Grid.Margin,
		Epsilon:  c.Grid.Epsilon,
		Snap:     c.Grid.Snap,
		Bindings: b,
	}, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/tilekit/config.toml, falling back to
// ~/.config
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "tilekit", configFile)
}
