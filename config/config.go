// Package config loads engine settings from YAML.
//
// LoadConfig starts from DefaultConfig and overlays the file, so a file only
// needs the keys it changes:
//
//	workers: 8
//	pair_mode: canonical
//	modes:
//	  bot:      { window_seconds: 1,   min_repeat_threshold: 5 }
//	  burst:    { window_seconds: 30,  min_repeat_threshold: 3 }
//
// Unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/coactgraph/coaction"
	"github.com/katalvlaran/coactgraph/pairs"
)

var (
	// ErrInvalidConfig indicates a value that cannot drive the engine.
	ErrInvalidConfig = errors.New("config: invalid value")

	// ErrUnknownMode indicates a mode name absent from the config.
	ErrUnknownMode = errors.New("config: unknown mode")
)

// ModeConfig is the YAML form of coaction.Mode.
type ModeConfig struct {
	WindowSeconds      int64 `yaml:"window_seconds"`
	MinRepeatThreshold int64 `yaml:"min_repeat_threshold"`
}

// Config holds all engine settings.
type Config struct {
	// Workers is the window-scan parallelism; 0 means runtime.NumCPU().
	Workers int `yaml:"workers"`
	// PairMode is "directed" or "canonical".
	PairMode string `yaml:"pair_mode"`
	// Modes maps a mode name to its window and threshold.
	Modes map[string]ModeConfig `yaml:"modes"`
}

// fileConfig is the on-disk shape. Pointer fields distinguish "absent" from
// zero so that every key overlays the defaults independently.
type fileConfig struct {
	Workers  *int                      `yaml:"workers"`
	PairMode *string                   `yaml:"pair_mode"`
	Modes    map[string]modeFileConfig `yaml:"modes"`
}

type modeFileConfig struct {
	WindowSeconds      *int64 `yaml:"window_seconds"`
	MinRepeatThreshold *int64 `yaml:"min_repeat_threshold"`
}

// DefaultConfig returns the bot and ideology presets, directed pairs and
// automatic worker count.
func DefaultConfig() Config {
	return Config{
		Workers:  0,
		PairMode: pairs.Directed.String(),
		Modes: map[string]ModeConfig{
			coaction.BotMode.Name: {
				WindowSeconds:      coaction.BotMode.WindowSeconds,
				MinRepeatThreshold: coaction.BotMode.MinRepeat,
			},
			coaction.IdeologyMode.Name: {
				WindowSeconds:      coaction.IdeologyMode.WindowSeconds,
				MinRepeatThreshold: coaction.IdeologyMode.MinRepeat,
			},
		},
	}
}

// LoadConfig reads path on top of DefaultConfig. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse decodes YAML from r on top of DefaultConfig and validates the result.
// An entry for an existing mode overrides only the fields it sets; a new mode
// must set both window_seconds and min_repeat_threshold.
func Parse(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	raw, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return cfg, nil
	}

	var file fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if file.Workers != nil {
		cfg.Workers = *file.Workers
	}
	if file.PairMode != nil {
		cfg.PairMode = *file.PairMode
	}
	for name, m := range file.Modes {
		base, known := cfg.Modes[name]
		if !known && (m.WindowSeconds == nil || m.MinRepeatThreshold == nil) {
			return cfg, fmt.Errorf("mode %q: window_seconds and min_repeat_threshold are required: %w", name, ErrInvalidConfig)
		}
		if m.WindowSeconds != nil {
			base.WindowSeconds = *m.WindowSeconds
		}
		if m.MinRepeatThreshold != nil {
			base.MinRepeatThreshold = *m.MinRepeatThreshold
		}
		cfg.Modes[name] = base
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate rejects negative workers, windows or thresholds and unknown pair modes.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrInvalidConfig)
	}
	if _, err := pairs.ParseMode(c.PairMode); err != nil {
		return fmt.Errorf("pair_mode: %w: %w", ErrInvalidConfig, err)
	}
	for name, m := range c.Modes {
		if name == "" {
			return fmt.Errorf("empty mode name: %w", ErrInvalidConfig)
		}
		if m.WindowSeconds < 0 {
			return fmt.Errorf("mode %q window_seconds=%d: %w", name, m.WindowSeconds, ErrInvalidConfig)
		}
		if m.MinRepeatThreshold < 0 {
			return fmt.Errorf("mode %q min_repeat_threshold=%d: %w", name, m.MinRepeatThreshold, ErrInvalidConfig)
		}
	}

	return nil
}

// Mode returns the named mode.
func (c Config) Mode(name string) (coaction.Mode, error) {
	m, ok := c.Modes[name]
	if !ok {
		return coaction.Mode{}, fmt.Errorf("%q: %w", name, ErrUnknownMode)
	}

	return coaction.Mode{Name: name, WindowSeconds: m.WindowSeconds, MinRepeat: m.MinRepeatThreshold}, nil
}

// ModeNames returns all mode names sorted.
func (c Config) ModeNames() []string {
	names := make([]string, 0, len(c.Modes))
	for name := range c.Modes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Options translates the config into coaction options.
func (c Config) Options() ([]coaction.Option, error) {
	pm, err := pairs.ParseMode(c.PairMode)
	if err != nil {
		return nil, fmt.Errorf("pair_mode: %w: %w", ErrInvalidConfig, err)
	}
	workers := c.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	return []coaction.Option{coaction.WithWorkers(workers), coaction.WithPairMode(pm)}, nil
}
