// Package config loads CLI defaults from a TOML file with environment
// overrides. Command-line flags take precedence over both.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sonnes/rangoli/chunk"
	"github.com/sonnes/rangoli/core"
)

// Config holds the defaults applied to `rangoli generate`.
type Config struct {
	Preset        string   `toml:"preset"`
	Colors        []string `toml:"colors"`
	Interpolation string   `toml:"interpolation"`
	Output        string   `toml:"output"`
	StartAlpha    int      `toml:"start_alpha"`
	EndAlpha      int      `toml:"end_alpha"`
	MaxLength     int      `toml:"max_length"`
	MaxChunks     int      `toml:"max_chunks"`
	PresetsFile   string   `toml:"presets_file"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Colors:        append([]string(nil), core.DefaultStyle.Stops...),
		Interpolation: string(core.Smooth),
		Output:        string(core.ModeGradient),
		StartAlpha:    255,
		EndAlpha:      255,
		MaxLength:     chunk.DefaultMaxLen,
		MaxChunks:     chunk.DefaultMaxChunks,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/rangoli/config.toml, falling back to
// the OS user config directory.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		d, err := os.UserConfigDir()
		if err != nil {
			return ""
		}
		dir = d
	}
	return filepath.Join(dir, "rangoli", "config.toml")
}

// Load reads path over the defaults and applies environment overrides. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("RANGOLI_PRESET"); v != "" {
		c.Preset = v
	}
	if v := os.Getenv("RANGOLI_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("RANGOLI_PRESETS_FILE"); v != "" {
		c.PresetsFile = v
	}
}

// Validate rejects unknown mode names.
func (c *Config) Validate() error {
	if _, err := core.ParseInterpolation(c.Interpolation); err != nil {
		return err
	}
	if _, err := core.ParseOutputMode(c.Output); err != nil {
		return err
	}
	return nil
}
