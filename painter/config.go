package painter

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultResolution is the canonical raster resolution shared by every
// layer and the composed raster. The same value must be used by every
// consumer of the composed texture; a mismatched consumer size silently
// blanks or corrupts the model's paint.
const DefaultResolution = 4096

// StabilizerConfig controls stroke stabilization.
type StabilizerConfig struct {
	// Enabled turns stabilization on.
	Enabled bool `yaml:"enabled"`

	// Delay is how many recent points feed the smoothing average.
	Delay int `yaml:"delay"`

	// Quality in [0,1] weights averaging: 1 fully smooths toward the
	// historical mean, 0 passes raw points through.
	Quality float64 `yaml:"quality"`
}

// Config holds host-level painting settings.
type Config struct {
	// Resolution is the canonical raster size (width and height).
	Resolution int `yaml:"resolution"`

	// ThrottleMillis bounds redraw cadence during a stroke.
	ThrottleMillis int `yaml:"throttle_millis"`

	// Stabilizer configures stroke smoothing.
	Stabilizer StabilizerConfig `yaml:"stabilizer"`

	// DefaultTool is the tool selected when the session starts.
	DefaultTool string `yaml:"default_tool"`

	// DefaultColor is the starting stroke color (6-digit hex).
	DefaultColor string `yaml:"default_color"`
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		Resolution:     DefaultResolution,
		ThrottleMillis: 16,
		Stabilizer: StabilizerConfig{
			Enabled: false,
			Delay:   8,
			Quality: 0.5,
		},
		DefaultTool:  "satin",
		DefaultColor: "#1f3d7a",
	}
}

// LoadConfig reads a YAML config file, filling unset fields from the
// defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("painter: reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("painter: parsing config: %w", err)
	}

	if cfg.Resolution <= 0 {
		cfg.Resolution = DefaultResolution
	}
	if cfg.ThrottleMillis < 0 {
		cfg.ThrottleMillis = 0
	}
	return cfg, nil
}

// throttleInterval converts the configured milliseconds to a duration.
func (c Config) throttleInterval() time.Duration {
	return time.Duration(c.ThrottleMillis) * time.Millisecond
}
