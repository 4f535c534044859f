package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is probed when no --config flag is given; a missing file at
// the default path is not an error.
const DefaultPath = "subgrep.toml"

// Dedup holds duplicate-suppression defaults, overridable per run by flags.
type Dedup struct {
	Enabled             bool    `toml:"enabled"`
	SimilarityThreshold float64 `toml:"similarity_threshold"`
	TimeWindowSeconds   float64 `toml:"time_window_seconds"`
	Aggressive          bool    `toml:"aggressive"`
}

// Output holds result output defaults.
type Output struct {
	Dir   string `toml:"dir"`
	Save  bool   `toml:"save"`
	Quiet bool   `toml:"quiet"`
}

type Config struct {
	Dedup  Dedup  `toml:"dedup"`
	Output Output `toml:"output"`
}

func Default() Config {
	return Config{
		Dedup: Dedup{
			Enabled:             true,
			SimilarityThreshold: 0.8,
			TimeWindowSeconds:   5.0,
			Aggressive:          false,
		},
		Output: Output{
			Dir:   ".",
			Save:  true,
			Quiet: false,
		},
	}
}

// Load reads a TOML config file on top of the defaults. An empty path
// falls back to DefaultPath, which may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	optional := false
	if path == "" {
		path = DefaultPath
		optional = true
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Dedup.SimilarityThreshold < 0 || c.Dedup.SimilarityThreshold > 1 {
		return fmt.Errorf(
			"similarity threshold must be between 0.0 and 1.0, got %g",
			c.Dedup.SimilarityThreshold,
		)
	}
	if c.Dedup.TimeWindowSeconds < 0 {
		return fmt.Errorf(
			"time window must not be negative, got %g",
			c.Dedup.TimeWindowSeconds,
		)
	}
	return nil
}
