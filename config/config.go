// Package config loads generation profiles for benchmark fixtures.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds fixture generation settings.
type Config struct {
	OutputDir string         `mapstructure:"output_dir"`
	Seed      int64          `mapstructure:"seed"`
	Sizes     map[string]int `mapstructure:"sizes"`
}

// Default returns the built-in generation profile.
func Default() *Config {
	return &Config{
		OutputDir: "/tmp/statik-bench",
		Seed:      42,
		Sizes: map[string]int{
			"small":  300,
			"medium": 1000,
			"large":  3000,
		},
	}
}

// Load reads a generation profile from file, falling back to the
// defaults for any unset key. An empty path returns the defaults
// unchanged; a path that cannot be read is an error, since an
// explicitly requested profile must exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("output_dir", cfg.OutputDir)
	v.SetDefault("seed", cfg.Seed)
	v.SetDefault("sizes", cfg.Sizes)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks the profile and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.OutputDir == "" {
		warnings = append(warnings, "output_dir is empty")
	}

	if len(c.Sizes) == 0 {
		warnings = append(warnings, "no sizes configured")
	}

	for name, n := range c.Sizes {
		if n < 0 {
			warnings = append(warnings,
				fmt.Sprintf("size %q has negative file count %d", name, n))
		}
	}

	return warnings
}
