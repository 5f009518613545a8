// Package config loads trendfinder's runtime configuration.
//
// The API key comes from the YOUTUBE_API_KEY environment variable; a .env
// file in the working directory is honored. Search defaults can be
// overridden with TRENDFINDER_* variables.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultMaxResults         = 50
	defaultTrendingWindowDays = 14
	defaultMinTrendingScore   = 1000
)

// Config holds every knob the tool reads at startup. It is loaded once
// and passed explicitly into constructors.
type Config struct {
	APIKey             string  `mapstructure:"api_key"`
	MaxResults         int     `mapstructure:"max_results"`
	TrendingWindowDays int     `mapstructure:"trending_window_days"`
	MinTrendingScore   float64 `mapstructure:"min_trending_score"`
}

// Load reads configuration from the environment (and a .env file when
// present). A missing API key is not an error here; the CLI checks for it
// before issuing any query.
func Load() (*Config, error) {
	// Best effort: absence of a .env file is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("api_key", "")
	v.SetDefault("max_results", defaultMaxResults)
	v.SetDefault("trending_window_days", defaultTrendingWindowDays)
	v.SetDefault("min_trending_score", float64(defaultMinTrendingScore))

	v.SetEnvPrefix("trendfinder")
	if err := v.BindEnv("api_key", "YOUTUBE_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}
	for _, key := range []string{"max_results", "trending_window_days", "min_trending_score"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the numeric settings are usable.
func (c *Config) Validate() error {
	if c.MaxResults <= 0 {
		return fmt.Errorf("max_results must be positive, got %d", c.MaxResults)
	}
	if c.TrendingWindowDays <= 0 {
		return fmt.Errorf("trending_window_days must be positive, got %d", c.TrendingWindowDays)
	}
	if c.MinTrendingScore < 0 {
		return fmt.Errorf("min_trending_score must not be negative, got %f", c.MinTrendingScore)
	}
	return nil
}
