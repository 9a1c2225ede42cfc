package config

import "time"

// Config holds runtime settings for the lorekeeper CLI.
//
// Fields:
//   - BaseURL: root URL of the reference-data API.
//   - RequestTimeout: hard deadline applied to every HTTP request.
//
// Units: RequestTimeout is a time.Duration (e.g., 10*time.Second).
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://www.dnd5eapi.co/api"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
