// Package config loads the runtime settings of the savings client.
package config

import "time"

// Config holds runtime settings for the savings CLI.
//
// Fields:
//   - APIBaseURL: explicit base URL of the backend API; when set it is used
//     verbatim and wins over any development-host hint.
//   - DevServerHost: development-host hint ("host" or "host:port") used to
//     derive the base URL when no explicit value is configured.
//   - DatabasePath: path of the local SQLite store.
//   - KeyPath: path of the key-material file protecting the secure store.
//   - RequestTimeout: per-request HTTP timeout; zero keeps the platform
//     default (no client-side timeout).
type Config struct {
	APIBaseURL     string
	DevServerHost  string
	DatabasePath   string
	KeyPath        string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "savings.db"
	c.KeyPath = "savings.key"
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file
// (-c), and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
