// Package config assembles runtime settings for curio from defaults,
// an optional .env file, an optional JSON file, and command-line flags.
package config

import "time"

// Config holds runtime settings for the curio client.
//
// Fields:
//   - StoragePath: path of the sqlite file backing the local store.
//   - SessionSecret: HMAC key used to sign the persisted session token.
//   - SearchDebounce: quiet interval before a search query is applied.
type Config struct {
	StoragePath    string
	SessionSecret  string
	SearchDebounce time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoragePath = "curio.db"
	c.SessionSecret = "curio-local-session"
	c.SearchDebounce = 300 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if present), and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
