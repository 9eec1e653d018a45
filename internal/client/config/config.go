// Package config handles configuration for the CLI client,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the TaskHub CLI.
//
// Fields:
//   - ServerURL: base URL of the backend API (no trailing slash).
//   - SessionPath: path of the local SQLite file holding the session token.
type Config struct {
	ServerURL   string
	SessionPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.SessionPath = "taskhub.db"
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
