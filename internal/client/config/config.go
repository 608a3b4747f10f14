package config

import "time"

// Config holds runtime settings for the contacts CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DatabasePath: SQLite file holding the local person cache.
//   - ImagesDir: directory for locally stored photos.
//   - APIKey: key presented to Login; prompted for when empty.
//   - SeedDelay: pause after each person posted by seeding and push.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	DatabasePath        string
	ImagesDir           string
	APIKey              string
	SeedDelay           time.Duration
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabasePath = "contacts.db"
	c.ImagesDir = "images"
	c.APIKey = ""
	c.SeedDelay = 300 * time.Millisecond
	c.LogLevel = "info"
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
