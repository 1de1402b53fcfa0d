package config

import "time"

// Config holds runtime settings for the TripDeck CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API.
//   - HealthPath: request path used for reachability probes.
//   - DefaultPageSize: page size list views start with.
//   - SearchDebounce: how long search input must rest before it triggers a fetch.
//   - DefaultTripID: fallback trip id for activity creation when the form
//     resolves none; 0 disables the fallback.
//   - DatabasePath: location of the local sqlite database; "" lets the
//     application pick a per-user default.
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	APIBaseURL          string
	HealthPath          string
	DefaultPageSize     int
	SearchDebounce      time.Duration
	DefaultTripID       int64
	DatabasePath        string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8081"
	c.HealthPath = "/api/health"
	c.DefaultPageSize = 10
	c.SearchDebounce = 400 * time.Millisecond
	c.DefaultTripID = 0
	c.DatabasePath = ""
	c.OnlineCheckInterval = 30 * time.Second
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
