// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the taskboard server.
//
// Fields:
//   - EndpointAddrProtocol: bind address for the line protocol endpoint.
//   - EndpointAddrGRPC: bind address for the registration/notification gRPC endpoint.
//   - ChatPort: UDP port chat datagrams are sent to on each project's multicast group.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty means in-memory storage only.
//   - IdleTimeout: how long a protocol session may stay silent before it is
//     closed and its user logged out.
type Config struct {
	EndpointAddrProtocol string
	EndpointAddrGRPC     string
	ChatPort             int
	DatabaseDSN          string
	IdleTimeout          time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrProtocol = ":6660"
	c.EndpointAddrGRPC = ":6661"
	c.ChatPort = 6662
	c.DatabaseDSN = ""
	c.IdleTimeout = 5 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
