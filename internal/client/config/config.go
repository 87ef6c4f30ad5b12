// Package config handles configuration for the CLI client, including
// defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the taskboard CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend line protocol endpoint.
//   - GRPCEndpointAddr: host:port of the registration/notification gRPC endpoint.
//   - ChatPort: UDP port of the per-project multicast chat channels.
type Config struct {
	ServerEndpointAddr string
	GRPCEndpointAddr   string
	ChatPort           int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:6660"
	c.GRPCEndpointAddr = "127.0.0.1:6661"
	c.ChatPort = 6662
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
