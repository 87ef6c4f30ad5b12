package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrival/taskboard/internal/flagx"
	"github.com/dmitrival/taskboard/internal/timex"
)

// JsonConfig is the DTO used only for reading JSON configuration files.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "5m" and integer nanoseconds. After unmarshalling
// its fields are copied into the runtime Config struct.
type JsonConfig struct {
	EndpointAddrProtocol string         `json:"endpoint_addr_protocol"`
	EndpointAddrGRPC     string         `json:"endpoint_addr_grpc"`
	ChatPort             int            `json:"chat_port"`
	DatabaseDSN          string         `json:"database_dsn"`
	IdleTimeout          timex.Duration `json:"idle_timeout"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config command-line flag into the provided Config. When neither
// flag is set no file is loaded and the Config is left untouched. An
// unreadable file or invalid JSON panics: a requested config that cannot
// be applied must not start the server with silent defaults.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrProtocol = c.EndpointAddrProtocol
	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.ChatPort = c.ChatPort
	config.DatabaseDSN = c.DatabaseDSN
	config.IdleTimeout = c.IdleTimeout.Duration
}
