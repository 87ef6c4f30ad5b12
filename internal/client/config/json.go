package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrival/taskboard/internal/flagx"
)

// JsonConfig is the DTO used only for reading JSON configuration files.
// After unmarshalling its fields are copied into the runtime Config.
type JsonConfig struct {
	ServerEndpointAddr string `json:"server_endpoint_addr"`
	GRPCEndpointAddr   string `json:"grpc_endpoint_addr"`
	ChatPort           int    `json:"chat_port"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config command-line flag into the provided Config. When neither
// flag is set no file is loaded. An unreadable file or invalid JSON
// panics.
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

	config.ServerEndpointAddr = c.ServerEndpointAddr
	config.GRPCEndpointAddr = c.GRPCEndpointAddr
	config.ChatPort = c.ChatPort
}
