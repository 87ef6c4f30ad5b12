package config

import (
	"flag"
	"os"

	"github.com/dmitrival/taskboard/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   line protocol endpoint (e.g., "127.0.0.1:6660")
//	-g string   gRPC endpoint (e.g., "127.0.0.1:6661")
//	-p int      chat UDP port
//
// The function first filters os.Args to only the flags it recognizes
// using flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "address and port of the line protocol endpoint")
	fs.StringVar(&config.GRPCEndpointAddr, "g", config.GRPCEndpointAddr, "address and port of the gRPC endpoint")
	fs.IntVar(&config.ChatPort, "p", config.ChatPort, "chat UDP port")

	err := fs.Parse(args)
	if err != nil {
		panic(err)
	}
}
