package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrival/taskboard/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   line protocol bind address (e.g., ":6660")
//	-g string   gRPC bind address (e.g., ":6661")
//	-p int      chat UDP port
//	-d string   PostgreSQL DSN, empty for in-memory storage
//	-i int      session idle timeout, minutes
//
// The function first filters os.Args to only the flags it recognizes
// using flagx.FilterArgs, avoiding collisions with other components.
// The idle timeout flag is accepted as an integer in minutes and then
// converted to a time.Duration value.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-p", "-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrProtocol, "a", config.EndpointAddrProtocol, "address and port of the line protocol endpoint")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port of the gRPC endpoint")
	fs.IntVar(&config.ChatPort, "p", config.ChatPort, "chat UDP port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	idleTimeout := fs.Int("i", int(config.IdleTimeout.Minutes()), "session idle timeout (in minutes)")

	err := fs.Parse(args)
	if err != nil {
		panic(err)
	}

	config.IdleTimeout = time.Duration(*idleTimeout) * time.Minute
}
