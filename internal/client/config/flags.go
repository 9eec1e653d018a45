package config

import (
	"flag"
	"os"

	"taskhub/internal/flagx"
)

// parseFlags populates client Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend API
//	-f string   path of the local session database
//
// os.Args is filtered to just these flags first, so the client can share a
// command line with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&config.ServerURL, "a", config.ServerURL, "server base URL")
	fs.StringVar(&config.SessionPath, "f", config.SessionPath, "session database path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
