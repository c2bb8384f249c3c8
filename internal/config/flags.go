package config

import (
	"flag"
	"os"
	"time"

	"github.com/cjsavings/savings-client/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     explicit API base URL
//	-host string  development-host hint
//	-d string     local database path
//	-k string     key-material file path
//	-t int        request timeout in seconds (0 = platform default)
//
// Only the flags handled here are parsed (via flagx.FilterArgs) so the
// config-file flag stays usable alongside.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-host", "-d", "-k", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.DevServerHost, "host", cfg.DevServerHost, "development host hint")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.KeyPath, "k", cfg.KeyPath, "key material path")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
