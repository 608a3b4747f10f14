package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophcontacts/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only the flags known here are parsed; see doc.go for the list.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-f", "-m", "-k", "-s", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "local database file")
	fs.StringVar(&cfg.ImagesDir, "m", cfg.ImagesDir, "local images directory")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "API key")
	seedDelay := fs.Int("s", int(cfg.SeedDelay.Milliseconds()), "delay after each seeded person (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	cfg.SeedDelay = time.Duration(*seedDelay) * time.Millisecond
}
