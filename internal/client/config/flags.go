package config

import (
	"flag"
	"os"
	"time"

	"tripdeck/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string       base URL of the backend API (default from Config)
//	-health string  health check path (default from Config)
//	-p int          default page size for list views (default from Config)
//	-t int          fallback trip id for activity creation (default from Config)
//	-db string      path to the local sqlite database (default from Config)
//	-i int          online check interval in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-health", "-p", "-t", "-db", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.HealthPath, "health", cfg.HealthPath, "health check path on the backend")
	fs.IntVar(&cfg.DefaultPageSize, "p", cfg.DefaultPageSize, "default page size for list views")
	fs.Int64Var(&cfg.DefaultTripID, "t", cfg.DefaultTripID, "fallback trip id for activity creation")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "path to the local sqlite database")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
