package config

import (
	"flag"
	"os"
	"time"

	"github.com/curio-app/curio/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   path of the sqlite store file
//	-d int      search debounce interval in milliseconds
//
// os.Args is filtered to only the flags handled here, so flags owned by
// other components do not cause parse errors.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "path of the local store file")
	debounceMs := fs.Int("d", int(cfg.SearchDebounce.Milliseconds()), "search debounce interval (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SearchDebounce = time.Duration(*debounceMs) * time.Millisecond
}
