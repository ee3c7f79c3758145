package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first if present;
// a missing file is not an error.
//
// Recognized variables:
//
//	CURIO_STORAGE_PATH     path of the sqlite store file
//	CURIO_SESSION_SECRET   session token signing key
//	CURIO_SEARCH_DEBOUNCE  debounce interval, e.g. "300ms"
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("CURIO_STORAGE_PATH"); v != "" {
		cfg.StoragePath = v
	}
	if v := os.Getenv("CURIO_SESSION_SECRET"); v != "" {
		cfg.SessionSecret = v
	}
	if v := os.Getenv("CURIO_SEARCH_DEBOUNCE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SearchDebounce = d
		}
	}
}
