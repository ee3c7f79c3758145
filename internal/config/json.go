package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/curio-app/curio/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given as strings like "300ms" and copied into the runtime Config.
type JsonConfig struct {
	StoragePath    string `json:"storage_path"`
	SessionSecret  string `json:"session_secret"`
	SearchDebounce string `json:"search_debounce"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, nothing is loaded.
// Read or unmarshal errors panic, matching the fail-fast startup contract.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
	if jc.SessionSecret != "" {
		cfg.SessionSecret = jc.SessionSecret
	}
	if jc.SearchDebounce != "" {
		d, err := time.ParseDuration(jc.SearchDebounce)
		if err != nil {
			panic(err)
		}
		cfg.SearchDebounce = d
	}
}
