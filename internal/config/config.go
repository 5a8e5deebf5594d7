// Package config loads CLI configuration.
//
// Precedence, lowest to highest: built-in defaults, the YAML config
// file, environment variables (with a .env file loaded first if one
// exists in the working directory).
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable overrides.
const (
	EnvDataPath = "TALLY_DATA_PATH"
	EnvFormat   = "TALLY_FORMAT"
)

// Config holds the settings the CLI reads at startup.
type Config struct {
	// DataPath is the snapshot database file holding the working copy.
	DataPath string `yaml:"data_path"`

	// Format is the default output format ("text" or "json").
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataPath: "tally.db",
		Format:   "text",
	}
}

// Load builds the effective configuration.
//
// A missing config file is not an error - defaults apply. A present but
// malformed file is an error, so a typo never silently falls back to
// defaults.
func Load(path string) (Config, error) {
	// Best effort: no .env file is the common case.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv(EnvDataPath); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
	}

	return cfg, nil
}
