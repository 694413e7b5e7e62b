package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the server settings. Flags in cmd override whatever
// the YAML file sets; the file overrides the defaults.
type Config struct {
	Addr            string `yaml:"addr"`
	PersistPath     string `yaml:"persistPath"`
	LogLevel        string `yaml:"logLevel"`        // debug|info|warn|error
	Solver          string `yaml:"solver"`          // backtrack|sat
	Storage         string `yaml:"storage"`         // fs|badger
	SolveTimeoutSec int    `yaml:"solveTimeoutSec"` // wall-clock budget per solve
}

func Default() Config {
	return Config{
		Addr:            ":8080",
		PersistPath:     "./data",
		LogLevel:        "info",
		Solver:          "backtrack",
		Storage:         "fs",
		SolveTimeoutSec: 60,
	}
}

// Load overlays the YAML file at path onto the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
