package runcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings mirrors the optional run-settings YAML file. It tunes how a run
// executes, never what it generates; the generation config stays JSON.
type Settings struct {
	Seed           int64 `yaml:"seed"`
	ValidateSchema bool  `yaml:"validate_schema"`
}

// Default returns run settings for an unconfigured invocation: schema
// validation on, seed derived from the clock at startup.
func Default() Settings {
	return Settings{
		Seed:           0,
		ValidateSchema: true,
	}
}

// Load parses a run-settings file over the defaults, so omitted keys keep
// their default values.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read run config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("unmarshal run config %s: %w", path, err)
	}
	return s, nil
}
