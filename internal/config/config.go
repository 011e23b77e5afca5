package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Sink modes.
const (
	ModeDirect = "direct"
	ModeBridge = "bridge"
)

// Bridge backends.
const (
	BackendZerolog = "zerolog"
	BackendCharm   = "charm"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	Mode     string   `json:"mode" yaml:"mode"`
	Backend  string   `json:"backend" yaml:"backend"`
	Networks []uint32 `json:"networks" yaml:"networks"`
	Module   string   `json:"module" yaml:"module"`
}

// Default returns built-in defaults: direct mode across the three fixed
// zeam networks.
func Default() Config {
	return Config{
		Mode:     ModeDirect,
		Backend:  BackendZerolog,
		Networks: []uint32{0, 1, 2},
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks mode and backend names.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeDirect, ModeBridge:
	default:
		return fmt.Errorf("unknown mode: %q", c.Mode)
	}
	switch c.Backend {
	case BackendZerolog, BackendCharm:
	default:
		return fmt.Errorf("unknown backend: %q", c.Backend)
	}
	return nil
}
