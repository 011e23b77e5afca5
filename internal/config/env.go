package config

import (
	"os"
	"strconv"
	"strings"
)

// FromEnv overlays ZEAM_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("ZEAM_MODE"); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv("ZEAM_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("ZEAM_MODULE"); v != "" {
		cfg.Module = v
	}
	if v := os.Getenv("ZEAM_NETWORKS"); v != "" {
		parts := strings.Split(v, ",")
		cfg.Networks = nil
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if n, err := strconv.ParseUint(p, 10, 32); err == nil {
				cfg.Networks = append(cfg.Networks, uint32(n))
			}
		}
	}
}
