// Package config provides loading and environment overlay for the zeam
// CLI configuration. It exposes a Default() baseline, file loading by
// extension (JSON or YAML), and a ZEAM_* env overlay.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/zeam.json"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//
// The config selects the demo binary's sink mode and bridge backend only.
// It never configures severity filtering, and the network-id-to-scope table
// stays hardcoded in pkg/log.
package config
