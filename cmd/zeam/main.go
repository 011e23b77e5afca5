package main

import (
	"fmt"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bomanaps/zeam/internal/config"
	"github.com/bomanaps/zeam/pkg/forward"
	logpkg "github.com/bomanaps/zeam/pkg/log"
)

func main() {
	var configPath string
	var mode string
	var backend string

	rootCmd := &cobra.Command{
		Use:   "zeam",
		Short: "zeam logging CLI",
		Long:  "zeam renders multi-network log lines directly to stderr or bridges them to an external logging backend.",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&mode, "mode", "", "sink mode: direct|bridge (overrides config)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "bridge backend: zerolog|charm (overrides config)")

	loadConfig := func() (config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		config.FromEnv(&cfg)
		if mode != "" {
			cfg.Mode = mode
		}
		if backend != "" {
			cfg.Backend = backend
		}
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
		return cfg, nil
	}

	// emit: one line at a chosen level
	var levelName string
	var networkID uint32
	var module string
	emitCmd := &cobra.Command{
		Use:   "emit [message...]",
		Short: "Emit a single log line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			level, err := logpkg.ParseLevel(levelName)
			if err != nil {
				return err
			}
			logger, err := buildLogger(cfg)
			if err != nil {
				return err
			}
			if module == "" {
				module = cfg.Module
			}
			emit(logger, level, networkID, module, strings.Join(args, " "))
			return nil
		},
	}
	emitCmd.Flags().StringVar(&levelName, "level", "info", "severity: debug|info|warn|error")
	emitCmd.Flags().Uint32Var(&networkID, "network", 0, "originating network id")
	emitCmd.Flags().StringVar(&module, "module", "", "optional module tag")
	rootCmd.AddCommand(emitCmd)

	// demo: canned sequence across networks and levels
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Emit a sample sequence across the configured networks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger, err := buildLogger(cfg)
			if err != nil {
				return err
			}
			for _, id := range cfg.Networks {
				logger.Debug(id, "dialing bootstrap peers")
				logger.Info(id, "node up")
				logger.InfoModule(id, "net", "peer connected")
				logger.WarnModule(id, "gossip", "slow peer detected")
				logger.ErrorModule(id, "sync", "head stalled")
			}
			return nil
		},
	}
	rootCmd.AddCommand(demoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// buildLogger wires the sink selected by cfg.Mode.
func buildLogger(cfg config.Config) (*logpkg.Logger, error) {
	switch cfg.Mode {
	case config.ModeBridge:
		fwd, err := buildForwarder(cfg.Backend)
		if err != nil {
			return nil, err
		}
		return logpkg.NewLogger(logpkg.WithSink(logpkg.NewBridgeSink(fwd))), nil
	default:
		return logpkg.NewLogger(), nil
	}
}

// buildForwarder constructs the bridge receiver. The backend owns
// timestamping and delivery of forwarded records.
func buildForwarder(backend string) (logpkg.Forwarder, error) {
	switch backend {
	case config.BackendZerolog:
		return forward.NewZerolog(zerolog.New(os.Stderr).With().Timestamp().Logger()), nil
	case config.BackendCharm:
		return forward.NewCharm(charmlog.NewWithOptions(os.Stderr, charmlog.Options{ReportTimestamp: true})), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

func emit(l *logpkg.Logger, level logpkg.Level, networkID uint32, module, message string) {
	switch level {
	case logpkg.DebugLevel:
		if module != "" {
			l.DebugModule(networkID, module, message)
		} else {
			l.Debug(networkID, message)
		}
	case logpkg.WarnLevel:
		if module != "" {
			l.WarnModule(networkID, module, message)
		} else {
			l.Warn(networkID, message)
		}
	case logpkg.ErrorLevel:
		if module != "" {
			l.ErrorModule(networkID, module, message)
		} else {
			l.Error(networkID, message)
		}
	default:
		if module != "" {
			l.InfoModule(networkID, module, message)
		} else {
			l.Info(networkID, message)
		}
	}
}
