package main

import (
	"fmt"

	"github.com/jonathan/csm-portfolio/internal/config"
	"github.com/jonathan/csm-portfolio/internal/metrics"
	"github.com/spf13/cobra"
)

// Flags shared by every subcommand
var (
	configPath string
	dataPath   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file (optional)")
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "Path to metrics JSON document (default "+config.DefaultMetricsPath+")")
}

// resolveConfig layers defaults, the optional config file, the environment and flags, in that order.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Defaults()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("data") {
		cfg.MetricsPath = dataPath
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadStore resolves configuration and loads the metrics document it points at.
func loadStore(cmd *cobra.Command) (config.Config, *metrics.Store, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return config.Config{}, nil, err
	}

	store, err := metrics.LoadFile(cfg.MetricsPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to load metrics: %w", err)
	}
	return cfg, store, nil
}
