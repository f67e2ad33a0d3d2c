package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/somlint/somlint/pkg/api/somlint"
	"github.com/somlint/somlint/pkg/config"
	"github.com/spf13/cobra"
)

// loadConfig reads the configuration file and lets explicitly set flags
// take precedence over it.
func loadConfig(cmd *cobra.Command) (*somlint.Config, error) {
	cfg, file, err := config.Discover(rootopts.configFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = rootopts.logLevel
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = rootopts.output
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logrus.SetLevel(level)
	if file != "" {
		logrus.Debugf("loaded configuration from %s", file)
	}
	return cfg, nil
}
