package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/tidysheets-go/internal/config"
	"github.com/ukaji3/tidysheets-go/internal/logging"
)

// loadConfig loads the config file and environment, then applies flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Read(configPath, envFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("pattern") {
		cfg.Pipeline.SheetPattern = pattern
	}
	if flags.Changed("skip-rows") {
		skip := skipRows
		cfg.Pipeline.SkipRows = &skip
	}
	if flags.Changed("workers") {
		cfg.Pipeline.Workers = workers
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		cfg.Output.Format = strings.ToLower(format)
	}
	if flags.Lookup("output") != nil && flags.Changed("output") {
		cfg.Output.Path = outputPath
	}
	if flags.Lookup("pretty") != nil && flags.Changed("pretty") {
		cfg.Output.Pretty = pretty
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads configuration and builds the logger. The caller must Sync
// the logger.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := logging.NewLogger(cfg.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger.Debug("config loaded",
		zap.String("config_path", configPath),
		zap.String("sheet_pattern", cfg.Pipeline.SheetPattern),
		zap.Int("workers", cfg.Pipeline.Workers),
	)
	return cfg, logger, nil
}
