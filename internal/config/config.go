// Package config loads CLI configuration from a YAML file, an optional
// .env file and TIDYSHEETS_* environment variables, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets"
)

// EnvPrefix prefixes every environment override, e.g. TIDYSHEETS_PIPELINE_SKIP_ROWS.
const EnvPrefix = "TIDYSHEETS"

// Output formats accepted by OutputConfig.Format.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Config holds all configuration for the CLI.
type Config struct {
	Debug    bool           `yaml:"debug"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Output   OutputConfig   `yaml:"output"`
}

// PipelineConfig mirrors tidysheets.Options. Pointer fields distinguish
// "unset" from an explicit zero.
type PipelineConfig struct {
	SheetPattern string   `yaml:"sheet_pattern" split_words:"true"`
	SkipRows     *int     `yaml:"skip_rows" split_words:"true"`
	NameColumn   string   `yaml:"name_column" split_words:"true"`
	CountColumn  string   `yaml:"count_column" split_words:"true"`
	Blocks       int      `yaml:"blocks"`
	Extensions   []string `yaml:"extensions"`
	Workers      int      `yaml:"workers"`
}

// OutputConfig holds output settings for the run command.
type OutputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
	Pretty bool   `yaml:"pretty"`
}

// Load reads the configuration like Read and validates it.
func Load(path, envFile string) (*Config, error) {
	cfg, err := Read(path, envFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read builds the configuration with defaults applied but not validated,
// so callers can layer flag overrides before calling Validate. path may
// be empty, in which case only defaults and the environment apply.
// Variables from envFile, when it exists, are added to the environment
// without replacing ones already set.
func Read(path, envFile string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// ApplyDefaults fills unset fields from tidysheets.DefaultOptions.
func ApplyDefaults(cfg *Config) {
	def := tidysheets.DefaultOptions()
	p := &cfg.Pipeline
	if p.SheetPattern == "" {
		p.SheetPattern = def.SheetPattern
	}
	if p.SkipRows == nil {
		skip := def.SkipRows
		p.SkipRows = &skip
	}
	if p.NameColumn == "" {
		p.NameColumn = def.NameColumn
	}
	if p.CountColumn == "" {
		p.CountColumn = def.CountColumn
	}
	if p.Blocks == 0 {
		p.Blocks = def.Blocks
	}
	if p.Workers == 0 {
		p.Workers = def.Workers
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatJSON
	}
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
}

// Validate checks the pipeline options and output settings.
func (c *Config) Validate() error {
	if err := c.PipelineOptions().Validate(); err != nil {
		return fmt.Errorf("invalid pipeline config: %w", err)
	}
	switch c.Output.Format {
	case FormatJSON, FormatCSV:
	case FormatXLSX:
		if c.Output.Path == "" {
			return fmt.Errorf("output format %q requires an output path", FormatXLSX)
		}
	default:
		return fmt.Errorf("invalid output format: %s (must be json, csv, or xlsx)", c.Output.Format)
	}
	return nil
}

// PipelineOptions converts the pipeline section to tidysheets.Options.
func (c *Config) PipelineOptions() tidysheets.Options {
	opts := tidysheets.DefaultOptions()
	p := c.Pipeline
	opts.SheetPattern = p.SheetPattern
	if p.SkipRows != nil {
		opts.SkipRows = *p.SkipRows
	}
	opts.NameColumn = p.NameColumn
	opts.CountColumn = p.CountColumn
	opts.Blocks = p.Blocks
	opts.Extensions = p.Extensions
	opts.Workers = p.Workers
	return opts
}
