package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	yaml "gopkg.in/yaml.v2"
)

// envPrefix namespaces the environment variables read by Load, e.g.
// UNISTATS_LOGGING_LEVEL.
const envPrefix = "UNISTATS"

// Config is the complete application configuration. Precedence, lowest to
// highest: struct defaults, environment variables, config file, CLI flags
// (applied by the caller).
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/analyzer.log"`
}

// PathsConfig holds the file system locations of the pipeline.
type PathsConfig struct {
	DataFile  string `yaml:"data_file" envconfig:"DATA_FILE" default:"data/university_data.csv" validate:"required"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"output" validate:"required"`
}

// AnalysisConfig tunes the aggregation stage.
type AnalysisConfig struct {
	TopPrograms int `yaml:"top_programs" envconfig:"TOP_PROGRAMS" default:"5" validate:"min=1"`
}

// Load builds the configuration from defaults and environment variables,
// then overlays the optional YAML file at path (empty path skips the file).
func Load(path string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		fileCfg, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = merge(cfg, *fileCfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration with every field at its default.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// Defaults are static and validated by tests; this cannot fail
		// at runtime.
		panic(err)
	}
	return cfg
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &cfg, nil
}

// merge overlays the non-zero fields of over onto base.
func merge(base, over Config) Config {
	out := base
	if over.Logging.Level != "" {
		out.Logging.Level = over.Logging.Level
	}
	if over.Logging.Format != "" {
		out.Logging.Format = over.Logging.Format
	}
	if over.Logging.Output != "" {
		out.Logging.Output = over.Logging.Output
	}
	if over.Logging.FilePath != "" {
		out.Logging.FilePath = over.Logging.FilePath
	}
	if over.Paths.DataFile != "" {
		out.Paths.DataFile = over.Paths.DataFile
	}
	if over.Paths.OutputDir != "" {
		out.Paths.OutputDir = over.Paths.OutputDir
	}
	if over.Analysis.TopPrograms != 0 {
		out.Analysis.TopPrograms = over.Analysis.TopPrograms
	}
	return out
}

func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	return nil
}

// EnsureOutputDir creates the output directory if it does not exist.
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Paths.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", c.Paths.OutputDir, err)
	}
	return nil
}

// OutputPath resolves a file name inside the output directory.
func (c *Config) OutputPath(name string) string {
	return filepath.Join(c.Paths.OutputDir, name)
}
