package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultSource = "."
	defaultOutput = "variantgen_gen.go"
)

// Config holds configuration for the generate command. Flags take
// precedence over the config file, which takes precedence over defaults.
type Config struct {
	Source     string `yaml:"source" validate:"required"`
	Output     string `yaml:"output" validate:"required,eq=-|endswith=.go"`
	Header     string `yaml:"header"`
	ConfigPath string `yaml:"-"`
}

func loadConfigFile(config *Config) error {
	if config.ConfigPath == "" {
		return nil
	}

	data, err := os.ReadFile(filepath.Clean(config.ConfigPath))
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg struct {
		Variantgen struct {
			Source string `yaml:"source"`
			Output string `yaml:"output"`
			Header string `yaml:"header"`
		} `yaml:"variantgen"`
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	// Apply config values only where flags were left at their defaults
	if config.Source == defaultSource && cfg.Variantgen.Source != "" {
		config.Source = cfg.Variantgen.Source
	}
	if config.Output == defaultOutput && cfg.Variantgen.Output != "" {
		config.Output = cfg.Variantgen.Output
	}
	if config.Header == "" {
		config.Header = cfg.Variantgen.Header
	}
	return nil
}

func validateConfig(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
