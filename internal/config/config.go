package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Catalog struct {
		Dir string `yaml:"dir" validate:"required"`
	} `yaml:"catalog"`
	Output struct {
		Dir string `yaml:"dir" validate:"required"`
	} `yaml:"output"`
	Log struct {
		Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	} `yaml:"log"`
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Catalog.Dir = "catalog"
	cfg.Output.Dir = "docs/api"
	cfg.Log.Level = "info"
	return cfg
}

// LoadConfig reads the YAML config (optional), then applies environment
// overrides. A missing config file leaves the defaults in place.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := defaults()

	// 2. Load YAML config if present
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with environment variables if present
	if dir := os.Getenv("UIKIT_CATALOG_DIR"); dir != "" {
		cfg.Catalog.Dir = dir
	}
	if dir := os.Getenv("UIKIT_OUTPUT_DIR"); dir != "" {
		cfg.Output.Dir = dir
	}
	if level := os.Getenv("UIKIT_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
