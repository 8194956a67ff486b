package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for insight-engine.
// Configuration can come from YAML file (config.yaml) or environment
// variables. Environment variables always override YAML values.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// AllowedOriginsStr is a comma-separated list of CORS origins for the
	// demo API.
	AllowedOriginsStr string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-default:"http://localhost:3000"`

	// AllowedOrigins is the parsed list from AllowedOriginsStr (not from config file).
	AllowedOrigins []string `yaml:"-"`

	// Pipeline tuning
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// PipelineConfig tunes the recommendation pipeline.
type PipelineConfig struct {
	// ImpactCoefficient scales the financial-impact placeholder figure.
	ImpactCoefficient float64 `yaml:"impact_coefficient" env:"PIPELINE_IMPACT_COEFFICIENT" env-default:"0.1"`

	// NetworkSeed fixes the network edge draw seed; 0 means a time-based
	// seed (graphs are not reproducible across runs).
	NetworkSeed int64 `yaml:"network_seed" env:"PIPELINE_NETWORK_SEED" env-default:"0"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. The file is optional; without it only defaults and environment
// apply. The version parameter is injected at build time.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	cfg.AllowedOrigins = parseOrigins(cfg.AllowedOriginsStr)

	if cfg.Pipeline.ImpactCoefficient <= 0 {
		return nil, fmt.Errorf("pipeline impact coefficient must be positive, got %v", cfg.Pipeline.ImpactCoefficient)
	}

	return cfg, nil
}

// parseOrigins parses the comma-separated origin list.
func parseOrigins(value string) []string {
	var origins []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
