package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable validation defaults. CLI flags override
// whatever is loaded here.
type Config struct {
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	MaxFunctions   int     `yaml:"max_functions"`
	Threshold      float64 `yaml:"threshold"`
}

// Load builds the configuration from defaults, an optional YAML file and
// SWAPCHECK_* environment variables, in that order of precedence.
func Load(path string) (*Config, error) {
	// Load .env if present so env overrides work in local setups.
	_ = godotenv.Load()

	cfg := &Config{
		TimeoutSeconds: 5,
		MaxFunctions:   10,
		Threshold:      85,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if v := os.Getenv("SWAPCHECK_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("SWAPCHECK_TIMEOUT_SECONDS: %w", err)
		}
		cfg.TimeoutSeconds = n
	}
	if v := os.Getenv("SWAPCHECK_MAX_FUNCTIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("SWAPCHECK_MAX_FUNCTIONS: %w", err)
		}
		cfg.MaxFunctions = n
	}
	if v := os.Getenv("SWAPCHECK_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("SWAPCHECK_THRESHOLD: %w", err)
		}
		cfg.Threshold = f
	}

	return cfg, nil
}
