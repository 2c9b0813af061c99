package config

import (
	"os"
	"strconv"

	"goqa/domain/quality"
	"goqa/internal/errors"

	"github.com/joho/godotenv"
)

// Config represents the complete library configuration
type Config struct {
	Quality quality.Config
	Charts  ChartConfig
}

// ChartConfig holds chart construction settings
type ChartConfig struct {
	Palette []string
}

// defaultPalette mirrors the colors frontends expect for quality charts
var defaultPalette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Load reads configuration from environment variables and validates it.
// A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	// Missing .env is fine; explicit env vars still apply
	_ = godotenv.Load()

	config := &Config{
		Quality: quality.DefaultConfig(),
		Charts:  ChartConfig{Palette: defaultPalette},
	}

	if v := os.Getenv("GOQA_SAMPLE_VALUES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid GOQA_SAMPLE_VALUES")
		}
		config.Quality.SampleValues = n
	}

	if v := os.Getenv("GOQA_RUN_DESCRIBE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid GOQA_RUN_DESCRIBE")
		}
		config.Quality.RunDescribe = b
	}

	if v := os.Getenv("GOQA_RUN_VERIFY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid GOQA_RUN_VERIFY")
		}
		config.Quality.RunVerify = b
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Quality.SampleValues < 0 {
		return errors.ConfigInvalid("sample values must not be negative")
	}
	if len(config.Charts.Palette) == 0 {
		return errors.ConfigInvalid("chart palette must not be empty")
	}
	return nil
}
