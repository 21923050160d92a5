package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the client.
type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		BaseURL:     envOrDefault(envBaseURL, defaultBaseURL),
		HTTPTimeout: durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		Metrics:     loadMetrics(),
	}
}

// LoadFile loads a dotenv file into the environment before reading
// configuration. Variables already present in the environment win.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil {
		return Config{}, err
	}
	return Load(), nil
}
