package config

import (
	"os"
	"path/filepath"

	"indiebyll/internal/logger"
)

// Config holds everything tunable from the environment. Every key has
// a working default so the tool runs with no setup at all.
type Config struct {
	// StorePath is the local data file holding all persisted state.
	StorePath string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		StorePath:     getEnv("INDIEBYLL_STORE_PATH", defaultStorePath()),
		LogLevel:      getEnv("LOG_LEVEL", "warn"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}

	return config, nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

// defaultStorePath is ~/.indiebyll/data.json, falling back to the
// working directory when the home directory cannot be resolved.
func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "indiebyll-data.json"
	}
	return filepath.Join(home, ".indiebyll", "data.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
