package config

import (
	"fmt"
	"os"
	"strconv"

	"synstatement/internal/logger"
)

type Config struct {
	// OpenAI Configuration (optional: enables generative company profiles)
	OpenAIAPIKey string
	OpenAIModel  string

	// Statement Generation Configuration
	OutputDir    string
	BatchWorkers int

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		OutputDir:     getEnv("STATEMENT_OUTPUT_DIR", "generated_statements"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stdout"),
	}

	workers, err := getEnvInt("BATCH_WORKERS", 4)
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	config.BatchWorkers = workers

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

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	if parsed < 1 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, parsed)
	}
	return parsed, nil
}
