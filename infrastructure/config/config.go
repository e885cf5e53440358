package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all client configuration
type Config struct {
	// Remote API
	APIBaseURL     string
	RequestTimeout time.Duration

	// Where finished zip archives are written
	DownloadDir string

	// Reminder emails go out on a short schedule when true
	ReminderTestMode bool

	// Upcoming-reminder window in days
	LookaheadDays int

	// Environment and logging
	Environment string
	LogLevel    string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		APIBaseURL:     getEnv("CHAINFLY_API_URL", "http://localhost:8000"),
		RequestTimeout: time.Duration(getEnvInt("CHAINFLY_REQUEST_TIMEOUT_MS", 10000)) * time.Millisecond,

		DownloadDir:      getEnv("CHAINFLY_DOWNLOAD_DIR", "."),
		ReminderTestMode: getEnvBool("CHAINFLY_REMINDER_TEST_MODE", false),
		LookaheadDays:    getEnvInt("CHAINFLY_LOOKAHEAD_DAYS", 7),

		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("CHAINFLY_API_URL is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("CHAINFLY_REQUEST_TIMEOUT_MS must be positive")
	}
	if c.LookaheadDays <= 0 {
		return fmt.Errorf("CHAINFLY_LOOKAHEAD_DAYS must be positive")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
