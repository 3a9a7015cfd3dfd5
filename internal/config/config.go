package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	TMDB    TMDBConfig
	Query   QueryConfig
	UI      UIConfig
	Logging LoggingConfig
}

// TMDBConfig holds The Movie Database API configuration
type TMDBConfig struct {
	APIToken       string
	BaseURL        string        `validate:"required,url"`
	ImageBaseURL   string        `validate:"required,url"`
	WebBaseURL     string        `validate:"required,url"`
	RequestTimeout time.Duration `validate:"gt=0"`
}

// QueryConfig holds the search cache policy
type QueryConfig struct {
	StaleTime time.Duration `validate:"gt=0"`
	GCTime    time.Duration `validate:"gtefield=StaleTime"`
	MinLength int           `validate:"min=1"`
}

// UIConfig holds terminal UI tuning
type UIConfig struct {
	ToastDuration time.Duration `validate:"gt=0"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string
	Level string `validate:"oneof=debug info warn error"`
	Env   string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		TMDB: TMDBConfig{
			APIToken:       getEnv("TMDB_API_TOKEN", getEnv("TMDB_API_KEY", "")),
			BaseURL:        getEnv("TMDB_API_BASE_URL", "https://api.themoviedb.org/3"),
			ImageBaseURL:   getEnv("TMDB_IMAGE_BASE_URL", "https://image.tmdb.org/t/p"),
			WebBaseURL:     getEnv("TMDB_WEB_BASE_URL", "https://www.themoviedb.org"),
			RequestTimeout: getDurationEnv("REQUEST_TIMEOUT_MS", 10000) * time.Millisecond,
		},
		Query: QueryConfig{
			StaleTime: getDurationEnv("QUERY_STALE_TIME_SEC", 300) * time.Second,
			GCTime:    getDurationEnv("QUERY_GC_TIME_SEC", 600) * time.Second,
			MinLength: getIntEnv("QUERY_MIN_LENGTH", 2),
		},
		UI: UIConfig{
			ToastDuration: getDurationEnv("TOAST_DURATION_MS", 3000) * time.Millisecond,
		},
		Logging: LoggingConfig{
			File:  getEnv("LOG_FILE", ""),
			Level: getEnv("LOG_LEVEL", "info"),
			Env:   getEnv("APP_ENV", "production"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate checks the configuration against its struct rules
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	// Without a token every search fails with 401, which the UI reports like any other failed request
	if c.TMDB.APIToken == "" {
		log.Println("WARNING: TMDB_API_TOKEN not set. Searches will be rejected by the API")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("WARNING: Invalid integer value for %s: %s. Using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue int) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return time.Duration(defaultValue)
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("WARNING: Invalid duration value for %s: %s. Using default: %d", key, valueStr, defaultValue)
		return time.Duration(defaultValue)
	}

	return time.Duration(value)
}
