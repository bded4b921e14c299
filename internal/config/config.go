// Package config provides configuration management for the application.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/amaumene/gomoviesearch/internal/constants"
	apperrors "github.com/amaumene/gomoviesearch/internal/errors"
)

const (
	// Default configuration file name
	defaultConfigFile = "config.json"
	// Default dotenv file name
	defaultEnvFile = ".env"
)

// Config holds the application configuration.
// It supports loading from a .env file, environment variables and JSON files.
type Config struct {
	// TMDB
	TMDBAPIKey       string `json:"TMDB_API_KEY"`
	TMDBBaseURL      string `json:"TMDB_BASE_URL"`
	TMDBImageBaseURL string `json:"TMDB_IMAGE_BASE_URL"`
	TMDBLanguage     string `json:"TMDB_LANGUAGE"`

	// Client side timeout for each remote call
	HTTPTimeout time.Duration `json:"HTTP_TIMEOUT"`

	// Storage settings
	DatabasePath string `json:"DATABASE_PATH"`

	// HTTP server
	Port string `json:"PORT"`

	// Logging
	LogLevel  string `json:"LOG_LEVEL"`
	LogFormat string `json:"LOG_FORMAT"`
	LogFile   string `json:"LOG_FILE"`
}

// Default returns a configuration populated with defaults only.
func Default() *Config {
	return &Config{
		TMDBBaseURL:      constants.DefaultTMDBBaseURL,
		TMDBImageBaseURL: constants.DefaultTMDBImageBaseURL,
		TMDBLanguage:     constants.DefaultTMDBLanguage,
		HTTPTimeout:      constants.HTTPTimeout,
		DatabasePath:     filepath.Join(".", constants.DefaultDBFile),
		Port:             constants.DefaultPort,
		LogLevel:         constants.DefaultLogLevel,
	}
}

// Load reads configuration from .env, environment variables and an optional
// JSON file. The JSON file is applied last so an explicit file wins over
// ambient environment. Returns an error if the configuration is invalid.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	// .env is optional; existing environment variables are not overridden
	if err := godotenv.Load(getEnvOrDefault("ENV_FILE", defaultEnvFile)); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}

	if configFile == "" {
		configFile = getEnvOrDefault("CONFIG_FILE", defaultConfigFile)
	}
	if err := cfg.loadFromFile(configFile); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromEnv loads configuration from environment variables.
func (c *Config) loadFromEnv() error {
	// VITE_API_KEY is what the browser build of this tool read its key from
	if key := os.Getenv("VITE_API_KEY"); key != "" {
		c.TMDBAPIKey = key
	}
	if key := os.Getenv("TMDB_API_KEY"); key != "" {
		c.TMDBAPIKey = key
	}

	c.TMDBBaseURL = getEnvOrDefault("TMDB_BASE_URL", c.TMDBBaseURL)
	c.TMDBImageBaseURL = getEnvOrDefault("TMDB_IMAGE_BASE_URL", c.TMDBImageBaseURL)
	c.TMDBLanguage = getEnvOrDefault("TMDB_LANGUAGE", c.TMDBLanguage)
	c.DatabasePath = getEnvOrDefault("DATABASE_PATH", c.DatabasePath)
	c.Port = getEnvOrDefault("PORT", c.Port)
	c.LogLevel = getEnvOrDefault("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnvOrDefault("LOG_FORMAT", c.LogFormat)
	c.LogFile = getEnvOrDefault("LOG_FILE", c.LogFile)

	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid HTTP_TIMEOUT %q: %w", raw, err)
		}
		c.HTTPTimeout = d
	}

	return nil
}

// fileConfig mirrors Config with HTTP_TIMEOUT as a duration string.
type fileConfig struct {
	Config
	HTTPTimeout string `json:"HTTP_TIMEOUT"`
}

// loadFromFile loads configuration from a JSON file. Only keys present in
// the file override current values.
func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	fc := fileConfig{Config: *c}
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	*c = fc.Config

	if fc.HTTPTimeout != "" {
		d, err := time.ParseDuration(fc.HTTPTimeout)
		if err != nil {
			return fmt.Errorf("invalid HTTP_TIMEOUT %q in %s: %w", fc.HTTPTimeout, filename, err)
		}
		c.HTTPTimeout = d
	}

	return nil
}

// Validate checks if the configuration is valid.
// Sets default values for missing optional fields.
func (c *Config) Validate() error {
	// TMDB_API_KEY is optional here; the adapter reports every call as a
	// fetch failure until one is configured.

	if c.HTTPTimeout < 0 {
		return apperrors.NewConfigurationError(fmt.Sprintf("HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout), nil)
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = constants.HTTPTimeout
	}

	if c.TMDBBaseURL == "" {
		c.TMDBBaseURL = constants.DefaultTMDBBaseURL
	}
	if c.TMDBImageBaseURL == "" {
		c.TMDBImageBaseURL = constants.DefaultTMDBImageBaseURL
	}
	if c.TMDBLanguage == "" {
		c.TMDBLanguage = constants.DefaultTMDBLanguage
	}

	for name, raw := range map[string]string{
		"TMDB_BASE_URL":       c.TMDBBaseURL,
		"TMDB_IMAGE_BASE_URL": c.TMDBImageBaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return apperrors.NewConfigurationError(fmt.Sprintf("%s must be an absolute URL, got %q", name, raw), err)
		}
	}

	if c.DatabasePath == "" {
		c.DatabasePath = filepath.Join(".", constants.DefaultDBFile)
	}
	if c.Port == "" {
		c.Port = constants.DefaultPort
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
