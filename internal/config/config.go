package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/IdleRates_Go/internal/logger"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	// CatalogDir overrides the embedded catalog when set
	CatalogDir string

	ProfileAPIBaseURL string        `validate:"required,url"`
	ProfileAPITimeout time.Duration `validate:"gt=0"`
	ProfileCacheSize  int           `validate:"min=1"`
	ProfileCacheTTL   time.Duration `validate:"gt=0"`

	SessionCacheSize int           `validate:"min=1"`
	SessionTTL       time.Duration `validate:"gt=0"`

	// APIKey gates /api routes when non-empty
	APIKey         string
	TrustedProxies []string `validate:"dive,ip"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:          strings.ToLower(getEnv(EnvLogLevel, logger.LogLevelInfo)),
		LogFormat:         strings.ToLower(getEnv(EnvLogFormat, logger.LogFormatText)),
		Environment:       getEnv(EnvEnvironment, logger.EnvironmentDev),
		ServiceName:       getEnv(EnvServiceName, logger.DefaultServiceName),
		Version:           getEnv(EnvVersion, logger.DefaultVersion),
		CatalogDir:        getEnv(EnvCatalogDir, ""),
		ProfileAPIBaseURL: getEnv(EnvProfileAPIBaseURL, DefaultProfileAPIBaseURL),
		ProfileAPITimeout: getEnvAsDuration(EnvProfileAPITimeout, DefaultProfileAPITimeout),
		ProfileCacheSize:  getEnvAsInt(EnvProfileCacheSize, DefaultProfileCacheSize),
		ProfileCacheTTL:   getEnvAsDuration(EnvProfileCacheTTL, DefaultProfileCacheTTL),
		SessionCacheSize:  getEnvAsInt(EnvSessionCacheSize, DefaultSessionCacheSize),
		SessionTTL:        getEnvAsDuration(EnvSessionTTL, DefaultSessionTTL),
		APIKey:            getEnv(EnvAPIKey, ""),
		TrustedProxies:    getEnvAsList(EnvTrustedProxies),
	}

	portStr := getEnv(EnvPort, strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
	}
	return fmt.Errorf("invalid configuration: %w", err)
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == logger.EnvironmentDev || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back on absence or parse failure
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration parses a duration environment variable, falling back on absence or parse failure
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// getEnvAsList splits a comma separated environment variable, dropping blank entries
func getEnvAsList(key string) []string {
	value := getEnv(key, "")
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
