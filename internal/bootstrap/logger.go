package bootstrap

import (
	"log/slog"

	"github.com/osse101/IdleRates_Go/internal/config"
	"github.com/osse101/IdleRates_Go/internal/logger"
)

// SetupLogger initializes the application logger from the loaded configuration
// and logs the startup banner. Source locations are only attached in development.
func SetupLogger(cfg *config.Config) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)
	logger.InitLogger(loggerConfig)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel())
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"catalog_dir", cfg.CatalogDir,
		"profile_api", cfg.ProfileAPIBaseURL,
		"profile_cache_size", cfg.ProfileCacheSize,
		"session_cache_size", cfg.SessionCacheSize,
		"auth_enabled", cfg.APIKey != "")
}
