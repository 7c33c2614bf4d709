package config

import "time"

// Environment variable names
const (
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvEnvironment       = "ENVIRONMENT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvCatalogDir        = "CATALOG_DIR"
	EnvProfileAPIBaseURL = "PROFILE_API_BASE_URL"
	EnvProfileAPITimeout = "PROFILE_API_TIMEOUT"
	EnvProfileCacheSize  = "PROFILE_CACHE_SIZE"
	EnvProfileCacheTTL   = "PROFILE_CACHE_TTL"
	EnvSessionCacheSize  = "SESSION_CACHE_SIZE"
	EnvSessionTTL        = "SESSION_TTL"
	EnvSchemaVersion     = "ENV_SCHEMA_VERSION"
	EnvAPIKey            = "API_KEY"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultProfileAPIBaseURL = "https://query.idleclans.com/api"
	DefaultProfileAPITimeout = 5 * time.Second
	DefaultProfileCacheSize  = 256
	DefaultProfileCacheTTL   = 5 * time.Minute
	DefaultSessionCacheSize  = 1024
	DefaultSessionTTL        = 30 * time.Minute
)
