package bootstrap

// =============================================================================
// Logger Configuration
// =============================================================================

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting IdleRates"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// =============================================================================
// Catalog Loading
// =============================================================================

const (
	LogMsgCatalogEmbedded = "Loading embedded catalogs"
	LogMsgCatalogOverride = "Loading catalogs from override directory"
	LogMsgCatalogLoaded   = "Catalogs loaded"

	ErrMsgFailedLoadLevels  = "failed to load level table"
	ErrMsgFailedLoadCatalog = "failed to load activity catalog"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSessionsDiscarded    = "Discarding in-memory sessions"
)
