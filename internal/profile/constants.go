package profile

import "time"

// API paths, relative to the configured base URL
const (
	PathPlayerProfile   = "/Player/profile/"
	PathClanRecruitment = "/Clan/recruitment/"
)

// DefaultTimeout bounds each request to the player API
const DefaultTimeout = 5 * time.Second

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute

	// CacheSchemaVersion invalidates cached entries when the cached shape changes
	CacheSchemaVersion = "1.0"
)

// Error and log messages
const (
	ErrFmtUnexpectedStatus = "%w: %s returned status %d"
	ErrFmtRequestFailed    = "%w: %v"
	ErrFmtDecodeFailed     = "%w: decode %s: %v"
	ErrMsgEmptyName        = "player name is empty"

	LogMsgClanLookupFailed = "Clan lookup failed, continuing without serialized upgrades"
	LogMsgProfileFetched   = "Fetched player profile"
	LogMsgCacheHit         = "Player profile cache hit"
)
