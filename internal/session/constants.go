package session

import "time"

// Store defaults
const (
	DefaultStoreSize = 1024
	DefaultTTL       = 30 * time.Minute
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrFmtSessionNotFound = "%w: %s"
	ErrMsgNoItemSelected  = "no item selected"
	ErrMsgNilInferred     = "inferred state is required"
	ErrFmtNegativeXP      = "%w: experience %v is negative"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgSessionCreated  = "Session created"
	LogMsgSessionReset    = "Session reset"
	LogMsgPlayerLoaded    = "Player loaded into session"
	LogMsgBoostsRejected  = "Boost edit rejected"
	LogMsgActivityChanged = "Session activity changed"
)
