package calculator

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrFmtTargetLevel       = "%w: target level %d outside %d-%d"
	ErrFmtLevel             = "%w: level %d outside %d-%d"
	ErrFmtNegativeXP        = "%w: experience %v is negative"
	ErrFmtNonFiniteXP       = "%w: experience %v is not a finite number"
	ErrMsgNilProfile        = "player profile is required"
	ErrMsgSourceUnavailable = "no player record source configured"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgCalculated        = "Calculated rates"
	LogMsgCalculationFailed = "Calculation rejected"
	LogMsgProfileInferred   = "Inferred boosts from player record"
	LogMsgPlayerFetchFailed = "Failed to fetch player record"
)
