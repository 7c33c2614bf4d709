package selection

// Rejection reasons, appended to domain.ErrInvalidSelection
const (
	ErrFmtScrollTotal      = "%w: %d scrolls selected, at most %d allowed"
	ErrFmtScrollCount      = "%w: %s scroll count %d out of range"
	ErrFmtOutfitPieces     = "%w: %d outfit pieces selected, %s allows %d"
	ErrFmtEventBoostValue  = "%w: event boost value %v out of range 0-%d"
	ErrFmtUnknownTier      = "%w: unknown %s '%s'"
	ErrFmtFieldConstraint  = "%w: %s failed %s"
	ErrMsgActivityRequired = "activity is required"
)
