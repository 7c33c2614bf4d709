package leveling

// TrueMasterXP is the experience required for the true master tier past the level cap
const TrueMasterXP int64 = 500_000_000

// Error message formats for table construction
const (
	ErrFmtEmptyTable        = "%w: level table is empty"
	ErrFmtLevelGap          = "%w: expected level %d, got %d"
	ErrFmtFirstLevelNotZero = "%w: level 1 must require 0 xp, got %d"
	ErrFmtNotIncreasing     = "%w: xp for level %d (%d) is not above level %d (%d)"
	ErrFmtTooFewLevels      = "%w: table must cover levels 1-%d, got %d levels"
)

// Loader messages
const (
	ErrMsgReadTableFailed  = "failed to read level table: %w"
	ErrMsgParseTableFailed = "failed to parse level table: %w"
	LogMsgTableLoaded      = "Level table loaded"
)
