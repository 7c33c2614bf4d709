package catalog

// ==================== Bonus Categories ====================

// Category names a group of mutually exclusive bonus tiers
type Category string

const (
	CategoryTool          Category = "tool"
	CategoryClanHouse     Category = "clan_house"
	CategoryPersonalHouse Category = "personal_house"
	CategorySkillCape     Category = "skill_cape"
	CategoryOutfit        Category = "outfit"
	CategoryConsumable    Category = "consumable"
	CategoryScrollT1      Category = "scroll_t1"
	CategoryScrollT2      Category = "scroll_t2"
	CategoryScrollT3      Category = "scroll_t3"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read catalog file %s: %w"
	ErrMsgParseConfigFailed    = "failed to parse catalog file %s: %w"
	ErrMsgListActivitiesFailed = "failed to list activity catalogs: %w"
)

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtSchemaFailed       = "%w: %s: %v"
	ErrFmtDuplicateTier      = "%w: duplicate key '%s' in %s"
	ErrFmtMissingDefaultTier = "%w: %s has no '%s' tier"
	ErrFmtCountKeyNotNumeric = "%w: %s key '%s' is not a count"
	ErrFmtDuplicateActivity  = "%w: activity '%s' defined twice"
	ErrFmtMissingActivity    = "%w: no catalog for activity '%s'"
	ErrFmtUnknownActivity    = "%w: unknown activity '%s'"
	ErrFmtDuplicateItem      = "%w: duplicate item '%s' in %s"
	ErrFmtOutfitAboveCatalog = "%w: %s allows %d outfit pieces, catalog has %d"
	ErrFmtUnknownTier        = "%w: %s '%s'"
	ErrFmtUnknownCategory    = "%w: category '%s'"
	ErrFmtActivityNotFound   = "%w: '%s'"
	ErrFmtScrollTierNotFound = "%w: scroll grade '%s'"
)

// ==================== Log Messages ====================

const (
	LogMsgBonusesLoaded    = "Bonus catalog loaded"
	LogMsgActivitiesLoaded = "Activity catalogs loaded"
)
