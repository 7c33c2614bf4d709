package domain

// Activity keys
const (
	ActivityCrafting    ActivityKey = "crafting"
	ActivityMining      ActivityKey = "mining"
	ActivitySmithing    ActivityKey = "smithing"
	ActivityCarpentry   ActivityKey = "carpentry"
	ActivityFarming     ActivityKey = "farming"
	ActivityForaging    ActivityKey = "foraging"
	ActivityCooking     ActivityKey = "cooking"
	ActivityEnchanting  ActivityKey = "enchanting"
	ActivityWoodcutting ActivityKey = "woodcutting"
	ActivityAgility     ActivityKey = "agility"
	ActivityFishing     ActivityKey = "fishing"
	ActivityPlundering  ActivityKey = "plundering"
	ActivityBrewing     ActivityKey = "brewing"
)

// AllActivities lists the non-combat activities in display order
var AllActivities = []ActivityKey{
	ActivityCrafting,
	ActivityMining,
	ActivitySmithing,
	ActivityCarpentry,
	ActivityFarming,
	ActivityForaging,
	ActivityCooking,
	ActivityEnchanting,
	ActivityWoodcutting,
	ActivityAgility,
	ActivityFishing,
	ActivityPlundering,
	ActivityBrewing,
}

// Item categories with special routing
const (
	CategoryRefinement = "Refinement"
	CategoryBars       = "Bars"
)

// ItemNameBarFragment marks smithing items that produce bars
const ItemNameBarFragment = "bar"

// Tier keys shared by the catalog and selection defaults
const (
	TierKeyNone = "none"
)

// Selection limits
const (
	MaxScrollsTotal    = 4
	MaxScrollsPerTier  = 4
	MaxOutfitPieces    = 4
	MaxEventBoostValue = 999
	MaxGatheringTier   = 5
)

// Level bounds
const (
	MinLevel           = 1
	MaxLevel           = 120
	TrueMasterLevel    = 121
	DefaultTargetLevel = MaxLevel
)
