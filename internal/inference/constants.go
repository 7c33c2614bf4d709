package inference

// ==================== Player Upgrade Keys ====================

// Housing counters, checked in order; the first positive one wins
var housingUpgradeKeys = []string{"housing", "personalHousing", "keepItSpacious"}

// Upgrade counters copied into the gathering buffs
const (
	UpgradeTheFisherman           = "theFisherman"
	UpgradePowerForager           = "powerForager"
	UpgradeTheLumberjack          = "theLumberjack"
	UpgradeMostEfficientFisherman = "mostEfficientFisherman"
	UpgradeFarmingTrickery        = "farmingTrickery"
	UpgradeSmeltingMagic          = "smeltingMagic"
	UpgradePlankBargain           = "plankBargain"
)

// Upgrade counters mapped to boolean upgrade buffs
const (
	UpgradeArrowCrafter           = "arrowCrafter"
	UpgradeResponsibleDrinking    = "responsibleDrinking"
	UpgradeDelicateManufacturing  = "delicateManufacturing"
	UpgradeLastNegotiation        = "lastNegotiation"
	UpgradePrestigiousWoodworking = "prestigiousWoodworking"
	UpgradeBetterFisherman        = "betterFisherman"
	UpgradeBetterLumberjack       = "betterLumberjack"
	UpgradeValuedClanMember       = "valuedClanMember"
)

// ==================== Clan Upgrades ====================

// ClanUpgradeGatherers is the clan upgrade id granting +5% speed on gathering activities
const ClanUpgradeGatherers = 23

// LegacyGatherersKey is the personal upgrade key older records use for Gatherers
const LegacyGatherersKey = "23"

// ==================== Tier Thresholds ====================

const (
	// LevelForT6Tool and above infer the T6 tool
	LevelForT6Tool = 100
	// LevelForT5Tool and above infer the T5 tool and a full set of T3 scrolls
	LevelForT5Tool = 90

	InferredHighTool     = "t6"
	InferredMidTool      = "t5"
	InferredClanHouse    = "t6"
	InferredT3Scrolls    = 4
	MaxPersonalHouseTier = 5
	PersonalHouseKeyFmt  = "t%d"
)

// ==================== Log Messages ====================

const (
	LogMsgMalformedClanUpgrades = "Could not parse clan serialized upgrades, treating Gatherers as absent"
	LogMsgProfileInferred       = "Inferred boosts from player profile"
)

// Error messages
const (
	ErrMsgNilProfile          = "profile is nil"
	ErrFmtUnsupportedUpgrades = "%w: serialized upgrades %s"
)
