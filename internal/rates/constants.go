package rates

const (
	// SecondsPerHour converts per-action values to hourly rates
	SecondsPerHour = 3600.0

	// MaxTimeReductionPercent caps the time reduction applied to durations
	MaxTimeReductionPercent = 80.0
)

// Per-tier percentages for the gathering buffs, indexed by tier 0-5
var (
	fishermanPercents          = []float64{0, 20, 40, 60, 80, 100}
	lumberjackPercents         = []float64{0, 20, 40, 60, 80, 100}
	efficientFishermanPercents = []float64{0, 10, 20, 30, 40, 50}
)

const (
	// PowerForagerChancePerTier is the loot doubling chance per Power Forager tier
	PowerForagerChancePerTier = 0.1

	// SmeltingMagicChancePerTier is the ore saving chance per Smelting Magic tier
	SmeltingMagicChancePerTier = 0.1
	// SmeltingMagicMaxTier is the highest tier that saves ores
	SmeltingMagicMaxTier       = 3

	// ForgeryPotionSaveChance is the bar saving chance of a Forgery Potion
	ForgeryPotionSaveChance = 0.1
)
