package boost

// Flat percentage bonuses
const (
	XPBoostFlagPercent        = 30.0
	FarmingTrickeryPercent    = 25.0
	PowerFarmHandPercent      = 15.0
	GuardiansTrowelPercent    = 5.0
	GatherersPercent          = 5.0
	OfferTheyCanRefusePercent = 10.0
	NegotiationPotionPercent  = 5.0
	TrickeryPotionPercent     = 15.0
)

// Multipliers
const (
	KnowledgePotionScrollFactor = 1.5
	GuardiansChiselMultiplier   = 1.1
	NoMultiplier                = 1.0
)
