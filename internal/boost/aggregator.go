package boost

import (
	"github.com/osse101/IdleRates_Go/internal/catalog"
	"github.com/osse101/IdleRates_Go/internal/domain"
)

// Input is everything the aggregator needs for one item
type Input struct {
	Activity  domain.ActivityKey
	Item      domain.Item
	Selection domain.BoostSelection
	General   domain.GeneralBuffs
	Gathering domain.GatheringBuffs
	Upgrades  domain.UpgradeBuffs
}

// Aggregator folds the selected bonuses into normalized totals (no I/O, no state)
type Aggregator struct {
	bonuses *catalog.Bonuses
	routes  Routes
}

// NewAggregator creates an aggregator with the default exception routing
func NewAggregator(bonuses *catalog.Bonuses) *Aggregator {
	return &Aggregator{
		bonuses: bonuses,
		routes:  DefaultRoutes(),
	}
}

// Aggregate computes the XP, time and gold percentages and the XP multiplier.
// TimeReductionPercent is reported uncapped; the rate calculator clamps it.
func (a *Aggregator) Aggregate(in Input) domain.BoostTotals {
	route := a.routes.For(in.Activity, in.Item.Category)
	sel := in.Selection

	equipment := a.bonuses.Boost(catalog.CategoryTool, sel.Tool) +
		a.bonuses.Boost(catalog.CategorySkillCape, sel.SkillCape) +
		a.bonuses.CountBoost(catalog.CategoryOutfit, sel.OutfitPieces)
	scrolls := a.scrollBoost(sel)

	xp := a.bonuses.Boost(catalog.CategoryClanHouse, in.General.ClanHouse) +
		a.bonuses.Boost(catalog.CategoryPersonalHouse, in.General.PersonalHouse) +
		a.bonuses.Boost(catalog.CategoryConsumable, sel.Consumable)
	if sel.EventBoost && sel.EventBoostValue > 0 {
		xp += sel.EventBoostValue
	}

	var timeReduction float64
	if route.EquipmentToXP {
		xp += equipment
	} else {
		timeReduction += equipment
	}
	if !route.ScrollsAsXPMultiplier {
		timeReduction += scrolls
	}
	timeReduction += activityTimeBonus(in)

	totals := domain.BoostTotals{
		XPBoostBase:          xp,
		XPBoostWithFlag:      xp,
		TimeReductionPercent: timeReduction,
		GoldBoostPercent:     goldBoost(in),
		XPMultiplier:         NoMultiplier,
	}
	if sel.XPBoost {
		totals.XPBoostWithFlag += XPBoostFlagPercent
	}

	if route.ChiselApplies && sel.GuardiansChisel {
		totals.XPMultiplier *= GuardiansChiselMultiplier
	}
	if route.ScrollsAsXPMultiplier {
		totals.XPMultiplier *= 1 + scrolls/100
	}

	return totals
}

// scrollBoost sums the three scroll grades, scaled by the Knowledge Potion
func (a *Aggregator) scrollBoost(sel domain.BoostSelection) float64 {
	var total float64
	for _, tier := range domain.AllScrollTiers {
		total += a.bonuses.ScrollBoost(tier, sel.Scrolls(tier))
	}
	if sel.KnowledgePotion {
		total *= KnowledgePotionScrollFactor
	}
	return total
}

// activityTimeBonus adds the farming buffs and the clan Gatherers speed-up
func activityTimeBonus(in Input) float64 {
	var bonus float64
	if in.Activity == domain.ActivityFarming {
		if in.Gathering.FarmingTrickery > 0 {
			bonus += FarmingTrickeryPercent
		}
		if in.Gathering.PowerFarmHand > 0 {
			bonus += PowerFarmHandPercent
		}
		if in.Selection.GuardiansTrowel {
			bonus += GuardiansTrowelPercent
		}
	}
	if in.Upgrades.Gatherers && in.Activity.IsGathering() {
		bonus += GatherersPercent
	}
	return bonus
}

// goldBoost treats the Trickery Potion as a flat gold bonus
func goldBoost(in Input) float64 {
	var gold float64
	if in.General.OfferTheyCanRefuse {
		gold += OfferTheyCanRefusePercent
	}
	if in.Selection.NegotiationPotion {
		gold += NegotiationPotionPercent
	}
	if in.Selection.TrickeryPotion {
		gold += TrickeryPotionPercent
	}
	return gold
}
