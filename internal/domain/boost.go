package domain

import "encoding/json"

// BonusTier is one selectable option within a bonus category
type BonusTier struct {
	Name  string  `json:"name"`
	Key   string  `json:"key"`
	Boost float64 `json:"boost"`
}

// ScrollTier identifies one of the three scroll grades
type ScrollTier string

const (
	ScrollTierT1 ScrollTier = "t1"
	ScrollTierT2 ScrollTier = "t2"
	ScrollTierT3 ScrollTier = "t3"
)

// AllScrollTiers lists scroll grades from lowest to highest
var AllScrollTiers = []ScrollTier{ScrollTierT1, ScrollTierT2, ScrollTierT3}

// BoostSelection is the per-activity bonus state edited by the user or seeded by inference
type BoostSelection struct {
	Tool              string  `json:"tool"`
	T3Scrolls         int     `json:"t3_scrolls"`
	T2Scrolls         int     `json:"t2_scrolls"`
	T1Scrolls         int     `json:"t1_scrolls"`
	SkillCape         string  `json:"skill_cape"`
	OutfitPieces      int     `json:"outfit_pieces"`
	Consumable        string  `json:"consumable"`
	XPBoost           bool    `json:"xp_boost"`
	NegotiationPotion bool    `json:"negotiation_potion"`
	TrickeryPotion    bool    `json:"trickery_potion"`
	KnowledgePotion   bool    `json:"knowledge_potion"`
	GuardiansChisel   bool    `json:"guardians_chisel"`
	ForgeryPotion     bool    `json:"forgery_potion"`
	GuardiansTrowel   bool    `json:"guardians_trowel"`
	EventBoost        bool    `json:"event_boost"`
	EventBoostValue   float64 `json:"event_boost_value"`
}

// DefaultBoostSelection returns a selection with every category at none/0/false
func DefaultBoostSelection() BoostSelection {
	return BoostSelection{
		Tool:       TierKeyNone,
		SkillCape:  TierKeyNone,
		Consumable: TierKeyNone,
	}
}

// UnmarshalJSON starts from the defaults so omitted keys mean none/0/false
func (s *BoostSelection) UnmarshalJSON(data []byte) error {
	type plain BoostSelection
	p := plain(DefaultBoostSelection())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = BoostSelection(p)
	return nil
}

// Scrolls returns the selected count for a scroll grade
func (s BoostSelection) Scrolls(tier ScrollTier) int {
	switch tier {
	case ScrollTierT1:
		return s.T1Scrolls
	case ScrollTierT2:
		return s.T2Scrolls
	case ScrollTierT3:
		return s.T3Scrolls
	}
	return 0
}

// TotalScrolls returns the number of scrolls selected across all grades
func (s BoostSelection) TotalScrolls() int {
	return s.T1Scrolls + s.T2Scrolls + s.T3Scrolls
}

// GeneralBuffs are cross-activity modifiers shared by every activity
type GeneralBuffs struct {
	ClanHouse          string `json:"clan_house"`
	PersonalHouse      string `json:"personal_house"`
	OfferTheyCanRefuse bool   `json:"offer_they_cant_refuse"`
}

// DefaultGeneralBuffs returns general buffs with no housing and no gold upgrade
func DefaultGeneralBuffs() GeneralBuffs {
	return GeneralBuffs{
		ClanHouse:     TierKeyNone,
		PersonalHouse: TierKeyNone,
	}
}

// UnmarshalJSON starts from the defaults so omitted houses mean none
func (g *GeneralBuffs) UnmarshalJSON(data []byte) error {
	type plain GeneralBuffs
	p := plain(DefaultGeneralBuffs())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*g = GeneralBuffs(p)
	return nil
}

// GatheringBuffs are tiered (0-5) personal upgrades affecting gathering activities
type GatheringBuffs struct {
	TheFisherman       int `json:"the_fisherman" validate:"min=0,max=5"`
	PowerForager       int `json:"power_forager" validate:"min=0,max=5"`
	TheLumberjack      int `json:"the_lumberjack" validate:"min=0,max=5"`
	EfficientFisherman int `json:"efficient_fisherman" validate:"min=0,max=5"`
	FarmingTrickery    int `json:"farming_trickery" validate:"min=0,max=5"`
	PowerFarmHand      int `json:"power_farm_hand" validate:"min=0,max=5"`
	SmeltingMagic      int `json:"smelting_magic" validate:"min=0,max=5"`
	PlankBargain       int `json:"plank_bargain" validate:"min=0,max=5"`
}

// UpgradeBuffs are boolean personal and clan upgrades
type UpgradeBuffs struct {
	ArrowCrafter           bool `json:"arrow_crafter"`
	ResponsibleDrinking    bool `json:"responsible_drinking"`
	DelicateManufacturing  bool `json:"delicate_manufacturing"`
	LastNegotiation        bool `json:"last_negotiation"`
	PrestigiousWoodworking bool `json:"prestigious_woodworking"`
	BetterFisherman        bool `json:"better_fisherman"`
	BetterLumberjack       bool `json:"better_lumberjack"`
	Gatherers              bool `json:"gatherers"`
}

// BoostTotals is the normalized output of the boost aggregator.
// XPMultiplier is applied to base XP after the percentage boosts.
type BoostTotals struct {
	XPBoostBase          float64 `json:"xp_boost_base"`
	XPBoostWithFlag      float64 `json:"xp_boost_with_flag"`
	TimeReductionPercent float64 `json:"time_reduction_percent"`
	GoldBoostPercent     float64 `json:"gold_boost_percent"`
	XPMultiplier         float64 `json:"xp_multiplier"`
}
