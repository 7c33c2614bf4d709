package rates

import (
	"math"

	"github.com/osse101/IdleRates_Go/internal/domain"
)

func activityExtras(in Input, r domain.RateResult) domain.ActivityExtras {
	switch in.Activity {
	case domain.ActivityWoodcutting:
		return domain.ActivityExtras{Woodcutting: woodcuttingExtras(in.Gathering, r)}
	case domain.ActivityFishing:
		return domain.ActivityExtras{Fishing: fishingExtras(in, r)}
	case domain.ActivityForaging:
		return domain.ActivityExtras{Foraging: foragingExtras(in.Gathering, r)}
	case domain.ActivitySmithing:
		return domain.ActivityExtras{Smithing: smithingExtras(in, r)}
	}
	return domain.ActivityExtras{}
}

// tierPercent reads a per-tier table, 0 for tiers outside it
func tierPercent(table []float64, tier int) float64 {
	if tier < 0 || tier >= len(table) {
		return 0
	}
	return table[tier]
}

func scaleFloor(n int64, percent float64) int64 {
	return int64(math.Floor(float64(n) * (1 + percent/100)))
}

// woodcuttingExtras applies The Lumberjack's bonus logs to the goal and hourly totals
func woodcuttingExtras(g domain.GatheringBuffs, r domain.RateResult) *domain.WoodcuttingExtras {
	percent := tierPercent(lumberjackPercents, g.TheLumberjack)
	extras := &domain.WoodcuttingExtras{
		TotalLogs:    r.RepetitionsNeeded,
		LogsPerHour:  r.TasksPerHour,
		BonusPercent: int(percent),
	}
	if percent > 0 {
		extras.TotalLogs = int64(math.Ceil(float64(r.RepetitionsNeeded) * (1 + percent/100)))
		extras.LogsPerHour = scaleFloor(r.TasksPerHour, percent)
	}
	return extras
}

// fishingExtras covers The Fisherman catches and Efficient Fisherman cooking byproducts
func fishingExtras(in Input, r domain.RateResult) *domain.FishingExtras {
	fisherman := tierPercent(fishermanPercents, in.Gathering.TheFisherman)
	efficient := tierPercent(efficientFishermanPercents, in.Gathering.EfficientFisherman)

	actions := float64(r.TasksPerHour) * efficient / 100
	return &domain.FishingExtras{
		FishPerHour:           scaleFloor(r.TasksPerHour, fisherman),
		CookingActionsPerHour: actions,
		CookingXPPerHour:      int64(math.Floor(actions * in.Item.CookingExp * (1 + in.Totals.XPBoostWithFlag/100))),
		CookedFishPerHour:     int64(math.Floor(actions * (1 + fisherman/100))),
	}
}

// foragingExtras counts Power Forager's doubled loot as extra tasks
func foragingExtras(g domain.GatheringBuffs, r domain.RateResult) *domain.ForagingExtras {
	chance := 0.0
	if g.PowerForager > 0 {
		chance = float64(g.PowerForager) * PowerForagerChancePerTier
	}
	return &domain.ForagingExtras{
		TasksPerHour: int64(math.Floor(float64(r.TasksPerHour) * (1 + chance))),
		DoubleChance: chance,
	}
}

// smithingExtras saves ores on bars (Smelting Magic) or bars on equipment (Forgery Potion)
func smithingExtras(in Input, r domain.RateResult) *domain.SmithingExtras {
	extras := &domain.SmithingExtras{IsBar: in.Item.IsBar()}

	if extras.IsBar {
		tier := in.Gathering.SmeltingMagic
		if tier > 0 && tier <= SmeltingMagicMaxTier {
			chance := float64(tier) * SmeltingMagicChancePerTier
			extras.OresSavedPerHour = int64(math.Floor(float64(r.TasksPerHour) * chance))
		}
		return extras
	}

	if in.Selection.ForgeryPotion {
		extras.BarsSavedPerHour = int64(math.Floor(float64(r.TasksPerHour) * ForgeryPotionSaveChance))
	}
	return extras
}
