package rates

import (
	"math"

	"github.com/osse101/IdleRates_Go/internal/domain"
	"github.com/osse101/IdleRates_Go/internal/leveling"
)

// Input is one fully resolved rate request
type Input struct {
	Activity          domain.ActivityKey
	Item              domain.Item
	Totals            domain.BoostTotals
	Selection         domain.BoostSelection
	Gathering         domain.GatheringBuffs
	CurrentExperience float64
	TargetLevel       int
}

// Calculator turns boost totals into per-action, per-hour and goal figures
type Calculator struct {
	table *leveling.Table
}

// NewCalculator creates a rate calculator over a level table
func NewCalculator(table *leveling.Table) *Calculator {
	return &Calculator{table: table}
}

// EffectiveTimeReduction clamps a time reduction percentage to [0, 80]
func EffectiveTimeReduction(percent float64) float64 {
	return math.Max(0, math.Min(percent, MaxTimeReductionPercent))
}

// Calculate produces the full result record. Instant items and items without
// gold report zero for the figures that would divide by duration or scale gold.
func (c *Calculator) Calculate(in Input) domain.RateResult {
	item := in.Item
	totals := in.Totals
	multiplier := totals.XPMultiplier
	if multiplier == 0 {
		multiplier = 1
	}

	r := domain.RateResult{
		Activity:             in.Activity,
		ItemName:             item.Name,
		BaseXP:               item.Exp,
		BaseTime:             item.Seconds,
		BaseGold:             item.GoldValue,
		XPBoostBase:          totals.XPBoostBase,
		XPBoostWithFlag:      totals.XPBoostWithFlag,
		TimeReductionPercent: totals.TimeReductionPercent,
		GoldBoostPercent:     totals.GoldBoostPercent,
		Instant:              item.IsInstant(),
		HasGold:              item.HasGold(),
		BoostedXPBase:        item.Exp * (1 + totals.XPBoostBase/100) * multiplier,
		BoostedXP:            item.Exp * (1 + totals.XPBoostWithFlag/100) * multiplier,
		CurrentExperience:    in.CurrentExperience,
		TargetLevel:          in.TargetLevel,
	}
	if r.TargetLevel == 0 {
		r.TargetLevel = domain.DefaultTargetLevel
	}

	if !r.Instant {
		r.BoostedTime = item.Seconds * (1 - EffectiveTimeReduction(totals.TimeReductionPercent)/100)
	}
	if r.HasGold {
		r.BoostedGold = item.GoldValue * (1 + totals.GoldBoostPercent/100)
	}

	if r.BoostedTime > 0 {
		r.XPPerHour = r.BoostedXPBase / r.BoostedTime * SecondsPerHour
		r.XPPerHourWithFlag = r.BoostedXP / r.BoostedTime * SecondsPerHour
		r.GoldPerHour = r.BoostedGold / r.BoostedTime * SecondsPerHour
		r.TasksPerHour = int64(math.Floor(SecondsPerHour / r.BoostedTime))
	}

	targetXP := float64(c.table.XPRequired(r.TargetLevel))
	r.XPNeeded = math.Max(0, targetXP-in.CurrentExperience)
	if r.BoostedXP > 0 {
		r.RepetitionsNeeded = int64(math.Ceil(r.XPNeeded / r.BoostedXP))
	}
	r.TotalTime = float64(r.RepetitionsNeeded) * r.BoostedTime
	r.TotalGold = float64(r.RepetitionsNeeded) * r.BoostedGold

	r.Extras = activityExtras(in, r)
	return r
}
