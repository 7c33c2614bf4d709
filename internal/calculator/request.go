package calculator

import "github.com/osse101/IdleRates_Go/internal/domain"

// Request is one stateless rate calculation.
// Nil selection or general buffs fall back to the defaults.
type Request struct {
	Activity          domain.ActivityKey     `json:"activity" validate:"required,activity"`
	Item              string                 `json:"item" validate:"required,max=100"`
	Selection         *domain.BoostSelection `json:"selection,omitempty"`
	General           *domain.GeneralBuffs   `json:"general,omitempty"`
	Gathering         domain.GatheringBuffs  `json:"gathering"`
	Upgrades          domain.UpgradeBuffs    `json:"upgrades"`
	CurrentExperience float64                `json:"current_experience" validate:"min=0"`
	TargetLevel       int                    `json:"target_level,omitempty" validate:"omitempty,min=1,max=121"`
}

// LevelInfo is the cumulative experience needed for one level
type LevelInfo struct {
	Level      int   `json:"level"`
	XPRequired int64 `json:"xp_required"`
}
