package leveling

import (
	"fmt"
	"sort"

	"github.com/osse101/IdleRates_Go/internal/domain"
)

// Table is the immutable cumulative experience table.
// thresholds[i] holds the xp required to reach level i+1.
type Table struct {
	thresholds []int64
}

// Progress describes where an experience total sits within the table
type Progress struct {
	Level       int   `json:"level"`
	LevelXP     int64 `json:"level_xp"`
	NextLevel   int   `json:"next_level,omitempty"`
	NextLevelXP int64 `json:"next_level_xp,omitempty"`
	XPToNext    int64 `json:"xp_to_next"`
}

// NewTable builds a table from per-level thresholds starting at level 1.
// Thresholds must start at 0, be strictly increasing and cover at least levels 1-120.
func NewTable(thresholds []int64) (*Table, error) {
	if len(thresholds) == 0 {
		return nil, fmt.Errorf(ErrFmtEmptyTable, domain.ErrInvalidConfig)
	}
	if len(thresholds) < domain.MaxLevel {
		return nil, fmt.Errorf(ErrFmtTooFewLevels, domain.ErrInvalidConfig, domain.MaxLevel, len(thresholds))
	}
	if thresholds[0] != 0 {
		return nil, fmt.Errorf(ErrFmtFirstLevelNotZero, domain.ErrInvalidConfig, thresholds[0])
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] <= thresholds[i-1] {
			return nil, fmt.Errorf(ErrFmtNotIncreasing, domain.ErrInvalidConfig, i+1, thresholds[i], i, thresholds[i-1])
		}
	}

	copied := make([]int64, len(thresholds))
	copy(copied, thresholds)
	return &Table{thresholds: copied}, nil
}

// XPRequired returns the cumulative experience needed to reach a level.
// Unknown levels return 0; the true master tier is always TrueMasterXP.
func (t *Table) XPRequired(level int) int64 {
	if level == domain.TrueMasterLevel {
		return TrueMasterXP
	}
	if level < domain.MinLevel || level > len(t.thresholds) {
		return 0
	}
	return t.thresholds[level-1]
}

// LevelForExperience returns the greatest level in [1,120] whose threshold is <= xp.
// Experience below the level 1 threshold still yields level 1.
func (t *Table) LevelForExperience(xp float64) int {
	// first index whose threshold exceeds xp, restricted to the capped range
	idx := sort.Search(domain.MaxLevel, func(i int) bool {
		return float64(t.thresholds[i]) > xp
	})
	if idx < domain.MinLevel {
		return domain.MinLevel
	}
	return idx
}

// Progress returns the level for xp together with the distance to the next level
func (t *Table) Progress(xp float64) Progress {
	level := t.LevelForExperience(xp)
	p := Progress{
		Level:   level,
		LevelXP: t.XPRequired(level),
	}

	next := level + 1
	nextXP := t.XPRequired(next)
	if nextXP == 0 {
		return p
	}

	p.NextLevel = next
	p.NextLevelXP = nextXP
	if remaining := nextXP - int64(xp); remaining > 0 {
		p.XPToNext = remaining
	}
	return p
}

// MaxLevel returns the highest regular level
func (t *Table) MaxLevel() int {
	return domain.MaxLevel
}
