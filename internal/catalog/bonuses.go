package catalog

import (
	"fmt"
	"strconv"

	"github.com/osse101/IdleRates_Go/internal/domain"
)

// ScrollTiers holds the count tiers for each scroll grade
type ScrollTiers struct {
	T1 []domain.BonusTier `json:"t1"`
	T2 []domain.BonusTier `json:"t2"`
	T3 []domain.BonusTier `json:"t3"`
}

// BonusConfig represents the JSON bonus catalog
type BonusConfig struct {
	Version        string             `json:"version"`
	Description    string             `json:"description"`
	Tools          []domain.BonusTier `json:"tools"`
	ClanHouses     []domain.BonusTier `json:"clan_houses"`
	PersonalHouses []domain.BonusTier `json:"personal_houses"`
	Scrolls        ScrollTiers        `json:"scrolls"`
	SkillCapes     []domain.BonusTier `json:"skill_capes"`
	OutfitPieces   []domain.BonusTier `json:"outfit_pieces"`
	Consumables    []domain.BonusTier `json:"consumables"`
}

// Bonuses is the immutable, indexed bonus catalog
type Bonuses struct {
	ordered map[Category][]domain.BonusTier
	byKey   map[Category]map[string]domain.BonusTier
}

// NewBonuses validates a bonus config and indexes it by category and key
func NewBonuses(config *BonusConfig) (*Bonuses, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: bonus config is nil", domain.ErrInvalidConfig)
	}

	b := &Bonuses{
		ordered: map[Category][]domain.BonusTier{
			CategoryTool:          config.Tools,
			CategoryClanHouse:     config.ClanHouses,
			CategoryPersonalHouse: config.PersonalHouses,
			CategorySkillCape:     config.SkillCapes,
			CategoryOutfit:        config.OutfitPieces,
			CategoryConsumable:    config.Consumables,
			CategoryScrollT1:      config.Scrolls.T1,
			CategoryScrollT2:      config.Scrolls.T2,
			CategoryScrollT3:      config.Scrolls.T3,
		},
		byKey: make(map[Category]map[string]domain.BonusTier),
	}

	for category, tiers := range b.ordered {
		index := make(map[string]domain.BonusTier, len(tiers))
		for _, tier := range tiers {
			if _, exists := index[tier.Key]; exists {
				return nil, fmt.Errorf(ErrFmtDuplicateTier, domain.ErrInvalidConfig, tier.Key, category)
			}
			if category.isCounted() {
				if _, err := strconv.Atoi(tier.Key); err != nil {
					return nil, fmt.Errorf(ErrFmtCountKeyNotNumeric, domain.ErrInvalidConfig, category, tier.Key)
				}
			}
			index[tier.Key] = tier
		}

		if _, ok := index[category.defaultKey()]; !ok {
			return nil, fmt.Errorf(ErrFmtMissingDefaultTier, domain.ErrInvalidConfig, category, category.defaultKey())
		}
		b.byKey[category] = index
	}

	return b, nil
}

// isCounted reports whether the category is keyed by a piece count instead of a tier name
func (c Category) isCounted() bool {
	switch c {
	case CategoryOutfit, CategoryScrollT1, CategoryScrollT2, CategoryScrollT3:
		return true
	}
	return false
}

func (c Category) defaultKey() string {
	if c.isCounted() {
		return "0"
	}
	return domain.TierKeyNone
}

// ScrollCategory maps a scroll grade to its bonus category
func ScrollCategory(tier domain.ScrollTier) (Category, error) {
	switch tier {
	case domain.ScrollTierT1:
		return CategoryScrollT1, nil
	case domain.ScrollTierT2:
		return CategoryScrollT2, nil
	case domain.ScrollTierT3:
		return CategoryScrollT3, nil
	}
	return "", fmt.Errorf(ErrFmtScrollTierNotFound, domain.ErrTierNotFound, tier)
}

// Tier looks up a tier by category and key
func (b *Bonuses) Tier(category Category, key string) (domain.BonusTier, error) {
	index, ok := b.byKey[category]
	if !ok {
		return domain.BonusTier{}, fmt.Errorf(ErrFmtUnknownCategory, domain.ErrTierNotFound, category)
	}
	tier, ok := index[key]
	if !ok {
		return domain.BonusTier{}, fmt.Errorf(ErrFmtUnknownTier, domain.ErrTierNotFound, category, key)
	}
	return tier, nil
}

// Has reports whether key is a known tier in category
func (b *Bonuses) Has(category Category, key string) bool {
	_, err := b.Tier(category, key)
	return err == nil
}

// Tiers lists a category's tiers in catalog order
func (b *Bonuses) Tiers(category Category) []domain.BonusTier {
	tiers := b.ordered[category]
	out := make([]domain.BonusTier, len(tiers))
	copy(out, tiers)
	return out
}

// Boost returns the percentage for a tier, 0 when the key is unknown
func (b *Bonuses) Boost(category Category, key string) float64 {
	tier, err := b.Tier(category, key)
	if err != nil {
		return 0
	}
	return tier.Boost
}

// CountBoost returns the percentage for a counted category (outfit, scrolls)
func (b *Bonuses) CountBoost(category Category, count int) float64 {
	return b.Boost(category, strconv.Itoa(count))
}

// ScrollBoost returns the percentage contributed by count scrolls of a grade
func (b *Bonuses) ScrollBoost(tier domain.ScrollTier, count int) float64 {
	category, err := ScrollCategory(tier)
	if err != nil {
		return 0
	}
	return b.CountBoost(category, count)
}

// MaxCount returns the highest count defined for a counted category
func (b *Bonuses) MaxCount(category Category) int {
	highest := 0
	for key := range b.byKey[category] {
		if n, err := strconv.Atoi(key); err == nil && n > highest {
			highest = n
		}
	}
	return highest
}
