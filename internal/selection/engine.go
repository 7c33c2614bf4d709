package selection

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/IdleRates_Go/internal/catalog"
	"github.com/osse101/IdleRates_Go/internal/domain"
)

// Engine enforces the selection invariants against the bonus catalog.
// It holds no mutable state; callers own the selections.
type Engine struct {
	bonuses  *catalog.Bonuses
	validate *validator.Validate
}

// NewEngine creates a selection engine for a bonus catalog
func NewEngine(bonuses *catalog.Bonuses) *Engine {
	return &Engine{
		bonuses:  bonuses,
		validate: validator.New(),
	}
}

// Apply returns current with patch applied. On error the returned selection is
// current unchanged, so a rejected edit never leaves a partial update behind.
func (e *Engine) Apply(current domain.BoostSelection, patch Patch, activity *domain.Activity) (domain.BoostSelection, error) {
	if err := e.structErr(patch); err != nil {
		return current, err
	}

	next := patch.applyTo(current)
	if err := e.Validate(next, activity); err != nil {
		return current, err
	}
	return next, nil
}

// Validate checks a complete selection for an activity
func (e *Engine) Validate(s domain.BoostSelection, activity *domain.Activity) error {
	if activity == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidSelection, ErrMsgActivityRequired)
	}

	for _, tier := range domain.AllScrollTiers {
		count := s.Scrolls(tier)
		if count < 0 || count > domain.MaxScrollsPerTier {
			return fmt.Errorf(ErrFmtScrollCount, domain.ErrInvalidSelection, tier, count)
		}
	}
	if total := s.TotalScrolls(); total > domain.MaxScrollsTotal {
		return fmt.Errorf(ErrFmtScrollTotal, domain.ErrInvalidSelection, total, domain.MaxScrollsTotal)
	}

	if s.OutfitPieces < 0 || s.OutfitPieces > activity.MaxOutfitPieces {
		return fmt.Errorf(ErrFmtOutfitPieces, domain.ErrInvalidSelection, s.OutfitPieces, activity.Key, activity.MaxOutfitPieces)
	}

	if s.EventBoostValue < 0 || s.EventBoostValue > domain.MaxEventBoostValue {
		return fmt.Errorf(ErrFmtEventBoostValue, domain.ErrInvalidSelection, s.EventBoostValue, domain.MaxEventBoostValue)
	}

	if err := e.checkTier(catalog.CategoryTool, s.Tool); err != nil {
		return err
	}
	if err := e.checkTier(catalog.CategorySkillCape, s.SkillCape); err != nil {
		return err
	}
	return e.checkTier(catalog.CategoryConsumable, s.Consumable)
}

// ValidateGeneral checks the housing keys of the shared buffs
func (e *Engine) ValidateGeneral(g domain.GeneralBuffs) error {
	if err := e.checkTier(catalog.CategoryClanHouse, g.ClanHouse); err != nil {
		return err
	}
	return e.checkTier(catalog.CategoryPersonalHouse, g.PersonalHouse)
}

// ValidateGathering checks that every gathering buff tier is within 0-5
func (e *Engine) ValidateGathering(g domain.GatheringBuffs) error {
	return e.structErr(g)
}

func (e *Engine) checkTier(category catalog.Category, key string) error {
	if !e.bonuses.Has(category, key) {
		return fmt.Errorf(ErrFmtUnknownTier, domain.ErrInvalidSelection, category, key)
	}
	return nil
}

// structErr runs tag validation and reports the first failure as an invalid selection
func (e *Engine) structErr(s interface{}) error {
	err := e.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		return fmt.Errorf(ErrFmtFieldConstraint, domain.ErrInvalidSelection, first.Field(), first.ActualTag())
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidSelection, err)
}
