package catalog

import (
	"fmt"

	"github.com/osse101/IdleRates_Go/internal/domain"
)

// Activities is the immutable activity and item catalog
type Activities struct {
	byKey map[domain.ActivityKey]*domain.Activity
}

// NewActivities indexes activity definitions, requiring every known activity exactly once
func NewActivities(defs []domain.Activity, maxOutfit int) (*Activities, error) {
	a := &Activities{byKey: make(map[domain.ActivityKey]*domain.Activity, len(defs))}

	for i := range defs {
		def := defs[i]
		if !def.Key.IsValid() {
			return nil, fmt.Errorf(ErrFmtUnknownActivity, domain.ErrInvalidConfig, def.Key)
		}
		if _, exists := a.byKey[def.Key]; exists {
			return nil, fmt.Errorf(ErrFmtDuplicateActivity, domain.ErrInvalidConfig, def.Key)
		}
		if def.MaxOutfitPieces > maxOutfit {
			return nil, fmt.Errorf(ErrFmtOutfitAboveCatalog, domain.ErrInvalidConfig, def.Key, def.MaxOutfitPieces, maxOutfit)
		}

		names := make(map[string]bool, len(def.Items))
		for _, item := range def.Items {
			if names[item.Name] {
				return nil, fmt.Errorf(ErrFmtDuplicateItem, domain.ErrInvalidConfig, item.Name, def.Key)
			}
			names[item.Name] = true
		}

		a.byKey[def.Key] = &def
	}

	for _, key := range domain.AllActivities {
		if _, ok := a.byKey[key]; !ok {
			return nil, fmt.Errorf(ErrFmtMissingActivity, domain.ErrInvalidConfig, key)
		}
	}

	return a, nil
}

// Get returns the activity for key
func (a *Activities) Get(key domain.ActivityKey) (*domain.Activity, error) {
	activity, ok := a.byKey[key]
	if !ok {
		return nil, fmt.Errorf(ErrFmtActivityNotFound, domain.ErrActivityNotFound, key)
	}
	return activity, nil
}

// All returns every activity in display order
func (a *Activities) All() []*domain.Activity {
	out := make([]*domain.Activity, 0, len(domain.AllActivities))
	for _, key := range domain.AllActivities {
		if activity, ok := a.byKey[key]; ok {
			out = append(out, activity)
		}
	}
	return out
}
