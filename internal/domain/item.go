package domain

import "strings"

// Item is one selectable recipe or action within an activity.
// Seconds == 0 means the action completes instantly.
type Item struct {
	Name       string  `json:"name"`
	Level      int     `json:"level"`
	Exp        float64 `json:"exp"`
	Seconds    float64 `json:"seconds"`
	GoldValue  float64 `json:"gold_value"`
	Category   string  `json:"category,omitempty"`
	CookingExp float64 `json:"cooking_exp,omitempty"` // Byproduct XP for fishing catches
}

// IsRefinement reports whether the item belongs to the crafting refinement category
func (i Item) IsRefinement() bool {
	return i.Category == CategoryRefinement
}

// IsInstant reports whether duration based rates are undefined for the item
func (i Item) IsInstant() bool {
	return i.IsRefinement() || i.Seconds <= 0
}

// HasGold reports whether the item yields a gold value
func (i Item) HasGold() bool {
	return !i.IsRefinement() && i.GoldValue > 0
}

// IsBar reports whether the item produces bars (smithing ore saving applies)
func (i Item) IsBar() bool {
	return strings.Contains(strings.ToLower(i.Name), ItemNameBarFragment)
}
