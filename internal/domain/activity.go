package domain

// ActivityKey identifies a trainable non-combat activity
type ActivityKey string

// Activity is one trainable pursuit with its selectable items
type Activity struct {
	Key             ActivityKey `json:"key"`
	Name            string      `json:"name"`
	MaxOutfitPieces int         `json:"max_outfit_pieces"`
	Items           []Item      `json:"items"`
}

// FindItem returns the item with the exact given name
func (a *Activity) FindItem(name string) (Item, bool) {
	for _, item := range a.Items {
		if item.Name == name {
			return item, true
		}
	}
	return Item{}, false
}

// IsGathering reports whether the activity benefits from the clan Gatherers upgrade
func (k ActivityKey) IsGathering() bool {
	switch k {
	case ActivityFishing, ActivityMining, ActivityForaging, ActivityWoodcutting:
		return true
	}
	return false
}

// IsValid reports whether the key names one of the known activities
func (k ActivityKey) IsValid() bool {
	for _, a := range AllActivities {
		if a == k {
			return true
		}
	}
	return false
}
