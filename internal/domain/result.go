package domain

// RateResult is the full output record for one item
type RateResult struct {
	Activity ActivityKey `json:"activity"`
	ItemName string      `json:"item_name"`

	BaseXP   float64 `json:"base_xp"`
	BaseTime float64 `json:"base_time"`
	BaseGold float64 `json:"base_gold"`

	XPBoostBase          float64 `json:"xp_boost_base"`
	XPBoostWithFlag      float64 `json:"xp_boost_with_flag"`
	TimeReductionPercent float64 `json:"time_reduction_percent"`
	GoldBoostPercent     float64 `json:"gold_boost_percent"`

	// Instant items report no duration or throughput; HasGold=false means gold fields are N/A
	Instant bool `json:"instant"`
	HasGold bool `json:"has_gold"`

	BoostedXPBase float64 `json:"boosted_xp_base"`
	BoostedXP     float64 `json:"boosted_xp"`
	BoostedTime   float64 `json:"boosted_time"`
	BoostedGold   float64 `json:"boosted_gold"`

	XPPerHour         float64 `json:"xp_per_hour"`
	XPPerHourWithFlag float64 `json:"xp_per_hour_with_flag"`
	GoldPerHour       float64 `json:"gold_per_hour"`
	TasksPerHour      int64   `json:"tasks_per_hour"`

	CurrentExperience float64 `json:"current_experience"`
	TargetLevel       int     `json:"target_level"`
	XPNeeded          float64 `json:"xp_needed"`
	RepetitionsNeeded int64   `json:"repetitions_needed"`
	TotalTime         float64 `json:"total_time"`
	TotalGold         float64 `json:"total_gold"`

	Extras ActivityExtras `json:"activity_extras"`
}

// ActivityExtras holds the derived quantities that only exist for one activity
type ActivityExtras struct {
	Woodcutting *WoodcuttingExtras `json:"woodcutting,omitempty"`
	Fishing     *FishingExtras     `json:"fishing,omitempty"`
	Foraging    *ForagingExtras    `json:"foraging,omitempty"`
	Smithing    *SmithingExtras    `json:"smithing,omitempty"`
}

// WoodcuttingExtras reports bonus logs from The Lumberjack
type WoodcuttingExtras struct {
	TotalLogs    int64 `json:"total_logs"`
	LogsPerHour  int64 `json:"logs_per_hour"`
	BonusPercent int   `json:"bonus_percent"`
}

// FishingExtras reports fish and cooking byproducts
type FishingExtras struct {
	FishPerHour           int64   `json:"fish_per_hour"`
	CookingActionsPerHour float64 `json:"cooking_actions_per_hour"`
	CookingXPPerHour      int64   `json:"cooking_xp_per_hour"`
	CookedFishPerHour     int64   `json:"cooked_fish_per_hour"`
}

// ForagingExtras reports loot-doubled tasks from Power Forager
type ForagingExtras struct {
	TasksPerHour int64   `json:"tasks_per_hour"`
	DoubleChance float64 `json:"double_chance"`
}

// SmithingExtras reports materials saved by Smelting Magic or a Forgery Potion
type SmithingExtras struct {
	IsBar            bool  `json:"is_bar"`
	OresSavedPerHour int64 `json:"ores_saved_per_hour"`
	BarsSavedPerHour int64 `json:"bars_saved_per_hour"`
}
