package inference

import (
	"context"
	"fmt"

	"github.com/osse101/IdleRates_Go/internal/domain"
	"github.com/osse101/IdleRates_Go/internal/leveling"
	"github.com/osse101/IdleRates_Go/internal/logger"
)

// Engine derives a full calculator state from a player record (no I/O)
type Engine struct {
	table *leveling.Table
}

// NewEngine creates an inference engine over a level table
func NewEngine(table *leveling.Table) *Engine {
	return &Engine{table: table}
}

// Infer builds a fresh state from profile. Nothing from any earlier state is
// merged in; unparseable clan upgrades are logged and treated as absent.
func (e *Engine) Infer(ctx context.Context, profile *domain.PlayerProfile) (*domain.InferredState, error) {
	if profile == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNilProfile)
	}
	log := logger.FromContext(ctx)

	state := &domain.InferredState{
		Username:   profile.Username,
		ClanName:   profile.ClanName,
		Experience: make(map[domain.ActivityKey]float64, len(domain.AllActivities)),
		Levels:     make(map[domain.ActivityKey]int, len(domain.AllActivities)),
		Selections: make(map[domain.ActivityKey]domain.BoostSelection, len(domain.AllActivities)),
	}

	for _, activity := range domain.AllActivities {
		xp := profile.Experience(activity)
		level := e.table.LevelForExperience(xp)

		state.Experience[activity] = xp
		state.Levels[activity] = level
		state.Selections[activity] = SelectionForLevel(level)
	}

	upgrades := profile.Upgrades
	state.General = GeneralBuffs(upgrades)
	state.Gathering = GatheringBuffs(upgrades)
	state.Upgrades = UpgradeBuffs(upgrades)

	gatherers, err := HasGatherers(profile)
	if err != nil {
		log.Warn(LogMsgMalformedClanUpgrades, "username", profile.Username, "error", err)
		state.MalformedUpgrades = true
	}
	state.Upgrades.Gatherers = gatherers

	log.Debug(LogMsgProfileInferred,
		"username", profile.Username,
		"clan", profile.ClanName,
		"gatherers", gatherers)

	return state, nil
}

// SelectionForLevel seeds the tool and T3 scrolls from an activity level
func SelectionForLevel(level int) domain.BoostSelection {
	s := domain.DefaultBoostSelection()
	switch {
	case level >= LevelForT6Tool:
		s.Tool = InferredHighTool
	case level >= LevelForT5Tool:
		s.Tool = InferredMidTool
	}
	if level >= LevelForT5Tool {
		s.T3Scrolls = InferredT3Scrolls
	}
	return s
}

// GeneralBuffs maps housing upgrades. The clan house is binary: any
// valuedClanMember level means the top clan house.
func GeneralBuffs(u domain.Upgrades) domain.GeneralBuffs {
	g := domain.DefaultGeneralBuffs()
	if u.Has(UpgradeValuedClanMember) {
		g.ClanHouse = InferredClanHouse
	}
	if tier := PersonalHousingTier(u); tier > 0 {
		g.PersonalHouse = fmt.Sprintf(PersonalHouseKeyFmt, tier)
	}
	return g
}

// PersonalHousingTier returns the first positive housing counter, capped at 5
func PersonalHousingTier(u domain.Upgrades) int {
	for _, key := range housingUpgradeKeys {
		if tier := u.Counter(key); tier > 0 {
			return min(tier, MaxPersonalHouseTier)
		}
	}
	return 0
}

// GatheringBuffs copies the tiered gathering counters, clamped to 0-5. Power
// Farm Hand has no counter in player records and stays 0.
func GatheringBuffs(u domain.Upgrades) domain.GatheringBuffs {
	return domain.GatheringBuffs{
		TheFisherman:       gatheringTier(u, UpgradeTheFisherman),
		PowerForager:       gatheringTier(u, UpgradePowerForager),
		TheLumberjack:      gatheringTier(u, UpgradeTheLumberjack),
		EfficientFisherman: gatheringTier(u, UpgradeMostEfficientFisherman),
		FarmingTrickery:    gatheringTier(u, UpgradeFarmingTrickery),
		SmeltingMagic:      gatheringTier(u, UpgradeSmeltingMagic),
		PlankBargain:       gatheringTier(u, UpgradePlankBargain),
	}
}

func gatheringTier(u domain.Upgrades, key string) int {
	return max(0, min(u.Counter(key), domain.MaxGatheringTier))
}

// UpgradeBuffs maps positive counters to enabled upgrades. Gatherers is set separately.
func UpgradeBuffs(u domain.Upgrades) domain.UpgradeBuffs {
	return domain.UpgradeBuffs{
		ArrowCrafter:           u.Has(UpgradeArrowCrafter),
		ResponsibleDrinking:    u.Has(UpgradeResponsibleDrinking),
		DelicateManufacturing:  u.Has(UpgradeDelicateManufacturing),
		LastNegotiation:        u.Has(UpgradeLastNegotiation),
		PrestigiousWoodworking: u.Has(UpgradePrestigiousWoodworking),
		BetterFisherman:        u.Has(UpgradeBetterFisherman),
		BetterLumberjack:       u.Has(UpgradeBetterLumberjack),
	}
}

// HasGatherers reports whether the player's clan owns the Gatherers upgrade.
// Requires clan membership, then either the serialized clan list contains the
// id or the legacy personal key is positive. A parse error is returned with
// the legacy result so the caller can log it.
func HasGatherers(profile *domain.PlayerProfile) (bool, error) {
	if !profile.InClan() {
		return false, nil
	}

	legacy := profile.Upgrades.Has(LegacyGatherersKey)
	if profile.Clan == nil {
		return legacy, nil
	}

	ids, err := ParseSerializedUpgrades(profile.Clan.SerializedUpgrades)
	if err != nil {
		return legacy, err
	}
	return legacy || containsID(ids, ClanUpgradeGatherers), nil
}
