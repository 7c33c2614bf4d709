package inference

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleRates_Go/internal/domain"
	"github.com/osse101/IdleRates_Go/internal/leveling"
)

func newEngine(t *testing.T) (*Engine, *leveling.Table) {
	t.Helper()
	table, err := leveling.LoadDefault(context.Background())
	require.NoError(t, err)
	return NewEngine(table), table
}

func TestInfer_CraftingLevel95(t *testing.T) {
	e, table := newEngine(t)

	profile := &domain.PlayerProfile{
		Username: "alice",
		SkillExperiences: map[string]float64{
			"crafting": float64(table.XPRequired(95)),
		},
	}

	state, err := e.Infer(context.Background(), profile)
	require.NoError(t, err)

	crafting := state.Selections[domain.ActivityCrafting]
	assert.Equal(t, 95, state.Levels[domain.ActivityCrafting])
	assert.Equal(t, "t5", crafting.Tool)
	assert.Equal(t, 4, crafting.T3Scrolls)
	assert.Equal(t, 4, crafting.TotalScrolls())

	mining := state.Selections[domain.ActivityMining]
	assert.Equal(t, 1, state.Levels[domain.ActivityMining])
	assert.Equal(t, domain.DefaultBoostSelection(), mining)
	assert.Zero(t, state.Experience[domain.ActivityMining])
	assert.Len(t, state.Selections, len(domain.AllActivities))
}

func TestSelectionForLevel(t *testing.T) {
	tests := []struct {
		level   int
		tool    string
		scrolls int
	}{
		{1, "none", 0},
		{89, "none", 0},
		{90, "t5", 4},
		{99, "t5", 4},
		{100, "t6", 4},
		{120, "t6", 4},
	}

	for _, tt := range tests {
		s := SelectionForLevel(tt.level)
		assert.Equal(t, tt.tool, s.Tool, "level %d", tt.level)
		assert.Equal(t, tt.scrolls, s.T3Scrolls, "level %d", tt.level)
		assert.Zero(t, s.T1Scrolls+s.T2Scrolls)
	}
}

func TestInfer_Gatherers(t *testing.T) {
	e, _ := newEngine(t)

	tests := []struct {
		name       string
		clanName   string
		serialized string
		upgrades   domain.Upgrades
		want       bool
		malformed  bool
	}{
		{"json string with id", "Guild", `"[21,31,16,23]"`, nil, true, false},
		{"plain array with id", "Guild", `[21,23]`, nil, true, false},
		{"array without id", "Guild", `[21,31]`, nil, false, false},
		{"legacy comma string", "Guild", `"21, 23,abc"`, nil, true, false},
		{"legacy bracketed string with junk", "Guild", `"[21, 23x"`, nil, true, false},
		{"legacy key only", "Guild", ``, domain.Upgrades{"23": 1}, true, false},
		{"legacy key alongside list without id", "Guild", `[1,2]`, domain.Upgrades{"23": 2}, true, false},
		{"not in a clan", "", `[23]`, domain.Upgrades{"23": 1}, false, false},
		{"malformed object", "Guild", `{"ids":[23]}`, nil, false, true},
		{"json string holding a number", "Guild", `"23"`, nil, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &domain.PlayerProfile{
				Username: "bob",
				ClanName: tt.clanName,
				Upgrades: tt.upgrades,
			}
			if tt.serialized != "" {
				profile.Clan = &domain.ClanRecord{
					ClanName:           tt.clanName,
					SerializedUpgrades: json.RawMessage(tt.serialized),
				}
			}

			state, err := e.Infer(context.Background(), profile)
			require.NoError(t, err)
			assert.Equal(t, tt.want, state.Upgrades.Gatherers)
			assert.Equal(t, tt.malformed, state.MalformedUpgrades)
		})
	}
}

func TestGeneralBuffs(t *testing.T) {
	tests := []struct {
		name     string
		upgrades domain.Upgrades
		clan     string
		personal string
	}{
		{"nothing", nil, "none", "none"},
		{"valued member any level", domain.Upgrades{"valuedClanMember": 1}, "t6", "none"},
		{"housing first", domain.Upgrades{"housing": 2, "personalHousing": 4}, "none", "t2"},
		{"fallback to personalHousing", domain.Upgrades{"housing": 0, "personalHousing": 3}, "none", "t3"},
		{"fallback to keepItSpacious", domain.Upgrades{"keepItSpacious": 4}, "none", "t4"},
		{"capped at five", domain.Upgrades{"housing": 9}, "none", "t5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := GeneralBuffs(tt.upgrades)
			assert.Equal(t, tt.clan, g.ClanHouse)
			assert.Equal(t, tt.personal, g.PersonalHouse)
		})
	}
}

func TestGatheringAndUpgradeBuffs(t *testing.T) {
	u := domain.Upgrades{
		"theFisherman":           3,
		"powerForager":           2,
		"theLumberjack":          5,
		"mostEfficientFisherman": 4,
		"farmingTrickery":        1,
		"smeltingMagic":          2,
		"plankBargain":           1,
		"arrowCrafter":           1,
		"betterFisherman":        2,
		"lastNegotiation":        0,
	}

	g := GatheringBuffs(u)
	assert.Equal(t, domain.GatheringBuffs{
		TheFisherman:       3,
		PowerForager:       2,
		TheLumberjack:      5,
		EfficientFisherman: 4,
		FarmingTrickery:    1,
		SmeltingMagic:      2,
		PlankBargain:       1,
	}, g)

	b := UpgradeBuffs(u)
	assert.True(t, b.ArrowCrafter)
	assert.True(t, b.BetterFisherman)
	assert.False(t, b.LastNegotiation)
	assert.False(t, b.Gatherers)
}

func TestGatheringBuffs_ClampsTiers(t *testing.T) {
	g := GatheringBuffs(domain.Upgrades{
		"theFisherman":    6,
		"theLumberjack":   40,
		"smeltingMagic":   -2,
		"farmingTrickery": 5,
	})

	assert.Equal(t, domain.MaxGatheringTier, g.TheFisherman)
	assert.Equal(t, domain.MaxGatheringTier, g.TheLumberjack)
	assert.Zero(t, g.SmeltingMagic)
	assert.Equal(t, 5, g.FarmingTrickery)
}

func TestInfer_IsFreshEachTime(t *testing.T) {
	e, table := newEngine(t)

	rich := &domain.PlayerProfile{
		Username:         "rich",
		ClanName:         "Guild",
		SkillExperiences: map[string]float64{"mining": float64(table.XPRequired(110))},
		Upgrades:         domain.Upgrades{"valuedClanMember": 1, "housing": 5, "23": 1},
	}
	poor := &domain.PlayerProfile{Username: "poor"}

	_, err := e.Infer(context.Background(), rich)
	require.NoError(t, err)
	state, err := e.Infer(context.Background(), poor)
	require.NoError(t, err)

	assert.Equal(t, "poor", state.Username)
	assert.Equal(t, domain.DefaultGeneralBuffs(), state.General)
	assert.False(t, state.Upgrades.Gatherers)
	assert.Equal(t, domain.DefaultBoostSelection(), state.Selections[domain.ActivityMining])
}

func TestInfer_NilProfile(t *testing.T) {
	e, _ := newEngine(t)

	_, err := e.Infer(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseSerializedUpgrades(t *testing.T) {
	ids, err := ParseSerializedUpgrades(json.RawMessage(`" [ 1 , 2 ,3 ] "`))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids)

	ids, err = ParseSerializedUpgrades(json.RawMessage(`null`))
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = ParseSerializedUpgrades(json.RawMessage(`"a,b"`))
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = ParseSerializedUpgrades(json.RawMessage(`42`))
	assert.ErrorIs(t, err, domain.ErrMalformedProfile)
}
