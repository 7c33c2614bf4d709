package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleRates_Go/internal/calculator"
	"github.com/osse101/IdleRates_Go/internal/catalog"
	"github.com/osse101/IdleRates_Go/internal/domain"
	"github.com/osse101/IdleRates_Go/internal/leveling"
	"github.com/osse101/IdleRates_Go/internal/profile"
	"github.com/osse101/IdleRates_Go/internal/selection"
)

func newTestStore(t *testing.T, source profile.Source) *Store {
	t.Helper()
	ctx := context.Background()

	table, err := leveling.LoadDefault(ctx)
	require.NoError(t, err)
	cat, err := catalog.LoadDefault(ctx)
	require.NoError(t, err)

	return NewStore(calculator.NewService(table, cat, source), 16, time.Minute)
}

func intPtr(v int) *int { return &v }

func TestStore_CreateDefaults(t *testing.T) {
	store := newTestStore(t, nil)

	state := store.Create(context.Background())
	require.NotEmpty(t, state.ID)

	assert.Equal(t, domain.ActivityCrafting, state.Activity)
	assert.Equal(t, domain.DefaultTargetLevel, state.TargetLevel)
	assert.Equal(t, domain.DefaultGeneralBuffs(), state.General)
	require.Len(t, state.Selections, len(domain.AllActivities))
	for _, activity := range domain.AllActivities {
		assert.Equal(t, domain.DefaultBoostSelection(), state.Selections[activity], activity)
	}
	assert.Equal(t, 1, store.Len())
}

func TestStore_GetUnknown(t *testing.T) {
	store := newTestStore(t, nil)

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = store.PatchBoosts(context.Background(), "missing", domain.ActivityMining, selection.Patch{})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := newTestStore(t, nil)
	state := store.Create(context.Background())

	state.Selections[domain.ActivityMining] = domain.BoostSelection{T3Scrolls: 4}

	fresh, err := store.Get(state.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBoostSelection(), fresh.Selections[domain.ActivityMining])
}

func TestStore_PatchBoosts(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, nil)
	id := store.Create(ctx).ID

	state, err := store.PatchBoosts(ctx, id, domain.ActivityMining, selection.Patch{T3Scrolls: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, state.Selections[domain.ActivityMining].T3Scrolls)
	assert.Equal(t, 0, state.Selections[domain.ActivityFishing].T3Scrolls)

	// A fifth scroll is rejected and the prior selection stays
	_, err = store.PatchBoosts(ctx, id, domain.ActivityMining, selection.Patch{T1Scrolls: intPtr(2)})
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)

	state, err = store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 3, state.Selections[domain.ActivityMining].T3Scrolls)
	assert.Equal(t, 0, state.Selections[domain.ActivityMining].T1Scrolls)
}

func TestStore_SetBuffs(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, nil)
	id := store.Create(ctx).ID

	state, err := store.SetGeneral(id, domain.GeneralBuffs{ClanHouse: "t6", PersonalHouse: "t5", OfferTheyCanRefuse: true})
	require.NoError(t, err)
	assert.Equal(t, "t6", state.General.ClanHouse)

	_, err = store.SetGeneral(id, domain.GeneralBuffs{ClanHouse: "mansion", PersonalHouse: "none"})
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)

	state, err = store.SetGathering(id, domain.GatheringBuffs{TheLumberjack: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, state.Gathering.TheLumberjack)

	_, err = store.SetGathering(id, domain.GatheringBuffs{TheLumberjack: 9})
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)

	state, err = store.SetUpgrades(id, domain.UpgradeBuffs{Gatherers: true})
	require.NoError(t, err)
	assert.True(t, state.Upgrades.Gatherers)

	state, err = store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "t6", state.General.ClanHouse)
	assert.Equal(t, 5, state.Gathering.TheLumberjack)
}

func TestStore_SetTarget(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, nil)
	id := store.Create(ctx).ID

	mining := domain.ActivityMining
	item := "Iron Ore"
	xp := 1000.0
	state, err := store.SetTarget(ctx, id, Target{Activity: &mining, Item: &item, CurrentExperience: &xp, TargetLevel: intPtr(50)})
	require.NoError(t, err)
	assert.Equal(t, mining, state.Activity)
	assert.Equal(t, item, state.Item)
	assert.Equal(t, xp, state.CurrentExperience)
	assert.Equal(t, 50, state.TargetLevel)

	// Switching activity clears the item
	fishing := domain.ActivityFishing
	state, err = store.SetTarget(ctx, id, Target{Activity: &fishing})
	require.NoError(t, err)
	assert.Empty(t, state.Item)

	unknown := domain.ActivityKey("combat")
	_, err = store.SetTarget(ctx, id, Target{Activity: &unknown})
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)

	_, err = store.SetTarget(ctx, id, Target{TargetLevel: intPtr(200)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	negative := -1.0
	_, err = store.SetTarget(ctx, id, Target{CurrentExperience: &negative})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	state, err = store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, fishing, state.Activity)
	assert.Equal(t, 50, state.TargetLevel)
}

func TestStore_LoadPlayer(t *testing.T) {
	ctx := context.Background()
	src := new(profile.MockSource)
	src.On("FetchPlayer", mock.Anything, "Alice").Return(&domain.PlayerProfile{
		Username:         "Alice",
		ClanName:         "Warriors",
		SkillExperiences: map[string]float64{"mining": 5000, "fishing": 83},
		Upgrades:         domain.Upgrades{"housing": 2},
	}, nil).Once()
	src.On("FetchPlayer", mock.Anything, "Ghost").Return(nil, domain.ErrPlayerNotFound).Once()

	store := newTestStore(t, src)
	id := store.Create(ctx).ID

	// Edits made before loading are replaced wholesale
	_, err := store.PatchBoosts(ctx, id, domain.ActivityMining, selection.Patch{T1Scrolls: intPtr(4)})
	require.NoError(t, err)
	mining := domain.ActivityMining
	_, err = store.SetTarget(ctx, id, Target{Activity: &mining})
	require.NoError(t, err)

	state, err := store.LoadPlayer(ctx, id, "Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", state.PlayerName)
	assert.Equal(t, "Warriors", state.ClanName)
	assert.Equal(t, 0, state.Selections[domain.ActivityMining].T1Scrolls)
	assert.Equal(t, 5000.0, state.CurrentExperience)

	// Switching activity picks up the player's experience
	fishing := domain.ActivityFishing
	state, err = store.SetTarget(ctx, id, Target{Activity: &fishing})
	require.NoError(t, err)
	assert.Equal(t, 83.0, state.CurrentExperience)

	_, err = store.LoadPlayer(ctx, id, "Ghost")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	state, err = store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Alice", state.PlayerName)

	_, err = store.LoadPlayer(ctx, "missing", "Alice")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	src.AssertExpectations(t)
}

func TestStore_LoadPlayer_OversizedTiersStillCalculate(t *testing.T) {
	ctx := context.Background()
	src := new(profile.MockSource)
	src.On("FetchPlayer", mock.Anything, "Angler").Return(&domain.PlayerProfile{
		Username:         "Angler",
		SkillExperiences: map[string]float64{"fishing": 1000},
		Upgrades:         domain.Upgrades{"theFisherman": 6},
	}, nil).Once()

	store := newTestStore(t, src)
	id := store.Create(ctx).ID

	fishing := domain.ActivityFishing
	item := "Raw Shrimp"
	_, err := store.SetTarget(ctx, id, Target{Activity: &fishing, Item: &item})
	require.NoError(t, err)

	state, err := store.LoadPlayer(ctx, id, "Angler")
	require.NoError(t, err)
	assert.Equal(t, domain.MaxGatheringTier, state.Gathering.TheFisherman)

	_, err = store.Result(ctx, id)
	require.NoError(t, err)
	src.AssertExpectations(t)
}

func TestStore_Reset(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, nil)
	id := store.Create(ctx).ID

	_, err := store.SetGathering(id, domain.GatheringBuffs{PlankBargain: 3})
	require.NoError(t, err)

	state, err := store.Reset(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, state.ID)
	assert.Equal(t, domain.GatheringBuffs{}, state.Gathering)
	assert.Equal(t, domain.ActivityCrafting, state.Activity)
}

func TestStore_Result(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, nil)
	id := store.Create(ctx).ID

	_, err := store.Result(ctx, id)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	mining := domain.ActivityMining
	item := "Iron Ore"
	_, err = store.SetTarget(ctx, id, Target{Activity: &mining, Item: &item})
	require.NoError(t, err)
	_, err = store.PatchBoosts(ctx, id, domain.ActivityMining, selection.Patch{Tool: strPtr("t5")})
	require.NoError(t, err)

	result, err := store.Result(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Iron Ore", result.ItemName)
	assert.Equal(t, 15.0, result.TimeReductionPercent)
}

func TestStore_ConcurrentPatches(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, nil)
	id := store.Create(ctx).ID

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = store.PatchBoosts(ctx, id, domain.ActivityMining, selection.Patch{T1Scrolls: intPtr(n % 5)})
			_, _ = store.PatchBoosts(ctx, id, domain.ActivityMining, selection.Patch{T3Scrolls: intPtr(n % 5)})
		}(i)
	}
	wg.Wait()

	state, err := store.Get(id)
	require.NoError(t, err)
	assert.LessOrEqual(t, state.Selections[domain.ActivityMining].TotalScrolls(), domain.MaxScrollsTotal)
}

func TestStore_Expiry(t *testing.T) {
	ctx := context.Background()
	table, err := leveling.LoadDefault(ctx)
	require.NoError(t, err)
	cat, err := catalog.LoadDefault(ctx)
	require.NoError(t, err)

	store := NewStore(calculator.NewService(table, cat, nil), 4, 20*time.Millisecond)
	id := store.Create(ctx).ID

	time.Sleep(60 * time.Millisecond)
	_, err = store.Get(id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func strPtr(v string) *string { return &v }
