package naming

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleRates_Go/internal/catalog"
	"github.com/osse101/IdleRates_Go/internal/domain"
)

func newTestResolver() Resolver {
	return NewResolver([]*domain.Activity{
		{
			Key: domain.ActivitySmithing,
			Items: []domain.Item{
				{Name: "Bronze Bar"},
				{Name: "Iron Bar"},
				{Name: "Bronze Platebody"},
				{Name: "Bronze Platelegs"},
			},
		},
		{
			Key:   domain.ActivityMining,
			Items: []domain.Item{{Name: "Copper Ore"}},
		},
	})
}

func TestResolve(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name     string
		activity domain.ActivityKey
		query    string
		wantName string
		wantOk   bool
	}{
		{"exact", domain.ActivitySmithing, "Iron Bar", "Iron Bar", true},
		{"case insensitive", domain.ActivitySmithing, "bronze BAR", "Bronze Bar", true},
		{"extra whitespace", domain.ActivitySmithing, "  Bronze   Bar ", "Bronze Bar", true},
		{"wrong activity", domain.ActivityMining, "Iron Bar", "", false},
		{"unknown item", domain.ActivitySmithing, "Mithril Bar", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.activity, tt.query)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantName, got)
		})
	}
}

func TestSuggest(t *testing.T) {
	r := newTestResolver()

	assert.Equal(t, []string{"Bronze Bar", "Bronze Platebody", "Bronze Platelegs"}, r.Suggest(domain.ActivitySmithing, "bronze", 5))
	assert.Equal(t, []string{"Iron Bar"}, r.Suggest(domain.ActivitySmithing, "Iorn Bar", 5))
	assert.Len(t, r.Suggest(domain.ActivitySmithing, "bronze", 1), 1)
	assert.Empty(t, r.Suggest(domain.ActivitySmithing, "zz", 5))
	assert.Empty(t, r.Suggest(domain.ActivitySmithing, "", 5))
	assert.Empty(t, r.Suggest(domain.ActivityFishing, "bronze", 5))
}

func TestResolveOrError(t *testing.T) {
	r := newTestResolver()

	name, err := r.ResolveOrError(domain.ActivityMining, "copper ore")
	require.NoError(t, err)
	assert.Equal(t, "Copper Ore", name)

	_, err = r.ResolveOrError(domain.ActivityMining, "Coper Ore")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Contains(t, err.Error(), "did you mean: Copper Ore?")

	_, err = r.ResolveOrError(domain.ActivityMining, "Dragonstone")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestRegisterItem(t *testing.T) {
	r := NewResolver(nil)

	r.RegisterItem(domain.ActivityFishing, "Raw Shrimp")
	r.RegisterItem(domain.ActivityFishing, "")

	got, ok := r.Resolve(domain.ActivityFishing, "raw shrimp")
	assert.True(t, ok)
	assert.Equal(t, "Raw Shrimp", got)
}

func TestResolver_ShippedCatalog(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping catalog test in short mode")
	}

	c, err := catalog.LoadDefault(context.Background())
	require.NoError(t, err)
	r := NewResolver(c.Activities.All())

	for _, activity := range c.Activities.All() {
		for _, item := range activity.Items {
			got, ok := r.Resolve(activity.Key, item.Name)
			require.True(t, ok, "%s/%s", activity.Key, item.Name)
			assert.Equal(t, item.Name, got)
		}
	}
}
