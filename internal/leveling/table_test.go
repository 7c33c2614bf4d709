package leveling

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/osse101/IdleRates_Go/internal/domain"
)

func loadTable(t *testing.T) *Table {
	t.Helper()
	table, err := LoadDefault(context.Background())
	require.NoError(t, err)
	return table
}

func TestLoadDefault(t *testing.T) {
	table := loadTable(t)

	assert.Equal(t, int64(0), table.XPRequired(1))
	assert.Equal(t, int64(83), table.XPRequired(2))
	assert.Equal(t, int64(13_034_431), table.XPRequired(99))
	assert.Equal(t, int64(104_273_167), table.XPRequired(120))
	assert.Equal(t, TrueMasterXP, table.XPRequired(domain.TrueMasterLevel))
}

func TestXPRequired_UnknownLevels(t *testing.T) {
	table := loadTable(t)

	for _, level := range []int{-5, 0, 122, 1000} {
		assert.Zero(t, table.XPRequired(level), "level %d", level)
	}
}

func TestLevelForExperience(t *testing.T) {
	table := loadTable(t)

	tests := []struct {
		name string
		xp   float64
		want int
	}{
		{"negative xp", -100, 1},
		{"zero xp", 0, 1},
		{"just below level 2", 82, 1},
		{"exactly level 2", 83, 2},
		{"between thresholds", 13_034_430, 98},
		{"level 99", 13_034_431, 99},
		{"cap", 104_273_167, 120},
		{"past cap", 400_000_000, 120},
		{"past true master", 600_000_000, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.LevelForExperience(tt.xp))
		})
	}
}

func TestProgress(t *testing.T) {
	table := loadTable(t)

	p := table.Progress(100)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, int64(83), p.LevelXP)
	assert.Equal(t, 3, p.NextLevel)
	assert.Equal(t, table.XPRequired(3)-100, p.XPToNext)

	p = table.Progress(200_000_000)
	assert.Equal(t, 120, p.Level)
	assert.Equal(t, domain.TrueMasterLevel, p.NextLevel)
	assert.Equal(t, TrueMasterXP-200_000_000, p.XPToNext)

	p = table.Progress(float64(TrueMasterXP) + 1)
	assert.Equal(t, 120, p.Level)
	assert.Zero(t, p.XPToNext)
}

func TestNewTable_Rejects(t *testing.T) {
	full := make([]int64, domain.MaxLevel)
	for i := range full {
		full[i] = int64(i * 10)
	}

	tests := []struct {
		name       string
		thresholds []int64
	}{
		{"empty", nil},
		{"too short", full[:50]},
		{"first not zero", append([]int64{5}, full[1:]...)},
		{"not increasing", func() []int64 {
			bad := append([]int64(nil), full...)
			bad[40] = bad[39]
			return bad
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.thresholds)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
		})
	}
}

func TestLoader_RejectsGap(t *testing.T) {
	fsys := fstest.MapFS{
		"xp.json": {Data: []byte(`{"version":"1.0","levels":[{"level":1,"xp":0},{"level":3,"xp":100}]}`)},
	}

	_, err := NewLoader().Load(context.Background(), fsys, "xp.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestLoader_RejectsSchemaViolation(t *testing.T) {
	fsys := fstest.MapFS{
		"xp.json": {Data: []byte(`{"version":"1.0","levels":[{"level":"one","xp":0}]}`)},
	}

	_, err := NewLoader().Load(context.Background(), fsys, "xp.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestLevelRoundTrip_Property(t *testing.T) {
	table := loadTable(t)

	rapid.Check(t, func(t *rapid.T) {
		level := rapid.IntRange(domain.MinLevel, domain.MaxLevel).Draw(t, "level")
		if got := table.LevelForExperience(float64(table.XPRequired(level))); got != level {
			t.Fatalf("LevelForExperience(XPRequired(%d)) = %d", level, got)
		}
	})
}

func TestLevelMonotonic_Property(t *testing.T) {
	table := loadTable(t)

	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Float64Range(-1000, 200_000_000).Draw(t, "a")
		b := rapid.Float64Range(-1000, 200_000_000).Draw(t, "b")
		if a > b {
			a, b = b, a
		}
		la, lb := table.LevelForExperience(a), table.LevelForExperience(b)
		if la > lb {
			t.Fatalf("level(%v)=%d > level(%v)=%d", a, la, b, lb)
		}
		if la < domain.MinLevel || lb > domain.MaxLevel {
			t.Fatalf("level out of range: %d, %d", la, lb)
		}
	})
}
