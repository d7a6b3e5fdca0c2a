package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinerTapper_Go/internal/domain"
)

func TestDefault(t *testing.T) {
	c := Default()

	require.NoError(t, Validate(c))
	assert.Equal(t, 0.0001, c.InitialMiningPower)
	assert.Equal(t, time.Second, c.TickInterval())
	assert.Equal(t, 3*time.Second, c.AnimationCooldown())
	assert.Len(t, c.Units, 4)

	ids := make([]string, 0, len(c.Achievements))
	for _, a := range c.Achievements {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{AchievementFirstMiner, AchievementSpeedDemon, AchievementMillionaire}, ids)
}

func TestUnitLookup(t *testing.T) {
	c := Default()

	u, err := c.Unit(3)
	require.NoError(t, err)
	assert.Equal(t, 200.0, u.BasePrice)
	assert.Equal(t, 0.002, u.BasePower)

	_, err = c.Unit(99)
	assert.ErrorIs(t, err, domain.ErrUnknownUnit)
}

func TestNewState(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	st := Default().NewState(now)

	assert.Equal(t, 0.0, st.Balance)
	assert.Equal(t, 0.0001, st.MiningPower)
	assert.True(t, st.LastUpdate.Equal(now))
	for id := 1; id <= 4; id++ {
		assert.Equal(t, domain.UnitState{Count: 0, Level: 1}, st.Units[id])
	}
	assert.Equal(t, map[string]bool{
		AchievementFirstMiner:  false,
		AchievementSpeedDemon:  false,
		AchievementMillionaire: false,
	}, st.Achievements)
}

func TestLoadYAML(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "2.0", c.Version)
	assert.Equal(t, 500*time.Millisecond, c.TickInterval())
	assert.Equal(t, DefaultInitialMiningPower, c.InitialMiningPower)
	require.Len(t, c.Units, 2)
	assert.Equal(t, "Excavator", c.Units[1].Name)
	require.Len(t, c.Achievements, 1)
	assert.Equal(t, domain.AchievementBalanceAtLeast, c.Achievements[0].Kind)
}

func TestLoadTOML(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "catalog.toml"))
	require.NoError(t, err)

	assert.Equal(t, 0.0002, c.InitialMiningPower)
	require.Len(t, c.Units, 2)
	assert.Len(t, c.Achievements, 3, "achievements fall back to the built-in set")
}

func TestLoad_TimingsOnlyKeepsDefaultUnits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_interval_ms: 500\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, c.TickInterval())
	assert.Equal(t, Default().Units, c.Units)
	assert.Equal(t, Default().Achievements, c.Achievements)
}

func TestLoadErrors(t *testing.T) {
	t.Run("duplicate unit id", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "duplicate.yaml"))
		assert.ErrorIs(t, err, ErrInvalidCatalog)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "unsupported catalog format")
	})

	t.Run("non-positive price", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		body := "units:\n  - id: 1\n    name: Free\n    base_power: 1\n    base_price: 0\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidCatalog)
	})
}

func TestValidateNil(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), ErrInvalidCatalog)
}
