package presentation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinerTapper_Go/internal/catalog"
	"github.com/osse101/MinerTapper_Go/internal/domain"
	"github.com/osse101/MinerTapper_Go/internal/economy"
)

func TestBuildView(t *testing.T) {
	cat := catalog.Default()
	st := cat.NewState(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	st.Balance = 12.34567
	st.TotalMined = 20
	st.Units[1] = domain.UnitState{Count: 1, Level: 1}
	st.MiningPower = economy.RecomputeMiningPower(cat, st)
	st.Achievements[catalog.AchievementFirstMiner] = true

	v := BuildView(cat, st, economy.Prices(cat, st))

	assert.Equal(t, "12.3457 USDT", v.Balance)
	assert.Equal(t, "0.0002 USDT/s", v.MiningPower)
	assert.Equal(t, "20.0000 USDT", v.TotalMined)
	assert.InDelta(t, 0.002, v.Progress, 1e-12)
	assert.True(t, v.UpdatedAt.Equal(st.LastUpdate))

	require.Len(t, v.Units, 4)
	basic := v.Units[0]
	assert.Equal(t, "Basic miner", basic.Name)
	assert.Equal(t, 1, basic.Count)
	assert.Equal(t, "20 USDT", basic.PurchasePrice)
	assert.Equal(t, "20 USDT", basic.UpgradePrice)
	assert.False(t, basic.CanBuy)
	assert.False(t, basic.CanUpgrade)
	assert.Equal(t, "50 USDT", v.Units[1].PurchasePrice)

	require.Len(t, v.Achievements, 3)
	assert.True(t, v.Achievements[0].Unlocked)
	assert.False(t, v.Achievements[1].Unlocked)
	assert.Equal(t, "⚡", v.Achievements[1].Icon)
}

func TestBuildView_Affordability(t *testing.T) {
	cat := catalog.Default()
	st := cat.NewState(time.Now())
	st.Balance = 10

	v := BuildView(cat, st, economy.Prices(cat, st))

	assert.True(t, v.Units[0].CanBuy)
	assert.False(t, v.Units[0].CanUpgrade)
	assert.False(t, v.Units[1].CanBuy)
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		power    float64
		maxPower float64
		want     float64
	}{
		{"initial power", 0.0001, 0.1, 0.001},
		{"half", 0.05, 0.1, 0.5},
		{"exactly full", 0.1, 0.1, 1},
		{"clamped", 3, 0.1, 1},
		{"zero max", 1, 0, 0},
		{"negative power", -1, 0.1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Progress(tt.power, tt.maxPower), 1e-12)
		})
	}
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "0.0000 USDT", FormatAmount(0))
	assert.Equal(t, "1000.0000 USDT", FormatAmount(1000))
	assert.Equal(t, "0.1000 USDT/s", FormatRate(0.1))
}
