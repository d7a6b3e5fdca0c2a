package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinerTapper_Go/internal/domain"
	"github.com/osse101/MinerTapper_Go/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()
	now := time.Now()

	unit := domain.UnitDefinition{ID: 9, Name: "Test", BasePower: 1, BasePrice: 1}
	st := domain.NewEconomyState([]domain.UnitDefinition{unit}, nil, 0.25, now)
	st.Balance = 12

	beforePurchased := testutil.ToFloat64(UnitsPurchased.WithLabelValues("9"))
	beforeUnlocked := testutil.ToFloat64(AchievementsUnlocked.WithLabelValues("metrics_test"))

	require.NoError(t, bus.Publish(ctx, event.NewTickEvent(st, 0.25, 1)))
	assert.Equal(t, 12.0, testutil.ToFloat64(Balance))
	assert.Equal(t, 0.25, testutil.ToFloat64(MiningPower))

	require.NoError(t, bus.Publish(ctx, event.NewUnitPurchasedEvent(st, unit, 1, now)))
	assert.Equal(t, beforePurchased+1, testutil.ToFloat64(UnitsPurchased.WithLabelValues("9")))

	def := domain.AchievementDefinition{ID: "metrics_test", Name: "x", Kind: domain.AchievementAnyUnitOwned}
	require.NoError(t, bus.Publish(ctx, event.NewAchievementUnlockedEvent(st, def, now)))
	assert.Equal(t, beforeUnlocked+1, testutil.ToFloat64(AchievementsUnlocked.WithLabelValues("metrics_test")))
}
