package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/MinerTapper_Go/internal/domain"
	"github.com/osse101/MinerTapper_Go/internal/event"
	"github.com/osse101/MinerTapper_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.Tick,
		event.UnitPurchased,
		event.UnitUpgraded,
		event.AchievementUnlocked,
		event.CoinAnimation,
		event.ReferralStats,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case domain.TickPayload:
		MinedTotal.Add(p.Mined)
		Balance.Set(p.Balance)
		MiningPower.Set(p.MiningPower)

	case domain.UnitPurchasedPayload:
		UnitsPurchased.WithLabelValues(strconv.Itoa(p.UnitID)).Inc()
		MoneySpent.Add(p.Price)
		MiningPower.Set(p.MiningPower)

	case domain.UnitUpgradedPayload:
		UnitsUpgraded.WithLabelValues(strconv.Itoa(p.UnitID)).Inc()
		MoneySpent.Add(p.Price)
		MiningPower.Set(p.MiningPower)

	case domain.AchievementUnlockedPayload:
		AchievementsUnlocked.WithLabelValues(p.AchievementID).Inc()

	case domain.ReferralStatsPayload:
		result := ResultSuccess
		if !p.Available {
			result = ResultFailure
		}
		ReferralFetchesTotal.WithLabelValues(result).Inc()

	case domain.CoinAnimationPayload:
		// counted by EventsPublished only

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
