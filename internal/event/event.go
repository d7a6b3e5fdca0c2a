package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/MinerTapper_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`

	// State is the economy state right after the change that produced the
	// event. It is a private copy owned by the event and never serialised.
	State *domain.EconomyState `json:"-"`
}

// Common event types
const (
	Tick                Type = domain.EventTypeTick
	UnitPurchased       Type = domain.EventTypeUnitPurchased
	UnitUpgraded        Type = domain.EventTypeUnitUpgraded
	AchievementUnlocked Type = domain.EventTypeAchievementUnlocked
	CoinAnimation       Type = domain.EventTypeCoinAnimation
	ReferralStats       Type = domain.EventTypeReferralStats
)

// Type-safe event constructors

// NewTickEvent creates an economy.tick event
func NewTickEvent(st *domain.EconomyState, mined, deltaSeconds float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Tick,
		Payload: domain.TickPayload{
			Mined:        mined,
			DeltaSeconds: deltaSeconds,
			Balance:      st.Balance,
			MiningPower:  st.MiningPower,
			TotalMined:   st.TotalMined,
			Timestamp:    st.LastUpdate.Unix(),
		},
		State: st,
	}
}

// NewUnitPurchasedEvent creates a unit.purchased event
func NewUnitPurchasedEvent(st *domain.EconomyState, unit domain.UnitDefinition, price float64, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UnitPurchased,
		Payload: domain.UnitPurchasedPayload{
			UnitID:      unit.ID,
			UnitName:    unit.Name,
			Price:       price,
			Count:       st.Unit(unit.ID).Count,
			MiningPower: st.MiningPower,
			Timestamp:   at.Unix(),
		},
		State: st,
	}
}

// NewUnitUpgradedEvent creates a unit.upgraded event
func NewUnitUpgradedEvent(st *domain.EconomyState, unit domain.UnitDefinition, price float64, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UnitUpgraded,
		Payload: domain.UnitUpgradedPayload{
			UnitID:      unit.ID,
			UnitName:    unit.Name,
			Price:       price,
			Level:       st.Unit(unit.ID).Level,
			MiningPower: st.MiningPower,
			Timestamp:   at.Unix(),
		},
		State: st,
	}
}

// NewAchievementUnlockedEvent creates an achievement.unlocked event
func NewAchievementUnlockedEvent(st *domain.EconomyState, def domain.AchievementDefinition, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AchievementUnlocked,
		Payload: domain.AchievementUnlockedPayload{
			AchievementID: def.ID,
			Name:          def.Name,
			Description:   def.Description,
			Icon:          def.Icon,
			Timestamp:     at.Unix(),
		},
		State: st,
	}
}

// NewCoinAnimationEvent creates a coin.animation event
func NewCoinAnimationEvent(at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CoinAnimation,
		Payload: domain.CoinAnimationPayload{Timestamp: at.Unix()},
	}
}

// NewReferralStatsEvent creates a referral.stats event
func NewReferralStatsEvent(userID int64, stats domain.ReferralStats, available bool, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ReferralStats,
		Payload: domain.ReferralStatsPayload{
			UserID:    userID,
			Count:     stats.Count,
			Bonus:     stats.Bonus,
			Available: available,
			Timestamp: at.Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
//
// Handlers run synchronously in subscription order. A failing or panicking
// handler does not stop the remaining handlers; all failures are joined into
// the returned error.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := invoke(ctx, handler, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

func invoke(ctx context.Context, handler Handler, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf(ErrMsgHandlerPanicFormat, event.Type, r)
		}
	}()
	return handler(ctx, event)
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
