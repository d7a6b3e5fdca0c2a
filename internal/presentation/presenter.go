package presentation

import (
	"context"

	"github.com/osse101/MinerTapper_Go/internal/catalog"
	"github.com/osse101/MinerTapper_Go/internal/domain"
	"github.com/osse101/MinerTapper_Go/internal/economy"
	"github.com/osse101/MinerTapper_Go/internal/event"
	"github.com/osse101/MinerTapper_Go/internal/logger"
	"github.com/osse101/MinerTapper_Go/internal/referral"
)

// Broadcaster delivers a message to every connected client
type Broadcaster interface {
	Broadcast(messageType string, payload interface{})
}

// PanelSource supplies the current referral panel
type PanelSource interface {
	Panel(ctx context.Context) referral.Panel
}

// Presenter turns bus events into realtime messages. Its handlers never
// return errors so nothing it does can disturb the event's producer.
type Presenter struct {
	cat    *catalog.Catalog
	out    Broadcaster
	panels PanelSource
}

// NewPresenter creates a presenter. panels may be nil.
func NewPresenter(cat *catalog.Catalog, out Broadcaster, panels PanelSource) *Presenter {
	return &Presenter{cat: cat, out: out, panels: panels}
}

// Subscribe registers the presenter's handlers on bus
func (p *Presenter) Subscribe(bus event.Bus) {
	bus.Subscribe(event.Tick, p.handleStateChange)
	bus.Subscribe(event.UnitPurchased, p.handleStateChange)
	bus.Subscribe(event.UnitUpgraded, p.handleStateChange)
	bus.Subscribe(event.AchievementUnlocked, p.handleAchievement)
	bus.Subscribe(event.CoinAnimation, p.handleCoin)
	if p.panels != nil {
		bus.Subscribe(event.ReferralStats, p.handleReferral)
	}
	logger.FromContext(context.Background()).Info(LogMsgPresenterRegistered)
}

func (p *Presenter) handleStateChange(ctx context.Context, evt event.Event) error {
	if evt.State == nil {
		logger.FromContext(ctx).Debug(LogMsgMissingState, "type", evt.Type)
		return nil
	}
	p.out.Broadcast(MessageView, BuildView(p.cat, evt.State, economy.Prices(p.cat, evt.State)))
	return nil
}

func (p *Presenter) handleAchievement(ctx context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(domain.AchievementUnlockedPayload)
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}
	p.out.Broadcast(MessageAchievement, Notice{
		ID:          payload.AchievementID,
		Name:        payload.Name,
		Description: payload.Description,
		Icon:        payload.Icon,
	})
	if evt.State != nil {
		p.out.Broadcast(MessageView, BuildView(p.cat, evt.State, economy.Prices(p.cat, evt.State)))
	}
	return nil
}

func (p *Presenter) handleCoin(_ context.Context, evt event.Event) error {
	p.out.Broadcast(MessageCoin, evt.Payload)
	return nil
}

func (p *Presenter) handleReferral(ctx context.Context, _ event.Event) error {
	p.out.Broadcast(MessageReferral, p.panels.Panel(ctx))
	return nil
}
