package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/osse101/MinerTapper_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestMemoryBus_HandlerPanicIsIsolated(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	called := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		panic("boom")
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		called = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from panicking handler, got nil")
	}
	if !called {
		t.Error("Second handler should still run after a panic")
	}
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	if err := bus.Publish(context.Background(), Event{Type: "nobody"}); err != nil {
		t.Errorf("Expected nil error without subscribers, got %v", err)
	}
}

func TestConstructors(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	st := domain.NewEconomyState([]domain.UnitDefinition{{ID: 1, Name: "Basic", BasePower: 1, BasePrice: 10}}, nil, 0.5, at)

	evt := NewTickEvent(st, 0.5, 1)
	payload, ok := evt.Payload.(domain.TickPayload)
	if !ok {
		t.Fatalf("unexpected payload type %T", evt.Payload)
	}
	if payload.MiningPower != 0.5 || payload.Timestamp != at.Unix() {
		t.Errorf("unexpected tick payload %+v", payload)
	}
	if evt.State != st || evt.Version != EventSchemaVersion {
		t.Errorf("tick event should carry state and schema version")
	}

	unit := domain.UnitDefinition{ID: 1, Name: "Basic"}
	bought := NewUnitPurchasedEvent(st, unit, 10, at)
	if bought.Type != UnitPurchased {
		t.Errorf("expected %s, got %s", UnitPurchased, bought.Type)
	}

	stats := NewReferralStatsEvent(42, domain.ReferralStats{Count: 3, Bonus: 1.5}, true, at)
	if p := stats.Payload.(domain.ReferralStatsPayload); p.UserID != 42 || p.Count != 3 || !p.Available {
		t.Errorf("unexpected referral payload %+v", p)
	}
}
