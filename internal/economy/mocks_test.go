package economy

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MinerTapper_Go/internal/domain"
	"github.com/osse101/MinerTapper_Go/internal/event"
)

// MockPersister is a mock implementation of Persister
type MockPersister struct {
	mock.Mock
}

func (m *MockPersister) Save(ctx context.Context, st *domain.EconomyState) {
	m.Called(ctx, st)
}

func (m *MockPersister) SaveNow(ctx context.Context, st *domain.EconomyState) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

// recordingBus is a MemoryBus that remembers every published event type in order
type recordingBus struct {
	*event.MemoryBus
	mu     sync.Mutex
	events []event.Event
}

func newRecordingBus() *recordingBus {
	b := &recordingBus{MemoryBus: event.NewMemoryBus()}
	for _, typ := range []event.Type{event.Tick, event.UnitPurchased, event.UnitUpgraded, event.AchievementUnlocked, event.CoinAnimation} {
		b.Subscribe(typ, func(ctx context.Context, evt event.Event) error {
			b.mu.Lock()
			defer b.mu.Unlock()
			b.events = append(b.events, evt)
			return nil
		})
	}
	return b
}

func (b *recordingBus) types() []event.Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]event.Type, len(b.events))
	for i, e := range b.events {
		out[i] = e.Type
	}
	return out
}
