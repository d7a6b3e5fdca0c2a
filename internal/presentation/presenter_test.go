package presentation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinerTapper_Go/internal/catalog"
	"github.com/osse101/MinerTapper_Go/internal/domain"
	"github.com/osse101/MinerTapper_Go/internal/event"
	"github.com/osse101/MinerTapper_Go/internal/referral"
)

type message struct {
	kind    string
	payload interface{}
}

type recordingBroadcaster struct {
	mu       sync.Mutex
	messages []message
}

func (r *recordingBroadcaster) Broadcast(kind string, payload interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message{kind: kind, payload: payload})
}

func (r *recordingBroadcaster) kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, m.kind)
	}
	return out
}

type fixedPanel struct {
	panel referral.Panel
}

func (f fixedPanel) Panel(ctx context.Context) referral.Panel {
	return f.panel
}

func setup(t *testing.T, panels PanelSource) (*catalog.Catalog, *event.MemoryBus, *recordingBroadcaster) {
	t.Helper()
	cat := catalog.Default()
	bus := event.NewMemoryBus()
	out := &recordingBroadcaster{}
	NewPresenter(cat, out, panels).Subscribe(bus)
	return cat, bus, out
}

func TestPresenter_TickProducesView(t *testing.T) {
	cat, bus, out := setup(t, nil)
	st := cat.NewState(time.Now())
	st.Balance = 1.5

	require.NoError(t, bus.Publish(context.Background(), event.NewTickEvent(st, 0.0001, 1)))

	require.Equal(t, []string{MessageView}, out.kinds())
	view := out.messages[0].payload.(View)
	assert.Equal(t, "1.5000 USDT", view.Balance)
}

func TestPresenter_StateLessEventIsSkipped(t *testing.T) {
	_, bus, out := setup(t, nil)

	require.NoError(t, bus.Publish(context.Background(), event.Event{Type: event.Tick}))

	assert.Empty(t, out.kinds())
}

func TestPresenter_AchievementNotice(t *testing.T) {
	cat, bus, out := setup(t, nil)
	st := cat.NewState(time.Now())
	def, ok := cat.Achievement(catalog.AchievementFirstMiner)
	require.True(t, ok)
	st.Achievements[def.ID] = true

	require.NoError(t, bus.Publish(context.Background(), event.NewAchievementUnlockedEvent(st, def, time.Now())))

	require.Equal(t, []string{MessageAchievement, MessageView}, out.kinds())
	notice := out.messages[0].payload.(Notice)
	assert.Equal(t, Notice{ID: def.ID, Name: def.Name, Description: def.Description, Icon: def.Icon}, notice)
}

func TestPresenter_CoinAndReferral(t *testing.T) {
	panel := referral.Panel{Enabled: true, Count: "3", Bonus: "1.00 USDT"}
	_, bus, out := setup(t, fixedPanel{panel: panel})
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, event.NewCoinAnimationEvent(time.Unix(100, 0))))
	require.NoError(t, bus.Publish(ctx, event.NewReferralStatsEvent(7, domain.ReferralStats{Count: 3, Bonus: 1}, true, time.Now())))

	require.Equal(t, []string{MessageCoin, MessageReferral}, out.kinds())
	assert.Equal(t, domain.CoinAnimationPayload{Timestamp: 100}, out.messages[0].payload)
	assert.Equal(t, panel, out.messages[1].payload)
}

func TestPresenter_ReferralIgnoredWithoutPanels(t *testing.T) {
	_, bus, out := setup(t, nil)

	require.NoError(t, bus.Publish(context.Background(), event.NewReferralStatsEvent(7, domain.ReferralStats{}, false, time.Now())))

	assert.Empty(t, out.kinds())
}
