package sse

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinerTapper_Go/internal/testing/leaktest"
)

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case evt, ok := <-c.EventChannel:
		require.True(t, ok, "channel closed")
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_BroadcastRespectsFilter(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := hub.Register(TransportSSE, nil)
	coinsOnly := hub.Register(TransportWebSocket, []string{"coin.animation"})
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	hub.Broadcast("economy.view", map[string]int{"n": 1})
	hub.Broadcast("coin.animation", nil)

	assert.Equal(t, "economy.view", receive(t, all).Type)
	assert.Equal(t, "coin.animation", receive(t, all).Type)

	evt := receive(t, coinsOnly)
	assert.Equal(t, "coin.animation", evt.Type)
	assert.NotEmpty(t, evt.ID)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	c := hub.Register(TransportSSE, nil)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Unregister(c.ID)

	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
	_, ok := <-c.EventChannel
	assert.False(t, ok)
}

func TestHub_StopClosesClientsAndIsIdempotent(t *testing.T) {
	hub := NewHub()
	hub.Start()

	c := hub.Register(TransportSSE, nil)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Stop()
	hub.Stop()

	_, ok := <-c.EventChannel
	assert.False(t, ok)

	late := hub.Register(TransportSSE, nil)
	_, ok = <-late.EventChannel
	assert.False(t, ok)

	// must not block or panic
	hub.Broadcast("economy.view", nil)
	hub.Unregister(late.ID)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: "coin.animation", Timestamp: 5})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: abc\nevent: coin.animation\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "}\n\n"))
	assert.Contains(t, s, `"timestamp":5`)
}

func TestHub_StopReleasesGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		hub := NewHub()
		hub.Start()

		c := hub.Register(TransportSSE, nil)
		require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
		hub.Broadcast("economy.view", nil)
		receive(t, c)

		hub.Stop()
	})
}
