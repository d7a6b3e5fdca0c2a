package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypes(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/events?types=economy.view,%20coin.animation,,", nil)
	assert.Equal(t, []string{"economy.view", "coin.animation"}, parseTypes(r))

	r = httptest.NewRequest(http.MethodGet, "/events", nil)
	assert.Nil(t, parseTypes(r))
}

// readSSEEvent reads lines until a blank line and returns the event
func readSSEEvent(t *testing.T, r *bufio.Reader) Event {
	t.Helper()
	var evt Event
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		if line == "" {
			return evt
		}
		if data, ok := strings.CutPrefix(line, "data: "); ok {
			require.NoError(t, json.Unmarshal([]byte(data), &evt))
		}
	}
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=economy.view", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	reader := bufio.NewReader(resp.Body)

	assert.Equal(t, EventTypeConnected, readSSEEvent(t, reader).Type)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Broadcast("coin.animation", nil)
	hub.Broadcast("economy.view", map[string]string{"balance": "1.0000 USDT"})

	evt := readSSEEvent(t, reader)
	assert.Equal(t, "economy.view", evt.Type)
	assert.Equal(t, map[string]interface{}{"balance": "1.0000 USDT"}, evt.Payload)

	cancel()
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestWebSocketHandler_StreamsEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(WebSocketHandler(hub))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var evt Event
	require.NoError(t, conn.ReadJSON(&evt))
	assert.Equal(t, EventTypeConnected, evt.Type)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Broadcast("achievement.unlocked", map[string]string{"id": "first_miner"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&evt))
	assert.Equal(t, "achievement.unlocked", evt.Type)

	conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}
