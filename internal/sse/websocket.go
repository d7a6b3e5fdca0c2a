package sse

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/MinerTapper_Go/internal/logger"
)

// WebSocketHandler streams the same events as Handler over a WebSocket.
// Each event is one JSON text frame. Client frames are read only to detect
// disconnects.
func WebSocketHandler(hub *Hub) http.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  WSBufferSize,
		WriteBufferSize: WSBufferSize,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}

	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		eventTypes := parseTypes(r)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn(LogMsgUpgradeFailed, "error", err)
			return
		}
		defer conn.Close()

		client := hub.Register(TransportWebSocket, eventTypes)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"transport", TransportWebSocket,
			"filters", eventTypes)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID, "transport", TransportWebSocket)
		}()

		// Reader: keeps pong handling alive and notices the peer going away
		gone := make(chan struct{})
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(ReadTimeout))
		})
		go func() {
			defer close(gone)
			for {
				_ = conn.SetReadDeadline(time.Now().Add(ReadTimeout))
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		write := func(event Event) error {
			_ = conn.SetWriteDeadline(time.Now().Add(WriteTimeout))
			return conn.WriteJSON(event)
		}

		if err := write(connectedEvent(client, eventTypes)); err != nil {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-gone:
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
						time.Now().Add(time.Second))
					return
				}
				if err := write(event); err != nil {
					log.Warn(LogMsgWriteError, "error", err)
					return
				}

			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(WriteTimeout)); err != nil {
					return
				}
			}
		}
	}
}
