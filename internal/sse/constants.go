package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// Connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// WriteTimeout is the timeout for writing to client connections
	WriteTimeout = 10 * time.Second

	// ReadTimeout is how long a WebSocket may stay silent before it is dropped
	ReadTimeout = 2 * KeepaliveInterval

	// WSBufferSize is the read and write buffer size of the WebSocket upgrader
	WSBufferSize = 4 * 1024
)

// Transports, used as the metrics label
const (
	TransportSSE       = "sse"
	TransportWebSocket = "websocket"
)

// StageBroadcast labels downstream failures when the hub drops an event
const StageBroadcast = "broadcast"

// Event types generated by the transport itself
const (
	// EventTypeConnected is the first event a client receives
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"

	// TypesQueryParam selects which event types a client receives
	TypesQueryParam = "types"
)

// Log messages
const (
	LogMsgClientConnected       = "Realtime client connected"
	LogMsgClientDisconnected    = "Realtime client disconnected"
	LogMsgWriteError            = "Failed to write realtime event"
	LogMsgUpgradeFailed         = "WebSocket upgrade failed"
	ErrMsgStreamingNotSupported = "SSE not supported"
)
