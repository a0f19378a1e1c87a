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

	// WriteTimeout is the timeout for writing to websocket connections
	WriteTimeout = 10 * time.Second

	// PongWait is how long a websocket client may stay silent
	PongWait = 60 * time.Second

	// MaxClientMessageSize bounds frames read from websocket clients
	MaxClientMessageSize = 512
)

// Event types sent to clients
const (
	EventTypeConnected      = "connected"
	EventTypeKeepalive      = "keepalive"
	EventTypePlayerUpdated  = "player.updated"
	EventTypeBonusPurchased = "bonus.purchased"
	EventTypeBonusesChanged = "bonuses.changed"
)

// Request parameters identifying the listening player.
// EventSource cannot set headers, so the query parameter is accepted too.
const (
	HeaderPlayerID = "X-Player-ID"
	QueryPlayerID  = "player_id"
	QueryTypes     = "types"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgBroadcastDropped   = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
	LogMsgPayloadInvalid     = "Invalid event payload for SSE"
	LogMsgWebsocketUpgrade   = "Websocket upgrade failed"
	LogMsgWebsocketConnected = "Websocket client connected"
	LogMsgWebsocketClosed    = "Websocket client disconnected"
	LogMsgHubStopped         = "SSE hub stopped"
)

const errMsgStreamingUnsupported = "streaming not supported"
