package sse

import (
	"encoding/json"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/IdleForge_Go/internal/metrics"
)

// Event represents an event sent to real-time clients
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`

	// Recipients limits delivery to these players; nil means everyone
	Recipients []string `json:"-"`
}

// Client represents a connected SSE or websocket client
type Client struct {
	ID           string
	PlayerID     string
	EventChannel chan Event
	EventFilter  map[string]bool // nil means all events, otherwise only specified types
}

func (c *Client) wants(e Event) bool {
	if c.EventFilter != nil && !c.EventFilter[e.Type] {
		return false
	}
	if e.Recipients == nil {
		return true
	}
	return c.PlayerID != "" && slices.Contains(e.Recipients, c.PlayerID)
}

// Hub manages client connections and event fan-out
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	// regMu orders Register sends against the final drain in Stop
	regMu   sync.Mutex
	drained bool
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop shuts down the hub and closes every client channel
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		// Clients still queued in register were never seen by run
		h.regMu.Lock()
		h.drained = true
		for pending := true; pending; {
			select {
			case client := <-h.register:
				close(client.EventChannel)
			default:
				pending = false
			}
		}
		h.regMu.Unlock()

		h.mu.Lock()
		for _, client := range h.clients {
			close(client.EventChannel)
		}
		h.clients = make(map[string]*Client)
		h.mu.Unlock()
		metrics.SSEClients.Set(0)
		slog.Default().Debug(LogMsgHubStopped)
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			metrics.SSEClients.Set(float64(len(h.clients)))
			h.mu.Unlock()

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.EventChannel)
				delete(h.clients, clientID)
			}
			metrics.SSEClients.Set(float64(len(h.clients)))
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(event) {
					continue
				}
				// Slow clients miss events rather than stall the hub
				select {
				case client.EventChannel <- event:
				default:
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a client listening as playerID; an empty playerID only receives global events
func (h *Hub) Register(playerID string, eventTypes []string) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		PlayerID:     playerID,
		EventChannel: make(chan Event, ClientEventBuffer),
	}

	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool)
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	h.regMu.Lock()
	defer h.regMu.Unlock()
	if h.drained {
		close(client.EventChannel)
		return client
	}

	// A send that wins against shutdown is closed by the drain in Stop
	select {
	case h.register <- client:
	case <-h.shutdown:
		close(client.EventChannel)
	}
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast sends an event to every interested client
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	h.send(eventType, payload, nil)
}

// SendTo sends an event only to clients listening as one of playerIDs
func (h *Hub) SendTo(playerIDs []string, eventType string, payload interface{}) {
	if playerIDs == nil {
		playerIDs = []string{}
	}
	h.send(eventType, payload, playerIDs)
}

func (h *Hub) send(eventType string, payload interface{}, recipients []string) {
	event := Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		Timestamp:  time.Now().Unix(),
		Payload:    payload,
		Recipients: recipients,
	}

	select {
	case h.broadcast <- event:
	default:
		slog.Default().Warn(LogMsgBroadcastDropped, "type", eventType)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage formats an event for transmission
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	// SSE format: "id: <id>\nevent: <type>\ndata: <json>\n\n"
	msg := "id: " + event.ID + "\n"
	msg += "event: " + event.Type + "\n"
	msg += "data: " + string(data) + "\n\n"

	return []byte(msg), nil
}
