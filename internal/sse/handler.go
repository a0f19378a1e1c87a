package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/IdleForge_Go/internal/logger"
)

// listenerID returns the player a connection listens as
func listenerID(r *http.Request) string {
	if id := r.Header.Get(HeaderPlayerID); id != "" {
		return id
	}
	return r.URL.Query().Get(QueryPlayerID)
}

func eventTypes(r *http.Request) []string {
	filter := r.URL.Query().Get(QueryTypes)
	if filter == "" {
		return nil
	}
	return strings.Split(filter, ",")
}

// Handler returns an HTTP handler for SSE connections
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, errMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		playerID := listenerID(r)
		types := eventTypes(r)

		client := hub.Register(playerID, types)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"player_id", playerID,
			"filters", types)

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		connected := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload: map[string]interface{}{
				"client_id": client.ID,
				"player_id": playerID,
				"filters":   types,
			},
		}
		if msg, err := FormatSSEMessage(connected); err == nil {
			if _, err := w.Write(msg); err != nil {
				return
			}
			flusher.Flush()
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// Hub is shutting down
					return
				}

				msg, err := FormatSSEMessage(event)
				if err != nil {
					log.Error(LogMsgWriteError, "error", err)
					continue
				}
				if _, err := w.Write(msg); err != nil {
					log.Warn(LogMsgWriteError, "error", err)
					return
				}
				flusher.Flush()

			case <-ticker.C:
				msg, _ := FormatSSEMessage(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()})
				if _, err := w.Write(msg); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}
