package sse

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/IdleForge_Go/internal/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Requests are authenticated by API key, not by browser origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WebsocketHandler upgrades the request and streams hub events as JSON text frames
func WebsocketHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn(LogMsgWebsocketUpgrade, "error", err)
			return
		}
		defer conn.Close()

		playerID := listenerID(r)
		client := hub.Register(playerID, eventTypes(r))
		defer hub.Unregister(client.ID)
		log.Info(LogMsgWebsocketConnected, "client_id", client.ID, "player_id", playerID)

		closed := make(chan struct{})
		go readPump(conn, closed)

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-closed:
				log.Info(LogMsgWebsocketClosed, "client_id", client.ID)
				return

			case event, ok := <-client.EventChannel:
				_ = conn.SetWriteDeadline(time.Now().Add(WriteTimeout))
				if !ok {
					_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
					return
				}
				if err := conn.WriteJSON(event); err != nil {
					log.Warn(LogMsgWriteError, "error", err)
					return
				}

			case <-ticker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(WriteTimeout))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}
}

// readPump discards client frames and signals when the connection goes away
func readPump(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	conn.SetReadLimit(MaxClientMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(PongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
