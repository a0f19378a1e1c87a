package sse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/event"
	"github.com/osse101/IdleForge_Go/internal/testing/leaktest"
)

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case e := <-c.EventChannel:
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func assertNothing(t *testing.T, c *Client) {
	t.Helper()
	select {
	case e := <-c.EventChannel:
		t.Fatalf("unexpected event %s", e.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func TestHub_SendToTargetsPlayers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		h := NewHub()
		h.Start()
		defer h.Stop()

		alice := h.Register("alice", nil)
		bob := h.Register("bob", nil)
		anon := h.Register("", nil)
		waitForClients(t, h, 3)

		h.SendTo([]string{"alice"}, EventTypePlayerUpdated, "hi")

		e := receive(t, alice)
		assert.Equal(t, EventTypePlayerUpdated, e.Type)
		assert.NotEmpty(t, e.ID)
		assertNothing(t, bob)
		assertNothing(t, anon)

		h.Broadcast(EventTypeBonusesChanged, nil)
		for _, c := range []*Client{alice, bob, anon} {
			assert.Equal(t, EventTypeBonusesChanged, receive(t, c).Type)
		}
	})
}

func TestHub_SendToEmptyListReachesNobody(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	c := h.Register("alice", nil)
	waitForClients(t, h, 1)

	h.SendTo(nil, EventTypePlayerUpdated, nil)
	assertNothing(t, c)
}

func TestHub_EventFilter(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	c := h.Register("", []string{EventTypeBonusesChanged})
	waitForClients(t, h, 1)

	h.Broadcast(EventTypeKeepalive, nil)
	h.Broadcast(EventTypeBonusesChanged, nil)

	assert.Equal(t, EventTypeBonusesChanged, receive(t, c).Type)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	c := h.Register("alice", nil)
	waitForClients(t, h, 1)
	h.Unregister(c.ID)

	select {
	case _, ok := <-c.EventChannel:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
	assert.Equal(t, 0, h.ClientCount())
}

func TestHub_StopIsIdempotent(t *testing.T) {
	h := NewHub()
	h.Start()
	h.Stop()
	h.Stop()

	// Operations after stop must not block
	c := h.Register("late", nil)
	_, ok := <-c.EventChannel
	assert.False(t, ok)
	h.Unregister(c.ID)
}

func TestHub_StopClosesQueuedRegistrations(t *testing.T) {
	// Without a running loop registrations stay queued in the buffer
	h := NewHub()
	queued := []*Client{h.Register("a", nil), h.Register("b", nil)}

	h.Stop()

	for _, c := range queued {
		select {
		case _, ok := <-c.EventChannel:
			assert.False(t, ok, "client %s", c.PlayerID)
		case <-time.After(time.Second):
			t.Fatalf("client %s never closed", c.PlayerID)
		}
	}
	assert.Equal(t, 0, h.ClientCount())
}

func TestHub_RegisterRacingStopAlwaysCloses(t *testing.T) {
	for range 50 {
		h := NewHub()
		h.Start()

		registered := make(chan *Client, 1)
		go func() { registered <- h.Register("racer", nil) }()
		h.Stop()

		c := <-registered
		select {
		case _, ok := <-c.EventChannel:
			assert.False(t, ok)
		case <-time.After(time.Second):
			t.Fatal("client registered during stop was never closed")
		}
	}
}

func TestSubscriber_RoutesBusEvents(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(h, bus).Subscribe()

	buyer := h.Register("buyer", nil)
	victim := h.Register("victim", nil)
	bystander := h.Register("bystander", []string{EventTypePlayerUpdated})
	waitForClients(t, h, 3)

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.NewPlayerUpdatedEvent(domain.PlayerUpdatedPayload{
		Action:            event.ActionBonus,
		AffectedPlayerIDs: []string{"buyer", "victim"},
	})))

	assert.Equal(t, EventTypePlayerUpdated, receive(t, buyer).Type)
	e := receive(t, victim)
	payload, ok := e.Payload.(domain.PlayerUpdatedPayload)
	require.True(t, ok)
	assert.Equal(t, event.ActionBonus, payload.Action)
	assertNothing(t, bystander)

	require.NoError(t, bus.Publish(ctx, event.NewBonusesChangedEvent("generated", "b1")))
	assert.Equal(t, EventTypeBonusesChanged, receive(t, buyer).Type)
	assertNothing(t, bystander)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: EventTypeBonusesChanged, Timestamp: 5})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: 1\nevent: bonuses.changed\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "\n\n"))
	assert.NotContains(t, s, "Recipients")
}

func TestHandler_StreamsConnectedEvent(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/events?player_id=alice", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		Handler(h).ServeHTTP(rec, req)
		close(done)
	}()

	waitForClients(t, h, 1)
	cancel()
	<-done

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "event: connected")
	assert.Contains(t, rec.Body.String(), `"player_id":"alice"`)
}

func TestWebsocketHandler_DeliversTargetedEvents(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	srv := httptest.NewServer(WebsocketHandler(h))
	defer srv.Close()

	header := http.Header{}
	header.Set(HeaderPlayerID, "alice")
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), header)
	require.NoError(t, err)
	defer conn.Close()

	waitForClients(t, h, 1)
	h.SendTo([]string{"alice"}, EventTypePlayerUpdated, map[string]string{"action": "gather"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var got Event
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, EventTypePlayerUpdated, got.Type)

	conn.Close()
	waitForClients(t, h, 0)
}
