package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/event"
)

// Subscriber bridges the internal event bus to the hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.PlayerUpdated, s.handlePlayerUpdated)
	s.bus.Subscribe(event.BonusPurchased, s.handleBonusPurchased)
	s.bus.Subscribe(event.BonusesChanged, s.handleBonusesChanged)

	slog.Info(LogMsgSubscriberReady,
		"types", []string{
			string(event.PlayerUpdated),
			string(event.BonusPurchased),
			string(event.BonusesChanged),
		})
}

// handlePlayerUpdated notifies every affected player, including OTHERS bonus recipients
func (s *Subscriber) handlePlayerUpdated(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.PlayerUpdatedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.SendTo(payload.AffectedPlayerIDs, EventTypePlayerUpdated, payload)

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypePlayerUpdated,
		"action", payload.Action,
		"recipients", len(payload.AffectedPlayerIDs))
	return nil
}

func (s *Subscriber) handleBonusPurchased(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.BonusPurchasedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.SendTo(payload.AffectedPlayerIDs, EventTypeBonusPurchased, payload)
	return nil
}

func (s *Subscriber) handleBonusesChanged(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.BonusesChangedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeBonusesChanged, payload)

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeBonusesChanged,
		"reason", payload.Reason)
	return nil
}
