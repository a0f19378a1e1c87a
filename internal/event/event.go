package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/IdleForge_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Event types
const (
	PlayerRegistered Type = "player.registered"
	PlayerUpdated    Type = "player.updated"
	BonusPurchased   Type = "bonus.purchased"
	BonusesChanged   Type = "bonuses.changed"
)

// NewPlayerUpdatedEvent announces that the affected players' state changed.
// An empty Timestamp is stamped with the current time.
func NewPlayerUpdatedEvent(p domain.PlayerUpdatedPayload) Event {
	if p.Timestamp == 0 {
		p.Timestamp = time.Now().Unix()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerUpdated,
		Payload: p,
	}
}

// NewPlayerRegisteredEvent announces a new player
func NewPlayerRegisteredEvent(playerID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerRegistered,
		Payload: domain.PlayerUpdatedPayload{
			Action:            ActionRegister,
			AffectedPlayerIDs: []string{playerID},
			Timestamp:         time.Now().Unix(),
		},
	}
}

// NewBonusPurchasedEvent announces a committed purchase
func NewBonusPurchasedEvent(buyerID string, b domain.Bonus, target domain.BonusTarget, affected []string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BonusPurchased,
		Payload: domain.BonusPurchasedPayload{
			BuyerID:           buyerID,
			BonusID:           b.ID,
			Kind:              b.Kind,
			Target:            target,
			AffectedPlayerIDs: affected,
			Timestamp:         time.Now().Unix(),
		},
	}
}

// NewBonusesChangedEvent announces a change to the available bonus list
func NewBonusesChangedEvent(reason, bonusID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BonusesChanged,
		Payload: domain.BonusesChangedPayload{
			Reason:    reason,
			BonusID:   bonusID,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of event.Type synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe registers a handler for an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
