package metrics

import (
	"context"

	"github.com/osse101/IdleForge_Go/internal/bonus"
	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/event"
	"github.com/osse101/IdleForge_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{
		event.PlayerRegistered,
		event.PlayerUpdated,
		event.BonusPurchased,
		event.BonusesChanged,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.PlayerRegistered:
		PlayersRegistered.Inc()

	case event.PlayerUpdated:
		p, err := event.DecodePayload[domain.PlayerUpdatedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		recordPlayerUpdate(p)

	case event.BonusPurchased:
		p, err := event.DecodePayload[domain.BonusPurchasedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		BonusesPurchased.WithLabelValues(string(p.Kind), string(p.Target)).Inc()

	case event.BonusesChanged:
		p, err := event.DecodePayload[domain.BonusesChangedPayload](evt.Payload)
		if err == nil && p.Reason == bonus.ReasonGenerated {
			BonusesGenerated.Inc()
		}
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordPlayerUpdate(p domain.PlayerUpdatedPayload) {
	kind := string(p.Kind)
	switch p.Action {
	case event.ActionBuyWorker:
		WorkersBought.WithLabelValues(kind).Add(float64(p.Quantity))
	case event.ActionUpgradeLevel:
		LevelsUpgraded.WithLabelValues(kind).Inc()
	case event.ActionGather:
		Gathers.WithLabelValues(kind).Inc()
		ResourceGathered.WithLabelValues(kind).Add(p.Gained)
	}
	if p.Spent > 0 {
		MoneySpent.Add(p.Spent)
	}
	if p.Earned > 0 {
		MoneyEarned.Add(p.Earned)
	}
}
