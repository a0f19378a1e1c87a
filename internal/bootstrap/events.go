package bootstrap

import (
	"log/slog"

	"github.com/osse101/IdleForge_Go/internal/event"
	"github.com/osse101/IdleForge_Go/internal/metrics"
	"github.com/osse101/IdleForge_Go/internal/sse"
)

// InitializeEventSystem creates the in-process event bus and the stream hub.
// The hub is not started here.
func InitializeEventSystem() (*event.MemoryBus, *sse.Hub) {
	return event.NewMemoryBus(), sse.NewHub()
}

// RegisterEventHandlers subscribes the metrics collector and the stream
// fan-out to bus
func RegisterEventHandlers(bus event.Bus, hub *sse.Hub) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(hub, bus).Subscribe()
	slog.Info(LogMsgStreamSubscriberRegistered)
}
