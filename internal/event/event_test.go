package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleForge_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got []string

	bus.Subscribe(PlayerUpdated, func(ctx context.Context, e Event) error {
		p, err := DecodePayload[domain.PlayerUpdatedPayload](e.Payload)
		require.NoError(t, err)
		got = p.AffectedPlayerIDs
		return nil
	})

	err := bus.Publish(context.Background(), NewPlayerUpdatedEvent(domain.PlayerUpdatedPayload{
		Action:            ActionGather,
		Kind:              domain.SiteWood,
		AffectedPlayerIDs: []string{"p1"},
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, got)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewBonusesChangedEvent("generated", "b1")))
}

func TestMemoryBus_HandlerErrorsJoined(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0
	failing := func(ctx context.Context, e Event) error {
		calls++
		return errors.New("boom")
	}
	bus.Subscribe(BonusPurchased, failing)
	bus.Subscribe(BonusPurchased, failing)

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: BonusPurchased})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.Contains(t, err.Error(), "encountered 2 errors")
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{
		"buyer_id":            "p1",
		"kind":                "TAX",
		"affected_player_ids": []interface{}{"p2", "p3"},
	}
	p, err := DecodePayload[domain.BonusPurchasedPayload](raw)
	require.NoError(t, err)
	assert.Equal(t, domain.BonusTax, p.Kind)
	assert.Equal(t, []string{"p2", "p3"}, p.AffectedPlayerIDs)
}

func TestDecodePayload_Sources(t *testing.T) {
	want := domain.BonusesChangedPayload{Reason: "purchased", BonusID: "b1"}

	t.Run("pointer", func(t *testing.T) {
		got, err := DecodePayload[domain.BonusesChangedPayload](&want)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("raw json", func(t *testing.T) {
		got, err := DecodePayload[domain.BonusesChangedPayload](json.RawMessage(`{"reason":"purchased","bonus_id":"b1"}`))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing payload", func(t *testing.T) {
		_, err := DecodePayload[domain.BonusesChangedPayload](nil)
		assert.ErrorIs(t, err, ErrEmptyPayload)

		var nilPtr *domain.BonusesChangedPayload
		_, err = DecodePayload[domain.BonusesChangedPayload](nilPtr)
		assert.ErrorIs(t, err, ErrEmptyPayload)
	})

	t.Run("wrong shape", func(t *testing.T) {
		_, err := DecodePayload[domain.BonusesChangedPayload]([]byte(`["not", "an", "object"]`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode payload")
	})
}
