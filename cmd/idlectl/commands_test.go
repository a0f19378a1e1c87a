package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleForge_Go/internal/bonus"
	"github.com/osse101/IdleForge_Go/internal/domain"
)

func TestPrintPlayers(t *testing.T) {
	var buf bytes.Buffer
	err := printPlayers(&buf, []domain.Player{
		{ID: "p-1", Username: "alice", Balance: 1234.5, CreatedAt: time.Now()},
		{ID: "p-2", Username: "bob", Balance: 0, CreatedAt: time.Now()},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "1234.50")
	assert.Contains(t, out, "bob")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("alice")), bytes.Index(buf.Bytes(), []byte("bob")))
}

func TestPrintBonuses(t *testing.T) {
	views := bonus.Views([]domain.Bonus{{
		ID:             "b-1",
		Kind:           domain.BonusFreeze,
		Level:          2,
		AvailableUntil: time.Now().Add(time.Minute),
		Cost:           50000,
		Duration:       90,
	}})

	var buf bytes.Buffer
	require.NoError(t, printBonuses(&buf, views))

	out := buf.String()
	assert.Contains(t, out, "b-1")
	assert.Contains(t, out, "50000")
	assert.Contains(t, out, "1m30s")
	assert.Contains(t, out, "0.5")
}
