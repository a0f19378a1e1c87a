package domain

import (
	"fmt"
	"time"
)

// Player is a registered participant of the economy
type Player struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	Sites     []Site    `json:"sites,omitempty"`
}

// Site returns the player's site of the given kind, or nil when it was not loaded
func (p *Player) Site(kind SiteKind) *Site {
	for i := range p.Sites {
		if p.Sites[i].Kind == kind {
			return &p.Sites[i]
		}
	}
	return nil
}

// CanAfford reports whether the balance covers price
func (p *Player) CanAfford(price float64) bool {
	return p.Balance >= price
}

// Debit takes amount from the balance, or fails with ErrInsufficientFunds and leaves it unchanged
func (p *Player) Debit(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative debit %.2f", ErrInvalidInput, amount)
	}
	if !p.CanAfford(amount) {
		return fmt.Errorf("%w: need %.2f, have %.2f", ErrInsufficientFunds, amount, p.Balance)
	}
	p.Balance -= amount
	return nil
}

// Credit adds amount to the balance
func (p *Player) Credit(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative credit %.2f", ErrInvalidInput, amount)
	}
	p.Balance += amount
	return nil
}
