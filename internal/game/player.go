package game

import (
	"errors"

	"github.com/lox/blackjack/internal/deck"
)

// Bet placement failures. Both are recoverable: the caller re-prompts
// the same player without any balance change.
var (
	ErrBetTooLarge    = errors.New("bet exceeds balance")
	ErrBetNotPositive = errors.New("bet must be greater than zero")
)

// Player represents a seated player with a bankroll and a hand
type Player struct {
	Name    string
	balance int
	bet     int
	hand    *Hand
}

// NewPlayer creates a player with a starting balance
func NewPlayer(name string, balance int) *Player {
	return &Player{
		Name:    name,
		balance: balance,
		hand:    NewHand(),
	}
}

// PlaceBet escrows a bet: the amount is deducted from the balance at
// placement time, not merely reserved. It fails without mutating the
// balance if the amount is not positive or exceeds the balance.
func (p *Player) PlaceBet(amount int) error {
	if amount > p.balance {
		return ErrBetTooLarge
	}
	if amount <= 0 {
		return ErrBetNotPositive
	}
	p.balance -= amount
	p.bet = amount
	return nil
}

// ReceiveWinnings credits the balance unconditionally. The round
// controller guarantees the amount is never negative.
func (p *Player) ReceiveWinnings(amount int) {
	p.balance += amount
}

// DealCard adds a card to the player's hand
func (p *Player) DealCard(c deck.Card) {
	p.hand.AddCard(c)
}

// Balance returns the player's current balance
func (p *Player) Balance() int {
	return p.balance
}

// Bet returns the active bet, 0 when none is placed
func (p *Player) Bet() int {
	return p.bet
}

// Hand returns the player's hand
func (p *Player) Hand() *Hand {
	return p.hand
}

// Broke reports whether the player has nothing left to bet
func (p *Player) Broke() bool {
	return p.balance <= 0
}

// ResetForRound clears the bet and hand; the balance carries over
func (p *Player) ResetForRound() {
	p.bet = 0
	p.hand.Reset()
}
