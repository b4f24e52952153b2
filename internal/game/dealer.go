package game

import "github.com/lox/blackjack/internal/deck"

// Dealer owns a hand and a fixed drawing policy. It carries no other
// state between rounds.
type Dealer struct {
	hand *Hand
}

// NewDealer creates a dealer with an empty hand
func NewDealer() *Dealer {
	return &Dealer{hand: NewHand()}
}

// DecideToHit implements the house rule: stand the instant any
// possible total lands in [17, 21], otherwise draw again.
func (d *Dealer) DecideToHit() bool {
	for _, t := range d.hand.Totals() {
		if t >= 17 && t <= targetScore {
			return false
		}
	}
	return true
}

// Hand returns the dealer's hand
func (d *Dealer) Hand() *Hand {
	return d.hand
}

// Upcard returns the dealer's visible first card
func (d *Dealer) Upcard() deck.Card {
	return d.hand.Upcard()
}
