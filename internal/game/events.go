package game

import "github.com/lox/blackjack/internal/deck"

// EventType represents a round event type with type safety
type EventType string

// EventType constants for round domain events
const (
	EventTypeBetPlaced       EventType = "bet_placed"
	EventTypeHandsDealt      EventType = "hands_dealt"
	EventTypeBlackjack       EventType = "blackjack"
	EventTypeBust            EventType = "bust"
	EventTypeStand           EventType = "stand"
	EventTypeDealerReveal    EventType = "dealer_reveal"
	EventTypeDealerDraw      EventType = "dealer_draw"
	EventTypeDealerBlackjack EventType = "dealer_blackjack"
	EventTypeDealerBust      EventType = "dealer_bust"
	EventTypeDealerStand     EventType = "dealer_stand"
	EventTypeResult          EventType = "result"
	EventTypePlayerRetired   EventType = "player_retired"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event represents anything that happens during a round that the
// display layer should announce
type Event interface {
	EventType() EventType
}

// Outcome classifies a player's result at resolution
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomePush
	OutcomeLoss
	OutcomeDealerBust
	OutcomeDealerBlackjack
)

// BetPlacedEvent is published when a player's bet is accepted
type BetPlacedEvent struct {
	Player *Player
}

func (e BetPlacedEvent) EventType() EventType { return EventTypeBetPlaced }

// HandsDealtEvent is published after the opening deal, with the
// dealer's second card already face down
type HandsDealtEvent struct {
	Players      []*Player
	DealerUpcard deck.Card
}

func (e HandsDealtEvent) EventType() EventType { return EventTypeHandsDealt }

// BlackjackEvent is published when a player's opening two cards are a
// natural 21
type BlackjackEvent struct {
	Player *Player
}

func (e BlackjackEvent) EventType() EventType { return EventTypeBlackjack }

// BustEvent is published when a player busts out of the round
type BustEvent struct {
	Player *Player
}

func (e BustEvent) EventType() EventType { return EventTypeBust }

// StandEvent is published when a player stands
type StandEvent struct {
	Player *Player
	Score  int
}

func (e StandEvent) EventType() EventType { return EventTypeStand }

// DealerRevealEvent is published when the dealer turns over the
// face-down card
type DealerRevealEvent struct {
	Card deck.Card
	Hand *Hand
}

func (e DealerRevealEvent) EventType() EventType { return EventTypeDealerReveal }

// DealerDrawEvent is published each time the dealer draws
type DealerDrawEvent struct {
	Hand *Hand
}

func (e DealerDrawEvent) EventType() EventType { return EventTypeDealerDraw }

// DealerBlackjackEvent is published when the dealer's opening cards
// total exactly 21
type DealerBlackjackEvent struct{}

func (e DealerBlackjackEvent) EventType() EventType { return EventTypeDealerBlackjack }

// DealerBustEvent is published when the dealer busts
type DealerBustEvent struct {
	Hand *Hand
}

func (e DealerBustEvent) EventType() EventType { return EventTypeDealerBust }

// DealerStandEvent is published when the dealer stands
type DealerStandEvent struct {
	Score int
}

func (e DealerStandEvent) EventType() EventType { return EventTypeDealerStand }

// ResultEvent is published per surviving player at resolution
type ResultEvent struct {
	Player      *Player
	Outcome     Outcome
	Payout      int
	PlayerScore int
	DealerScore int
}

func (e ResultEvent) EventType() EventType { return EventTypeResult }

// PlayerRetiredEvent is published when a player leaves the table with
// an empty bankroll
type PlayerRetiredEvent struct {
	Player *Player
}

func (e PlayerRetiredEvent) EventType() EventType { return EventTypePlayerRetired }
