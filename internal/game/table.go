package game

import (
	rand "math/rand/v2"

	"github.com/lox/blackjack/internal/deck"
)

// MaxSeats caps how many players can sit at one table
const MaxSeats = 5

// Table is the owning context for one game session: the players, the
// dealer and the deck. It lives for the whole session; per-round state
// is reset by BeginRound.
type Table struct {
	Players []*Player
	Dealer  *Dealer
	Deck    *deck.Deck

	fixedDeck bool
}

// TableOption configures a table at construction
type TableOption func(*Table)

// WithDeck supplies a prepared deck, typically a stacked one in tests.
// A table with a fixed deck never reshuffles it between rounds.
func WithDeck(d *deck.Deck) TableOption {
	return func(t *Table) {
		t.Deck = d
		t.fixedDeck = true
	}
}

// NewTable seats one player per name, each with the same starting
// balance, and builds an unshuffled deck from the supplied RNG.
func NewTable(rng *rand.Rand, names []string, balance int, opts ...TableOption) *Table {
	t := &Table{
		Dealer: NewDealer(),
		Deck:   deck.New(rng),
	}
	for _, name := range names {
		t.Players = append(t.Players, NewPlayer(name, balance))
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// BeginRound resets every hand and bet and, unless the deck was
// injected, rebuilds and shuffles the deck.
func (t *Table) BeginRound() {
	for _, p := range t.Players {
		p.ResetForRound()
	}
	t.Dealer.Hand().Reset()
	if !t.fixedDeck {
		t.Deck.Reset()
	}
}

// RetireBroke removes players with an empty bankroll from the table
// and returns them.
func (t *Table) RetireBroke() []*Player {
	var retired []*Player
	remaining := t.Players[:0]
	for _, p := range t.Players {
		if p.Broke() {
			retired = append(retired, p)
		} else {
			remaining = append(remaining, p)
		}
	}
	t.Players = remaining
	return retired
}

// Seats returns the number of players still at the table
func (t *Table) Seats() int {
	return len(t.Players)
}
