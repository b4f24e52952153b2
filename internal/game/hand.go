package game

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// Blackjack target score. Totals above this are busted out of the hand.
const targetScore = 21

// Hand holds one party's cards along with every numeric total the hand
// could be worth under the Ace 1-or-11 rule.
type Hand struct {
	cards  []deck.Card
	totals []int
	active bool
	stood  bool
	score  int
}

// NewHand creates an empty, active hand
func NewHand() *Hand {
	h := &Hand{}
	h.Reset()
	return h
}

// Reset returns the hand to its default state: no cards, a single zero
// total, active and not stood.
func (h *Hand) Reset() {
	h.cards = h.cards[:0]
	h.totals = append(h.totals[:0], 0)
	h.active = true
	h.stood = false
	h.score = 0
}

// AddCard appends a card and extends every existing total with its
// value. An Ace additionally branches each total into a soft +11
// interpretation, so the totals set can grow with each Ace held.
// Duplicate totals are kept; bust filtering and best-score selection
// are insensitive to them.
func (h *Hand) AddCard(c deck.Card) {
	h.cards = append(h.cards, c)
	n := len(h.totals)
	for i := 0; i < n; i++ {
		if c.IsAce() {
			h.totals = append(h.totals, h.totals[i]+11)
		}
		h.totals[i] += c.PipValue()
	}
}

// Busted prunes every total over 21 and reports whether the hand is
// bust, which is the case only when no total survives. Pruned totals
// never come back: cards are only ever added, so a total over 21 can
// only grow further.
func (h *Hand) Busted() bool {
	kept := h.totals[:0]
	for _, t := range h.totals {
		if t <= targetScore {
			kept = append(kept, t)
		}
	}
	h.totals = kept
	return len(h.totals) == 0
}

// Stand collapses the totals to the single best value and takes the
// hand out of play.
func (h *Hand) Stand() {
	h.score = h.Best()
	h.stood = true
	h.active = false
}

// Deactivate takes the hand out of play without collapsing it, used
// when the hand busts.
func (h *Hand) Deactivate() {
	h.active = false
}

// Best returns the hand's current value: the stand score once stood,
// otherwise the maximum surviving total. A busted hand is worth 0.
func (h *Hand) Best() int {
	if h.stood {
		return h.score
	}
	best := 0
	for _, t := range h.totals {
		if t > best {
			best = t
		}
	}
	return best
}

// Compare orders two hands by their current value: 1 if h is worth
// more than other, -1 if less, 0 on a tie. Both hands must already be
// collapsed (stood) or bust-filtered; the round controller guarantees
// that ordering.
func (h *Hand) Compare(other *Hand) int {
	switch {
	case h.Best() > other.Best():
		return 1
	case h.Best() < other.Best():
		return -1
	default:
		return 0
	}
}

// Blackjack reports a natural: exactly two cards worth 21
func (h *Hand) Blackjack() bool {
	return len(h.cards) == 2 && h.Best() == targetScore
}

// Active reports whether the hand can still act
func (h *Hand) Active() bool {
	return h.active
}

// Stood reports whether the hand has been collapsed by Stand
func (h *Hand) Stood() bool {
	return h.stood
}

// Cards returns the held cards in deal order
func (h *Hand) Cards() []deck.Card {
	return h.cards
}

// Count returns the number of cards held
func (h *Hand) Count() int {
	return len(h.cards)
}

// Totals returns the surviving possible totals
func (h *Hand) Totals() []int {
	return h.totals
}

// Upcard returns the first dealt card, the one a dealer shows
func (h *Hand) Upcard() deck.Card {
	return h.cards[0]
}

// Flip toggles the face-down flag on the card at index i
func (h *Hand) Flip(i int) {
	h.cards[i].Flip()
}

// String renders the hand as "| A♥, K♠ |", substituting "??" for any
// face-down card
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return "| " + strings.Join(parts, ", ") + " |"
}
