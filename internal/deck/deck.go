package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrEmpty is returned by Deal when the deck has no cards remaining.
// Callers treat it as "no card available" rather than a fatal error.
var ErrEmpty = errors.New("deck: no cards remaining")

// Deck represents a single ordered 52-card deck
type Deck struct {
	cards []Card
	rng   *rand.Rand
	empty bool
}

// New creates a deck in new-deck order: hearts and clubs ascending
// Ace through King, diamonds and spades descending King through Ace.
// The deck is not shuffled; call Shuffle before dealing.
func New(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.fill()
	return d
}

// NewStacked creates a deck holding exactly the given cards in order,
// front of the deck first. Used by tests to lay out deals card by card.
func NewStacked(cards ...Card) *Deck {
	return &Deck{cards: cards, empty: len(cards) == 0}
}

func (d *Deck) fill() {
	d.cards = make([]Card, 0, 52)
	d.empty = false
	for suit := Hearts; suit <= Spades; suit++ {
		if suit == Hearts || suit == Clubs {
			for rank := Ace; rank <= King; rank++ {
				d.cards = append(d.cards, NewCard(rank, suit))
			}
		} else {
			for rank := King; rank >= Ace; rank-- {
				d.cards = append(d.cards, NewCard(rank, suit))
			}
		}
	}
}

// Shuffle permutes the deck with a recursive randomized merge: split at
// the midpoint, shuffle each half, then interleave by drawing from the
// left half with probability 1/3 and the right half with probability
// 2/3 until one half runs out. The right-leaning bias is part of the
// house shuffle, not an accident.
func (d *Deck) Shuffle() {
	d.cards = d.randMerge(d.cards)
}

func (d *Deck) randMerge(cards []Card) []Card {
	if len(cards) <= 1 {
		return cards
	}
	mid := len(cards) / 2
	left := d.randMerge(cards[:mid])
	right := d.randMerge(cards[mid:])

	mixed := make([]Card, 0, len(cards))
	for len(left) > 0 && len(right) > 0 {
		if d.rng.IntN(3) == 0 {
			mixed = append(mixed, left[0])
			left = left[1:]
		} else {
			mixed = append(mixed, right[0])
			right = right[1:]
		}
	}
	mixed = append(mixed, left...)
	mixed = append(mixed, right...)
	return mixed
}

// Deal removes and returns the front card. It returns ErrEmpty once
// the deck is exhausted.
func (d *Deck) Deal() (Card, error) {
	if d.empty {
		return Card{}, ErrEmpty
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	if len(d.cards) == 0 {
		d.empty = true
	}
	return card, nil
}

// Size returns the number of cards left in the deck
func (d *Deck) Size() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return d.empty
}

// Reset restores the deck to a full 52 cards and shuffles it
func (d *Deck) Reset() {
	d.fill()
	d.Shuffle()
}
