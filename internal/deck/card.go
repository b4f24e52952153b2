package deck

import "fmt"

// Suit represents a card suit. The declaration order matches new-deck
// order: hearts, clubs, diamonds, spades.
type Suit int

const (
	Hearts Suit = iota
	Clubs
	Diamonds
	Spades
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are low (1); face cards run
// Jack=11 through King=13.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the display form of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Card represents a playing card. A face-down card renders as "??"
// until it is flipped.
type Card struct {
	Rank     Rank
	Suit     Suit
	FaceDown bool
}

// NewCard creates a new face-up card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the string representation of a card (e.g., "A♥"),
// or "??" if the card is face down
func (c Card) String() string {
	if c.FaceDown {
		return "??"
	}
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Flip toggles the card between face up and face down
func (c *Card) Flip() {
	c.FaceDown = !c.FaceDown
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// PipValue returns the card's blackjack contribution: face cards and
// tens count 10, everything else counts its rank. An Ace counts 1 here;
// the soft 11 interpretation is handled at the hand level.
func (c Card) PipValue() int {
	return min(int(c.Rank), 10)
}

// Compare orders two cards by rank only, ignoring suit. It returns 1
// if c outranks other, -1 if other outranks c, and 0 on equal ranks.
func (c Card) Compare(other Card) int {
	switch {
	case c.Rank > other.Rank:
		return 1
	case c.Rank < other.Rank:
		return -1
	default:
		return 0
	}
}
