package game

import "github.com/lox/blackjack/internal/deck"

// UI is the round controller's window to the player. All prompting is
// synchronous: a call blocks until a usable value is supplied, and the
// implementation owns re-prompting on malformed input. Bet amounts are
// validated by the controller, which reports rejections back through
// BetRejected and prompts again.
type UI interface {
	// PromptBet asks the player for a bet amount.
	PromptBet(p *Player) int

	// BetRejected reports an invalid bet before the player is
	// prompted again. err is one of ErrBetTooLarge or
	// ErrBetNotPositive.
	BetRejected(p *Player, err error)

	// PromptHit asks the player to hit (true) or stand (false),
	// showing the dealer's visible card alongside their own hand.
	PromptHit(p *Player, upcard deck.Card) bool

	// Announce renders a round event.
	Announce(ev Event)
}
