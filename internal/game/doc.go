// Package game implements the core blackjack table logic.
//
// The main type is Round, which drives a single hand of play through
// its phases: betting, dealing, player turns, the dealer's turn and
// resolution. A Round operates on a Table, the owning context for the
// deck, the players and the dealer, and talks to the outside world
// only through the UI interface, so the whole state machine can be
// driven by a scripted UI in tests.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	table := game.NewTable(rng, []string{"Alice", "Bob"}, 100)
//	round := game.NewRound(table, ui)
//	err := round.Play()
//
// # Deterministic Testing
//
// Seed the table's RNG for a reproducible shuffle, or hand the table a
// stacked deck for complete control over the deal:
//
//	d := deck.New(randutil.New(1)) // or a hand-built card sequence
//	table := game.NewTable(rng, names, 100, game.WithDeck(d))
//
// A table with an injected deck never reshuffles it, so tests can lay
// out exact scenarios card by card.
//
// # Hand Valuation
//
// A Hand tracks every possible total simultaneously: each Ace added to
// the hand branches every existing total into a soft (+11) and hard
// (+1) interpretation. Busting removes totals over 21; a hand is bust
// only when no interpretation survives. Standing collapses the set to
// its best value.
package game
