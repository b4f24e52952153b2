package game

import (
	"io"

	"github.com/charmbracelet/log"
)

// Phase identifies where a round is in its lifecycle
type Phase int

const (
	PhaseBetting Phase = iota
	PhaseDealing
	PhasePlayerTurns
	PhaseDealerTurn
	PhaseResolution
	PhaseDone
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseBetting:
		return "betting"
	case PhaseDealing:
		return "dealing"
	case PhasePlayerTurns:
		return "player_turns"
	case PhaseDealerTurn:
		return "dealer_turn"
	case PhaseResolution:
		return "resolution"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Round drives one full hand of play across the table: betting,
// dealing, player turns, the dealer's turn and resolution. Everything
// runs on the caller's goroutine; the only blocking is on UI prompts.
type Round struct {
	table  *Table
	ui     UI
	logger *log.Logger

	phase           Phase
	dealerBust      bool
	dealerBlackjack bool
}

// RoundOption configures a round at construction
type RoundOption func(*Round)

// WithLogger attaches a diagnostic logger to the round
func WithLogger(logger *log.Logger) RoundOption {
	return func(r *Round) {
		r.logger = logger
	}
}

// NewRound creates a round over the given table, reporting through ui
func NewRound(table *Table, ui UI, opts ...RoundOption) *Round {
	r := &Round{
		table:  table,
		ui:     ui,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Phase returns the round's current phase
func (r *Round) Phase() Phase {
	return r.phase
}

// DealerBusted reports whether the dealer busted this round
func (r *Round) DealerBusted() bool {
	return r.dealerBust
}

// DealerBlackjack reports whether the dealer opened with a natural 21
func (r *Round) DealerBlackjack() bool {
	return r.dealerBlackjack
}

// Play runs the round to completion. The only error it can surface is
// an exhausted deck during the opening deal, which cannot happen with
// a full deck and a legal table size.
func (r *Round) Play() error {
	r.table.BeginRound()
	r.acceptBets()
	if err := r.dealHands(); err != nil {
		return err
	}
	r.playerTurns()
	r.dealerTurn()
	r.resolve()
	r.setPhase(PhaseDone)
	return nil
}

func (r *Round) setPhase(p Phase) {
	r.phase = p
	r.logger.Debug("phase change", "phase", p)
}

// acceptBets collects a valid bet from every player before the deal.
// An invalid bet re-prompts the same player; nothing placed so far is
// rolled back.
func (r *Round) acceptBets() {
	r.setPhase(PhaseBetting)
	for _, p := range r.table.Players {
		for {
			amount := r.ui.PromptBet(p)
			if err := p.PlaceBet(amount); err != nil {
				r.logger.Debug("bet rejected", "player", p.Name, "amount", amount, "err", err)
				r.ui.BetRejected(p, err)
				continue
			}
			r.logger.Info("bet placed", "player", p.Name, "amount", amount, "balance", p.Balance())
			r.ui.Announce(BetPlacedEvent{Player: p})
			break
		}
	}
}

// dealHands deals two full passes round-robin: every player one card,
// then the dealer, twice over. The dealer's second card goes face down
// immediately.
func (r *Round) dealHands() error {
	r.setPhase(PhaseDealing)
	for pass := 0; pass < 2; pass++ {
		for _, p := range r.table.Players {
			c, err := r.table.Deck.Deal()
			if err != nil {
				return err
			}
			p.DealCard(c)
		}
		c, err := r.table.Deck.Deal()
		if err != nil {
			return err
		}
		r.table.Dealer.Hand().AddCard(c)
	}
	r.table.Dealer.Hand().Flip(1)
	r.logger.Info("hands dealt", "players", len(r.table.Players), "upcard", r.table.Dealer.Upcard())
	r.ui.Announce(HandsDealtEvent{Players: r.table.Players, DealerUpcard: r.table.Dealer.Upcard()})
	return nil
}

func (r *Round) playerTurns() {
	r.setPhase(PhasePlayerTurns)
	for _, p := range r.table.Players {
		r.playerTurn(p)
	}
}

// playerTurn runs one player's hit/stand loop. A natural ends the turn
// before any prompt; a bust ends it with no further hits offered.
func (r *Round) playerTurn(p *Player) {
	h := p.Hand()
	if h.Blackjack() {
		// Collapse now so resolution compares a settled score.
		h.Stand()
		r.logger.Info("blackjack", "player", p.Name)
		r.ui.Announce(BlackjackEvent{Player: p})
		return
	}
	for h.Active() {
		if !r.ui.PromptHit(p, r.table.Dealer.Upcard()) {
			h.Stand()
			r.logger.Info("stand", "player", p.Name, "score", h.Best())
			r.ui.Announce(StandEvent{Player: p, Score: h.Best()})
			return
		}
		c, err := r.table.Deck.Deal()
		if err != nil {
			// No card available: the player stands on what they hold.
			r.logger.Warn("deck exhausted during hit", "player", p.Name)
			h.Stand()
			r.ui.Announce(StandEvent{Player: p, Score: h.Best()})
			return
		}
		p.DealCard(c)
		r.logger.Debug("hit", "player", p.Name, "card", c, "totals", h.Totals())
		if h.Busted() {
			h.Deactivate()
			r.logger.Info("bust", "player", p.Name)
			r.ui.Announce(BustEvent{Player: p})
			return
		}
	}
}

// dealerTurn reveals the hole card, short-circuits on a dealer
// natural, then draws under the fixed stand-on-17 policy.
func (r *Round) dealerTurn() {
	r.setPhase(PhaseDealerTurn)
	d := r.table.Dealer
	h := d.Hand()

	h.Flip(1)
	r.ui.Announce(DealerRevealEvent{Card: h.Cards()[1], Hand: h})

	if h.Blackjack() {
		r.dealerBlackjack = true
		h.Stand()
		r.logger.Info("dealer blackjack")
		r.ui.Announce(DealerBlackjackEvent{})
		return
	}

	for d.DecideToHit() {
		c, err := r.table.Deck.Deal()
		if err != nil {
			// No card available: the dealer stands on what they hold.
			r.logger.Warn("deck exhausted during dealer turn")
			break
		}
		h.AddCard(c)
		r.logger.Debug("dealer draw", "card", c, "totals", h.Totals())
		r.ui.Announce(DealerDrawEvent{Hand: h})
		if h.Busted() {
			r.dealerBust = true
			h.Deactivate()
			r.logger.Info("dealer bust")
			r.ui.Announce(DealerBustEvent{Hand: h})
			return
		}
	}
	h.Stand()
	r.logger.Info("dealer stand", "score", h.Best())
	r.ui.Announce(DealerStandEvent{Score: h.Best()})
}

// resolve pays out every player who stood. Busted players are skipped:
// their bet was escrowed at placement and is simply not refunded.
// A dealer bust pays double the bet, a dealer natural pays nothing,
// otherwise the hands are compared head to head with a push refunding
// the bet.
func (r *Round) resolve() {
	r.setPhase(PhaseResolution)
	dealerHand := r.table.Dealer.Hand()
	for _, p := range r.table.Players {
		h := p.Hand()
		if !h.Stood() {
			continue
		}

		var outcome Outcome
		var payout int
		switch {
		case r.dealerBust:
			outcome = OutcomeDealerBust
			payout = p.Bet() * 2
		case r.dealerBlackjack:
			outcome = OutcomeDealerBlackjack
		default:
			switch h.Compare(dealerHand) {
			case 1:
				outcome = OutcomeWin
				payout = p.Bet() * 2
			case 0:
				outcome = OutcomePush
				payout = p.Bet()
			default:
				outcome = OutcomeLoss
			}
		}

		if payout > 0 {
			p.ReceiveWinnings(payout)
		}
		r.logger.Info("resolved", "player", p.Name, "payout", payout, "balance", p.Balance())
		r.ui.Announce(ResultEvent{
			Player:      p,
			Outcome:     outcome,
			Payout:      payout,
			PlayerScore: h.Best(),
			DealerScore: dealerHand.Best(),
		})
	}
}
