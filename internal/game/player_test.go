package game

import (
	"errors"
	"testing"

	"github.com/lox/blackjack/internal/deck"
)

func TestPlaceBetEscrowsAmount(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Alice", 100)

	if err := p.PlaceBet(10); err != nil {
		t.Fatalf("valid bet rejected: %v", err)
	}
	if p.Balance() != 90 {
		t.Errorf("balance = %d, want 90", p.Balance())
	}
	if p.Bet() != 10 {
		t.Errorf("bet = %d, want 10", p.Bet())
	}
}

func TestPlaceBetRejectsWithoutMutation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		amount int
		want   error
	}{
		{"zero", 0, ErrBetNotPositive},
		{"negative", -5, ErrBetNotPositive},
		{"over balance", 101, ErrBetTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer("Bob", 100)
			err := p.PlaceBet(tt.amount)
			if !errors.Is(err, tt.want) {
				t.Fatalf("PlaceBet(%d) = %v, want %v", tt.amount, err, tt.want)
			}
			if p.Balance() != 100 || p.Bet() != 0 {
				t.Errorf("rejected bet mutated state: balance=%d bet=%d", p.Balance(), p.Bet())
			}
		})
	}
}

func TestPlaceBetAllowsEntireBalance(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Carol", 100)
	if err := p.PlaceBet(100); err != nil {
		t.Fatalf("betting the whole balance should be allowed: %v", err)
	}
	if p.Balance() != 0 {
		t.Errorf("balance = %d, want 0", p.Balance())
	}
	if !p.Broke() {
		t.Error("player with zero balance should report broke")
	}
}

func TestReceiveWinnings(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Dan", 90)
	p.ReceiveWinnings(20)
	if p.Balance() != 110 {
		t.Errorf("balance = %d, want 110", p.Balance())
	}
}

func TestDealCardForwardsToHand(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Eve", 100)
	p.DealCard(deck.NewCard(deck.Nine, deck.Clubs))
	if p.Hand().Count() != 1 {
		t.Errorf("hand count = %d, want 1", p.Hand().Count())
	}
	if got := p.Hand().Best(); got != 9 {
		t.Errorf("hand best = %d, want 9", got)
	}
}

func TestResetForRoundKeepsBalance(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Frank", 100)
	if err := p.PlaceBet(30); err != nil {
		t.Fatal(err)
	}
	p.DealCard(deck.NewCard(deck.King, deck.Hearts))

	p.ResetForRound()
	if p.Bet() != 0 {
		t.Errorf("bet = %d after reset", p.Bet())
	}
	if p.Hand().Count() != 0 {
		t.Errorf("hand count = %d after reset", p.Hand().Count())
	}
	if p.Balance() != 70 {
		t.Errorf("balance = %d, want 70 (reset must not touch the bankroll)", p.Balance())
	}
}
