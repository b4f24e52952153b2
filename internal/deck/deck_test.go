package deck

import (
	"errors"
	"testing"

	"github.com/lox/blackjack/internal/randutil"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	t.Parallel()
	d := New(randutil.New(1))

	if d.Size() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Size())
	}

	seen := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		c, err := d.Deal()
		if err != nil {
			t.Fatalf("deal %d failed: %v", i, err)
		}
		if seen[c] {
			t.Errorf("duplicate card %s", c)
		}
		seen[c] = true
	}
}

func TestNewDeckOrder(t *testing.T) {
	t.Parallel()
	d := New(randutil.New(1))

	// Hearts and clubs ascending, diamonds and spades descending.
	want := make([]Card, 0, 52)
	for rank := Ace; rank <= King; rank++ {
		want = append(want, NewCard(rank, Hearts))
	}
	for rank := Ace; rank <= King; rank++ {
		want = append(want, NewCard(rank, Clubs))
	}
	for rank := King; rank >= Ace; rank-- {
		want = append(want, NewCard(rank, Diamonds))
	}
	for rank := King; rank >= Ace; rank-- {
		want = append(want, NewCard(rank, Spades))
	}

	for i, w := range want {
		c, err := d.Deal()
		if err != nil {
			t.Fatalf("deal %d failed: %v", i, err)
		}
		if c != w {
			t.Fatalf("card %d = %s, want %s", i, c, w)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	t.Parallel()
	d := New(randutil.New(42))
	d.Shuffle()

	if d.Size() != 52 {
		t.Fatalf("shuffle changed deck size to %d", d.Size())
	}

	seen := make(map[Card]bool)
	for d.Size() > 0 {
		c, err := d.Deal()
		if err != nil {
			t.Fatalf("deal failed: %v", err)
		}
		if seen[c] {
			t.Errorf("duplicate card %s after shuffle", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("expected 52 distinct cards after shuffle, got %d", len(seen))
	}
}

func TestShufflePermutesOrder(t *testing.T) {
	t.Parallel()
	// Across many trials, shuffles must not keep reproducing the same
	// ordering. The merge bias makes the permutation non-uniform, but
	// it should still visibly move cards around.
	d := New(randutil.New(7))
	previous := append([]Card(nil), d.cards...)
	changed := 0
	const trials = 20
	for trial := 0; trial < trials; trial++ {
		d.Reset()
		if !sameOrder(d.cards, previous) {
			changed++
		}
		previous = append(previous[:0], d.cards...)
	}
	if changed < trials-1 {
		t.Errorf("only %d of %d shuffles changed the order", changed, trials)
	}
}

func TestShuffleSeedsDiffer(t *testing.T) {
	t.Parallel()
	a := New(randutil.New(1))
	b := New(randutil.New(2))
	a.Shuffle()
	b.Shuffle()
	if sameOrder(a.cards, b.cards) {
		t.Error("different seeds produced identical shuffles")
	}
}

func TestDealExhaustion(t *testing.T) {
	t.Parallel()
	d := New(randutil.New(3))

	for i := 0; i < 52; i++ {
		if _, err := d.Deal(); err != nil {
			t.Fatalf("deal %d failed: %v", i, err)
		}
		wantEmpty := i == 51
		if d.IsEmpty() != wantEmpty {
			t.Fatalf("IsEmpty() = %v after %d deals", d.IsEmpty(), i+1)
		}
	}

	if _, err := d.Deal(); !errors.Is(err, ErrEmpty) {
		t.Errorf("dealing from an empty deck should return ErrEmpty, got %v", err)
	}
}

func TestResetRestoresFullDeck(t *testing.T) {
	t.Parallel()
	d := New(randutil.New(4))
	d.Shuffle()
	for i := 0; i < 52; i++ {
		if _, err := d.Deal(); err != nil {
			t.Fatalf("deal failed: %v", err)
		}
	}

	d.Reset()
	if d.Size() != 52 || d.IsEmpty() {
		t.Errorf("reset deck has %d cards, empty=%v", d.Size(), d.IsEmpty())
	}
}

func sameOrder(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
